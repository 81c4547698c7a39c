package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"
	"time"

	engineinput "chunky/pkg/engine/input"
	"chunky/pkg/game/config"
	"chunky/pkg/game/gameplay"
	"chunky/pkg/game/renderer"
)

func options(t *testing.T) *config.Options {
	t.Helper()
	o := config.Defaults("chunkplay")
	o.Seed = 42
	if err := o.Resolve(time.Now()); err != nil {
		t.Fatalf("Resolve() = %v", err)
	}
	return o
}

func TestNewSession_StartsOnFloor(t *testing.T) {
	o := options(t)
	c, err := generate(o)
	if err != nil {
		t.Fatalf("generate() = %v", err)
	}
	s := newSession(c, o)
	if !gameplay.Walkable(c.At(s.Player.X, s.Player.Y)) {
		t.Errorf("player starts on %s", c.At(s.Player.X, s.Player.Y))
	}

	f := renderer.BuildFrame(s.Terrain, s.FrameSpec(0, 0, c.Width, c.Height))
	if !strings.ContainsRune(f.Row(s.Player.Y), renderer.PlayerIcon) {
		t.Errorf("row %d = %q, player missing", s.Player.Y, f.Row(s.Player.Y))
	}
}

func TestNewSession_Dump(t *testing.T) {
	o := options(t)
	o.Dump = filepath.Join(t.TempDir(), "play.txt")
	c, err := generate(o)
	if err != nil {
		t.Fatalf("generate() = %v", err)
	}
	s := newSession(c, o)
	gameplay.ProcessIntent(s, engineinput.Intent{Action: engineinput.ActionDumpMap})
	if !strings.Contains(s.Message, o.Dump) {
		t.Errorf("message = %q, want dump path", s.Message)
	}
	if _, err := os.Stat(o.Dump); err != nil {
		t.Errorf("dump not written: %v", err)
	}
}

func TestPlay_QuitsOnQ(t *testing.T) {
	o := options(t)
	c, err := generate(o)
	if err != nil {
		t.Fatalf("generate() = %v", err)
	}
	renderer.SetRenderer(nopRenderer{})
	keys := engineinput.NewSession(iotest.OneByteReader(strings.NewReader("lq")))
	if err := play(keys, c, o); err != nil {
		t.Errorf("play() = %v", err)
	}
}

type nopRenderer struct{}

func (nopRenderer) Init()                      {}
func (nopRenderer) Clear()                     {}
func (nopRenderer) RenderFrame(renderer.Frame) {}
