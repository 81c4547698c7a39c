// Command chunkview walks an endless-looking level in the terminal. Chunks are
// generated as the player approaches them and dropped once they fall out of
// the window around the player.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	engineinput "chunky/pkg/engine/input"
	"chunky/pkg/engine/terminal"
	"chunky/pkg/game/chunkview"
	"chunky/pkg/game/config"
	"chunky/pkg/game/devtools"
	"chunky/pkg/game/gameplay"
	"chunky/pkg/game/i18n"
	"chunky/pkg/game/renderer"
	"chunky/pkg/game/renderer/tui"
)

// statusRows is the number of terminal rows kept free below the map.
const statusRows = 3

// The player enters the level at this world tile.
const startX, startY = 10, 10

func main() {
	log.SetFlags(0)

	opts := config.Load("chunkview")
	fs := flag.NewFlagSet("chunkview", flag.ExitOnError)
	opts.RegisterFlags(fs)
	fs.Parse(os.Args[1:])

	if err := i18n.SetLanguage(opts.Lang); err != nil {
		log.Fatalf("chunkview: %v", err)
	}
	if err := opts.Resolve(time.Now()); err != nil {
		fmt.Fprintln(os.Stderr, i18n.T("INVALID_CONFIG", err))
		os.Exit(1)
	}
	if !terminal.IsTerminal() {
		fmt.Fprintln(os.Stderr, i18n.T("NOT_A_TERMINAL", "chunkview"))
		os.Exit(1)
	}

	w, h := terminal.GetSize()
	v, err := newView(opts, w, h-statusRows)
	if err != nil {
		fmt.Fprintln(os.Stderr, i18n.T("INVALID_CONFIG", err))
		os.Exit(1)
	}

	keys, err := engineinput.OpenRaw()
	if err != nil {
		log.Fatalf("chunkview: %v", err)
	}
	defer keys.Close()

	renderer.SetRenderer(tui.New(os.Stdout))
	renderer.Init()
	terminal.HideCursor(os.Stdout)
	defer terminal.ShowCursor(os.Stdout)
	renderer.Clear()

	if err := explore(keys, v, opts); err != nil && err != io.EOF {
		keys.Close()
		log.Fatalf("chunkview: %v", err)
	}
}

func newView(opts *config.Options, w, h int) (*chunkview.View, error) {
	v, err := chunkview.New(opts.ChunkConfig(), w, h)
	if err != nil {
		return nil, err
	}
	if opts.Debug >= 2 {
		v.SelfTest()
	}
	return v, nil
}

func newSession(v *chunkview.View, opts *config.Options) *gameplay.Session {
	s := gameplay.NewViewSession(v, startX, startY)
	s.OnDump = func() string {
		c, local, ok := v.ChunkAt(s.Player.X, s.Player.Y)
		if !ok {
			return i18n.T("DUMP_FAILED", "chunk not loaded")
		}
		path, err := devtools.DumpChunkToFile(c, &local, opts.Dump)
		if err != nil {
			return i18n.T("DUMP_FAILED", err)
		}
		return i18n.T("MAP_DUMPED", path)
	}
	return s
}

// frame builds what the terminal shows for the current view.
func frame(s *gameplay.Session, v *chunkview.View, opts *config.Options) renderer.Frame {
	spec := s.ViewFrameSpec(v)
	spec.Status = i18n.T("VIEW_STATUS_LINE", opts.Seed, s.Player.X, s.Player.Y, len(v.Loaded()), v.Generated())
	spec.Help = i18n.T("HELP_KEYS")
	return renderer.BuildFrame(s.Terrain, spec)
}

func explore(keys *engineinput.Session, v *chunkview.View, opts *config.Options) error {
	s := newSession(v, opts)
	for !s.Quit {
		renderer.RenderFrame(frame(s, v, opts))

		raw, err := keys.ReadRaw()
		if err != nil {
			return err
		}
		gameplay.ProcessIntent(s, engineinput.MapToIntent(engineinput.NewDebouncedInput(raw)))
		if opts.Debug >= 3 {
			v.SelfTest()
		}
	}
	return nil
}
