// Command chunkwindow explores the level like chunkview, drawn in a desktop
// window instead of the terminal.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"chunky/pkg/game/chunkview"
	"chunky/pkg/game/config"
	"chunky/pkg/game/devtools"
	"chunky/pkg/game/gameplay"
	"chunky/pkg/game/i18n"
	"chunky/pkg/game/renderer"
	ebitenrenderer "chunky/pkg/game/renderer/ebiten"
)

const (
	windowCols = 48
	windowRows = 24

	startX, startY = 10, 10
)

func main() {
	log.SetFlags(0)

	opts := config.Load("chunkwindow")
	fs := flag.NewFlagSet("chunkwindow", flag.ExitOnError)
	opts.RegisterFlags(fs)
	fs.Parse(os.Args[1:])

	if err := i18n.SetLanguage(opts.Lang); err != nil {
		log.Fatalf("chunkwindow: %v", err)
	}
	if err := opts.Resolve(time.Now()); err != nil {
		fmt.Fprintln(os.Stderr, i18n.T("INVALID_CONFIG", err))
		os.Exit(1)
	}

	v, err := chunkview.New(opts.ChunkConfig(), windowCols, windowRows)
	if err != nil {
		fmt.Fprintln(os.Stderr, i18n.T("INVALID_CONFIG", err))
		os.Exit(1)
	}

	er := ebitenrenderer.New(i18n.T("WINDOW_TITLE", opts.Seed), windowCols, windowRows)
	renderer.SetRenderer(er)
	renderer.Init()

	// Ebiten owns the main thread; the session runs beside it and only talks
	// to the window through RenderFrame and the intent channel.
	go func() {
		s := newSession(v, opts)
		draw(s, v, opts)
		for intent := range er.Intents() {
			gameplay.ProcessIntent(s, intent)
			if s.Quit {
				er.Close()
				return
			}
			draw(s, v, opts)
		}
	}()

	if err := er.Run(); err != nil {
		log.Fatalf("chunkwindow: %v", err)
	}
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

func draw(s *gameplay.Session, v *chunkview.View, opts *config.Options) {
	spec := s.ViewFrameSpec(v)
	spec.Status = i18n.T("VIEW_STATUS_LINE", opts.Seed, s.Player.X, s.Player.Y, len(v.Loaded()), v.Generated())
	spec.Help = i18n.T("HELP_KEYS")
	renderer.RenderFrame(renderer.BuildFrame(s.Terrain, spec))
}
