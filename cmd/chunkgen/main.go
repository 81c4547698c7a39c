// Command chunkgen generates one chunk from a seed and prints it.
//
// The main method runs the whole pipeline (rooms, nested rooms, one-way doors,
// decoration, boss, guards, wildlife and chests) and prints the boss room.
// The inner and grand methods print the whole chunk after connecting, or fail
// with exit status 1 when the chunk cannot hold their layout.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"chunky/pkg/engine/terminal"
	"chunky/pkg/game/chunk"
	"chunky/pkg/game/config"
	"chunky/pkg/game/devtools"
	"chunky/pkg/game/generator"
	"chunky/pkg/game/i18n"
	"chunky/pkg/game/levelgen"
	"chunky/pkg/game/renderer/tui"
)

func main() {
	log.SetFlags(0)

	opts := config.Load("chunkgen")
	fs := flag.NewFlagSet("chunkgen", flag.ExitOnError)
	opts.RegisterFlags(fs)
	fs.Parse(os.Args[1:])

	if err := i18n.SetLanguage(opts.Lang); err != nil {
		log.Fatalf("chunkgen: %v", err)
	}
	if err := opts.Resolve(time.Now()); err != nil {
		fmt.Fprintln(os.Stderr, i18n.T("INVALID_CONFIG", err))
		os.Exit(1)
	}

	err := run(os.Stdout, terminal.IsTerminal(), opts)
	switch {
	case errors.Is(err, generator.ErrStrategyFailed):
		fmt.Fprintln(os.Stderr, i18n.T("STRATEGY_FAILED", err))
		os.Exit(1)
	case err != nil:
		log.Fatalf("chunkgen: %v", err)
	}
}

// run generates the configured chunk and prints it to w, coloured when
// color is set.
func run(w io.Writer, color bool, opts *config.Options) error {
	r := tui.NewPlain(w)
	if color {
		r = tui.New(w)
	}
	r.Init()

	cfg := opts.ChunkConfig()
	opts.Debugf(1, "chunk %d,%d of %dx%d, size %dx%d, chaos %d, openness %d, method %s",
		cfg.X, cfg.Y, cfg.LevelWidth, cfg.LevelHeight, cfg.Width, cfg.Height,
		cfg.Chaos, cfg.Openness, opts.Strategy)

	fmt.Fprintln(w, i18n.T("SHOWING_ROOM", opts.Seed))

	c := chunk.New(cfg)
	if opts.Strategy == generator.MethodMain {
		if err := generator.Dungeon(c, opts.Strategy); err != nil {
			return err
		}
		boss := levelgen.Populate(c)
		opts.Debugf(2, "%d rooms, %d exits", len(c.Rooms), len(c.Exits))
		fmt.Fprintln(w, i18n.T("BOSS_ROOM", boss.Index, boss.X1, boss.Y1, boss.X2, boss.Y2))
		r.WriteRoom(c, boss)
	} else {
		if err := generator.Sketch(c, opts.Strategy); err != nil {
			return err
		}
		r.WriteChunk(c)
	}

	if opts.Dump != "" {
		path, err := devtools.DumpChunkToFile(c, nil, opts.Dump)
		if err != nil {
			return errors.New(i18n.T("DUMP_FAILED", err))
		}
		opts.Debugf(0, "%s", i18n.T("MAP_DUMPED", path))
	}
	return nil
}
