// Command chunkplay generates one chunk and lets the player walk it in the
// terminal. Arrow keys (or hjkl) move, bumping a closed door opens it, one-way
// doors open only when walked through in their direction, f toggles the fog,
// m dumps the chunk to a file and q quits.
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
	"chunky/pkg/engine/world"
	"chunky/pkg/game/chunk"
	"chunky/pkg/game/config"
	"chunky/pkg/game/devtools"
	"chunky/pkg/game/gameplay"
	"chunky/pkg/game/generator"
	"chunky/pkg/game/i18n"
	"chunky/pkg/game/renderer"
	"chunky/pkg/game/renderer/tui"
)

func main() {
	log.SetFlags(0)

	opts := config.Load("chunkplay")
	fs := flag.NewFlagSet("chunkplay", flag.ExitOnError)
	opts.RegisterFlags(fs)
	fs.Parse(os.Args[1:])

	if err := i18n.SetLanguage(opts.Lang); err != nil {
		log.Fatalf("chunkplay: %v", err)
	}
	if err := opts.Resolve(time.Now()); err != nil {
		fmt.Fprintln(os.Stderr, i18n.T("INVALID_CONFIG", err))
		os.Exit(1)
	}
	if !terminal.IsTerminal() {
		fmt.Fprintln(os.Stderr, i18n.T("NOT_A_TERMINAL", "chunkplay"))
		os.Exit(1)
	}

	c, err := generate(opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, i18n.T("STRATEGY_FAILED", err))
		os.Exit(1)
	}

	keys, err := engineinput.OpenRaw()
	if err != nil {
		log.Fatalf("chunkplay: %v", err)
	}
	defer keys.Close()

	renderer.SetRenderer(tui.New(os.Stdout))
	renderer.Init()
	terminal.HideCursor(os.Stdout)
	defer terminal.ShowCursor(os.Stdout)
	renderer.Clear()

	if err := play(keys, c, opts); err != nil && err != io.EOF {
		keys.Close()
		log.Fatalf("chunkplay: %v", err)
	}
}

// generate builds the configured chunk with the full structural pipeline.
func generate(opts *config.Options) (*chunk.Chunk, error) {
	c := chunk.New(opts.ChunkConfig())
	if err := generator.Dungeon(c, opts.Strategy); err != nil {
		return nil, err
	}
	opts.Debugf(1, "%d rooms, %d exits", len(c.Rooms), len(c.Exits))
	return c, nil
}

// start returns the top-left corner of the first room, or the chunk anchor
// when that corner cannot be stood on.
func start(c *chunk.Chunk) (int, int) {
	if len(c.Rooms) > 0 {
		if r := c.Room(0); gameplay.Walkable(c.At(r.X1, r.Y1)) {
			return r.X1, r.Y1
		}
	}
	a, _ := c.Anchor()
	return a.X, a.Y
}

func newSession(c *chunk.Chunk, opts *config.Options) *gameplay.Session {
	x, y := start(c)
	s := gameplay.NewSession(gameplay.ChunkTerrain{C: c}, gameplay.NewFog(c.Width, c.Height), x, y)
	s.OnDump = func() string {
		player := world.Coords{X: s.Player.X, Y: s.Player.Y}
		path, err := devtools.DumpChunkToFile(c, &player, opts.Dump)
		if err != nil {
			return i18n.T("DUMP_FAILED", err)
		}
		return i18n.T("MAP_DUMPED", path)
	}
	return s
}

// play runs the read-move-draw loop until the player quits.
func play(keys *engineinput.Session, c *chunk.Chunk, opts *config.Options) error {
	s := newSession(c, opts)
	for !s.Quit {
		spec := s.FrameSpec(0, 0, c.Width, c.Height)
		spec.Status = i18n.T("STATUS_LINE", opts.Seed, s.Player.X, s.Player.Y, s.Player.Moves)
		spec.Help = i18n.T("HELP_KEYS")
		renderer.RenderFrame(renderer.BuildFrame(s.Terrain, spec))

		raw, err := keys.ReadRaw()
		if err != nil {
			return err
		}
		intent := engineinput.MapToIntent(engineinput.NewDebouncedInput(raw))
		opts.Debugf(3, "key %q -> %s", raw.Code, engineinput.ActionName(intent.Action))
		gameplay.ProcessIntent(s, intent)
	}
	return nil
}
