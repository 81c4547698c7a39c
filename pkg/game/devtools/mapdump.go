// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"chunky/pkg/engine/world"
	"chunky/pkg/game/chunk"
	"chunky/pkg/game/renderer"
	"chunky/pkg/game/tile"
)

// MapDumpFilename is the default file written by DumpChunkToFile.
const MapDumpFilename = "map.txt"

// cellSymbol returns the dump character for (x, y): exits are 'E', the
// player '@' and everything else uses the renderer glyphs.
func cellSymbol(c *chunk.Chunk, x, y int, player *world.Coords) rune {
	if player != nil && player.X == x && player.Y == y {
		return renderer.PlayerIcon
	}
	if e := c.EntityAt(x, y); e != tile.None {
		return renderer.EntityGlyph(e)
	}
	if c.IsExit(x, y) && !c.At(x, y).IsFeature() {
		return 'E'
	}
	return renderer.Glyph(c.At(x, y))
}

// writeMapGrid writes the chunk with a column ruler every ten tiles.
func writeMapGrid(w io.Writer, c *chunk.Chunk, player *world.Coords) {
	fmt.Fprint(w, "   ")
	for x := 0; x < c.Width; x++ {
		fmt.Fprint(w, x%10)
	}
	fmt.Fprintln(w)
	for y := 0; y < c.Height; y++ {
		fmt.Fprintf(w, "%2d ", y)
		for x := 0; x < c.Width; x++ {
			fmt.Fprintf(w, "%c", cellSymbol(c, x, y, player))
		}
		fmt.Fprintln(w)
	}
}

// errWriter keeps the first write error and drops later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	ew.err = err
	return n, err
}

// oneWaySolid treats every one-way door as a wall.
func oneWaySolid(c *chunk.Chunk) chunk.Blocker {
	return func(x, y int) bool { return c.At(x, y).IsOneWay() }
}

// DumpChunk writes a full debug dump of c: metadata, legend, the map, room
// and exit registries, entities and tile counts. player may be nil.
// Format is human-readable (sections, key: value, consistent structure).
func DumpChunk(out io.Writer, c *chunk.Chunk, player *world.Coords) error {
	w := &errWriter{w: out}
	cfg := c.Config
	a, b := cfg.LevelSeed().Origin()

	// --- Metadata ---
	fmt.Fprintln(w, "=== CHUNK DUMP (layout, registries, entities) ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "level_seed: %d,%d\n", a, b)
	fmt.Fprintf(w, "chunk: %d,%d\n", cfg.X, cfg.Y)
	fmt.Fprintf(w, "level_size: %dx%d\n", cfg.LevelWidth, cfg.LevelHeight)
	fmt.Fprintf(w, "chunk_size: %dx%d\n", c.Width, c.Height)
	fmt.Fprintf(w, "chaos: %d\n", cfg.Chaos)
	fmt.Fprintf(w, "openness: %d\n", cfg.Openness)
	fmt.Fprintf(w, "coordinate_system: x,y (0-based, y grows south)\n")
	if player != nil {
		fmt.Fprintf(w, "player: %d,%d\n", player.X, player.Y)
	}
	fmt.Fprintf(w, "connected: %v\n", c.Connected())
	fmt.Fprintf(w, "connected_one_way_solid: %v\n", c.IsConnected(oneWaySolid(c)))
	if err := c.Validate(); err != nil {
		fmt.Fprintf(w, "validate: %v\n", err)
	} else {
		fmt.Fprintln(w, "validate: ok")
	}
	fmt.Fprintln(w, "")

	// --- Legend ---
	fmt.Fprintln(w, "--- Legend ---")
	fmt.Fprintln(w, ". floor  # wall  * debris  + closed door  ' open door  ^ v < > one-way doors  E exit  @ player")
	fmt.Fprintln(w, "& chest  A altar  R shrine  G grove  t shrub  S sentinel  U turret  I totem  ~ trap")
	fmt.Fprintln(w, "B boss  L leader  s support  T tank  d damage  P specialist  w wild")
	fmt.Fprintln(w, "")

	// --- Map ---
	fmt.Fprintln(w, "--- Map ---")
	writeMapGrid(w, c, player)
	fmt.Fprintln(w, "")

	// --- Rooms ---
	fmt.Fprintf(w, "--- Rooms (%d) ---\n", len(c.Rooms))
	for _, r := range c.Rooms {
		fmt.Fprintf(w, "  index: %d x1: %d y1: %d x2: %d y2: %d size: %dx%d\n", r.Index, r.X1, r.Y1, r.X2, r.Y2, r.Width(), r.Height())
	}
	fmt.Fprintln(w, "")

	// --- Exits ---
	fmt.Fprintf(w, "--- Exits (%d) ---\n", len(c.Exits))
	for _, e := range c.Exits {
		fmt.Fprintf(w, "  x: %d y: %d side: %s interior: %v\n", e.X, e.Y, e.Side, e.Interior)
	}
	fmt.Fprintln(w, "")

	// --- Entities ---
	fmt.Fprintln(w, "--- Entities ---")
	c.ForEach(func(x, y int, _ tile.Tile) {
		if e := c.EntityAt(x, y); e != tile.None {
			room := -1
			if r, ok := c.RoomAt(x, y); ok {
				room = r.Index
			}
			fmt.Fprintf(w, "  x: %d y: %d entity: %s room: %d\n", x, y, e, room)
		}
	})
	fmt.Fprintln(w, "")

	// --- Tile counts ---
	fmt.Fprintln(w, "--- Tiles ---")
	counts := make(map[tile.Tile]int)
	c.ForEach(func(_, _ int, t tile.Tile) { counts[t]++ })
	kinds := make([]tile.Tile, 0, len(counts))
	for t := range counts {
		kinds = append(kinds, t)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	for _, t := range kinds {
		fmt.Fprintf(w, "  %s: %d\n", t, counts[t])
	}
	return w.err
}

// DumpChunkToFile writes DumpChunk output to filename (MapDumpFilename when
// empty) and returns the absolute path written.
func DumpChunkToFile(c *chunk.Chunk, player *world.Coords, filename string) (string, error) {
	if c == nil {
		return "", fmt.Errorf("no chunk")
	}
	if filename == "" {
		filename = MapDumpFilename
	}

	absPath, err := filepath.Abs(filename)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	if err := DumpChunk(f, c, player); err != nil {
		f.Close()
		return "", err
	}
	return absPath, f.Close()
}
