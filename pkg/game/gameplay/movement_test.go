package gameplay

import (
	"testing"

	engineinput "chunky/pkg/engine/input"
	"chunky/pkg/engine/rng"
	"chunky/pkg/engine/world"
	"chunky/pkg/game/chunk"
	"chunky/pkg/game/chunkview"
	"chunky/pkg/game/tile"
)

// makeCorridor returns a 16x8 chunk with an east-west corridor on row 3 from
// x=2 to x=12, walled above and below.
func makeCorridor(t *testing.T) *chunk.Chunk {
	t.Helper()
	cfg := chunk.DefaultConfig(rng.New(7))
	cfg.Width, cfg.Height = 16, 8
	c := chunk.New(cfg)
	for x := 1; x <= 13; x++ {
		c.Build(x, 2, tile.Wall)
		c.Build(x, 4, tile.Wall)
	}
	for x := 2; x <= 12; x++ {
		c.Build(x, 3, tile.Empty)
	}
	c.Build(1, 3, tile.Wall)
	c.Build(13, 3, tile.Wall)
	return c
}

func TestCanOpenOneWay(t *testing.T) {
	tests := []struct {
		t      tile.Tile
		dx, dy int
		want   bool
	}{
		{tile.OneWayTop, 0, -1, true},
		{tile.OneWayTop, 0, 1, false},
		{tile.OneWayBottom, 0, 1, true},
		{tile.OneWayLeft, -1, 0, true},
		{tile.OneWayLeft, 1, 0, false},
		{tile.OneWayRight, 1, 0, true},
		{tile.OneWayRight, 0, -1, false},
		{tile.DoorClosed, 1, 0, false},
		{tile.Empty, 1, 0, false},
	}
	for _, tt := range tests {
		if got := CanOpenOneWay(tt.t, tt.dx, tt.dy); got != tt.want {
			t.Errorf("CanOpenOneWay(%s, %d, %d) = %v, want %v", tt.t, tt.dx, tt.dy, got, tt.want)
		}
	}
}

func TestTryMove_Floor(t *testing.T) {
	m := ChunkTerrain{makeCorridor(t)}
	x, y, out := TryMove(m, 2, 3, world.East)
	if out != Moved || x != 3 || y != 3 {
		t.Errorf("TryMove east on floor = (%d, %d, %s), want (3, 3, moved)", x, y, out)
	}
}

func TestTryMove_WallBlocks(t *testing.T) {
	m := ChunkTerrain{makeCorridor(t)}
	x, y, out := TryMove(m, 2, 3, world.North)
	if out != Blocked || x != 2 || y != 3 {
		t.Errorf("TryMove into wall = (%d, %d, %s), want (2, 3, blocked)", x, y, out)
	}
}

func TestTryMove_OutsideChunkBlocks(t *testing.T) {
	c := makeCorridor(t)
	c.Build(0, 3, tile.Empty)
	m := ChunkTerrain{c}
	if _, _, out := TryMove(m, 0, 3, world.West); out != Blocked {
		t.Errorf("TryMove off the chunk = %s, want blocked", out)
	}
	m.SetTile(-1, 3, tile.Empty)
}

func TestTryMove_ClosedDoorOpensWithoutMoving(t *testing.T) {
	c := makeCorridor(t)
	c.Build(3, 3, tile.DoorClosed)
	m := ChunkTerrain{c}

	x, y, out := TryMove(m, 2, 3, world.East)
	if out != OpenedDoor || x != 2 || y != 3 {
		t.Fatalf("TryMove into closed door = (%d, %d, %s), want (2, 3, opened door)", x, y, out)
	}
	if got := c.At(3, 3); got != tile.DoorOpen {
		t.Fatalf("door after bump = %s, want door_open", got)
	}
	if x, _, out = TryMove(m, 2, 3, world.East); out != Moved || x != 3 {
		t.Errorf("TryMove through open door = (%d, %s), want (3, moved)", x, out)
	}
}

func TestTryMove_OneWayDoor(t *testing.T) {
	c := makeCorridor(t)
	c.Build(5, 3, tile.OneWayRight)
	m := ChunkTerrain{c}

	if _, _, out := TryMove(m, 6, 3, world.West); out != Blocked {
		t.Errorf("TryMove against one-way door = %s, want blocked", out)
	}
	if got := c.At(5, 3); got != tile.OneWayRight {
		t.Errorf("one-way door after wrong-way bump = %s, want one_way_right", got)
	}

	x, _, out := TryMove(m, 4, 3, world.East)
	if out != Moved || x != 5 {
		t.Errorf("TryMove with one-way door = (%d, %s), want (5, moved)", x, out)
	}
	if got := c.At(5, 3); got != tile.DoorOpen {
		t.Errorf("one-way door after passing = %s, want door_open", got)
	}
}

func TestTryMove_EntitiesAndFeaturesBlock(t *testing.T) {
	c := makeCorridor(t)
	c.Place(3, 3, tile.Boss)
	c.Build(6, 3, tile.Chest)
	m := ChunkTerrain{c}

	if _, _, out := TryMove(m, 2, 3, world.East); out != Blocked {
		t.Errorf("TryMove into boss = %s, want blocked", out)
	}
	if _, _, out := TryMove(m, 5, 3, world.East); out != Blocked {
		t.Errorf("TryMove into chest = %s, want blocked", out)
	}
}

func TestPlayerMove_CountsMoves(t *testing.T) {
	m := ChunkTerrain{makeCorridor(t)}
	p := Player{X: 2, Y: 3}
	p.Move(m, world.East)
	p.Move(m, world.East)
	p.Move(m, world.North)
	if p.X != 4 || p.Y != 3 || p.Moves != 2 {
		t.Errorf("player = %+v, want {X:4 Y:3 Moves:2}", p)
	}
}

func TestFog_RevealStopsAtWalls(t *testing.T) {
	c := makeCorridor(t)
	m := ChunkTerrain{c}
	fog := NewFog(c.Width, c.Height)
	fog.Reveal(m, 4, 3)

	if !fog.Discovered(4, 3) || !fog.Discovered(8, 3) {
		t.Error("corridor tiles in range not discovered")
	}
	if !fog.Discovered(4, 2) {
		t.Error("wall next to the player not discovered")
	}
	if fog.Discovered(4, 1) || fog.Discovered(4, 6) {
		t.Error("tiles behind the wall discovered")
	}
	if fog.Discovered(-1, 0) {
		t.Error("Discovered outside the fog = true")
	}

	fog.Toggle()
	if !fog.Discovered(4, 6) {
		t.Error("disabled fog hides tiles")
	}
}

func TestProcessIntent(t *testing.T) {
	c := makeCorridor(t)
	c.Build(4, 3, tile.DoorClosed)
	var moved []world.Coords
	s := NewSession(ChunkTerrain{c}, NewFog(c.Width, c.Height), 2, 3)
	s.OnMove = func(x, y int) { moved = append(moved, world.Coords{X: x, Y: y}) }
	s.OnDump = func() string { return "dumped" }

	intent := func(a engineinput.Action) engineinput.Intent { return engineinput.Intent{Action: a} }

	ProcessIntent(s, intent(engineinput.ActionMoveEast))
	ProcessIntent(s, intent(engineinput.ActionMoveEast))
	if s.Message == "" {
		t.Error("opening a door left no message")
	}
	ProcessIntent(s, intent(engineinput.ActionMoveEast))
	if s.Player.X != 4 || len(moved) != 2 {
		t.Errorf("player x = %d after %d moves, want 4 after 2", s.Player.X, len(moved))
	}

	ProcessIntent(s, intent(engineinput.ActionDumpMap))
	if s.Message != "dumped" {
		t.Errorf("dump message = %q, want %q", s.Message, "dumped")
	}

	if s.Visible(4, 6) {
		t.Error("tile behind the wall visible before toggling fog")
	}
	ProcessIntent(s, intent(engineinput.ActionToggleFog))
	if !s.Visible(4, 6) {
		t.Error("tile hidden after toggling fog off")
	}

	ProcessIntent(s, intent(engineinput.ActionQuit))
	if !s.Quit {
		t.Error("quit intent did not set Quit")
	}
}

func TestNewViewSession(t *testing.T) {
	v, err := chunkview.New(chunk.DefaultConfig(rng.New(3)), 40, 20)
	if err != nil {
		t.Fatalf("chunkview.New() = %v", err)
	}
	s := NewViewSession(v, 10, 10)
	if !Walkable(v.Tile(s.Player.X, s.Player.Y)) {
		t.Fatalf("player starts on %s at (%d, %d)", v.Tile(s.Player.X, s.Player.Y), s.Player.X, s.Player.Y)
	}
	if x, y := v.Position(); x != s.Player.X || y != s.Player.Y {
		t.Errorf("view centred on (%d, %d), want player (%d, %d)", x, y, s.Player.X, s.Player.Y)
	}
	if !s.Visible(s.Player.X, s.Player.Y) {
		t.Error("start tile not revealed")
	}

	for _, dir := range world.AllDirections() {
		if _, _, out := TryMove(v, s.Player.X, s.Player.Y, dir); out != Moved {
			continue
		}
		ProcessIntent(s, engineinput.Intent{Action: moveAction(dir)})
		if x, y := v.Position(); x != s.Player.X || y != s.Player.Y {
			t.Errorf("view at (%d, %d) after move, want (%d, %d)", x, y, s.Player.X, s.Player.Y)
		}
		break
	}

	spec := s.ViewFrameSpec(v)
	if spec.Width != 40 || spec.Height != 20 || !spec.ShowPlayer {
		t.Errorf("ViewFrameSpec() = %+v", spec)
	}
}

func moveAction(d world.Direction) engineinput.Action {
	switch d {
	case world.North:
		return engineinput.ActionMoveNorth
	case world.South:
		return engineinput.ActionMoveSouth
	case world.West:
		return engineinput.ActionMoveWest
	}
	return engineinput.ActionMoveEast
}
