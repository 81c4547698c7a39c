package world

import "testing"

func TestFloorDiv(t *testing.T) {
	tests := []struct {
		value, divisor, want int
	}{
		{0, 64, 0},
		{63, 64, 0},
		{64, 64, 1},
		{-1, 64, -1},
		{-64, 64, -1},
		{-65, 64, -2},
		{1000, 32, 31},
		{-1000, 32, -32},
	}
	for _, tt := range tests {
		if got := FloorDiv(tt.value, tt.divisor); got != tt.want {
			t.Errorf("FloorDiv(%d, %d) = %d, want %d", tt.value, tt.divisor, got, tt.want)
		}
	}
}

func TestSplit_RoundTrip(t *testing.T) {
	for _, dim := range []int{1, 16, 64} {
		for v := -300; v <= 300; v++ {
			c, local := Split(v, dim)
			if local < 0 || local >= dim {
				t.Fatalf("Split(%d, %d) local = %d, want 0 <= local < %d", v, dim, local, dim)
			}
			if c*dim+local != v {
				t.Fatalf("Split(%d, %d) = (%d, %d), does not round-trip", v, dim, c, local)
			}
		}
	}
}

func TestDirection_OppositeAndDelta(t *testing.T) {
	for _, d := range AllDirections() {
		dx, dy := d.Delta()
		ox, oy := d.Opposite().Delta()
		if dx != -ox || dy != -oy {
			t.Errorf("%v.Delta() = (%d,%d), opposite delta (%d,%d)", d, dx, dy, ox, oy)
		}
		back, ok := FromDelta(dx, dy)
		if !ok || back != d {
			t.Errorf("FromDelta(%v.Delta()) = %v, %v", d, back, ok)
		}
	}
	if _, ok := FromDelta(1, 1); ok {
		t.Error("FromDelta(1, 1) reported a direction")
	}
}

func TestGrid_Bounds(t *testing.T) {
	g := NewGrid(4, 3, 7)
	if g.Len() != 12 {
		t.Fatalf("Len() = %d, want 12", g.Len())
	}
	if g.Get(3, 2) != 7 {
		t.Errorf("Get(3, 2) = %d, want fill value 7", g.Get(3, 2))
	}
	if g.Set(4, 0, 1) {
		t.Error("Set(4, 0) = true, want false (out of bounds)")
	}
	if !g.Set(1, 1, 9) || g.Get(1, 1) != 9 {
		t.Error("Set(1, 1, 9) did not store the value")
	}
	if !g.IsOnPerimeter(0, 1) || g.IsOnPerimeter(1, 1) {
		t.Error("IsOnPerimeter misclassified cells")
	}
	x, y := g.Position(g.Index(2, 1))
	if x != 2 || y != 1 {
		t.Errorf("Position(Index(2,1)) = (%d,%d)", x, y)
	}
	c := g.Clone()
	c.Set(0, 0, 0)
	if g.Get(0, 0) != 7 {
		t.Error("Clone shares storage with the original")
	}
}

func TestCalculateFOV_WallBlocks(t *testing.T) {
	// 7x1 corridor with a wall at x=3: from x=0 we see up to the wall only.
	blocks := func(x, y int) bool { return x == 3 }
	seen := make(map[Coords]bool)
	for _, c := range CalculateFOV(7, 1, blocks, 0, 0, 6) {
		seen[c] = true
	}
	for x := 0; x <= 3; x++ {
		if !seen[Coords{x, 0}] {
			t.Errorf("(%d,0) not visible, want visible", x)
		}
	}
	for x := 4; x < 7; x++ {
		if seen[Coords{x, 0}] {
			t.Errorf("(%d,0) visible behind wall", x)
		}
	}
}
