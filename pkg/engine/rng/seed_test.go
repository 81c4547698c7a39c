package rng

import "testing"

func TestRoll_Deterministic(t *testing.T) {
	for _, v := range []uint64{0, 1, 42, 1 << 40} {
		a := New2(v, v)
		b := New2(v, v)
		for i := 0; i < 500; i++ {
			ra, rb := a.Roll(-10, 1000), b.Roll(-10, 1000)
			if ra != rb {
				t.Fatalf("seed %d draw %d: %d != %d", v, i, ra, rb)
			}
		}
	}
}

func TestRoll_InRange(t *testing.T) {
	s := New(7)
	seen := make(map[int]bool)
	for i := 0; i < 2000; i++ {
		r := s.Roll(2, 8)
		if r < 2 || r > 8 {
			t.Fatalf("Roll(2, 8) = %d, want value in [2,8]", r)
		}
		seen[r] = true
	}
	if len(seen) != 7 {
		t.Errorf("Roll(2, 8) produced %d distinct values in 2000 draws, want 7", len(seen))
	}
	if r := s.Roll(5, 5); r != 5 {
		t.Errorf("Roll(5, 5) = %d, want 5", r)
	}
}

func TestRoll_MinGreaterThanMaxPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Roll(3, 2) did not panic")
		}
	}()
	s := New(1)
	s.Roll(3, 2)
}

func TestCopyForksStream(t *testing.T) {
	s := New(99)
	s.Roll(0, 100)
	fork := s
	want := s.Roll(0, 1<<20)
	if got := fork.Roll(0, 1<<20); got != want {
		t.Errorf("forked stream draw = %d, want %d", got, want)
	}
	// Advancing the fork must not touch the original.
	fork.Roll(0, 10)
	fork.Roll(0, 10)
	again := New(99)
	again.Roll(0, 100)
	again.Roll(0, 1<<20)
	if s.Roll(0, 1<<20) != again.Roll(0, 1<<20) {
		t.Error("advancing a copy changed the original stream")
	}
}

func TestDerive_IndependentOfStreamPosition(t *testing.T) {
	s := New(42)
	before := s.Derive(1, 3, -2)
	for i := 0; i < 10; i++ {
		s.Roll(0, 9)
	}
	after := s.Derive(1, 3, -2)
	for i := 0; i < 50; i++ {
		if before.Roll(0, 1000) != after.Roll(0, 1000) {
			t.Fatal("Derive result depends on stream position")
		}
	}
}

func TestDerive_DistinctKeys(t *testing.T) {
	base := New(42)
	keys := []struct {
		salt uint64
		x, y int
	}{
		{0, 0, 0}, {0, 1, 0}, {0, 0, 1}, {1, 0, 0}, {0, -1, 0},
	}
	firsts := make(map[int]bool)
	for _, k := range keys {
		d := base.Derive(k.salt, k.x, k.y)
		firsts[d.Roll(0, 1<<30)] = true
	}
	if len(firsts) != len(keys) {
		t.Errorf("derived streams collided: %d distinct first draws for %d keys", len(firsts), len(keys))
	}
}

func TestChance_Bounds(t *testing.T) {
	s := New(3)
	for i := 0; i < 100; i++ {
		if s.Chance(0) {
			t.Fatal("Chance(0) = true")
		}
		if !s.Chance(1000) {
			t.Fatal("Chance(1000) = false")
		}
	}
}

func TestShuffle_Permutation(t *testing.T) {
	s := New(5)
	items := []int{0, 1, 2, 3, 4, 5, 6, 7}
	s.Shuffle(len(items), func(i, j int) { items[i], items[j] = items[j], items[i] })
	seen := make(map[int]bool)
	for _, v := range items {
		seen[v] = true
	}
	if len(seen) != 8 {
		t.Errorf("Shuffle lost elements: %v", items)
	}
}
