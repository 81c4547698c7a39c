package config

import (
	"flag"
	"testing"
	"time"

	"chunky/pkg/game/generator"
)

func TestDefaults(t *testing.T) {
	o := Defaults("test")
	if o.Width != 64 || o.Height != 16 || o.LevelWidth != 4 || o.LevelHeight != 4 {
		t.Errorf("Defaults() sizes = %dx%d in %dx%d, want 64x16 in 4x4", o.Width, o.Height, o.LevelWidth, o.LevelHeight)
	}
	if o.X != 1 || o.Y != 1 || o.Method != "main" {
		t.Errorf("Defaults() = %+v, want position (1,1) and method main", o)
	}
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("CHUNKY_SEED", "42")
	t.Setenv("CHUNKY_WIDTH", "32")
	t.Setenv("CHUNKY_LEVEL_HEIGHT", "2")
	t.Setenv("CHUNKY_METHOD", "grand")
	t.Setenv("CHUNKY_DEBUG", "not-a-number")

	o := Load("test")
	if o.Seed != 42 || o.Width != 32 || o.LevelHeight != 2 || o.Method != "grand" {
		t.Errorf("Load() = %+v, want seed 42, width 32, level height 2, method grand", o)
	}
	if o.Debug != 0 {
		t.Errorf("Load() debug = %d, want 0 for an invalid value", o.Debug)
	}
}

func TestRegisterFlags_OverrideEnvironment(t *testing.T) {
	t.Setenv("CHUNKY_WIDTH", "32")
	o := Load("test")
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	o.RegisterFlags(fs)
	if err := fs.Parse([]string{"-W", "128", "-seed", "7", "-m", "inner", "-level-x-pos", "2"}); err != nil {
		t.Fatalf("Parse() = %v", err)
	}
	if o.Width != 128 || o.Seed != 7 || o.Method != "inner" || o.X != 2 {
		t.Errorf("after flags = %+v, want width 128, seed 7, method inner, x 2", o)
	}
	if o.Height != 16 {
		t.Errorf("unset flag changed height to %d", o.Height)
	}
}

func TestResolve(t *testing.T) {
	o := Defaults("test")
	o.Method = "Grand"
	now := time.Unix(1700000000, 0)
	if err := o.Resolve(now); err != nil {
		t.Fatalf("Resolve() = %v", err)
	}
	if o.Seed != 1700000000 {
		t.Errorf("Resolve() seed = %d, want the Unix time", o.Seed)
	}
	if o.Strategy != generator.MethodGrand {
		t.Errorf("Resolve() strategy = %s, want grand", o.Strategy)
	}
}

func TestResolve_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Options)
	}{
		{"unknown method", func(o *Options) { o.Method = "spiral" }},
		{"debug too high", func(o *Options) { o.Debug = 4 }},
		{"width not power of two", func(o *Options) { o.Width = 60 }},
		{"position outside level", func(o *Options) { o.X = 9 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := Defaults("test")
			o.Seed = 1
			tt.mutate(o)
			if err := o.Resolve(time.Now()); err == nil {
				t.Error("Resolve() = nil, want error")
			}
		})
	}
}

func TestChunkConfig(t *testing.T) {
	o := Defaults("test")
	o.Seed = 42
	a, b := o.ChunkConfig(), o.ChunkConfig()
	if a.X != 1 || a.Y != 1 || a.Width != 64 {
		t.Errorf("ChunkConfig() = %+v", a)
	}
	if a.Chaos != b.Chaos || a.Openness != b.Openness || a.Seed != b.Seed {
		t.Error("ChunkConfig() differs between calls with the same seed")
	}
	if a.Chaos < 0 || a.Chaos > 4 || a.Openness < 0 || a.Openness > 4 {
		t.Errorf("dials = %d, %d, want 0..4", a.Chaos, a.Openness)
	}
	if a.LevelSeed() == a.Seed {
		t.Error("chunk seed not derived from the level seed")
	}
}
