// Package config builds the command line options shared by the chunky
// binaries from a .env file, CHUNKY_* environment variables and flags, in that
// order of precedence (flags win).
package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"chunky/pkg/engine/rng"
	"chunky/pkg/game/chunk"
	"chunky/pkg/game/generator"
)

// MaxDebug is the most verbose debug level.
const MaxDebug = 3

// Options holds the settings of one command line run.
type Options struct {
	Name string // binary name, used as the log prefix

	Debug int
	Seed  uint64 // 0 picks the current Unix time in Resolve

	Width, Height           int
	LevelWidth, LevelHeight int
	X, Y                    int

	Method string
	Dump   string
	Lang   string

	// Filled in by Resolve.
	Strategy generator.Method
}

// Defaults returns the options used when nothing is configured.
func Defaults(name string) *Options {
	def := chunk.DefaultConfig(rng.Seed{})
	return &Options{
		Name:        name,
		Width:       def.Width,
		Height:      def.Height,
		LevelWidth:  def.LevelWidth,
		LevelHeight: def.LevelHeight,
		X:           1,
		Y:           1,
		Method:      generator.MethodMain.String(),
	}
}

// Load reads the .env file from the working directory (a missing file is not
// an error) and then the CHUNKY_* environment variables over the defaults.
func Load(name string) *Options {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("%s: ignoring .env: %v", name, err)
	}
	o := Defaults(name)
	o.loadEnv()
	return o
}

func (o *Options) loadEnv() {
	o.Seed = getUintEnv("CHUNKY_SEED", o.Seed)
	o.Width = getIntEnv("CHUNKY_WIDTH", o.Width)
	o.Height = getIntEnv("CHUNKY_HEIGHT", o.Height)
	o.LevelWidth = getIntEnv("CHUNKY_LEVEL_WIDTH", o.LevelWidth)
	o.LevelHeight = getIntEnv("CHUNKY_LEVEL_HEIGHT", o.LevelHeight)
	o.X = getIntEnv("CHUNKY_X", o.X)
	o.Y = getIntEnv("CHUNKY_Y", o.Y)
	o.Method = getEnv("CHUNKY_METHOD", o.Method)
	o.Debug = getIntEnv("CHUNKY_DEBUG", o.Debug)
	o.Lang = getEnv("CHUNKY_LANG", o.Lang)
}

// RegisterFlags binds every option to a short and a long flag on fs. The
// current values become the flag defaults.
func (o *Options) RegisterFlags(fs *flag.FlagSet) {
	intFlag := func(p *int, short, long, usage string) {
		fs.IntVar(p, short, *p, usage)
		fs.IntVar(p, long, *p, usage)
	}
	strFlag := func(p *string, short, long, usage string) {
		fs.StringVar(p, short, *p, usage)
		fs.StringVar(p, long, *p, usage)
	}

	intFlag(&o.Debug, "d", "debug", "debug level (0-3)")
	fs.Uint64Var(&o.Seed, "s", o.Seed, "level seed (0 = current time)")
	fs.Uint64Var(&o.Seed, "seed", o.Seed, "level seed (0 = current time)")
	intFlag(&o.Width, "W", "width", "chunk width in tiles (power of two)")
	intFlag(&o.Height, "H", "height", "chunk height in tiles (power of two)")
	intFlag(&o.LevelWidth, "lw", "level-width", "level width in chunks")
	intFlag(&o.LevelHeight, "lh", "level-height", "level height in chunks")
	intFlag(&o.X, "x", "level-x-pos", "chunk x position in the level")
	intFlag(&o.Y, "y", "level-y-pos", "chunk y position in the level")
	strFlag(&o.Method, "m", "method", "connection method: main, inner or grand")
	fs.StringVar(&o.Dump, "dump", o.Dump, "write a debug dump of the chunk to this file")
	fs.StringVar(&o.Lang, "lang", o.Lang, "message language")
}

// Resolve fills in the seed when none was given, parses the method and
// checks the chunk configuration.
func (o *Options) Resolve(now time.Time) error {
	if o.Seed == 0 {
		o.Seed = uint64(now.Unix())
	}
	if o.Debug < 0 || o.Debug > MaxDebug {
		return fmt.Errorf("debug level %d outside 0..%d", o.Debug, MaxDebug)
	}
	m, err := generator.ParseMethod(strings.ToLower(o.Method))
	if err != nil {
		return err
	}
	o.Strategy = m
	return o.ChunkConfig().Validate()
}

// ChunkConfig builds the configuration of the selected chunk, with its seed
// derived from the level seed. Chaos and openness are rolled from the seed so
// a seed always names the same level.
func (o *Options) ChunkConfig() chunk.Config {
	s := rng.New(o.Seed)
	cfg := chunk.DefaultConfig(rng.New(o.Seed))
	cfg.Width, cfg.Height = o.Width, o.Height
	cfg.LevelWidth, cfg.LevelHeight = o.LevelWidth, o.LevelHeight
	cfg.Chaos = s.Roll(chunk.MinDial, chunk.MaxDial)
	cfg.Openness = s.Roll(chunk.MinDial, chunk.MaxDial)
	return cfg.At(o.X, o.Y)
}

// Debugf logs when the debug level is at least level.
func (o *Options) Debugf(level int, format string, args ...any) {
	if o.Debug >= level {
		log.Printf("%s: %s", o.Name, fmt.Sprintf(format, args...))
	}
}

// Helper functions for environment variable access

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getIntEnv(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Warning: invalid integer value for %s: %s, using default: %d", key, value, defaultValue)
		return defaultValue
	}
	return intValue
}

func getUintEnv(key string, defaultValue uint64) uint64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	v, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		log.Printf("Warning: invalid seed value for %s: %s, using default: %d", key, value, defaultValue)
		return defaultValue
	}
	return v
}
