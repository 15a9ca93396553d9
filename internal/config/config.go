// Package config holds the settings shared by every example program.
//
// Values come from three places, in increasing priority: the defaults
// an example passes to Load, an optional TOML file named by -config,
// and flags given explicitly on the command line.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type Config struct {
	Title string `toml:"title"`

	Width     int  `toml:"width"`
	Height    int  `toml:"height"`
	Resizable bool `toml:"resizable"`
	Samples   int  `toml:"samples"`

	// GLMajor and GLMinor select the requested core profile context.
	GLMajor int `toml:"gl_major"`
	GLMinor int `toml:"gl_minor"`

	SwapInterval int `toml:"swap_interval"`

	CPUProfile string `toml:"cpuprofile"`
	Stats      bool   `toml:"stats"`
	Seed       int64  `toml:"seed"`
}

// Default returns the settings used by examples that don't override them.
func Default(title string) Config {
	return Config{
		Title:        title,
		Width:        640,
		Height:       480,
		Resizable:    true,
		GLMajor:      4,
		GLMinor:      1,
		SwapInterval: 1,
		Seed:         1,
	}
}

// Aspect returns the width to height ratio of the configured window.
func (cfg Config) Aspect() float32 {
	if cfg.Height == 0 {
		return 1
	}
	return float32(cfg.Width) / float32(cfg.Height)
}

func (cfg Config) validate() error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.GLMajor < 3 || (cfg.GLMajor == 3 && cfg.GLMinor < 3) {
		return fmt.Errorf("OpenGL %d.%d is not supported, need at least 3.3", cfg.GLMajor, cfg.GLMinor)
	}
	if cfg.Samples < 0 {
		return fmt.Errorf("invalid sample count %d", cfg.Samples)
	}
	return nil
}

// IsHelp reports whether err is the result of -h or -help, which is not
// a failure.
func IsHelp(err error) bool { return errors.Is(err, flag.ErrHelp) }

// Flags registers extra example specific flags on the set used by Load.
type Flags func(fs *flag.FlagSet)

// Load parses args on top of defaults.
//
// When -config is given the file is decoded over the defaults and the
// explicitly given flags are applied on top of that.
func Load(defaults Config, args []string, extra ...Flags) (Config, error) {
	cfg := defaults
	path, err := parse(&cfg, args, extra)
	if err != nil {
		return Config{}, err
	}

	if path != "" {
		fromFile := defaults
		if err := decodeFile(path, &fromFile); err != nil {
			return Config{}, err
		}

		cfg = fromFile
		if _, err := parse(&cfg, args, extra); err != nil {
			return Config{}, err
		}
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func parse(cfg *Config, args []string, extra []Flags) (string, error) {
	fs := flag.NewFlagSet(cfg.Title, flag.ContinueOnError)

	var path string
	fs.StringVar(&path, "config", "", "TOML file with settings")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "window width")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "window height")
	fs.BoolVar(&cfg.Resizable, "resizable", cfg.Resizable, "allow resizing the window")
	fs.IntVar(&cfg.Samples, "samples", cfg.Samples, "multisample count")
	fs.IntVar(&cfg.SwapInterval, "swap", cfg.SwapInterval, "swap interval, 0 disables vsync")
	fs.StringVar(&cfg.CPUProfile, "cpuprofile", cfg.CPUProfile, "write cpu profile to file")
	fs.BoolVar(&cfg.Stats, "stats", cfg.Stats, "print timings to stdout")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed")

	for _, register := range extra {
		register(fs)
	}

	if err := fs.Parse(args); err != nil {
		return "", err
	}
	return path, nil
}

func decodeFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("unable to read config %q: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("unable to decode config %q: %w", path, err)
	}
	return nil
}
