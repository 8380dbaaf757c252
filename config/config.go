package config

import (
	"flag"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/roman-mazur/interactive-canvas/painter"
)

// Config holds the settings of the canvas application.
type Config struct {
	Title        string `yaml:"title"`
	Width        int    `yaml:"width"`
	Height       int    `yaml:"height"`
	Addr         string `yaml:"addr"`
	InitialColor string `yaml:"initial_color"`
	Debug        bool   `yaml:"debug"`
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		Title:        "Interactive Canvas Example",
		Width:        200,
		Height:       200,
		Addr:         ":17000",
		InitialColor: "blue",
	}
}

// Load reads a YAML file on top of the defaults. Missing keys keep their
// default values.
func Load(path string) (Config, error) {
	cfg, err := readFile(path)
	if err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func readFile(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "read config %q", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config %q", path)
	}
	return cfg, nil
}

// RegisterFlags binds command line flags to the fields of cfg. Values set
// on the command line override the ones already in cfg.
func (cfg *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&cfg.Title, "title", cfg.Title, "Window title")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "Canvas width in pixels")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "Canvas height in pixels")
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "Address of the control server, empty to disable")
	fs.StringVar(&cfg.InitialColor, "color", cfg.InitialColor, "Initial color: red, green or blue")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Enable rasterizer diagnostics")
}

// FromArgs builds the configuration from command line arguments: defaults,
// then the YAML file named by -config, then the remaining flags.
func FromArgs(name string, args []string) (Config, error) {
	cfg := Default()
	fs := newFlagSet(name, &cfg)
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	path := fs.Lookup("config").Value.String()
	if path == "" {
		return cfg, cfg.Validate()
	}

	loaded, err := readFile(path)
	if err != nil {
		return loaded, err
	}
	// Прапорці командного рядка мають пріоритет над файлом.
	if err := newFlagSet(name, &loaded).Parse(args); err != nil {
		return loaded, err
	}
	return loaded, loaded.Validate()
}

func newFlagSet(name string, cfg *Config) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.String("config", "", "Path to a YAML config file")
	cfg.RegisterFlags(fs)
	return fs
}

// Validate checks that the configuration can be used to build a window.
func (cfg Config) Validate() error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return errors.Errorf("invalid canvas size %dx%d", cfg.Width, cfg.Height)
	}
	if _, err := painter.ParseColor(cfg.InitialColor); err != nil {
		return errors.Wrap(err, "invalid initial color")
	}
	return nil
}

// Color returns the parsed initial color. Call Validate first.
func (cfg Config) Color() painter.Color {
	c, _ := painter.ParseColor(cfg.InitialColor)
	return c
}
