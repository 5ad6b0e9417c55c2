package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/vasalvit/svgpath"
)

// config is the on-disk form of the command line settings.
type config struct {
	Precision   int               `toml:"precision"`
	KeepInvalid bool              `toml:"keep_invalid"`
	ErrorMode   svgpath.ErrorMode `toml:"error_mode"`
	LogLevel    slog.Level        `toml:"log_level"`
}

func defaultConfig() config {
	return config{ErrorMode: svgpath.WarnErrorMode, LogLevel: slog.LevelWarn}
}

func decodeConfig(r io.Reader, c *config) error {
	return toml.NewDecoder(r).DisallowUnknownFields().Decode(c)
}

// loadConfig reads filename over the defaults. An empty filename gives
// the defaults.
func loadConfig(filename string) (config, error) {
	c := defaultConfig()
	if filename == "" {
		return c, nil
	}
	fp, err := os.Open(filename)
	if err != nil {
		return c, err
	}
	defer fp.Close()
	if err := decodeConfig(fp, &c); err != nil {
		return c, fmt.Errorf("error decoding config %s: %w", filename, err)
	}
	return c, nil
}

func (c config) library() svgpath.Config {
	return svgpath.Config{
		Precision:   c.Precision,
		KeepInvalid: c.KeepInvalid,
		ErrorMode:   c.ErrorMode,
	}
}
