// Package config binds command line flags to the board settings.
package config

import (
	"fmt"
	"log/slog"

	"SignatureBoard/internal/logging"
	"SignatureBoard/internal/state"
	"SignatureBoard/internal/surface"

	"github.com/urfave/cli/v2"
)

type Config struct {
	Width, Height    int
	Style            state.Style
	ResetTransparent bool
	LogLevel         slog.Level
}

func Default() Config {
	return Config{
		Width:    surface.DefaultWidth,
		Height:   surface.DefaultHeight,
		Style:    state.DefaultStyle(),
		LogLevel: slog.LevelWarn,
	}
}

// Flags are shared by every command.
func Flags() []cli.Flag {
	d := Default()
	return []cli.Flag{
		&cli.IntFlag{Name: "width", Value: d.Width, Usage: "canvas width in pixels"},
		&cli.IntFlag{Name: "height", Value: d.Height, Usage: "canvas height in pixels"},
		&cli.StringFlag{Name: "stroke-color", Value: FormatColor(d.Style.StrokeColor), Usage: "initial stroke color (#rrggbb or name)"},
		&cli.Float64Flag{Name: "stroke-width", Value: float64(d.Style.StrokeWidth), Usage: "initial stroke width, 1 to 10"},
		&cli.StringFlag{Name: "background", Value: FormatColor(d.Style.Background), Usage: "initial background color, or transparent"},
		&cli.BoolFlag{Name: "transparent", Usage: "export with a transparent background"},
		&cli.BoolFlag{Name: "reset-transparent", Usage: "reset also turns the transparent background off"},
		&cli.StringFlag{Name: "log-level", Value: d.LogLevel.String(), Usage: "debug, info, warn or error", EnvVars: []string{"SIGNATUREBOARD_LOG"}},
	}
}

// FromContext reads and validates the flags set on c.
func FromContext(c *cli.Context) (Config, error) {
	cfg := Default()
	cfg.Width = c.Int("width")
	cfg.Height = c.Int("height")
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return cfg, fmt.Errorf("canvas size %dx%d: must be positive", cfg.Width, cfg.Height)
	}

	var err error
	if cfg.Style.StrokeColor, err = ParseColor(c.String("stroke-color")); err != nil {
		return cfg, fmt.Errorf("stroke-color: %w", err)
	}
	if cfg.Style.Background, err = ParseColor(c.String("background")); err != nil {
		return cfg, fmt.Errorf("background: %w", err)
	}
	cfg.Style.StrokeWidth = float32(c.Float64("stroke-width"))
	if err := state.ValidateWidth(cfg.Style.StrokeWidth); err != nil {
		return cfg, fmt.Errorf("stroke-width: %w", err)
	}
	cfg.Style.Transparent = c.Bool("transparent")
	cfg.ResetTransparent = c.Bool("reset-transparent")

	if cfg.LogLevel, err = logging.ParseLevel(c.String("log-level")); err != nil {
		return cfg, fmt.Errorf("log-level: %w", err)
	}
	return cfg, nil
}

// SurfaceOptions builds a surface matching cfg.
func (cfg Config) SurfaceOptions() []surface.Option {
	return []surface.Option{
		surface.WithSize(cfg.Width, cfg.Height),
		surface.WithStyle(cfg.Style),
		surface.WithResetTransparent(cfg.ResetTransparent),
	}
}
