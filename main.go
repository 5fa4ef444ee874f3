package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"SignatureBoard/internal/config"
	"SignatureBoard/internal/export"
	"SignatureBoard/internal/logging"
	"SignatureBoard/internal/script"
	"SignatureBoard/internal/surface"
	"SignatureBoard/internal/ui"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:   "signatureboard",
		Usage:  "draw a signature and save it as a PNG",
		Flags:  config.Flags(),
		Action: runWindow,
		Commands: []*cli.Command{
			{
				Name:      "render",
				Usage:     "replay a gesture script and write the export without opening a window",
				ArgsUsage: " ",
				Flags: []cli.Flag{
					&cli.PathFlag{Name: "events", Aliases: []string{"e"}, Required: true, Usage: "JSON gesture script"},
					&cli.PathFlag{Name: "out", Aliases: []string{"o"}, Value: export.FileName, Usage: "output file"},
					&cli.BoolFlag{Name: "pdf", Usage: "write a PDF instead of a PNG"},
				},
				Action: runRender,
			},
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func setup(c *cli.Context) (config.Config, error) {
	cfg, err := config.FromContext(c)
	if err != nil {
		return cfg, err
	}
	logging.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))
	return cfg, nil
}

func runWindow(c *cli.Context) error {
	cfg, err := setup(c)
	if err != nil {
		return err
	}
	ui.RunApp(cfg)
	return nil
}

func runRender(c *cli.Context) (err error) {
	cfg, err := setup(c)
	if err != nil {
		return err
	}

	in, err := os.Open(c.Path("events"))
	if err != nil {
		return err
	}
	defer in.Close()
	events, err := script.Decode(in)
	if err != nil {
		return err
	}

	s := surface.New(cfg.SurfaceOptions()...)
	if err := script.Play(s, events); err != nil {
		return err
	}
	// Checked before creating the output so an empty canvas leaves no file.
	if s.Empty() {
		return cli.Exit(export.ErrCanvasEmpty.Error(), 1)
	}

	write := export.PNG
	if c.Bool("pdf") {
		write = export.PDF
	}
	out, err := os.Create(c.Path("out"))
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()
	if err := write(out, s); err != nil {
		return fmt.Errorf("export %s: %w", c.Path("out"), err)
	}
	logging.Logger().Info("[render] done", "out", c.Path("out"), "strokes", s.Strokes())
	return nil
}
