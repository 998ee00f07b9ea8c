package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/urfave/cli/v3"

	"github.com/hailam/focuschess/internal/config"
	"github.com/hailam/focuschess/internal/logx"
	"github.com/hailam/focuschess/internal/projection"
	"github.com/hailam/focuschess/internal/session"
	"github.com/hailam/focuschess/internal/snapshot"
	"github.com/hailam/focuschess/internal/term"
	"github.com/hailam/focuschess/internal/ui"
)

const envPrefix = "FOCUSCHESS_"

func env(name string) cli.ValueSourceChain {
	return cli.EnvVars(envPrefix + name)
}

func configFlags() []cli.Flag {
	def := config.Default()
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "projection",
			Aliases: []string{"p"},
			Value:   def.Projection,
			Usage:   "board projection: orthogonal or isometric",
			Sources: env("PROJECTION"),
		},
		&cli.IntFlag{
			Name:    "square-size",
			Value:   def.SquareSize,
			Usage:   "orthogonal square edge in pixels",
			Sources: env("SQUARE_SIZE"),
		},
		&cli.StringFlag{
			Name:    "iso-preset",
			Value:   def.IsoPreset,
			Usage:   "isometric preset: " + strings.Join(projection.IsometricPresetNames(), ", "),
			Sources: env("ISO_PRESET"),
		},
		&cli.IntFlag{Name: "tile-width", Usage: "isometric tile width override", Sources: env("TILE_WIDTH")},
		&cli.IntFlag{Name: "tile-height", Usage: "isometric tile height override", Sources: env("TILE_HEIGHT")},
		&cli.IntFlag{Name: "offset-x", Usage: "isometric x offset override", Sources: env("OFFSET_X")},
		&cli.IntFlag{Name: "offset-y", Usage: "isometric y offset override", Sources: env("OFFSET_Y")},
		&cli.StringFlag{
			Name:    "layout",
			Aliases: []string{"l"},
			Value:   def.Layout,
			Usage:   "initial layout: standard, single-pawn or empty",
			Sources: env("LAYOUT"),
		},
		&cli.StringFlag{
			Name:    "fen",
			Usage:   "initial layout as FEN, overrides --layout",
			Sources: env("FEN"),
		},
		&cli.DurationFlag{
			Name:    "deselect-delay",
			Value:   def.DeselectDelay,
			Usage:   "delay before a dropped piece loses its highlight; negative uses the layout default",
			Sources: env("DESELECT_DELAY"),
		},
		&cli.IntFlag{Name: "width", Value: def.ScreenWidth, Usage: "window width", Sources: env("WIDTH")},
		&cli.IntFlag{Name: "height", Value: def.ScreenHeight, Usage: "window height", Sources: env("HEIGHT")},
		&cli.BoolFlag{Name: "mute", Aliases: []string{"m"}, Usage: "disable sound effects", Sources: env("MUTE")},
		&cli.StringFlag{
			Name:    "log-level",
			Value:   def.LogLevel,
			Usage:   "logger level: " + strings.Join(logx.LevelNames(), ", "),
			Sources: env("LOG_LEVEL"),
		},
		&cli.StringFlag{Name: "log-file", Usage: "append logs to this file instead of stderr", Sources: env("LOG_FILE")},
		&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "development logging; broken invariants panic", Sources: env("DEBUG")},
	}
}

func playFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "play",
		Usage: "commands to apply before output, e.g. \"activate right right activate\"",
	}
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:           "focuschess",
		Usage:          "move chess pieces with a keyboard cursor",
		Flags:          configFlags(),
		DefaultCommand: "gui",
		Commands: []*cli.Command{
			{
				Name:   "gui",
				Usage:  "open the board in a window",
				Action: runGUI,
			},
			{
				Name:   "term",
				Usage:  "play in the terminal",
				Action: runTerm,
			},
			{
				Name:  "print",
				Usage: "print the board as text and exit",
				Flags: []cli.Flag{
					playFlag(),
					&cli.BoolFlag{Name: "color", Value: !color.NoColor, Usage: "colorize output"},
				},
				Action: runPrint,
			},
			{
				Name:  "snapshot",
				Usage: "render the board to a PNG file",
				Flags: []cli.Flag{
					playFlag(),
					&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Value: "board.png", Usage: "output file, - for stdout"},
					&cli.IntFlag{Name: "margin", Value: snapshot.DefaultOptions().Margin, Usage: "margin around the board in pixels"},
					&cli.BoolFlag{Name: "labels", Value: true, Usage: "draw square names"},
				},
				Action: runSnapshot,
			},
		},
	}
}

// loadConfig reads the configuration flags.
func loadConfig(c *cli.Command) (config.Config, error) {
	cfg := config.Config{
		Projection:    c.String("projection"),
		SquareSize:    c.Int("square-size"),
		IsoPreset:     c.String("iso-preset"),
		TileWidth:     c.Int("tile-width"),
		TileHeight:    c.Int("tile-height"),
		OffsetX:       c.Int("offset-x"),
		OffsetY:       c.Int("offset-y"),
		Layout:        c.String("layout"),
		FEN:           c.String("fen"),
		DeselectDelay: c.Duration("deselect-delay"),
		ScreenWidth:   c.Int("width"),
		ScreenHeight:  c.Int("height"),
		Mute:          c.Bool("mute"),
		LogLevel:      c.String("log-level"),
		LogFile:       c.String("log-file"),
		Debug:         c.Bool("debug"),
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// openLogger returns the configured logger. With quiet set and no log file,
// logging is discarded so it cannot corrupt a full-screen display.
func openLogger(cfg config.Config, quiet bool) (logx.Logger, func(), error) {
	if cfg.LogFile == "" {
		if quiet {
			return logx.Nop(), func() {}, nil
		}
		log := cfg.Logger(nil)
		return log, func() { _ = log.Sync() }, nil
	}
	file, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	log := cfg.Logger(file)
	return log, func() {
		_ = log.Sync()
		file.Close()
	}, nil
}

// instance is a configured session ready for an adapter.
type instance struct {
	cfg     config.Config
	log     logx.Logger
	session *session.Session
	close   func()
}

// setup loads configuration, the logger and a new session.
func setup(c *cli.Command, quiet bool) (*instance, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}
	log, closeLog, err := openLogger(cfg, quiet)
	if err != nil {
		return nil, err
	}
	layout, _ := cfg.BoardLayout()
	pc, _ := cfg.ProjectionConfig()

	s, err := session.New(session.Options{Layout: layout, Projection: pc, Logger: log})
	if err != nil {
		closeLog()
		return nil, fmt.Errorf("start session: %w", err)
	}
	return &instance{
		cfg:     cfg,
		log:     log,
		session: s,
		close: func() {
			s.Close()
			closeLog()
		},
	}, nil
}

// play applies a whitespace or comma separated command list.
func play(s *session.Session, script string) error {
	fields := strings.FieldsFunc(script, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	for _, f := range fields {
		cmd, err := session.ParseCommand(f)
		if err != nil {
			return err
		}
		if _, err := s.Handle(cmd); err != nil {
			return fmt.Errorf("%s: %w", cmd, err)
		}
	}
	return nil
}

func runGUI(ctx context.Context, c *cli.Command) error {
	in, err := setup(c, false)
	if err != nil {
		return err
	}
	defer in.close()

	game := ui.NewGame(in.session, ui.Options{
		ScreenWidth:   in.cfg.ScreenWidth,
		ScreenHeight:  in.cfg.ScreenHeight,
		DeselectDelay: in.cfg.Deselect(),
		Sound:         !in.cfg.Mute,
		Logger:        in.log,
	})
	return ui.Run(game, "FocusChess")
}

func runTerm(ctx context.Context, c *cli.Command) error {
	in, err := setup(c, true)
	if err != nil {
		return err
	}
	defer in.close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	app := term.New(screen, in.session, term.Options{
		DeselectDelay: in.cfg.Deselect(),
		Logger:        in.log,
	})
	return app.Run(ctx)
}

func runPrint(ctx context.Context, c *cli.Command) error {
	in, err := setup(c, false)
	if err != nil {
		return err
	}
	defer in.close()

	if err := play(in.session, c.String("play")); err != nil {
		return err
	}
	w := c.Root().Writer
	if err := term.Print(w, in.session.View(), c.Bool("color")); err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, "FEN", in.session.Board().FEN())
	return err
}

func runSnapshot(ctx context.Context, c *cli.Command) error {
	in, err := setup(c, false)
	if err != nil {
		return err
	}
	defer in.close()

	if err := play(in.session, c.String("play")); err != nil {
		return err
	}
	opts := snapshot.DefaultOptions()
	opts.Margin = c.Int("margin")
	opts.Labels = c.Bool("labels")

	out := c.String("out")
	if out == "-" {
		return snapshot.WritePNG(c.Root().Writer, in.session.View(), opts)
	}
	if err := snapshot.SavePNG(out, in.session.View(), opts); err != nil {
		return err
	}
	in.log.Infof("snapshot written to %s", out)
	_, err = fmt.Fprintln(c.Root().Writer, "wrote", out)
	return err
}
