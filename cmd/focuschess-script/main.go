// focuschess-script drives a board session from a line protocol on stdin.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/hailam/focuschess/internal/config"
	"github.com/hailam/focuschess/internal/script"
	"github.com/hailam/focuschess/internal/session"
)

func main() {
	def := config.Default()
	cmd := &cli.Command{
		Name:  "focuschess-script",
		Usage: "read board commands from stdin, one response per line on stdout",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "layout",
				Aliases: []string{"l"},
				Value:   def.Layout,
				Usage:   "initial layout: standard, single-pawn or empty",
				Sources: cli.EnvVars("FOCUSCHESS_LAYOUT"),
			},
			&cli.StringFlag{
				Name:    "fen",
				Usage:   "initial layout as FEN, overrides --layout",
				Sources: cli.EnvVars("FOCUSCHESS_FEN"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warn",
				Usage:   "logger level, logs go to stderr",
				Sources: cli.EnvVars("FOCUSCHESS_LOG_LEVEL"),
			},
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "development logging"},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg := def
			cfg.Layout = c.String("layout")
			cfg.FEN = c.String("fen")
			cfg.LogLevel = c.String("log-level")
			cfg.Debug = c.Bool("debug")
			cfg.Normalize()
			if err := cfg.Validate(); err != nil {
				return err
			}

			log := cfg.Logger(os.Stderr)
			defer log.Sync()

			layout, _ := cfg.BoardLayout()
			s, err := session.New(session.Options{Layout: layout, Logger: log})
			if err != nil {
				return err
			}
			defer s.Close()

			return script.New(s, c.Root().Writer, log).Run(ctx, os.Stdin)
		},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "focuschess-script:", err)
		os.Exit(1)
	}
}
