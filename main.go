package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/ytget/caption-editor/internal/commands"
	"github.com/ytget/caption-editor/internal/config"
	"github.com/ytget/caption-editor/internal/logging"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	v, c, d := version, commit, date

	// go install leaves ldflags unset; fall back to the embedded build info.
	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	short := c
	if len(c) > 7 {
		short = c[:7]
	}

	return fmt.Sprintf("%s (%s) %s", v, short, d)
}

func main() {
	ctx := context.Background()

	var logCloser func()

	flags := &commands.Flags{}

	app := &cli.Command{
		Name:      "caption-editor",
		Usage:     "Browse a folder of PNG images and edit their text captions",
		UsageText: "caption-editor [global options] [command [command options]]",
		Description: `Every image.png has its caption in image.txt next to it.

Run 'caption-editor' with no arguments to open the editor window.
Run 'caption-editor list <folder>' to print captions without a window.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("CAPTION_EDITOR_LOG_LEVEL"),
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file",
				Sources:     cli.EnvVars("CAPTION_EDITOR_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("CAPTION_EDITOR_CONFIG"),
				Value:       config.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringSliceFlag{
				Name:        "allow",
				Usage:       "additional folder images may be loaded from (repeatable)",
				Destination: &flags.Allow,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			cfg, err := config.Load(flags.ConfigPath)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}
			flags.Config = cfg

			// Flags win over the config file.
			level := flags.LogLevel
			if level == "" {
				level = cfg.LogLevel
			}
			logFile := flags.LogFile
			if logFile == "" {
				logFile = cfg.LogFile
			}
			if logFile == "" {
				logFile = config.DefaultLogFile()
			}

			logger, closer, err := logging.New(level, logFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger
			logCloser = closer

			flags.AllowList = commands.BuildAllowList(cfg, flags.Allow)
			log.Debug().Strs("allowed", flags.AllowList.Roots()).Str("config", flags.ConfigPath).Msg("startup")

			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	guiCmd := commands.NewGuiCmd(flags, version)

	app = commands.NewListCmd(flags).Register(app)
	app = commands.NewShowCmd(flags).Register(app)
	app = commands.NewSaveCmd(flags).Register(app)

	app.Flags = append(app.Flags, guiCmd.Flags()...)

	// Open the window when no subcommand is provided
	app.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'caption-editor --help' for usage", c.Args().First())
		}
		return guiCmd.Run(ctx, c)
	}

	if err := app.Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
