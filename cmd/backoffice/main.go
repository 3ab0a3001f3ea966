package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"

	"github.com/sitecrew/erpui/erpui"
	"github.com/sitecrew/erpui/erpui/form"
	"github.com/sitecrew/erpui/erpui/hours"
	"github.com/sitecrew/erpui/erpui/logging"
)

type flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	Port       int
	AssetDir   string
}

func main() {
	ctx := context.Background()

	var (
		f         flags
		logger    = zerolog.Nop()
		logCloser func()
	)

	app := &cli.Command{
		Name:  "backoffice",
		Usage: "Forms of the construction back office",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal)",
				Sources:     cli.EnvVars("BACKOFFICE_LOG_LEVEL"),
				Destination: &f.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (logs to the console when empty)",
				Sources:     cli.EnvVars("BACKOFFICE_LOG_FILE"),
				Destination: &f.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("BACKOFFICE_CONFIG"),
				Value:       "backoffice.yaml",
				Destination: &f.ConfigPath,
			},
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "run the web service",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:        "port",
						Aliases:     []string{"p"},
						Usage:       "port to listen on (overrides the config file)",
						Sources:     cli.EnvVars("BACKOFFICE_PORT"),
						Destination: &f.Port,
					},
					&cli.StringFlag{
						Name:        "assets",
						Usage:       "directory served under /assets/",
						Sources:     cli.EnvVars("BACKOFFICE_ASSETS"),
						Destination: &f.AssetDir,
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := loadConfig(f)
					if err != nil {
						return err
					}
					logger, logCloser, err = logging.New(cfg.LogLevel, cfg.LogFile)
					if err != nil {
						return fmt.Errorf("setup logger: %w", err)
					}
					return serve(cfg, logger)
				},
			},
			{
				Name:      "hours",
				Usage:     "print the worked hours of a work log entry",
				UsageText: "backoffice hours ENTRY EXIT [LUNCH]",
				Action: func(ctx context.Context, c *cli.Command) error {
					args := c.Args()
					if args.Len() < 2 {
						return fmt.Errorf("entry and exit time are required")
					}
					text, ok := hours.Display(args.Get(0), args.Get(1), args.Get(2))
					if !ok {
						return fmt.Errorf("invalid times %q and %q", args.Get(0), args.Get(1))
					}
					fmt.Println(text)
					return nil
				},
			},
			{
				Name:      "payroll",
				Usage:     "sum the hours of one week from a work log file",
				UsageText: "backoffice payroll --rate RATE [--week DATE] WORKLOG.yaml",
				Flags: []cli.Flag{
					&cli.FloatFlag{
						Name:     "rate",
						Usage:    "hourly rate",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "week",
						Usage: "any day of the week to sum (YYYY-MM-DD, defaults to today)",
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					if c.Args().Len() != 1 {
						return fmt.Errorf("a work log file is required")
					}
					return runPayroll(c.Args().First(), c.Float("rate"), c.String("week"))
				},
			},
			{
				Name:      "check",
				Usage:     "validate the form of a saved page",
				UsageText: "backoffice check PAGE.html",
				Action: func(ctx context.Context, c *cli.Command) error {
					if c.Args().Len() != 1 {
						return fmt.Errorf("a page is required")
					}
					return runCheck(c.Args().First())
				},
			},
		},
	}

	if err := app.Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

// loadConfig reads the config file and applies the command line overrides.
func loadConfig(f flags) (erpui.Config, error) {
	cfg, err := erpui.LoadConfig(f.ConfigPath)
	if err != nil {
		return cfg, err
	}
	if f.Port != 0 {
		if f.Port < 0 || f.Port > 65535 {
			return cfg, fmt.Errorf("invalid port %d", f.Port)
		}
		cfg.Port = uint16(f.Port)
	}
	if f.AssetDir != "" {
		cfg.AssetDir = f.AssetDir
	}
	if f.LogLevel != "" {
		cfg.LogLevel = f.LogLevel
	}
	if f.LogFile != "" {
		cfg.LogFile = f.LogFile
	}
	return cfg, cfg.Validate()
}

func serve(cfg erpui.Config, logger zerolog.Logger) error {
	action := func(ctx context.Context, fm form.Form, values map[string]string) (string, error) {
		logger.Info().Str("form", fm.Name).Interface("values", values).Msg("form submitted")
		if fm.Kind == form.KindWorklog {
			if text, ok := hours.Display(values["entry_time"], values["exit_time"], values["lunch_duration"]); ok {
				return fmt.Sprintf("Work log saved: %s hours", text), nil
			}
		}
		return "", nil
	}

	srv, err := erpui.NewService(erpui.BackOfficeForms(), action, cfg)
	if err != nil {
		return fmt.Errorf("create service: %w", err)
	}
	srv.SetLogger(logger)
	if err := srv.Start(); err != nil {
		return err
	}
	srv.WaitForInterrupt()
	srv.Stop()
	return nil
}
