// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-tile-sync/internal/config"
	"github.com/MKhiriev/go-tile-sync/internal/logger"
	"github.com/MKhiriev/go-tile-sync/internal/service"
	"github.com/MKhiriev/go-tile-sync/models"
	"github.com/atotto/clipboard"
	"github.com/urfave/cli/v2"
)

const appName = "syncstatus"

var _ Client = (*App)(nil)

// App is the syncstatus command-line application.
type App struct {
	cli       *cli.App
	buildInfo models.AppBuildInfo

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	newServices     func(*logger.Logger) *service.Services
	copyToClipboard func(string) error
}

// NewApp builds the application with its command tree. Command output goes to
// stdout; logs and usage errors go to stderr.
func NewApp(buildInfo models.AppBuildInfo, stdin io.Reader, stdout, stderr io.Writer) *App {
	a := &App{
		buildInfo:       buildInfo,
		stdin:           stdin,
		stdout:          stdout,
		stderr:          stderr,
		newServices:     service.NewServices,
		copyToClipboard: clipboard.WriteAll,
	}

	a.cli = &cli.App{
		Name:        appName,
		Usage:       "decode, validate and build tile sync-status documents",
		Version:     buildInfo.BuildVersion(),
		HideVersion: true,
		Reader:      stdin,
		Writer:      stdout,
		ErrWriter:   stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "JSON or YAML config file",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log level (debug, info, warn, error, disabled)",
			},
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "append logs to this file instead of stderr",
			},
		},
		Commands: a.commands(),
		// errors are returned to the caller, which owns the exit status
		ExitErrHandler: func(*cli.Context, error) {},
	}

	return a
}

// Run executes the command line in args.
func (a *App) Run(ctx context.Context, args []string) error {
	return a.cli.RunContext(ctx, args)
}

// session holds everything one command invocation needs.
type session struct {
	ctx      context.Context
	cfg      *config.StructuredConfig
	log      *logger.Logger
	services *service.Services
	close    func()
}

func (a *App) newSession(c *cli.Context) (*session, error) {
	cfg, err := config.GetStructuredConfig(config.Flags{
		ConfigPath: c.String("config"),
		LogLevel:   c.String("log-level"),
		LogFile:    c.String("log-file"),
		Format:     c.String("format"),
		Indent:     c.Bool("indent"),
		InputPath:  c.String("input"),
	})
	if err != nil {
		return nil, fmt.Errorf("error getting configs: %w", err)
	}

	var logOut io.Writer = a.stderr
	closeLog := func() {}
	if cfg.Log.File != "" {
		f, err := logger.OpenLogFile(cfg.Log.File)
		if err != nil {
			return nil, err
		}
		logOut = f
		closeLog = func() { _ = f.Close() }
	}

	base, err := logger.NewCLILogger(appName, cfg.Log.Level, logOut)
	if err != nil {
		closeLog()
		return nil, fmt.Errorf("error creating logger: %w", err)
	}
	log := base.WithRunID("")

	command := ""
	if c.Command != nil {
		command = c.Command.Name
	}
	log.Debug().Str("func", "App.newSession").Str("command", command).Str("config", cfg.ConfigPath).Msg("session started")

	return &session{
		ctx:      log.WithContext(c.Context),
		cfg:      cfg,
		log:      log,
		services: a.newServices(log),
		close:    closeLog,
	}, nil
}

// openInput returns stdin for an empty path or "-".
func (a *App) openInput(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(a.stdin), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening input: %w", err)
	}
	return f, nil
}
