// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/MKhiriev/go-tile-sync/internal/config"
	"github.com/MKhiriev/go-tile-sync/models"
	"github.com/urfave/cli/v2"
)

func inputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "input",
		Aliases: []string{"i"},
		Usage:   "document to read, `FILE` or - for stdin",
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Usage:   "output format: json or table",
	}
}

func indentFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:  "indent",
		Usage: "pretty-print JSON output",
	}
}

func (a *App) commands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "decode",
			Usage: "Decode a sync status object or array and print it normalized",
			Flags: []cli.Flag{
				inputFlag(),
				formatFlag(),
				indentFlag(),
				&cli.BoolFlag{Name: "array", Usage: "always print a JSON array"},
			},
			Action: a.decode,
		},
		{
			Name:   "validate",
			Usage:  "Check every element of a document and print a report",
			Flags:  []cli.Flag{inputFlag(), formatFlag(), indentFlag()},
			Action: a.validate,
		},
		{
			Name:  "encode",
			Usage: "Build one sync status object from flags",
			Flags: []cli.Flag{
				&cli.Int64Flag{Name: "tile-x", Aliases: []string{"x"}, Usage: "tile X coordinate"},
				&cli.Int64Flag{Name: "tile-y", Aliases: []string{"y"}, Usage: "tile Y coordinate"},
				&cli.StringFlag{Name: "poi", Value: models.SyncStatusNone.String(), Usage: "POI update type: None, Export, Sync or Delete"},
				&cli.StringFlag{Name: "review", Value: models.SyncStatusNone.String(), Usage: "review update type: None, Export, Sync or Delete"},
				indentFlag(),
				&cli.BoolFlag{Name: "copy", Usage: "also copy the JSON to the system clipboard"},
			},
			Action: a.encode,
		},
		{
			Name:   "version",
			Usage:  "Print build information",
			Action: a.version,
		},
	}
}

func (a *App) decode(c *cli.Context) error {
	s, err := a.newSession(c)
	if err != nil {
		return err
	}
	defer s.close()

	in, err := a.openInput(s.cfg.Input.Path)
	if err != nil {
		return err
	}
	defer in.Close()

	statuses, err := s.services.SyncStatusService.Decode(s.ctx, in)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	if s.cfg.Output.Format == config.FormatTable {
		return renderStatusTable(a.stdout, statuses)
	}

	opts := models.EncodeOptions{Indent: s.cfg.Output.Indent, AsArray: c.Bool("array")}
	return s.services.SyncStatusService.Encode(s.ctx, a.stdout, statuses, opts)
}

func (a *App) validate(c *cli.Context) error {
	s, err := a.newSession(c)
	if err != nil {
		return err
	}
	defer s.close()

	in, err := a.openInput(s.cfg.Input.Path)
	if err != nil {
		return err
	}
	defer in.Close()

	report, err := s.services.SyncStatusService.Validate(s.ctx, in)
	if err != nil {
		return fmt.Errorf("validate: %w", err)
	}

	if s.cfg.Output.Format == config.FormatTable {
		err = renderReport(a.stdout, report)
	} else {
		enc := json.NewEncoder(a.stdout)
		if s.cfg.Output.Indent {
			enc.SetIndent("", "  ")
		}
		err = enc.Encode(report)
	}
	if err != nil {
		return fmt.Errorf("error writing report: %w", err)
	}

	if !report.OK() {
		return fmt.Errorf("%w: %d of %d elements rejected", ErrValidationFailed, len(report.Failures), report.Total)
	}
	return nil
}

func (a *App) encode(c *cli.Context) error {
	s, err := a.newSession(c)
	if err != nil {
		return err
	}
	defer s.close()

	status, err := statusFromFlags(c)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	opts := models.EncodeOptions{Indent: s.cfg.Output.Indent}
	if err = s.services.SyncStatusService.Encode(s.ctx, &buf, []models.SyncStatus{status}, opts); err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	if _, err = a.stdout.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("error writing output: %w", err)
	}

	if c.Bool("copy") {
		if err = a.copyToClipboard(strings.TrimSpace(buf.String())); err != nil {
			return fmt.Errorf("error copying to clipboard: %w", err)
		}
		s.log.Info().Str("func", "App.encode").Str("tile", status.Tile().String()).Msg("copied to clipboard")
	}

	return nil
}

func (a *App) version(*cli.Context) error {
	for _, line := range a.buildInfo.Lines() {
		if _, err := fmt.Fprintln(a.stdout, line); err != nil {
			return err
		}
	}
	return nil
}

func statusFromFlags(c *cli.Context) (models.SyncStatus, error) {
	tileX, err := int32Flag(c, "tile-x")
	if err != nil {
		return models.SyncStatus{}, err
	}
	tileY, err := int32Flag(c, "tile-y")
	if err != nil {
		return models.SyncStatus{}, err
	}

	poi, err := models.ParseSyncStatusType(c.String("poi"))
	if err != nil {
		return models.SyncStatus{}, fmt.Errorf("%w: --poi: %w", ErrInvalidFlag, err)
	}
	review, err := models.ParseSyncStatusType(c.String("review"))
	if err != nil {
		return models.SyncStatus{}, fmt.Errorf("%w: --review: %w", ErrInvalidFlag, err)
	}

	return models.SyncStatus{
		TileX:            tileX,
		TileY:            tileY,
		PoiUpdateType:    poi,
		ReviewUpdateType: review,
	}, nil
}

func int32Flag(c *cli.Context, name string) (int32, error) {
	v := c.Int64(name)
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, fmt.Errorf("%w: --%s %d is outside the 32-bit range", ErrInvalidFlag, name, v)
	}
	return int32(v), nil
}
