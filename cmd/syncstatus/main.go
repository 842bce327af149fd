// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-tile-sync/internal/client"
	"github.com/MKhiriev/go-tile-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	app := client.NewApp(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), os.Stdin, os.Stdout, os.Stderr)
	err := app.Run(ctx, os.Args)
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "syncstatus: %v\n", err)
		os.Exit(client.ExitCode(err))
	}
}
