// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jazbelrose/mylg-sync/internal/app"
	"github.com/jazbelrose/mylg-sync/internal/client"
	"github.com/jazbelrose/mylg-sync/internal/config"
	"github.com/jazbelrose/mylg-sync/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		return 2
	}

	args := flag.Args()
	if len(args) > 0 && args[0] == "version" {
		printBuildInfo()
		return 0
	}

	log := logger.NewClientLogger("mylg-client", cfg.App.LogFile)
	log.Debug().Str("address", cfg.Adapter.HTTPAddress).Str("driver", cfg.Storage.Driver).Msg("received configs")

	session, err := client.NewSession(cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("create client session")
		fmt.Fprintln(os.Stderr, app.MsgInternalError)
		return 1
	}
	defer func() {
		if err := session.Close(); err != nil {
			log.Error().Err(err).Msg("close client session")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = client.NewApp(session, cfg, os.Stdout, os.Stderr, log).Run(ctx, args); err != nil {
		log.Error().Err(err).Strs("args", args).Msg("command failed")
		switch {
		case errors.Is(err, client.ErrUsage), errors.Is(err, client.ErrNoOwner), errors.Is(err, client.ErrInvalidJSONArgument):
			fmt.Fprintln(os.Stderr, err)
			return 2
		default:
			fmt.Fprintln(os.Stderr, app.UserMessage(err))
			return 1
		}
	}

	return 0
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
