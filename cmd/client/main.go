// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GiveLink Contributors

package main

import (
	"context"
	"fmt"

	"github.com/givelink/givelink/internal/adapter"
	"github.com/givelink/givelink/internal/client"
	"github.com/givelink/givelink/internal/config"
	"github.com/givelink/givelink/internal/logger"
	"github.com/givelink/givelink/internal/service"
	"github.com/givelink/givelink/internal/store"
	"github.com/givelink/givelink/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("givelink-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	emailSender, err := adapter.NewEmailSender(cfg.Email, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create email sender")
	}

	db, err := store.NewConnectSQLite(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("open local storage")
	}
	defer db.Close()

	localStore := store.NewIdentityStore(db, log)

	services := service.NewClientServices(localStore, serverAdapter, emailSender, cfg.Email, log)

	ui, err := tui.New(services, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
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
