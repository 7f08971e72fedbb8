// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"time"

	"github.com/jazbelrose/mylg-sync/internal/config"
	"github.com/jazbelrose/mylg-sync/internal/handler"
	"github.com/jazbelrose/mylg-sync/internal/logger"
	"github.com/jazbelrose/mylg-sync/internal/server"
	"github.com/jazbelrose/mylg-sync/internal/service"
	"github.com/jazbelrose/mylg-sync/internal/store"
	"github.com/jazbelrose/mylg-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("mylg-stub-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.Version == "" {
		cfg.Version = buildVersion
	}

	log.Debug().Str("address", cfg.HTTPAddress).Dur("request_timeout", cfg.RequestTimeout).Msg("received configs")

	repositories := store.NewRepositories(seedProjects(time.Now())...)
	services := service.NewServices(repositories, log)

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

// seedProjects returns the demo data the stub serves on startup. p2 carries
// a timeline with a missing and a duplicated event id so the client's repair
// path can be exercised by hand.
func seedProjects(now time.Time) []models.Project {
	updated := now.UTC().Truncate(time.Second)

	return []models.Project{
		{
			ProjectID:   "p1",
			OwnerID:     models.Set("u1"),
			Title:       models.Set("Warehouse retrofit"),
			Status:      models.Set("active"),
			Description: models.Set("Lighting and signage for the east warehouse."),
			Color:       models.Set("#FA3356"),
			FinishLine:  models.Set("2026-12-15"),
			TotalBudget: models.Set(125000.0),
			UpdatedAt:   models.Set(updated),
			Team: models.Set([]models.TeamMember{
				{UserID: "u1", Role: "owner"},
				{UserID: "u7", Role: "designer"},
			}),
			TimelineEvents: models.Set([]models.TimelineEvent{
				{ID: "e1", Date: "2026-09-01", Description: "Kickoff", Hours: 2},
				{ID: "e2", Date: "2026-10-03", Description: "Site survey", Hours: 6},
			}),
			Thumbnails: models.Set([]string{"thumbs/p1/cover.jpg"}),
		},
		{
			ProjectID:  "p2",
			OwnerID:    models.Set("u1"),
			Title:      models.Set("Trade show booth"),
			Status:     models.Set("planning"),
			FinishLine: models.Set("2027-02-20"),
			UpdatedAt:  models.Set(updated),
			Team:       models.Set([]models.TeamMember{{UserID: "u1", Role: "owner"}}),
			TimelineEvents: models.Set([]models.TimelineEvent{
				{Date: "2026-11-01", Description: "Concept review"},
				{ID: "e9", Date: "2026-11-15", Description: "Vendor call", Hours: 1},
				{ID: "e9", Date: "2026-11-16", Description: "Vendor call (dup)", Hours: 1},
			}),
		},
		{
			ProjectID:      "p3",
			OwnerID:        models.Set("u2"),
			Title:          models.Set("Gallery opening"),
			Status:         models.Set("done"),
			TotalBudget:    models.Set(8000.0),
			UpdatedAt:      models.Set(updated),
			Team:           models.Set([]models.TeamMember{}),
			TimelineEvents: models.Set([]models.TimelineEvent{}),
		},
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
