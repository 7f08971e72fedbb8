// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jazbelrose/mylg-sync/internal/config"
	"github.com/jazbelrose/mylg-sync/internal/logger"
	"github.com/jazbelrose/mylg-sync/internal/metrics"
	"github.com/jazbelrose/mylg-sync/internal/service"
	"github.com/jazbelrose/mylg-sync/internal/workers"
	"github.com/jazbelrose/mylg-sync/models"
)

// App runs one CLI command against a [Session].
type App struct {
	services *service.ClientServices
	metrics  *metrics.Metrics
	cfg      *config.ClientConfig

	out    io.Writer
	errOut io.Writer
	logger *logger.Logger
}

func NewApp(session *Session, cfg *config.ClientConfig, out, errOut io.Writer, log *logger.Logger) *App {
	return &App{
		services: session.Services,
		metrics:  session.Metrics,
		cfg:      cfg,
		out:      out,
		errOut:   errOut,
		logger:   log,
	}
}

// detailOutput is what get prints: the record plus whether it could be
// refreshed.
type detailOutput struct {
	Project   models.Project    `json:"project"`
	Freshness service.Freshness `json:"freshness"`
	Error     string            `json:"error,omitempty"`
}

// Run executes the command named by args. Usage errors print the usage of
// the command they belong to.
func (a *App) Run(ctx context.Context, args []string) error {
	if args == nil {
		// cobra falls back to os.Args on nil
		args = []string{}
	}

	root := a.rootCommand()
	root.SetArgs(args)
	a.logger.Debug().Strs("args", args).Msg("running command")

	cmd, err := root.ExecuteContextC(ctx)
	if cmd == nil {
		cmd = root
	}
	if errors.Is(err, ErrUsage) {
		fmt.Fprint(a.errOut, cmd.UsageString())
	}
	return err
}

func (a *App) list(ctx context.Context, args []string) error {
	owner, err := a.owner(args)
	if err != nil {
		return err
	}

	return a.printList(ctx, owner)
}

func (a *App) printList(ctx context.Context, owner string) error {
	projects, err := a.services.ProjectService.FetchList(ctx, owner)
	if err != nil {
		cached, ok := a.services.ProjectService.CachedList(ctx, owner)
		if !ok {
			return err
		}
		a.logger.Warn().Err(err).Str("owner", owner).Msg("serving cached project list")
		fmt.Fprintf(a.errOut, "warning: showing cached list: %v\n", err)
		projects = cached
	}

	return a.print(projects)
}

func (a *App) get(ctx context.Context, projectID string) error {
	project := a.services.ProjectService.FetchDetailWithFallback(ctx, projectID, a.cachedSummary(ctx, projectID))

	freshness, fetchErr := a.services.ProjectService.Freshness(projectID)
	out := detailOutput{Project: project, Freshness: freshness}
	if fetchErr != nil {
		out.Error = fetchErr.Error()
	}

	return a.print(out)
}

func (a *App) update(ctx context.Context, projectID, rawPatch string) error {
	var patch models.Project
	if err := decodeArgument(rawPatch, &patch); err != nil {
		return err
	}

	project, err := a.services.ProjectService.UpdateFields(ctx, projectID, patch)
	if err != nil {
		return err
	}

	return a.print(project)
}

func (a *App) events(ctx context.Context, projectID, rawEvents string) error {
	if !strings.HasPrefix(strings.TrimSpace(rawEvents), "[") {
		return fmt.Errorf("%w: timeline must be a JSON array", ErrInvalidJSONArgument)
	}

	var events []models.TimelineEvent
	if err := decodeArgument(rawEvents, &events); err != nil {
		return err
	}

	if err := a.services.ProjectService.UpdateSubCollection(ctx, projectID, events); err != nil {
		return err
	}

	return a.print(a.services.ProjectService.FetchDetail(ctx, projectID))
}

// watch prints the current list, then keeps it fresh in the background
// until ctx is cancelled. A non-empty metricsAddr also serves the session
// metrics on /metrics for as long as the watch runs.
func (a *App) watch(ctx context.Context, args []string, metricsAddr string) error {
	owner, err := a.owner(args)
	if err != nil {
		return err
	}

	if metricsAddr != "" {
		stop, err := a.serveMetrics(metricsAddr)
		if err != nil {
			return err
		}
		defer stop()
	}

	job := a.services.SyncJob
	if job == nil || owner != a.cfg.App.OwnerID {
		job = service.NewListRefreshJob(a.services.ProjectService, owner, a.cfg.Workers.SyncInterval, a.logger)
	}

	if err = a.printList(ctx, owner); err != nil {
		return err
	}

	jobs := workers.NewWorkers(job)

	fmt.Fprintln(a.errOut, "watching project list, press Ctrl+C to stop")
	jobs.Run(ctx)
	<-ctx.Done()
	jobs.Stop()
	return nil
}

// cachedSummary finds projectID in the default owner's cached list, so that
// get has something to show when the detail fetch fails.
func (a *App) cachedSummary(ctx context.Context, projectID string) *models.Project {
	if a.cfg.App.OwnerID == "" {
		return nil
	}

	cached, ok := a.services.ProjectService.CachedList(ctx, a.cfg.App.OwnerID)
	if !ok {
		return nil
	}
	for i := range cached {
		if cached[i].ProjectID == projectID {
			return &cached[i]
		}
	}
	return nil
}

func (a *App) owner(args []string) (string, error) {
	switch {
	case len(args) == 1 && strings.TrimSpace(args[0]) != "":
		return strings.TrimSpace(args[0]), nil
	case a.cfg.App.OwnerID != "":
		return a.cfg.App.OwnerID, nil
	default:
		return "", ErrNoOwner
	}
}

func (a *App) print(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("print result: %w", err)
	}
	return nil
}

func decodeArgument(raw string, dst any) error {
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSONArgument, err)
	}
	return nil
}
