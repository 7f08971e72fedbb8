// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"errors"
	"fmt"

	"github.com/jazbelrose/mylg-sync/internal/adapter"
	"github.com/jazbelrose/mylg-sync/internal/config"
	"github.com/jazbelrose/mylg-sync/internal/logger"
	"github.com/jazbelrose/mylg-sync/internal/metrics"
	"github.com/jazbelrose/mylg-sync/internal/service"
	"github.com/jazbelrose/mylg-sync/internal/store"
)

// Session owns every stateful component of one signed-in user. Nothing is
// shared between sessions; Close tears the caches down, which is what
// signing out amounts to.
type Session struct {
	Tokens   *adapter.StaticTokens
	Metrics  *metrics.Metrics
	Storages *store.ClientStorages
	Services *service.ClientServices
}

// NewSession builds the client stack described by cfg.
func NewSession(cfg *config.ClientConfig, log *logger.Logger) (*Session, error) {
	m := metrics.New()
	tokens := adapter.NewStaticTokens(cfg.App.Token, cfg.App.CSRFToken)

	requestClient, err := adapter.NewRequestClient(cfg.Adapter, tokens, log,
		adapter.WithCSRFProvider(tokens),
		adapter.WithAuditSink(adapter.NewLogAuditSink(log.Component("audit"))),
		adapter.WithMetrics(m),
	)
	if err != nil {
		return nil, fmt.Errorf("create request client: %w", err)
	}

	storages, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	services, err := service.NewClientServices(cfg, storages, adapter.NewProjectsAPI(requestClient), m, log)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("create client services: %w", err), storages.Close())
	}

	return &Session{
		Tokens:   tokens,
		Metrics:  m,
		Storages: storages,
		Services: services,
	}, nil
}

// Close stops background work, drops cached records and closes local
// storage.
func (s *Session) Close() error {
	s.Services.Close()
	return s.Storages.Close()
}
