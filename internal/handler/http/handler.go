// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/jazbelrose/mylg-sync/internal/config"
	"github.com/jazbelrose/mylg-sync/internal/logger"
	"github.com/jazbelrose/mylg-sync/internal/service"
)

type Handler struct {
	services *service.Services

	authToken      string
	version        string
	requestTimeout time.Duration
	now            func() time.Time

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.ServerConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		authToken:      cfg.AuthToken,
		version:        cfg.Version,
		requestTimeout: cfg.RequestTimeout,
		now:            time.Now,
		logger:         logger,
	}
}
