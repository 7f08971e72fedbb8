// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/jazbelrose/mylg-sync/internal/logger"
	"github.com/jazbelrose/mylg-sync/internal/utils"
)

const unknownVersion = "N/A"

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	version := h.version
	if version == "" {
		version = unknownVersion
	}

	if _, err := utils.WriteJSON(w, map[string]string{"version": version}, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to write version")
	}
}
