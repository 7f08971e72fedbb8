// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validClientConfig() *ClientConfig {
	return newClientConfig(defaultConfig())
}

func TestNewClientConfig_MapsFields(t *testing.T) {
	cfg := defaultConfig()
	cfg.App.Token = "tok"
	cfg.Cache.DisableTimelineRepair = true

	c := newClientConfig(cfg)

	assert.Equal(t, "tok", c.App.Token)
	assert.Equal(t, cfg.Adapter.HTTPAddress, c.Adapter.HTTPAddress)
	assert.Equal(t, cfg.Adapter.RetryDelay, c.Adapter.RetryDelay)
	assert.Equal(t, cfg.Workers.Concurrency, c.Workers.Concurrency)
	assert.False(t, c.Cache.RepairTimeline)
}

func TestClientConfig_DefaultsAreValid(t *testing.T) {
	c := validClientConfig()
	assert.NoError(t, c.validate())
	assert.True(t, c.Cache.RepairTimeline)
}

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *ClientConfig)
		wantErr error
	}{
		{name: "unknown driver", mutate: func(c *ClientConfig) { c.Storage.Driver = "redis" }, wantErr: ErrInvalidStorageConfigs},
		{name: "missing dsn", mutate: func(c *ClientConfig) { c.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "memory needs no dsn", mutate: func(c *ClientConfig) { c.Storage.Driver = DriverMemory; c.Storage.DB.DSN = "" }},
		{name: "zero list ttl", mutate: func(c *ClientConfig) { c.Storage.ListTTL = 0 }, wantErr: ErrInvalidStorageConfigs},
		{name: "missing address", mutate: func(c *ClientConfig) { c.Adapter.HTTPAddress = "" }, wantErr: ErrInvalidAdapterConfigs},
		{name: "negative retries", mutate: func(c *ClientConfig) { c.Adapter.RetryCount = -1 }, wantErr: ErrInvalidAdapterConfigs},
		{name: "zero rate limit", mutate: func(c *ClientConfig) { c.Adapter.RateLimit = 0 }, wantErr: ErrInvalidAdapterConfigs},
		{name: "zero concurrency", mutate: func(c *ClientConfig) { c.Workers.Concurrency = 0 }, wantErr: ErrInvalidWorkerConfigs},
		{name: "zero capacity", mutate: func(c *ClientConfig) { c.Cache.DetailCapacity = 0 }, wantErr: ErrInvalidCacheConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validClientConfig()
			tt.mutate(c)

			err := c.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestServerConfig_Validate(t *testing.T) {
	assert.ErrorIs(t, (&ServerConfig{}).validate(), ErrInvalidServerConfigs)
	assert.NoError(t, (&ServerConfig{HTTPAddress: "localhost:8080"}).validate())
}
