// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the JSON config file.
type StructuredJSONConfig struct {
	App struct {
		Token     string `json:"token"`
		CSRFToken string `json:"csrf_token"`
		OwnerID   string `json:"owner_id"`
		LogFile   string `json:"log_file"`
		Version   string `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		Driver string `json:"driver"`
		DB     struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
		ListTTL Duration `json:"list_ttl"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		HTTPAddress      string   `json:"http_address"`
		RequestTimeout   Duration `json:"request_timeout"`
		RetryCount       int      `json:"retry_count"`
		RetryDelay       Duration `json:"retry_delay"`
		RateLimit        int      `json:"rate_limit"`
		RateWindow       Duration `json:"rate_window"`
		AuthPollAttempts int      `json:"auth_poll_attempts"`
		AuthPollInterval Duration `json:"auth_poll_interval"`
	} `json:"adapter,omitempty"`

	Workers struct {
		Concurrency  int      `json:"concurrency"`
		HydrationRPS float64  `json:"hydration_rps"`
		SyncInterval Duration `json:"sync_interval"`
	} `json:"workers,omitempty"`

	Cache struct {
		DetailCapacity        int  `json:"detail_capacity"`
		DisableTimelineRepair bool `json:"disable_timeline_repair"`
	} `json:"cache,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Token:     jsonCfg.App.Token,
			CSRFToken: jsonCfg.App.CSRFToken,
			OwnerID:   jsonCfg.App.OwnerID,
			LogFile:   jsonCfg.App.LogFile,
			Version:   jsonCfg.App.Version,
		},
		Storage: Storage{
			Driver:  jsonCfg.Storage.Driver,
			DB:      DB{DSN: jsonCfg.Storage.DB.DSN},
			ListTTL: time.Duration(jsonCfg.Storage.ListTTL),
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			HTTPAddress:      jsonCfg.Adapter.HTTPAddress,
			RequestTimeout:   time.Duration(jsonCfg.Adapter.RequestTimeout),
			RetryCount:       jsonCfg.Adapter.RetryCount,
			RetryDelay:       time.Duration(jsonCfg.Adapter.RetryDelay),
			RateLimit:        jsonCfg.Adapter.RateLimit,
			RateWindow:       time.Duration(jsonCfg.Adapter.RateWindow),
			AuthPollAttempts: jsonCfg.Adapter.AuthPollAttempts,
			AuthPollInterval: time.Duration(jsonCfg.Adapter.AuthPollInterval),
		},
		Workers: Workers{
			Concurrency:  jsonCfg.Workers.Concurrency,
			HydrationRPS: jsonCfg.Workers.HydrationRPS,
			SyncInterval: time.Duration(jsonCfg.Workers.SyncInterval),
		},
		Cache: Cache{
			DetailCapacity:        jsonCfg.Cache.DetailCapacity,
			DisableTimelineRepair: jsonCfg.Cache.DisableTimelineRepair,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
