// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8080}, expected: "localhost:8080"},
		{name: "IP address with port", addr: NetAddress{Host: "127.0.0.1", Port: 9090}, expected: "127.0.0.1:9090"},
		{name: "only port no host", addr: NetAddress{Port: 8080}, expected: ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		want        NetAddress
	}{
		{name: "localhost", input: "localhost:8080", want: NetAddress{Host: "localhost", Port: 8080}},
		{name: "ip", input: "127.0.0.1:9000", want: NetAddress{Host: "127.0.0.1", Port: 9000}},
		{name: "any interface", input: ":8080", want: NetAddress{Port: 8080}},
		{name: "missing port", input: "localhost", expectError: true},
		{name: "bad port", input: "localhost:abc", expectError: true},
		{name: "zero port", input: "localhost:0", expectError: true},
		{name: "bad host", input: "not-an-ip:8080", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a)
		})
	}
}

func TestParseFlags(t *testing.T) {
	// Reset flag.CommandLine for the test
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)

	oldArgs := os.Args
	os.Args = []string{"cmd",
		"-a", "http://api.local",
		"-listen", "localhost:9090",
		"-d", "cache.db",
		"-driver", "pebble",
		"-token", "tok",
		"-owner", "o1",
		"-request-timeout", "3s",
		"-retry-count", "2",
		"-concurrency", "4",
		"-list-ttl", "1m",
		"-c", "cfg.json",
		"get", "p1",
	}
	defer func() { os.Args = oldArgs }()

	cfg := ParseFlags()
	require.NotNil(t, cfg)

	assert.Equal(t, "http://api.local", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "localhost:9090", cfg.Server.HTTPAddress)
	assert.Equal(t, "cache.db", cfg.Storage.DB.DSN)
	assert.Equal(t, DriverPebble, cfg.Storage.Driver)
	assert.Equal(t, "tok", cfg.App.Token)
	assert.Equal(t, "o1", cfg.App.OwnerID)
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 2, cfg.Adapter.RetryCount)
	assert.Equal(t, 4, cfg.Workers.Concurrency)
	assert.Equal(t, time.Minute, cfg.Storage.ListTTL)
	assert.Equal(t, "cfg.json", cfg.JSONFilePath)

	// позиционные аргументы остаются для команд клиента
	assert.Equal(t, []string{"get", "p1"}, flag.Args())
}
