// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags. Positional arguments remain
// available through flag.Args.
//
// Flags:
//
//	-a remote API base URL
//	-listen stub server address in format [host]:[port]
//	-d database DSN or data directory
//	-driver storage driver (sqlite, badger, pebble, memory)
//	-c/-config json file path with configs
//	-token bearer token
//	-owner default project owner
//	-log-file client log file path
//	-request-timeout per-attempt request timeout (e.g., "10s")
//	-retry-count retries after the first attempt
//	-concurrency concurrent network tasks
//	-list-ttl project list freshness (e.g., "5m")
func ParseFlags() *StructuredConfig {
	var listenAddress NetAddress
	var adapterAddress string
	var databaseDSN string
	var driver string
	var jsonConfigPath string
	var token string
	var owner string
	var logFile string
	var requestTimeout time.Duration
	var retryCount int
	var concurrency int
	var listTTL time.Duration

	flag.StringVar(&adapterAddress, "a", "", "Remote API base URL")
	flag.Var(&listenAddress, "listen", "Stub server address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN or data directory")
	flag.StringVar(&driver, "driver", "", "Storage driver: sqlite, badger, pebble, memory")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&token, "token", "", "Bearer token")
	flag.StringVar(&owner, "owner", "", "Default project owner")
	flag.StringVar(&logFile, "log-file", "", "Client log file path")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Per-attempt request timeout (e.g., 10s)")
	flag.IntVar(&retryCount, "retry-count", 0, "Retries after the first attempt")
	flag.IntVar(&concurrency, "concurrency", 0, "Concurrent network tasks")
	flag.DurationVar(&listTTL, "list-ttl", 0, "Project list freshness (e.g., 5m)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			Token:   token,
			OwnerID: owner,
			LogFile: logFile,
		},
		Storage: Storage{
			Driver:  driver,
			DB:      DB{DSN: databaseDSN},
			ListTTL: listTTL,
		},
		Server: Server{
			HTTPAddress: listenAddress.String(),
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: requestTimeout,
			RetryCount:     retryCount,
		},
		Workers: Workers{
			Concurrency: concurrency,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
