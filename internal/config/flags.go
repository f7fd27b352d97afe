// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"net"
	"strconv"
	"time"

	"github.com/spf13/pflag"
)

// NetAddress holds a host:port pair. It implements pflag.Value.
type NetAddress struct {
	Host string
	Port int
}

// BindClientFlags registers the CLI options on fs and stores them in cfg.
//
// Flags:
//
//	--base-url  backend base URL
//	--config    JSON config file path
func BindClientFlags(fs *pflag.FlagSet, cfg *StructuredConfig) {
	fs.StringVar(&cfg.Adapter.BaseURL, "base-url", "", "Backend base URL (e.g. http://localhost:3000)")
	bindConfigPath(fs, cfg)
}

// BindSimulatorFlags registers the simulator options on fs and stores them
// in cfg.
//
// Flags:
//
//	-u/--publish-url  snapshot store URL
//	-n/--count        readings per run
//	-i/--interval     pause between readings (e.g. "200ms")
//	--config          JSON config file path
func BindSimulatorFlags(fs *pflag.FlagSet, cfg *StructuredConfig) {
	fs.StringVarP(&cfg.Simulator.PublishURL, "publish-url", "u", "", "Snapshot store URL")
	fs.IntVarP(&cfg.Simulator.Count, "count", "n", 0, "Number of readings")
	fs.DurationVarP(&cfg.Simulator.Interval, "interval", "i", time.Duration(0), "Pause between readings (e.g. 200ms)")
	bindConfigPath(fs, cfg)
}

// BindStubServerFlags registers the stub backend options on fs. The address
// is written to cfg once fs has been parsed, via the returned function.
//
// Flags:
//
//	-a/--address  listen address in format host:port
//	--config      JSON config file path
func BindStubServerFlags(fs *pflag.FlagSet, cfg *StructuredConfig) func() {
	addr := new(NetAddress)
	fs.VarP(addr, "address", "a", "Net address host:port")
	bindConfigPath(fs, cfg)

	return func() {
		cfg.StubServer.Address = addr.String()
	}
}

func bindConfigPath(fs *pflag.FlagSet, cfg *StructuredConfig) {
	fs.StringVarP(&cfg.JSONFilePath, "config", "c", "", "JSON config file path")
}

// String returns host:port, or an empty string when nothing is set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses host:port. The port must be positive and the host must be
// "localhost" or an IP address.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}
	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}

// Type implements pflag.Value.
func (a *NetAddress) Type() string {
	return "address"
}
