// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net/url"
)

func (cfg *ClientConfig) validate() error {
	if !isAbsoluteURL(cfg.Adapter.BaseURL) {
		return ErrInvalidAdapterConfigs
	}

	return nil
}

func (cfg *SimulatorConfig) validate() error {
	if cfg.Count < 1 || cfg.Interval < 0 {
		return ErrInvalidSimulatorConfigs
	}
	if cfg.PublishURL != "" && !isAbsoluteURL(cfg.PublishURL) {
		return ErrInvalidSimulatorConfigs
	}

	return nil
}

func (cfg *StubServerConfig) validate() error {
	if cfg.Address == "" {
		return ErrInvalidStubServerConfigs
	}

	return nil
}

func isAbsoluteURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}

	return u.Scheme != "" && u.Host != ""
}
