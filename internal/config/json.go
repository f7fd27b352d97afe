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
	Adapter struct {
		BaseURL string `json:"base_url"`
	} `json:"adapter,omitempty"`

	Simulator struct {
		PublishURL string   `json:"publish_url"`
		Count      int      `json:"count"`
		Interval   Duration `json:"interval"`
	} `json:"simulator,omitempty"`

	StubServer struct {
		Address string `json:"address"`
	} `json:"stub_server,omitempty"`
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

	return &StructuredConfig{
		Adapter: Adapter{BaseURL: jsonCfg.Adapter.BaseURL},
		Simulator: Simulator{
			PublishURL: jsonCfg.Simulator.PublishURL,
			Count:      jsonCfg.Simulator.Count,
			Interval:   time.Duration(jsonCfg.Simulator.Interval),
		},
		StubServer: StubServer{Address: jsonCfg.StubServer.Address},
	}, nil
}

// Duration is a time.Duration that unmarshals from JSON strings such as
// "200ms" as well as from integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
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
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
