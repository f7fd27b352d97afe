// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/tidwall/pretty"
)

func (a *App) printJSON(v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}

	_, err = a.out.Write(pretty.Pretty(b))
	return err
}

// readPayload returns the JSON payload given as the first argument, or the
// content of file when it is set. "-" reads stdin.
func readPayload(file string, args []string, stdin io.Reader) ([]byte, error) {
	switch {
	case file == "-":
		return io.ReadAll(stdin)
	case file != "":
		return os.ReadFile(file)
	case len(args) > 0:
		return []byte(args[0]), nil
	default:
		return nil, errNoPayload
	}
}

func decodePayload(file string, args []string, stdin io.Reader, v any) error {
	raw, err := readPayload(file, args, stdin)
	if err != nil {
		return fmt.Errorf("read payload: %w", err)
	}

	if err = json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}
	return nil
}
