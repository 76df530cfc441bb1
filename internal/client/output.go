// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/MKhiriev/go-log-monitor/internal/service"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeResult prints the value of res, degraded or not, and returns res.Err.
func writeResult[T any](w io.Writer, res service.Result[T]) error {
	value, err := res.Unwrap()
	if writeErr := writeJSON(w, value); writeErr != nil {
		return fmt.Errorf("write output: %w", writeErr)
	}
	return err
}

func parseID(arg, what string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s id %q", what, arg)
	}
	return id, nil
}
