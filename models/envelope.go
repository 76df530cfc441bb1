// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Envelope is the wrapper every REST response of the backend comes in.
//
// Data is nil when the key is missing or null. That is a normal outcome for
// operations that return nothing and must not be treated as an error.
type Envelope[T any] struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Data      *T     `json:"data,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

// HasData reports whether the envelope carries a data value.
func (e Envelope[T]) HasData() bool {
	return e.Data != nil
}
