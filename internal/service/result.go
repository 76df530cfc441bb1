// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/rs/zerolog"
)

// Result is the outcome of a REST-backed operation.
//
// Value is always usable. When the call failed it holds the degraded value
// (an empty slice for collections, nil for single entities, false for
// commands) and Err holds the cause, already logged. Callers that only care
// about the data may ignore Err; callers that need to tell "no data" from
// "fetch failed" check Fetched or Failed.
type Result[T any] struct {
	Value T
	Err   error
}

// Fetched reports whether the call reached the backend and succeeded.
func (r Result[T]) Fetched() bool {
	return r.Err == nil
}

// Failed reports whether Value is a degraded fallback.
func (r Result[T]) Failed() bool {
	return r.Err != nil
}

// Unwrap returns Value and Err in the usual Go order.
func (r Result[T]) Unwrap() (T, error) {
	return r.Value, r.Err
}

func listResult[T any](log zerolog.Logger, msg string, items []T, err error) Result[[]T] {
	if err != nil {
		log.Error().Err(err).Msg(msg)
		return Result[[]T]{Value: []T{}, Err: err}
	}
	if items == nil {
		items = []T{}
	}
	return Result[[]T]{Value: items}
}

func entityResult[T any](log zerolog.Logger, msg string, entity *T, err error) Result[*T] {
	if err != nil {
		log.Error().Err(err).Msg(msg)
		return Result[*T]{Err: err}
	}
	return Result[*T]{Value: entity}
}

func commandResult(log zerolog.Logger, msg string, err error) Result[bool] {
	if err != nil {
		log.Error().Err(err).Msg(msg)
		return Result[bool]{Err: err}
	}
	return Result[bool]{Value: true}
}
