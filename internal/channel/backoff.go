// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package channel

import (
	"time"

	"github.com/sethvargo/go-retry"
)

// newBackoff yields base, 2*base, 4*base ... and stops after maxAttempts
// values.
func newBackoff(base time.Duration, maxAttempts int) retry.Backoff {
	if maxAttempts < 0 {
		maxAttempts = 0
	}
	return retry.WithMaxRetries(uint64(maxAttempts), retry.NewExponential(base))
}
