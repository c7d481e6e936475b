// Package lifecycle holds timeouts shared by fx start and stop hooks.
package lifecycle

import "time"

const (
	// DefaultTimeout bounds a single start or stop hook.
	DefaultTimeout = 15 * time.Second

	// FlushTimeout bounds write-back flushes run while the process shuts down.
	FlushTimeout = 30 * time.Second
)
