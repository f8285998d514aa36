// Package lifecycle holds timeouts shared by fx start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds a single start or stop hook (ping, shutdown, flush).
const DefaultTimeout = 10 * time.Second
