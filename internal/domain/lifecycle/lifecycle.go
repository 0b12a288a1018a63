// Package lifecycle holds shared application lifecycle constants.
package lifecycle

import "time"

// DefaultTimeout bounds startup and shutdown operations (DB ping, HTTP drain).
const DefaultTimeout = 10 * time.Second
