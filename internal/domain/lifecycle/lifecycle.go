// Package lifecycle holds shared timeouts for application start and stop
// hooks.
package lifecycle

import "time"

// DefaultTimeout bounds how long a lifecycle hook (DB ping, server shutdown)
// may take before it is abandoned.
const DefaultTimeout = 10 * time.Second
