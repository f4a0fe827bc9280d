// Package goroutine launches background work with panic recovery.
package goroutine

import (
	"runtime/debug"

	"quickdesk/internal/shared/logger"
)

// SafeGo runs fn on a new goroutine. A panic inside fn is recovered and
// logged with its stack under the given name instead of taking the
// process down. Used for fire-and-forget work such as notification
// delivery.
func SafeGo(log logger.Interface, name string, fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Errorw("recovered panic in background goroutine",
					"goroutine", name,
					"panic", r,
					"stack", string(debug.Stack()),
				)
			}
		}()
		fn()
	}()
}
