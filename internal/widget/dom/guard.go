package dom

import (
	"log"
	"runtime/debug"
	"strings"
)

// Guard runs fn and logs instead of crashing the wasm instance when it
// panics.
func Guard(logger *log.Logger, event string, fn func()) {
	if logger == nil {
		logger = log.Default()
	}
	defer func() {
		if recovered := recover(); recovered != nil {
			logger.Printf(
				"panic recovered event=%s panic=%v stack=%s",
				event,
				recovered,
				strings.TrimSpace(string(debug.Stack())),
			)
		}
	}()
	fn()
}
