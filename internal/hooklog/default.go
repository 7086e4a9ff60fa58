package hooklog

import "sync"

var (
	defaultOnce   sync.Once
	defaultLogger *Logger
)

// Default returns a process-wide fallback logger, constructed at most
// once, for call sites that log before the entry point wired an explicit
// instance. Library code should take a *Logger; this exists so a missed
// initialization degrades to a working logger instead of failing the
// caller.
func Default() *Logger {
	defaultOnce.Do(func() {
		logger, err := New("")
		if err != nil {
			return
		}
		defaultLogger = logger
	})
	return defaultLogger
}
