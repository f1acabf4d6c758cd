// Package cipherlog provides the small leveled-logging convention used
// across the baksheesh module: a component tag plus an [AUDIT]-style
// prefix over the standard library's log package, the same idiom the
// cipher's audit and lifecycle code logged with.
package cipherlog

import (
	"log"
	"os"
)

// Logger tags every line it writes with a component name.
type Logger struct {
	component string
	std       *log.Logger
}

// New returns a Logger that writes to stderr with the standard log
// package's default timestamp flags.
func New(component string) *Logger {
	return &Logger{
		component: component,
		std:       log.New(os.Stderr, "", log.LstdFlags),
	}
}

func (l *Logger) Info(format string, args ...interface{}) {
	l.std.Printf("[INFO] %s: "+format, append([]interface{}{l.component}, args...)...)
}

func (l *Logger) Warn(format string, args ...interface{}) {
	l.std.Printf("[WARN] %s: "+format, append([]interface{}{l.component}, args...)...)
}

func (l *Logger) Error(format string, args ...interface{}) {
	l.std.Printf("[ERROR] %s: "+format, append([]interface{}{l.component}, args...)...)
}

// Audit records a single operation event, matching the [AUDIT] line shape
// the teacher's HSM integration code emitted for compliance trails.
func (l *Logger) Audit(event, detail, status string) {
	l.std.Printf("[AUDIT] %s: %s - %s - %s", l.component, event, detail, status)
}
