// Package monitoring carries the package-level diagnostic logger.
package monitoring

import "log"

// Logf is the diagnostic logger used for non-fatal conversion warnings,
// such as a blank acceleration field that was defaulted to zero. It
// defaults to log.Printf; callers may redirect or mute it via SetLogger.
var Logf func(format string, v ...interface{}) = log.Printf

// SetLogger replaces the package logger. Passing nil installs a no-op
// logger.
func SetLogger(f func(format string, v ...interface{})) {
	if f == nil {
		Logf = func(string, ...interface{}) {}
		return
	}
	Logf = f
}
