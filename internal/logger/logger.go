// Package logger provides leveled logging for countdown.
//
// Levels:
//
//	0 (default): silent; only countdown lines are shown
//	1 (-v)     : info:  store path, event counts, appended events
//	2 (-vv)    : debug: config source, ordering, timing
//
// All log output goes to stderr so prompt integrations only ever see the
// countdown lines on stdout.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"
)

var (
	level int
	out   io.Writer = os.Stderr
)

var (
	infoLog  = log.New(io.Discard, "", 0)
	debugLog = log.New(io.Discard, "", 0)
)

// SetOutput redirects log output; nil restores stderr.
func SetOutput(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	out = w
	SetLevel(level)
}

// SetLevel configures the active log level (0=silent, 1=info, 2=debug).
func SetLevel(v int) {
	level = v
	infoLog = log.New(io.Discard, "", 0)
	debugLog = log.New(io.Discard, "", 0)
	if v >= 1 {
		infoLog = log.New(out, "", 0)
	}
	if v >= 2 {
		debugLog = log.New(out, "[debug] ", 0)
	}
}

// Level returns the current verbosity level.
func Level() int { return level }

// Infof logs a formatted message at info level.
func Infof(format string, args ...any) { infoLog.Printf(format, args...) }

// Debugf logs a formatted message at debug level.
func Debugf(format string, args ...any) { debugLog.Printf(format, args...) }

// Timer returns a function that logs elapsed time at debug level when called.
//
//	defer logger.Timer("load")()
func Timer(name string) func() {
	if level < 2 {
		return func() {}
	}
	start := time.Now()
	return func() {
		debugLog.Printf("%s took %s", name, time.Since(start).Round(time.Microsecond))
	}
}

// Warn always prints regardless of level.
func Warn(format string, args ...any) {
	fmt.Fprintf(out, "warning: "+format+"\n", args...)
}
