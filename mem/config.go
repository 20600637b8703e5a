package mem

import (
	"fmt"
	"io"
	"log/slog"
)

// logger receives diagnostics for recoverable failures (exhaustion, bad
// refs). It discards everything by default. Call SetLogger to enable
// output; this is process-wide state, set it once before first use.
var logger *slog.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))

// SetLogger replaces the package logger. Passing nil restores the
// discarding default.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	logger = l
}

// AbortFunc handles programmer-contract violations. It must not return.
type AbortFunc func(msg string)

var abortFn AbortFunc = func(msg string) { panic(msg) }

// SetAbortFunc replaces the process-wide abort handler. The default panics
// with the violation message. Passing nil restores the default. Set once
// before first use; there is no teardown.
func SetAbortFunc(f AbortFunc) {
	if f == nil {
		f = func(msg string) { panic(msg) }
	}
	abortFn = f
}

// fatalOnExhaustion flips resource exhaustion from a recoverable
// ErrOutOfMemory into a call to the abort handler.
var fatalOnExhaustion bool

// SetFatalOnExhaustion selects between the two operating modes for
// allocation failure: the default returns ErrOutOfMemory and lets the
// caller decide; fatal mode aborts the process immediately, for
// applications that never want to handle allocation failure inline.
func SetFatalOnExhaustion(on bool) {
	fatalOnExhaustion = on
}

// Assert aborts with msg when cond is false. Used for contract checks that
// are programming bugs rather than recoverable conditions.
func Assert(cond bool, msg string) {
	if !cond {
		abortFn(msg)
	}
}

func abortf(format string, args ...any) {
	abortFn(fmt.Sprintf(format, args...))
}

// reportExhausted logs an allocation shortfall and aborts when exhaustion
// is configured as fatal.
func reportExhausted(who string, requested, required, remaining int) {
	logger.Error("allocation failed",
		"allocator", who,
		"requested_bytes", requested,
		"required_bytes", required,
		"remaining_bytes", remaining)
	if fatalOnExhaustion {
		abortf("%s: unable to allocate %d bytes (%d required with padding), %d remaining",
			who, requested, required, remaining)
	}
}
