package internal

import (
	"fmt"
	"io"
	"os"
	"strings"
)

var (
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr

	exit = os.Exit
)

// Fatal will Warn the message and os.Exit with code 1.
func Fatal(msg string, args ...any) {
	Warn(msg, args...)
	exit(1)
}

// Warn will emit the given message to stderr without any logging formatting.
func Warn(msg string, args ...any) {
	emit(Stderr, msg, args...)
}

// Echo will emit the given message to stdout without any logging formatting.
// Results go here so they can be piped separately from diagnostics.
func Echo(msg string, args ...any) {
	emit(Stdout, msg, args...)
}

func emit(w io.Writer, msg string, args ...any) {
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	_, _ = fmt.Fprintf(w, msg, args...)
}
