package internal

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Fatal will Echo the message and os.Exit with code 1.
func Fatal(msg string, args ...any) {
	Echo(msg, args...)
	os.Exit(1)
}

// Echo will emit the given message to stderr without any logging formatting.
func Echo(msg string, args ...any) {
	_ = Fprint(os.Stderr, msg, args...)
}

// Fprint writes the formatted message to w, adding a trailing newline if it's missing.
func Fprint(w io.Writer, msg string, args ...any) error {
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	_, err := fmt.Fprintf(w, msg, args...)
	return err
}
