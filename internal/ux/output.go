package ux

import (
	"fmt"
	"io"

	"github.com/jorge-barreto/postindex/internal/index"
)

// ANSI color helpers
const (
	Reset = "\033[0m"
	Dim   = "\033[2m"
	Red   = "\033[31m"
	Green = "\033[32m"
)

// Outcome prints one line describing a WriteIfChanged result.
func Outcome(w io.Writer, res index.Result) {
	if res.Written {
		fmt.Fprintf(w, "%s✓ Wrote%s %s (%s)\n", Green, Reset, res.Path, entries(res.Count))
		return
	}
	fmt.Fprintf(w, "%sNo changes:%s %s unchanged (%s)\n", Dim, Reset, res.Path, entries(res.Count))
}

// Error prints a fatal error line.
func Error(w io.Writer, err error) {
	fmt.Fprintf(w, "%serror:%s %v\n", Red, Reset, err)
}

func entries(n int) string {
	if n == 1 {
		return "1 entry"
	}
	return fmt.Sprintf("%d entries", n)
}
