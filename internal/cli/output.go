package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/mgutz/ansi"
)

// Console streams. Colorable wrappers translate ANSI codes on Windows.
var (
	stdout io.Writer = colorable.NewColorableStdout()
	stderr io.Writer = colorable.NewColorableStderr()
)

var (
	colorEnabled bool
	quiet        bool
)

var (
	colorRed  = ansi.ColorFunc("red")
	colorBlue = ansi.ColorFunc("blue")
	colorYlw  = ansi.ColorFunc("yellow")
	colorGray = ansi.ColorFunc("black+h")
)

// configureOutput applies --no-color and --quiet. Color is also disabled when
// NO_COLOR is set or stderr is not a terminal.
func configureOutput(noColor, beQuiet bool) {
	quiet = beQuiet
	colorEnabled = !noColor && os.Getenv("NO_COLOR") == "" && isTerminal(os.Stderr)
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func paint(color func(string) string, s string) string {
	if !colorEnabled {
		return s
	}
	return color(s)
}

// printInfo prints an informational message
func printInfo(msg string) {
	if quiet {
		return
	}
	fmt.Fprintln(stdout, msg)
}

// printProgress prints a progress indicator
func printProgress(msg string) {
	if quiet {
		return
	}
	fmt.Fprintf(stdout, "%s %s\n", paint(colorBlue, "→"), msg)
}

// printWarning prints a warning message
func printWarning(msg string) {
	if quiet {
		return
	}
	fmt.Fprintf(stderr, "%s %s\n", paint(colorYlw, "⚠"), msg)
}

// printErrorMsg prints an error message (different from printError which takes error type)
func printErrorMsg(msg string) {
	fmt.Fprintf(stderr, "%s %s\n", paint(colorRed, "✗"), msg)
}

// printError prints an error message to stderr
func printError(err error) {
	fmt.Fprintf(stderr, "%s %v\n", paint(colorRed, "Error:"), err)
}

// printVerbose prints a dimmed detail line, only in debug mode
func printVerbose(msg string) {
	if !globalDebug || quiet {
		return
	}
	fmt.Fprintln(stdout, paint(colorGray, msg))
}
