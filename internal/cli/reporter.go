package cli

import (
	"github.com/kballard/go-shellquote"
)

// consoleReporter prints compile/run progress notices.
type consoleReporter struct{}

func (consoleReporter) Running(argv []string) {
	printProgress("running " + formatCommand(argv))
}

func (consoleReporter) SkippedCompile(executable string) {
	printInfo("skipping compilation")
	printVerbose(executable + " is up to date")
}

// formatCommand renders argv so it can be pasted back into a shell.
func formatCommand(argv []string) string {
	return shellquote.Join(argv...)
}
