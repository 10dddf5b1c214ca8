package app

// Reporter receives progress notices from Compile and Run.
type Reporter interface {
	// Running is called right before argv is launched.
	Running(argv []string)
	// SkippedCompile is called when the executable is up to date.
	SkippedCompile(executable string)
}

type nopReporter struct{}

func (nopReporter) Running([]string)      {}
func (nopReporter) SkippedCompile(string) {}

func reporterOrNop(r Reporter) Reporter {
	if r == nil {
		return nopReporter{}
	}
	return r
}
