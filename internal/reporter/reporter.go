package reporter

// Reporter defines the interface for progress reporting.
type Reporter interface {
	CommandParsed(summary CommandSummary)
	GroupStarted(info GroupInfo)
	GraphResolved(summary GraphSummary)
	Warning(message string)
	Error(err ReporterError)
	CompileComplete(outcome CompileOutcome)
	Verbose(message string)
}

// NullReporter is a no-op reporter that discards all updates.
type NullReporter struct{}

func (NullReporter) CommandParsed(CommandSummary)   {}
func (NullReporter) GroupStarted(GroupInfo)         {}
func (NullReporter) GraphResolved(GraphSummary)     {}
func (NullReporter) Warning(string)                 {}
func (NullReporter) Error(ReporterError)            {}
func (NullReporter) CompileComplete(CompileOutcome) {}
func (NullReporter) Verbose(string)                 {}
