package reporter

// CompositeReporter fans events out to multiple reporters.
type CompositeReporter struct {
	reporters []Reporter
}

// NewCompositeReporter creates a reporter that forwards every event to each
// of the given reporters in order.
func NewCompositeReporter(reporters ...Reporter) *CompositeReporter {
	return &CompositeReporter{reporters: reporters}
}

func (c *CompositeReporter) CommandParsed(summary CommandSummary) {
	for _, r := range c.reporters {
		r.CommandParsed(summary)
	}
}

func (c *CompositeReporter) GroupStarted(info GroupInfo) {
	for _, r := range c.reporters {
		r.GroupStarted(info)
	}
}

func (c *CompositeReporter) GraphResolved(summary GraphSummary) {
	for _, r := range c.reporters {
		r.GraphResolved(summary)
	}
}

func (c *CompositeReporter) Warning(message string) {
	for _, r := range c.reporters {
		r.Warning(message)
	}
}

func (c *CompositeReporter) Error(err ReporterError) {
	for _, r := range c.reporters {
		r.Error(err)
	}
}

func (c *CompositeReporter) CompileComplete(outcome CompileOutcome) {
	for _, r := range c.reporters {
		r.CompileComplete(outcome)
	}
}

func (c *CompositeReporter) Verbose(message string) {
	for _, r := range c.reporters {
		r.Verbose(message)
	}
}
