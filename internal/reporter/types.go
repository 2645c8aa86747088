// Package reporter provides progress reporting interfaces and implementations.
package reporter

import "time"

// CommandSummary describes a split command line.
type CommandSummary struct {
	InputFiles    int
	OutputFiles   int
	GlobalOptions int
	Graphs        int
}

// GroupInfo describes one filtergraph expression about to be compiled.
type GroupInfo struct {
	Index int
	Total int
	URL   string
	Key   string
	Expr  string
}

// GraphSummary contains the resolution results for one expression.
type GraphSummary struct {
	URL     string
	Filters int
	Links   int
	Inputs  int
	Outputs int
}

// CompileOutcome contains final compilation results.
type CompileOutcome struct {
	Graphs      int
	Bytes       int
	Destination string
	Elapsed     time.Duration
}

// ReporterError contains error information.
type ReporterError struct {
	Title      string
	Message    string
	Context    string
	Suggestion string
}
