package reporter

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// JSONReporter outputs NDJSON events for machine consumers.
type JSONReporter struct {
	writer io.Writer
	mu     sync.Mutex
}

// NewJSONReporter creates a new JSON reporter that writes to stderr, leaving
// stdout free for the rendered text.
func NewJSONReporter() *JSONReporter {
	return &JSONReporter{writer: os.Stderr}
}

// NewJSONReporterWithWriter creates a JSON reporter with a custom writer.
func NewJSONReporterWithWriter(w io.Writer) *JSONReporter {
	return &JSONReporter{writer: w}
}

func (r *JSONReporter) timestamp() int64 {
	return time.Now().Unix()
}

func (r *JSONReporter) write(v interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	_, _ = fmt.Fprintln(r.writer, string(data))
}

func (r *JSONReporter) CommandParsed(summary CommandSummary) {
	r.write(map[string]interface{}{
		"type":           "command_parsed",
		"input_files":    summary.InputFiles,
		"output_files":   summary.OutputFiles,
		"global_options": summary.GlobalOptions,
		"graphs":         summary.Graphs,
		"timestamp":      r.timestamp(),
	})
}

func (r *JSONReporter) GroupStarted(info GroupInfo) {
	r.write(map[string]interface{}{
		"type":       "group_started",
		"index":      info.Index,
		"total":      info.Total,
		"url":        info.URL,
		"option":     info.Key,
		"expression": info.Expr,
		"timestamp":  r.timestamp(),
	})
}

func (r *JSONReporter) GraphResolved(summary GraphSummary) {
	r.write(map[string]interface{}{
		"type":      "graph_resolved",
		"url":       summary.URL,
		"filters":   summary.Filters,
		"links":     summary.Links,
		"inputs":    summary.Inputs,
		"outputs":   summary.Outputs,
		"timestamp": r.timestamp(),
	})
}

func (r *JSONReporter) Warning(message string) {
	r.write(map[string]interface{}{
		"type":      "warning",
		"message":   message,
		"timestamp": r.timestamp(),
	})
}

func (r *JSONReporter) Error(err ReporterError) {
	r.write(map[string]interface{}{
		"type":       "error",
		"title":      err.Title,
		"message":    err.Message,
		"context":    err.Context,
		"suggestion": err.Suggestion,
		"timestamp":  r.timestamp(),
	})
}

func (r *JSONReporter) CompileComplete(outcome CompileOutcome) {
	r.write(map[string]interface{}{
		"type":        "compile_complete",
		"graphs":      outcome.Graphs,
		"bytes":       outcome.Bytes,
		"destination": outcome.Destination,
		"elapsed_ms":  outcome.Elapsed.Milliseconds(),
		"timestamp":   r.timestamp(),
	})
}

func (r *JSONReporter) Verbose(message string) {
	r.write(map[string]interface{}{
		"type":      "verbose",
		"message":   message,
		"timestamp": r.timestamp(),
	})
}
