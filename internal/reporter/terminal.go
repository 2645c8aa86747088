package reporter

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
)

// TerminalReporter outputs human-friendly text to the terminal.
type TerminalReporter struct {
	mu       sync.Mutex
	progress *progressbar.ProgressBar
	verbose  bool
	cyan     *color.Color
	green    *color.Color
	yellow   *color.Color
	red      *color.Color
	bold     *color.Color
}

// NewTerminalReporter creates a new terminal reporter.
func NewTerminalReporter(verbose bool) *TerminalReporter {
	return &TerminalReporter{
		verbose: verbose,
		cyan:    color.New(color.FgCyan, color.Bold),
		green:   color.New(color.FgGreen),
		yellow:  color.New(color.FgYellow, color.Bold),
		red:     color.New(color.FgRed, color.Bold),
		bold:    color.New(color.Bold),
	}
}

// printLabel prints a bold label with fixed width padding followed by a value.
func (r *TerminalReporter) printLabel(width int, label, value string) {
	paddedLabel := fmt.Sprintf("%-*s", width, label)
	fmt.Printf("  %s %s\n", r.bold.Sprint(paddedLabel), value)
}

func (r *TerminalReporter) finishProgress() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.progress != nil {
		_ = r.progress.Finish()
		fmt.Fprintln(os.Stderr)
		r.progress = nil
	}
}

func (r *TerminalReporter) CommandParsed(summary CommandSummary) {
	fmt.Println()
	_, _ = r.cyan.Println("COMMAND LINE")
	r.printLabel(14, "Inputs:", fmt.Sprintf("%d", summary.InputFiles))
	r.printLabel(14, "Outputs:", fmt.Sprintf("%d", summary.OutputFiles))
	r.printLabel(14, "Filtergraphs:", fmt.Sprintf("%d", summary.Graphs))

	if summary.Graphs > 1 {
		r.mu.Lock()
		r.progress = progressbar.NewOptions(summary.Graphs,
			progressbar.OptionSetDescription("compiling"),
			progressbar.OptionSetWidth(40),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetPredictTime(false),
			progressbar.OptionShowCount(),
		)
		r.mu.Unlock()
	}
}

func (r *TerminalReporter) GroupStarted(info GroupInfo) {
	fmt.Println()
	_, _ = r.cyan.Printf("FILTERGRAPH %d/%d\n", info.Index+1, info.Total)
	r.printLabel(14, "Output:", info.URL)
	r.printLabel(14, "Option:", "-"+info.Key)
	if r.verbose {
		r.printLabel(14, "Expression:", info.Expr)
	}
}

func (r *TerminalReporter) GraphResolved(summary GraphSummary) {
	r.printLabel(14, "Filters:", fmt.Sprintf("%d", summary.Filters))
	r.printLabel(14, "Links:", fmt.Sprintf("%d", summary.Links))
	r.printLabel(14, "Boundaries:", fmt.Sprintf("%d in / %d out", summary.Inputs, summary.Outputs))

	r.mu.Lock()
	if r.progress != nil {
		_ = r.progress.Add(1)
	}
	r.mu.Unlock()
}

func (r *TerminalReporter) Warning(message string) {
	_, _ = r.yellow.Printf("Warning: %s\n", message)
}

func (r *TerminalReporter) Error(err ReporterError) {
	r.finishProgress()
	fmt.Println()
	_, _ = r.red.Printf("ERROR: %s\n", err.Title)
	if err.Message != "" {
		fmt.Printf("  %s\n", err.Message)
	}
	if err.Context != "" {
		r.printLabel(12, "Context:", err.Context)
	}
	if err.Suggestion != "" {
		r.printLabel(12, "Suggestion:", err.Suggestion)
	}
}

func (r *TerminalReporter) CompileComplete(outcome CompileOutcome) {
	r.finishProgress()
	dest := outcome.Destination
	if dest == "" {
		dest = "stdout"
	}
	fmt.Println()
	_, _ = r.green.Printf("Compiled %d filtergraph(s), %d bytes -> %s (%s)\n",
		outcome.Graphs, outcome.Bytes, dest, outcome.Elapsed.Round(time.Microsecond))
}

func (r *TerminalReporter) Verbose(message string) {
	if r.verbose {
		fmt.Printf("  %s\n", message)
	}
}
