package reporter

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestJSONReporterEmitsNDJSON(t *testing.T) {
	var buf bytes.Buffer
	rep := NewJSONReporterWithWriter(&buf)

	rep.CommandParsed(CommandSummary{InputFiles: 1, OutputFiles: 1, Graphs: 1})
	rep.GraphResolved(GraphSummary{URL: "out.mp4", Filters: 2, Links: 1})
	rep.CompileComplete(CompileOutcome{Graphs: 1, Bytes: 42, Elapsed: time.Millisecond})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}

	wantTypes := []string{"command_parsed", "graph_resolved", "compile_complete"}
	for i, line := range lines {
		var event map[string]interface{}
		if err := json.Unmarshal([]byte(line), &event); err != nil {
			t.Fatalf("line %d is not valid JSON: %v", i, err)
		}
		if event["type"] != wantTypes[i] {
			t.Errorf("line %d type = %v, want %s", i, event["type"], wantTypes[i])
		}
		if _, ok := event["timestamp"]; !ok {
			t.Errorf("line %d missing timestamp", i)
		}
	}
}

func TestCompositeReporterFansOut(t *testing.T) {
	var a, b bytes.Buffer
	comp := NewCompositeReporter(
		NewJSONReporterWithWriter(&a),
		NewJSONReporterWithWriter(&b),
	)

	comp.Warning("something odd")

	if a.Len() == 0 || b.Len() == 0 {
		t.Error("composite reporter should forward events to every child")
	}
	if a.String() != b.String() {
		t.Errorf("children disagree: %q vs %q", a.String(), b.String())
	}
}

func TestNullReporterIsSafe(t *testing.T) {
	var rep Reporter = NullReporter{}
	rep.CommandParsed(CommandSummary{})
	rep.Warning("ignored")
	rep.Error(ReporterError{Title: "ignored"})
	rep.CompileComplete(CompileOutcome{})
}
