package catalog

import (
	"testing"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name    string
		known   bool
		kind    Kind
		inputs  int
		outputs int
	}{
		{"scale", true, Fixed, 1, 1},
		{"overlay", true, Fixed, 2, 1},
		{"movie", true, Fixed, 0, 1},
		{"split", true, VariadicOutputs, 1, 2},
		{"hstack", true, VariadicInputs, 2, 1},
		{"fakefilter", false, Fixed, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, ok := Lookup(tt.name)
			if ok != tt.known {
				t.Fatalf("Lookup(%q) known = %v, want %v", tt.name, ok, tt.known)
			}
			if !ok {
				return
			}
			if a.Kind != tt.kind {
				t.Errorf("kind = %v, want %v", a.Kind, tt.kind)
			}
			if a.Inputs != tt.inputs || a.Outputs != tt.outputs {
				t.Errorf("arity = %d/%d, want %d/%d", a.Inputs, a.Outputs, tt.inputs, tt.outputs)
			}
		})
	}
}

func TestAssumed(t *testing.T) {
	a := Assumed()
	if a.Kind != Fixed || a.Inputs != 1 || a.Outputs != 1 {
		t.Errorf("Assumed() = %+v, want fixed 1-in/1-out", a)
	}
}

func TestEffectiveInputs(t *testing.T) {
	tests := []struct {
		name   string
		filter string
		args   string
		want   int
	}{
		{"fixed ignores args", "overlay", "0:0", 2},
		{"variadic default", "hstack", "", 2},
		{"inputs key", "hstack", "inputs=4", 4},
		{"n key", "concat", "n=3:v=1:a=0", 3},
		{"bare integer", "amerge", "5", 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, ok := Lookup(tt.filter)
			if !ok {
				t.Fatalf("filter %q not in catalog", tt.filter)
			}
			if got := EffectiveInputs(a, tt.args); got != tt.want {
				t.Errorf("EffectiveInputs() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestEffectiveInputsKeepsMinimum(t *testing.T) {
	// Counts below the minimum pass through; the resolver enforces bounds
	// with the instance id in hand.
	a, _ := Lookup("hstack")
	if got := EffectiveInputs(a, "inputs=1"); got != 1 {
		t.Errorf("EffectiveInputs() = %d, want 1", got)
	}
	if a.Min != 2 {
		t.Errorf("hstack minimum = %d, want 2", a.Min)
	}
}

func TestEffectiveOutputs(t *testing.T) {
	tests := []struct {
		name   string
		filter string
		args   string
		want   int
	}{
		{"fixed ignores args", "scale", "320:240", 1},
		{"split default", "split", "", 2},
		{"split bare integer", "split", "3", 3},
		{"asplit outputs key", "asplit", "outputs=4", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, ok := Lookup(tt.filter)
			if !ok {
				t.Fatalf("filter %q not in catalog", tt.filter)
			}
			if got := EffectiveOutputs(a, tt.args); got != tt.want {
				t.Errorf("EffectiveOutputs() = %d, want %d", got, tt.want)
			}
		})
	}
}
