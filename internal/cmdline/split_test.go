package cmdline

import (
	"strings"
	"testing"

	"github.com/filtergen/filtergen/internal/errors"
)

func TestSplitBasicCommandLine(t *testing.T) {
	res, err := Split([]string{"-y", "-i", "in.mp4", "-vf", "scale=320:240", "-b:v", "1M", "out.mp4"})
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}

	if len(res.Inputs) != 1 || res.Inputs[0].URL != "in.mp4" {
		t.Errorf("Inputs = %+v, want one group for in.mp4", res.Inputs)
	}
	if len(res.Outputs) != 1 || res.Outputs[0].URL != "out.mp4" {
		t.Fatalf("Outputs = %+v, want one group for out.mp4", res.Outputs)
	}

	// -y is global, -vf and -b:v belong to the output file
	if len(res.Global.Opts) != 1 || res.Global.Opts[0].Key != "y" {
		t.Errorf("Global.Opts = %+v, want just y", res.Global.Opts)
	}
	gotKeys := make([]string, 0, len(res.Outputs[0].Opts))
	for _, kv := range res.Outputs[0].Opts {
		gotKeys = append(gotKeys, kv.Key)
	}
	if strings.Join(gotKeys, ",") != "vf,b:v" {
		t.Errorf("output option keys = %v, want [vf b:v]", gotKeys)
	}

	if len(res.Graphs) != 1 {
		t.Fatalf("len(Graphs) = %d, want 1", len(res.Graphs))
	}
	g := res.Graphs[0]
	if g.URL != "out.mp4" || g.Key != "vf" || g.Expr != "scale=320:240" {
		t.Errorf("graph request = %+v, want out.mp4/vf/scale=320:240", g)
	}
}

func TestSplitMultipleOutputs(t *testing.T) {
	res, err := Split([]string{
		"-i", "in.mp4",
		"-vf", "vflip", "one.mp4",
		"-af", "volume=0.5", "two.mp4",
	})
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}

	if len(res.Outputs) != 2 {
		t.Fatalf("len(Outputs) = %d, want 2", len(res.Outputs))
	}
	if len(res.Graphs) != 2 {
		t.Fatalf("len(Graphs) = %d, want 2", len(res.Graphs))
	}
	if res.Graphs[0].URL != "one.mp4" || res.Graphs[0].Key != "vf" {
		t.Errorf("Graphs[0] = %+v, want one.mp4/vf", res.Graphs[0])
	}
	if res.Graphs[1].URL != "two.mp4" || res.Graphs[1].Key != "af" {
		t.Errorf("Graphs[1] = %+v, want two.mp4/af", res.Graphs[1])
	}
}

func TestSplitDashDash(t *testing.T) {
	res, err := Split([]string{"-i", "in.mp4", "--", "-odd-name.mp4"})
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}
	if len(res.Outputs) != 1 || res.Outputs[0].URL != "-odd-name.mp4" {
		t.Errorf("Outputs = %+v, want -odd-name.mp4 taken as a url", res.Outputs)
	}
}

func TestSplitNoPrefixBooleans(t *testing.T) {
	res, err := Split([]string{"-noy", "out.mp4"})
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}
	if len(res.Global.Opts) != 1 {
		t.Fatalf("Global.Opts = %+v, want one entry", res.Global.Opts)
	}
	kv := res.Global.Opts[0]
	if kv.Key != "y" || kv.Val != "0" {
		t.Errorf("option = %+v, want y=0", kv)
	}
}

func TestSplitDefaultOptions(t *testing.T) {
	res, err := Split([]string{"-crf", "23", "out.mp4"})
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}
	var def *Operation
	for i := range res.Operations {
		if res.Operations[i].Kind == OpDefault {
			def = &res.Operations[i]
		}
	}
	if def == nil {
		t.Fatal("no OpDefault recorded for -crf")
	}
	if def.Key != "crf" || def.Val != "23" {
		t.Errorf("default op = %+v, want crf=23", def)
	}
	if len(res.Outputs) != 1 || res.Outputs[0].URL != "out.mp4" {
		t.Errorf("Outputs = %+v, want out.mp4", res.Outputs)
	}
}

func TestSplitErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing file after -i", []string{"-i"}},
		{"missing argument", []string{"-vf"}},
		{"unrecognized trailing option", []string{"-zzz"}},
		{"filtergraph on input file", []string{"-vf", "vflip", "-i", "in.mp4"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Split(tt.args)
			if err == nil {
				t.Fatalf("Split(%v) succeeded, want error", tt.args)
			}
			if !errors.IsKind(err, errors.KindCommandLine) {
				t.Errorf("Split(%v) error = %v, want command line kind", tt.args, err)
			}
		})
	}
}

func TestSplitExitOptionTakesOptionalArg(t *testing.T) {
	res, err := Split([]string{"-h", "full"})
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}
	if len(res.Global.Opts) != 1 {
		t.Fatalf("Global.Opts = %+v, want one entry", res.Global.Opts)
	}
	if kv := res.Global.Opts[0]; kv.Key != "h" || kv.Val != "full" {
		t.Errorf("option = %+v, want h=full", kv)
	}
}

func TestRenderOperations(t *testing.T) {
	res, err := Split([]string{"-y", "-i", "in.mp4", "-vf", "scale=320:240", "out.mp4"})
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}

	want := `add_opt(octx, find_option(options, "y"), "y", "1");
finish_group(octx, 1, "in.mp4");
add_opt(octx, find_option(options, "vf"), "vf", "scale=320:240");
finish_group(octx, 0, "out.mp4");
`
	if got := RenderOperations(res.Operations); got != want {
		t.Errorf("RenderOperations() =\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderDefaultOperation(t *testing.T) {
	got := RenderOperations([]Operation{{Kind: OpDefault, Key: "crf", Val: "23"}})
	want := "opt_default(NULL, \"crf\", \"23\");\n"
	if got != want {
		t.Errorf("RenderOperations() = %q, want %q", got, want)
	}
}

func TestFlagBitsDistinct(t *testing.T) {
	bits := []Flags{
		HasArg, FlagBool, FlagExpert, FlagString, FlagVideo, FlagAudio,
		FlagSubtitle, FlagInt, FlagInt64, FlagFloat, FlagTime, FlagExit,
		FlagPerFile, FlagSpec, FlagOffset, FlagInput, FlagOutput,
	}
	seen := make(map[Flags]bool)
	for _, b := range bits {
		if b == 0 || b&(b-1) != 0 {
			t.Errorf("flag %b is not a single bit", b)
		}
		if seen[b] {
			t.Errorf("flag %b assigned twice", b)
		}
		seen[b] = true
	}
}

func TestFindOption(t *testing.T) {
	if po := FindOption("c:v"); po == nil || po.Name != "c" {
		t.Errorf("FindOption(c:v) = %+v, want the c option", po)
	}
	if po := FindOption("nope"); po != nil {
		t.Errorf("FindOption(nope) = %+v, want nil", po)
	}
}
