// Package catalog describes the pad arity contracts of known libavfilter
// filters. The graph resolver consults it to validate how many input and
// output pads each filter occurrence may carry.
package catalog

import (
	"strconv"
	"strings"
)

// Kind classifies the shape of a filter's pad arity.
type Kind int

const (
	// Fixed means both pad counts are exact.
	Fixed Kind = iota
	// VariadicInputs means the input count is chosen by the filter's
	// arguments, bounded below by a minimum.
	VariadicInputs
	// VariadicOutputs means the output count is chosen by the filter's
	// arguments or grown by trailing link labels, bounded below by 1.
	VariadicOutputs
)

// Arity is the pad contract of one filter kind. For Fixed filters Inputs and
// Outputs are exact. For VariadicInputs, Inputs is the default count and Min
// the lower bound. For VariadicOutputs, Outputs is the default count.
type Arity struct {
	Kind    Kind
	Inputs  int
	Outputs int
	Min     int
}

// fixed is shorthand for an exact in/out contract.
func fixed(in, out int) Arity {
	return Arity{Kind: Fixed, Inputs: in, Outputs: out}
}

// filters maps filter names to their arity contracts. Pad counts mirror what
// avfilter reports after avfilter_init_str for an argument-free instance;
// argument-driven counts are resolved by EffectiveInputs/EffectiveOutputs.
var filters = map[string]Arity{
	// sources
	"movie":   fixed(0, 1),
	"amovie":  fixed(0, 1),
	"color":   fixed(0, 1),
	"testsrc": fixed(0, 1),
	"nullsrc": fixed(0, 1),

	// single input video filters
	"scale":      fixed(1, 1),
	"crop":       fixed(1, 1),
	"pad":        fixed(1, 1),
	"vflip":      fixed(1, 1),
	"hflip":      fixed(1, 1),
	"transpose":  fixed(1, 1),
	"rotate":     fixed(1, 1),
	"negate":     fixed(1, 1),
	"edgedetect": fixed(1, 1),
	"subtitles":  fixed(1, 1),
	"drawtext":   fixed(1, 1),
	"drawbox":    fixed(1, 1),
	"boxblur":    fixed(1, 1),
	"unsharp":    fixed(1, 1),
	"eq":         fixed(1, 1),
	"curves":     fixed(1, 1),
	"lut":        fixed(1, 1),
	"fade":       fixed(1, 1),
	"fps":        fixed(1, 1),
	"framerate":  fixed(1, 1),
	"zoompan":    fixed(1, 1),
	"format":     fixed(1, 1),
	"setpts":     fixed(1, 1),
	"setsar":     fixed(1, 1),
	"setdar":     fixed(1, 1),
	"trim":       fixed(1, 1),
	"select":     fixed(1, 1),
	"null":       fixed(1, 1),

	// single input audio filters
	"volume":     fixed(1, 1),
	"loudnorm":   fixed(1, 1),
	"dynaudnorm": fixed(1, 1),
	"speechnorm": fixed(1, 1),
	"aresample":  fixed(1, 1),
	"aformat":    fixed(1, 1),
	"asetpts":    fixed(1, 1),
	"atrim":      fixed(1, 1),
	"apad":       fixed(1, 1),
	"anull":      fixed(1, 1),

	// multiple fixed inputs
	"overlay":           fixed(2, 1),
	"blend":             fixed(2, 1),
	"sidechaincompress": fixed(2, 1),

	// argument-driven input counts
	"hstack":     {Kind: VariadicInputs, Inputs: 2, Outputs: 1, Min: 2},
	"vstack":     {Kind: VariadicInputs, Inputs: 2, Outputs: 1, Min: 2},
	"xstack":     {Kind: VariadicInputs, Inputs: 2, Outputs: 1, Min: 2},
	"amix":       {Kind: VariadicInputs, Inputs: 2, Outputs: 1, Min: 1},
	"amerge":     {Kind: VariadicInputs, Inputs: 2, Outputs: 1, Min: 1},
	"interleave": {Kind: VariadicInputs, Inputs: 2, Outputs: 1, Min: 1},
	"concat":     {Kind: VariadicInputs, Inputs: 2, Outputs: 1, Min: 1},

	// argument-driven output counts
	"split":  {Kind: VariadicOutputs, Inputs: 1, Outputs: 2, Min: 1},
	"asplit": {Kind: VariadicOutputs, Inputs: 1, Outputs: 2, Min: 1},
}

// Lookup is a capability query: it returns the arity contract for the named
// filter and whether the filter is known at all. Absence is reported, never
// defaulted, so the caller decides how to treat unrecognized names.
func Lookup(name string) (Arity, bool) {
	a, ok := filters[name]
	return a, ok
}

// Assumed is the arity granted to unknown filters when the caller opts into
// best-effort acceptance.
func Assumed() Arity {
	return fixed(1, 1)
}

// EffectiveInputs resolves the input pad count for a filter occurrence with
// the given raw argument string. Fixed contracts pass through; variadic input
// counts honor the "inputs=N"/"n=N" keys and the bare leading integer
// shorthand the stack/merge filters accept. Minimum bounds are the caller's
// to enforce.
func EffectiveInputs(a Arity, args string) int {
	if a.Kind != VariadicInputs {
		return a.Inputs
	}
	if v, ok := countArg(args, "inputs", "n"); ok {
		return v
	}
	return a.Inputs
}

// EffectiveOutputs resolves the declared output pad count for a filter
// occurrence. Variadic output filters take a bare integer argument
// (e.g. split=3) or the "outputs=N" key.
func EffectiveOutputs(a Arity, args string) int {
	if a.Kind != VariadicOutputs {
		return a.Outputs
	}
	if v, ok := countArg(args, "outputs"); ok {
		return v
	}
	return a.Outputs
}

// countArg extracts a pad count from a colon-separated argument string,
// accepting either a bare leading integer or any of the given keys.
func countArg(args string, keys ...string) (int, bool) {
	if args == "" {
		return 0, false
	}
	for _, part := range strings.Split(args, ":") {
		if v, err := strconv.Atoi(strings.TrimSpace(part)); err == nil {
			return v, true
		}
		key, val, found := strings.Cut(part, "=")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		for _, want := range keys {
			if key != want {
				continue
			}
			if v, err := strconv.Atoi(strings.TrimSpace(val)); err == nil {
				return v, true
			}
		}
	}
	return 0, false
}
