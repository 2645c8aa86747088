// Package graph parses filtergraph expressions and resolves them into a
// linked graph of filter instances, pad links, and boundary pads.
//
// The expression mini-language is ffmpeg's: semicolons separate chains,
// commas separate filters within a chain, and bracketed link labels defer
// connections across chains. Parsing and link resolution happen in a single
// pass because a label can close an open pad introduced by an earlier chain.
package graph

// FilterSpec is one textual filter occurrence as it appeared in the source
// expression. Args is the raw argument string, passed through verbatim.
type FilterSpec struct {
	Name         string
	Instance     string // explicit instance name from a name@instance token
	Args         string
	InputLabels  []string
	OutputLabels []string
}

// Chain is a comma-separated linear sequence of filters.
type Chain []FilterSpec

// Instance is a resolved filter node. IDs are dense sequence numbers assigned
// in source order; Tag is the display name used in generated text.
type Instance struct {
	ID      int
	Name    string
	Tag     string
	Args    string
	Inputs  int
	Outputs int
}

// Link is a resolved edge between two instance pads.
type Link struct {
	From    int
	FromPad int
	To      int
	ToPad   int
}

// BoundaryPad is a pad left unconnected by the expression, exposed for
// external attachment. Label is empty for unlabeled chain-edge pads.
type BoundaryPad struct {
	Label  string
	Filter int
	Pad    int
}

// Linked is the fully resolved result of one expression. All slices preserve
// discovery order; the code generator depends on that for output stability.
type Linked struct {
	Instances []Instance
	Links     []Link
	Inputs    []BoundaryPad
	Outputs   []BoundaryPad
	Chains    []Chain

	// ScaleSWSOpts holds the "flags=..." string from an sws_flags= graph
	// prefix, already merged into the args of flagless scale filters.
	ScaleSWSOpts string
}
