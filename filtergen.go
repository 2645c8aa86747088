// Package filtergen compiles ffmpeg-style command lines and filtergraph
// expressions into literal C source text that reconstructs the graph through
// the libavfilter API.
//
// Filtergen splits an argument list into per-file option groups, resolves
// every filtergraph expression attached to an output file into filter
// instances, links and boundary pads, and renders the C calls that would
// rebuild that graph: avfilter_graph_alloc_filter, avfilter_init_str,
// avfilter_link and the AVFilterInOut boundary lists.
//
// Basic usage:
//
//	compiler, err := filtergen.New(
//	    filtergen.WithUnknownFilterPolicy(filtergen.UnknownAssume),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := compiler.Compile(
//	    []string{"-i", "in.mp4", "-vf", "scale=320:240", "out.mp4"}, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Print(result.Text)
package filtergen

import (
	"fmt"
	"strings"
	"time"

	"github.com/filtergen/filtergen/internal/cmdline"
	"github.com/filtergen/filtergen/internal/codegen"
	"github.com/filtergen/filtergen/internal/config"
	"github.com/filtergen/filtergen/internal/graph"
	"github.com/filtergen/filtergen/internal/reporter"
)

// Re-export policy types
type DanglingPolicy = config.DanglingPolicy
type UnknownFilterPolicy = config.UnknownFilterPolicy

const (
	DanglingExpose = config.DanglingExpose
	DanglingStrict = config.DanglingStrict
	UnknownReject  = config.UnknownReject
	UnknownAssume  = config.UnknownAssume
)

// ParseDanglingPolicy converts a policy string to a DanglingPolicy.
// Valid values are "expose" and "strict" (case-insensitive).
func ParseDanglingPolicy(s string) (DanglingPolicy, error) {
	return config.ParseDanglingPolicy(s)
}

// ParseUnknownFilterPolicy converts a policy string to an
// UnknownFilterPolicy. Valid values are "reject" and "assume"
// (case-insensitive).
func ParseUnknownFilterPolicy(s string) (UnknownFilterPolicy, error) {
	return config.ParseUnknownFilterPolicy(s)
}

// Compiler is the main entry point for filtergraph compilation.
type Compiler struct {
	config *config.Config
}

// GraphResult is the compiled form of one filtergraph expression.
type GraphResult struct {
	URL    string
	Key    string
	Expr   string
	Linked *graph.Linked
	Code   string
}

// Result contains the result of compiling one command line.
type Result struct {
	// CommandBlock replays the command line splitting decisions as C calls.
	CommandBlock string

	// Graphs holds one entry per filtergraph expression, in command line
	// order.
	Graphs []GraphResult

	// Text is the complete rendered output: the command block followed by
	// every graph block, each introduced by a comment naming its output
	// file.
	Text string
}

// Option configures the compiler.
type Option func(*config.Config)

// New creates a new Compiler with the given options.
func New(opts ...Option) (*Compiler, error) {
	cfg := config.Default()

	for _, opt := range opts {
		opt(cfg)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Compiler{config: cfg}, nil
}

// WithConfig replaces the whole configuration.
func WithConfig(cfg *config.Config) Option {
	return func(c *config.Config) {
		*c = *cfg
	}
}

// WithDanglingPolicy sets how unconnected pads are treated.
func WithDanglingPolicy(p DanglingPolicy) Option {
	return func(c *config.Config) {
		c.Dangling = p
	}
}

// WithUnknownFilterPolicy sets how unknown filter names are treated.
func WithUnknownFilterPolicy(p UnknownFilterPolicy) Option {
	return func(c *config.Config) {
		c.UnknownFilters = p
	}
}

// Compile splits the argument list (excluding the program name), resolves
// every filtergraph expression found on an output file, and renders the
// C text for all of them. A nil reporter is allowed.
func (c *Compiler) Compile(args []string, rep reporter.Reporter) (*Result, error) {
	if rep == nil {
		rep = reporter.NullReporter{}
	}
	start := time.Now()

	split, err := cmdline.Split(args)
	if err != nil {
		rep.Error(reporter.ReporterError{
			Title:   "Command line error",
			Message: err.Error(),
		})
		return nil, err
	}

	rep.CommandParsed(reporter.CommandSummary{
		InputFiles:    len(split.Inputs),
		OutputFiles:   len(split.Outputs),
		GlobalOptions: len(split.Global.Opts),
		Graphs:        len(split.Graphs),
	})

	res := &Result{CommandBlock: cmdline.RenderOperations(split.Operations)}

	var b strings.Builder
	b.WriteString(res.CommandBlock)

	opts := graph.Options{
		Dangling:       c.config.Dangling,
		UnknownFilters: c.config.UnknownFilters,
		Warn:           rep.Warning,
	}

	for i, req := range split.Graphs {
		rep.GroupStarted(reporter.GroupInfo{
			Index: i,
			Total: len(split.Graphs),
			URL:   req.URL,
			Key:   req.Key,
			Expr:  req.Expr,
		})

		linked, err := graph.Parse(req.Expr, opts)
		if err != nil {
			rep.Error(reporter.ReporterError{
				Title:   "Filtergraph error",
				Message: err.Error(),
				Context: fmt.Sprintf("output '%s', option -%s", req.URL, req.Key),
			})
			return nil, err
		}

		rep.GraphResolved(reporter.GraphSummary{
			URL:     req.URL,
			Filters: len(linked.Instances),
			Links:   len(linked.Links),
			Inputs:  len(linked.Inputs),
			Outputs: len(linked.Outputs),
		})

		code := codegen.Render(linked)
		rep.Verbose(fmt.Sprintf("rendered %d bytes for '%s'", len(code), req.URL))
		res.Graphs = append(res.Graphs, GraphResult{
			URL:    req.URL,
			Key:    req.Key,
			Expr:   req.Expr,
			Linked: linked,
			Code:   code,
		})

		fmt.Fprintf(&b, "\n/* filtergraph for output '%s' (%s) */\n", req.URL, req.Key)
		b.WriteString(code)
	}

	res.Text = b.String()

	rep.CompileComplete(reporter.CompileOutcome{
		Graphs:      len(res.Graphs),
		Bytes:       len(res.Text),
		Destination: c.config.OutputPath,
		Elapsed:     time.Since(start),
	})
	return res, nil
}

// CompileGraph resolves and renders a single filtergraph expression without a
// surrounding command line.
func (c *Compiler) CompileGraph(expr string) (*GraphResult, error) {
	opts := graph.Options{
		Dangling:       c.config.Dangling,
		UnknownFilters: c.config.UnknownFilters,
	}
	linked, err := graph.Parse(expr, opts)
	if err != nil {
		return nil, err
	}
	return &GraphResult{
		Expr:   expr,
		Linked: linked,
		Code:   codegen.Render(linked),
	}, nil
}
