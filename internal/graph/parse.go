package graph

import (
	"fmt"
	"slices"
	"strings"

	"github.com/filtergen/filtergen/internal/catalog"
	"github.com/filtergen/filtergen/internal/config"
	"github.com/filtergen/filtergen/internal/errors"
	"github.com/filtergen/filtergen/internal/logging"
)

// Options controls resolution policy for one Parse call.
type Options struct {
	// Dangling selects how unconnected pads are treated.
	Dangling config.DanglingPolicy

	// UnknownFilters selects how filter names absent from the catalog are
	// treated.
	UnknownFilters config.UnknownFilterPolicy

	// Warn receives best-effort diagnostics (e.g. assumed unknown filters).
	Warn func(message string)
}

// DefaultOptions returns the default resolution policy.
func DefaultOptions() Options {
	return Options{
		Dangling:       config.DanglingExpose,
		UnknownFilters: config.UnknownReject,
	}
}

// Parse consumes one filtergraph expression and returns the linked result.
// The label table and all intermediate state are local to this call.
func Parse(expr string, opts Options) (*Linked, error) {
	if opts.Warn == nil {
		opts.Warn = func(string) {}
	}
	r := &resolver{
		sc:     newScanner(expr),
		opts:   opts,
		log:    logging.Global().WithPrefix("graph"),
		linked: &Linked{},
		labels: make(map[string]*labelUse),
	}
	return r.run()
}

// pendingPad is an output pad waiting for a consumer, or a named input pad
// waiting for its filter. filter is -1 while no producer is known.
type pendingPad struct {
	label  string
	filter int
	pad    int
}

// labelUse counts how often a link label appears on each side.
type labelUse struct {
	produced int
	consumed int
}

type resolver struct {
	sc     *scanner
	opts   Options
	log    *logging.Logger
	linked *Linked

	// pending holds the open output pads of the chain so far; leading link
	// labels queue ahead of them for the next filter's inputs.
	pending     []pendingPad
	openInputs  []BoundaryPad
	openOutputs []BoundaryPad
	labels      map[string]*labelUse
}

func (r *resolver) run() (*Linked, error) {
	r.sc.skipWS()
	if err := r.parseSWSFlags(); err != nil {
		return nil, err
	}

	var chain Chain
	for {
		r.sc.skipWS()

		inLabels, err := r.parseInputs()
		if err != nil {
			return nil, err
		}

		spec, idx, err := r.parseFilter()
		if err != nil {
			return nil, err
		}
		spec.InputLabels = inLabels

		if err := r.linkFilterPads(idx); err != nil {
			return nil, err
		}

		outLabels, err := r.parseOutputs(idx)
		if err != nil {
			return nil, err
		}
		spec.OutputLabels = outLabels
		chain = append(chain, *spec)

		r.sc.skipWS()
		c, ok := r.sc.peek()
		switch {
		case !ok:
			r.flushPending()
			r.linked.Chains = append(r.linked.Chains, chain)
			return r.finish()
		case c == ',':
			r.sc.skip(1)
		case c == ';':
			r.flushPending()
			r.linked.Chains = append(r.linked.Chains, chain)
			chain = nil
			r.sc.skip(1)
		default:
			return nil, errors.NewSyntaxError("unable to parse graph description",
				r.sc.offset(), r.sc.remaining())
		}
	}
}

// parseSWSFlags handles the optional sws_flags= prefix. The stored string
// keeps the "flags=" part, exactly as ffmpeg forwards it to swscale.
func (r *resolver) parseSWSFlags() error {
	if !strings.HasPrefix(r.sc.remaining(), "sws_flags=") {
		return nil
	}
	r.sc.skip(4)

	opts, ok := r.sc.untilByte(';')
	if !ok {
		return errors.NewSyntaxError("sws_flags not terminated with ';'",
			r.sc.offset(), r.sc.remaining())
	}
	r.linked.ScaleSWSOpts = opts
	r.sc.skip(len(opts) + 1)
	return nil
}

// parseLinkLabel consumes one [name] token.
func (r *resolver) parseLinkLabel() (string, error) {
	start := r.sc.offset()
	r.sc.skip(1) // '['

	name, ok := r.sc.untilByte(']')
	if !ok {
		return "", errors.NewSyntaxError("unterminated link label", start, r.sc.src[start:])
	}
	if name == "" {
		return "", errors.NewSyntaxError("empty link label", start, r.sc.src[start:])
	}
	r.sc.skip(len(name) + 1)
	return name, nil
}

// parseInputs consumes the leading link labels of a filter. A label naming an
// open output closes it; otherwise the label waits for the filter's pad
// assignment. Labeled pads queue ahead of the chain's carried-over pads.
func (r *resolver) parseInputs() ([]string, error) {
	var parsed []pendingPad
	var labelNames []string

	for {
		c, ok := r.sc.peek()
		if !ok || c != '[' {
			break
		}
		label, err := r.parseLinkLabel()
		if err != nil {
			return nil, err
		}
		if err := r.consumeLabel(label); err != nil {
			return nil, err
		}
		labelNames = append(labelNames, label)

		if i := findBoundary(r.openOutputs, label); i >= 0 {
			open := r.openOutputs[i]
			r.openOutputs = slices.Delete(r.openOutputs, i, i+1)
			parsed = append(parsed, pendingPad{label: label, filter: open.Filter, pad: open.Pad})
		} else {
			parsed = append(parsed, pendingPad{label: label, filter: -1})
		}
		r.sc.skipWS()
	}

	r.pending = append(parsed, r.pending...)
	return labelNames, nil
}

// parseFilter consumes a filter token (name, optional @instance suffix,
// optional =args) and creates its instance.
func (r *resolver) parseFilter() (*FilterSpec, int, error) {
	start := r.sc.offset()
	name := r.sc.until(func(b byte) bool {
		return b == '=' || b == ',' || b == ';' || b == '['
	})
	r.sc.skip(len(name))
	name = strings.TrimSpace(name)

	args := ""
	if c, ok := r.sc.peek(); ok && c == '=' {
		r.sc.skip(1)
		args = r.sc.until(func(b byte) bool {
			return b == '[' || b == ']' || b == ',' || b == ';'
		})
		r.sc.skip(len(args))
		args = strings.TrimSpace(args)
	}

	if name == "" {
		return nil, 0, errors.NewSyntaxError("empty filter specification",
			start, strings.TrimSpace(r.sc.src[start:]))
	}

	spec := &FilterSpec{Name: name, Args: args}

	filtName, tag := name, ""
	if i := strings.IndexByte(name, '@'); i >= 0 && i+1 < len(name) {
		filtName = name[:i]
		tag = name
		spec.Name = filtName
		spec.Instance = name[i+1:]
	}

	idx, err := r.createInstance(filtName, tag, args)
	if err != nil {
		return nil, 0, err
	}
	return spec, idx, nil
}

// createInstance assigns the next dense id and resolves the declared arity
// from the catalog.
func (r *resolver) createInstance(filtName, tag, args string) (int, error) {
	arity, known := catalog.Lookup(filtName)
	if !known {
		if r.opts.UnknownFilters != config.UnknownAssume {
			return 0, errors.NewUnknownFilterError(filtName)
		}
		arity = catalog.Assumed()
		r.log.Warn("unknown filter assumed 1-in/1-out", "filter", filtName)
		r.opts.Warn(fmt.Sprintf("unknown filter %q accepted with an assumed 1-in/1-out arity", filtName))
	}

	if filtName == "scale" && r.linked.ScaleSWSOpts != "" && !strings.Contains(args, "flags") {
		if args == "" {
			args = r.linked.ScaleSWSOpts
		} else {
			args = args + ":" + r.linked.ScaleSWSOpts
		}
	}

	id := len(r.linked.Instances)
	if tag == "" {
		tag = fmt.Sprintf("Parsed_%s_%d", filtName, id)
	}

	nIn := catalog.EffectiveInputs(arity, args)
	nOut := catalog.EffectiveOutputs(arity, args)
	switch arity.Kind {
	case catalog.VariadicInputs:
		if nIn < arity.Min {
			return 0, errors.NewArityError(filtName, id, "input", arity.Min, nIn)
		}
	case catalog.VariadicOutputs:
		if nOut < arity.Min {
			return 0, errors.NewArityError(filtName, id, "output", arity.Min, nOut)
		}
	}

	r.linked.Instances = append(r.linked.Instances, Instance{
		ID:      id,
		Name:    filtName,
		Tag:     tag,
		Args:    args,
		Inputs:  nIn,
		Outputs: nOut,
	})
	r.log.Debug("created filter instance",
		"filter", filtName, "id", id, "inputs", nIn, "outputs", nOut)
	return id, nil
}

// linkFilterPads connects the filter's declared input pads to the pending
// pads of the chain, then publishes its declared outputs as the new pending
// set. Pending pads without a producer become open graph inputs.
func (r *resolver) linkFilterPads(idx int) error {
	inst := &r.linked.Instances[idx]

	for pad := 0; pad < inst.Inputs; pad++ {
		if len(r.pending) == 0 {
			r.openInputs = append(r.openInputs, BoundaryPad{Filter: inst.ID, Pad: pad})
			continue
		}
		p := r.pending[0]
		r.pending = r.pending[1:]

		if p.filter >= 0 {
			r.linked.Links = append(r.linked.Links, Link{
				From: p.filter, FromPad: p.pad, To: inst.ID, ToPad: pad,
			})
		} else {
			r.openInputs = append(r.openInputs, BoundaryPad{Label: p.label, Filter: inst.ID, Pad: pad})
		}
	}

	if n := len(r.pending); n > 0 {
		r.pending = nil
		return errors.NewArityError(inst.Name, inst.ID, "input", inst.Inputs, inst.Inputs+n)
	}

	for pad := 0; pad < inst.Outputs; pad++ {
		r.pending = append(r.pending, pendingPad{filter: inst.ID, pad: pad})
	}
	return nil
}

// parseOutputs consumes the trailing link labels of a filter. A label naming
// an open input emits the deferred link; otherwise the pad is recorded as a
// named open output. Variadic-output filters grow on demand.
func (r *resolver) parseOutputs(idx int) ([]string, error) {
	inst := &r.linked.Instances[idx]
	var labelNames []string

	for {
		c, ok := r.sc.peek()
		if !ok || c != '[' {
			break
		}
		label, err := r.parseLinkLabel()
		if err != nil {
			return nil, err
		}
		if err := r.produceLabel(label); err != nil {
			return nil, err
		}
		labelNames = append(labelNames, label)

		var p pendingPad
		if len(r.pending) == 0 {
			arity, _ := catalog.Lookup(inst.Name)
			if arity.Kind != catalog.VariadicOutputs {
				return nil, errors.NewArityError(inst.Name, inst.ID, "output",
					inst.Outputs, inst.Outputs+1)
			}
			p = pendingPad{filter: inst.ID, pad: inst.Outputs}
			inst.Outputs++
		} else {
			p = r.pending[0]
			r.pending = r.pending[1:]
		}

		if i := findBoundary(r.openInputs, label); i >= 0 {
			open := r.openInputs[i]
			r.openInputs = slices.Delete(r.openInputs, i, i+1)
			r.linked.Links = append(r.linked.Links, Link{
				From: p.filter, FromPad: p.pad, To: open.Filter, ToPad: open.Pad,
			})
		} else {
			r.openOutputs = append(r.openOutputs, BoundaryPad{Label: label, Filter: p.filter, Pad: p.pad})
		}
		r.sc.skipWS()
	}
	return labelNames, nil
}

// flushPending moves the chain's unconsumed output pads to the open-output
// list. Called at ';' and at the end of the expression.
func (r *resolver) flushPending() {
	for _, p := range r.pending {
		r.openOutputs = append(r.openOutputs, BoundaryPad{Label: p.label, Filter: p.filter, Pad: p.pad})
	}
	r.pending = nil
}

// finish applies the dangling-pad policy and seals the result.
func (r *resolver) finish() (*Linked, error) {
	if r.opts.Dangling == config.DanglingStrict {
		for _, p := range r.openInputs {
			if p.Label != "" {
				return nil, errors.NewLabelError(p.Label, "is never connected to an output")
			}
		}
		for _, p := range r.openOutputs {
			if p.Label != "" {
				return nil, errors.NewLabelError(p.Label, "is never connected to an input")
			}
		}
	}
	r.linked.Inputs = r.openInputs
	r.linked.Outputs = r.openOutputs
	return r.linked, nil
}

func (r *resolver) consumeLabel(label string) error {
	u := r.labelUse(label)
	u.consumed++
	if u.consumed > 1 {
		return errors.NewLabelError(label, "is used more than once as an input")
	}
	return nil
}

func (r *resolver) produceLabel(label string) error {
	u := r.labelUse(label)
	u.produced++
	if u.produced > 1 {
		return errors.NewLabelError(label, "is used more than once as an output")
	}
	return nil
}

func (r *resolver) labelUse(label string) *labelUse {
	u, ok := r.labels[label]
	if !ok {
		u = &labelUse{}
		r.labels[label] = u
	}
	return u
}

func findBoundary(pads []BoundaryPad, label string) int {
	for i, p := range pads {
		if p.Label == label {
			return i
		}
	}
	return -1
}
