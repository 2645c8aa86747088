// Package codegen renders a linked filtergraph as literal C source text
// driving the libavfilter API: one allocation/initialization block per filter
// instance, one avfilter_link call per resolved link, and AVFilterInOut
// records for the graph's boundary pads.
//
// Rendering is purely functional and deterministic: the same linked graph
// always produces byte-identical text. Nothing is emitted for a graph that
// failed an earlier stage; the caller only ever holds complete output.
package codegen

import (
	"fmt"
	"strings"

	"github.com/filtergen/filtergen/internal/graph"
)

// Render produces the full C text for one linked graph.
func Render(g *graph.Linked) string {
	var b strings.Builder

	names := filterVarNames(g)

	if g.ScaleSWSOpts != "" {
		writeSWSOpts(&b, g.ScaleSWSOpts)
	}

	for i := range g.Instances {
		writeFilter(&b, &g.Instances[i], names[i])
	}

	for _, l := range g.Links {
		writeLink(&b, names, l)
	}

	inputNames := make([]string, len(g.Inputs))
	for i, p := range g.Inputs {
		inputNames[i] = fmt.Sprintf("input_%d", i)
		writeInOut(&b, inputNames[i], names, p)
	}
	outputNames := make([]string, len(g.Outputs))
	for i, p := range g.Outputs {
		outputNames[i] = fmt.Sprintf("output_%d", i)
		writeInOut(&b, outputNames[i], names, p)
	}

	writeBoundaryLists(&b, inputNames, outputNames)

	return b.String()
}

// filterVarNames assigns the C variable name of every instance, in id order.
func filterVarNames(g *graph.Linked) []string {
	names := make([]string, len(g.Instances))
	for i, inst := range g.Instances {
		names[i] = fmt.Sprintf("filter_%s_%d", sanitizeIdent(inst.Name), inst.ID)
	}
	return names
}

// sanitizeIdent maps arbitrary filter names onto valid C identifier text.
func sanitizeIdent(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '_':
			b.WriteByte(c)
		case c >= '0' && c <= '9':
			if i == 0 {
				b.WriteByte('_')
			}
			b.WriteByte(c)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

// cQuote escapes backslashes and double quotes for embedding in a C string
// literal. Filter arguments are otherwise passed through verbatim.
func cQuote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}

func writeSWSOpts(b *strings.Builder, opts string) {
	size := len(opts) + 1
	fmt.Fprintf(b, `av_freep(&graph->scale_sws_opts);
if (!(graph->scale_sws_opts = av_mallocz(%d)))
    return AVERROR(ENOMEM);
av_strlcpy(graph->scale_sws_opts, "%s", %d);

`, size, cQuote(opts), size)
}

func writeFilter(b *strings.Builder, inst *graph.Instance, varName string) {
	fmt.Fprintf(b, `AVFilterContext* %s = avfilter_graph_alloc_filter(ctx, avfilter_get_by_name("%s"), "%s");
if (!%s) {
    av_log(log_ctx, AV_LOG_ERROR,
           "Error creating filter '%s'\n");
    return AVERROR(ENOMEM);
}
avfilter_init_str(%s, "%s");

`, varName, inst.Name, inst.Tag, varName, inst.Name, varName, cQuote(inst.Args))
}

func writeLink(b *strings.Builder, names []string, l graph.Link) {
	from, to := names[l.From], names[l.To]
	fmt.Fprintf(b, `if ((ret = avfilter_link(%s, %d, %s, %d))) {
    av_log(log_ctx, AV_LOG_ERROR,
           "Cannot create the link %s:%d -> %s:%d\n");
    return ret;
}

`, from, l.FromPad, to, l.ToPad, from, l.FromPad, to, l.ToPad)
}

func writeInOut(b *strings.Builder, varName string, names []string, p graph.BoundaryPad) {
	fmt.Fprintf(b, `AVFilterInOut *%s;
if (!(%s = av_mallocz(sizeof(AVFilterInOut)))) {
    return AVERROR(ENOMEM);
}
%s->pad_idx = %d;
%s->filt_ctx = %s;

`, varName, varName, varName, p.Pad, varName, names[p.Filter])
}

// writeBoundaryLists assigns the caller-visible inputs/outputs heads and
// chains the records in first-discovered order.
func writeBoundaryLists(b *strings.Builder, inputs, outputs []string) {
	if len(inputs) == 0 {
		b.WriteString("*inputs = NULL;\n")
	} else {
		fmt.Fprintf(b, "*inputs = %s;\n", inputs[0])
	}
	if len(outputs) == 0 {
		b.WriteString("*outputs = NULL;\n")
	} else {
		fmt.Fprintf(b, "*outputs = %s;\n", outputs[0])
	}

	for i := 1; i < len(inputs); i++ {
		fmt.Fprintf(b, "%s->next = %s;\n", inputs[i-1], inputs[i])
	}
	for i := 1; i < len(outputs); i++ {
		fmt.Fprintf(b, "%s->next = %s;\n", outputs[i-1], outputs[i])
	}
}
