package cmdline

import (
	"fmt"
	"strings"

	"github.com/filtergen/filtergen/internal/errors"
	"github.com/filtergen/filtergen/internal/logging"
)

// OptionKV is one applied option instance within a group.
type OptionKV struct {
	Opt *OptionDef
	Key string
	Val string
}

// OptionGroup collects the options attached to one input or output file.
type OptionGroup struct {
	Def  *GroupDef
	URL  string
	Opts []OptionKV
}

// GraphRequest is a filtergraph expression attached to an output file.
type GraphRequest struct {
	URL  string
	Key  string
	Expr string
}

// OpKind tags a recorded splitting operation.
type OpKind int

const (
	// OpAdd records an option applied to the current group.
	OpAdd OpKind = iota
	// OpFinishGroup records a group being closed by its URL.
	OpFinishGroup
	// OpDefault records an unrecognized key/value pair accepted as a
	// default option.
	OpDefault
)

// Operation is one recorded splitting decision, in command line order.
type Operation struct {
	Kind       OpKind
	GroupIndex int
	Key        string
	Val        string
}

// Result is the outcome of splitting one command line.
type Result struct {
	Global     OptionGroup
	Outputs    []OptionGroup
	Inputs     []OptionGroup
	Operations []Operation
	Graphs     []GraphRequest
}

var globalGroup = GroupDef{Name: "global"}

// Split walks the argument list (excluding the program name), groups options
// per input/output file, captures filtergraph expressions, and records every
// decision for later rendering.
func Split(args []string) (*Result, error) {
	res := &Result{Global: OptionGroup{Def: &globalGroup}}
	var cur []OptionKV
	var pendingGraphs []GraphRequest
	dashdash := -1

	log := logging.Global().WithPrefix("cmdline")
	log.Debug("splitting the command line", "args", len(args))

	i := 0
	for i < len(args) {
		opt := args[i]
		i++
		log.Debug("reading option", "opt", opt)

		if opt == "--" {
			dashdash = i
			continue
		}

		// unnamed group separator: an output URL
		if !strings.HasPrefix(opt, "-") || len(opt) <= 1 || dashdash == i-1 {
			if err := res.finishGroup(GroupOutFile, opt, &cur, &pendingGraphs); err != nil {
				return nil, err
			}
			continue
		}
		opt = opt[1:]

		// named group separators, e.g. -i
		if gi := matchGroupSeparator(opt); gi >= 0 {
			if i >= len(args) {
				return nil, errors.NewCommandLineError(
					fmt.Sprintf("missing file after option -%s", opt))
			}
			arg := args[i]
			i++
			if err := res.finishGroup(gi, arg, &cur, &pendingGraphs); err != nil {
				return nil, err
			}
			continue
		}

		// recognized options
		if po := FindOption(opt); po != nil {
			var arg string
			switch {
			case po.Flags&FlagExit != 0:
				// optional argument, e.g. -h
				if i < len(args) {
					arg = args[i]
					i++
				}
			case po.Flags&HasArg != 0:
				if i >= len(args) {
					return nil, errors.NewCommandLineError(
						fmt.Sprintf("missing argument for option -%s", opt))
				}
				arg = args[i]
				i++
			default:
				arg = "1"
			}

			res.addOpt(po, opt, arg, &cur)
			if IsFilterKey(po.Name) {
				pendingGraphs = append(pendingGraphs, GraphRequest{Key: po.Name, Expr: arg})
			}
			continue
		}

		// boolean -nofoo options
		if rest, ok := strings.CutPrefix(opt, "no"); ok {
			if po := FindOption(rest); po != nil && po.Flags&FlagBool != 0 {
				res.addOpt(po, rest, "0", &cur)
				continue
			}
		}

		// everything else with an argument is taken as a default option,
		// the way unmatched keys fall through to the AVOption dictionaries
		if i < len(args) {
			arg := args[i]
			i++
			res.Operations = append(res.Operations, Operation{Kind: OpDefault, Key: opt, Val: arg})
			log.Debug("matched as default option", "opt", opt, "arg", arg)
			continue
		}

		return nil, errors.NewCommandLineError(fmt.Sprintf("unrecognized option '-%s'", opt))
	}

	if len(cur) > 0 || len(pendingGraphs) > 0 {
		log.Debug("trailing options found in the command line; they attach to no file")
	}
	return res, nil
}

func matchGroupSeparator(opt string) int {
	for gi := range Groups {
		if Groups[gi].Sep != "" && Groups[gi].Sep == opt {
			return gi
		}
	}
	return -1
}

// addOpt attaches an option instance to the group it belongs to: per-file
// options accumulate on the group being built, everything else is global.
func (res *Result) addOpt(po *OptionDef, key, val string, cur *[]OptionKV) {
	kv := OptionKV{Opt: po, Key: key, Val: val}
	if po.Flags&(FlagPerFile|FlagSpec) == 0 {
		res.Global.Opts = append(res.Global.Opts, kv)
	} else {
		*cur = append(*cur, kv)
	}
	res.Operations = append(res.Operations, Operation{Kind: OpAdd, Key: key, Val: val})
}

// finishGroup closes the group being built with its URL. Filtergraph
// expressions may only ride on output groups.
func (res *Result) finishGroup(gi int, url string, cur *[]OptionKV, pendingGraphs *[]GraphRequest) error {
	group := OptionGroup{Def: &Groups[gi], URL: url, Opts: *cur}
	switch gi {
	case GroupOutFile:
		res.Outputs = append(res.Outputs, group)
		for _, g := range *pendingGraphs {
			g.URL = url
			res.Graphs = append(res.Graphs, g)
		}
	case GroupInFile:
		res.Inputs = append(res.Inputs, group)
		if len(*pendingGraphs) > 0 {
			return errors.NewCommandLineError(fmt.Sprintf(
				"option -%s cannot be applied to input url %s; move it before the output file it belongs to",
				(*pendingGraphs)[0].Key, url))
		}
	}
	res.Operations = append(res.Operations, Operation{Kind: OpFinishGroup, GroupIndex: gi, Val: url})
	logging.Global().WithPrefix("cmdline").Debug("finished option group",
		"kind", Groups[gi].Name, "url", url)

	*cur = nil
	*pendingGraphs = nil
	return nil
}
