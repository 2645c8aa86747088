package cmdline

import (
	"fmt"
	"strings"
)

// RenderOperations replays the recorded splitting decisions as literal C
// calls against the option-parsing helpers, one per line, in command line
// order.
func RenderOperations(ops []Operation) string {
	var b strings.Builder
	for _, op := range ops {
		switch op.Kind {
		case OpAdd:
			fmt.Fprintf(&b, "add_opt(octx, find_option(options, %q), %q, %q);\n",
				op.Key, op.Key, op.Val)
		case OpFinishGroup:
			fmt.Fprintf(&b, "finish_group(octx, %d, %q);\n", op.GroupIndex, op.Val)
		case OpDefault:
			fmt.Fprintf(&b, "opt_default(NULL, %q, %q);\n", op.Key, op.Val)
		}
	}
	return b.String()
}
