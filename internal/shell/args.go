package shell

import (
	"io"
	"strings"

	"github.com/spf13/pflag"

	"github.com/oakwood-commons/zksim/internal/formatter"
	"github.com/oakwood-commons/zksim/internal/limiter"
)

// createArgs is the parsed tail of "create PATH ...".
type createArgs struct {
	path       string
	data       string
	ephemeral  bool
	sequential bool
}

// parseCreateArgs splits the tokens after PATH into flags and data. Any token
// starting with "-" is a flag; only -e and -s mean anything, the rest are
// dropped. The remaining tokens, wherever they sit, are joined with single
// spaces to form the data.
func parseCreateArgs(args []string) createArgs {
	out := createArgs{path: args[0]}
	var data []string
	for _, tok := range args[1:] {
		if !strings.HasPrefix(tok, "-") {
			data = append(data, tok)
			continue
		}
		switch tok {
		case "-e":
			out.ephemeral = true
		case "-s":
			out.sequential = true
		}
	}
	out.data = strings.Join(data, " ")
	return out
}

// splitOptions separates "-x" style switches from positional tokens.
func splitOptions(args []string) (positional []string, opts map[string]bool) {
	opts = map[string]bool{}
	for _, tok := range args {
		if strings.HasPrefix(tok, "-") && tok != "-" {
			opts[tok] = true
			continue
		}
		positional = append(positional, tok)
	}
	return positional, opts
}

// pathOrRoot returns the first positional token, or the root path.
func pathOrRoot(positional []string) string {
	if len(positional) == 0 {
		return "/"
	}
	return positional[0]
}

func newFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// findArgs is the parsed tail of "find [--limit N] [--offset N] [--tail N] EXPR".
type findArgs struct {
	window limiter.Config
	expr   string
}

// parseFindArgs reads window options up to the first non-option token; the
// rest is the expression, so a negative number inside it is never taken for
// a flag.
func parseFindArgs(args []string) (findArgs, error) {
	var out findArgs
	fs := newFlagSet("find")
	fs.SetInterspersed(false)
	fs.IntVar(&out.window.Limit, "limit", 0, "show only this many matches")
	fs.IntVar(&out.window.Offset, "offset", 0, "skip the first N matches")
	fs.IntVar(&out.window.Tail, "tail", 0, "show only the last N matches")
	if err := fs.Parse(args); err != nil {
		return out, &UsageError{Usage: usageFind}
	}
	if err := out.window.Validate(); err != nil {
		return out, err
	}
	out.expr = strings.Join(fs.Args(), " ")
	if out.expr == "" {
		return out, &UsageError{Usage: usageFind}
	}
	return out, nil
}

// exportArgs is the parsed tail of "export [PATH] [-o FORMAT] [--direction DIR] [--no-values]".
type exportArgs struct {
	path    string
	format  string
	mermaid formatter.MermaidOptions
}

func parseExportArgs(args []string, defaultFormat string) (exportArgs, error) {
	out := exportArgs{}
	fs := newFlagSet("export")
	fs.StringVarP(&out.format, "output", "o", defaultFormat, "yaml|json|toml|mermaid")
	fs.StringVar(&out.mermaid.Direction, "direction", "", "mermaid direction: TD|LR|BT|RL")
	fs.BoolVar(&out.mermaid.NoValues, "no-values", false, "mermaid: node names only")
	if err := fs.Parse(args); err != nil {
		return out, &UsageError{Usage: usageExport}
	}
	out.path = pathOrRoot(fs.Args())
	return out, nil
}
