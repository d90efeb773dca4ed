package shell

import (
	"context"
	"fmt"
	"strings"

	"github.com/oakwood-commons/zksim/internal/formatter"
	"github.com/oakwood-commons/zksim/internal/limiter"
	"github.com/oakwood-commons/zksim/internal/znode"
)

const (
	usageCreate = "create /path [data] [-e] [-s]"
	usageLs     = "ls [/path] [-l]"
	usageGet    = "get /path"
	usageSet    = "set /path data"
	usageDelete = "delete /path"
	usageTree   = "tree [/path] [-b]"
	usageStat   = "stat /path"
	usageFind   = "find [--limit N] [--offset N] [--tail N] EXPR"
	usageExport = "export [/path] [-o yaml|json|toml|mermaid] [--direction TD|LR|BT|RL] [--no-values]"
	usageHelp   = "help"
	usageExit   = "exit"
)

type handler func(ctx context.Context, s *Shell, args []string) error

type command struct {
	usage   string
	summary string
	minArgs int
	run     handler
}

// commandOrder fixes the help listing.
var commandOrder = []string{"create", "ls", "get", "set", "delete", "tree", "stat", "find", "export", "help", "exit"}

func defaultCommands() map[string]command {
	return map[string]command{
		"create": {usage: usageCreate, summary: "create a node, making missing parents", minArgs: 1, run: runCreate},
		"ls":     {usage: usageLs, summary: "list children in creation order", run: runLs},
		"get":    {usage: usageGet, summary: "print node data", minArgs: 1, run: runGet},
		"set":    {usage: usageSet, summary: "replace node data", minArgs: 2, run: runSet},
		"delete": {usage: usageDelete, summary: "delete a node and its subtree", minArgs: 1, run: runDelete},
		"tree":   {usage: usageTree, summary: "draw the tree, or only the subtree at PATH", run: runTree},
		"stat":   {usage: usageStat, summary: "print node attributes", minArgs: 1, run: runStat},
		"find":   {usage: usageFind, summary: "list paths matching a CEL predicate", minArgs: 1, run: runFind},
		"export": {usage: usageExport, summary: "print a subtree as a document", run: runExport},
		"help":   {usage: usageHelp, summary: "show this help", run: runHelp},
		"exit":   {usage: usageExit, summary: "leave the shell", run: runExit},
	}
}

func runCreate(_ context.Context, s *Shell, args []string) error {
	a := parseCreateArgs(args)
	if _, err := s.tree.Create(a.path, znode.CreateOptions{
		Data:       a.data,
		Ephemeral:  a.ephemeral,
		Sequential: a.sequential,
	}); err != nil {
		return err
	}
	// Echo the requested path, not the stored sequential name.
	s.out.OK("Created " + a.path)
	return nil
}

func runLs(_ context.Context, s *Shell, args []string) error {
	positional, opts := splitOptions(args)
	n, err := s.tree.Resolve(pathOrRoot(positional))
	if err != nil {
		return err
	}
	if n.NumChildren() == 0 {
		s.out.Info("No children.")
		return nil
	}
	if opts["-l"] {
		s.out.Block(formatter.FormatLongList(n.Children()))
		return nil
	}
	for _, name := range n.ChildNames() {
		s.out.Line(name)
	}
	return nil
}

func runGet(_ context.Context, s *Shell, args []string) error {
	data, err := s.tree.Get(args[0])
	if err != nil {
		return err
	}
	s.out.Data(data)
	return nil
}

func runSet(_ context.Context, s *Shell, args []string) error {
	path := args[0]
	if err := s.tree.Set(path, strings.Join(args[1:], " ")); err != nil {
		return err
	}
	s.out.OK("Updated " + path)
	return nil
}

func runDelete(_ context.Context, s *Shell, args []string) error {
	path := args[0]
	if err := s.tree.Delete(path); err != nil {
		return err
	}
	s.out.OK("Deleted " + path)
	return nil
}

func runTree(_ context.Context, s *Shell, args []string) error {
	positional, opts := splitOptions(args)
	path := pathOrRoot(positional)
	n, err := s.tree.Resolve(path)
	if err != nil {
		return err
	}
	style := s.treeStyle
	if opts["-b"] {
		style = formatter.TreeStyleBox
	}
	s.out.Block(formatter.FormatTree(n, canonical(path), style))
	return nil
}

func runStat(_ context.Context, s *Shell, args []string) error {
	n, err := s.tree.Resolve(args[0])
	if err != nil {
		return err
	}
	s.out.Data("name: " + n.Name)
	s.out.Data("path: " + canonical(args[0]))
	s.out.Data(fmt.Sprintf("ephemeral: %t", n.Ephemeral))
	s.out.Data(fmt.Sprintf("sequential: %t", n.Sequential))
	s.out.Data(fmt.Sprintf("dataLength: %d", len(n.Data)))
	s.out.Data(fmt.Sprintf("numChildren: %d", n.NumChildren()))
	return nil
}

func runFind(_ context.Context, s *Shell, args []string) error {
	a, err := parseFindArgs(args)
	if err != nil {
		return err
	}
	eval, err := s.evaluator()
	if err != nil {
		return err
	}
	matches, err := eval.Find(s.tree, "/", a.expr)
	if err != nil {
		return err
	}
	matches = limiter.Apply(a.window, matches)
	if len(matches) == 0 {
		s.out.Info("No matches.")
		return nil
	}
	for _, p := range matches {
		s.out.Line(p)
	}
	return nil
}

func runExport(_ context.Context, s *Shell, args []string) error {
	a, err := parseExportArgs(args, s.exportFormat)
	if err != nil {
		return err
	}
	if err := formatter.ValidateExportFormat(a.format); err != nil {
		return err
	}
	if err := formatter.ValidateMermaidDirection(a.mermaid.Direction); err != nil {
		return err
	}
	n, err := s.tree.Resolve(a.path)
	if err != nil {
		return err
	}
	out, err := formatter.Export(n, canonical(a.path), formatter.ExportFormat(a.format), a.mermaid)
	if err != nil {
		return err
	}
	s.out.Block(out)
	return nil
}

func runHelp(_ context.Context, s *Shell, _ []string) error {
	for _, name := range commandOrder {
		cmd, ok := s.commands[name]
		if !ok {
			continue
		}
		s.out.Info(fmt.Sprintf("%-45s %s", cmd.usage, cmd.summary))
	}
	return nil
}

func runExit(_ context.Context, s *Shell, _ []string) error {
	s.out.Info("Bye.")
	return errExit
}

// canonical normalizes a user path for display: "/" for the root, otherwise
// "/" followed by the non-empty segments.
func canonical(path string) string {
	return znode.Join(znode.Split(path)...)
}
