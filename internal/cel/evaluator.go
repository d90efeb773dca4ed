// Package cel evaluates CEL predicates against tree nodes.
package cel

import (
	"fmt"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types"
	celext "github.com/google/cel-go/ext"

	"github.com/oakwood-commons/zksim/internal/znode"
)

// Variable names bound for every evaluated node.
const (
	VarName       = "name"
	VarPath       = "path"
	VarData       = "data"
	VarEphemeral  = "ephemeral"
	VarSequential = "sequential"
	VarChildren   = "children"
)

// Evaluator compiles predicates in an environment describing a node.
type Evaluator struct {
	env *cel.Env
}

// NewEvaluator creates an evaluator with the node variables and the string
// extension library.
func NewEvaluator() (*Evaluator, error) {
	env, err := newNodeEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL environment: %w", err)
	}
	return &Evaluator{env: env}, nil
}

func newNodeEnv(opts ...cel.EnvOption) (*cel.Env, error) {
	allOpts := make([]cel.EnvOption, 0, 7+len(opts))
	allOpts = append(allOpts,
		cel.Variable(VarName, cel.StringType),
		cel.Variable(VarPath, cel.StringType),
		cel.Variable(VarData, cel.StringType),
		cel.Variable(VarEphemeral, cel.BoolType),
		cel.Variable(VarSequential, cel.BoolType),
		cel.Variable(VarChildren, cel.IntType),
		celext.Strings(),
	)
	allOpts = append(allOpts, opts...)
	return cel.NewEnv(allOpts...)
}

// Predicate is a compiled boolean expression.
type Predicate struct {
	expr string
	prg  cel.Program
}

// Compile parses and type-checks expr. The expression must yield a bool.
func (e *Evaluator) Compile(expr string) (*Predicate, error) {
	ast, issues := e.env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("compilation error: %w", issues.Err())
	}
	if out := ast.OutputType(); !out.IsExactType(cel.BoolType) && !out.IsExactType(cel.DynType) {
		return nil, fmt.Errorf("expression must evaluate to bool, got %s", out)
	}

	prg, err := e.env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("program error: %w", err)
	}
	return &Predicate{expr: expr, prg: prg}, nil
}

// Match evaluates the predicate for n stored at path.
func (p *Predicate) Match(n *znode.Node, path string) (bool, error) {
	out, _, err := p.prg.Eval(Activation(n, path))
	if err != nil {
		return false, fmt.Errorf("eval error: %w", err)
	}
	b, ok := out.(types.Bool)
	if !ok {
		return false, fmt.Errorf("expression %q returned %s, want bool", p.expr, out.Type().TypeName())
	}
	return bool(b), nil
}

// Activation returns the variable bindings describing n.
func Activation(n *znode.Node, path string) map[string]interface{} {
	return map[string]interface{}{
		VarName:       n.Name,
		VarPath:       path,
		VarData:       n.Data,
		VarEphemeral:  n.Ephemeral,
		VarSequential: n.Sequential,
		VarChildren:   int64(n.NumChildren()),
	}
}

// Find returns the paths of all nodes below path, in preorder, for which the
// predicate holds. The start node itself is not tested.
func (e *Evaluator) Find(tree *znode.Tree, path, expr string) ([]string, error) {
	pred, err := e.Compile(expr)
	if err != nil {
		return nil, err
	}

	var (
		matches []string
		evalErr error
	)
	walkErr := tree.Walk(path, func(n *znode.Node, p string, depth int) bool {
		if evalErr != nil {
			return false
		}
		if depth == 0 {
			return true
		}
		ok, err := pred.Match(n, p)
		if err != nil {
			evalErr = err
			return false
		}
		if ok {
			matches = append(matches, p)
		}
		return true
	})
	if walkErr != nil {
		return nil, walkErr
	}
	if evalErr != nil {
		return nil, evalErr
	}
	return matches, nil
}
