// Package exprfilter compiles boolean expr-lang/expr expressions over a
// vertex's property map into a core.VertexFilter of kind Predicate. It is
// additive sugar over that existing filter case: callers who prefer a
// Go closure can still build one by hand, exprfilter only spares them the
// boilerplate of writing `age > 30 && type == "banana"` as code.
package exprfilter

import (
	"errors"
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/virtualgraham/dagoba-go/core"
)

// ErrCompile wraps an expr-lang/expr compile failure: the source does not
// parse, or does not type-check as a boolean expression.
var ErrCompile = errors.New("exprfilter: compile error")

// Predicate is a compiled boolean expression, ready to be evaluated
// against a vertex's property map.
type Predicate struct {
	program *vm.Program
}

// Compile parses and type-checks src as a boolean expression. The
// expression's environment is the vertex's property map: a bare
// identifier like `age` refers to the `age` property.
func Compile(src string) (*Predicate, error) {
	program, err := expr.Compile(src, expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCompile, src, err)
	}
	return &Predicate{program: program}, nil
}

// Match evaluates the predicate against v. An evaluation error (e.g. a
// property referenced in src is absent from v) is treated as a
// non-match, consistent with core.VertexFilter's predicate contract.
func (p *Predicate) Match(v *core.Vertex) bool {
	out, err := expr.Run(p.program, toEnv(v.Properties))
	if err != nil {
		return false
	}
	ok, _ := out.(bool)
	return ok
}

// Filter returns a core.VertexFilter of kind FilterPredicate backed by
// this compiled expression.
func (p *Predicate) Filter() core.VertexFilter {
	return core.VertexFilter{Kind: core.FilterPredicate, Predicate: p.Match}
}

func toEnv(props map[string]core.Value) map[string]any {
	env := make(map[string]any, len(props))
	for k, v := range props {
		env[k] = toNative(v)
	}
	return env
}

func toNative(v core.Value) any {
	switch v.Kind {
	case core.KindNull:
		return nil
	case core.KindBool:
		return v.Bool
	case core.KindInt:
		return v.Int
	case core.KindFloat:
		return v.Float
	case core.KindString:
		return v.Str
	case core.KindArray:
		out := make([]any, len(v.Array))
		for i, e := range v.Array {
			out[i] = toNative(e)
		}
		return out
	case core.KindObject:
		out := make(map[string]any, len(v.Object))
		for k, e := range v.Object {
			out[k] = toNative(e)
		}
		return out
	default:
		return nil
	}
}
