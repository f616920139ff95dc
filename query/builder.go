package query

import (
	"github.com/virtualgraham/dagoba-go/core"
	"github.com/virtualgraham/dagoba-go/exprfilter"
	"github.com/virtualgraham/dagoba-go/traversal"
)

// Builder assembles a traversal program one step at a time and runs it.
// Each chain method appends a step and returns the Builder itself for
// further chaining. Run is single-use: VertexSource and Unique steps do
// not reset between calls, so invoking Run twice on the same Builder
// resumes with whatever state those steps carry from the first run.
type Builder struct {
	store      *core.Store
	program    []traversal.Step
	engineOpts []traversal.EngineOption
}

// New seeds a Builder with a VertexSource resolving filter against store.
func New(store *core.Store, filter core.VertexFilter) *Builder {
	return &Builder{
		store:   store,
		program: []traversal.Step{traversal.NewVertexSource(store, filter)},
	}
}

// WithEngineObserver attaches a traversal.Observer to the Engine that
// Run constructs.
func (b *Builder) WithEngineObserver(o traversal.Observer) *Builder {
	b.engineOpts = append(b.engineOpts, traversal.WithEngineObserver(o))
	return b
}

// Vertex inserts a fresh VertexSource mid-pipeline, inheriting the
// upstream token's breadcrumb trail.
func (b *Builder) Vertex(filter core.VertexFilter) *Builder {
	b.program = append(b.program, traversal.NewChainedVertexSource(b.store, filter))
	return b
}

// In follows incoming edges matching filter.
func (b *Builder) In(filter core.EdgeFilter) *Builder {
	b.program = append(b.program, traversal.NewTraversal(b.store, traversal.DirIn, filter))
	return b
}

// Out follows outgoing edges matching filter.
func (b *Builder) Out(filter core.EdgeFilter) *Builder {
	b.program = append(b.program, traversal.NewTraversal(b.store, traversal.DirOut, filter))
	return b
}

// Both follows both incoming and outgoing edges matching filter.
func (b *Builder) Both(filter core.EdgeFilter) *Builder {
	b.program = append(b.program, traversal.NewTraversal(b.store, traversal.DirBoth, filter))
	return b
}

// Property extracts a named property from each token's vertex.
func (b *Builder) Property(name string) *Builder {
	b.program = append(b.program, traversal.NewPropertyExtract(b.store, name))
	return b
}

// Unique suppresses vertex ids already emitted by this step.
func (b *Builder) Unique() *Builder {
	b.program = append(b.program, traversal.NewUnique())
	return b
}

// Filter keeps only tokens whose vertex matches filter.
func (b *Builder) Filter(filter core.VertexFilter) *Builder {
	b.program = append(b.program, traversal.NewFilter(b.store, filter))
	return b
}

// FilterExpr keeps only tokens whose vertex matches the compiled
// expr-lang/expr boolean expression src. Panics if src fails to compile;
// use exprfilter.Compile directly and Filter(pred.Filter()) to handle a
// compile error instead.
func (b *Builder) FilterExpr(src string) *Builder {
	pred, err := exprfilter.Compile(src)
	if err != nil {
		panic(err)
	}
	return b.Filter(pred.Filter())
}

// Take bounds the chain to at most n tokens.
func (b *Builder) Take(n int) *Builder {
	b.program = append(b.program, traversal.NewTake(n))
	return b
}

// As tags the current vertex under label in the breadcrumb trail,
// replacing any trail that already existed.
func (b *Builder) As(label uint64) *Builder {
	b.program = append(b.program, traversal.NewAs(label))
	return b
}

// Back jumps to the vertex tagged under label.
func (b *Builder) Back(label uint64) *Builder {
	b.program = append(b.program, traversal.NewBack(label))
	return b
}

// Except drops tokens whose current vertex equals the one tagged under
// label.
func (b *Builder) Except(label uint64) *Builder {
	b.program = append(b.program, traversal.NewExcept(label))
	return b
}

// Merge resolves labels against the breadcrumb trail into a batch of
// vertex ids.
func (b *Builder) Merge(labels []uint64) *Builder {
	b.program = append(b.program, traversal.NewMerge(labels))
	return b
}

// Run evaluates the assembled program and coerces each emitted token
// into a Result: a Value when the token carries an extracted property
// (taking precedence), otherwise a Vertex id, otherwise Empty.
func (b *Builder) Run() []Result {
	gremlins := traversal.NewEngine(b.program, b.engineOpts...).Run()

	results := make([]Result, 0, len(gremlins))
	for _, g := range gremlins {
		switch {
		case g.HasResult:
			results = append(results, Result{Kind: ResultValue, Value: g.Result})
		case g.HasVertex:
			results = append(results, Result{Kind: ResultVertex, Vertex: g.Vertex})
		default:
			results = append(results, Result{Kind: ResultEmpty})
		}
	}
	return results
}
