package traversal

import "github.com/virtualgraham/dagoba-go/core"

// VertexSource resolves filter against a Store once into a LIFO stack of
// candidate ids, then emits one per call until exhausted.
//
// A plain VertexSource, built with NewVertexSource, is the program's
// entry step: it has no predecessor, so it resolves its filter on the
// very first call regardless of upstream (which is always nil for it).
//
// A chained VertexSource, built with NewChainedVertexSource for the
// builder's mid-pipeline Vertex insertion, does have a predecessor and
// waits for one real upstream token before resolving, so that the steps
// before it in the program actually run; it then carries that token's
// breadcrumb trail onto every vertex it emits, the same way Traversal
// carries its triggering token across a drained buffer.
type VertexSource struct {
	store   *core.Store
	filter  core.VertexFilter
	chained bool

	init    bool
	gremlin *Gremlin
	stack   []uint64
}

// NewVertexSource builds a root VertexSource. filter is resolved lazily,
// on the first Step call, not at construction time.
func NewVertexSource(store *core.Store, filter core.VertexFilter) *VertexSource {
	return &VertexSource{store: store, filter: filter}
}

// NewChainedVertexSource builds a VertexSource for mid-pipeline
// placement, where an upstream token precedes it and must be pulled
// before the search runs.
func NewChainedVertexSource(store *core.Store, filter core.VertexFilter) *VertexSource {
	return &VertexSource{store: store, filter: filter, chained: true}
}

func (p *VertexSource) Step(upstream *Gremlin) Signal {
	if p.chained && !p.init && upstream == nil {
		return PullSignal()
	}

	if !p.init {
		p.gremlin = upstream
		p.stack = p.store.SearchVertices(p.filter)
		p.init = true
	}

	if len(p.stack) == 0 {
		return DoneSignal()
	}

	n := len(p.stack)
	id := p.stack[n-1]
	p.stack = p.stack[:n-1]

	g := &Gremlin{HasVertex: true, Vertex: id}
	if p.gremlin != nil {
		g.As = p.gremlin.As
	}
	return GremlinSignal(g)
}
