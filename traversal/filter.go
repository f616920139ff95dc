package traversal

import "github.com/virtualgraham/dagoba-go/core"

// Filter keeps a token only if its vertex matches a core.VertexFilter,
// re-resolved against the store on every call (so it reflects concurrent
// mutation of the store between traversal runs).
type Filter struct {
	store  *core.Store
	filter core.VertexFilter
}

// NewFilter builds a Filter step.
func NewFilter(store *core.Store, filter core.VertexFilter) *Filter {
	return &Filter{store: store, filter: filter}
}

func (p *Filter) Step(upstream *Gremlin) Signal {
	if upstream == nil || !upstream.HasVertex {
		return PullSignal()
	}

	v, ok := p.store.GetVertex(upstream.Vertex)
	if !ok {
		return PullSignal()
	}

	if core.MatchVertex(v, p.filter) {
		return GremlinSignal(upstream.clone())
	}
	return PullSignal()
}
