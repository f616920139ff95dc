package traversal

import "github.com/virtualgraham/dagoba-go/core"

// Direction selects which incidence list a Traversal step walks.
type Direction uint8

const (
	// DirOut follows outgoing edges to their target vertex.
	DirOut Direction = iota
	// DirIn follows incoming edges to their source vertex.
	DirIn
	// DirBoth follows both, incoming first then outgoing (see Traversal's
	// doc comment for the exact emission order).
	DirBoth
)

// Traversal steps from the upstream vertex across its incident edges
// (filtered by filter) to their opposite endpoint. It buffers one
// upstream token's worth of matching neighbor ids at a time and drains
// them before pulling another token.
//
// For DirBoth, the in-direction neighbors are collected first and the
// out-direction neighbors second, but since both are popped LIFO from
// the same stack, out-direction neighbors are emitted before
// in-direction ones.
type Traversal struct {
	store  *core.Store
	dir    Direction
	filter core.EdgeFilter

	gremlin *Gremlin
	edges   []uint64
}

// NewTraversal builds a Traversal step.
func NewTraversal(store *core.Store, dir Direction, filter core.EdgeFilter) *Traversal {
	return &Traversal{store: store, dir: dir, filter: filter}
}

func (p *Traversal) Step(upstream *Gremlin) Signal {
	if upstream == nil && len(p.edges) == 0 {
		return PullSignal()
	}

	if len(p.edges) == 0 {
		p.gremlin = upstream
		p.edges = append(p.edges, p.neighbors(p.primaryDirection())...)
		if p.dir == DirBoth {
			p.edges = append(p.edges, p.neighbors(DirOut)...)
		}
	}

	if len(p.edges) == 0 {
		return PullSignal()
	}

	n := len(p.edges)
	v := p.edges[n-1]
	p.edges = p.edges[:n-1]

	g := &Gremlin{HasVertex: true, Vertex: v, As: p.gremlin.As}
	return GremlinSignal(g)
}

// primaryDirection mirrors the reference engine's edge lookup: DirOut
// looks at out-edges, everything else (DirIn and DirBoth) starts from
// in-edges.
func (p *Traversal) primaryDirection() Direction {
	if p.dir == DirOut {
		return DirOut
	}
	return DirIn
}

func (p *Traversal) neighbors(dir Direction) []uint64 {
	var edges []*core.Edge
	var ok bool
	if dir == DirOut {
		edges, ok = p.store.OutEdges(p.gremlin.Vertex)
	} else {
		edges, ok = p.store.InEdges(p.gremlin.Vertex)
	}
	if !ok {
		return nil
	}

	out := make([]uint64, 0, len(edges))
	for _, e := range edges {
		if !core.MatchEdge(e, p.filter) {
			continue
		}
		if dir == DirOut {
			out = append(out, e.VIn)
		} else {
			out = append(out, e.VOut)
		}
	}
	return out
}
