package traversal

// Unique suppresses any vertex id it has already let through, across the
// step's whole lifetime (it never resets, including between separate
// Builder.Run calls over the same program).
type Unique struct {
	seen map[uint64]struct{}
}

// NewUnique builds a Unique step.
func NewUnique() *Unique {
	return &Unique{seen: make(map[uint64]struct{})}
}

func (p *Unique) Step(upstream *Gremlin) Signal {
	if upstream == nil || !upstream.HasVertex {
		return PullSignal()
	}
	if _, dup := p.seen[upstream.Vertex]; dup {
		return PullSignal()
	}
	p.seen[upstream.Vertex] = struct{}{}
	return GremlinSignal(upstream.clone())
}
