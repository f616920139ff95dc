package traversal

// Back jumps the token's position to whatever vertex was tagged under
// label by an earlier As step, dropping the breadcrumb trail on the way
// out (the emitted token's As is always nil). If label was never tagged,
// the emitted token has no vertex either.
type Back struct {
	label uint64
}

// NewBack builds a Back step for label.
func NewBack(label uint64) *Back {
	return &Back{label: label}
}

func (p *Back) Step(upstream *Gremlin) Signal {
	if upstream == nil {
		return PullSignal()
	}

	g := &Gremlin{}
	if v, ok := upstream.As[p.label]; ok {
		g.HasVertex = true
		g.Vertex = v
	}
	return GremlinSignal(g)
}
