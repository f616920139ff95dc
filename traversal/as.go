package traversal

// As tags the upstream token's current vertex under label in the
// breadcrumb trail. It replaces the trail wholesale with a single-entry
// map rather than merging into whatever trail already existed upstream —
// a resolved, intentional choice, not an oversight.
type As struct {
	label uint64
}

// NewAs builds an As step for label.
func NewAs(label uint64) *As {
	return &As{label: label}
}

func (p *As) Step(upstream *Gremlin) Signal {
	if upstream == nil || !upstream.HasVertex {
		return PullSignal()
	}

	g := upstream.clone()
	g.As = map[uint64]uint64{p.label: upstream.Vertex}
	return GremlinSignal(g)
}
