package traversal

// Except drops a token when its current vertex equals the one tagged
// under label in the breadcrumb trail, letting everything else through
// unchanged. A token whose trail never tagged label is passed through
// (no exclusion) rather than treated as an error: the reference pipeline
// this protocol is grounded on assumes the label is always present and
// panics otherwise, but an absent label has no natural meaning to
// exclude by, so it is documented here as a pass-through.
type Except struct {
	label uint64
}

// NewExcept builds an Except step for label.
func NewExcept(label uint64) *Except {
	return &Except{label: label}
}

func (p *Except) Step(upstream *Gremlin) Signal {
	if upstream == nil {
		return PullSignal()
	}

	tagged, ok := upstream.As[p.label]
	if ok && upstream.HasVertex && upstream.Vertex == tagged {
		return PullSignal()
	}
	return GremlinSignal(upstream.clone())
}
