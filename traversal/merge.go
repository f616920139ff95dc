package traversal

// Merge resolves a fixed list of breadcrumb labels against the upstream
// token's As trail into a batch of vertex ids, then emits that batch one
// token at a time (LIFO), recomputing the batch from a fresh upstream
// token whenever the previous batch drains empty.
type Merge struct {
	labels []uint64

	haveBatch bool
	gremlin   *Gremlin
	batch     []uint64
}

// NewMerge builds a Merge step over labels. labels is copied so the
// caller's slice can be reused or mutated afterward.
func NewMerge(labels []uint64) *Merge {
	cp := make([]uint64, len(labels))
	copy(cp, labels)
	return &Merge{labels: cp}
}

func (p *Merge) Step(upstream *Gremlin) Signal {
	if !p.haveBatch && upstream == nil {
		return PullSignal()
	}

	if !p.haveBatch || len(p.batch) == 0 {
		p.gremlin = upstream
		var as map[uint64]uint64
		if upstream != nil {
			as = upstream.As
		}
		batch := make([]uint64, 0, len(p.labels))
		for _, label := range p.labels {
			if v, ok := as[label]; ok {
				batch = append(batch, v)
			}
		}
		p.batch = batch
		p.haveBatch = true
	}

	if len(p.batch) == 0 {
		return PullSignal()
	}

	n := len(p.batch)
	v := p.batch[n-1]
	p.batch = p.batch[:n-1]

	g := &Gremlin{HasVertex: true, Vertex: v}
	if p.gremlin != nil {
		g.As = p.gremlin.As
	}
	return GremlinSignal(g)
}
