package traversal

import "github.com/virtualgraham/dagoba-go/core"

// PropertyExtract reads a named property off the upstream token's vertex
// and attaches it as the token's Result. A token whose vertex lacks the
// property, or whose vertex no longer exists in the store, is dropped
// (SignalFalse) rather than propagated with a zero Result.
type PropertyExtract struct {
	store    *core.Store
	property string
}

// NewPropertyExtract builds a PropertyExtract step for property.
func NewPropertyExtract(store *core.Store, property string) *PropertyExtract {
	return &PropertyExtract{store: store, property: property}
}

func (p *PropertyExtract) Step(upstream *Gremlin) Signal {
	if upstream == nil {
		return PullSignal()
	}
	if !upstream.HasVertex {
		return FalseSignal()
	}

	v, ok := p.store.GetVertex(upstream.Vertex)
	if !ok {
		return FalseSignal()
	}

	val, ok := v.Properties[p.property]
	if !ok {
		return FalseSignal()
	}

	g := upstream.clone()
	g.HasResult = true
	g.Result = val.Clone()
	return GremlinSignal(g)
}
