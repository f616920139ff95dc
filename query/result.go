package query

import "github.com/virtualgraham/dagoba-go/core"

// ResultKind tags which field of a Result is meaningful.
type ResultKind uint8

const (
	// ResultEmpty means the token carried neither a Result value nor a
	// vertex position.
	ResultEmpty ResultKind = iota
	// ResultValue means Value holds an extracted property.
	ResultValue
	// ResultVertex means Vertex holds the token's current position.
	ResultVertex
)

// Result is the externally observable shape a Builder.Run call produces:
// a Value when the underlying token carried an extracted property (taking
// precedence), otherwise a Vertex id when the token had a position,
// otherwise Empty.
type Result struct {
	Kind   ResultKind
	Value  core.Value
	Vertex uint64
}

func (r Result) String() string {
	switch r.Kind {
	case ResultValue:
		return "Value(...)"
	case ResultVertex:
		return "Vertex(...)"
	default:
		return "Empty"
	}
}
