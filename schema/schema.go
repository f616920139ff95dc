package schema

import (
	"errors"
	"fmt"

	"github.com/xeipuuv/gojsonschema"

	"github.com/virtualgraham/dagoba-go/core"
)

// ErrValidation wraps the first gojsonschema validation failure: the
// failing field path and the reason it failed.
var ErrValidation = errors.New("schema: validation failed")

// PropertySchema is a compiled JSON Schema that a vertex's property map
// must satisfy.
type PropertySchema struct {
	compiled *gojsonschema.Schema
}

// NewPropertySchema compiles schemaJSON (a JSON Schema document) into a
// PropertySchema.
func NewPropertySchema(schemaJSON string) (*PropertySchema, error) {
	compiled, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(schemaJSON))
	if err != nil {
		return nil, fmt.Errorf("schema: compile: %w", err)
	}
	return &PropertySchema{compiled: compiled}, nil
}

// Validate reports whether properties satisfies the schema, returning
// ErrValidation (wrapped with the first failing field and reason) if not.
func (ps *PropertySchema) Validate(properties map[string]core.Value) error {
	doc := toNative(core.NewObject(properties))
	result, err := ps.compiled.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return fmt.Errorf("schema: evaluate: %w", err)
	}
	if result.Valid() {
		return nil
	}

	errs := result.Errors()
	first := errs[0]
	return fmt.Errorf("%w: %s: %s", ErrValidation, first.Field(), first.Description())
}

// Validator adapts Validate to core.VertexValidator, ready to pass to
// core.WithVertexValidator or core.Store.SetVertexValidator.
func (ps *PropertySchema) Validator() core.VertexValidator {
	return ps.Validate
}

func toNative(v core.Value) any {
	switch v.Kind {
	case core.KindNull:
		return nil
	case core.KindBool:
		return v.Bool
	case core.KindInt:
		return v.Int
	case core.KindFloat:
		return v.Float
	case core.KindString:
		return v.Str
	case core.KindArray:
		out := make([]any, len(v.Array))
		for i, e := range v.Array {
			out[i] = toNative(e)
		}
		return out
	case core.KindObject:
		out := make(map[string]any, len(v.Object))
		for k, e := range v.Object {
			out[k] = toNative(e)
		}
		return out
	default:
		return nil
	}
}
