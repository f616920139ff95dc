// Package schema provides optional JSON-Schema validation of a vertex's
// property map, via github.com/xeipuuv/gojsonschema. A PropertySchema's
// Validator method produces a core.VertexValidator that can be installed
// with core.WithVertexValidator or core.Store.SetVertexValidator. Without
// that installation step a Store behaves exactly as the base
// specification describes: AddVertex always succeeds.
package schema
