// Package query provides Builder, a thin chainable surface over package
// traversal: one method per step kind, assembling an ordered program and
// running it through a traversal.Engine, coercing each emitted token into
// a Result.
package query
