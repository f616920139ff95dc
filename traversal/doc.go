// Package traversal implements the pull-based pipeline protocol that
// evaluates traversal programs over a core.Store: the four-valued Signal,
// the Gremlin token, the Step interface, a library of Step implementations
// (VertexSource, Traversal, PropertyExtract, Unique, Filter, Take, As,
// Back, Except, Merge), and the Engine that drives them to completion.
//
// A program is a slice of Step values, ordered upstream-to-downstream (the
// source step first). Engine.Run walks the program with a single
// program counter, starting at the last step and moving left on Pull,
// right on a produced Gremlin, collecting every token that falls off the
// end of the chain.
package traversal
