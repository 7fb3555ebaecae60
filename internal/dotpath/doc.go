package dotpath

// Package dotpath implements a compact path language for locating values in
// nested documents (the map/sequence/scalar trees produced by decoding JSON
// or YAML). A path is a dot-separated list of segments:
//
//	name            exact mapping key
//	N               exact sequence index (digits)
//	*               every direct child, one level
//	**              the node itself plus every descendant, any depth
//	name[key=value] take name's sequence, keep elements whose key equals value
//
// Parse compiles a path once; the compiled Path is immutable and safe to
// reuse across documents and goroutines. Matching is lazy: Matches yields
// values in document order as the traversal reaches them, FindFirst stops at
// the first hit, and FindAll drains the sequence.
//
// A literal segment is typed at match time, not parse time: against a
// mapping it is a key, against a sequence it is an index when it is all
// digits. Structural mismatches (a key against a sequence, an out-of-range
// index, a predicate against a non-sequence) prune that branch silently.
//
// Predicate equality compares numerically when both the field value and the
// literal parse as numbers, treats bare true/false/null as boolean and null
// literals, forces string comparison for quoted literals, and otherwise
// compares the canonical text of the scalar.
//
// Documents may use the ordered model from internal/document or plain
// map[string]any / []any values. Plain maps carry no insertion order, so
// their children are visited in sorted-key order to keep results
// deterministic.
