package dotpath

// segment is one compiled unit of a path, applied left to right.
type segment interface {
	isSegment()
}

// literalSegment carries the raw token between dots. Whether it names a
// mapping key or a sequence index is decided per node at match time; the
// same literal can be a key in one branch of the tree and an index in
// another, which matters under '**'.
type literalSegment string

// wildcardSegment matches every direct child of a mapping or sequence.
type wildcardSegment struct{}

// descendantSegment matches the current node and, in pre-order, every node
// beneath it.
type descendantSegment struct{}

// predicateSegment is the combined form 'field[key=value]': resolve field,
// expect a sequence, keep the mapping elements whose key entry equals the
// compiled literal.
type predicateSegment struct {
	field string
	key   string
	value literalValue
}

func (literalSegment) isSegment()    {}
func (wildcardSegment) isSegment()   {}
func (descendantSegment) isSegment() {}

func (*predicateSegment) isSegment() {}
