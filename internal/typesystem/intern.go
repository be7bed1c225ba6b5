package typesystem

import "sync"

// Interner canonicalizes composite stack shapes: for a given ordered
// sequence of atomic types it hands out at most one *Composite.
type Interner struct {
	// mu serializes lookup and registration so two callers can never
	// both miss and register the same shape.
	mu         sync.Mutex
	composites []*Composite
}

// NewInterner creates an empty interning store.
func NewInterner() *Interner {
	return &Interner{}
}

// Of returns the canonical type for seq. A single element is returned
// as-is and an empty sequence yields Void.
func (in *Interner) Of(seq ...*Atomic) Type {
	switch len(seq) {
	case 0:
		return Void
	case 1:
		return seq[0]
	}

	in.mu.Lock()
	defer in.mu.Unlock()

	for _, c := range in.composites {
		if c.matches(seq) {
			return c
		}
	}

	c := &Composite{elems: make([]*Atomic, len(seq))}
	copy(c.elems, seq)
	for _, e := range seq {
		c.footprint = c.footprint.Add(e.footprint)
	}
	in.composites = append(in.composites, c)
	return c
}

// TypeFor computes the joint type of several values, e.g. the return
// values of a call, by concatenating their flattened types.
func (in *Interner) TypeFor(values []Typed) Type {
	var seq []*Atomic
	for _, v := range values {
		seq = append(seq, v.Type().Flatten()...)
	}
	return in.Of(seq...)
}

// Len returns the number of composites registered so far.
func (in *Interner) Len() int {
	in.mu.Lock()
	defer in.mu.Unlock()
	return len(in.composites)
}

// Composites returns a snapshot in registration order.
func (in *Interner) Composites() []*Composite {
	in.mu.Lock()
	defer in.mu.Unlock()
	out := make([]*Composite, len(in.composites))
	copy(out, in.composites)
	return out
}

var defaultInterner = NewInterner()

// Of interns seq in the process-wide store.
func Of(seq ...*Atomic) Type {
	return defaultInterner.Of(seq...)
}

// TypeFor computes the joint type of values using the process-wide store.
func TypeFor(values []Typed) Type {
	return defaultInterner.TypeFor(values)
}

// InternedComposites returns the process-wide composites in registration order.
func InternedComposites() []*Composite {
	return defaultInterner.Composites()
}

// InternedCount reports how many composites the process-wide store holds.
func InternedCount() int {
	return defaultInterner.Len()
}
