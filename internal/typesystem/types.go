package typesystem

import (
	"fmt"
	"strings"
)

// Type is the interface for all script types: single catalog entries
// (*Atomic) and interned multi-value stack shapes (*Composite).
type Type interface {
	String() string
	Footprint() Footprint
	// Flatten returns the atomic members of the type in stack order.
	// An atomic type flattens to itself.
	Flatten() []*Atomic
	IsComposite() bool
}

// Typed is anything that carries an inferred type, e.g. expression nodes.
type Typed interface {
	Type() Type
}

// Footprint counts the operand stack slots of each kind a value occupies.
type Footprint struct {
	Ints    int
	Strings int
	Longs   int
}

// Add returns the element-wise sum of two footprints.
func (f Footprint) Add(o Footprint) Footprint {
	return Footprint{
		Ints:    f.Ints + o.Ints,
		Strings: f.Strings + o.Strings,
		Longs:   f.Longs + o.Longs,
	}
}

func (f Footprint) String() string {
	return fmt.Sprintf("(%d,%d,%d)", f.Ints, f.Strings, f.Longs)
}

// NoDescriptor marks atomic types that have no wire-level character.
const NoDescriptor rune = 0

// Atomic is an indivisible catalog type. Atomic values are only created
// by the catalog and compared by pointer identity.
type Atomic struct {
	name      string
	footprint Footprint
	desc      rune
}

func newAtomic(ints, strs, longs int, name string, desc rune) *Atomic {
	return &Atomic{
		name:      name,
		footprint: Footprint{Ints: ints, Strings: strs, Longs: longs},
		desc:      desc,
	}
}

func (a *Atomic) String() string       { return a.name }
func (a *Atomic) Name() string         { return a.name }
func (a *Atomic) Footprint() Footprint { return a.footprint }
func (a *Atomic) Flatten() []*Atomic   { return []*Atomic{a} }
func (a *Atomic) IsComposite() bool    { return false }

// Descriptor returns the compact descriptor character of the type.
// Pseudo types (void, unknown, array markers, callbacks) have none.
func (a *Atomic) Descriptor() (rune, bool) {
	return a.desc, a.desc != NoDescriptor
}

// IsWireType reports whether values of this type can appear in metadata.
func (a *Atomic) IsWireType() bool {
	return a.desc != NoDescriptor
}

// Composite is an ordered stack shape of two or more atomic types.
// Composites are obtained through an Interner, never built directly.
type Composite struct {
	elems     []*Atomic
	footprint Footprint
}

func (c *Composite) Footprint() Footprint { return c.footprint }
func (c *Composite) IsComposite() bool    { return true }

func (c *Composite) Flatten() []*Atomic {
	out := make([]*Atomic, len(c.elems))
	copy(out, c.elems)
	return out
}

// Len returns the number of atomic members.
func (c *Composite) Len() int { return len(c.elems) }

// String renders the members joined by ", " without brackets.
func (c *Composite) String() string {
	names := make([]string, len(c.elems))
	for i, e := range c.elems {
		names[i] = e.name
	}
	return strings.Join(names, ", ")
}

func (c *Composite) matches(seq []*Atomic) bool {
	if len(c.elems) != len(seq) {
		return false
	}
	for i, e := range c.elems {
		if e != seq[i] {
			return false
		}
	}
	return true
}

// Equal is structural type equality: identical atomics, or composites
// with the same members in the same order.
func Equal(a, b Type) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.IsComposite() != b.IsComposite() {
		return false
	}
	switch x := a.(type) {
	case *Atomic:
		return x == b.(*Atomic)
	case *Composite:
		y := b.(*Composite)
		return x == y || x.matches(y.elems)
	}
	return false
}

// Compatible reports whether a and b share a stack shape. Unknown is
// compatible with everything; otherwise only the aggregate footprint counts.
func Compatible(a, b Type) bool {
	if isUnknown(a) || isUnknown(b) {
		return true
	}
	return a.Footprint() == b.Footprint()
}

func isUnknown(t Type) bool {
	at, ok := t.(*Atomic)
	return ok && at == Unknown
}
