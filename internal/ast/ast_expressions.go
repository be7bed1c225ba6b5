package ast

import "github.com/funvibe/cs2dec/internal/typesystem"

// IntLiteral is an integer pushed by a constant instruction.
type IntLiteral struct {
	Value int32
}

func (il *IntLiteral) Accept(v Visitor)      { v.VisitIntLiteral(il) }
func (il *IntLiteral) expressionNode()       {}
func (il *IntLiteral) Type() typesystem.Type { return typesystem.Int }

// LongLiteral is a 64-bit constant.
type LongLiteral struct {
	Value int64
}

func (ll *LongLiteral) Accept(v Visitor)      { v.VisitLongLiteral(ll) }
func (ll *LongLiteral) expressionNode()       {}
func (ll *LongLiteral) Type() typesystem.Type { return typesystem.Long }

type StringLiteral struct {
	Value string
}

func (sl *StringLiteral) Accept(v Visitor)      { v.VisitStringLiteral(sl) }
func (sl *StringLiteral) expressionNode()       {}
func (sl *StringLiteral) Type() typesystem.Type { return typesystem.String }

type BooleanLiteral struct {
	Value bool
}

func (bl *BooleanLiteral) Accept(v Visitor)      { v.VisitBooleanLiteral(bl) }
func (bl *BooleanLiteral) expressionNode()       {}
func (bl *BooleanLiteral) Type() typesystem.Type { return typesystem.Boolean }

// CharLiteral holds a single UTF-16 code unit.
type CharLiteral struct {
	Value rune
}

func (cl *CharLiteral) Accept(v Visitor)      { v.VisitCharLiteral(cl) }
func (cl *CharLiteral) expressionNode()       {}
func (cl *CharLiteral) Type() typesystem.Type { return typesystem.Char }

// NullableIntLiteral is an int-shaped literal where -1 means "no value".
// It is used for handle types (items, sprites, ...) and null booleans.
type NullableIntLiteral struct {
	Value int32
}

func (nl *NullableIntLiteral) Accept(v Visitor)      { v.VisitNullableIntLiteral(nl) }
func (nl *NullableIntLiteral) expressionNode()       {}
func (nl *NullableIntLiteral) Type() typesystem.Type { return typesystem.Int }

// IsNull reports whether the literal is the -1 sentinel.
func (nl *NullableIntLiteral) IsNull() bool { return nl.Value == -1 }

// Variable is a local or global slot read.
type Variable struct {
	Name    string
	VarType typesystem.Type
}

func (va *Variable) Accept(v Visitor)      { v.VisitVariable(va) }
func (va *Variable) expressionNode()       {}
func (va *Variable) Type() typesystem.Type { return va.VarType }

// PlaceholderValue stands for a stack slot whose value is not resolved
// yet. It can never be cast.
type PlaceholderValue struct {
	SlotType typesystem.Type
}

func (pv *PlaceholderValue) Accept(v Visitor)      { v.VisitPlaceholderValue(pv) }
func (pv *PlaceholderValue) expressionNode()       {}
func (pv *PlaceholderValue) Type() typesystem.Type { return pv.SlotType }

// NewLocation wraps a packed coordinate int.
type NewLocation struct {
	Expression Expression
}

func (nl *NewLocation) Accept(v Visitor)      { v.VisitNewLocation(nl) }
func (nl *NewLocation) expressionNode()       {}
func (nl *NewLocation) Type() typesystem.Type { return typesystem.Location }

// NewWidgetPointer wraps a packed interface/component id.
type NewWidgetPointer struct {
	Expression Expression
}

func (nw *NewWidgetPointer) Accept(v Visitor)      { v.VisitNewWidgetPointer(nw) }
func (nw *NewWidgetPointer) expressionNode()       {}
func (nw *NewWidgetPointer) Type() typesystem.Type { return typesystem.WidgetPtr }

// NewColor wraps an RGB int.
type NewColor struct {
	Expression Expression
}

func (nc *NewColor) Accept(v Visitor)      { v.VisitNewColor(nc) }
func (nc *NewColor) expressionNode()       {}
func (nc *NewColor) Type() typesystem.Type { return typesystem.Color }

// CastExpression reinterprets a value with the same stack shape as Target.
type CastExpression struct {
	Target     typesystem.Type
	Expression Expression
}

func (ce *CastExpression) Accept(v Visitor)      { v.VisitCastExpression(ce) }
func (ce *CastExpression) expressionNode()       {}
func (ce *CastExpression) Type() typesystem.Type { return ce.Target }

// TupleExpression groups several values, e.g. the results of a call
// returning more than one value. Its type is the interned joint type.
type TupleExpression struct {
	Elements []Expression
}

func (te *TupleExpression) Accept(v Visitor)      { v.VisitTupleExpression(te) }
func (te *TupleExpression) expressionNode()       {}
func (te *TupleExpression) Type() typesystem.Type { return typesystem.TypeFor(Types(te.Elements)) }
