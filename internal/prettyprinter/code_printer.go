package prettyprinter

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/funvibe/cs2dec/internal/ast"
)

// --- Code Printer (output looks like script source) ---

// Packed coordinate layout: level(2) | x(14) | y(14).
const (
	coordBits = 14
	coordMask = 1<<coordBits - 1
)

// CodePrinter renders expression trees.
type CodePrinter struct {
	buf bytes.Buffer
}

func NewCodePrinter() *CodePrinter {
	return &CodePrinter{}
}

// Print renders a single expression.
func Print(expr ast.Expression) string {
	p := NewCodePrinter()
	expr.Accept(p)
	return p.String()
}

func (p *CodePrinter) String() string {
	return p.buf.String()
}

func (p *CodePrinter) write(s string) {
	p.buf.WriteString(s)
}

func (p *CodePrinter) VisitIntLiteral(n *ast.IntLiteral) {
	p.write(strconv.FormatInt(int64(n.Value), 10))
}

func (p *CodePrinter) VisitLongLiteral(n *ast.LongLiteral) {
	p.write(strconv.FormatInt(n.Value, 10) + "L")
}

func (p *CodePrinter) VisitStringLiteral(n *ast.StringLiteral) {
	p.write(strconv.Quote(n.Value))
}

func (p *CodePrinter) VisitBooleanLiteral(n *ast.BooleanLiteral) {
	p.write(strconv.FormatBool(n.Value))
}

func (p *CodePrinter) VisitCharLiteral(n *ast.CharLiteral) {
	p.write(strconv.QuoteRune(n.Value))
}

func (p *CodePrinter) VisitNullableIntLiteral(n *ast.NullableIntLiteral) {
	if n.IsNull() {
		p.write("null")
		return
	}
	p.write(strconv.FormatInt(int64(n.Value), 10))
}

func (p *CodePrinter) VisitVariable(n *ast.Variable) {
	p.write(n.Name)
}

func (p *CodePrinter) VisitPlaceholderValue(n *ast.PlaceholderValue) {
	p.write("<" + n.SlotType.String() + "?>")
}

func (p *CodePrinter) VisitNewLocation(n *ast.NewLocation) {
	if lit, ok := n.Expression.(*ast.IntLiteral); ok && lit.Value >= 0 {
		v := lit.Value
		fmt.Fprintf(&p.buf, "location(%d, %d, %d)", v>>(2*coordBits), (v>>coordBits)&coordMask, v&coordMask)
		return
	}
	p.call("location", n.Expression)
}

func (p *CodePrinter) VisitNewWidgetPointer(n *ast.NewWidgetPointer) {
	if lit, ok := n.Expression.(*ast.IntLiteral); ok && lit.Value >= 0 {
		fmt.Fprintf(&p.buf, "widget(%d, %d)", lit.Value>>16, lit.Value&0xFFFF)
		return
	}
	p.call("widget", n.Expression)
}

func (p *CodePrinter) VisitNewColor(n *ast.NewColor) {
	if lit, ok := n.Expression.(*ast.IntLiteral); ok && lit.Value >= 0 {
		fmt.Fprintf(&p.buf, "0x%06X", lit.Value)
		return
	}
	p.call("color", n.Expression)
}

func (p *CodePrinter) VisitCastExpression(n *ast.CastExpression) {
	p.write("(" + n.Target.String() + ") ")
	n.Expression.Accept(p)
}

func (p *CodePrinter) VisitTupleExpression(n *ast.TupleExpression) {
	p.write("(")
	for i, e := range n.Elements {
		if i > 0 {
			p.write(", ")
		}
		e.Accept(p)
	}
	p.write(")")
}

func (p *CodePrinter) call(name string, arg ast.Expression) {
	p.write(name + "(")
	arg.Accept(p)
	p.write(")")
}
