package lox

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAstPrinterBinaryExpression(t *testing.T) {
	expression := NewBinary(
		NewUnary(NewToken(MINUS, "-", nil, 1), NewLiteral(123.0)),
		NewToken(STAR, "*", nil, 1),
		NewGrouping(NewLiteral(45.67)),
	)

	got := (&AstPrinter{}).printExpr(expression)
	assert.Equal(t, "(* (- 123) (group 45.67))", got)
}

func TestAstPrinterTernary(t *testing.T) {
	expr := NewTernary(NewLiteral(true), NewLiteral(1.0), NewLiteral(2.0))
	assert.Equal(t, "(?: true 1 2)", (&AstPrinter{}).printExpr(expr))
}

func TestAstPrinterIndexAndIndexSet(t *testing.T) {
	bracket := NewToken(LEFT_BRACKET, "[", nil, 1)
	arr := NewVariable(NewToken(IDENTIFIER, "a", nil, 1))

	get := NewIndex(arr, bracket, NewLiteral(0.0))
	assert.Equal(t, "([] a 0)", (&AstPrinter{}).printExpr(get))

	set := NewIndexSet(arr, bracket, NewLiteral(0.0), NewLiteral(9.0))
	assert.Equal(t, "([]= a 0 9)", (&AstPrinter{}).printExpr(set))

	appendExpr := NewIndexSet(arr, bracket, nil, NewLiteral(9.0))
	assert.Equal(t, "([]= a 9)", (&AstPrinter{}).printExpr(appendExpr))
}

func TestAstPrinterVarStatement(t *testing.T) {
	name := NewToken(IDENTIFIER, "x", nil, 1)
	stmt := NewVar(name, NewLiteral(1.0))
	assert.Equal(t, "(var x = 1)", (&AstPrinter{}).printStmt(stmt))
}
