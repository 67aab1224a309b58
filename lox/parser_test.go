package lox

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseSource(t *testing.T, source string) ([]Stmt, *ErrorReporter) {
	t.Helper()
	var out bytes.Buffer
	reporter := NewErrorReporter(&out)
	tokens := NewScanner(source, reporter).ScanTokens()
	statements := NewParser(tokens, reporter).Parse()
	return statements, reporter
}

func TestParserVarDeclaration(t *testing.T) {
	stmts, reporter := parseSource(t, `var a = 1;`)
	require.False(t, reporter.HadError())
	require.Len(t, stmts, 1)
	v, ok := stmts[0].(*Var)
	require.True(t, ok)
	assert.Equal(t, "a", v.name.Lexeme)
}

func TestParserMultiVarDeclaration(t *testing.T) {
	stmts, reporter := parseSource(t, `var a = 1, b = 2;`)
	require.False(t, reporter.HadError())
	require.Len(t, stmts, 2)
}

func TestParserTernary(t *testing.T) {
	stmts, reporter := parseSource(t, `true ? 1 : 2;`)
	require.False(t, reporter.HadError())
	require.Len(t, stmts, 1)
	expr := stmts[0].(*Expression).expression
	_, ok := expr.(*Ternary)
	assert.True(t, ok)
}

func TestParserArrayLiteralAndIndex(t *testing.T) {
	stmts, reporter := parseSource(t, `var a = [1, 2, 3]; a[0];`)
	require.False(t, reporter.HadError())
	require.Len(t, stmts, 2)

	v := stmts[0].(*Var)
	lit, ok := v.initializer.(*ArrayLiteral)
	require.True(t, ok)
	assert.Len(t, lit.items, 3)

	idxStmt := stmts[1].(*Expression)
	_, ok = idxStmt.expression.(*Index)
	assert.True(t, ok)
}

func TestParserArrayAppendAssignment(t *testing.T) {
	stmts, reporter := parseSource(t, `a[] = 9;`)
	require.False(t, reporter.HadError())
	require.Len(t, stmts, 1)
	set, ok := stmts[0].(*Expression).expression.(*IndexSet)
	require.True(t, ok)
	assert.Nil(t, set.index)
}

func TestParserLambda(t *testing.T) {
	stmts, reporter := parseSource(t, `var f = fun (x) { return x; };`)
	require.False(t, reporter.HadError())
	v := stmts[0].(*Var)
	_, ok := v.initializer.(*Lambda)
	assert.True(t, ok)
}

func TestParserBreakOutsideLoopIsAnError(t *testing.T) {
	_, reporter := parseSource(t, `break;`)
	assert.True(t, reporter.HadError())
}

func TestParserContinueOutsideLoopIsAnError(t *testing.T) {
	_, reporter := parseSource(t, `continue;`)
	assert.True(t, reporter.HadError())
}

func TestParserBreakInsideWhileIsAccepted(t *testing.T) {
	_, reporter := parseSource(t, `while (true) { break; }`)
	assert.False(t, reporter.HadError())
}

func TestParserMissingSemicolonReportsAndSynchronizes(t *testing.T) {
	// The missing ';' turns the whole "var a = 1 var b = 2;" line into one
	// malformed declaration; synchronize() consumes through the next ';',
	// so parsing reports the error and simply yields no statements here.
	stmts, reporter := parseSource(t, `var a = 1 var b = 2;`)
	assert.True(t, reporter.HadError())
	assert.Len(t, stmts, 0)
}

func TestParserInvalidAssignmentTarget(t *testing.T) {
	_, reporter := parseSource(t, `1 = 2;`)
	assert.True(t, reporter.HadError())
}
