package lox

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolveSource(t *testing.T, source string) (*Interpreter, []Stmt, *ErrorReporter) {
	t.Helper()
	var out bytes.Buffer
	reporter := NewErrorReporter(&out)
	tokens := NewScanner(source, reporter).ScanTokens()
	statements := NewParser(tokens, reporter).Parse()
	require.False(t, reporter.HadError())

	interpreter := NewInterpreter(reporter, &out)
	NewResolver(interpreter, reporter).Resolve(statements)
	return interpreter, statements, reporter
}

func TestResolverBlockLocalGetsZeroDistance(t *testing.T) {
	interpreter, statements, reporter := resolveSource(t, `
		var a = 1;
		{
			var a = 2;
			print a;
		}
	`)
	require.False(t, reporter.HadError())

	block := statements[1].(*Block)
	printStmt := block.statements[1].(*Print)
	variable := printStmt.expression.(*Variable)

	distance, ok := interpreter.locals[variable]
	require.True(t, ok)
	assert.Equal(t, 0, distance)
}

func TestResolverSelfInitializerIsAnError(t *testing.T) {
	_, _, reporter := resolveSource(t, `
		var a = 1;
		{
			var a = a;
		}
	`)
	assert.True(t, reporter.HadError())
}

func TestResolverReturnOutsideFunctionIsAnError(t *testing.T) {
	_, _, reporter := resolveSource(t, `return 1;`)
	assert.True(t, reporter.HadError())
}

func TestResolverReturnValueFromInitializerIsAnError(t *testing.T) {
	_, _, reporter := resolveSource(t, `
		class A {
			init() {
				return 1;
			}
		}
	`)
	assert.True(t, reporter.HadError())
}

func TestResolverThisOutsideClassIsAnError(t *testing.T) {
	_, _, reporter := resolveSource(t, `print this;`)
	assert.True(t, reporter.HadError())
}

func TestResolverClassInheritingFromItselfIsAnError(t *testing.T) {
	_, _, reporter := resolveSource(t, `class A < A {}`)
	assert.True(t, reporter.HadError())
}

func TestResolverDuplicateLocalDeclarationIsAnError(t *testing.T) {
	_, _, reporter := resolveSource(t, `
		{
			var a = 1;
			var a = 2;
		}
	`)
	assert.True(t, reporter.HadError())
}
