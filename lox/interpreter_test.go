package lox

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runLox(t *testing.T, source string) (string, *Lox) {
	t.Helper()
	var out bytes.Buffer
	l := New(&out)
	l.Run(source)
	return out.String(), l
}

func TestInterpreterArithmeticAndPrint(t *testing.T) {
	out, l := runLox(t, `print 1 + 2 * 3;`)
	require.False(t, l.HadError())
	require.False(t, l.HadRuntimeError())
	assert.Equal(t, "7\n", out)
}

func TestInterpreterStringConcatenation(t *testing.T) {
	out, l := runLox(t, `print "foo" + "bar";`)
	require.False(t, l.HadRuntimeError())
	assert.Equal(t, "foobar\n", out)
}

func TestInterpreterMismatchedPlusIsARuntimeError(t *testing.T) {
	_, l := runLox(t, `print "foo" + 1;`)
	assert.True(t, l.HadRuntimeError())
}

func TestInterpreterClosures(t *testing.T) {
	out, l := runLox(t, `
		fun makeCounter() {
			var i = 0;
			fun count() {
				i = i + 1;
				print i;
			}
			return count;
		}
		var counter = makeCounter();
		counter();
		counter();
	`)
	require.False(t, l.HadRuntimeError())
	assert.Equal(t, "1\n2\n", out)
}

func TestInterpreterClassesAndInheritance(t *testing.T) {
	out, l := runLox(t, `
		class Animal {
			speak() {
				print "...";
			}
		}
		class Dog < Animal {
			speak() {
				print "woof";
			}
		}
		var d = Dog();
		d.speak();
	`)
	require.False(t, l.HadRuntimeError())
	assert.Equal(t, "woof\n", out)
}

func TestInterpreterSuperCallsParentMethod(t *testing.T) {
	out, l := runLox(t, `
		class Animal {
			speak() {
				print "generic noise";
			}
		}
		class Dog < Animal {
			speak() {
				super.speak();
				print "woof";
			}
		}
		Dog().speak();
	`)
	require.False(t, l.HadRuntimeError())
	assert.Equal(t, "generic noise\nwoof\n", out)
}

func TestInterpreterWhileWithBreakAndContinue(t *testing.T) {
	out, l := runLox(t, `
		var i = 0;
		while (i < 10) {
			i = i + 1;
			if (i == 3) continue;
			if (i == 6) break;
			print i;
		}
	`)
	require.False(t, l.HadRuntimeError())
	assert.Equal(t, "1\n2\n4\n5\n", out)
}

func TestInterpreterForLoop(t *testing.T) {
	out, l := runLox(t, `
		for (var i = 0; i < 3; i = i + 1) {
			print i;
		}
	`)
	require.False(t, l.HadRuntimeError())
	assert.Equal(t, "0\n1\n2\n", out)
}

func TestInterpreterArrays(t *testing.T) {
	out, l := runLox(t, `
		var a = [1, 2, 3];
		a[] = 4;
		a[0] = 9;
		print a;
		print len(a);
	`)
	require.False(t, l.HadRuntimeError())
	assert.Equal(t, "[9, 2, 3, 4]\n4\n", out)
}

func TestInterpreterArrayOutOfBoundsIsARuntimeError(t *testing.T) {
	_, l := runLox(t, `
		var a = [1];
		print a[5];
	`)
	assert.True(t, l.HadRuntimeError())
}

func TestInterpreterTernary(t *testing.T) {
	out, l := runLox(t, `print 1 < 2 ? "yes" : "no";`)
	require.False(t, l.HadRuntimeError())
	assert.Equal(t, "yes\n", out)
}

func TestInterpreterLambda(t *testing.T) {
	out, l := runLox(t, `
		var add = fun (a, b) { return a + b; };
		print add(2, 3);
	`)
	require.False(t, l.HadRuntimeError())
	assert.Equal(t, "5\n", out)
}

func TestInterpreterUndefinedVariableIsARuntimeError(t *testing.T) {
	_, l := runLox(t, `print missing;`)
	assert.True(t, l.HadRuntimeError())
}

func TestInterpreterStrNative(t *testing.T) {
	out, l := runLox(t, `print str(3) + str(true);`)
	require.False(t, l.HadRuntimeError())
	assert.Equal(t, "3true\n", out)
}

func TestInterpreterFloatPrintsWithoutTrailingZero(t *testing.T) {
	out, l := runLox(t, `print 3.0;`)
	require.False(t, l.HadRuntimeError())
	assert.Equal(t, "3\n", out)
}

func TestInterpreterResetErrorClearsFlagsBetweenLines(t *testing.T) {
	var out bytes.Buffer
	l := New(&out)

	l.Run(`print undeclared;`)
	require.True(t, l.HadRuntimeError())

	l.ResetError()
	assert.False(t, l.HadRuntimeError())

	l.Run(`print 1;`)
	assert.False(t, l.HadRuntimeError())
	assert.True(t, strings.HasSuffix(out.String(), "1\n"))
}
