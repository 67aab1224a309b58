package lox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStackPushPop(t *testing.T) {
	s := NewStack[string]()
	assert.True(t, s.IsEmpty())

	s.Push("a")
	s.Push("b")
	s.Push("c")

	assert.Equal(t, 3, s.Size())
	assert.Equal(t, "c", s.Top())

	v, err := s.Pop()
	require.NoError(t, err)
	assert.Equal(t, "c", v)
	assert.Equal(t, 2, s.Size())
}

func TestStackPopEmpty(t *testing.T) {
	s := NewStack[string]()
	_, err := s.Pop()
	assert.Error(t, err)
}

func TestStackGetOutOfRange(t *testing.T) {
	s := NewStack[string]()
	s.Push("only")

	_, err := s.Get(5)
	assert.Error(t, err)

	v, err := s.Get(0)
	require.NoError(t, err)
	assert.Equal(t, "only", v)
}

func TestStackExpandsPastInitialCapacity(t *testing.T) {
	s := NewStack[int]()
	for i := 0; i < 100; i++ {
		s.Push(i)
	}
	assert.Equal(t, 100, s.Size())
	assert.Equal(t, 99, s.Top())
}

func TestStackOfScopeMaps(t *testing.T) {
	s := NewStack[Scope]()
	s.Push(Scope{"a": true})
	s.Top()["b"] = false
	assert.Equal(t, Scope{"a": true, "b": false}, s.Top())
}
