package lox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoxArrayGetSet(t *testing.T) {
	arr := NewLoxArray([]interface{}{1.0, 2.0, 3.0})
	assert.Equal(t, 3, arr.Len())

	v, err := arr.Get(1)
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)

	require.NoError(t, arr.Set(1, 9.0))
	v, _ = arr.Get(1)
	assert.Equal(t, 9.0, v)
}

func TestLoxArrayOutOfBounds(t *testing.T) {
	arr := NewLoxArray([]interface{}{1.0})

	_, err := arr.Get(5)
	assert.Error(t, err)

	_, err = arr.Get(-1)
	assert.Error(t, err)

	assert.Error(t, arr.Set(5, 1.0))
}

func TestLoxArrayAdd(t *testing.T) {
	arr := NewLoxArray(nil)
	arr.Add("a")
	arr.Add("b")
	assert.Equal(t, 2, arr.Len())
	v, err := arr.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "b", v)
}

func TestLoxArrayString(t *testing.T) {
	arr := NewLoxArray([]interface{}{1.0, "two", true, nil})
	assert.Equal(t, "[1, two, true, nil]", arr.(interface{ String() string }).String())
}
