package lox

import (
	"fmt"
	"strings"
)

// LoxIterator is the runtime surface an indexable collection exposes to
// the Evaluator's Index/IndexSet handling. LoxArray is the only
// implementation, but the Evaluator talks to this interface rather than
// the concrete type so a second collection kind could slot in later.
type LoxIterator interface {
	Len() int
	Add(item interface{})
	Get(index int) (interface{}, error)
	Set(index int, value interface{}) error
}

// LoxArray is a growable, bounds-checked array backing the `[...]` literal
// and `a[i]` / `a[]` syntax. Indexing errors surface as RuntimeErrors
// through the Evaluator rather than panicking the Go process.
func NewLoxArray(items []interface{}) LoxIterator {
	return &LoxArray{items: items, size: len(items)}
}

type LoxArray struct {
	size  int
	items []interface{}
}

func (this *LoxArray) Len() int {
	return this.size
}

func (this *LoxArray) Add(item interface{}) {
	this.items = append(this.items, item)
	this.size = len(this.items)
}

func (this *LoxArray) inBounds(index int) bool {
	return index >= 0 && index < this.size
}

func (this *LoxArray) Get(index int) (interface{}, error) {
	if !this.inBounds(index) {
		return nil, NewIllegalIndexError(index, "Array index out of bounds.")
	}
	return this.items[index], nil
}

func (this *LoxArray) Set(index int, value interface{}) error {
	if !this.inBounds(index) {
		return NewIllegalIndexError(index, "Array index out of bounds.")
	}
	this.items[index] = value
	return nil
}

func (this LoxArray) String() string {
	parts := make([]string, len(this.items))
	for i, item := range this.items {
		parts[i] = stringifyElement(item)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func stringifyElement(item interface{}) string {
	switch v := item.(type) {
	case nil:
		return "nil"
	case float64:
		return FloatVal(v)
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
		return "false"
	default:
		if str, ok := v.(fmt.Stringer); ok {
			return str.String()
		}
		return ""
	}
}
