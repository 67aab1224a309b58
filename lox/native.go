package lox

import (
	"fmt"
	"time"
	"unicode/utf8"
)

// -------- clock ----------------------------------------------------------

func NewClock() LoxCallable {
	return &Clock{}
}

type Clock struct{}

func (this *Clock) Arity() int {
	return 0
}

// Call returns the number of seconds since the Unix epoch, as a Lox number.
func (this *Clock) Call(interpreter *Interpreter, arguments []interface{}) interface{} {
	return float64(time.Now().UnixNano()) / float64(time.Second)
}

func (this Clock) String() string {
	return "<native fn>"
}

// -------- len --------------------------------------------------------------

func NewLen() LoxCallable {
	return &Len{}
}

type Len struct{}

func (this *Len) Arity() int {
	return 1
}

func (this *Len) Call(interpreter *Interpreter, arguments []interface{}) interface{} {
	arg := arguments[0]
	switch v := arg.(type) {
	case string:
		return float64(utf8.RuneCountInString(v))
	case LoxIterator:
		return float64(v.Len())
	}
	return float64(1)
}

func (this Len) String() string {
	return "<native fn>"
}

// -------- str ----------------------------------------------------------------

func NewStr() LoxCallable {
	return &Str{}
}

type Str struct{}

func (this *Str) Arity() int {
	return 1
}

func (this *Str) Call(interpreter *Interpreter, arguments []interface{}) interface{} {
	arg := arguments[0]
	switch v := arg.(type) {
	case string:
		return v
	case float64:
		return FloatVal(v)
	case nil:
		return "nil"
	case bool:
		if v {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprintf("%v", arg)
	}
}

func (this Str) String() string {
	return "<native fn>"
}
