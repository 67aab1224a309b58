package lox

// LoxCallable is anything invocable from a Call expression: user-defined
// functions and lambdas (LoxFunction), classes (their constructor call),
// and natives (clock/len/str).
type LoxCallable interface {
	Arity() int
	Call(interpreter *Interpreter, arguments []interface{}) interface{}
}

// NewLoxFunction wraps a parsed Function declaration together with the
// Environment active at the point it was defined, so it closes over outer
// locals the way the book's jlox functions do.
func NewLoxFunction(decl *Function, closure *Environment, isInitializer bool) LoxCallable {
	return &LoxFunction{declaration: decl, closure: closure, isInitializer: isInitializer}
}

// NewLoxLambda wraps an anonymous `fun (...) { ... }` expression as a
// LoxFunction with no name, reusing the same call/bind machinery.
func NewLoxLambda(lambda *Lambda, closure *Environment) LoxCallable {
	return &LoxFunction{
		declaration: NewFunction(nil, lambda.params, lambda.body),
		closure:     closure,
	}
}

type LoxFunction struct {
	declaration   *Function
	closure       *Environment
	isInitializer bool
}

// Bind returns a copy of this function with `this` bound to instance, used
// when a method is looked up off an instance (`instance.method`).
func (this *LoxFunction) Bind(instance *LoxInstance) LoxCallable {
	environment := NewEnvironment(this.closure)
	environment.Define("this", instance)
	return NewLoxFunction(this.declaration, environment, this.isInitializer)
}

func (this *LoxFunction) Arity() int {
	return len(this.declaration.params)
}

func (this *LoxFunction) Call(interpreter *Interpreter, arguments []interface{}) (value interface{}) {
	env := this.bindArguments(arguments)

	defer func() {
		if r := recover(); r != nil {
			rv, ok := r.(*returnValue)
			if !ok {
				panic(r)
			}
			value = rv.value
		}
		// init() always yields the instance it was bound to, whether it
		// returned explicitly (empty `return;`) or fell off the end.
		if this.isInitializer {
			value = this.closure.GetAt(0, "this")
		}
	}()

	interpreter.executeBlock(this.declaration.body, env)
	return
}

func (this *LoxFunction) bindArguments(arguments []interface{}) *Environment {
	env := NewEnvironment(this.closure)
	for i, param := range this.declaration.params {
		env.Define(param.Lexeme, arguments[i])
	}
	return env
}

func (this LoxFunction) String() string {
	if this.declaration.name == nil {
		return "<fn>"
	}
	return "<fn " + this.declaration.name.Lexeme + ">"
}
