package lox

func NewLoxClass(name string, superclass *LoxClass, methods map[string]LoxCallable) *LoxClass {
	return &LoxClass{name: name, superclass: superclass, methods: methods}
}

type LoxClass struct {
	name       string
	methods    map[string]LoxCallable
	superclass *LoxClass
}

// findMethod walks the single-inheritance chain starting at this class,
// returning the first class (closest to this one) that defines name.
func (this *LoxClass) findMethod(name string) LoxCallable {
	for class := this; class != nil; class = class.superclass {
		if method, ok := class.methods[name]; ok {
			return method
		}
	}
	return nil
}

// initializer returns the class's init() method, or nil if it (and every
// ancestor) has none.
func (this *LoxClass) initializer() *LoxFunction {
	init := this.findMethod("init")
	if init == nil {
		return nil
	}
	return init.(*LoxFunction)
}

func (this *LoxClass) Call(interpreter *Interpreter, arguments []interface{}) interface{} {
	instance := NewLoxInstance(this)
	if init := this.initializer(); init != nil {
		init.Bind(instance).Call(interpreter, arguments)
	}
	return instance
}

func (this *LoxClass) Arity() int {
	if init := this.initializer(); init != nil {
		return init.Arity()
	}
	return 0
}

func (this LoxClass) String() string {
	return this.name
}
