package lox

// LoxInstance holds a class's per-object state: a fields map, consulted
// before the class's methods on Get so a field can shadow a method of the
// same name.
func NewLoxInstance(class *LoxClass) *LoxInstance {
	return &LoxInstance{class: class, fields: map[string]interface{}{}}
}

type LoxInstance struct {
	class  *LoxClass
	fields map[string]interface{}
}

func (this *LoxInstance) Get(name *Token) interface{} {
	if value, found := this.fields[name.Lexeme]; found {
		return value
	}

	method := this.class.findMethod(name.Lexeme)
	if method == nil {
		panic(NewRuntimeError(name, "Undefined property '"+name.Lexeme+"'."))
	}
	return method.(*LoxFunction).Bind(this)
}

func (this *LoxInstance) Set(name *Token, value interface{}) {
	this.fields[name.Lexeme] = value
}

func (this LoxInstance) String() string {
	return this.class.name + " instance"
}
