package lox

import (
	"fmt"
	"io"
	"strconv"
)

// Interpreter walks the resolved AST and evaluates it directly; there is no
// bytecode or intermediate form. locals holds the lexical distances the
// Resolver computed, keyed by the Expr node's identity.
type Interpreter struct {
	environment *Environment
	globals     *Environment
	locals      map[Expr]int
	reporter    *ErrorReporter
	out         io.Writer
}

func NewInterpreter(reporter *ErrorReporter, out io.Writer) *Interpreter {
	globals := NewEnvironment(nil)
	globals.Define("clock", NewClock())
	globals.Define("len", NewLen())
	globals.Define("str", NewStr())

	return &Interpreter{
		environment: globals,
		globals:     globals,
		locals:      map[Expr]int{},
		reporter:    reporter,
		out:         out,
	}
}

func (this *Interpreter) Interpret(statements []Stmt) {
	defer func(p *Interpreter) {
		if re, ok := recover().(RuntimeError); ok {
			p.reporter.RuntimeError(re)
		} else if re != nil {
			panic(re)
		}
	}(this)
	for _, statement := range statements {
		this.execute(statement)
	}
}

func (this *Interpreter) execute(stmt Stmt) {
	stmt.accept(this)
}

func (this *Interpreter) resolve(expr Expr, depth int) {
	this.locals[expr] = depth
}

func (this *Interpreter) executeBlock(statements []Stmt, env *Environment) {
	previous := this.environment
	defer func() {
		this.environment = previous
	}()
	this.environment = env
	for _, statement := range statements {
		this.execute(statement)
	}
}

func (this *Interpreter) visitBlockStmt(stmt *Block) interface{} {
	this.executeBlock(stmt.statements, NewEnvironment(this.environment))
	return nil
}

func (this *Interpreter) visitClassStmt(stmt *Class) interface{} {
	var superclass *LoxClass
	if stmt.superclass != nil {
		superclass = this.resolveSuperclass(stmt.superclass)
	}

	this.environment.Define(stmt.name.Lexeme, nil)
	if superclass != nil {
		this.environment = NewEnvironment(this.environment)
		this.environment.Define("super", superclass)
	}

	class := NewLoxClass(stmt.name.Lexeme, superclass, this.buildMethodTable(stmt.methods))

	if superclass != nil {
		this.environment = this.environment.enclosing
	}
	this.environment.Assign(stmt.name, class)
	return nil
}

func (this *Interpreter) resolveSuperclass(expr *Variable) *LoxClass {
	class, ok := this.evaluate(expr).(*LoxClass)
	if !ok {
		panic(NewRuntimeError(expr.name, "Superclass must be a class."))
	}
	return class
}

func (this *Interpreter) buildMethodTable(declarations []*Function) map[string]LoxCallable {
	methods := make(map[string]LoxCallable, len(declarations))
	for _, method := range declarations {
		methods[method.name.Lexeme] = NewLoxFunction(method, this.environment, method.name.Lexeme == "init")
	}
	return methods
}

func (this *Interpreter) visitLiteralExpr(expr *Literal) interface{} {
	return expr.value
}

func (this *Interpreter) visitLogicalExpr(expr *Logical) interface{} {
	left := this.evaluate(expr.left)
	if expr.operator.Type == OR {
		if this.isTruthy(left) {
			return left
		}
	} else {
		if !this.isTruthy(left) {
			return left
		}
	}
	return this.evaluate(expr.right)
}

func (this *Interpreter) visitSetExpr(expr *Set) interface{} {
	object := this.evaluate(expr.object)

	instance, ok := object.(*LoxInstance)
	if !ok {
		panic(NewRuntimeError(expr.name, "Only instances have fields."))
	}
	value := this.evaluate(expr.value)
	instance.Set(expr.name, value)
	return value
}

func (this *Interpreter) visitSuperExpr(expr *Super) interface{} {
	distance := this.locals[expr]
	superclass, _ := this.environment.GetAt(distance, "super").(*LoxClass)
	object, _ := this.environment.GetAt(distance-1, "this").(*LoxInstance)

	method := superclass.findMethod(expr.method.Lexeme)
	if method == nil {
		panic(NewRuntimeError(expr.method, "Undefined property '"+expr.method.Lexeme+"'."))
	}
	return method.(*LoxFunction).Bind(object)
}

func (this *Interpreter) visitThisExpr(expr *This) interface{} {
	return this.lookUpVariable(expr.keyword, expr)
}

func (this *Interpreter) visitGroupingExpr(expr *Grouping) interface{} {
	return this.evaluate(expr.expression)
}

func (this *Interpreter) visitUnaryExpr(expr *Unary) interface{} {
	right := this.evaluate(expr.right)
	switch expr.operator.Type {
	case MINUS:
		return -this.numberOperand(expr.operator, right)
	case BANG:
		return !this.isTruthy(right)
	}
	return nil
}

func (this *Interpreter) visitVariableExpr(expr *Variable) interface{} {
	return this.lookUpVariable(expr.name, expr)
}

func (this *Interpreter) lookUpVariable(name *Token, expr Expr) interface{} {
	distance, ok := this.locals[expr]
	if ok {
		return this.environment.GetAt(distance, name.Lexeme)
	}
	return this.globals.Get(name)
}

func (this *Interpreter) visitTernaryExpr(expr *Ternary) interface{} {
	condition := this.evaluate(expr.expr)
	if this.isTruthy(condition) {
		return this.evaluate(expr.thenBranch)
	}
	return this.evaluate(expr.elseBranch)
}

func (this *Interpreter) visitBinaryExpr(expr *Binary) interface{} {
	left := this.evaluate(expr.left)
	right := this.evaluate(expr.right)
	op := expr.operator

	switch op.Type {
	case BANG_EQUAL:
		return !this.isEqual(left, right)
	case EQUAL_EQUAL:
		return this.isEqual(left, right)
	case PLUS:
		return this.add(op, left, right)
	}

	a, b := this.numberOperands(op, left, right)
	switch op.Type {
	case GREATER:
		return a > b
	case GREATER_EQUAL:
		return a >= b
	case LESS:
		return a < b
	case LESS_EQUAL:
		return a <= b
	case MINUS:
		return a - b
	case SLASH:
		return a / b
	case STAR:
		return a * b
	}
	return nil
}

// add implements `+`'s two overloads: numeric addition and string
// concatenation. Mixed-kind operands are a runtime error.
func (this *Interpreter) add(operator *Token, left, right interface{}) interface{} {
	if a, ok := left.(float64); ok {
		if b, ok := right.(float64); ok {
			return a + b
		}
	}
	if a, ok := left.(string); ok {
		if b, ok := right.(string); ok {
			return a + b
		}
	}
	panic(NewRuntimeError(operator, "Operands must be two numbers or two strings."))
}

func (this *Interpreter) visitCallExpr(expr *Call) interface{} {
	callee := this.evaluate(expr.callee)

	var arguments []interface{}
	for _, argument := range expr.arguments {
		arguments = append(arguments, this.evaluate(argument))
	}
	function, ok := callee.(LoxCallable)
	if !ok {
		panic(NewRuntimeError(expr.paren, "Can only call functions and classes."))
	}

	if len(arguments) != function.Arity() {
		panic(NewRuntimeError(expr.paren, "Expected "+strconv.Itoa(function.Arity())+
			" arguments but got "+strconv.Itoa(len(arguments))+"."))
	}

	return function.Call(this, arguments)
}

func (this *Interpreter) visitGetExpr(expr *Get) interface{} {
	object := this.evaluate(expr.object)
	if instance, ok := object.(*LoxInstance); ok && instance != nil {
		return instance.Get(expr.name)
	}
	panic(NewRuntimeError(expr.name, "Only instances have properties."))
}

func (this *Interpreter) asArray(bracket *Token, value interface{}) LoxIterator {
	array, ok := value.(LoxIterator)
	if !ok {
		panic(NewRuntimeError(bracket, "Only arrays can be indexed."))
	}
	return array
}

func (this *Interpreter) asArrayIndex(bracket *Token, value interface{}) int {
	idx, ok := value.(float64)
	if !ok {
		panic(NewRuntimeError(bracket, "Array index must be a number."))
	}
	return int(idx)
}

func (this *Interpreter) visitIndexExpr(expr *Index) interface{} {
	array := this.asArray(expr.bracket, this.evaluate(expr.left))
	if expr.index == nil {
		panic(NewRuntimeError(expr.bracket, "Array index must be a number."))
	}
	idx := this.asArrayIndex(expr.bracket, this.evaluate(expr.index))

	v, err := array.Get(idx)
	if err != nil {
		panic(NewRuntimeError(expr.bracket, err.Error()))
	}
	return v
}

func (this *Interpreter) visitExpressionStmt(stmt *Expression) interface{} {
	this.evaluate(stmt.expression)
	return nil
}

func (this *Interpreter) visitFunctionStmt(stmt *Function) interface{} {
	function := NewLoxFunction(stmt, this.environment, false)
	this.environment.Define(stmt.name.Lexeme, function)
	return nil
}

func (this *Interpreter) visitLambdaExpr(expr *Lambda) interface{} {
	return NewLoxLambda(expr, this.environment)
}

func (this *Interpreter) visitArrayLiteralExpr(expr *ArrayLiteral) interface{} {
	var items []interface{}
	for _, item := range expr.items {
		items = append(items, this.evaluate(item))
	}
	return NewLoxArray(items)
}

func (this *Interpreter) visitIfStmt(stmt *If) interface{} {
	if this.isTruthy(this.evaluate(stmt.condition)) {
		this.execute(stmt.thenBranch)
	} else if stmt.elseBranch != nil {
		this.execute(stmt.elseBranch)
	}
	return nil
}

func (this *Interpreter) visitReturnStmt(stmt *Return) interface{} {
	var value interface{} = nil
	if stmt.value != nil {
		value = this.evaluate(stmt.value)
	}
	panic(newReturnValue(value))
}

func (this *Interpreter) visitPrintStmt(stmt *Print) interface{} {
	value := this.evaluate(stmt.expression)
	fmt.Fprintln(this.out, this.stringify(value))
	return nil
}

func (this *Interpreter) visitVarStmt(stmt *Var) interface{} {
	var value interface{}
	if stmt.initializer != nil {
		value = this.evaluate(stmt.initializer)
	}
	this.environment.Define(stmt.name.Lexeme, value)
	return nil
}

// visitWhileStmt runs the loop body, catching loopSignal panics raised by
// nested break/continue statements. loopContinue just stops the current
// iteration and re-enters the loop to re-check the condition; loopBreak
// stops the loop entirely.
func (this *Interpreter) visitWhileStmt(stmt *While) interface{} {
	for this.isTruthy(this.evaluate(stmt.condition)) {
		if this.runLoopBody(stmt.body) {
			break
		}
	}
	return nil
}

// runLoopBody executes one iteration and reports whether the loop should
// stop (true on break, false otherwise — including on continue).
func (this *Interpreter) runLoopBody(body Stmt) (stop bool) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		signal, ok := r.(loopSignal)
		if !ok {
			panic(r)
		}
		stop = signal.kind == loopBreak
	}()
	this.execute(body)
	return false
}

func (this *Interpreter) visitBreakStmt(stmt *Break) interface{} {
	panic(loopSignal{kind: loopBreak})
}

func (this *Interpreter) visitContinueStmt(stmt *Continue) interface{} {
	panic(loopSignal{kind: loopContinue})
}

func (this *Interpreter) visitAssignExpr(expr *Assign) interface{} {
	value := this.evaluate(expr.value)

	distance, ok := this.locals[expr]
	if ok {
		this.environment.AssignAt(distance, expr.name, value)
	} else {
		this.globals.Assign(expr.name, value)
	}
	return value
}

func (this *Interpreter) visitIndexSetExpr(expr *IndexSet) interface{} {
	array := this.asArray(expr.bracket, this.evaluate(expr.left))

	if expr.index == nil {
		value := this.evaluate(expr.value)
		array.Add(value)
		return value
	}

	idx := this.asArrayIndex(expr.bracket, this.evaluate(expr.index))
	value := this.evaluate(expr.value)
	if err := array.Set(idx, value); err != nil {
		panic(NewRuntimeError(expr.bracket, err.Error()))
	}
	return value
}

func (this *Interpreter) evaluate(expr Expr) interface{} {
	return expr.accept(this)
}

func (this *Interpreter) isTruthy(obj interface{}) bool {
	if obj == nil {
		return false
	}
	if v, ok := obj.(bool); ok {
		return v
	}
	return true
}

func (this *Interpreter) isEqual(a, b interface{}) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil {
		return false
	}
	return a == b
}

func (this *Interpreter) numberOperand(operator *Token, operand interface{}) float64 {
	v, ok := operand.(float64)
	if !ok {
		panic(NewRuntimeError(operator, "Operand must be a number."))
	}
	return v
}

func (this *Interpreter) numberOperands(operator *Token, left, right interface{}) (float64, float64) {
	a, ok1 := left.(float64)
	b, ok2 := right.(float64)
	if !ok1 || !ok2 {
		panic(NewRuntimeError(operator, "Operands must be numbers."))
	}
	return a, b
}

func (this *Interpreter) stringify(obj interface{}) string {
	if obj == nil {
		return "nil"
	}
	if v, ok := obj.(float64); ok {
		return FloatVal(v)
	}
	return fmt.Sprintf("%v", obj)
}
