package lox

// Scope maps a name declared in one block/function/method body to whether
// its initializer has finished running yet. `false` means "declared but
// not yet defined" — reading the name while it's false is the
// self-reference-in-initializer error.
type Scope map[string]bool

type FunctionType int

type ClassType int

const (
	FT_NONE FunctionType = iota
	FT_FUNCTION
	FT_INITIALIZER
	FT_METHOD
)

const (
	CT_NONE ClassType = iota
	CT_SUBCLASS
	CT_CLASS
)

// Resolver walks the AST once after parsing to compute, for every variable
// reference, how many scopes out the enclosing Environment chain must be
// walked to find its binding. Interpreter.resolve stores those distances
// keyed by the Expr node itself, so the Evaluator's Get/Assign skip the
// normal outward-search Environment.Get/Assign and use GetAt/AssignAt
// directly.
func NewResolver(interpreter *Interpreter, reporter *ErrorReporter) *Resolver {
	return &Resolver{
		interpreter:     interpreter,
		reporter:        reporter,
		scopes:          NewStack[Scope](),
		currentFunction: FT_NONE,
		currentClass:    CT_NONE,
	}
}

type Resolver struct {
	interpreter     *Interpreter
	reporter        *ErrorReporter
	scopes          *Stack[Scope]
	currentFunction FunctionType
	currentClass    ClassType
}

func (this *Resolver) Resolve(statements []Stmt) {
	for _, statement := range statements {
		this.resolveStmt(statement)
	}
}

func (this *Resolver) resolveStmt(stmt Stmt) {
	stmt.accept(this)
}

func (this *Resolver) resolveExpr(expr Expr) {
	expr.accept(this)
}

func (this *Resolver) resolveExprIfPresent(expr Expr) {
	if expr != nil {
		this.resolveExpr(expr)
	}
}

func (this *Resolver) beginScope() {
	this.scopes.Push(Scope{})
}

func (this *Resolver) endScope() {
	_, _ = this.scopes.Pop()
}

// declareAndDefine is shorthand for the common case of a name that becomes
// usable immediately (class names, function names, parameters) — unlike a
// `var` initializer, nothing runs in between declare and define.
func (this *Resolver) declareAndDefine(name *Token) {
	this.declare(name)
	this.define(name)
}

func (this *Resolver) declare(name *Token) {
	if this.scopes.IsEmpty() {
		return
	}
	scope := this.scopes.Top()
	if _, ok := scope[name.Lexeme]; ok {
		this.reporter.ErrorAtToken(name, "Already a variable with this name in this scope.")
	}
	scope[name.Lexeme] = false
}

func (this *Resolver) define(name *Token) {
	if this.scopes.IsEmpty() {
		return
	}
	this.scopes.Top()[name.Lexeme] = true
}

// defineImplicit seeds the current scope with a name the resolver injects
// itself rather than one that came from a declaration — `this` in a
// method body, `super` in a subclass body.
func (this *Resolver) defineImplicit(name string) {
	this.scopes.Top()[name] = true
}

func (this *Resolver) resolveLocal(expr Expr, name *Token) {
	depth := this.scopes.Size() - 1
	for depth >= 0 {
		scope, err := this.scopes.Get(depth)
		if err == nil {
			if _, ok := scope[name.Lexeme]; ok {
				this.interpreter.resolve(expr, this.scopes.Size()-1-depth)
				return
			}
		}
		depth--
	}
}

// resolveFunctionBody opens a scope for params+body, tracking
// currentFunction for return validation, shared by named functions,
// methods, and lambdas alike.
func (this *Resolver) resolveFunctionBody(params []*Token, body []Stmt, ft FunctionType) {
	enclosingFunction := this.currentFunction
	this.currentFunction = ft
	defer func() { this.currentFunction = enclosingFunction }()

	this.beginScope()
	defer this.endScope()

	for _, param := range params {
		this.declareAndDefine(param)
	}
	this.Resolve(body)
}

func (this *Resolver) visitBlockStmt(stmt *Block) interface{} {
	this.beginScope()
	this.Resolve(stmt.statements)
	this.endScope()
	return nil
}

func (this *Resolver) visitVarStmt(stmt *Var) interface{} {
	this.declare(stmt.name)
	this.resolveExprIfPresent(stmt.initializer)
	this.define(stmt.name)
	return nil
}

func (this *Resolver) visitVariableExpr(expr *Variable) interface{} {
	if !this.scopes.IsEmpty() {
		if value, ok := this.scopes.Top()[expr.name.Lexeme]; ok && !value {
			this.reporter.ErrorAtToken(expr.name, "Can't read local variable in its own initialiser.")
		}
	}
	this.resolveLocal(expr, expr.name)
	return nil
}

func (this *Resolver) visitAssignExpr(expr *Assign) interface{} {
	this.resolveExpr(expr.value)
	this.resolveLocal(expr, expr.name)
	return nil
}

func (this *Resolver) visitClassStmt(stmt *Class) interface{} {
	enclosingClass := this.currentClass
	this.currentClass = CT_CLASS
	defer func() { this.currentClass = enclosingClass }()

	this.declareAndDefine(stmt.name)

	if stmt.superclass != nil && stmt.name.Lexeme == stmt.superclass.name.Lexeme {
		this.reporter.ErrorAtToken(stmt.superclass.name, "A class can't inherit from itself.")
	}

	hasSuperclass := stmt.superclass != nil
	if hasSuperclass {
		this.currentClass = CT_SUBCLASS
		this.resolveExpr(stmt.superclass)
		this.beginScope()
		this.defineImplicit("super")
		defer this.endScope()
	}

	this.beginScope()
	this.defineImplicit("this")
	for _, method := range stmt.methods {
		ft := FT_METHOD
		if method.name.Lexeme == "init" {
			ft = FT_INITIALIZER
		}
		this.resolveFunctionBody(method.params, method.body, ft)
	}
	this.endScope()

	return nil
}

func (this *Resolver) visitFunctionStmt(stmt *Function) interface{} {
	this.declareAndDefine(stmt.name)
	this.resolveFunctionBody(stmt.params, stmt.body, FT_FUNCTION)
	return nil
}

func (this *Resolver) visitLambdaExpr(expr *Lambda) interface{} {
	this.resolveFunctionBody(expr.params, expr.body, FT_FUNCTION)
	return nil
}

func (this *Resolver) visitExpressionStmt(stmt *Expression) interface{} {
	this.resolveExpr(stmt.expression)
	return nil
}

func (this *Resolver) visitIfStmt(stmt *If) interface{} {
	this.resolveExpr(stmt.condition)
	this.resolveStmt(stmt.thenBranch)
	if stmt.elseBranch != nil {
		this.resolveStmt(stmt.elseBranch)
	}
	return nil
}

func (this *Resolver) visitPrintStmt(stmt *Print) interface{} {
	this.resolveExpr(stmt.expression)
	return nil
}

func (this *Resolver) visitReturnStmt(stmt *Return) interface{} {
	if this.currentFunction == FT_NONE {
		this.reporter.ErrorAtToken(stmt.keyword, "Can't return from top-level code.")
	}
	if stmt.value == nil {
		return nil
	}
	if this.currentFunction == FT_INITIALIZER {
		this.reporter.ErrorAtToken(stmt.keyword, "Can't return a value from an initializer.")
	}
	this.resolveExpr(stmt.value)
	return nil
}

func (this *Resolver) visitWhileStmt(stmt *While) interface{} {
	this.resolveExpr(stmt.condition)
	this.resolveStmt(stmt.body)
	return nil
}

// visitBreakStmt and visitContinueStmt are no-ops: break/continue carry no
// identifier to resolve, and their "must be inside a loop" check already
// happened in the Parser where loop nesting is tracked.
func (this *Resolver) visitBreakStmt(stmt *Break) interface{} {
	return nil
}

func (this *Resolver) visitContinueStmt(stmt *Continue) interface{} {
	return nil
}

func (this *Resolver) visitBinaryExpr(expr *Binary) interface{} {
	this.resolveExpr(expr.left)
	this.resolveExpr(expr.right)
	return nil
}

func (this *Resolver) visitCallExpr(expr *Call) interface{} {
	this.resolveExpr(expr.callee)
	for _, argument := range expr.arguments {
		this.resolveExpr(argument)
	}
	return nil
}

func (this *Resolver) visitGroupingExpr(expr *Grouping) interface{} {
	this.resolveExpr(expr.expression)
	return nil
}

func (this *Resolver) visitLiteralExpr(expr *Literal) interface{} {
	return nil
}

func (this *Resolver) visitLogicalExpr(expr *Logical) interface{} {
	this.resolveExpr(expr.left)
	this.resolveExpr(expr.right)
	return nil
}

func (this *Resolver) visitSetExpr(expr *Set) interface{} {
	this.resolveExpr(expr.value)
	this.resolveExpr(expr.object)
	return nil
}

func (this *Resolver) visitSuperExpr(expr *Super) interface{} {
	switch this.currentClass {
	case CT_NONE:
		this.reporter.ErrorAtToken(expr.keyword, "Can't use 'super' outside of a class.")
	case CT_CLASS:
		this.reporter.ErrorAtToken(expr.keyword, "Can't use 'super' in a class with no superclass.")
	}
	this.resolveLocal(expr, expr.keyword)
	return nil
}

func (this *Resolver) visitThisExpr(expr *This) interface{} {
	if this.currentClass == CT_NONE {
		this.reporter.ErrorAtToken(expr.keyword, "Can't use 'this' outside of a class.")
		return nil
	}
	this.resolveLocal(expr, expr.keyword)
	return nil
}

func (this *Resolver) visitGetExpr(expr *Get) interface{} {
	this.resolveExpr(expr.object)
	return nil
}

func (this *Resolver) visitUnaryExpr(expr *Unary) interface{} {
	this.resolveExpr(expr.right)
	return nil
}

func (this *Resolver) visitTernaryExpr(expr *Ternary) interface{} {
	this.resolveExpr(expr.expr)
	this.resolveExpr(expr.thenBranch)
	this.resolveExpr(expr.elseBranch)
	return nil
}

func (this *Resolver) visitIndexExpr(expr *Index) interface{} {
	this.resolveExpr(expr.left)
	this.resolveExprIfPresent(expr.index)
	return nil
}

func (this *Resolver) visitIndexSetExpr(expr *IndexSet) interface{} {
	this.resolveExpr(expr.left)
	this.resolveExprIfPresent(expr.index)
	this.resolveExpr(expr.value)
	return nil
}

func (this *Resolver) visitArrayLiteralExpr(expr *ArrayLiteral) interface{} {
	for _, item := range expr.items {
		this.resolveExpr(item)
	}
	return nil
}
