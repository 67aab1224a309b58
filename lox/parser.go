package lox

// Parser is a straightforward recursive-descent parser: each precedence
// level gets its own method, from assignment down to primary. Most errors
// are reported via panic(parserError), caught by declaration()'s deferred
// recover, which then synchronizes to the next statement boundary. An
// invalid assignment target and too many arguments/parameters are reported
// directly instead, and parsing of the statement carries on.
type Parser struct {
	tokens   []*Token
	current  int
	loop     int
	reporter *ErrorReporter
}

func NewParser(tokens []*Token, reporter *ErrorReporter) *Parser {
	return &Parser{tokens: tokens, reporter: reporter}
}

func (this *Parser) Parse() []Stmt {
	var statements []Stmt
	for !this.isAtEnd() {
		statements = append(statements, this.declaration()...)
	}
	return statements
}

// declaration parses a single declaration (or, for `var a, b;`, several).
// A parserError panicked anywhere below unwinds to here, gets reported, and
// the parser resynchronizes at the next statement boundary.
func (this *Parser) declaration() (stmts []Stmt) {
	defer func(parser *Parser) {
		if pe, ok := recover().(parserError); ok {
			parser.reporter.ErrorAtToken(pe.token, pe.message)
			parser.synchronize()
			stmts = nil
		}
	}(this)
	if this.match(CLASS) {
		stmts = append(stmts, this.classDeclaration())
		return
	}
	if this.match(FUN) {
		stmts = append(stmts, this.function("function"))
		return
	}
	if this.match(VAR) {
		return this.varDeclarations()
	}
	stmts = append(stmts, this.statement())
	return
}

func (this *Parser) classDeclaration() Stmt {
	name := this.consume(IDENTIFIER, "Expect class name.")

	var superclass *Variable = nil
	if this.match(LESS) {
		this.consume(IDENTIFIER, "Expect superclass name.")
		superclass = NewVariable(this.previous())
	}

	this.consume(LEFT_BRACE, "Expect '{' before class body.")

	var methods []*Function
	for !this.check(RIGHT_BRACE) && !this.isAtEnd() {
		methods = append(methods, this.function("method"))
	}

	this.consume(RIGHT_BRACE, "Expect '}' after class body.")
	return NewClass(name, superclass, methods)
}

// varDeclarations allows `var a = 1, b = 2;` as a convenience over the
// book's single-variable form; each comma-separated name becomes its own
// Var statement in the returned slice.
func (this *Parser) varDeclarations() (stmts []Stmt) {
	stmts = append(stmts, this.varDeclaration(false))
	for this.match(COMMA) {
		stmts = append(stmts, this.varDeclaration(false))
	}
	this.consume(SEMICOLON, "Expect ';' after variable declaration.")
	return
}

func (this *Parser) varDeclaration(consumeSemicolon bool) Stmt {
	name := this.consume(IDENTIFIER, "Expect variable name.")
	var initializer Expr
	if this.match(EQUAL) {
		initializer = this.expression()
	}
	if consumeSemicolon {
		this.consume(SEMICOLON, "Expect ';' after variable declaration.")
	}
	return NewVar(name, initializer)
}

func (this *Parser) whileStatement() Stmt {
	this.consume(LEFT_PAREN, "Expect '(' after 'while'.")
	condition := this.expression()
	this.consume(RIGHT_PAREN, "Expect ')' after condition.")

	this.loop++
	defer func(this *Parser) { this.loop-- }(this)
	body := this.statement()

	return NewWhile(condition, body)
}

func (this *Parser) breakStatement() Stmt {
	keyword := this.previous()
	if this.loop <= 0 {
		panic(NewParseError(keyword, "Break statement must be inside a loop."))
	}
	this.consume(SEMICOLON, "Expect ';' after 'break'.")
	return NewBreak(keyword)
}

func (this *Parser) continueStatement() Stmt {
	keyword := this.previous()
	if this.loop <= 0 {
		panic(NewParseError(keyword, "Continue statement must be inside a loop."))
	}
	this.consume(SEMICOLON, "Expect ';' after 'continue'.")
	return NewContinue(keyword)
}

func (this *Parser) statement() Stmt {
	if this.match(FOR) {
		return this.forStatement()
	}
	if this.match(IF) {
		return this.ifStatement()
	}
	if this.match(PRINT) {
		return this.printStatement()
	}
	if this.match(RETURN) {
		return this.returnStatement()
	}
	if this.match(WHILE) {
		return this.whileStatement()
	}
	if this.match(BREAK) {
		return this.breakStatement()
	}
	if this.match(CONTINUE) {
		return this.continueStatement()
	}
	if this.match(LEFT_BRACE) {
		return NewBlock(this.block())
	}
	return this.expressionStatement()
}

func (this *Parser) forStatement() Stmt {
	this.consume(LEFT_PAREN, "Expect '(' after 'for'.")

	var initializer Stmt = nil
	if this.match(SEMICOLON) {
		initializer = nil
	} else if this.match(VAR) {
		initializer = this.varDeclaration(true)
	} else {
		initializer = this.expressionStatement()
	}

	var condition Expr = nil
	if !this.check(SEMICOLON) {
		condition = this.expression()
	}
	this.consume(SEMICOLON, "Expect ';' after loop condition.")

	var increment Expr = nil
	if !this.check(RIGHT_PAREN) {
		increment = this.expression()
	}
	this.consume(RIGHT_PAREN, "Expect ')' after for clauses.")

	this.loop++
	defer func(this *Parser) { this.loop-- }(this)

	body := this.statement()

	if increment != nil {
		body = NewBlock([]Stmt{body, NewExpression(increment)})
	}

	if condition == nil {
		condition = NewLiteral(true)
	}
	body = NewWhile(condition, body)

	if initializer != nil {
		body = NewBlock([]Stmt{initializer, body})
	}
	return body
}

func (this *Parser) ifStatement() Stmt {
	this.consume(LEFT_PAREN, "Expect '(' after 'if'.")
	condition := this.expression()
	this.consume(RIGHT_PAREN, "Expect ')' after if condition.")

	thenBranch := this.statement()
	var elseBranch Stmt = nil
	if this.match(ELSE) {
		elseBranch = this.statement()
	}
	return NewIf(condition, thenBranch, elseBranch)
}

func (this *Parser) printStatement() Stmt {
	value := this.expression()
	this.consume(SEMICOLON, "Expect ';' after value.")
	return NewPrint(value)
}

func (this *Parser) returnStatement() Stmt {
	keyword := this.previous()
	var value Expr = nil
	if !this.check(SEMICOLON) {
		value = this.expression()
	}
	this.consume(SEMICOLON, "Expect ';' after return value.")
	return NewReturn(keyword, value)
}

func (this *Parser) expressionStatement() Stmt {
	expr := this.expression()
	this.consume(SEMICOLON, "Expect ';' after expression.")
	return NewExpression(expr)
}

func (this *Parser) function(kind string) *Function {
	name := this.consume(IDENTIFIER, "Expect "+kind+" name.")
	parameters, body := this.functionBody(kind)
	return NewFunction(name, parameters, body)
}

func (this *Parser) lambda(kind string) *Lambda {
	parameters, body := this.functionBody(kind)
	return NewLambda(parameters, body)
}

func (this *Parser) functionBody(kind string) ([]*Token, []Stmt) {
	// A function body starts outside any loop, so break/continue inside it
	// must belong to a loop of its own.
	enclosingLoop := this.loop
	this.loop = 0
	defer func() { this.loop = enclosingLoop }()

	this.consume(LEFT_PAREN, "Expect '(' after "+kind+" name.")
	var parameters []*Token
	if !this.check(RIGHT_PAREN) {
		for {
			if len(parameters) >= 255 {
				this.reporter.ErrorAtToken(this.peek(), "Can't have more than 255 parameters.")
			}
			parameters = append(parameters, this.consume(IDENTIFIER, "Expect parameter name."))
			if !this.match(COMMA) {
				break
			}
		}
	}
	this.consume(RIGHT_PAREN, "Expect ')' after parameters.")
	this.consume(LEFT_BRACE, "Expect '{' before "+kind+" body.")
	body := this.block()
	return parameters, body
}

func (this *Parser) block() []Stmt {
	var statements []Stmt
	for !this.check(RIGHT_BRACE) && !this.isAtEnd() {
		statements = append(statements, this.declaration()...)
	}
	this.consume(RIGHT_BRACE, "Expect '}' after block.")
	return statements
}

// assignment handles `=` targets: plain variables, `obj.field`, and
// `arr[i]` / `arr[]` (append). Everything else falls through to ternary.
func (this *Parser) assignment() Expr {
	expr := this.ternary()
	if this.match(EQUAL) {
		equals := this.previous()
		value := this.assignment()

		if v, ok := expr.(*Variable); ok {
			return NewAssign(v.name, value)
		} else if v, ok := expr.(*Index); ok {
			return NewIndexSet(v.left, v.bracket, v.index, value)
		} else if v, ok := expr.(*Get); ok {
			return NewSet(v.object, v.name, value)
		}
		this.reporter.ErrorAtToken(equals, "Invalid assignment target.")
	}
	return expr
}

// ternary parses the `cond ? then : else` operator. It is right-associative
// on the else branch, matching the book's grammar sketch in the challenges.
func (this *Parser) ternary() Expr {
	expr := this.or()
	if this.match(QUESTION) {
		thenBranch := this.expression()
		this.consume(COLON, "Expect ':' after then branch of ternary expression.")
		elseBranch := this.ternary()
		expr = NewTernary(expr, thenBranch, elseBranch)
	}
	return expr
}

func (this *Parser) or() Expr {
	expr := this.and()
	for this.match(OR) {
		operator := this.previous()
		right := this.and()
		expr = NewLogical(expr, operator, right)
	}
	return expr
}

func (this *Parser) and() Expr {
	expr := this.equality()
	for this.match(AND) {
		operator := this.previous()
		right := this.equality()
		expr = NewLogical(expr, operator, right)
	}
	return expr
}

func (this *Parser) expression() Expr {
	return this.assignment()
}

func (this *Parser) equality() Expr {
	expr := this.comparison()
	for this.match(BANG_EQUAL, EQUAL_EQUAL) {
		operator := this.previous()
		right := this.comparison()
		expr = NewBinary(expr, operator, right)
	}
	return expr
}

func (this *Parser) match(types ...TokenType) bool {
	for _, ty := range types {
		if this.check(ty) {
			this.advance()
			return true
		}
	}
	return false
}

func (this *Parser) check(ty TokenType) bool {
	if this.isAtEnd() {
		return false
	}
	return this.peek().Type == ty
}

func (this *Parser) checkNext(ty TokenType) bool {
	if this.current+1 >= len(this.tokens) {
		return false
	}
	tk := this.tokens[this.current+1]
	if tk.Type == EOF {
		return false
	}
	return tk.Type == ty
}

func (this *Parser) advance() *Token {
	if !this.isAtEnd() {
		this.current++
	}
	return this.previous()
}

func (this *Parser) isAtEnd() bool {
	return this.peek().Type == EOF
}

func (this *Parser) peek() *Token {
	return this.tokens[this.current]
}

func (this *Parser) previous() *Token {
	return this.tokens[this.current-1]
}

func (this *Parser) comparison() Expr {
	expr := this.term()
	for this.match(GREATER, GREATER_EQUAL, LESS, LESS_EQUAL) {
		operator := this.previous()
		right := this.term()
		expr = NewBinary(expr, operator, right)
	}
	return expr
}

func (this *Parser) term() Expr {
	expr := this.factor()
	for this.match(MINUS, PLUS) {
		operator := this.previous()
		right := this.factor()
		expr = NewBinary(expr, operator, right)
	}
	return expr
}

func (this *Parser) factor() Expr {
	expr := this.unary()
	for this.match(SLASH, STAR) {
		operator := this.previous()
		right := this.unary()
		expr = NewBinary(expr, operator, right)
	}
	return expr
}

func (this *Parser) unary() Expr {
	if this.match(BANG, MINUS) {
		operator := this.previous()
		right := this.unary()
		return NewUnary(operator, right)
	}
	return this.call()
}

func (this *Parser) call() Expr {
	expr := this.primary()
	for {
		if this.match(LEFT_PAREN) {
			expr = this.finishCall(expr)
		} else if this.match(DOT) {
			name := this.consume(IDENTIFIER, "Expect property name after '.'.")
			expr = NewGet(expr, name)
		} else if this.match(LEFT_BRACKET) {
			bracket := this.previous()
			var index Expr
			if !this.check(RIGHT_BRACKET) {
				index = this.assignment()
			}
			this.consume(RIGHT_BRACKET, "Expect ']' after index expression.")
			expr = NewIndex(expr, bracket, index)
		} else {
			break
		}
	}
	return expr
}

func (this *Parser) finishCall(callee Expr) Expr {
	var arguments []Expr
	if !this.check(RIGHT_PAREN) {
		for {
			if len(arguments) >= 255 {
				this.reporter.ErrorAtToken(this.peek(), "Can't have more than 255 arguments.")
			}
			arguments = append(arguments, this.assignment())
			if !this.match(COMMA) {
				break
			}
		}
	}

	paren := this.consume(RIGHT_PAREN, "Expect ')' after arguments.")
	return NewCall(callee, paren, arguments)
}

// arrayLiteral parses `[e1, e2, ...]`. An empty `[]` is allowed and yields
// a zero-length array.
func (this *Parser) arrayLiteral() Expr {
	bracket := this.previous()
	var items []Expr
	if !this.check(RIGHT_BRACKET) {
		for {
			items = append(items, this.assignment())
			if !this.match(COMMA) {
				break
			}
		}
	}
	this.consume(RIGHT_BRACKET, "Expect ']' after array elements.")
	return NewArrayLiteral(bracket, items)
}

func (this *Parser) primary() Expr {
	if this.match(FALSE) {
		return NewLiteral(false)
	}
	if this.match(TRUE) {
		return NewLiteral(true)
	}
	if this.match(NIL) {
		return NewLiteral(nil)
	}
	if this.match(NUMBER, STRING) {
		return NewLiteral(this.previous().Literal)
	}
	if this.match(SUPER) {
		keyword := this.previous()
		this.consume(DOT, "Expect '.' after 'super'.")
		method := this.consume(IDENTIFIER, "Expect superclass method name.")
		return NewSuper(keyword, method)
	}
	if this.match(THIS) {
		return NewThis(this.previous())
	}
	if this.match(IDENTIFIER) {
		return NewVariable(this.previous())
	}
	if this.match(LEFT_PAREN) {
		expr := this.expression()
		this.consume(RIGHT_PAREN, "Expect ')' after expression.")
		return NewGrouping(expr)
	}
	if this.match(LEFT_BRACKET) {
		return this.arrayLiteral()
	}
	if this.match(FUN) {
		return this.lambda("lambda")
	}

	if this.match(QUESTION) {
		panic(NewParseError(this.previous(), "Missing left-hand condition of ternary operator."))
	}
	if this.match(BANG_EQUAL, EQUAL_EQUAL) {
		panic(NewParseError(this.previous(), "Missing left-hand operand."))
	}
	if this.match(GREATER, GREATER_EQUAL, LESS, LESS_EQUAL) {
		panic(NewParseError(this.previous(), "Missing left-hand operand."))
	}
	if this.match(SLASH, STAR) {
		panic(NewParseError(this.previous(), "Missing left-hand operand."))
	}
	panic(NewParseError(this.peek(), "Expect expression."))
}

func (this *Parser) consume(ty TokenType, message string) *Token {
	if this.check(ty) {
		return this.advance()
	}
	panic(NewParseError(this.peek(), message))
}

// synchronize discards tokens until it reaches what looks like the start of
// the next statement, so one syntax error reports once instead of cascading.
func (this *Parser) synchronize() {
	this.advance()

	for !this.isAtEnd() {
		if this.previous().Type == SEMICOLON {
			return
		}
		switch this.peek().Type {
		case CLASS, FUN, VAR, FOR, IF, WHILE, PRINT, RETURN:
			return
		}
		this.advance()
	}
}
