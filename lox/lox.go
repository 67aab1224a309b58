package lox

import (
	"fmt"
	"io"
)

// Lox wires together the Scanner, Parser, Resolver, and Interpreter into a
// single reusable session. Unlike the reference interpreter, which kept
// hadError/hadRuntimeError and the global Interpreter as package-level
// state, everything here lives on the value so a program can drive more
// than one Lox session (e.g. a test suite) without cross-talk.
type Lox struct {
	reporter    *ErrorReporter
	interpreter *Interpreter
}

// New creates a Lox session that writes diagnostics and print output to out.
func New(out io.Writer) *Lox {
	reporter := NewErrorReporter(out)
	return &Lox{
		reporter:    reporter,
		interpreter: NewInterpreter(reporter, out),
	}
}

func (l *Lox) HadError() bool {
	return l.reporter.HadError()
}

func (l *Lox) HadRuntimeError() bool {
	return l.reporter.HadRuntimeError()
}

// ResetError clears the session's error flags. The REPL calls this between
// lines so a bad line doesn't poison the rest of the session.
func (l *Lox) ResetError() {
	l.reporter.Reset()
}

// Run scans, parses, resolves, and interprets source. Resolution is skipped
// if scanning or parsing reported an error, and execution is skipped if any
// of the three front-end stages did.
func (l *Lox) Run(source string) {
	scanner := NewScanner(source, l.reporter)
	tokens := scanner.ScanTokens()

	parser := NewParser(tokens, l.reporter)
	statements := parser.Parse()
	if l.reporter.HadError() {
		return
	}

	resolver := NewResolver(l.interpreter, l.reporter)
	resolver.Resolve(statements)
	if l.reporter.HadError() {
		return
	}

	l.interpreter.Interpret(statements)
}

// Parse runs only the scan+parse stages, returning the statement list and
// whether a syntax error occurred. RunWithAst (the --ast dev-tooling flag)
// uses it to get the statements it prints before resolving and executing
// them.
func (l *Lox) Parse(source string) ([]Stmt, bool) {
	scanner := NewScanner(source, l.reporter)
	tokens := scanner.ScanTokens()

	parser := NewParser(tokens, l.reporter)
	statements := parser.Parse()
	return statements, l.reporter.HadError()
}

// RunWithAst parses source, prints each top-level statement's AST
// rendering to out, then (if parsing succeeded) resolves and executes it.
func (l *Lox) RunWithAst(source string) {
	statements, hadError := l.Parse(source)
	for _, stmt := range statements {
		fmt.Fprintln(l.reporter.out, PrintStmt(stmt))
	}
	if hadError {
		return
	}

	resolver := NewResolver(l.interpreter, l.reporter)
	resolver.Resolve(statements)
	if l.reporter.HadError() {
		return
	}

	l.interpreter.Interpret(statements)
}
