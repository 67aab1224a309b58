package lox

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scanAll(t *testing.T, source string) ([]*Token, *ErrorReporter) {
	t.Helper()
	var out bytes.Buffer
	reporter := NewErrorReporter(&out)
	tokens := NewScanner(source, reporter).ScanTokens()
	return tokens, reporter
}

func tokenTypes(tokens []*Token) []TokenType {
	types := make([]TokenType, len(tokens))
	for i, tk := range tokens {
		types[i] = tk.Type
	}
	return types
}

func TestScannerSingleCharacterTokens(t *testing.T) {
	tokens, reporter := scanAll(t, "(){}[],.-+;:?*")
	require.False(t, reporter.HadError())
	assert.Equal(t, []TokenType{
		LEFT_PAREN, RIGHT_PAREN, LEFT_BRACE, RIGHT_BRACE, LEFT_BRACKET,
		RIGHT_BRACKET, COMMA, DOT, MINUS, PLUS, SEMICOLON, COLON, QUESTION,
		STAR, EOF,
	}, tokenTypes(tokens))
}

func TestScannerTwoCharacterOperators(t *testing.T) {
	tokens, reporter := scanAll(t, "!= == <= >= ! = < >")
	require.False(t, reporter.HadError())
	assert.Equal(t, []TokenType{
		BANG_EQUAL, EQUAL_EQUAL, LESS_EQUAL, GREATER_EQUAL, BANG, EQUAL,
		LESS, GREATER, EOF,
	}, tokenTypes(tokens))
}

func TestScannerFractionalNumber(t *testing.T) {
	tokens, reporter := scanAll(t, "12.34")
	require.False(t, reporter.HadError())
	require.Len(t, tokens, 2)
	assert.Equal(t, NUMBER, tokens[0].Type)
	assert.Equal(t, 12.34, tokens[0].Literal)
}

func TestScannerTrailingDotIsNotConsumed(t *testing.T) {
	// "1." is not a valid fractional literal (no digit after the dot), so
	// the dot must scan separately from the number.
	tokens, reporter := scanAll(t, "1.")
	require.False(t, reporter.HadError())
	assert.Equal(t, []TokenType{NUMBER, DOT, EOF}, tokenTypes(tokens))
}

func TestScannerString(t *testing.T) {
	tokens, reporter := scanAll(t, `"hello world"`)
	require.False(t, reporter.HadError())
	require.Len(t, tokens, 2)
	assert.Equal(t, "hello world", tokens[0].Literal)
}

func TestScannerUnterminatedString(t *testing.T) {
	_, reporter := scanAll(t, `"unterminated`)
	assert.True(t, reporter.HadError())
}

func TestScannerLineComment(t *testing.T) {
	tokens, reporter := scanAll(t, "1 // this is a comment\n2")
	require.False(t, reporter.HadError())
	assert.Equal(t, []TokenType{NUMBER, NUMBER, EOF}, tokenTypes(tokens))
}

func TestScannerBlockComment(t *testing.T) {
	tokens, reporter := scanAll(t, "1 /* skip\nthis entirely */ 2")
	require.False(t, reporter.HadError())
	assert.Equal(t, []TokenType{NUMBER, NUMBER, EOF}, tokenTypes(tokens))
	assert.Equal(t, 2, tokens[1].Line)
}

func TestScannerUnterminatedBlockComment(t *testing.T) {
	_, reporter := scanAll(t, "/* never closes")
	assert.True(t, reporter.HadError())
}

func TestScannerKeywordsAndIdentifiers(t *testing.T) {
	tokens, reporter := scanAll(t, "var break continue foo")
	require.False(t, reporter.HadError())
	assert.Equal(t, []TokenType{VAR, BREAK, CONTINUE, IDENTIFIER, EOF}, tokenTypes(tokens))
}

func TestScannerUnexpectedCharacter(t *testing.T) {
	_, reporter := scanAll(t, "@")
	assert.True(t, reporter.HadError())
}
