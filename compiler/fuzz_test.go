package compiler

import (
	"testing"
)

// ---------------------------------------------------------------------------
// FuzzLexer: ensure the lexer never panics on arbitrary input.
// Lexical errors are acceptable; panics are not.
// ---------------------------------------------------------------------------

func FuzzLexer(f *testing.F) {
	// Seed corpus: valid Plaid snippets covering diverse token types
	seeds := []string{
		// Basic tokens
		`( ) [ ] { } . ; # < > $ !`,
		// Numbers
		`42`, `0`, `007`, `3.14`, `0.5`, `1e10`, `1.5e-3`, `2.0E+5`,
		// Strings
		`'hello'`, `'hello world'`, `''`, `'it''s'`,
		// Identifiers
		`foo`, `FooBar`, `foo123`, `snake_case`,
		// Keywords
		`at:`, `put:`, `ifTrue:`, `at:put:`,
		// Comments
		`"this is a comment"`, `foo "this is a comment" bar`,
		// Complete statements
		`'a'.'b'.`,
		`arr at: 1 put: 'hello' .`,
		`Transcript show: 'It''s here'.`,
		// Edge cases
		`$`, `#`, `'unterminated`, `"unterminated`, `3.`, `12eAbc`,
		// Unicode
		`'こんにちは'`, `café`,
		// Empty
		``,
		// Whitespace only
		`   `, "\t\n\r",
	}

	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, data string) {
		defer func() {
			if r := recover(); r != nil {
				t.Fatalf("lexer panicked on input %q: %v", data, r)
			}
		}()

		l := NewLexer(data)
		for i := 0; i < len(data)+100; i++ {
			tok, err := l.NextToken()
			if err != nil || tok.Symbol == SymbolEndOfFile {
				break
			}
		}
	})
}
