package compiler

import "fmt"

// ---------------------------------------------------------------------------
// Token symbols for the Plaid lexer
// ---------------------------------------------------------------------------

// Symbol identifies the grammatical class of a token. The parser dispatches
// on this tag; the set is closed.
type Symbol int

const (
	// Special tokens
	SymbolEndOfFile Symbol = iota

	// Literals
	SymbolIdentifier    // foo, Bar, foo_1
	SymbolKeyword       // at: (one selector segment, colon stripped)
	SymbolNumber        // 42, 3.14, 1.5e-3
	SymbolStringLiteral // 'hello'
	SymbolComment       // "a comment"

	// Delimiters
	SymbolLParen      // (
	SymbolRParen      // )
	SymbolLBracket    // [
	SymbolRBracket    // ]
	SymbolLBrace      // {
	SymbolRBrace      // }
	SymbolPeriod      // .
	SymbolSemicolon   // ;
	SymbolHash        // #
	SymbolLessThan    // <
	SymbolGreaterThan // >
	SymbolDollarSign  // $
	SymbolBang        // !
)

var symbolNames = map[Symbol]string{
	SymbolEndOfFile:     "EOF",
	SymbolIdentifier:    "IDENTIFIER",
	SymbolKeyword:       "KEYWORD",
	SymbolNumber:        "NUMBER",
	SymbolStringLiteral: "STRING",
	SymbolComment:       "COMMENT",
	SymbolLParen:        "(",
	SymbolRParen:        ")",
	SymbolLBracket:      "[",
	SymbolRBracket:      "]",
	SymbolLBrace:        "{",
	SymbolRBrace:        "}",
	SymbolPeriod:        ".",
	SymbolSemicolon:     ";",
	SymbolHash:          "#",
	SymbolLessThan:      "<",
	SymbolGreaterThan:   ">",
	SymbolDollarSign:    "$",
	SymbolBang:          "!",
}

func (s Symbol) String() string {
	if name, ok := symbolNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Symbol(%d)", int(s))
}

// Token represents one lexical token. Keyword tokens carry the selector
// segment without the trailing colon; StringLiteral tokens carry the decoded
// value without the delimiting quotes.
type Token struct {
	Symbol Symbol
	Value  string
	Pos    Position // start position
}

func (t Token) String() string {
	if t.Symbol == SymbolEndOfFile {
		return "EOF"
	}
	if len(t.Value) > 20 {
		return fmt.Sprintf("%s(%q...)", t.Symbol, t.Value[:20])
	}
	return fmt.Sprintf("%s(%q)", t.Symbol, t.Value)
}

// LexerError reports a scan failure at a source position. Once a lexer has
// returned one, the token stream is poisoned and must not be pulled further.
type LexerError struct {
	Message string
	Line    int
	Column  int
}

func (e *LexerError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Message)
}
