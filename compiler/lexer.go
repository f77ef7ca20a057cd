package compiler

import (
	"fmt"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ---------------------------------------------------------------------------
// Lexer: Tokenizer for Plaid syntax
// ---------------------------------------------------------------------------

// Lexer tokenizes Plaid source code. It owns its cursor exclusively; one
// lexer scans one source text, synchronously, and is not safe for
// concurrent use.
type Lexer struct {
	input   string
	pos     int  // current position in input
	readPos int  // reading position (after current char)
	ch      rune // current character, 0 at end of input
	line    int  // line of the current character (1-based)
	col     int  // column of the current character (1-based)

	// KeepComments surfaces Comment tokens instead of discarding them.
	// Tooling that preserves source layout wants them; the parser does not.
	KeepComments bool
}

// NewLexer creates a new lexer for the given input.
func NewLexer(input string) *Lexer {
	l := &Lexer{
		input: input,
		line:  1,
		col:   1,
	}
	l.readChar()
	return l
}

// NewLexerFromFile reads path fully into memory and returns a lexer over
// its contents.
func NewLexerFromFile(path string) (*Lexer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}
	return NewLexer(string(data)), nil
}

// readChar advances to the next character. Line and column always describe
// the current (unconsumed) character.
func (l *Lexer) readChar() {
	switch l.ch {
	case '\n':
		l.line++
		l.col = 1
	case 0:
		// Initial load, or already at end of input.
	default:
		l.col++
	}

	if l.readPos >= len(l.input) {
		l.ch = 0
		l.pos = l.readPos
		return
	}
	r, size := utf8.DecodeRuneInString(l.input[l.readPos:])
	l.ch = r
	l.pos = l.readPos
	l.readPos += size
}

// peekChar returns the next character without consuming it.
func (l *Lexer) peekChar() rune {
	if l.readPos >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPos:])
	return r
}

// peekSecond returns the character after peekChar without consuming anything.
func (l *Lexer) peekSecond() rune {
	if l.readPos >= len(l.input) {
		return 0
	}
	_, size := utf8.DecodeRuneInString(l.input[l.readPos:])
	if l.readPos+size >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPos+size:])
	return r
}

// position returns the position of the current character.
func (l *Lexer) position() Position {
	return Position{
		Offset: l.pos,
		Line:   l.line,
		Column: l.col,
	}
}

func errorAt(pos Position, format string, args ...any) *LexerError {
	return &LexerError{
		Message: fmt.Sprintf(format, args...),
		Line:    pos.Line,
		Column:  pos.Column,
	}
}

// NextToken returns the next token, or a *LexerError on the first invalid
// construct. After an error the stream is poisoned; after EndOfFile it keeps
// returning EndOfFile.
func (l *Lexer) NextToken() (Token, error) {
	for {
		l.skipWhitespace()

		pos := l.position()

		switch {
		case l.ch == 0:
			return Token{Symbol: SymbolEndOfFile, Pos: pos}, nil

		case isDigit(l.ch):
			return l.readNumber(pos), nil

		case isLetter(l.ch):
			return l.readIdentifierOrKeyword(pos)

		case l.ch == '\'':
			return l.readString(pos)

		case l.ch == '"':
			tok, err := l.readComment(pos)
			if err != nil {
				return Token{}, err
			}
			if l.KeepComments {
				return tok, nil
			}
			continue

		case l.ch == '.':
			l.readChar()
			return Token{Symbol: SymbolPeriod, Value: ".", Pos: pos}, nil

		case l.ch == '(':
			l.readChar()
			return Token{Symbol: SymbolLParen, Value: "(", Pos: pos}, nil

		case l.ch == ')':
			l.readChar()
			return Token{Symbol: SymbolRParen, Value: ")", Pos: pos}, nil

		case l.ch == '[':
			l.readChar()
			return Token{Symbol: SymbolLBracket, Value: "[", Pos: pos}, nil

		case l.ch == ']':
			l.readChar()
			return Token{Symbol: SymbolRBracket, Value: "]", Pos: pos}, nil

		case l.ch == '{':
			l.readChar()
			return Token{Symbol: SymbolLBrace, Value: "{", Pos: pos}, nil

		case l.ch == '}':
			l.readChar()
			return Token{Symbol: SymbolRBrace, Value: "}", Pos: pos}, nil

		case l.ch == ';':
			l.readChar()
			return Token{Symbol: SymbolSemicolon, Value: ";", Pos: pos}, nil

		case l.ch == '#':
			l.readChar()
			return Token{Symbol: SymbolHash, Value: "#", Pos: pos}, nil

		case l.ch == '<':
			l.readChar()
			return Token{Symbol: SymbolLessThan, Value: "<", Pos: pos}, nil

		case l.ch == '>':
			l.readChar()
			return Token{Symbol: SymbolGreaterThan, Value: ">", Pos: pos}, nil

		case l.ch == '$':
			l.readChar()
			return Token{Symbol: SymbolDollarSign, Value: "$", Pos: pos}, nil

		case l.ch == '!':
			l.readChar()
			return Token{Symbol: SymbolBang, Value: "!", Pos: pos}, nil

		default:
			ch := l.ch
			l.readChar()
			return Token{}, errorAt(pos, "unexpected character %q", ch)
		}
	}
}

// skipWhitespace skips a maximal run of whitespace. Safe to call with
// nothing to skip.
func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

// readIdentifierOrKeyword reads an identifier or one keyword-selector
// segment. The dispatcher has already confirmed the current character is a
// letter. A trailing colon makes the token a Keyword; the colon is consumed
// but not part of the value.
func (l *Lexer) readIdentifierOrKeyword(pos Position) (Token, error) {
	start := l.pos
	l.readChar()

	for {
		switch {
		case l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r':
			return Token{Symbol: SymbolIdentifier, Value: l.input[start:l.pos], Pos: pos}, nil

		case isLetter(l.ch) || isDigit(l.ch) || l.ch == '_':
			l.readChar()

		case l.ch == ':':
			value := l.input[start:l.pos]
			l.readChar()
			return Token{Symbol: SymbolKeyword, Value: value, Pos: pos}, nil

		case l.ch == 0:
			// An identifier running into end of input is still a
			// complete identifier.
			return Token{Symbol: SymbolIdentifier, Value: l.input[start:l.pos], Pos: pos}, nil

		default:
			return Token{}, errorAt(l.position(), "unexpected character %q in identifier", l.ch)
		}
	}
}

// readString reads a string literal. The delimiting quotes are not part of
// the value; a doubled quote is the sole escape and decodes to one quote.
// Carriage returns are stripped so embedded newlines are line-feed only.
func (l *Lexer) readString(pos Position) (Token, error) {
	l.readChar() // consume opening '

	var sb strings.Builder
	for l.ch != 0 {
		if l.ch == '\'' {
			l.readChar()
			if l.ch == '\'' {
				// Escaped quote
				sb.WriteRune('\'')
				l.readChar()
				continue
			}
			return Token{Symbol: SymbolStringLiteral, Value: sb.String(), Pos: pos}, nil
		}
		c := l.ch
		l.readChar()
		if c != '\r' {
			sb.WriteRune(c)
		}
	}

	return Token{}, errorAt(pos, "unterminated string constant: %s", sb.String())
}

// readComment reads a comment. There is no escape mechanism; the first
// closing double quote terminates it.
func (l *Lexer) readComment(pos Position) (Token, error) {
	l.readChar() // consume opening "

	var sb strings.Builder
	for l.ch != '"' && l.ch != 0 {
		c := l.ch
		l.readChar()
		if c != '\r' {
			sb.WriteRune(c)
		}
	}

	if l.ch == 0 {
		return Token{}, errorAt(pos, "unterminated comment: %s", sb.String())
	}
	l.readChar() // consume closing "

	return Token{Symbol: SymbolComment, Value: sb.String(), Pos: pos}, nil
}

// readNumber reads a numeric literal as raw text. Numeric interpretation is
// the evaluator's job. A dot is consumed only when a digit follows it, so a
// statement-terminating period stays available for the next token; an
// exponent marker is consumed only when a well-formed signed digit run
// follows it.
func (l *Lexer) readNumber(pos Position) Token {
	start := l.pos

	for isDigit(l.ch) {
		l.readChar()
	}

	if l.ch == '.' && isDigit(l.peekChar()) {
		l.readChar() // consume .
		for isDigit(l.ch) {
			l.readChar()
		}
	}

	if l.ch == 'e' || l.ch == 'E' {
		next := l.peekChar()
		if isDigit(next) || ((next == '+' || next == '-') && isDigit(l.peekSecond())) {
			l.readChar()
			if l.ch == '+' || l.ch == '-' {
				l.readChar()
			}
			for isDigit(l.ch) {
				l.readChar()
			}
		}
	}

	return Token{Symbol: SymbolNumber, Value: l.input[start:l.pos], Pos: pos}
}

// Helper functions

func isLetter(r rune) bool {
	return unicode.IsLetter(r)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// Tokenize returns all tokens from the input, comments discarded. The
// EndOfFile token is included as the final element.
func Tokenize(input string) ([]Token, error) {
	l := NewLexer(input)
	var tokens []Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Symbol == SymbolEndOfFile {
			return tokens, nil
		}
	}
}
