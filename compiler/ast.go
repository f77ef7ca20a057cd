package compiler

// ---------------------------------------------------------------------------
// AST: node skeleton for the Plaid parser
// ---------------------------------------------------------------------------
//
// The parser is not implemented yet. These node types fix the shape the
// parser will build into; nothing constructs them today.

// Position represents a source location.
type Position struct {
	Offset int // byte offset
	Line   int // 1-based line number
	Column int // 1-based column number
}

// Span represents a range in source code.
type Span struct {
	Start Position
	End   Position
}

// Node is the interface implemented by all AST nodes.
type Node interface {
	Span() Span
	node() // marker method
}

// EmptyNode represents an empty program or statement.
type EmptyNode struct {
	SpanVal Span
}

func (n *EmptyNode) Span() Span { return n.SpanVal }
func (n *EmptyNode) node()      {}

// ExpressionNode represents a yet-unclassified expression.
type ExpressionNode struct {
	SpanVal Span
}

func (n *ExpressionNode) Span() Span { return n.SpanVal }
func (n *ExpressionNode) node()      {}

// IdentifierNode represents a variable reference.
type IdentifierNode struct {
	SpanVal Span
	Name    string
}

func (n *IdentifierNode) Span() Span { return n.SpanVal }
func (n *IdentifierNode) node()      {}

// AssignmentNode represents an assignment to a variable.
type AssignmentNode struct {
	SpanVal    Span
	Variable   string
	Expression Node
}

func (n *AssignmentNode) Span() Span { return n.SpanVal }
func (n *AssignmentNode) node()      {}

// TemporariesNode represents a temporary-variable declaration list.
type TemporariesNode struct {
	SpanVal   Span
	Variables []string
}

func (n *TemporariesNode) Span() Span { return n.SpanVal }
func (n *TemporariesNode) node()      {}
