package ast

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/xiam/sexp-front/lexer"
)

var errNotAVector = errors.New("nodes of type value can't accept children")

// Node represents a leaf or a branch of the AST. A node owns its children,
// there are no references back to the parent.
type Node struct {
	nt  NodeType
	tok *lexer.Token
	v   interface{}

	params []string
}

func newNode(nt NodeType, tok *lexer.Token, v interface{}) *Node {
	return &Node{
		nt:  nt,
		v:   v,
		tok: tok,
	}
}

// New creates and returns an orphaned node based on the given token
func New(tok *lexer.Token, v Valuer) *Node {
	return newNode(v.Type(), tok, v)
}

// NewList creates and returns a node of type "list"
func NewList(tok *lexer.Token, children ...*Node) *Node {
	return newNode(NodeTypeList, tok, append([]*Node{}, children...))
}

// NewLambda creates and returns a node of type "lambda". The reader never
// produces lambdas, they are built by evaluators.
func NewLambda(tok *lexer.Token, params []string, body ...*Node) *Node {
	node := newNode(NodeTypeLambda, tok, append([]*Node{}, body...))
	node.params = append([]string{}, params...)
	return node
}

// Void returns a void marker without a token.
func Void() *Node {
	return New(nil, NewVoidValue())
}

// Int returns an integer node without a token.
func Int(v int64) *Node {
	return New(nil, NewIntValue(v))
}

// Symbol returns a symbol node without a token.
func Symbol(name string) *Node {
	return New(nil, NewSymbolValue(name))
}

// Bool returns a boolean node without a token.
func Bool(v bool) *Node {
	return New(nil, NewBoolValue(v))
}

// List returns a list node without a token.
func List(children ...*Node) *Node {
	return NewList(nil, children...)
}

// Lambda returns a lambda node without a token.
func Lambda(params []string, body ...*Node) *Node {
	return NewLambda(nil, params, body...)
}

// PushValue appends a new value to the node
func (n *Node) PushValue(tok *lexer.Token, v Valuer) (*Node, error) {
	node := New(tok, v)
	if err := n.Push(node); err != nil {
		return nil, err
	}
	return node, nil
}

// PushList appends a new list to the node
func (n *Node) PushList(tok *lexer.Token) (*Node, error) {
	node := NewList(tok)
	if err := n.Push(node); err != nil {
		return nil, err
	}
	return node, nil
}

// Token returns the token associated to the node
func (n Node) Token() *lexer.Token {
	return n.tok
}

// Type returns the type of the node
func (n Node) Type() NodeType {
	return n.nt
}

// Value returns the value of the node
func (n Node) Value() interface{} {
	if n.v == nil {
		return nil
	}
	if _, ok := n.v.(Valuer); ok {
		return n.v.(Valuer).Value()
	}
	return n.v
}

// Encode returns the encoded value of the node
func (n Node) Encode() string {
	if n.v == nil {
		return ""
	}
	if _, ok := n.v.(Valuer); ok {
		return n.v.(Valuer).Encode()
	}
	return ""
}

// List returns all the children elements of the node. For lambdas those are
// the body forms.
func (n *Node) List() []*Node {
	if !n.IsVector() {
		return nil
	}
	return n.v.([]*Node)
}

// Params returns the parameter names of a lambda.
func (n *Node) Params() []string {
	return n.params
}

func (n Node) String() string {
	switch n.nt {
	case NodeTypeList, NodeTypeLambda:
		return fmt.Sprintf("(%v)[%d]", n.nt, len(n.v.([]*Node)))
	case NodeTypeVoid:
		return fmt.Sprintf("(%v)", n.nt)
	}
	return fmt.Sprintf("(%v): %v", n.nt, n.Value())
}

// Push appends a child node to a parent node of type "list" or "lambda".
func (n *Node) Push(node *Node) error {
	if n.IsVector() {
		n.v = append(n.v.([]*Node), node)
		return nil
	}
	return errNotAVector
}

// IsValue returns true if the node is of type value
func (n *Node) IsValue() bool {
	return n.nt&nodeTypeValue > 0
}

// IsVector returns true if the node is of type vector
func (n *Node) IsVector() bool {
	return n.nt&nodeTypeVector > 0
}

// IsEmptyList reports whether n is the encoding of "()": a list holding a
// single void marker.
func (n *Node) IsEmptyList() bool {
	if n == nil || n.nt != NodeTypeList {
		return false
	}
	list := n.List()
	return len(list) == 1 && list[0] != nil && list[0].nt == NodeTypeVoid
}

// Equal compares two trees by shape and payload. Tokens are ignored.
func Equal(a, b *Node) bool {
	type pair struct {
		a, b *Node
	}

	stack := []pair{{a, b}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if p.a == nil || p.b == nil {
			if p.a != p.b {
				return false
			}
			continue
		}
		if !sameNode(p.a, p.b) {
			return false
		}
		al, bl := p.a.List(), p.b.List()
		for i := range al {
			stack = append(stack, pair{al[i], bl[i]})
		}
	}
	return true
}

// sameNode compares two nodes without looking into their children, other
// than counting them.
func sameNode(a, b *Node) bool {
	if a.nt != b.nt {
		return false
	}
	if a.IsValue() {
		return a.Value() == b.Value()
	}
	if len(a.params) != len(b.params) {
		return false
	}
	for i := range a.params {
		if a.params[i] != b.params[i] {
			return false
		}
	}
	return len(a.List()) == len(b.List())
}

// Depth returns how many lists are nested at the deepest point of the tree. A
// leaf has depth zero.
func Depth(n *Node) int {
	type frame struct {
		node  *Node
		depth int
	}

	max := 0
	stack := []frame{{n, 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.node == nil || !f.node.IsVector() {
			continue
		}
		depth := f.depth + 1
		if depth > max {
			max = depth
		}
		for _, child := range f.node.List() {
			stack = append(stack, frame{child, depth})
		}
	}
	return max
}
