package ast

import (
	"fmt"
)

// Valuer represents a value interface
type Valuer interface {
	Type() NodeType
	Value() interface{}
	Encode() string
}

type nodeValue struct {
	t NodeType
	v interface{}
}

func newNodeValue(t NodeType, v interface{}) *nodeValue {
	return &nodeValue{
		t: t,
		v: v,
	}
}

func (n *nodeValue) Type() NodeType {
	return n.t
}

func (n *nodeValue) Value() interface{} {
	return n.v
}

func (n *nodeValue) Encode() string {
	switch n.t {
	case NodeTypeVoid:
		return ""
	case NodeTypeInt:
		return fmt.Sprintf("%d", n.v)
	case NodeTypeSymbol:
		return fmt.Sprintf("%s", n.v)
	case NodeTypeBool:
		if n.v.(bool) {
			return "#t"
		}
		return "#f"
	}

	panic("unreachable")
}

// NewVoidValue creates the marker value of an explicitly empty list
func NewVoidValue() Valuer {
	return newNodeValue(NodeTypeVoid, nil)
}

// NewIntValue creates a value of type int and sets it to the given value
func NewIntValue(v int64) Valuer {
	return newNodeValue(NodeTypeInt, v)
}

// NewSymbolValue creates a value of type symbol and sets it to the given name
func NewSymbolValue(v string) Valuer {
	return newNodeValue(NodeTypeSymbol, v)
}

// NewBoolValue creates a value of type bool. The reader has no boolean
// syntax, this exists for evaluators that build their own trees.
func NewBoolValue(v bool) Valuer {
	return newNodeValue(NodeTypeBool, v)
}

var _ = Valuer(&nodeValue{})
