package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type testIntValue struct {
	value int64
}

func (ti *testIntValue) Type() NodeType {
	return NodeTypeInt
}

func (ti *testIntValue) Value() interface{} {
	return ti.value
}

func (ti *testIntValue) Encode() string {
	return "<int>"
}

var (
	_ = Valuer(&testIntValue{})
)

func TestValueEncode(t *testing.T) {
	testCases := []struct {
		In  Valuer
		Out string
	}{
		{NewVoidValue(), ""},
		{NewIntValue(0), "0"},
		{NewIntValue(9223372036854775807), "9223372036854775807"},
		{NewSymbolValue("+"), "+"},
		{NewSymbolValue("first"), "first"},
		{NewBoolValue(true), "#t"},
		{NewBoolValue(false), "#f"},
	}

	for i := range testCases {
		assert.Equal(t, testCases[i].Out, testCases[i].In.Encode())
	}
}

func TestCustomValuer(t *testing.T) {
	node := New(nil, &testIntValue{value: 7})
	assert.Equal(t, NodeTypeInt, node.Type())
	assert.Equal(t, int64(7), node.Value())
	assert.Equal(t, "<int>", node.Encode())
	assert.True(t, Equal(Int(7), node))
}
