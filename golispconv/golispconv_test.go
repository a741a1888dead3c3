package golispconv

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/steelseries/golisp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiam/sexp-front/ast"
	"github.com/xiam/sexp-front/parser"
)

func TestToData(t *testing.T) {
	root, err := parser.ParseString(`(first (list 1 (+ 2 3) 9))`)
	require.NoError(t, err)

	d, err := ToData(root)
	require.NoError(t, err)

	require.True(t, golisp.ListP(d))
	assert.Equal(t, 2, golisp.Length(d))
	assert.True(t, golisp.SymbolP(golisp.Car(d)))
	assert.Equal(t, "first", golisp.StringValue(golisp.Car(d)))

	inner := golisp.Cadr(d)
	require.True(t, golisp.ListP(inner))
	assert.Equal(t, 4, golisp.Length(inner))
	assert.Equal(t, "list", golisp.StringValue(golisp.Car(inner)))
	assert.True(t, golisp.IntegerP(golisp.Cadr(inner)))
	assert.Equal(t, int64(1), golisp.IntegerValue(golisp.Cadr(inner)))

	sum := golisp.Caddr(inner)
	assert.Equal(t, 3, golisp.Length(sum))
	assert.Equal(t, "+", golisp.StringValue(golisp.Car(sum)))
	assert.Equal(t, int64(3), golisp.IntegerValue(golisp.Caddr(sum)))
}

func TestToDataEmptyList(t *testing.T) {
	root, err := parser.ParseString(`(a () b)`)
	require.NoError(t, err)

	d, err := ToData(root)
	require.NoError(t, err)

	assert.Equal(t, 3, golisp.Length(d))
	assert.True(t, golisp.NilP(golisp.Cadr(d)))
}

func TestToDataReservedNodes(t *testing.T) {
	{
		d, err := ToData(ast.Bool(true))
		require.NoError(t, err)
		assert.True(t, golisp.BooleanValue(d))
	}

	{
		lambda := ast.Lambda([]string{"a", "b"}, ast.List(ast.Symbol("+"), ast.Symbol("a"), ast.Symbol("b")))
		d, err := ToData(lambda)
		require.NoError(t, err)
		assert.True(t, golisp.FunctionP(d))
	}
}

func TestToDataErrors(t *testing.T) {
	_, err := ToData(ast.Void())
	assert.True(t, errors.Is(err, ErrStrayVoid))

	_, err = ToData(ast.List(ast.Int(1), ast.Void()))
	assert.True(t, errors.Is(err, ErrStrayVoid))

	_, err = ToData(ast.Lambda([]string{"x"}, ast.Void()))
	assert.True(t, errors.Is(err, ErrStrayVoid))

	_, err = ToData(nil)
	assert.Error(t, err)
}

func TestToDataErrorPath(t *testing.T) {
	_, err := ToData(ast.List(ast.Int(1), ast.List(ast.Symbol("a"), ast.Void())))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrStrayVoid))
	assert.Equal(t, "element 1.1: void marker outside of an empty list", err.Error())
}

func TestToDataDeep(t *testing.T) {
	const depth = 2000000

	root := ast.List(ast.Int(1))
	for i := 1; i < depth; i++ {
		root = ast.List(root)
	}

	d, err := ToData(root)
	require.NoError(t, err)

	levels := 0
	for d != nil && golisp.PairP(d) {
		levels++
		d = golisp.Car(d)
	}
	assert.Equal(t, depth, levels)
	assert.True(t, golisp.IntegerP(d))
	assert.Equal(t, int64(1), golisp.IntegerValue(d))
}

func TestString(t *testing.T) {
	testCases := []struct {
		In  string
		Out string
	}{
		{`(+ 1 2)`, `(+ 1 2)`},
		{`()`, `()`},
		{`(a () b)`, `(a () b)`},
	}

	for i := range testCases {
		root, err := parser.ParseString(testCases[i].In)
		require.NoError(t, err)

		s, err := String(root)
		require.NoError(t, err)
		assert.Equal(t, testCases[i].Out, s)
	}
}

func TestStringTooDeep(t *testing.T) {
	root := ast.List(ast.Int(1))
	for i := 1; i < MaxStringDepth+1; i++ {
		root = ast.List(root)
	}

	_, err := String(root)
	assert.True(t, errors.Is(err, ErrTooDeep))

	_, err = ToData(root)
	assert.NoError(t, err)
}
