// Package golispconv turns trees produced by the parser into
// github.com/steelseries/golisp data, so they can be handed to that
// interpreter. Nothing is evaluated here.
package golispconv

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/steelseries/golisp"

	"github.com/xiam/sexp-front/ast"
)

// ErrStrayVoid is returned for a void marker outside of the "()" shape.
var ErrStrayVoid = errors.New("void marker outside of an empty list")

// ErrTooDeep is returned by String for trees nested deeper than
// MaxStringDepth.
var ErrTooDeep = errors.New("tree too deep to print")

// LambdaName is the name given to converted lambdas.
const LambdaName = "lambda"

// MaxStringDepth is the deepest tree String renders. golisp prints nested
// data recursively.
const MaxStringDepth = 10000

// ToData converts n into golisp data. "()" becomes golisp's empty list and
// lambdas are closed over golisp.Global.
func ToData(n *ast.Node) (*golisp.Data, error) {
	type frame struct {
		node  *ast.Node
		items []*golisp.Data
		next  int
	}

	var (
		stack  []*frame
		result *golisp.Data
	)

	emit := func(d *golisp.Data) {
		if len(stack) == 0 {
			result = d
			return
		}
		top := stack[len(stack)-1]
		top.items = append(top.items, d)
	}

	visit := func(n *ast.Node) error {
		if n == nil {
			return errors.New("nil node")
		}

		switch n.Type() {
		case ast.NodeTypeInt:
			emit(golisp.IntegerWithValue(n.Value().(int64)))

		case ast.NodeTypeSymbol:
			emit(golisp.Intern(n.Value().(string)))

		case ast.NodeTypeBool:
			emit(golisp.BooleanWithValue(n.Value().(bool)))

		case ast.NodeTypeVoid:
			return ErrStrayVoid

		case ast.NodeTypeList:
			if n.IsEmptyList() || len(n.List()) == 0 {
				emit(golisp.EmptyCons())
				return nil
			}
			stack = append(stack, &frame{node: n, items: make([]*golisp.Data, 0, len(n.List()))})

		case ast.NodeTypeLambda:
			stack = append(stack, &frame{node: n, items: make([]*golisp.Data, 0, len(n.List()))})

		default:
			return errors.Errorf("unknown node type %v", n.Type())
		}
		return nil
	}

	if err := visit(n); err != nil {
		return nil, err
	}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		list := f.node.List()
		if f.next == len(list) {
			stack = stack[:len(stack)-1]
			emit(finish(f.node, f.items))
			continue
		}
		child := list[f.next]
		f.next++
		if err := visit(child); err != nil {
			return nil, errors.Wrapf(err, "element %s", elementPath(len(stack), func(i int) int {
				return stack[i].next - 1
			}))
		}
	}
	return result, nil
}

// finish builds the datum for a list or lambda once all of its children are
// converted.
func finish(n *ast.Node, items []*golisp.Data) *golisp.Data {
	body := golisp.EmptyCons()
	if len(items) > 0 {
		body = golisp.ArrayToList(items)
	}
	if n.Type() != ast.NodeTypeLambda {
		return body
	}

	params := make([]*golisp.Data, 0, len(n.Params()))
	for _, name := range n.Params() {
		params = append(params, golisp.Intern(name))
	}
	return golisp.FunctionWithNameParamsBodyAndParent(LambdaName, golisp.ArrayToList(params), body, golisp.Global)
}

// elementPath formats the child indexes leading to a node, like "1.0.2".
func elementPath(depth int, index func(int) int) string {
	parts := make([]string, depth)
	for i := range parts {
		parts[i] = strconv.Itoa(index(i))
	}
	return strings.Join(parts, ".")
}

// String renders n the way golisp prints data.
func String(n *ast.Node) (string, error) {
	if depth := ast.Depth(n); depth > MaxStringDepth {
		return "", errors.Wrapf(ErrTooDeep, "depth %d, limit %d", depth, MaxStringDepth)
	}
	d, err := ToData(n)
	if err != nil {
		return "", err
	}
	return golisp.String(d), nil
}
