package ast

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Printer writes an indented, human-readable dump of a tree.
type Printer struct {
	// Color enables ANSI colors regardless of the output being a terminal.
	Color bool
}

// Print displays a human-readable representation of a node
func Print(n *Node) {
	Printer{}.Fprint(os.Stdout, n)
}

// Fprint is like Print but writes to w.
func Fprint(w io.Writer, n *Node) {
	Printer{}.Fprint(w, n)
}

// Fprint writes the dump of n to w.
func (p Printer) Fprint(w io.Writer, n *Node) {
	pal := newPalette(p.Color)
	p.printLevel(w, pal, n, 0)
}

type palette map[NodeType]*color.Color

func newPalette(enabled bool) palette {
	pal := palette{
		NodeTypeList:   color.New(color.FgCyan, color.Bold),
		NodeTypeLambda: color.New(color.FgBlue, color.Bold),
		NodeTypeInt:    color.New(color.FgYellow),
		NodeTypeSymbol: color.New(color.FgGreen),
		NodeTypeBool:   color.New(color.FgMagenta),
		NodeTypeVoid:   color.New(color.Faint),
	}
	for _, c := range pal {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return pal
}

func (pal palette) sprint(nt NodeType, s string) string {
	if c, ok := pal[nt]; ok {
		return c.Sprint(s)
	}
	return s
}

// Lines deeper than this keep the same indentation and show their level
// instead.
const maxIndentLevel = 32

func (p Printer) printLevel(w io.Writer, pal palette, n *Node, level int) {
	type frame struct {
		list  []*Node
		next  int
		level int
	}

	var stack []frame

	visit := func(n *Node, level int) {
		indent := strings.Repeat("    ", level)
		if level > maxIndentLevel {
			indent = fmt.Sprintf("%s%d| ", strings.Repeat("    ", maxIndentLevel), level)
		}
		if n == nil {
			fmt.Fprintf(w, "%s:nil\n", indent)
			return
		}
		label := pal.sprint(n.Type(), fmt.Sprintf("(%s)", n.Type()))

		switch n.Type() {
		case NodeTypeList:
			fmt.Fprintf(w, "%s%s\n", indent, label)
			stack = append(stack, frame{list: n.List(), level: level + 1})

		case NodeTypeLambda:
			fmt.Fprintf(w, "%s%s: %v\n", indent, label, n.Params())
			stack = append(stack, frame{list: n.List(), level: level + 1})

		case NodeTypeVoid:
			fmt.Fprintf(w, "%s%s\n", indent, label)

		default:
			fmt.Fprintf(w, "%s%s: %#v\n", indent, label, n.Value())
		}
	}

	visit(n, level)
	for len(stack) > 0 {
		f := &stack[len(stack)-1]
		if f.next == len(f.list) {
			stack = stack[:len(stack)-1]
			continue
		}
		child, childLevel := f.list[f.next], f.level
		f.next++
		visit(child, childLevel)
	}
}

// Encode transform a node into text representation
func Encode(n *Node) []byte {
	type frame struct {
		list   []*Node
		next   int
		lambda bool
	}

	var (
		buf   bytes.Buffer
		stack []frame
	)

	visit := func(n *Node) {
		if n == nil {
			buf.WriteString(":nil")
			return
		}
		switch n.Type() {
		case NodeTypeList:
			buf.WriteByte('(')
			stack = append(stack, frame{list: n.List()})

		case NodeTypeLambda:
			fmt.Fprintf(&buf, "(lambda (%s)", strings.Join(n.Params(), " "))
			stack = append(stack, frame{list: n.List(), lambda: true})

		default:
			buf.WriteString(n.Encode())
		}
	}

	visit(n)
	for len(stack) > 0 {
		f := &stack[len(stack)-1]
		if f.next == len(f.list) {
			buf.WriteByte(')')
			stack = stack[:len(stack)-1]
			continue
		}
		// lambda bodies follow the parameter list
		if f.next > 0 || f.lambda {
			buf.WriteByte(' ')
		}
		child := f.list[f.next]
		f.next++
		visit(child)
	}

	return buf.Bytes()
}
