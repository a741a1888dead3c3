package ast

// NodeType represents the type of the AST node
type NodeType uint16

// Node types
const (
	nodeTypeValue  NodeType = 128
	nodeTypeVector NodeType = 256

	NodeTypeVoid   = nodeTypeValue | 1
	NodeTypeInt    = nodeTypeValue | 2
	NodeTypeBool   = nodeTypeValue | 4
	NodeTypeSymbol = nodeTypeValue | 8

	NodeTypeList   = nodeTypeVector | 1
	NodeTypeLambda = nodeTypeVector | 2
)

func (nt NodeType) String() string {
	s, ok := nodeTypeName[nt]
	if ok {
		return s
	}
	return ""
}

var nodeTypeName = map[NodeType]string{
	NodeTypeVoid:   "void",
	NodeTypeInt:    "int",
	NodeTypeBool:   "bool",
	NodeTypeSymbol: "symbol",
	NodeTypeList:   "list",
	NodeTypeLambda: "lambda",
}
