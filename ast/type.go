package ast

// NodeType represents the type of an expression node
type NodeType uint8

// Node types
const (
	NodeTypeInvalid NodeType = iota
	NodeTypeBool
	NodeTypeSymbol
	NodeTypeNumber
	NodeTypeList
)

func (nt NodeType) String() string {
	s, ok := nodeTypeName[nt]
	if ok {
		return s
	}
	return nodeTypeName[NodeTypeInvalid]
}

var nodeTypeName = map[NodeType]string{
	NodeTypeInvalid: "invalid",
	NodeTypeBool:    "bool",
	NodeTypeSymbol:  "symbol",
	NodeTypeNumber:  "number",
	NodeTypeList:    "list",
}
