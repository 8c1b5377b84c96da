package ast

// NewBool creates a node of type bool and sets it to the given value
func NewBool(v bool) *Node {
	return newNode(NodeTypeBool, v)
}

// NewSymbol creates a node of type symbol and sets it to the given name
func NewSymbol(v string) *Node {
	return newNode(NodeTypeSymbol, v)
}

// NewNumber creates a node of type number and sets it to the given value
func NewNumber(v float64) *Node {
	return newNode(NodeTypeNumber, v)
}

// NewList creates a node of type list holding the given elements in order.
// The slice is copied, later changes to it are not seen by the node.
func NewList(elems ...*Node) *Node {
	list := make([]*Node, len(elems))
	copy(list, elems)
	return newNode(NodeTypeList, list)
}

// Bool returns the value of a bool node, ok is false for any other type.
func (n *Node) Bool() (v bool, ok bool) {
	if n == nil || n.nt != NodeTypeBool {
		return false, false
	}
	return n.v.(bool), true
}

// Symbol returns the name held by a symbol node.
func (n *Node) Symbol() (v string, ok bool) {
	if n == nil || n.nt != NodeTypeSymbol {
		return "", false
	}
	return n.v.(string), true
}

// Number returns the value of a number node.
func (n *Node) Number() (v float64, ok bool) {
	if n == nil || n.nt != NodeTypeNumber {
		return 0, false
	}
	return n.v.(float64), true
}

// List returns a copy of the elements of a list node.
func (n *Node) List() ([]*Node, bool) {
	if n == nil || n.nt != NodeTypeList {
		return nil, false
	}
	elems := n.v.([]*Node)
	out := make([]*Node, len(elems))
	copy(out, elems)
	return out, true
}
