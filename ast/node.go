package ast

// Node is a single expression: a bool, a symbol, a number or a list of
// other nodes. Nodes are never modified after they are created.
type Node struct {
	nt NodeType
	v  interface{}
}

func newNode(nt NodeType, v interface{}) *Node {
	return &Node{
		nt: nt,
		v:  v,
	}
}

// Type returns the type of the node
func (n *Node) Type() NodeType {
	if n == nil {
		return NodeTypeInvalid
	}
	return n.nt
}

// Len returns the number of elements of a list node, zero for anything else.
func (n *Node) Len() int {
	if n.Type() != NodeTypeList {
		return 0
	}
	return len(n.v.([]*Node))
}

// At returns the i-th element of a list node, or nil if there is no such
// element.
func (n *Node) At(i int) *Node {
	if n.Type() != NodeTypeList {
		return nil
	}
	elems := n.v.([]*Node)
	if i < 0 || i >= len(elems) {
		return nil
	}
	return elems[i]
}

// IsList returns true if the node is of type list
func (n *Node) IsList() bool {
	return n.Type() == NodeTypeList
}

func (n *Node) String() string {
	return Encode(n)
}

// Equal reports whether a and b are the same tree. Numbers are compared with
// ==, so NaN is never equal to anything.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.nt != b.nt {
		return false
	}
	if a.nt != NodeTypeList {
		return a.v == b.v
	}
	la, lb := a.v.([]*Node), b.v.([]*Node)
	if len(la) != len(lb) {
		return false
	}
	for i := range la {
		if !Equal(la[i], lb[i]) {
			return false
		}
	}
	return true
}
