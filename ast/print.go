package ast

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Print writes a human-readable, indented representation of a node
func Print(w io.Writer, n *Node) {
	printLevel(w, n, 0)
}

func printLevel(w io.Writer, n *Node, level int) {
	indent := strings.Repeat("    ", level)
	if n == nil {
		fmt.Fprintf(w, "%s(nil)\n", indent)
		return
	}
	fmt.Fprintf(w, "%s(%s): ", indent, n.Type())
	switch n.Type() {
	case NodeTypeList:
		fmt.Fprintf(w, "[%d]\n", n.Len())
		for i := 0; i < n.Len(); i++ {
			printLevel(w, n.At(i), level+1)
		}

	case NodeTypeBool, NodeTypeSymbol, NodeTypeNumber:
		fmt.Fprintf(w, "%s\n", Encode(n))

	default:
		panic("unknown node type")
	}
}

// Encode transforms a node into its text representation. Lists are written
// as "(a,b,c)"; this form is meant for display and is not read back by the
// parser as the same list.
func Encode(n *Node) string {
	var sb strings.Builder
	encodeNode(&sb, n)
	return sb.String()
}

func encodeNode(sb *strings.Builder, n *Node) {
	switch n.Type() {
	case NodeTypeList:
		sb.WriteByte('(')
		for i, elem := range n.v.([]*Node) {
			if i > 0 {
				sb.WriteByte(',')
			}
			encodeNode(sb, elem)
		}
		sb.WriteByte(')')

	case NodeTypeBool:
		sb.WriteString(strconv.FormatBool(n.v.(bool)))

	case NodeTypeSymbol:
		sb.WriteString(n.v.(string))

	case NodeTypeNumber:
		sb.WriteString(formatNumber(n.v.(float64)))
	}
}

func formatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
