package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/xiam/lisper/ast"
	"github.com/xiam/lisper/lexer"
	"github.com/xiam/lisper/parser"
)

func printTree(node *ast.Node) {
	printIndentedTree(node, 0)
}

func printIndentedTree(node *ast.Node, indentationLevel int) {
	indent := strings.Repeat("  ", indentationLevel)
	if node.IsList() {
		fmt.Printf("%s<%s>\n", indent, node.Type())
		children, _ := node.List()
		for i := range children {
			printIndentedTree(children[i], indentationLevel+1)
		}
		fmt.Printf("%s</%s>\n", indent, node.Type())
		return
	}
	fmt.Printf("%s<%s>%v</%s>\n", indent, node.Type(), node, node.Type())
}

func main() {
	input := `(+ (sin (/ pi 2)) (* 2 3) (< 1 5 2) true)`

	root, _, err := parser.Parse(lexer.Tokenize(input))
	if err != nil {
		log.Fatal("parser.Parse:", err)
	}

	printTree(root)
}
