package main

import (
	"log"
	"os"

	"github.com/xiam/lisper/ast"
	"github.com/xiam/lisper/lexer"
	"github.com/xiam/lisper/parser"
)

func main() {
	input := `(+ (sin (/ pi 2)) (* 2 3) (< 1 5 2)) (cos 0)`

	nodes, err := parser.ParseAll(lexer.Tokenize(input))
	if err != nil {
		log.Fatal("parser.ParseAll:", err)
	}

	for _, node := range nodes {
		ast.Print(os.Stdout, node)
	}
}
