package main

import (
	"fmt"

	"github.com/xiam/lisper/lexer"
)

func main() {
	input := `
		(+ 1
			(* 2 3)
			(<= 4 5.5 true)
		)
	`

	tokens := lexer.Tokenize(input)

	for i, tok := range tokens {
		fmt.Printf("token[%d] (type: %v)\n\t-> %q\n\n", i, lexer.Classify(tok), tok)
	}
}
