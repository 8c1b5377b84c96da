package lexer

import (
	"strings"
)

// Tokenize splits the input into tokens. Parentheses always become tokens of
// their own; everything else is separated by whitespace. Tokenize never
// fails, malformed input is left for the parser to reject.
func Tokenize(in string) []string {
	in = strings.ReplaceAll(in, openExpression, " "+openExpression+" ")
	in = strings.ReplaceAll(in, closeExpression, " "+closeExpression+" ")
	return strings.Fields(in)
}
