package lexer

// TokenType represents the kind of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenInvalid         TokenType = iota
	TokenOpenExpression            // Open parenthesis: "("
	TokenCloseExpression           // Close parenthesis: ")"
	TokenAtom                      // Anything else: "+", "1.5", "true"
)

const (
	openExpression  = "("
	closeExpression = ")"
)

var tokenNames = map[TokenType]string{
	TokenInvalid:         "invalid",
	TokenOpenExpression:  "open_expression",
	TokenCloseExpression: "close_expression",
	TokenAtom:            "atom",
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}

// Classify returns the type of a token produced by Tokenize.
func Classify(tok string) TokenType {
	switch tok {
	case "":
		return TokenInvalid
	case openExpression:
		return TokenOpenExpression
	case closeExpression:
		return TokenCloseExpression
	}
	return TokenAtom
}
