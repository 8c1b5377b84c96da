package parser

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/xiam/lisper/ast"
	"github.com/xiam/lisper/lexer"
)

const (
	literalTrue  = "true"
	literalFalse = "false"
)

// Parse reads one expression from the beginning of tokens and returns it
// along with the tokens that follow it.
func Parse(tokens []string) (*ast.Node, []string, error) {
	if len(tokens) == 0 {
		return nil, nil, newError(ErrUnexpectedEOF, "could not get token")
	}

	first, rest := tokens[0], tokens[1:]

	switch lexer.Classify(first) {
	case lexer.TokenOpenExpression:
		return parseExpression(rest)

	case lexer.TokenCloseExpression:
		return nil, nil, newError(ErrUnexpectedToken, "found unexpected )")
	}

	return ParseToken(first), rest, nil
}

// parseExpression collects expressions until the matching ")" is found.
func parseExpression(tokens []string) (*ast.Node, []string, error) {
	elems := []*ast.Node{}

	for {
		if len(tokens) == 0 {
			return nil, nil, newError(ErrMissingClose, "error reading token, missing )")
		}

		if lexer.Classify(tokens[0]) == lexer.TokenCloseExpression {
			return ast.NewList(elems...), tokens[1:], nil
		}

		node, rest, err := Parse(tokens)
		if err != nil {
			return nil, nil, err
		}

		elems = append(elems, node)
		tokens = rest
	}
}

// ParseAll parses every expression in tokens, in order.
func ParseAll(tokens []string) ([]*ast.Node, error) {
	nodes := []*ast.Node{}

	for len(tokens) > 0 {
		node, rest, err := Parse(tokens)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
		tokens = rest
	}

	return nodes, nil
}

// ParseToken turns a single atom into a node: "true" and "false" become
// bools, anything that reads as a 64-bit float becomes a number and
// everything else is a symbol.
func ParseToken(tok string) *ast.Node {
	switch tok {
	case literalTrue:
		return ast.NewBool(true)
	case literalFalse:
		return ast.NewBool(false)
	}

	if f64, ok := parseNumber(tok); ok {
		return ast.NewNumber(f64)
	}

	return ast.NewSymbol(tok)
}

func parseNumber(tok string) (float64, bool) {
	if !isDecimal(tok) {
		return 0, false
	}
	f64, err := strconv.ParseFloat(tok, 64)
	if err == nil {
		return f64, true
	}
	// "1e400" is still a number, it just does not fit.
	var numErr *strconv.NumError
	if errors.As(err, &numErr) && numErr.Err == strconv.ErrRange && math.IsInf(f64, 0) {
		return f64, true
	}
	return 0, false
}

// isDecimal rejects the hexadecimal and underscore-separated forms that
// strconv.ParseFloat accepts on top of plain decimal notation.
func isDecimal(tok string) bool {
	if strings.Contains(tok, "_") {
		return false
	}
	if len(tok) > 0 && (tok[0] == '+' || tok[0] == '-') {
		tok = tok[1:]
	}
	if len(tok) > 1 && tok[0] == '0' && (tok[1] == 'x' || tok[1] == 'X') {
		return false
	}
	return true
}
