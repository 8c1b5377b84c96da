package sexpr

import (
	"io"

	"github.com/pkg/errors"

	"github.com/xiam/lisper/ast"
	"github.com/xiam/lisper/lexer"
	"github.com/xiam/lisper/parser"
)

// Reader evaluates the expressions read from an io.Reader.
type Reader struct {
	r io.Reader
}

// NewReader returns a Reader that reads its input from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// Eval reads the whole input and evaluates every expression in it.
func (r *Reader) Eval(env *Environment) ([]*ast.Node, error) {
	in, err := io.ReadAll(r.r)
	if err != nil {
		return nil, errors.Wrap(err, "reading input")
	}
	return EvalString(string(in), env)
}

// Parse returns the trees of every expression in the input.
func Parse(in []byte) ([]*ast.Node, error) {
	return parser.ParseAll(lexer.Tokenize(string(in)))
}

// EvalString evaluates every expression in the input, in order, and returns
// their values. It stops at the first expression that fails.
func EvalString(in string, env *Environment) ([]*ast.Node, error) {
	nodes, err := Parse([]byte(in))
	if err != nil {
		return nil, err
	}

	values := make([]*ast.Node, 0, len(nodes))
	for i := range nodes {
		value, err := Eval(nodes[i], env)
		if err != nil {
			return nil, errors.Wrapf(err, "form #%d", i+1)
		}
		values = append(values, value)
	}

	return values, nil
}
