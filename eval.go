package sexpr

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/xiam/lisper/ast"
)

// Causes of an evaluation error, use errors.Is to tell them apart.
var (
	ErrEmptyExpression  = errors.New("empty expression")
	ErrFunctionNotFound = errors.New("function not found")
	ErrNilExpression    = errors.New("nil expression")
)

// EvalError is returned when an expression can't be evaluated.
type EvalError struct {
	Reason string

	err error
}

func newEvalError(err error, reason string) *EvalError {
	return &EvalError{Reason: reason, err: err}
}

func (e *EvalError) Error() string {
	return "eval error: " + e.Reason
}

// Unwrap returns the cause of the error
func (e *EvalError) Unwrap() error {
	return e.err
}

// bareSymbolArgument is passed to a builtin whose name is evaluated outside
// of a call.
var bareSymbolArgument = ast.NewBool(true)

// Eval evaluates node against env. Numbers and bools evaluate to themselves,
// a list is a call and a symbol calls the builtin it names with a single true
// argument. The first error found stops the evaluation.
func Eval(node *ast.Node, env *Environment) (*ast.Node, error) {
	switch node.Type() {
	case ast.NodeTypeNumber, ast.NodeTypeBool:
		return node, nil

	case ast.NodeTypeList:
		return evalCall(node, env)

	case ast.NodeTypeSymbol:
		name, _ := node.Symbol()

		fn, ok := env.Lookup(name)
		if !ok {
			return nil, newEvalError(ErrFunctionNotFound, fmt.Sprintf("%q is not a real expression", name))
		}

		log.WithField("symbol", name).Debug("bare symbol")
		return fn.Apply(bareSymbolArgument), nil
	}

	return nil, newEvalError(ErrNilExpression, "nothing to evaluate")
}

func evalCall(node *ast.Node, env *Environment) (*ast.Node, error) {
	if node.Len() == 0 {
		return nil, newEvalError(ErrEmptyExpression, "error reading expression, nothing to call")
	}

	head := node.At(0)

	args := make([]*ast.Node, 0, node.Len()-1)
	for i := 1; i < node.Len(); i++ {
		arg, err := Eval(node.At(i), env)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}

	name := ast.Encode(head)

	fn, ok := env.Lookup(name)
	if !ok {
		return nil, newEvalError(ErrFunctionNotFound, fmt.Sprintf("function %q not found", name))
	}

	log.WithFields(logrus.Fields{
		"op":   name,
		"argc": len(args),
	}).Debug("apply")

	return fn.Apply(ast.NewList(args...)), nil
}
