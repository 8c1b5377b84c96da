package sexpr

import (
	"math"

	"github.com/sirupsen/logrus"

	"github.com/xiam/lisper/ast"
)

// Builtin is an operation that can be bound to a name in an Environment.
// Apply receives the already evaluated arguments packed into a single list
// and always returns a value, it never fails.
type Builtin interface {
	Apply(args *ast.Node) *ast.Node
}

// BuiltinFunc is an adapter to allow the use of ordinary functions as
// builtins.
type BuiltinFunc func(args *ast.Node) *ast.Node

// Apply calls fn(args).
func (fn BuiltinFunc) Apply(args *ast.Node) *ast.Node {
	return fn(args)
}

// Arithmetic. The accumulator takes the value of the first argument if it is
// a number, every later number is folded into it and anything that is not a
// number is skipped.
var (
	Add = fold(func(acc, n float64) float64 { return acc + n })
	Sub = fold(func(acc, n float64) float64 { return acc - n })
	Mul = fold(func(acc, n float64) float64 { return acc * n })
	Div = fold(func(acc, n float64) float64 { return acc / n })
	Mod = fold(math.Mod)
)

// Comparators. Only the last pair of adjacent numbers decides the result:
// (< 1 5 2) is false. Fewer than two numbers yield false.
var (
	LessThan    = compare("<", func(a, b float64) bool { return a < b })
	MoreThan    = compare(">", func(a, b float64) bool { return a > b })
	Equals      = compare("=", func(a, b float64) bool { return a == b })
	LessOrEqual = compare("<=", func(a, b float64) bool { return a <= b })
	MoreOrEqual = compare(">=", func(a, b float64) bool { return a >= b })
)

// Trigonometry, on the first argument only.
var (
	Sin = unary(math.Sin)
	Cos = unary(math.Cos)
	Tan = unary(math.Tan)
)

// Pi ignores its arguments.
var Pi = BuiltinFunc(func(*ast.Node) *ast.Node {
	return ast.NewNumber(math.Pi)
})

func fold(op func(acc, n float64) float64) BuiltinFunc {
	return func(args *ast.Node) *ast.Node {
		acc := 0.0
		for i := 0; i < args.Len(); i++ {
			n, ok := args.At(i).Number()
			if !ok {
				continue
			}
			if i == 0 {
				acc = n
				continue
			}
			acc = op(acc, n)
		}
		return ast.NewNumber(acc)
	}
}

func compare(name string, op func(a, b float64) bool) BuiltinFunc {
	return func(args *ast.Node) *ast.Node {
		var prev float64
		seen, res := false, false
		for i := 0; i < args.Len(); i++ {
			n, ok := args.At(i).Number()
			if !ok {
				continue
			}
			if seen {
				res = op(prev, n)
				log.WithFields(logrus.Fields{
					"op":     name,
					"a":      prev,
					"b":      n,
					"result": res,
				}).Debug("compare")
			}
			prev, seen = n, true
		}
		return ast.NewBool(res)
	}
}

func unary(fn func(float64) float64) BuiltinFunc {
	return func(args *ast.Node) *ast.Node {
		n, ok := args.At(0).Number()
		if !ok {
			return ast.NewNumber(0)
		}
		return ast.NewNumber(fn(n))
	}
}
