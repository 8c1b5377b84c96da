package sexpr

import (
	"sort"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var errUnknownTarget = errors.New("alias refers to an unknown builtin")

type binding struct {
	name string
	fn   Builtin
}

var coreBindings = []binding{
	{"+", Add},
	{"-", Sub},
	{"*", Mul},
	{"/", Div},
	{"%", Mod},

	{"<", LessThan},
	{">", MoreThan},
	{"=", Equals},
	{"==", Equals},
	{"<=", LessOrEqual},
	{">=", MoreOrEqual},

	{"sin", Sin},
	{"cos", Cos},
	{"tan", Tan},

	{"pi", Pi},
}

var longAliases = []binding{
	{"add", Add},
	{"sub", Sub},
	{"mul", Mul},
	{"div", Div},
	{"mod", Mod},
}

// Environment maps names to builtins. It is filled once when it is created
// and is read-only afterwards, so a single Environment can be shared by
// concurrent evaluations.
type Environment struct {
	st *symbolTable
}

// NewDefaultEnvironment returns an environment holding every builtin under
// its short name and its long alias.
func NewDefaultEnvironment() *Environment {
	env, err := NewEnvironment(DefaultConfig())
	if err != nil {
		panic(err.Error())
	}
	return env
}

// NewEnvironment creates an environment whose set of names is chosen by cfg.
func NewEnvironment(cfg Config) (*Environment, error) {
	excluded := make(map[string]bool, len(cfg.Exclude))
	for _, name := range cfg.Exclude {
		excluded[name] = true
	}

	known := make(map[string]Builtin)
	bindings := make([]binding, 0, len(coreBindings)+len(longAliases)+len(cfg.Aliases))

	for _, b := range coreBindings {
		known[b.name] = b.fn
		bindings = append(bindings, b)
	}
	for _, b := range longAliases {
		known[b.name] = b.fn
		if cfg.LongAliases {
			bindings = append(bindings, b)
		}
	}

	aliases := make([]string, 0, len(cfg.Aliases))
	for alias := range cfg.Aliases {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)

	for _, alias := range aliases {
		target := cfg.Aliases[alias]
		fn, ok := known[target]
		if !ok {
			return nil, errors.Wrapf(errUnknownTarget, "alias %q -> %q", alias, target)
		}
		bindings = append(bindings, binding{alias, fn})
	}

	st := newSymbolTable()
	for _, b := range bindings {
		if excluded[b.name] {
			continue
		}
		if err := st.Set(b.name, b.fn); err != nil {
			return nil, errors.Wrap(err, "building environment")
		}
	}

	log.WithFields(logrus.Fields{
		"names": len(st.n),
	}).Debug("environment ready")

	return &Environment{st: st}, nil
}

// Lookup returns the builtin bound to name.
func (env *Environment) Lookup(name string) (Builtin, bool) {
	if env == nil || env.st == nil {
		return nil, false
	}
	fn, err := env.st.Get(name)
	if err != nil {
		return nil, false
	}
	return fn, true
}

// Names returns all the bound names in lexical order.
func (env *Environment) Names() []string {
	if env == nil || env.st == nil {
		return nil
	}
	return env.st.Names()
}

// Len returns the number of bound names.
func (env *Environment) Len() int {
	if env == nil || env.st == nil {
		return 0
	}
	return len(env.st.n)
}
