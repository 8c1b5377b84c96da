package sexpr

import (
	"sort"

	"github.com/pkg/errors"
)

var (
	errDuplicateName = errors.New("name is already bound")
	errUndefinedName = errors.New("undefined name")
)

type symbolTable struct {
	n map[string]Builtin
}

func newSymbolTable() *symbolTable {
	return &symbolTable{
		n: make(map[string]Builtin),
	}
}

func (st *symbolTable) Set(name string, fn Builtin) error {
	if _, ok := st.n[name]; ok {
		return errors.Wrapf(errDuplicateName, "%q", name)
	}
	st.n[name] = fn
	return nil
}

func (st *symbolTable) Get(name string) (Builtin, error) {
	if fn, ok := st.n[name]; ok {
		return fn, nil
	}
	return nil, errUndefinedName
}

func (st *symbolTable) Names() []string {
	names := make([]string, 0, len(st.n))
	for name := range st.n {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
