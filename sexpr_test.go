package sexpr

import (
	"errors"
	"strings"
	"sync"
	"testing"
	"testing/iotest"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiam/lisper/ast"
	"github.com/xiam/lisper/parser"
)

func encodeAll(nodes []*ast.Node) []string {
	out := make([]string, 0, len(nodes))
	for i := range nodes {
		out = append(out, ast.Encode(nodes[i]))
	}
	return out
}

func TestEvalString(t *testing.T) {
	env := NewDefaultEnvironment()

	testCases := []struct {
		In  string
		Out []string
	}{
		{``, []string{}},
		{`(+ 1 1)`, []string{"2"}},
		{`(+ 1) (* 2 2)`, []string{"1", "4"}},
		{`(+ 1)(* 2 2)`, []string{"1", "4"}},
		{`(+ 1 (* 2 3))(< 1 5 2)`, []string{"7", "false"}},
		{"(+ 1 2)\n(< 1 5 2)\n\t(cos 0) pi 7", []string{"3", "false", "1", "3.141592653589793", "7"}},
	}

	for i := range testCases {
		values, err := EvalString(testCases[i].In, env)
		require.NoError(t, err)
		assert.Equal(t, testCases[i].Out, encodeAll(values))
	}
}

func TestEvalStringErrors(t *testing.T) {
	env := NewDefaultEnvironment()

	{
		values, err := EvalString(`(+ 1 1) (+ 1`, env)
		assert.Nil(t, values)
		assert.ErrorIs(t, err, parser.ErrMissingClose)

		var parseErr *parser.Error
		assert.True(t, errors.As(err, &parseErr))
	}

	{
		_, err := EvalString(`) (+ 1 1)`, env)
		assert.ErrorIs(t, err, parser.ErrUnexpectedToken)
	}

	{
		values, err := EvalString(`(+ 1 1) (nope 2) (+ 2 2)`, env)
		assert.Nil(t, values)
		assert.ErrorIs(t, err, ErrFunctionNotFound)
		assert.Contains(t, err.Error(), "form #2")

		var evalErr *EvalError
		require.True(t, errors.As(err, &evalErr))
		assert.Contains(t, evalErr.Reason, "nope")
	}

	{
		_, err := EvalString(`()`, env)
		assert.ErrorIs(t, err, ErrEmptyExpression)
	}
}

func TestParseInput(t *testing.T) {
	nodes, err := Parse([]byte(`(+ 1 (* 2 3)) true`))
	require.NoError(t, err)
	assert.Equal(t, []string{"(+,1,(*,2,3))", "true"}, encodeAll(nodes))
}

func TestReader(t *testing.T) {
	env := NewDefaultEnvironment()

	{
		r := NewReader(strings.NewReader("(+ 52 13)\n(- 52 13)\n"))
		values, err := r.Eval(env)
		require.NoError(t, err)
		assert.Equal(t, []string{"65", "39"}, encodeAll(values))
	}

	{
		r := NewReader(iotest.ErrReader(errors.New("broken pipe")))
		_, err := r.Eval(env)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "reading input")
	}
}

func TestSharedEnvironment(t *testing.T) {
	env := NewDefaultEnvironment()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				values, err := EvalString(`(+ 1 (* 2 3)) (< 1 5 2)`, env)
				if assert.NoError(t, err) {
					assert.Equal(t, []string{"7", "false"}, encodeAll(values))
				}
			}
		}()
	}
	wg.Wait()
}

func TestLogger(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	SetLogger(logger)
	defer SetLogger(nil)

	env := NewDefaultEnvironment()
	hook.Reset()

	_, err := EvalString(`(<= 1 2) pi`, env)
	require.NoError(t, err)

	messages := []string{}
	for _, entry := range hook.AllEntries() {
		messages = append(messages, entry.Message)
	}
	assert.Equal(t, []string{"apply", "compare", "bare symbol"}, messages)

	last := hook.LastEntry()
	assert.Equal(t, "pi", last.Data["symbol"])
}
