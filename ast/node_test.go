package ast

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNode(t *testing.T) {
	node := NewNumber(99)
	assert.Equal(t, NodeTypeNumber, node.Type())
	assert.False(t, node.IsList())
	assert.Equal(t, 0, node.Len())
	assert.Nil(t, node.At(0))
}

func TestNodeList(t *testing.T) {
	elems := []*Node{NewSymbol("+"), NewNumber(1), NewNumber(1)}

	list := NewList(elems...)
	assert.True(t, list.IsList())
	assert.Equal(t, 3, list.Len())

	// the list owns a copy of its elements
	elems[0] = NewSymbol("-")
	sym, ok := list.At(0).Symbol()
	assert.True(t, ok)
	assert.Equal(t, "+", sym)

	got, ok := list.List()
	assert.True(t, ok)
	got[1] = NewBool(false)
	n, ok := list.At(1).Number()
	assert.True(t, ok)
	assert.Equal(t, 1.0, n)

	assert.Nil(t, list.At(3))
	assert.Nil(t, list.At(-1))
}

func TestNodeEqual(t *testing.T) {
	testCases := []struct {
		A, B  *Node
		Equal bool
	}{
		{NewNumber(1), NewNumber(1), true},
		{NewNumber(1), NewNumber(2), false},
		{NewNumber(math.NaN()), NewNumber(math.NaN()), false},
		{NewBool(true), NewBool(true), true},
		{NewBool(true), NewSymbol("true"), false},
		{NewSymbol("+"), NewSymbol("+"), true},
		{NewList(), NewList(), true},
		{
			NewList(NewSymbol("+"), NewList(NewNumber(1))),
			NewList(NewSymbol("+"), NewList(NewNumber(1))),
			true,
		},
		{
			NewList(NewSymbol("+"), NewNumber(1)),
			NewList(NewSymbol("+"), NewNumber(1), NewNumber(2)),
			false,
		},
		{nil, nil, true},
		{nil, NewList(), false},
	}

	for i := range testCases {
		assert.Equal(t, testCases[i].Equal, Equal(testCases[i].A, testCases[i].B), "case %d", i)
	}
}
