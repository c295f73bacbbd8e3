package trie

import (
	"errors"
)

const (
	traverseStop traverseAction = iota
	traverseContinue
)

const nullIdx = -1

var (
	ErrNoMoreEntries = errors.New("there are no more entries in the index")
)

type (
	tree[V any] struct {
		size int
		root *node[V]
	}

	// node owns its children exclusively. value is set only on nodes that
	// terminate a stored key.
	node[V any] struct {
		value *V
		// keys is kept in ascending order, children[i] is reached by keys[i]
		keys     []byte
		children []*node[V]
	}

	// Callback is called with each stored key and its value. Returning false
	// stops the walk.
	Callback[V any] func(key string, value *V) bool

	Entry[V any] struct {
		Key   string
		Value *V
	}

	traverseAction int

	iteratorLevel[V any] struct {
		node     *node[V]
		childIdx int
	}

	iterator[V any] struct {
		key       []byte
		nextEntry *Entry[V]
		depth     []*iteratorLevel[V]
	}
)

func newNode[V any]() *node[V] {
	return &node[V]{}
}
