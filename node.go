package trie

import (
	"sort"
)

// index returns the position of c in n.keys, or the position it would be
// inserted at when absent.
func (n *node[V]) index(c byte) (int, bool) {
	idx := sort.Search(len(n.keys), func(i int) bool {
		return n.keys[i] >= c
	})
	return idx, idx < len(n.keys) && n.keys[idx] == c
}

func (n *node[V]) findChild(c byte) *node[V] {
	if idx, ok := n.index(c); ok {
		return n.children[idx]
	}
	return nil
}

// addChild links child under c. c must not be present yet.
func (n *node[V]) addChild(c byte, child *node[V]) {
	idx, _ := n.index(c)

	n.keys = append(n.keys, 0)
	n.children = append(n.children, nil)

	// shift right & insert key
	copy(n.keys[idx+1:], n.keys[idx:])
	copy(n.children[idx+1:], n.children[idx:])
	n.keys[idx] = c
	n.children[idx] = child
}

func (n *node[V]) removeChild(idx int) {
	last := len(n.keys) - 1

	copy(n.keys[idx:], n.keys[idx+1:])
	copy(n.children[idx:], n.children[idx+1:])
	n.children[last] = nil
	n.keys = n.keys[:last]
	n.children = n.children[:last]
}

func (n *node[V]) isLeaf() bool {
	return len(n.children) == 0
}

// prunable reports whether the node no longer leads to any stored key.
func (n *node[V]) prunable() bool {
	return n.value == nil && n.isLeaf()
}

// find the node reached by following prefix, nil if the path breaks
func (n *node[V]) find(prefix string) *node[V] {
	curr := n
	for i := 0; i < len(prefix); i++ {
		curr = curr.findChild(prefix[i])
		if curr == nil {
			return nil
		}
	}
	return curr
}

// release unlinks the whole subtree bottom-up. Referenced values are only
// forgotten, never touched.
func (n *node[V]) release() {
	for i, child := range n.children {
		child.release()
		n.children[i] = nil
	}
	n.keys = nil
	n.children = nil
	n.value = nil
}
