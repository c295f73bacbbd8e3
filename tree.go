package trie

func (t *tree[V]) Size() int {
	if t == nil || t.root == nil {
		return 0
	}
	return t.size
}

func (t *tree[V]) Insert(value *V, key string) {
	if value == nil {
		panic("trie: Insert called with a nil value")
	}
	updated := t.recursiveInsert(t.root, value, key, 0)
	if !updated {
		t.size++
	}
}

func (t *tree[V]) recursiveInsert(curr *node[V], value *V, key string, depth int) bool {
	if depth == len(key) {
		updated := curr.value != nil
		curr.value = value
		return updated
	}

	next := curr.findChild(key[depth])
	if next == nil {
		// no child found, create the rest of the path
		next = newNode[V]()
		curr.addChild(key[depth], next)
	}
	return t.recursiveInsert(next, value, key, depth+1)
}

func (t *tree[V]) WordExists(key string) *V {
	curr := t.root.find(key)
	if curr == nil {
		return nil
	}
	return curr.value
}

func (t *tree[V]) PrefixExists(prefix string) bool {
	return t.root.find(prefix) != nil
}

func (t *tree[V]) Erase(key string) bool {
	if t.WordExists(key) == nil {
		return false
	}
	t.recursiveErase(t.root, key, 0)
	t.size--
	return true
}

// recursiveErase clears the value at the end of key and reports whether curr
// became prunable, so the parent can drop it on the way back up.
func (t *tree[V]) recursiveErase(curr *node[V], key string, depth int) bool {
	if depth == len(key) {
		curr.value = nil
		return curr.prunable()
	}

	idx, ok := curr.index(key[depth])
	if !ok {
		return false
	}
	if !t.recursiveErase(curr.children[idx], key, depth+1) {
		return false
	}
	curr.removeChild(idx)
	return curr.prunable()
}

func (t *tree[V]) Clear() {
	t.root.release()
	t.root = newNode[V]()
	t.size = 0
}

func (t *tree[V]) AutoComplete(prefix string) []*V {
	values := make([]*V, 0)
	curr := t.root.find(prefix)
	if curr == nil {
		return values
	}
	t.recursiveForEach(curr, func(value *V) bool {
		values = append(values, value)
		return true
	})
	return values
}

func (t *tree[V]) Traverse(visitor func(value *V)) {
	t.recursiveForEach(t.root, func(value *V) bool {
		visitor(value)
		return true
	})
}

func (t *tree[V]) ForEachPrefix(prefix string, fn func(value *V) bool) {
	curr := t.root.find(prefix)
	if curr == nil {
		return
	}
	t.recursiveForEach(curr, fn)
}

// value first, then children in ascending byte order
func (t *tree[V]) recursiveForEach(curr *node[V], fn func(value *V) bool) traverseAction {
	if curr.value != nil {
		if !fn(curr.value) {
			return traverseStop
		}
	}
	for _, child := range curr.children {
		if t.recursiveForEach(child, fn) == traverseStop {
			return traverseStop
		}
	}
	return traverseContinue
}

func (t *tree[V]) KeysWithPrefix(prefix string) []string {
	keys := make([]string, 0)
	t.WalkPrefix(prefix, func(key string, _ *V) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

func (t *tree[V]) WalkPrefix(prefix string, fn Callback[V]) {
	curr := t.root.find(prefix)
	if curr == nil {
		return
	}
	key := make([]byte, len(prefix), len(prefix)+16)
	copy(key, prefix)
	t.recursiveWalk(curr, key, fn)
}

func (t *tree[V]) recursiveWalk(curr *node[V], key []byte, fn Callback[V]) traverseAction {
	if curr.value != nil {
		if !fn(string(key), curr.value) {
			return traverseStop
		}
	}

	for i, child := range curr.children {
		if t.recursiveWalk(child, append(key, curr.keys[i]), fn) == traverseStop {
			return traverseStop
		}
	}
	return traverseContinue
}

func (t *tree[V]) Iterator() Iterator[V] {
	it := &iterator[V]{
		key:   make([]byte, 0, 16),
		depth: []*iteratorLevel[V]{{t.root, nullIdx}},
	}
	it.next()
	return it
}

func (it *iterator[V]) HasNext() bool {
	return it != nil && it.nextEntry != nil
}

func (it *iterator[V]) Next() (Entry[V], error) {
	if !it.HasNext() {
		return Entry[V]{}, ErrNoMoreEntries
	}
	cur := *it.nextEntry
	it.next()
	return cur, nil
}

// next advances to the following stored value in pre-order. A level with
// childIdx == nullIdx has not reported its own value yet.
func (it *iterator[V]) next() {
	it.nextEntry = nil

	for len(it.depth) > 0 {
		level := it.depth[len(it.depth)-1]

		if level.childIdx == nullIdx {
			level.childIdx = 0
			if level.node.value != nil {
				it.nextEntry = &Entry[V]{Key: string(it.key), Value: level.node.value}
				return
			}
			continue
		}

		if level.childIdx < len(level.node.children) {
			it.key = append(it.key, level.node.keys[level.childIdx])
			it.depth = append(it.depth, &iteratorLevel[V]{level.node.children[level.childIdx], nullIdx})
			level.childIdx++
			continue
		}

		// subtree done, go back up
		it.depth = it.depth[:len(it.depth)-1]
		if n := len(it.depth); n > 0 {
			it.key = it.key[:n-1]
		}
	}
}
