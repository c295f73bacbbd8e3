package trie

// Index maps string keys to values owned by the caller. The index keeps only
// the pointer it was given: it never copies, frees or replaces *V itself, so a
// value must stay valid for as long as its key is present or a pointer
// returned by the index may still be dereferenced.
//
// An Index is not safe for concurrent use. Readers may run concurrently only
// while no Insert, Erase or Clear is in flight.
type Index[V any] interface {
	// Insert stores value under key, silently replacing any pointer already
	// stored there. value must not be nil.
	Insert(value *V, key string)
	// WordExists returns the value stored under key, or nil.
	WordExists(key string) *V
	// PrefixExists reports whether some stored key starts with prefix.
	PrefixExists(prefix string) bool
	// AutoComplete returns the values of all keys starting with prefix in
	// lexicographic key order.
	AutoComplete(prefix string) []*V
	// ForEachPrefix calls fn with the values of all keys starting with
	// prefix in key order, until fn returns false.
	ForEachPrefix(prefix string, fn func(value *V) bool)
	KeysWithPrefix(prefix string) []string
	WalkPrefix(prefix string, fn Callback[V])
	// Traverse calls visitor for every stored value in key order. visitor
	// must not modify the index.
	Traverse(visitor func(value *V))
	Iterator() Iterator[V]
	// Erase forgets key and prunes nodes left without value or children.
	// It returns false if key was not stored.
	Erase(key string) bool
	Clear()
	Size() int
}

type Iterator[V any] interface {
	HasNext() bool
	Next() (Entry[V], error)
}

func New[V any]() Index[V] {
	return &tree[V]{root: newNode[V]()}
}
