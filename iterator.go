package avl

// Iterator walks the entries of a tree in key order. It is invalidated by any
// write to the tree.
type Iterator[K, V any] struct {
	t   *Tree[K, V]
	cur *node[K, V]
}

// Iterator returns an unpositioned iterator over t. Call First, Last or Seek
// before reading from it.
func (t *Tree[K, V]) Iterator() *Iterator[K, V] {
	return &Iterator[K, V]{t: t}
}

// First positions the iterator at the smallest key.
func (it *Iterator[K, V]) First() {
	it.cur = nil
	if it.t.root != nil {
		it.cur = it.t.root.min()
	}
}

// Last positions the iterator at the largest key.
func (it *Iterator[K, V]) Last() {
	it.cur = nil
	if it.t.root != nil {
		it.cur = it.t.root.max()
	}
}

// Seek positions the iterator at the smallest key greater than or equal to
// key.
func (it *Iterator[K, V]) Seek(key K) {
	it.cur = it.t.lowerBound(key)
}

// Next moves to the next larger key. Past the end the iterator is invalid.
func (it *Iterator[K, V]) Next() {
	if it.cur != nil {
		it.cur = it.cur.successor()
	}
}

// Prev moves to the next smaller key. Past the start the iterator is invalid.
func (it *Iterator[K, V]) Prev() {
	if it.cur != nil {
		it.cur = it.cur.predecessor()
	}
}

// Valid reports whether the iterator is positioned on an entry.
func (it *Iterator[K, V]) Valid() bool { return it.cur != nil }

// Key returns the key of the current entry.
func (it *Iterator[K, V]) Key() K { return it.cur.key }

// Value returns the value of the current entry.
func (it *Iterator[K, V]) Value() V { return it.cur.value }

// Depth returns the distance of the current entry from the root.
func (it *Iterator[K, V]) Depth() int { return it.cur.depth() }
