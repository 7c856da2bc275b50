package avl

// node is a single entry of the tree. Children links own the subtree below,
// parent is only a back-reference and is cleared once the node is detached.
type node[K, V any] struct {
	key   K
	value V

	parent *node[K, V]
	left   *node[K, V]
	right  *node[K, V]

	// balance is height(right) - height(left). It is within [-1, 1] whenever
	// the tree is stable and only reaches ±2 in the middle of a fix walk.
	balance int8
}

func newNode[K, V any](key K, value V, parent *node[K, V]) *node[K, V] {
	return &node[K, V]{
		key:     key,
		value:   value,
		parent:  parent,
		balance: 0,
	}
}

func (n *node[K, V]) isLeftChild() bool {
	return n.parent != nil && n.parent.left == n
}

// min returns the left-most node of the subtree rooted at n.
func (n *node[K, V]) min() *node[K, V] {
	for n.left != nil {
		n = n.left
	}
	return n
}

// max returns the right-most node of the subtree rooted at n.
func (n *node[K, V]) max() *node[K, V] {
	for n.right != nil {
		n = n.right
	}
	return n
}

// predecessor returns the node with the largest key strictly less than n's,
// or nil if n holds the smallest key.
func (n *node[K, V]) predecessor() *node[K, V] {
	if n.left != nil {
		return n.left.max()
	}

	for n.parent != nil && n.isLeftChild() {
		n = n.parent
	}
	return n.parent
}

// successor returns the node with the smallest key strictly greater than n's,
// or nil if n holds the largest key.
func (n *node[K, V]) successor() *node[K, V] {
	if n.right != nil {
		return n.right.min()
	}

	for n.parent != nil && !n.isLeftChild() {
		n = n.parent
	}
	return n.parent
}

func (n *node[K, V]) height() int {
	if n == nil {
		return 0
	}

	l, r := n.left.height(), n.right.height()
	if l > r {
		return l + 1
	}
	return r + 1
}

func (n *node[K, V]) depth() int {
	d := 0
	for p := n.parent; p != nil; p = p.parent {
		d++
	}
	return d
}

// nodeSwap exchanges the key and value stored in a and b. Links stay where
// they are and so does the balance, which describes the shape below a slot
// rather than the entry held in it.
func nodeSwap[K, V any](a, b *node[K, V]) {
	a.key, b.key = b.key, a.key
	a.value, b.value = b.value, a.value
}

// find returns the node holding key, or nil.
func (t *Tree[K, V]) find(key K) *node[K, V] {
	n := t.root
	for n != nil {
		c := t.cmp(key, n.key)
		switch {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n
		}
	}
	return nil
}

// lowerBound returns the node holding the smallest key >= key, or nil.
func (t *Tree[K, V]) lowerBound(key K) *node[K, V] {
	var candidate *node[K, V]
	n := t.root
	for n != nil {
		c := t.cmp(key, n.key)
		switch {
		case c < 0:
			candidate = n
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n
		}
	}
	return candidate
}

// lessThan returns the node holding the largest key < key, or nil.
func (t *Tree[K, V]) lessThan(key K) *node[K, V] {
	var candidate *node[K, V]
	n := t.root
	for n != nil {
		if t.cmp(n.key, key) < 0 {
			candidate = n
			n = n.right
		} else {
			n = n.left
		}
	}
	return candidate
}

// greaterThan returns the node holding the smallest key > key, or nil.
func (t *Tree[K, V]) greaterThan(key K) *node[K, V] {
	var candidate *node[K, V]
	n := t.root
	for n != nil {
		if t.cmp(n.key, key) > 0 {
			candidate = n
			n = n.left
		} else {
			n = n.right
		}
	}
	return candidate
}

// replace puts child in the place old holds under its parent (or at the
// root). old keeps its own links, the caller decides what to do with them.
func (t *Tree[K, V]) replace(old, child *node[K, V]) {
	parent := old.parent
	switch {
	case parent == nil:
		t.root = child
	case parent.left == old:
		parent.left = child
	default:
		parent.right = child
	}

	if child != nil {
		child.parent = parent
	}
}
