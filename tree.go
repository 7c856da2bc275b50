package avl

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/constraints"
)

type ordered = constraints.Ordered

// Tree is an ordered map from K to V kept height balanced.
//
// Write operations are not safe for concurrent use, and neither are reads
// running alongside a write.
type Tree[K, V any] struct {
	root   *node[K, V]
	length int
	cmp    func(K, K) int

	log *logrus.Logger
}

// New creates an empty tree ordering keys by cmp, which returns a negative
// number, zero or a positive number when a is less than, equal to or greater
// than b.
func New[K, V any](cmp func(a, b K) int, options ...Option) *Tree[K, V] {
	if cmp == nil {
		panic("avl: nil compare function")
	}

	opt := defaultOptions()
	for _, o := range options {
		o.apply(opt)
	}

	return &Tree[K, V]{
		root:   nil,
		length: 0,
		cmp:    cmp,
		log:    opt.logger,
	}
}

// NewOrdered creates an empty tree for keys with a natural order.
func NewOrdered[K ordered, V any](options ...Option) *Tree[K, V] {
	return New[K, V](compare[K], options...)
}

func compare[K ordered](a, b K) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Len returns the number of keys in the tree.
func (t *Tree[K, V]) Len() int {
	return t.length
}

// IsEmpty reports whether the tree holds no keys.
func (t *Tree[K, V]) IsEmpty() bool {
	return t.root == nil
}

// Height returns the number of nodes on the longest root to leaf path.
func (t *Tree[K, V]) Height() int {
	return t.root.height()
}

// Get returns the value stored for key. ok is false if the key is absent.
func (t *Tree[K, V]) Get(key K) (value V, ok bool) {
	n := t.find(key)
	if n == nil {
		return value, false
	}
	return n.value, true
}

// Contains reports whether key is in the tree.
func (t *Tree[K, V]) Contains(key K) bool {
	return t.find(key) != nil
}

// Min returns the smallest key and its value.
func (t *Tree[K, V]) Min() (key K, value V, ok bool) {
	if t.root == nil {
		return key, value, false
	}
	n := t.root.min()
	return n.key, n.value, true
}

// Max returns the largest key and its value.
func (t *Tree[K, V]) Max() (key K, value V, ok bool) {
	if t.root == nil {
		return key, value, false
	}
	n := t.root.max()
	return n.key, n.value, true
}

// Predecessor returns the entry with the largest key strictly less than key.
// key itself does not need to be in the tree.
func (t *Tree[K, V]) Predecessor(key K) (K, V, bool) {
	return entry(t.lessThan(key))
}

// Successor returns the entry with the smallest key strictly greater than key.
// key itself does not need to be in the tree.
func (t *Tree[K, V]) Successor(key K) (K, V, bool) {
	return entry(t.greaterThan(key))
}

func entry[K, V any](n *node[K, V]) (key K, value V, ok bool) {
	if n == nil {
		return key, value, false
	}
	return n.key, n.value, true
}

// Ascend calls fn for every entry in ascending key order until fn returns
// false. fn must not modify the tree.
func (t *Tree[K, V]) Ascend(fn func(key K, value V) bool) {
	if t.root == nil {
		return
	}

	for n := t.root.min(); n != nil; n = n.successor() {
		if !fn(n.key, n.value) {
			return
		}
	}
}

// Keys returns every key in ascending order.
func (t *Tree[K, V]) Keys() []K {
	keys := make([]K, 0, t.length)
	t.Ascend(func(key K, _ V) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// Clear removes every entry from the tree.
func (t *Tree[K, V]) Clear() {
	t.root = nil
	t.length = 0
}
