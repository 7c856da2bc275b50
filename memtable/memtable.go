// Package memtable is an ordered in-memory key-value table. Keys are kept
// sorted by bytes.Compare in an AVL tree, so listing them is a plain in-order
// walk and every Put, Get and Delete is O(log n).
//
// A Memtable is not safe for concurrent use.
package memtable

import (
	"bytes"

	"github.com/pkg/errors"

	"github.com/yeqown/avl"
)

// Memtable holds key-value pairs ordered by key and tracks how many key and
// value bytes it stores.
type Memtable struct {
	tree *avl.Tree[[]byte, []byte]
	size int

	// full is set once size reaches the threshold so the event is logged once.
	full bool

	opt *options
}

// New creates an empty memtable.
func New(options ...Option) *Memtable {
	opt := defaultOptions()
	for _, o := range options {
		o.apply(opt)
	}

	return &Memtable{
		tree: avl.New[[]byte, []byte](bytes.Compare),
		size: 0,
		opt:  opt,
	}
}

// Put stores a copy of key and value. An existing key is overwritten.
func (m *Memtable) Put(key, value []byte) error {
	if len(key) == 0 {
		return ErrEmptyKey
	}
	if len(key) > int(m.opt.maxKeyBytes) || len(value) > int(m.opt.maxValueBytes) {
		return errors.Wrapf(ErrKeyOrValueTooLong, "key %d bytes, value %d bytes", len(key), len(value))
	}

	if old, ok := m.tree.Get(key); ok {
		m.size += len(value) - len(old)
	} else {
		m.size += len(key) + len(value)
	}
	m.tree.Insert(clone(key), clone(value))

	switch full := m.Full(); {
	case full && !m.full:
		m.full = true
		m.opt.logger.Log("memtable reached %d bytes with %d keys, threshold is %d",
			m.size, m.tree.Len(), m.opt.sizeThreshold)
	case !full:
		m.full = false
	}

	return nil
}

// Get returns a copy of the value stored for key, or ErrKeyNotFound.
func (m *Memtable) Get(key []byte) ([]byte, error) {
	value, ok := m.tree.Get(key)
	if !ok {
		return nil, ErrKeyNotFound
	}

	return clone(value), nil
}

// Delete removes key. Deleting an absent key is a no-op.
func (m *Memtable) Delete(key []byte) {
	value, ok := m.tree.Get(key)
	if !ok {
		return
	}

	m.size -= len(key) + len(value)
	m.tree.Remove(key)
	if m.full && !m.Full() {
		m.full = false
	}
}

// Len returns the number of keys.
func (m *Memtable) Len() int {
	return m.tree.Len()
}

// Size returns the number of key and value bytes held.
func (m *Memtable) Size() int {
	return m.size
}

// Full reports whether Size has reached the configured threshold.
func (m *Memtable) Full() bool {
	return m.size >= m.opt.sizeThreshold
}

// ListKeys returns a copy of every key in ascending order.
func (m *Memtable) ListKeys() [][]byte {
	keys := make([][]byte, 0, m.tree.Len())
	m.tree.Ascend(func(key, _ []byte) bool {
		keys = append(keys, clone(key))
		return true
	})
	return keys
}

// Range calls fn for every pair in ascending key order until fn returns
// false. The slices passed to fn must not be modified.
func (m *Memtable) Range(fn func(key, value []byte) bool) {
	m.tree.Ascend(fn)
}

// Reset drops every pair.
func (m *Memtable) Reset() {
	m.tree.Clear()
	m.size = 0
	m.full = false
}

func clone(b []byte) []byte {
	if b == nil {
		return nil
	}

	c := make([]byte, len(b))
	copy(c, b)
	return c
}
