package avl

import (
	"github.com/pkg/errors"
)

var (
	// ErrUnbalanced is returned by Validate when a node's balance factor is out
	// of range or does not match the heights of its subtrees.
	ErrUnbalanced = errors.New("avl: tree is unbalanced")

	// ErrMisordered is returned by Validate when keys are not strictly ascending
	// in order.
	ErrMisordered = errors.New("avl: keys out of order")

	// ErrBrokenLink is returned by Validate when a parent back-reference does
	// not point at the node holding the child link.
	ErrBrokenLink = errors.New("avl: inconsistent parent link")

	// ErrLengthMismatch is returned by Validate when the recorded length differs
	// from the number of reachable nodes.
	ErrLengthMismatch = errors.New("avl: length mismatch")
)

// Validate checks every structural invariant of the tree: parent links,
// strict key order, balance factors within [-1, 1] and equal to the height
// difference of the subtrees, and the recorded length. The first violation
// found is returned, wrapping one of the Err* values above.
func (t *Tree[K, V]) Validate() error {
	if t.root != nil && t.root.parent != nil {
		return errors.Wrapf(ErrBrokenLink, "root %v has a parent", t.root.key)
	}

	count := 0
	var prev *node[K, V]
	if _, err := t.check(t.root, nil, &prev, &count); err != nil {
		return err
	}

	if count != t.length {
		return errors.Wrapf(ErrLengthMismatch, "counted %d nodes, recorded %d", count, t.length)
	}

	return nil
}

// check validates the subtree at n in order and returns its height.
func (t *Tree[K, V]) check(n, up *node[K, V], prev **node[K, V], count *int) (int, error) {
	if n == nil {
		return 0, nil
	}
	if n.parent != up {
		return 0, errors.Wrapf(ErrBrokenLink, "node %v", n.key)
	}

	lh, err := t.check(n.left, n, prev, count)
	if err != nil {
		return 0, err
	}

	if *prev != nil && t.cmp((*prev).key, n.key) >= 0 {
		return 0, errors.Wrapf(ErrMisordered, "%v is not less than %v", (*prev).key, n.key)
	}
	*prev = n
	*count++

	rh, err := t.check(n.right, n, prev, count)
	if err != nil {
		return 0, err
	}

	if n.balance < -1 || n.balance > 1 {
		return 0, errors.Wrapf(ErrUnbalanced, "node %v has balance %d", n.key, n.balance)
	}
	if int(n.balance) != rh-lh {
		return 0, errors.Wrapf(ErrUnbalanced, "node %v has balance %d, heights are %d/%d", n.key, n.balance, lh, rh)
	}

	if lh > rh {
		return lh + 1, nil
	}
	return rh + 1, nil
}
