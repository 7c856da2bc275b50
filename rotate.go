package avl

import (
	"fmt"

	"github.com/pkg/errors"
)

// direction selects which way rotate turns a parent/grandparent pair.
type direction uint8

const (
	// rotateRight lifts the left child of the grandparent.
	rotateRight direction = iota
	// rotateLeft lifts the right child of the grandparent.
	rotateLeft
)

func (d direction) String() string {
	switch d {
	case rotateRight:
		return "right"
	case rotateLeft:
		return "left"
	default:
		return fmt.Sprintf("direction(%d)", uint8(d))
	}
}

// rotate moves parent into the place of grandparent. parent must be the left
// child of grandparent for rotateRight and the right child for rotateLeft.
//
//	      g                p
//	     / \              / \
//	    p   z   right    x   g
//	   / \     ------>      / \
//	  x   y                y   z
//
// Balances are left untouched, callers set them for the case at hand.
func (t *Tree[K, V]) rotate(grandparent, parent *node[K, V], dir direction) {
	if parent == nil || parent.parent != grandparent {
		panic(errors.Errorf("avl: rotate %s on a node that is not a child of its grandparent", dir))
	}
	if (dir == rotateRight) != (grandparent.left == parent) {
		panic(errors.Errorf("avl: rotate %s with the parent on the wrong side", dir))
	}

	t.logRotation(grandparent, parent, dir)

	t.replace(grandparent, parent)
	grandparent.parent = parent

	switch dir {
	case rotateRight:
		grandparent.left = parent.right
		if parent.right != nil {
			parent.right.parent = grandparent
		}
		parent.right = grandparent
	case rotateLeft:
		grandparent.right = parent.left
		if parent.left != nil {
			parent.left.parent = grandparent
		}
		parent.left = grandparent
	}
}
