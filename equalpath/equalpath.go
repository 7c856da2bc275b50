// Package equalpath checks whether the paths down both sides of a binary
// tree's root are equally long. The tree does not need to be balanced or
// ordered.
package equalpath

import (
	"strings"

	"github.com/pkg/errors"
)

// Node is a node of a plain binary tree.
type Node[T any] struct {
	Value T
	Left  *Node[T]
	Right *Node[T]
}

func (n *Node[T]) isLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// Height returns the number of nodes on the longest path from root down to
// a leaf. An empty tree has height 0.
func Height[T any](root *Node[T]) int {
	if root == nil {
		return 0
	}

	l, r := Height(root.Left), Height(root.Right)
	if l > r {
		return l + 1
	}
	return r + 1
}

// EqualPaths reports whether the left and right subtrees of root have the
// same height. An empty tree and a single leaf trivially do, and so does a
// root whose only child is a leaf.
func EqualPaths[T any](root *Node[T]) bool {
	if root == nil || root.isLeaf() {
		return true
	}

	switch {
	case root.Left == nil && root.Right.isLeaf():
		return true
	case root.Right == nil && root.Left.isLeaf():
		return true
	}

	return Height(root.Left) == Height(root.Right)
}

// ErrMalformedLevelOrder is returned by FromLevelOrder when a child token has
// no present parent to attach to.
var ErrMalformedLevelOrder = errors.New("equalpath: malformed level order")

// FromLevelOrder builds a tree from its level-order listing, where "#" or
// "null" marks an absent child, e.g. "1,2,3,#,#,4,5".
func FromLevelOrder(tokens []string) (*Node[string], error) {
	if len(tokens) == 0 || isAbsent(tokens[0]) {
		return nil, nil
	}

	root := &Node[string]{Value: strings.TrimSpace(tokens[0])}
	queue := []*Node[string]{root}
	i := 1
	for i < len(tokens) {
		if len(queue) == 0 {
			for ; i < len(tokens); i++ {
				if !isAbsent(tokens[i]) {
					return nil, errors.Wrapf(ErrMalformedLevelOrder, "token %d (%q) has no parent", i, tokens[i])
				}
			}
			break
		}
		parent := queue[0]
		queue = queue[1:]

		if !isAbsent(tokens[i]) {
			parent.Left = &Node[string]{Value: strings.TrimSpace(tokens[i])}
			queue = append(queue, parent.Left)
		}
		i++

		if i < len(tokens) && !isAbsent(tokens[i]) {
			parent.Right = &Node[string]{Value: strings.TrimSpace(tokens[i])}
			queue = append(queue, parent.Right)
		}
		i++
	}

	return root, nil
}

func isAbsent(token string) bool {
	token = strings.TrimSpace(token)
	return token == "#" || token == "" || strings.EqualFold(token, "null")
}
