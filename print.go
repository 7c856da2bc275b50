package avl

import (
	"fmt"
	"io"
)

type branch int

const (
	rootBranch branch = iota
	leftBranch
	rightBranch
)

// Fprint writes the tree sideways to w, larger keys on top, one node per line
// as "key balance". It returns the height of the tree.
func (t *Tree[K, V]) Fprint(w io.Writer) int {
	return fprint(w, t.root, "", rootBranch)
}

func fprint[K, V any](w io.Writer, n *node[K, V], prefix string, br branch) int {
	if n == nil {
		return 0
	}

	rd := 0
	if n.right != nil {
		pad := "       "
		if br == leftBranch {
			pad = "|      "
		}
		rd = fprint(w, n.right, prefix+pad, rightBranch)
	}

	switch br {
	case rootBranch:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case leftBranch:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case rightBranch:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	fmt.Fprintf(w, "%v %+d\n", n.key, n.balance)

	ld := 0
	if n.left != nil {
		pad := "       "
		if br == rightBranch {
			pad = "|      "
		}
		ld = fprint(w, n.left, prefix+pad, leftBranch)
	}

	if rd > ld {
		return rd + 1
	}
	return ld + 1
}
