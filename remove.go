package avl

// Remove deletes key from the tree. Removing an absent key is a no-op.
//
// A node with two children trades its entry with its in-order predecessor
// and the predecessor's node, which has at most a left child, is the one
// unlinked. Iterators positioned on either node are invalidated.
func (t *Tree[K, V]) Remove(key K) {
	n := t.find(key)
	if n == nil {
		return
	}

	if n.left != nil && n.right != nil {
		pred := n.predecessor()
		nodeSwap(n, pred)
		n = pred
	}

	child := n.left
	if child == nil {
		child = n.right
	}

	parent := n.parent
	var diff int8
	if parent != nil {
		if parent.left == n {
			diff = 1
		} else {
			diff = -1
		}
	}

	t.replace(n, child)
	n.parent, n.left, n.right = nil, nil, nil
	t.length--

	t.removeFix(parent, diff)
}

// removeFix walks up from n, whose subtree on one side just became one level
// shorter, and rebalances. diff is +1 when the left side shrank and -1 when
// the right side did. Unlike insertion the walk may rotate at every level.
func (t *Tree[K, V]) removeFix(n *node[K, V], diff int8) {
	for n != nil {
		parent := n.parent
		var nextdiff int8
		if parent != nil {
			if parent.left == n {
				nextdiff = 1
			} else {
				nextdiff = -1
			}
		}

		n.balance += diff
		switch n.balance {
		case 0:
			// Shrank by one level, keep walking.
		case -1, 1:
			return
		case -2:
			taller := n.left
			switch taller.balance {
			case -1:
				t.rotate(n, taller, rotateRight)
				n.balance, taller.balance = 0, 0
			case 0:
				t.rotate(n, taller, rotateRight)
				n.balance, taller.balance = -1, 1
				return
			case 1:
				grandchild := taller.right
				t.rotate(taller, grandchild, rotateLeft)
				t.rotate(n, grandchild, rotateRight)
				switch grandchild.balance {
				case 0:
					n.balance, taller.balance = 0, 0
				case -1:
					n.balance, taller.balance, grandchild.balance = 1, 0, 0
				case 1:
					n.balance, taller.balance, grandchild.balance = 0, -1, 0
				}
			}
		case 2:
			taller := n.right
			switch taller.balance {
			case 1:
				t.rotate(n, taller, rotateLeft)
				n.balance, taller.balance = 0, 0
			case 0:
				t.rotate(n, taller, rotateLeft)
				n.balance, taller.balance = 1, -1
				return
			case -1:
				grandchild := taller.left
				t.rotate(taller, grandchild, rotateRight)
				t.rotate(n, grandchild, rotateLeft)
				switch grandchild.balance {
				case 0:
					n.balance, taller.balance = 0, 0
				case 1:
					n.balance, taller.balance, grandchild.balance = -1, 0, 0
				case -1:
					n.balance, taller.balance, grandchild.balance = 0, 1, 0
				}
			}
		default:
			panic("avl: balance out of range after remove")
		}

		n, diff = parent, nextdiff
	}
}
