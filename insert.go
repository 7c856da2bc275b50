package avl

// Insert stores value under key. An existing key has its value overwritten
// in place and the shape of the tree does not change.
func (t *Tree[K, V]) Insert(key K, value V) {
	if t.root == nil {
		t.root = newNode(key, value, nil)
		t.length++
		return
	}

	p := t.root
	for {
		c := t.cmp(key, p.key)
		if c == 0 {
			p.value = value
			return
		}

		if c < 0 && p.left != nil {
			p = p.left
			continue
		}
		if c > 0 && p.right != nil {
			p = p.right
			continue
		}

		n := newNode(key, value, p)
		if c < 0 {
			p.left = n
		} else {
			p.right = n
		}
		t.length++

		// p had a single child, the new leaf fills in the shorter side.
		if p.balance != 0 {
			p.balance = 0
			return
		}

		if c < 0 {
			p.balance = -1
		} else {
			p.balance = 1
		}
		t.insertFix(p, n)
		return
	}
}

// insertFix walks up from parent, whose subtree just grew by one level
// through child, adjusting balances until the growth is absorbed or a
// rotation restores the height the subtree had before the insertion.
func (t *Tree[K, V]) insertFix(parent, child *node[K, V]) {
	for parent != nil {
		grandparent := parent.parent
		if grandparent == nil {
			return
		}

		if grandparent.left == parent {
			grandparent.balance--
		} else {
			grandparent.balance++
		}

		switch grandparent.balance {
		case 0:
			return
		case -1, 1:
			parent, child = grandparent, parent
			continue
		case -2:
			if parent.balance == -1 {
				t.rotate(grandparent, parent, rotateRight)
				parent.balance, grandparent.balance = 0, 0
				return
			}

			t.rotate(parent, child, rotateLeft)
			t.rotate(grandparent, child, rotateRight)
			switch child.balance {
			case 0:
				parent.balance, grandparent.balance = 0, 0
			case -1:
				child.balance, parent.balance, grandparent.balance = 0, 0, 1
			case 1:
				child.balance, parent.balance, grandparent.balance = 0, -1, 0
			}
			return
		case 2:
			if parent.balance == 1 {
				t.rotate(grandparent, parent, rotateLeft)
				parent.balance, grandparent.balance = 0, 0
				return
			}

			t.rotate(parent, child, rotateRight)
			t.rotate(grandparent, child, rotateLeft)
			switch child.balance {
			case 0:
				parent.balance, grandparent.balance = 0, 0
			case -1:
				child.balance, parent.balance, grandparent.balance = 0, 1, 0
			case 1:
				child.balance, parent.balance, grandparent.balance = 0, 0, -1
			}
			return
		default:
			panic("avl: balance out of range after insert")
		}
	}
}
