// Package avl implements an ordered key-value container backed by a
// self-balancing AVL tree. Insert, Remove and Get run in O(log n) in the worst
// case since every node keeps its balance factor (height of the right subtree
// minus height of the left subtree) within {-1, 0, 1}.
//
// The tree is not safe for concurrent use. Callers that share a tree between
// goroutines must serialize every operation, reads included.
//
// Similar to the memtable index of LSM storages, but without any persistence.
package avl
