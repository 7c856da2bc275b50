package avl_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/yeqown/avl"
)

func ExampleTree() {
	tree := avl.New[string, int](strings.Compare)
	tree.Insert("foo", 1)
	tree.Insert("bar", 2)
	tree.Insert("baz", 3)
	tree.Remove("baz")

	fmt.Println(tree.Get("foo"))
	fmt.Println(tree.Get("baz"))
	it := tree.Iterator()
	for it.First(); it.Valid(); it.Next() {
		fmt.Println(it.Key(), it.Value())
	}

	// Output:
	// 1 true
	// 0 false
	// bar 2
	// foo 1
}

func ExampleTree_Fprint() {
	tree := avl.NewOrdered[int, struct{}]()
	for i := 1; i <= 7; i++ {
		tree.Insert(i, struct{}{})
	}
	tree.Fprint(os.Stdout)

	// Output:
	//               /------+ 7 +0
	//        /------+ 6 +0
	//        |      \------+ 5 +0
	// |------+ 4 +0
	//        |      /------+ 3 +0
	//        \------+ 2 +0
	//               \------+ 1 +0
}
