package rtree

import "fmt"

// Stats prints statistics about the tree
func (t *RTree[T, V]) Stats() {
	fmt.Println("Options:")
	fmt.Printf("\tdimension = %d\n", t.opts.Dimension)
	fmt.Printf("\tminEntries = %d\n", t.opts.MinEntries)
	fmt.Printf("\tmaxEntries = %d\n\n", t.opts.MaxEntries)

	height, internals, leaves := 0, 0, 0
	if t.root != nil {
		height = t.height(t.root)
		t.count(t.root, &internals, &leaves)
	}

	fmt.Println("Parameters:")
	fmt.Printf("\tsize = %d\n", t.size)
	fmt.Printf("\theight = %d\n", height)
	fmt.Printf("\tinternal nodes = %d\n", internals)
	fmt.Printf("\tleaf nodes = %d\n", leaves)
}

func (t *RTree[T, V]) height(n *node[T, V]) int {
	if n.leaf {
		return 1
	}
	return 1 + t.height(n.children[0])
}

func (t *RTree[T, V]) count(n *node[T, V], internals, leaves *int) {
	if n.leaf {
		*leaves++
		return
	}
	*internals++
	for _, c := range n.children {
		t.count(c, internals, leaves)
	}
}
