package graph

// Tree is a node in a prerequisite tree.
type Tree struct {
	// Item is the item at this node.
	Item string

	// Children are the items this item is built from, in list order.
	Children []*Tree

	// Cycle is set when Item already appears on the path from the root.
	// Such nodes have no children.
	Cycle bool
}

// Tree returns the prerequisite tree rooted at item. Leaves and items
// missing from the graph become single nodes.
func (g Graph) Tree(item string) *Tree {
	path := make(map[string]bool)
	return g.buildTree(item, path)
}

func (g Graph) buildTree(item string, path map[string]bool) *Tree {
	if path[item] {
		return &Tree{Item: item, Cycle: true}
	}
	path[item] = true
	defer delete(path, item)

	node := &Tree{Item: item}
	for _, prereq := range g[item] {
		node.Children = append(node.Children, g.buildTree(prereq, path))
	}
	return node
}

// Size returns the number of nodes in the tree.
func (t *Tree) Size() int {
	if t == nil {
		return 0
	}
	size := 1
	for _, child := range t.Children {
		size += child.Size()
	}
	return size
}
