package behavior

// Walk visits n and its descendants depth-first, parents before children, in
// child order. Returning false from fn skips the node's subtree.
func Walk(n Node, fn func(n Node, depth int) bool) {
	if n == nil {
		return
	}
	walk(n, 0, fn)
}

func walk(n Node, depth int, fn func(Node, int) bool) {
	if !fn(n, depth) {
		return
	}
	for _, child := range n.Children() {
		walk(child, depth+1, fn)
	}
}
