package menu

import "strings"

// PathPrefix roots every navigable path under the protected area of the
// console.
const PathPrefix = "/app"

// NormalizePath roots p under PathPrefix. Already-prefixed paths pass
// through, absolute paths get the prefix prepended, and bare segments are
// joined with a separator. The result is stable under re-application.
func NormalizePath(p string) string {
	p = strings.TrimSpace(p)
	switch {
	case p == "" || p == PathPrefix:
		return PathPrefix
	case strings.HasPrefix(p, PathPrefix+"/"):
		return p
	case strings.HasPrefix(p, "/"):
		return PathPrefix + p
	default:
		return PathPrefix + "/" + p
	}
}

// BuildTree assembles the flat list into a forest. Two passes: index every
// entry, then attach each one to its parent (or to the root set when the
// parent reference is missing). Sibling order follows input order.
//
// An entry whose raw parent chain loops back to itself can never reach a
// terminal ancestor, so it is rerouted to the root set instead; every input
// entry therefore lands in the forest exactly once.
func BuildTree(entries []Entry) []*Node {
	index := make(map[string]*Node, len(entries))
	parents := make(map[string]string, len(entries))
	for _, e := range entries {
		e.Path = NormalizePath(e.Path)
		index[e.MenuID] = &Node{Entry: e}
		parents[e.MenuID] = e.ParentID
	}

	roots := make([]*Node, 0, len(entries))
	for _, e := range entries {
		node := index[e.MenuID]
		parent, ok := index[e.ParentID]
		if e.ParentID == "" || !ok || onCycle(parents, e.MenuID) {
			roots = append(roots, node)
			continue
		}
		parent.Children = append(parent.Children, node)
	}
	return roots
}

// onCycle walks the raw ParentID chain starting at id and reports whether
// the walk revisits id.
func onCycle(parents map[string]string, id string) bool {
	seen := map[string]bool{id: true}
	cur := parents[id]
	for cur != "" {
		if cur == id {
			return true
		}
		if seen[cur] {
			// A loop above this entry; the entry itself still attaches to
			// its immediate parent.
			return false
		}
		seen[cur] = true
		next, ok := parents[cur]
		if !ok {
			return false
		}
		cur = next
	}
	return false
}

// CountNodes returns the total number of nodes in the forest.
func CountNodes(roots []*Node) int {
	n := 0
	var walk func(*Node)
	walk = func(node *Node) {
		n++
		for _, c := range node.Children {
			walk(c)
		}
	}
	for _, r := range roots {
		walk(r)
	}
	return n
}
