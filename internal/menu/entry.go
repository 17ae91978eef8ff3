package menu

// Entry is one row of the flat, permission-filtered list served by the
// backend. ParentID references another entry's MenuID, or is empty for
// top-level items.
type Entry struct {
	MenuID   string `json:"menuId"`
	MenuName string `json:"menuName"`
	Path     string `json:"path"`
	Icon     string `json:"icon"`
	ParentID string `json:"parentId"`
	IsActive bool   `json:"isActive"`
}

// Node is an Entry placed in the navigation forest. Children keep the
// relative order of the source list.
type Node struct {
	Entry
	Children []*Node
}

// IsGroup reports whether the node acts as a toggleable group rather than
// a navigable leaf.
func (n *Node) IsGroup() bool {
	return len(n.Children) > 0
}
