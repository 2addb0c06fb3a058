package breadcrumbs

import "slices"

// BookmarkNode is a bookmarked page and the pages bookmarked beneath it.
type BookmarkNode struct {
	Bookmark
	Children []*BookmarkNode `json:"children,omitempty"`
}

// BookmarkedPagesModel is a forest of bookmarks with at most Max roots.
type BookmarkedPagesModel struct {
	Max   int
	Roots []*BookmarkNode // oldest first
}

func NewBookmarkedPagesModel(max int) *BookmarkedPagesModel {
	return &BookmarkedPagesModel{Max: max}
}

// Bookmark adds b beneath b.Parent, or as a root when the parent is unset or
// unknown. An existing bookmark with the same OID is updated in place.
func (m *BookmarkedPagesModel) Bookmark(b Bookmark) error {
	if err := b.Validate(); err != nil {
		return err
	}

	if existing := m.find(b.OID); existing != nil {
		existing.Title = b.Title
		existing.URL = b.URL
		return nil
	}

	node := &BookmarkNode{Bookmark: b}

	if b.Parent != "" {
		if parent := m.find(b.Parent); parent != nil {
			parent.Children = append(parent.Children, node)
			return nil
		}
		node.Parent = ""
	}

	m.Roots = append(m.Roots, node)
	if m.Max > 0 && len(m.Roots) > m.Max {
		m.Roots = slices.Clone(m.Roots[len(m.Roots)-m.Max:])
	}
	return nil
}

// Remove deletes the bookmark with oid together with its children.
func (m *BookmarkedPagesModel) Remove(oid string) bool {
	var removed bool
	m.Roots, removed = removeNode(m.Roots, oid)
	return removed
}

func removeNode(nodes []*BookmarkNode, oid string) ([]*BookmarkNode, bool) {
	for i, n := range nodes {
		if n.OID == oid {
			return slices.Delete(nodes, i, i+1), true
		}
		var removed bool
		if n.Children, removed = removeNode(n.Children, oid); removed {
			return nodes, true
		}
	}
	return nodes, false
}

func (m *BookmarkedPagesModel) Clear() {
	m.Roots = nil
}

// Tree returns the roots, most recently bookmarked first.
func (m *BookmarkedPagesModel) Tree() []*BookmarkNode {
	tree := slices.Clone(m.Roots)
	slices.Reverse(tree)
	if tree == nil {
		tree = []*BookmarkNode{}
	}
	return tree
}

// Len counts every bookmark, children included.
func (m *BookmarkedPagesModel) Len() int {
	return countNodes(m.Roots)
}

func countNodes(nodes []*BookmarkNode) int {
	n := len(nodes)
	for _, node := range nodes {
		n += countNodes(node.Children)
	}
	return n
}

func (m *BookmarkedPagesModel) find(oid string) *BookmarkNode {
	var walk func([]*BookmarkNode) *BookmarkNode
	walk = func(nodes []*BookmarkNode) *BookmarkNode {
		for _, n := range nodes {
			if n.OID == oid {
				return n
			}
			if found := walk(n.Children); found != nil {
				return found
			}
		}
		return nil
	}
	return walk(m.Roots)
}
