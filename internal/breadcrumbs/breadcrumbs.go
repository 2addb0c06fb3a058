package breadcrumbs

import "slices"

// BreadcrumbModel is the most-recently-visited trail. Fields are exported
// for the gob session codec only.
type BreadcrumbModel struct {
	Max     int
	Entries []Bookmark // oldest first
	Current *Bookmark  // visited during the current request
}

func NewBreadcrumbModel(max int) *BreadcrumbModel {
	return &BreadcrumbModel{Max: max}
}

// Visited moves b to the most recent end of the trail, trimming the oldest
// entries beyond Max.
func (m *BreadcrumbModel) Visited(b Bookmark) error {
	if err := b.Validate(); err != nil {
		return err
	}

	m.remove(b.OID)
	m.Entries = append(m.Entries, b)

	if m.Max > 0 && len(m.Entries) > m.Max {
		m.Entries = slices.Clone(m.Entries[len(m.Entries)-m.Max:])
	}

	current := b
	m.Current = &current
	return nil
}

func (m *BreadcrumbModel) Remove(oid string) bool {
	removed := m.remove(oid)
	if removed && m.Current != nil && m.Current.OID == oid {
		m.Current = nil
	}
	return removed
}

func (m *BreadcrumbModel) remove(oid string) bool {
	idx := slices.IndexFunc(m.Entries, func(e Bookmark) bool { return e.OID == oid })
	if idx < 0 {
		return false
	}
	m.Entries = slices.Delete(m.Entries, idx, idx+1)
	return true
}

// List returns the trail, most recent first.
func (m *BreadcrumbModel) List() []Bookmark {
	list := slices.Clone(m.Entries)
	slices.Reverse(list)
	if list == nil {
		list = []Bookmark{}
	}
	return list
}

func (m *BreadcrumbModel) Len() int {
	return len(m.Entries)
}

// Detach drops per-request state. The trail itself is kept.
func (m *BreadcrumbModel) Detach() {
	m.Current = nil
}
