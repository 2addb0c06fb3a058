package breadcrumbs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func childOf(oid, parent string) Bookmark {
	b := bm(oid)
	b.Parent = parent
	return b
}

func TestBookmarkedPagesModel_BuildsTree(t *testing.T) {
	m := NewBookmarkedPagesModel(10)
	require.NoError(t, m.Bookmark(bm("customer")))
	require.NoError(t, m.Bookmark(childOf("order", "customer")))
	require.NoError(t, m.Bookmark(childOf("line", "order")))
	require.NoError(t, m.Bookmark(bm("product")))

	tree := m.Tree()
	require.Len(t, tree, 2)
	assert.Equal(t, "product", tree[0].OID)
	assert.Equal(t, "customer", tree[1].OID)
	require.Len(t, tree[1].Children, 1)
	assert.Equal(t, "order", tree[1].Children[0].OID)
	require.Len(t, tree[1].Children[0].Children, 1)
	assert.Equal(t, "line", tree[1].Children[0].Children[0].OID)
	assert.Equal(t, 4, m.Len())
}

func TestBookmarkedPagesModel_UnknownParentBecomesRoot(t *testing.T) {
	m := NewBookmarkedPagesModel(10)
	require.NoError(t, m.Bookmark(childOf("order", "missing")))

	tree := m.Tree()
	require.Len(t, tree, 1)
	assert.Equal(t, "order", tree[0].OID)
	assert.Empty(t, tree[0].Parent)
}

func TestBookmarkedPagesModel_RebookmarkUpdatesInPlace(t *testing.T) {
	m := NewBookmarkedPagesModel(10)
	require.NoError(t, m.Bookmark(bm("customer")))
	require.NoError(t, m.Bookmark(childOf("order", "customer")))

	updated := bm("order")
	updated.Title = "Order #42"
	require.NoError(t, m.Bookmark(updated))

	assert.Equal(t, 2, m.Len())
	assert.Equal(t, "Order #42", m.Tree()[0].Children[0].Title)
}

func TestBookmarkedPagesModel_CapEvictsOldestRootWithChildren(t *testing.T) {
	m := NewBookmarkedPagesModel(2)
	require.NoError(t, m.Bookmark(bm("a")))
	require.NoError(t, m.Bookmark(childOf("a1", "a")))
	require.NoError(t, m.Bookmark(bm("b")))
	require.NoError(t, m.Bookmark(bm("c")))

	tree := m.Tree()
	require.Len(t, tree, 2)
	assert.Equal(t, "c", tree[0].OID)
	assert.Equal(t, "b", tree[1].OID)
	assert.Equal(t, 2, m.Len())
}

func TestBookmarkedPagesModel_RemoveAndClear(t *testing.T) {
	m := NewBookmarkedPagesModel(10)
	require.NoError(t, m.Bookmark(bm("customer")))
	require.NoError(t, m.Bookmark(childOf("order", "customer")))
	require.NoError(t, m.Bookmark(childOf("line", "order")))

	assert.True(t, m.Remove("order"))
	assert.Equal(t, 1, m.Len())
	assert.False(t, m.Remove("line"))

	m.Clear()
	assert.Zero(t, m.Len())
	assert.NotNil(t, m.Tree())
}

func TestBookmarkedPagesModel_RejectsMissingOID(t *testing.T) {
	m := NewBookmarkedPagesModel(10)
	assert.ErrorIs(t, m.Bookmark(Bookmark{}), ErrMissingOID)
}
