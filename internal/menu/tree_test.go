package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePath(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", "/app"},
		{"/app", "/app"},
		{"/app/employees", "/app/employees"},
		{"/employees", "/app/employees"},
		{"employees", "/app/employees"},
		{"payroll/runs", "/app/payroll/runs"},
		{"/application", "/app/application"},
		{"  /attendance ", "/app/attendance"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizePath(tc.in), "input %q", tc.in)
	}
}

func TestNormalizePathIsIdempotent(t *testing.T) {
	inputs := []string{"", "/app", "/employees", "employees", "payroll/runs", "/application", "/app/app"}
	for _, in := range inputs {
		once := NormalizePath(in)
		assert.Equal(t, once, NormalizePath(once), "input %q", in)
	}
}

func TestBuildTreeEmptyInputYieldsEmptyForest(t *testing.T) {
	roots := BuildTree(nil)
	assert.Empty(t, roots)
	assert.Zero(t, CountNodes(roots))
}

func TestBuildTreeAttachesChildrenToParents(t *testing.T) {
	flat := []Entry{
		{MenuID: "1", MenuName: "Dashboard", Path: "/"},
		{MenuID: "2", MenuName: "People", Path: "/people"},
		{MenuID: "3", MenuName: "Employees", Path: "/employees", ParentID: "2"},
		{MenuID: "4", MenuName: "Attendance", Path: "/attendance", ParentID: "2"},
		{MenuID: "5", MenuName: "Payroll", Path: "/payroll", ParentID: "2"},
		{MenuID: "6", MenuName: "Analytics", Path: "/analytics"},
	}
	roots := BuildTree(flat)

	require.Len(t, roots, 3)
	assert.Equal(t, len(flat), CountNodes(roots))

	people := roots[1]
	require.Equal(t, "People", people.MenuName)
	require.Len(t, people.Children, 3)
	assert.True(t, people.IsGroup())
	// Sibling order follows input order.
	assert.Equal(t, "Employees", people.Children[0].MenuName)
	assert.Equal(t, "Attendance", people.Children[1].MenuName)
	assert.Equal(t, "Payroll", people.Children[2].MenuName)
	// Paths come out normalized.
	assert.Equal(t, "/app/employees", people.Children[0].Path)
}

func TestBuildTreeChildMayPrecedeParentInInput(t *testing.T) {
	flat := []Entry{
		{MenuID: "leaf", MenuName: "Payroll", Path: "/payroll", ParentID: "group"},
		{MenuID: "group", MenuName: "People", Path: "/people"},
	}
	roots := BuildTree(flat)
	require.Len(t, roots, 1)
	require.Len(t, roots[0].Children, 1)
	assert.Equal(t, "Payroll", roots[0].Children[0].MenuName)
}

func TestBuildTreeDanglingParentDegradesToRoot(t *testing.T) {
	flat := []Entry{
		{MenuID: "1", MenuName: "Orphan", Path: "/orphan", ParentID: "missing"},
		{MenuID: "2", MenuName: "Home", Path: "/"},
	}
	roots := BuildTree(flat)
	require.Len(t, roots, 2)
	assert.Equal(t, "Orphan", roots[0].MenuName)
	assert.Equal(t, len(flat), CountNodes(roots))
}

func TestBuildTreeSelfParentReroutesToRoot(t *testing.T) {
	flat := []Entry{
		{MenuID: "1", MenuName: "Loop", Path: "/loop", ParentID: "1"},
	}
	roots := BuildTree(flat)
	require.Len(t, roots, 1)
	assert.Empty(t, roots[0].Children)
}

func TestBuildTreeMutualCycleReroutesBothToRoot(t *testing.T) {
	flat := []Entry{
		{MenuID: "a", MenuName: "A", Path: "/a", ParentID: "b"},
		{MenuID: "b", MenuName: "B", Path: "/b", ParentID: "a"},
		{MenuID: "c", MenuName: "C", Path: "/c", ParentID: "a"},
	}
	roots := BuildTree(flat)
	// a and b sit on the cycle and land at root; c hangs off a normally.
	assert.Equal(t, len(flat), CountNodes(roots))
	require.Len(t, roots, 2)
	assert.Equal(t, "A", roots[0].MenuName)
	assert.Equal(t, "B", roots[1].MenuName)
	require.Len(t, roots[0].Children, 1)
	assert.Equal(t, "C", roots[0].Children[0].MenuName)
}

func TestBuildTreeNodeCountMatchesInputLength(t *testing.T) {
	flat := []Entry{
		{MenuID: "1", Path: "a"},
		{MenuID: "2", Path: "b", ParentID: "1"},
		{MenuID: "3", Path: "c", ParentID: "2"},
		{MenuID: "4", Path: "d", ParentID: "nope"},
		{MenuID: "5", Path: "e", ParentID: "5"},
	}
	assert.Equal(t, len(flat), CountNodes(BuildTree(flat)))
}
