package ui

import "testing"

func TestDetermineLayoutMode(t *testing.T) {
	cases := []struct {
		name string
		cols int
		rows int
		want LayoutMode
	}{
		{"narrow", 59, 40, LayoutTooSmall},
		{"short", 100, 17, LayoutTooSmall},
		{"minimum compact", 60, 18, LayoutCompact},
		{"upper compact", 95, 30, LayoutCompact},
		{"minimum wide", 96, 18, LayoutWide},
		{"roomy", 160, 50, LayoutWide},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DetermineLayoutMode(tc.cols, tc.rows); got != tc.want {
				t.Fatalf("DetermineLayoutMode(%d, %d) = %v, want %v", tc.cols, tc.rows, got, tc.want)
			}
		})
	}
}

func TestSidebarWidth(t *testing.T) {
	if sidebarWidth(false) <= sidebarWidth(true) {
		t.Fatal("expanded sidebar must be wider than collapsed")
	}
}
