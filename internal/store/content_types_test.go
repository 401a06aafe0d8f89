package store

import "testing"

func TestLookupContentTable(t *testing.T) {
	cases := []struct {
		contentType string
		table       string
		ok          bool
	}{
		{"thesis", "theses", true},
		{"publication", "publications", true},
		{"dataset", "datasets", true},
		{"model", "models", true},
		{"article", "", false},
		{"Thesis", "", false},
		{"", "", false},
	}

	for _, tt := range cases {
		table, ok := LookupContentTable(tt.contentType)
		if ok != tt.ok {
			t.Fatalf("LookupContentTable(%q) ok=%v, want %v", tt.contentType, ok, tt.ok)
		}
		if ok && table.Table != tt.table {
			t.Fatalf("LookupContentTable(%q) table=%q, want %q", tt.contentType, table.Table, tt.table)
		}
	}
}
