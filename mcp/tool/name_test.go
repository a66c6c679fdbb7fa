package tool

import "testing"

func TestCanonical(t *testing.T) {
	cases := []struct {
		in  string
		out string
	}{
		{"viking_search", "viking_search"},
		{"search", "viking_search"},
		{"deep_search", "viking_deep_search"},
		{"viking-search", "viking_search"},
		{"viking/list", "viking_list"},
		{"viking.status", "viking_status"},
		{" viking_remember ", "viking_remember"},
	}

	for i, tc := range cases {
		if got := Canonical(tc.in).String(); got != tc.out {
			t.Fatalf("case %d: Canonical(%q) = %q, want %q", i, tc.in, got, tc.out)
		}
	}
}

func TestNameOp(t *testing.T) {
	cases := []struct {
		in  Name
		out string
	}{
		{"viking_search", "search"},
		{"viking_deep_search", "deep_search"},
		{"status", "status"},
	}

	for i, tc := range cases {
		if got := tc.in.Op(); got != tc.out {
			t.Fatalf("case %d: Op(%q) = %q, want %q", i, tc.in, got, tc.out)
		}
	}
}
