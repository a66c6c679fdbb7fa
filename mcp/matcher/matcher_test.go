package matcher

import "testing"

func TestMatch(t *testing.T) {
	var testCases = []struct {
		pattern   string
		candidate string
		matched   bool
	}{
		{"*", "anything", true},
		{"", "anything", false},

		// Exact matches
		{"viking_search", "viking_search", true},
		{"viking_status", "viking_status", true},

		// Prefix matches
		{"viking_", "viking_search", true},
		{"viking_deep", "viking_deep_search", true},
		{"viking_read", "viking_search", false},
		{"search", "viking_search", false},
	}

	for i, tc := range testCases {
		if got := Match(tc.pattern, tc.candidate); got != tc.matched {
			t.Fatalf("[%d] Match(%q, %q) = %v; expected %v", i, tc.pattern, tc.candidate, got, tc.matched)
		}
	}
}

func TestMatchAny(t *testing.T) {
	var testCases = []struct {
		patterns  []string
		candidate string
		matched   bool
	}{
		{[]string{"*"}, "viking_search", true},
		{[]string{"viking_read", "viking_list"}, "viking_list", true},
		{[]string{"viking_read", "viking_list"}, "viking_status", false},
		{nil, "viking_search", false},
	}

	for i, tc := range testCases {
		if got := MatchAny(tc.patterns, tc.candidate); got != tc.matched {
			t.Fatalf("[%d] MatchAny(%v, %q) = %v; expected %v", i, tc.patterns, tc.candidate, got, tc.matched)
		}
	}
}
