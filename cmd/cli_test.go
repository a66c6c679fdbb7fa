package cmd

import "testing"

func TestExtractConfigPath(t *testing.T) {
	testCases := []struct {
		args   []string
		expect string
	}{
		{[]string{"serve", "-f", "config.yaml"}, "config.yaml"},
		{[]string{"serve", "--config", "config.yaml"}, "config.yaml"},
		{[]string{"serve", "--config=etc/viking.yaml"}, "etc/viking.yaml"},
		{[]string{"list-tools"}, ""},
		{[]string{"-f"}, ""},
	}

	for i, tc := range testCases {
		if got := extractConfigPath(tc.args); got != tc.expect {
			t.Fatalf("[%d] extractConfigPath(%v) = %q; expected %q", i, tc.args, got, tc.expect)
		}
	}
}
