package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestServiceMatchTools verifies that the MatchTools helper applies the same
// pattern-matching semantics as the registration filter (see builtins.go).
func TestServiceMatchTools(t *testing.T) {
	backend, _ := newVikingBackend(nil)
	defer backend.Close()
	svc := newTestService(t, testConfig(backend.URL))

	// '*' returns the full registry.
	all := svc.Tools()
	star := svc.MatchTools("*")
	assert.EqualValues(t, len(all), len(star))

	// A prefix narrows the result set while keeping registration order.
	prefixed := svc.MatchTools("viking_deep")
	assert.EqualValues(t, 1, len(prefixed))
	assert.EqualValues(t, "viking_deep_search", prefixed[0].Metadata.Name)

	// An exact name returns a single entry.
	exact := svc.MatchTools("viking_status")
	assert.EqualValues(t, 1, len(exact))
	assert.EqualValues(t, "viking_status", exact[0].Metadata.Name)

	// Unknown patterns match nothing.
	assert.EqualValues(t, 0, len(svc.MatchTools("workflow_")))
}
