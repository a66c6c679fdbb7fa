package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestServiceTools ensures the service exposes an entry for every built-in
// viking tool and that each entry resolves individually through LookupTool.
func TestServiceTools(t *testing.T) {
	backend, _ := newVikingBackend(nil)
	defer backend.Close()
	svc := newTestService(t, testConfig(backend.URL))

	expected := []string{
		"viking_search",
		"viking_deep_search",
		"viking_read",
		"viking_list",
		"viking_remember",
		"viking_status",
	}
	assert.EqualValues(t, expected, svc.ToolNames())

	tools := svc.Tools()
	assert.EqualValues(t, len(expected), len(tools))

	for _, te := range tools {
		entry, err := svc.LookupTool(te.Metadata.Name)
		if assert.NoError(t, err, "LookupTool(%q) returned error", te.Metadata.Name) {
			assert.EqualValues(t, te.Metadata.Name, entry.Metadata.Name)
			assert.NotNil(t, entry.Metadata.Description)
			assert.NotEmpty(t, *entry.Metadata.Description)
		}
	}

	// Aliases resolve to the canonical entry.
	entry, err := svc.LookupTool("search")
	if assert.NoError(t, err) {
		assert.EqualValues(t, "viking_search", entry.Metadata.Name)
	}
	_, err = svc.LookupTool("viking_unknown")
	assert.Error(t, err)

	description, schema, ok := svc.ToolMetadata("viking_read")
	assert.True(t, ok)
	assert.NotEmpty(t, description)
	assert.NotNil(t, schema)
	_, _, ok = svc.ToolMetadata("nope_tool")
	assert.False(t, ok)
}

// TestServiceToolFiltering verifies that the configured tool patterns select
// which built-ins get registered.
func TestServiceToolFiltering(t *testing.T) {
	backend, _ := newVikingBackend(nil)
	defer backend.Close()

	cfg := testConfig(backend.URL)
	cfg.Tools = []string{"viking_read", "viking_list"}
	svc := newTestService(t, cfg)
	assert.EqualValues(t, []string{"viking_read", "viking_list"}, svc.ToolNames())

	cfg = testConfig(backend.URL)
	cfg.Tools = []string{"viking_"}
	svc = newTestService(t, cfg)
	assert.EqualValues(t, 6, len(svc.ToolNames()))

	descriptors := svc.ToolDescriptors()
	assert.EqualValues(t, 6, len(descriptors))
	for _, descriptor := range descriptors {
		assert.NotEmpty(t, descriptor.Name)
		assert.NotEmpty(t, descriptor.Description)
	}
}
