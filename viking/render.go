package viking

import (
	"encoding/json"
	"fmt"
	"strings"
)

// previewLimit caps the payload excerpt attached to each rendered item.
const previewLimit = 300

// noResults is the sentinel for renderings that yield no items, so a caller
// can tell an empty result from a failed call.
const noResults = "No results found."

// Preview returns the first populated payload field, in content, abstract,
// overview priority order, truncated to previewLimit runes.
func (i *Item) Preview() string {
	text := i.Content
	if text == "" {
		text = i.Abstract
	}
	if text == "" {
		text = i.Overview
	}
	if runes := []rune(text); len(runes) > previewLimit {
		return string(runes[:previewLimit])
	}
	return text
}

// Render formats grouped results as Markdown, one section per non-empty
// category in memories, resources, skills order.
func Render(results *FindResult) string {
	if results == nil {
		return noResults
	}
	sections := []struct {
		title string
		items []Item
	}{
		{"Memories", results.Memories},
		{"Resources", results.Resources},
		{"Skills", results.Skills},
	}
	var lines []string
	for _, section := range sections {
		if len(section.items) == 0 {
			continue
		}
		lines = append(lines, "\n## "+section.title)
		for i := range section.items {
			lines = append(lines, formatItem(&section.items[i])...)
		}
	}
	if len(lines) == 0 {
		return noResults
	}
	return strings.Join(lines, "\n")
}

// RenderSearch renders a deep-search result, prepending the query expansion
// plan when the remote side produced one.
func RenderSearch(results *SearchResult) string {
	if results == nil {
		return noResults
	}
	body := Render(&results.FindResult)
	if plan := planText(results.QueryPlan); plan != "" {
		return "Query expansion: " + plan + "\n" + body
	}
	return body
}

func planText(plan json.RawMessage) string {
	text := strings.TrimSpace(string(plan))
	switch text {
	case "", "null", "[]", "{}", `""`:
		return ""
	}
	return text
}

func formatItem(item *Item) []string {
	head := fmt.Sprintf("- **%s**", item.URI)
	if item.Score != nil {
		head += fmt.Sprintf(" (score: %.3f)", *item.Score)
	}
	lines := []string{head}
	if preview := item.Preview(); preview != "" {
		lines = append(lines, "  "+preview)
	}
	return lines
}
