package viking

import "encoding/json"

// Item is a single retrieved node. Depending on the depth the remote side
// resolved it at, at most one of the payload fields is populated.
type Item struct {
	URI      string   `json:"uri"`
	Score    *float64 `json:"score,omitempty"`
	Content  string   `json:"content,omitempty"`
	Abstract string   `json:"abstract,omitempty"`
	Overview string   `json:"overview,omitempty"`
}

// FindResult groups ranked items by category.
type FindResult struct {
	Memories  []Item `json:"memories,omitempty"`
	Resources []Item `json:"resources,omitempty"`
	Skills    []Item `json:"skills,omitempty"`
}

// SearchResult is a FindResult enriched with the query expansion plan an
// intent-aware search produced. The plan structure is server-defined and
// kept opaque here.
type SearchResult struct {
	FindResult
	QueryPlan json.RawMessage `json:"query_plan,omitempty"`
}

// Entry is one row of a directory listing.
type Entry struct {
	Name string `json:"name"`
	Type string `json:"type"`
	URI  string `json:"uri"`
}
