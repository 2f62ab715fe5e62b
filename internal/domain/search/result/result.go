// Package result defines the normalized search result projection and the
// facet counts derived from a result set.
package result

import "github.com/lumenwork/contentdex/internal/domain/content"

// Result is the normalized projection of one matched record. It is created
// per search call and never persisted; the only ordering invariant is
// descending RelevanceScore.
type Result struct {
	ID             string         `json:"id"`
	Type           content.Kind   `json:"type"`
	Title          string         `json:"title"`
	Description    string         `json:"description,omitempty"`
	URL            string         `json:"url,omitempty"`
	ThumbnailURL   string         `json:"thumbnailUrl,omitempty"`
	Metadata       map[string]any `json:"metadata,omitempty"`
	RelevanceScore int            `json:"relevanceScore"`
	Highlights     []string       `json:"highlights,omitempty"`
}

// Facets breaks one result set down by categorical dimensions.
type Facets struct {
	Types      map[string]int `json:"types"`
	Statuses   map[string]int `json:"statuses"`
	Categories map[string]int `json:"categories"`
	AssetTypes map[string]int `json:"assetTypes"`
}

// NewFacets creates empty facet counters.
func NewFacets() Facets {
	return Facets{
		Types:      make(map[string]int),
		Statuses:   make(map[string]int),
		Categories: make(map[string]int),
		AssetTypes: make(map[string]int),
	}
}

// Add counts one result into the facets. Status, category and asset type are
// read from the result metadata when the entity kind carries them.
func (f Facets) Add(r Result) {
	f.Types[string(r.Type)]++
	if v, ok := metaString(r.Metadata, "status"); ok {
		f.Statuses[v]++
	}
	if v, ok := metaString(r.Metadata, "category"); ok {
		f.Categories[v]++
	}
	if v, ok := metaString(r.Metadata, "assetType"); ok {
		f.AssetTypes[v]++
	}
}

func metaString(meta map[string]any, key string) (string, bool) {
	v, ok := meta[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}
