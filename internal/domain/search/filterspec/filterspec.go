// Package filterspec turns flat request parameters into a typed filter
// specification consumed by the query builders.
package filterspec

// FilterSpec is the parsed, typed representation of a caller's filter request.
// Every field is optional; zero values mean "no constraint". Boolean flags are
// tri-state: a nil pointer means the flag was not supplied at all, which must
// not constrain the corresponding field.
type FilterSpec struct {
	Search string

	Status      []string
	PageType    []string
	AssetType   []string
	SectionType []string
	Category    []string
	Tags        []string

	AuthorID string

	// Date bounds are kept as the raw parameter strings. The query builders
	// parse them; an unparseable bound compiles to a match-nothing predicate
	// rather than an error.
	CreatedAfter    string
	CreatedBefore   string
	UpdatedAfter    string
	UpdatedBefore   string
	PublishedAfter  string
	PublishedBefore string

	IsPublic  *bool
	IsActive  *bool
	IsVisible *bool

	MinSeoScore int
	MaxSeoScore int
	MinFileSize int64
	MaxFileSize int64

	SortBy    string
	SortOrder string

	Page  int
	Limit int
}
