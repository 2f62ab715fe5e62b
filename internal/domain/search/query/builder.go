package query

import (
	"fmt"
	"strings"
	"time"

	"github.com/lumenwork/contentdex/internal/domain"
	"github.com/lumenwork/contentdex/internal/domain/content"
	"github.com/lumenwork/contentdex/internal/domain/search/filterspec"
)

// Pagination limits.
const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Searchable text fields per kind, in decreasing importance. The free-text
// predicate is a broad OR over every (field, term) pair: a single term hitting
// any field admits the record. This is deliberately laxer than the relevance
// scorer, which rewards fields leading with the whole query; records admitted
// here may still score 0.
var (
	pageSearchFields     = []string{"title", "slug", "metaDescription", "metaKeywords", "pageKey"}
	templateSearchFields = []string{"name", "description", "category"}
	mediaSearchFields    = []string{"fileName", "altText", "caption"}
	sectionSearchFields  = []string{"title", "content"}
)

// Sort alias tables map caller-facing sort keys onto each kind's fields.
var (
	pageSortAliases = map[string]string{
		"title":     "title",
		"created":   "createdAt",
		"updated":   "updatedAt",
		"published": "publishedAt",
		"seo":       "seoScore",
		"status":    "status",
	}
	templateSortAliases = map[string]string{
		"title":   "name",
		"name":    "name",
		"created": "createdAt",
		"updated": "updatedAt",
		"order":   "order",
	}
	mediaSortAliases = map[string]string{
		"title":   "fileName",
		"name":    "fileName",
		"created": "createdAt",
		"size":    "fileSize",
	}
	sectionSortAliases = map[string]string{
		"title":   "title",
		"created": "createdAt",
		"order":   "order",
	}
)

// ForKind builds the query for one entity kind.
func ForKind(kind content.Kind, f filterspec.FilterSpec) (Query, error) {
	switch kind {
	case content.KindPage:
		return ForPages(f), nil
	case content.KindTemplate:
		return ForTemplates(f), nil
	case content.KindMedia:
		return ForMedia(f), nil
	case content.KindSection:
		return ForSections(f), nil
	}
	return Query{}, fmt.Errorf("%w: %q", domain.ErrUnknownEntityKind, kind)
}

// ForPages builds the page query. Soft-deleted pages are always excluded;
// callers cannot override that condition.
func ForPages(f filterspec.FilterSpec) Query {
	where := And{IsNull{Field: "deletedAt"}}
	where = appendText(where, f.Search, pageSearchFields)
	where = appendIn(where, "status", f.Status)
	where = appendIn(where, "pageType", f.PageType)
	where = appendTags(where, f.Tags)
	where = appendEq(where, "authorId", f.AuthorID)
	where = appendFlag(where, "isPublic", f.IsPublic)
	where = appendDateRange(where, "createdAt", f.CreatedAfter, f.CreatedBefore)
	where = appendDateRange(where, "updatedAt", f.UpdatedAfter, f.UpdatedBefore)
	where = appendDateRange(where, "publishedAt", f.PublishedAfter, f.PublishedBefore)
	where = appendIntRange(where, "seoScore", int64(f.MinSeoScore), int64(f.MaxSeoScore))

	return Query{
		Where: where,
		OrderBy: ordering(f, pageSortAliases, []Ordering{
			{Field: "updatedAt", Desc: true},
			{Field: "createdAt", Desc: true},
		}),
		Take: ClampLimit(f.Limit),
		Skip: skip(f.Page, ClampLimit(f.Limit)),
	}
}

// ForTemplates builds the template query.
func ForTemplates(f filterspec.FilterSpec) Query {
	where := And{}
	where = appendText(where, f.Search, templateSearchFields)
	where = appendIn(where, "status", f.Status)
	where = appendIn(where, "category", f.Category)
	where = appendFlag(where, "isActive", f.IsActive)
	where = appendDateRange(where, "createdAt", f.CreatedAfter, f.CreatedBefore)
	where = appendDateRange(where, "updatedAt", f.UpdatedAfter, f.UpdatedBefore)

	return Query{
		Where: where,
		OrderBy: ordering(f, templateSortAliases, []Ordering{
			{Field: "order"},
			{Field: "updatedAt", Desc: true},
		}),
		Take: ClampLimit(f.Limit),
		Skip: skip(f.Page, ClampLimit(f.Limit)),
	}
}

// ForMedia builds the media-asset query. Soft-deleted assets are always
// excluded.
func ForMedia(f filterspec.FilterSpec) Query {
	where := And{IsNull{Field: "deletedAt"}}
	where = appendText(where, f.Search, mediaSearchFields)
	where = appendIn(where, "assetType", f.AssetType)
	where = appendEq(where, "uploaderId", f.AuthorID)
	where = appendFlag(where, "isPublic", f.IsPublic)
	where = appendDateRange(where, "createdAt", f.CreatedAfter, f.CreatedBefore)
	where = appendDateRange(where, "updatedAt", f.UpdatedAfter, f.UpdatedBefore)
	where = appendIntRange(where, "fileSize", f.MinFileSize, f.MaxFileSize)

	return Query{
		Where: where,
		OrderBy: ordering(f, mediaSortAliases, []Ordering{
			{Field: "createdAt", Desc: true},
		}),
		Take: ClampLimit(f.Limit),
		Skip: skip(f.Page, ClampLimit(f.Limit)),
	}
}

// ForSections builds the section query.
func ForSections(f filterspec.FilterSpec) Query {
	where := And{}
	where = appendText(where, f.Search, sectionSearchFields)
	where = appendIn(where, "sectionType", f.SectionType)
	where = appendFlag(where, "isVisible", f.IsVisible)
	where = appendDateRange(where, "createdAt", f.CreatedAfter, f.CreatedBefore)
	where = appendDateRange(where, "updatedAt", f.UpdatedAfter, f.UpdatedBefore)

	return Query{
		Where: where,
		OrderBy: ordering(f, sectionSortAliases, []Ordering{
			{Field: "order"},
		}),
		Take: ClampLimit(f.Limit),
		Skip: skip(f.Page, ClampLimit(f.Limit)),
	}
}

// ClampLimit clamps a requested page size to [1, MaxLimit], defaulting to
// DefaultLimit when unset. Transport handlers use it to echo the effective
// page size back to the caller.
func ClampLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

func skip(page, take int) int {
	if page > 1 {
		return (page - 1) * take
	}
	return 0
}

// appendText adds the free-text predicate: the query is lowercased, split on
// whitespace, and every term may independently match any searchable field.
func appendText(where And, search string, fields []string) And {
	terms := strings.Fields(strings.ToLower(search))
	if len(terms) == 0 {
		return where
	}
	or := make(Or, 0, len(terms)*len(fields))
	for _, term := range terms {
		for _, field := range fields {
			or = append(or, Contains{Field: field, Value: term})
		}
	}
	return append(where, or)
}

func appendIn(where And, field string, values []string) And {
	switch len(values) {
	case 0:
		return where
	case 1:
		return append(where, Compare{Field: field, Op: OpEq, Value: values[0]})
	}
	return append(where, In{Field: field, Values: values})
}

// appendTags matches records carrying at least one of the requested tags.
func appendTags(where And, tags []string) And {
	if len(tags) == 0 {
		return where
	}
	or := make(Or, 0, len(tags))
	for _, tag := range tags {
		or = append(or, HasTag{Field: "tags", Value: tag})
	}
	return append(where, or)
}

func appendEq(where And, field, value string) And {
	if value == "" {
		return where
	}
	return append(where, Compare{Field: field, Op: OpEq, Value: value})
}

// appendFlag constrains a boolean field only when the tri-state flag was
// actually supplied.
func appendFlag(where And, field string, flag *bool) And {
	if flag == nil {
		return where
	}
	return append(where, Compare{Field: field, Op: OpEq, Value: *flag})
}

func appendDateRange(where And, field, after, before string) And {
	if after != "" {
		where = append(where, dateBound(field, after, OpGte))
	}
	if before != "" {
		where = append(where, dateBound(field, before, OpLte))
	}
	return where
}

// dateBound parses a raw date bound. A bound that cannot be parsed becomes
// None: every record fails the constraint, no error is raised.
func dateBound(field, raw string, op CompareOp) Predicate {
	t, ok := parseDate(raw)
	if !ok {
		return None{}
	}
	return Compare{Field: field, Op: op, Value: t}
}

var dateLayouts = []string{time.RFC3339, "2006-01-02"}

func parseDate(raw string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, strings.TrimSpace(raw)); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// appendIntRange adds min/max bounds; a zero bound means "unset".
func appendIntRange(where And, field string, min, max int64) And {
	if min > 0 {
		where = append(where, Compare{Field: field, Op: OpGte, Value: min})
	}
	if max > 0 {
		where = append(where, Compare{Field: field, Op: OpLte, Value: max})
	}
	return where
}

// ordering resolves the caller's sort key through the kind's alias table,
// falling back to the kind's default ordering for unknown or absent keys.
// Sort direction defaults to descending.
func ordering(f filterspec.FilterSpec, aliases map[string]string, def []Ordering) []Ordering {
	if f.SortBy == "" {
		return def
	}
	field, ok := aliases[f.SortBy]
	if !ok {
		return def
	}
	return []Ordering{{Field: field, Desc: f.SortOrder != "asc"}}
}
