package filterspec

import (
	"strconv"
	"strings"
)

// Default pagination values applied when a parameter is absent or malformed.
const (
	DefaultPage  = 1
	DefaultLimit = 20
)

// Parse converts a flat parameter map into a FilterSpec. It is a pure
// function: unrecognized keys are ignored, malformed numeric values collapse
// to defaults instead of erroring, and boolean flags are only set when the
// parameter is present. Malformed input widens or narrows results; it never
// fails the request.
func Parse(params map[string]string) FilterSpec {
	var f FilterSpec

	if v, ok := params["search"]; ok {
		f.Search = v
	}

	f.Status = multiValue(params, "status")
	f.PageType = multiValue(params, "pageType")
	f.AssetType = multiValue(params, "assetType")
	f.SectionType = multiValue(params, "sectionType")
	f.Category = multiValue(params, "category")
	f.Tags = multiValue(params, "tags")

	if v, ok := params["authorId"]; ok {
		f.AuthorID = v
	}

	f.CreatedAfter = params["createdAfter"]
	f.CreatedBefore = params["createdBefore"]
	f.UpdatedAfter = params["updatedAfter"]
	f.UpdatedBefore = params["updatedBefore"]
	f.PublishedAfter = params["publishedAfter"]
	f.PublishedBefore = params["publishedBefore"]

	f.IsPublic = boolFlag(params, "isPublic")
	f.IsActive = boolFlag(params, "isActive")
	f.IsVisible = boolFlag(params, "isVisible")

	f.MinSeoScore = intValue(params, "minSeoScore", 0)
	f.MaxSeoScore = intValue(params, "maxSeoScore", 0)
	f.MinFileSize = int64Value(params, "minFileSize", 0)
	f.MaxFileSize = int64Value(params, "maxFileSize", 0)

	if v, ok := params["sortBy"]; ok {
		f.SortBy = v
	}
	if v, ok := params["sortOrder"]; ok {
		f.SortOrder = v
	}

	if _, ok := params["page"]; ok {
		f.Page = intValue(params, "page", DefaultPage)
	}
	if _, ok := params["limit"]; ok {
		f.Limit = intValue(params, "limit", DefaultLimit)
	}

	return f
}

// multiValue splits a comma-separated parameter into trimmed non-empty parts.
// A value without commas yields a single-element slice.
func multiValue(params map[string]string, key string) []string {
	v, ok := params[key]
	if !ok || v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// boolFlag returns nil when the parameter is absent. Present parameters set
// the flag: "true" means true, anything else means false.
func boolFlag(params map[string]string, key string) *bool {
	v, ok := params[key]
	if !ok {
		return nil
	}
	b := v == "true"
	return &b
}

func intValue(params map[string]string, key string, fallback int) int {
	v, ok := params[key]
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return n
}

func int64Value(params map[string]string, key string, fallback int64) int64 {
	v, ok := params[key]
	if !ok {
		return fallback
	}
	n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if err != nil {
		return fallback
	}
	return n
}
