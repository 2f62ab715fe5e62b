package filterspec

import (
	"fmt"
	"strings"
	"time"
)

// summaryDateLayouts are the formats tried when rendering a raw date bound.
var summaryDateLayouts = []string{time.RFC3339, "2006-01-02"}

// Summary renders the active filters as an ordered list of human-readable strings for
// UI display. Nothing parses this representation back.
func (f FilterSpec) Summary() []string {
	var out []string

	if f.Search != "" {
		out = append(out, fmt.Sprintf("Search: %q", f.Search))
	}
	out = appendList(out, "Status", f.Status)
	out = appendList(out, "Type", f.PageType)
	out = appendList(out, "Asset Type", f.AssetType)
	out = appendList(out, "Section Type", f.SectionType)
	out = appendList(out, "Category", f.Category)
	out = appendList(out, "Tags", f.Tags)

	if f.AuthorID != "" {
		out = append(out, "Author: "+f.AuthorID)
	}

	out = appendRange(out, "Created", f.CreatedAfter, f.CreatedBefore)
	out = appendRange(out, "Updated", f.UpdatedAfter, f.UpdatedBefore)
	out = appendRange(out, "Published", f.PublishedAfter, f.PublishedBefore)

	out = appendFlag(out, "Public", f.IsPublic)
	out = appendFlag(out, "Active", f.IsActive)
	out = appendFlag(out, "Visible", f.IsVisible)

	if f.MinSeoScore > 0 || f.MaxSeoScore > 0 {
		out = append(out, "SEO Score: "+boundsLabel(
			numLabel(f.MinSeoScore > 0, fmt.Sprint(f.MinSeoScore)),
			numLabel(f.MaxSeoScore > 0, fmt.Sprint(f.MaxSeoScore)),
		))
	}
	if f.MinFileSize > 0 || f.MaxFileSize > 0 {
		out = append(out, "File Size: "+boundsLabel(
			numLabel(f.MinFileSize > 0, fmt.Sprint(f.MinFileSize)),
			numLabel(f.MaxFileSize > 0, fmt.Sprint(f.MaxFileSize)),
		))
	}

	if f.SortBy != "" {
		order := f.SortOrder
		if order == "" {
			order = "desc"
		}
		out = append(out, fmt.Sprintf("Sort: %s (%s)", f.SortBy, order))
	}

	return out
}

func appendList(out []string, label string, values []string) []string {
	if len(values) == 0 {
		return out
	}
	return append(out, label+": "+strings.Join(values, ", "))
}

func appendFlag(out []string, label string, flag *bool) []string {
	if flag == nil {
		return out
	}
	if *flag {
		return append(out, label+": yes")
	}
	return append(out, label+": no")
}

func appendRange(out []string, label, after, before string) []string {
	if after == "" && before == "" {
		return out
	}
	return append(out, label+": "+boundsLabel(displayDate(after), displayDate(before)))
}

// boundsLabel renders "lo - hi", "from lo" or "until hi".
func boundsLabel(lo, hi string) string {
	switch {
	case lo != "" && hi != "":
		return lo + " - " + hi
	case lo != "":
		return "from " + lo
	default:
		return "until " + hi
	}
}

func numLabel(set bool, v string) string {
	if !set {
		return ""
	}
	return v
}

// displayDate renders a raw date bound as M/D/YYYY, falling back to the raw
// string when it cannot be parsed.
func displayDate(raw string) string {
	if raw == "" {
		return ""
	}
	for _, layout := range summaryDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return fmt.Sprintf("%d/%d/%d", t.Month(), t.Day(), t.Year())
		}
	}
	return raw
}
