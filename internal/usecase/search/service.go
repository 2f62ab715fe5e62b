// Package search orchestrates multi-entity content search: it fans a query
// out across entity kinds, ranks the combined results, and derives facets and
// suggestions.
package search

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/lumenwork/contentdex/internal/domain"
	"github.com/lumenwork/contentdex/internal/domain/content"
	"github.com/lumenwork/contentdex/internal/domain/search/filterspec"
	"github.com/lumenwork/contentdex/internal/domain/search/query"
	"github.com/lumenwork/contentdex/internal/domain/search/result"
	"github.com/lumenwork/contentdex/internal/domain/search/score"
)

// Suggestion thresholds.
const (
	// DefaultSuggestionLimit caps suggestion strings per search call.
	DefaultSuggestionLimit = 10
	// minQueryLenForNoSuggest is the query length at which suggestions stop
	// being offered for non-empty result sets.
	minQueryLenForNoSuggest = 3
)

// Params configures one aggregated search call.
type Params struct {
	// Query is the free-text search string.
	Query string
	// Kinds limits the search to a subset of entity kinds; empty means all.
	Kinds []content.Kind
	// Filters carries additional structured filters.
	Filters filterspec.FilterSpec
	// Limit caps the returned slice and the per-kind fetch.
	Limit int
	// Offset is the slice offset into the globally sorted result list.
	Offset int
}

// Response is the aggregated search output.
type Response struct {
	Results     []result.Result `json:"results"`
	Total       int             `json:"total"`
	Facets      result.Facets   `json:"facets"`
	Suggestions []string        `json:"suggestions,omitempty"`
}

// Service implements the search aggregator.
type Service struct {
	repo            Repository
	suggestionLimit int
}

// New creates a search service.
func New(repo Repository) *Service {
	return &Service{repo: repo, suggestionLimit: DefaultSuggestionLimit}
}

// WithSuggestionLimit overrides the suggestion cap.
func (s *Service) WithSuggestionLimit(n int) *Service {
	if n > 0 {
		s.suggestionLimit = n
	}
	return s
}

// Search runs the query against every requested entity kind, scores and
// sorts the combined results, and computes facets from the pre-slice list.
//
// Each kind fetches at most Limit rows, so Total and the facets reflect
// per-kind-capped fetches rather than true global counts. Kinds are fetched
// in the fixed order page, template, media, section; the sort is stable, so
// score ties keep that order.
//
// A failed lookup for any kind fails the whole call: dropping one kind would
// produce misleading totals and facets.
func (s *Service) Search(ctx context.Context, p Params) (*Response, error) {
	kinds := p.Kinds
	if len(kinds) == 0 {
		kinds = content.AllKinds()
	}
	for _, k := range kinds {
		if !k.IsValid() {
			return nil, fmt.Errorf("%w: %q", domain.ErrUnknownEntityKind, k)
		}
	}

	limit := query.ClampLimit(p.Limit)

	f := p.Filters
	f.Search = p.Query
	f.Limit = limit
	f.Page = 1

	var all []result.Result
	for _, kind := range content.AllKinds() {
		if !containsKind(kinds, kind) {
			continue
		}
		results, err := s.searchKind(ctx, kind, f)
		if err != nil {
			return nil, fmt.Errorf("search %s: %w", kind, err)
		}
		all = append(all, results...)
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].RelevanceScore > all[j].RelevanceScore
	})

	facets := result.NewFacets()
	for _, r := range all {
		facets.Add(r)
	}

	resp := &Response{
		Results: slice(all, p.Offset, limit),
		Total:   len(all),
		Facets:  facets,
	}

	if len([]rune(p.Query)) < minQueryLenForNoSuggest || len(all) == 0 {
		suggestions, err := s.repo.TitlesContaining(ctx, p.Query, s.suggestionLimit)
		if err != nil {
			return nil, fmt.Errorf("suggestions: %w", err)
		}
		resp.Suggestions = suggestions
	}

	return resp, nil
}

func (s *Service) searchKind(
	ctx context.Context, kind content.Kind, f filterspec.FilterSpec,
) ([]result.Result, error) {
	q, err := query.ForKind(kind, f)
	if err != nil {
		return nil, err
	}

	switch kind {
	case content.KindPage:
		pages, err := s.repo.FindPages(ctx, q)
		if err != nil {
			return nil, err
		}
		out := make([]result.Result, len(pages))
		for i := range pages {
			out[i] = projectPage(f.Search, &pages[i])
		}
		return out, nil

	case content.KindTemplate:
		templates, err := s.repo.FindTemplates(ctx, q)
		if err != nil {
			return nil, err
		}
		out := make([]result.Result, len(templates))
		for i := range templates {
			out[i] = projectTemplate(f.Search, &templates[i])
		}
		return out, nil

	case content.KindMedia:
		assets, err := s.repo.FindMedia(ctx, q)
		if err != nil {
			return nil, err
		}
		out := make([]result.Result, len(assets))
		for i := range assets {
			out[i] = projectMedia(f.Search, &assets[i])
		}
		return out, nil

	default:
		sections, err := s.repo.FindSections(ctx, q)
		if err != nil {
			return nil, err
		}
		out := make([]result.Result, len(sections))
		for i := range sections {
			out[i] = projectSection(f.Search, &sections[i])
		}
		return out, nil
	}
}

// Projections compute the relevance score over each kind's canonical text
// fields, most important first.

func projectPage(q string, p *content.Page) result.Result {
	fields := []string{p.Title, p.MetaDescription}
	return result.Result{
		ID:          p.ID,
		Type:        content.KindPage,
		Title:       p.Title,
		Description: p.MetaDescription,
		URL:         "/" + p.Slug,
		Metadata: map[string]any{
			"status":   p.Status,
			"pageType": p.PageType,
			"slug":     p.Slug,
		},
		RelevanceScore: score.Relevance(q, fields),
		Highlights:     score.Highlights(q, fields),
	}
}

func projectTemplate(q string, t *content.Template) result.Result {
	fields := []string{t.Name, t.Description}
	return result.Result{
		ID:          t.ID,
		Type:        content.KindTemplate,
		Title:       t.Name,
		Description: t.Description,
		Metadata: map[string]any{
			"status":   t.Status,
			"category": t.Category,
		},
		RelevanceScore: score.Relevance(q, fields),
		Highlights:     score.Highlights(q, fields),
	}
}

func projectMedia(q string, m *content.MediaAsset) result.Result {
	fields := []string{m.FileName, m.AltText, m.Caption}
	return result.Result{
		ID:           m.ID,
		Type:         content.KindMedia,
		Title:        m.FileName,
		Description:  m.Caption,
		URL:          m.URL,
		ThumbnailURL: m.ThumbnailURL,
		Metadata: map[string]any{
			"assetType": m.AssetType,
			"mimeType":  m.MimeType,
			"fileSize":  strconv.FormatInt(m.FileSize, 10),
		},
		RelevanceScore: score.Relevance(q, fields),
		Highlights:     score.Highlights(q, fields),
	}
}

func projectSection(q string, sec *content.Section) result.Result {
	fields := []string{sec.Title, sec.Content}
	return result.Result{
		ID:    sec.ID,
		Type:  content.KindSection,
		Title: sec.Title,
		Metadata: map[string]any{
			"sectionType": sec.SectionType,
			"pageId":      sec.PageID,
		},
		RelevanceScore: score.Relevance(q, fields),
		Highlights:     score.Highlights(q, fields),
	}
}

func slice(results []result.Result, offset, limit int) []result.Result {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(results) {
		return []result.Result{}
	}
	end := offset + limit
	if end > len(results) {
		end = len(results)
	}
	return results[offset:end]
}

func containsKind(kinds []content.Kind, k content.Kind) bool {
	for _, kk := range kinds {
		if kk == k {
			return true
		}
	}
	return false
}
