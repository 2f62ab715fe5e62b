package search

import (
	"context"
	"fmt"

	"github.com/lumenwork/contentdex/internal/domain/content"
	"github.com/lumenwork/contentdex/internal/domain/search/filterspec"
	"github.com/lumenwork/contentdex/internal/domain/search/query"
)

// List operations back the per-kind browse endpoints: the same filter
// vocabulary as Search, but raw records instead of scored projections.

// ListPages returns pages matching the filter.
func (s *Service) ListPages(ctx context.Context, f filterspec.FilterSpec) ([]content.Page, error) {
	pages, err := s.repo.FindPages(ctx, query.ForPages(f))
	if err != nil {
		return nil, fmt.Errorf("list pages: %w", err)
	}
	return pages, nil
}

// ListTemplates returns templates matching the filter.
func (s *Service) ListTemplates(ctx context.Context, f filterspec.FilterSpec) ([]content.Template, error) {
	templates, err := s.repo.FindTemplates(ctx, query.ForTemplates(f))
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	return templates, nil
}

// ListMedia returns media assets matching the filter.
func (s *Service) ListMedia(ctx context.Context, f filterspec.FilterSpec) ([]content.MediaAsset, error) {
	assets, err := s.repo.FindMedia(ctx, query.ForMedia(f))
	if err != nil {
		return nil, fmt.Errorf("list media: %w", err)
	}
	return assets, nil
}

// ListSections returns sections matching the filter.
func (s *Service) ListSections(ctx context.Context, f filterspec.FilterSpec) ([]content.Section, error) {
	sections, err := s.repo.FindSections(ctx, query.ForSections(f))
	if err != nil {
		return nil, fmt.Errorf("list sections: %w", err)
	}
	return sections, nil
}
