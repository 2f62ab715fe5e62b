package search

import (
	"context"

	"github.com/lumenwork/contentdex/internal/domain/content"
	"github.com/lumenwork/contentdex/internal/domain/search/query"
)

// Repository defines the storage contract for search operations: one
// find-many per entity kind plus the simpler title lookup used for
// suggestions. Implementations translate the query predicate themselves.
type Repository interface {
	FindPages(ctx context.Context, q query.Query) ([]content.Page, error)
	FindTemplates(ctx context.Context, q query.Query) ([]content.Template, error)
	FindMedia(ctx context.Context, q query.Query) ([]content.MediaAsset, error)
	FindSections(ctx context.Context, q query.Query) ([]content.Section, error)

	// TitlesContaining returns up to limit page titles, template names and
	// media file names containing substr, case-insensitive.
	TitlesContaining(ctx context.Context, substr string, limit int) ([]string, error)
}
