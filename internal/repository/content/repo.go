// Package content implements the search repository over SQLite: typed
// queries are compiled to SQL against the content tables.
package content

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	domcontent "github.com/lumenwork/contentdex/internal/domain/content"
	"github.com/lumenwork/contentdex/internal/domain/search/query"
)

// Repo implements usecase/search.Repository and usecase/health.ContentCounter.
type Repo struct {
	db *sql.DB
}

// New creates a content repository.
func New(db *sql.DB) *Repo {
	return &Repo{db: db}
}

var pageSelectColumns = []string{
	"id", "title", "slug", "page_key", "meta_description", "meta_keywords",
	"page_type", "status", "author_id", "is_public", "seo_score", "tags",
	"published_at", "created_at", "updated_at", "deleted_at",
}

// FindPages returns pages matching the query.
func (r *Repo) FindPages(ctx context.Context, q query.Query) ([]domcontent.Page, error) {
	stmt, args, err := selectSQL("pages", pageSelectColumns, pageColumns, q)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("query pages: %w", err)
	}
	defer rows.Close()

	var pages []domcontent.Page
	for rows.Next() {
		var (
			p                      domcontent.Page
			isPublic               int
			tags                   string
			createdAt, updatedAt   string
			publishedAt, deletedAt sql.NullString
		)
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Slug, &p.PageKey, &p.MetaDescription,
			&p.MetaKeywords, &p.PageType, &p.Status, &p.AuthorID, &isPublic,
			&p.SeoScore, &tags, &publishedAt, &createdAt, &updatedAt, &deletedAt,
		); err != nil {
			return nil, fmt.Errorf("scan page: %w", err)
		}
		p.IsPublic = isPublic != 0
		p.Tags = splitTags(tags)
		p.PublishedAt = parseTimePtr(publishedAt)
		p.CreatedAt = parseTime(createdAt)
		p.UpdatedAt = parseTime(updatedAt)
		p.DeletedAt = parseTimePtr(deletedAt)
		pages = append(pages, p)
	}
	return pages, rows.Err()
}

var templateSelectColumns = []string{
	"id", "name", "description", "category", "status", "is_active",
	"sort_order", "created_at", "updated_at",
}

// FindTemplates returns templates matching the query.
func (r *Repo) FindTemplates(ctx context.Context, q query.Query) ([]domcontent.Template, error) {
	stmt, args, err := selectSQL("templates", templateSelectColumns, templateColumns, q)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("query templates: %w", err)
	}
	defer rows.Close()

	var templates []domcontent.Template
	for rows.Next() {
		var (
			t                    domcontent.Template
			isActive             int
			createdAt, updatedAt string
		)
		if err := rows.Scan(
			&t.ID, &t.Name, &t.Description, &t.Category, &t.Status,
			&isActive, &t.Order, &createdAt, &updatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan template: %w", err)
		}
		t.IsActive = isActive != 0
		t.CreatedAt = parseTime(createdAt)
		t.UpdatedAt = parseTime(updatedAt)
		templates = append(templates, t)
	}
	return templates, rows.Err()
}

var mediaSelectColumns = []string{
	"id", "file_name", "alt_text", "caption", "asset_type", "mime_type",
	"file_size", "url", "thumbnail_url", "uploader_id", "is_public",
	"created_at", "updated_at", "deleted_at",
}

// FindMedia returns media assets matching the query.
func (r *Repo) FindMedia(ctx context.Context, q query.Query) ([]domcontent.MediaAsset, error) {
	stmt, args, err := selectSQL("media_assets", mediaSelectColumns, mediaColumns, q)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("query media_assets: %w", err)
	}
	defer rows.Close()

	var assets []domcontent.MediaAsset
	for rows.Next() {
		var (
			m                    domcontent.MediaAsset
			isPublic             int
			createdAt, updatedAt string
			deletedAt            sql.NullString
		)
		if err := rows.Scan(
			&m.ID, &m.FileName, &m.AltText, &m.Caption, &m.AssetType,
			&m.MimeType, &m.FileSize, &m.URL, &m.ThumbnailURL, &m.UploaderID,
			&isPublic, &createdAt, &updatedAt, &deletedAt,
		); err != nil {
			return nil, fmt.Errorf("scan media asset: %w", err)
		}
		m.IsPublic = isPublic != 0
		m.CreatedAt = parseTime(createdAt)
		m.UpdatedAt = parseTime(updatedAt)
		m.DeletedAt = parseTimePtr(deletedAt)
		assets = append(assets, m)
	}
	return assets, rows.Err()
}

var sectionSelectColumns = []string{
	"id", "title", "content", "section_type", "page_id", "is_visible",
	"sort_order", "created_at", "updated_at",
}

// FindSections returns sections matching the query.
func (r *Repo) FindSections(ctx context.Context, q query.Query) ([]domcontent.Section, error) {
	stmt, args, err := selectSQL("sections", sectionSelectColumns, sectionColumns, q)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("query sections: %w", err)
	}
	defer rows.Close()

	var sections []domcontent.Section
	for rows.Next() {
		var (
			s                    domcontent.Section
			isVisible            int
			createdAt, updatedAt string
		)
		if err := rows.Scan(
			&s.ID, &s.Title, &s.Content, &s.SectionType, &s.PageID,
			&isVisible, &s.Order, &createdAt, &updatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan section: %w", err)
		}
		s.IsVisible = isVisible != 0
		s.CreatedAt = parseTime(createdAt)
		s.UpdatedAt = parseTime(updatedAt)
		sections = append(sections, s)
	}
	return sections, rows.Err()
}

// TitlesContaining returns up to limit distinct page titles, template names
// and media file names containing substr, case-insensitive, sorted
// alphabetically. Soft-deleted records are skipped.
func (r *Repo) TitlesContaining(ctx context.Context, substr string, limit int) ([]string, error) {
	pattern := "%" + escapeLike(strings.ToLower(substr)) + "%"

	const stmt = `SELECT title FROM pages WHERE deleted_at IS NULL AND LOWER(title) LIKE ?1 ESCAPE '\'
		UNION
		SELECT name FROM templates WHERE LOWER(name) LIKE ?1 ESCAPE '\'
		UNION
		SELECT file_name FROM media_assets WHERE deleted_at IS NULL AND LOWER(file_name) LIKE ?1 ESCAPE '\'
		ORDER BY 1 LIMIT ?2`

	rows, err := r.db.QueryContext(ctx, stmt, pattern, limit)
	if err != nil {
		return nil, fmt.Errorf("query titles: %w", err)
	}
	defer rows.Close()

	var titles []string
	for rows.Next() {
		var title string
		if err := rows.Scan(&title); err != nil {
			return nil, fmt.Errorf("scan title: %w", err)
		}
		titles = append(titles, title)
	}
	return titles, rows.Err()
}

// CountAll returns the total number of content records across every table.
func (r *Repo) CountAll(ctx context.Context) (int64, error) {
	const stmt = `SELECT
		(SELECT COUNT(*) FROM pages) +
		(SELECT COUNT(*) FROM templates) +
		(SELECT COUNT(*) FROM media_assets) +
		(SELECT COUNT(*) FROM sections)`

	var n int64
	if err := r.db.QueryRowContext(ctx, stmt).Scan(&n); err != nil {
		return 0, fmt.Errorf("count content: %w", err)
	}
	return n, nil
}

// SavePage inserts or replaces a page. A missing ID and zero timestamps are
// filled in.
func (r *Repo) SavePage(ctx context.Context, p *domcontent.Page) error {
	fillIdentity(&p.ID, &p.CreatedAt, &p.UpdatedAt)

	_, err := r.db.ExecContext(ctx, `INSERT OR REPLACE INTO pages
		(id, title, slug, page_key, meta_description, meta_keywords, page_type,
		 status, author_id, is_public, seo_score, tags, published_at,
		 created_at, updated_at, deleted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Title, p.Slug, p.PageKey, p.MetaDescription, p.MetaKeywords,
		p.PageType, p.Status, p.AuthorID, boolToInt(p.IsPublic), p.SeoScore,
		joinTags(p.Tags), formatTimePtr(p.PublishedAt),
		formatTime(p.CreatedAt), formatTime(p.UpdatedAt), formatTimePtr(p.DeletedAt),
	)
	if err != nil {
		return fmt.Errorf("save page %s: %w", p.ID, err)
	}
	return nil
}

// SaveTemplate inserts or replaces a template.
func (r *Repo) SaveTemplate(ctx context.Context, t *domcontent.Template) error {
	fillIdentity(&t.ID, &t.CreatedAt, &t.UpdatedAt)

	_, err := r.db.ExecContext(ctx, `INSERT OR REPLACE INTO templates
		(id, name, description, category, status, is_active, sort_order,
		 created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Name, t.Description, t.Category, t.Status,
		boolToInt(t.IsActive), t.Order,
		formatTime(t.CreatedAt), formatTime(t.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("save template %s: %w", t.ID, err)
	}
	return nil
}

// SaveMedia inserts or replaces a media asset.
func (r *Repo) SaveMedia(ctx context.Context, m *domcontent.MediaAsset) error {
	fillIdentity(&m.ID, &m.CreatedAt, &m.UpdatedAt)

	_, err := r.db.ExecContext(ctx, `INSERT OR REPLACE INTO media_assets
		(id, file_name, alt_text, caption, asset_type, mime_type, file_size,
		 url, thumbnail_url, uploader_id, is_public, created_at, updated_at,
		 deleted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.ID, m.FileName, m.AltText, m.Caption, m.AssetType, m.MimeType,
		m.FileSize, m.URL, m.ThumbnailURL, m.UploaderID, boolToInt(m.IsPublic),
		formatTime(m.CreatedAt), formatTime(m.UpdatedAt), formatTimePtr(m.DeletedAt),
	)
	if err != nil {
		return fmt.Errorf("save media asset %s: %w", m.ID, err)
	}
	return nil
}

// SaveSection inserts or replaces a section.
func (r *Repo) SaveSection(ctx context.Context, s *domcontent.Section) error {
	fillIdentity(&s.ID, &s.CreatedAt, &s.UpdatedAt)

	_, err := r.db.ExecContext(ctx, `INSERT OR REPLACE INTO sections
		(id, title, content, section_type, page_id, is_visible, sort_order,
		 created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.Title, s.Content, s.SectionType, s.PageID,
		boolToInt(s.IsVisible), s.Order,
		formatTime(s.CreatedAt), formatTime(s.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("save section %s: %w", s.ID, err)
	}
	return nil
}

func fillIdentity(id *string, createdAt, updatedAt *time.Time) {
	if *id == "" {
		*id = uuid.NewString()
	}
	now := time.Now().UTC()
	if createdAt.IsZero() {
		*createdAt = now
	}
	if updatedAt.IsZero() {
		*updatedAt = *createdAt
	}
}
