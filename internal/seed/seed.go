// Package seed loads content fixtures from a YAML file into an empty store.
package seed

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	domcontent "github.com/lumenwork/contentdex/internal/domain/content"
	contentrepo "github.com/lumenwork/contentdex/internal/repository/content"
)

type fixtureFile struct {
	Pages     []pageFixture     `yaml:"pages"`
	Templates []templateFixture `yaml:"templates"`
	Media     []mediaFixture    `yaml:"media"`
	Sections  []sectionFixture  `yaml:"sections"`
}

type pageFixture struct {
	Title           string   `yaml:"title"`
	Slug            string   `yaml:"slug"`
	PageKey         string   `yaml:"page_key"`
	MetaDescription string   `yaml:"meta_description"`
	MetaKeywords    string   `yaml:"meta_keywords"`
	PageType        string   `yaml:"page_type"`
	Status          string   `yaml:"status"`
	AuthorID        string   `yaml:"author_id"`
	IsPublic        bool     `yaml:"is_public"`
	SeoScore        int      `yaml:"seo_score"`
	Tags            []string `yaml:"tags"`
	PublishedAt     string   `yaml:"published_at"`
}

type templateFixture struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Category    string `yaml:"category"`
	Status      string `yaml:"status"`
	IsActive    bool   `yaml:"is_active"`
	Order       int    `yaml:"order"`
}

type mediaFixture struct {
	FileName     string `yaml:"file_name"`
	AltText      string `yaml:"alt_text"`
	Caption      string `yaml:"caption"`
	AssetType    string `yaml:"asset_type"`
	MimeType     string `yaml:"mime_type"`
	FileSize     int64  `yaml:"file_size"`
	URL          string `yaml:"url"`
	ThumbnailURL string `yaml:"thumbnail_url"`
	UploaderID   string `yaml:"uploader_id"`
	IsPublic     bool   `yaml:"is_public"`
}

type sectionFixture struct {
	Title       string `yaml:"title"`
	Content     string `yaml:"content"`
	SectionType string `yaml:"section_type"`
	PageSlug    string `yaml:"page_slug"`
	IsVisible   bool   `yaml:"is_visible"`
	Order       int    `yaml:"order"`
}

// Apply loads fixtures from path and inserts them. It is a no-op when the
// store already holds content, so a restart never duplicates records.
func Apply(ctx context.Context, repo *contentrepo.Repo, path string, logger *zap.Logger) error {
	n, err := repo.CountAll(ctx)
	if err != nil {
		return fmt.Errorf("count content: %w", err)
	}
	if n > 0 {
		logger.Info("Store already seeded, skipping fixtures", zap.Int64("records", n))
		return nil
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("read fixtures %s: %w", path, err)
	}

	var f fixtureFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parse fixtures: %w", err)
	}

	// Pages first: sections reference them by slug.
	slugToID := make(map[string]string, len(f.Pages))
	for _, fx := range f.Pages {
		p := domcontent.Page{
			Title:           fx.Title,
			Slug:            fx.Slug,
			PageKey:         fx.PageKey,
			MetaDescription: fx.MetaDescription,
			MetaKeywords:    fx.MetaKeywords,
			PageType:        fx.PageType,
			Status:          fx.Status,
			AuthorID:        fx.AuthorID,
			IsPublic:        fx.IsPublic,
			SeoScore:        fx.SeoScore,
			Tags:            fx.Tags,
			PublishedAt:     parseFixtureDate(fx.PublishedAt),
		}
		if err := repo.SavePage(ctx, &p); err != nil {
			return fmt.Errorf("seed page %q: %w", fx.Slug, err)
		}
		slugToID[p.Slug] = p.ID
	}

	for _, fx := range f.Templates {
		t := domcontent.Template{
			Name:        fx.Name,
			Description: fx.Description,
			Category:    fx.Category,
			Status:      fx.Status,
			IsActive:    fx.IsActive,
			Order:       fx.Order,
		}
		if err := repo.SaveTemplate(ctx, &t); err != nil {
			return fmt.Errorf("seed template %q: %w", fx.Name, err)
		}
	}

	for _, fx := range f.Media {
		m := domcontent.MediaAsset{
			FileName:     fx.FileName,
			AltText:      fx.AltText,
			Caption:      fx.Caption,
			AssetType:    fx.AssetType,
			MimeType:     fx.MimeType,
			FileSize:     fx.FileSize,
			URL:          fx.URL,
			ThumbnailURL: fx.ThumbnailURL,
			UploaderID:   fx.UploaderID,
			IsPublic:     fx.IsPublic,
		}
		if err := repo.SaveMedia(ctx, &m); err != nil {
			return fmt.Errorf("seed media %q: %w", fx.FileName, err)
		}
	}

	for _, fx := range f.Sections {
		s := domcontent.Section{
			Title:       fx.Title,
			Content:     fx.Content,
			SectionType: fx.SectionType,
			PageID:      slugToID[fx.PageSlug],
			IsVisible:   fx.IsVisible,
			Order:       fx.Order,
		}
		if err := repo.SaveSection(ctx, &s); err != nil {
			return fmt.Errorf("seed section %q: %w", fx.Title, err)
		}
	}

	logger.Info("Seeded content fixtures",
		zap.Int("pages", len(f.Pages)),
		zap.Int("templates", len(f.Templates)),
		zap.Int("media", len(f.Media)),
		zap.Int("sections", len(f.Sections)),
	)
	return nil
}

var fixtureDateLayouts = []string{time.RFC3339, "2006-01-02"}

func parseFixtureDate(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	for _, layout := range fixtureDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}
	return nil
}
