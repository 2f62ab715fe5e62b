package content

import (
	"context"
	"testing"
	"time"

	"github.com/lumenwork/contentdex/internal/db/sqlite"
	domcontent "github.com/lumenwork/contentdex/internal/domain/content"
)

// newTestRepo opens a migrated in-memory database and returns a repository
// over it.
func newTestRepo(t *testing.T) *Repo {
	t.Helper()

	store, err := sqlite.Open(":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	if err := store.Migrate(context.Background()); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return New(store.DB())
}

func ts(day int) time.Time {
	return time.Date(2024, time.March, day, 12, 0, 0, 0, time.UTC)
}

func tsPtr(day int) *time.Time {
	t := ts(day)
	return &t
}

// seedFixtures inserts a small content corpus: three pages (one soft
// deleted), two templates, two media assets (one soft deleted) and two
// sections.
func seedFixtures(t *testing.T, repo *Repo) {
	t.Helper()
	ctx := context.Background()

	pages := []domcontent.Page{
		{
			ID: "page-hero", Title: "Hero Section", Slug: "hero-section",
			MetaDescription: "Main hero section content", PageType: "landing",
			Status: "published", AuthorID: "author-1", IsPublic: true,
			SeoScore: 80, Tags: []string{"homepage", "marketing"},
			PublishedAt: tsPtr(3), CreatedAt: ts(1), UpdatedAt: ts(5),
		},
		{
			ID: "page-pricing", Title: "Pricing", Slug: "pricing",
			MetaDescription: "Plans and pricing", PageType: "standard",
			Status: "draft", AuthorID: "author-2",
			SeoScore: 40, Tags: []string{"sales"},
			CreatedAt: ts(2), UpdatedAt: ts(4),
		},
		{
			ID: "page-old-hero", Title: "Old hero banner", Slug: "old-hero",
			Status: "archived", CreatedAt: ts(1), UpdatedAt: ts(2),
			DeletedAt: tsPtr(6),
		},
	}
	for i := range pages {
		if err := repo.SavePage(ctx, &pages[i]); err != nil {
			t.Fatalf("save page: %v", err)
		}
	}

	templates := []domcontent.Template{
		{
			ID: "tpl-hero", Name: "hero", Description: "Full-width hero block",
			Category: "marketing", Status: "published", IsActive: true, Order: 2,
			CreatedAt: ts(1), UpdatedAt: ts(3),
		},
		{
			ID: "tpl-footer", Name: "footer", Description: "Site footer",
			Category: "layout", Status: "published", IsActive: false, Order: 1,
			CreatedAt: ts(2), UpdatedAt: ts(2),
		},
	}
	for i := range templates {
		if err := repo.SaveTemplate(ctx, &templates[i]); err != nil {
			t.Fatalf("save template: %v", err)
		}
	}

	media := []domcontent.MediaAsset{
		{
			ID: "media-banner", FileName: "hero-banner.png",
			AltText: "Homepage hero banner", AssetType: "image",
			MimeType: "image/png", FileSize: 2048, URL: "/media/hero-banner.png",
			IsPublic: true, CreatedAt: ts(2), UpdatedAt: ts(2),
		},
		{
			ID: "media-old", FileName: "old-hero.jpg", AssetType: "image",
			MimeType: "image/jpeg", FileSize: 512,
			CreatedAt: ts(1), UpdatedAt: ts(1), DeletedAt: tsPtr(5),
		},
	}
	for i := range media {
		if err := repo.SaveMedia(ctx, &media[i]); err != nil {
			t.Fatalf("save media: %v", err)
		}
	}

	sections := []domcontent.Section{
		{
			ID: "sec-intro", Title: "Intro", Content: "Welcome to the hero page",
			SectionType: "text", PageID: "page-hero", IsVisible: true, Order: 1,
			CreatedAt: ts(1), UpdatedAt: ts(1),
		},
		{
			ID: "sec-cta", Title: "Call to action", Content: "Sign up today",
			SectionType: "cta", PageID: "page-hero", IsVisible: false, Order: 2,
			CreatedAt: ts(1), UpdatedAt: ts(1),
		},
	}
	for i := range sections {
		if err := repo.SaveSection(ctx, &sections[i]); err != nil {
			t.Fatalf("save section: %v", err)
		}
	}
}

func pageIDs(pages []domcontent.Page) []string {
	ids := make([]string, len(pages))
	for i, p := range pages {
		ids[i] = p.ID
	}
	return ids
}
