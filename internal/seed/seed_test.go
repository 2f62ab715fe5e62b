package seed

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/lumenwork/contentdex/internal/db/sqlite"
	domcontent "github.com/lumenwork/contentdex/internal/domain/content"
	"github.com/lumenwork/contentdex/internal/domain/search/filterspec"
	"github.com/lumenwork/contentdex/internal/domain/search/query"
	contentrepo "github.com/lumenwork/contentdex/internal/repository/content"
)

const fixtureYAML = `
pages:
  - title: Landing Page
    slug: landing
    page_key: landing
    meta_description: Main landing page
    page_type: marketing
    status: published
    author_id: author-1
    is_public: true
    seo_score: 75
    tags: [homepage, launch]
    published_at: "2024-04-01"
templates:
  - name: Hero Banner
    description: Full-width hero
    category: marketing
    status: published
    is_active: true
    order: 1
media:
  - file_name: launch.png
    alt_text: Launch banner
    asset_type: image
    mime_type: image/png
    file_size: 1024
    url: /media/launch.png
    is_public: true
sections:
  - title: Intro
    content: Welcome aboard
    section_type: text
    page_slug: landing
    is_visible: true
    order: 1
`

func newTestRepo(t *testing.T) *contentrepo.Repo {
	t.Helper()

	store, err := sqlite.Open(":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	if err := store.Migrate(context.Background()); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return contentrepo.New(store.DB())
}

func writeFixtures(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "seed.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write fixtures: %v", err)
	}
	return path
}

func TestApply(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	path := writeFixtures(t, fixtureYAML)

	if err := Apply(ctx, repo, path, zap.NewNop()); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	n, err := repo.CountAll(ctx)
	if err != nil {
		t.Fatalf("CountAll() error = %v", err)
	}
	if n != 4 {
		t.Fatalf("CountAll() = %d, want 4", n)
	}

	pages, err := repo.FindPages(ctx, query.ForPages(filterspec.FilterSpec{}))
	if err != nil {
		t.Fatalf("FindPages() error = %v", err)
	}
	if len(pages) != 1 {
		t.Fatalf("got %d pages, want 1", len(pages))
	}
	p := pages[0]
	if p.ID == "" {
		t.Error("seeded page has empty ID")
	}
	if got, want := p.Tags, []string{"homepage", "launch"}; len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("Tags = %v, want %v", got, want)
	}
	if p.PublishedAt == nil {
		t.Error("PublishedAt = nil, want parsed date")
	}

	sections, err := repo.FindSections(ctx, query.ForSections(filterspec.FilterSpec{}))
	if err != nil {
		t.Fatalf("FindSections() error = %v", err)
	}
	if len(sections) != 1 {
		t.Fatalf("got %d sections, want 1", len(sections))
	}
	if sections[0].PageID != p.ID {
		t.Errorf("section PageID = %q, want page ID %q", sections[0].PageID, p.ID)
	}
}

func TestApplySkipsPopulatedStore(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	path := writeFixtures(t, fixtureYAML)

	if err := repo.SavePage(ctx, &domcontent.Page{Title: "Existing", Slug: "existing", Status: "draft"}); err != nil {
		t.Fatalf("SavePage() error = %v", err)
	}

	if err := Apply(ctx, repo, path, zap.NewNop()); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	n, err := repo.CountAll(ctx)
	if err != nil {
		t.Fatalf("CountAll() error = %v", err)
	}
	if n != 1 {
		t.Fatalf("CountAll() = %d, want 1 (fixtures should be skipped)", n)
	}
}

func TestApplyMissingFile(t *testing.T) {
	repo := newTestRepo(t)

	if err := Apply(context.Background(), repo, "/nonexistent/seed.yaml", zap.NewNop()); err == nil {
		t.Fatal("Apply() error = nil, want read failure")
	}
}

func TestParseFixtureDate(t *testing.T) {
	if got := parseFixtureDate(""); got != nil {
		t.Errorf("parseFixtureDate(\"\") = %v, want nil", got)
	}
	if got := parseFixtureDate("2024-04-01"); got == nil {
		t.Error("parseFixtureDate(date-only) = nil, want value")
	}
	if got := parseFixtureDate("2024-04-01T10:00:00Z"); got == nil {
		t.Error("parseFixtureDate(RFC3339) = nil, want value")
	}
	if got := parseFixtureDate("not-a-date"); got != nil {
		t.Errorf("parseFixtureDate(invalid) = %v, want nil", got)
	}
}
