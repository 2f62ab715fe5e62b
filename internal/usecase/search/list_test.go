package search

import (
	"context"
	"errors"
	"testing"

	"github.com/lumenwork/contentdex/internal/domain/content"
	"github.com/lumenwork/contentdex/internal/domain/search/filterspec"
	"github.com/lumenwork/contentdex/internal/domain/search/query"
)

func TestListPages(t *testing.T) {
	repo := &mockRepo{pages: []content.Page{{ID: "p1", Title: "Home"}}}
	svc := New(repo)

	pages, err := svc.ListPages(context.Background(), filterspec.FilterSpec{Limit: 500})
	if err != nil {
		t.Fatalf("ListPages: %v", err)
	}
	if len(pages) != 1 || pages[0].ID != "p1" {
		t.Errorf("pages = %v", pages)
	}
	if repo.lastPageQuery.Take != query.MaxLimit {
		t.Errorf("Take = %d, want clamped to %d", repo.lastPageQuery.Take, query.MaxLimit)
	}
}

func TestListTemplates_Error(t *testing.T) {
	repo := &mockRepo{templatesErr: errors.New("locked")}
	svc := New(repo)

	if _, err := svc.ListTemplates(context.Background(), filterspec.FilterSpec{}); err == nil {
		t.Fatal("expected error")
	}
}
