package chi

import (
	"time"

	"github.com/lumenwork/contentdex/internal/domain/content"
)

// listResponse is the browse-endpoint envelope: matched records plus a
// human-readable summary of the filters that produced them.
type listResponse[T any] struct {
	Items   []T      `json:"items"`
	Page    int      `json:"page"`
	Limit   int      `json:"limit"`
	Applied []string `json:"applied,omitempty"`
}

type pageJSON struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Slug            string     `json:"slug"`
	PageKey         string     `json:"pageKey,omitempty"`
	MetaDescription string     `json:"metaDescription,omitempty"`
	MetaKeywords    string     `json:"metaKeywords,omitempty"`
	PageType        string     `json:"pageType,omitempty"`
	Status          string     `json:"status"`
	AuthorID        string     `json:"authorId,omitempty"`
	IsPublic        bool       `json:"isPublic"`
	SeoScore        int        `json:"seoScore"`
	Tags            []string   `json:"tags,omitempty"`
	PublishedAt     *time.Time `json:"publishedAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

func pageToJSON(p *content.Page) pageJSON {
	return pageJSON{
		ID:              p.ID,
		Title:           p.Title,
		Slug:            p.Slug,
		PageKey:         p.PageKey,
		MetaDescription: p.MetaDescription,
		MetaKeywords:    p.MetaKeywords,
		PageType:        p.PageType,
		Status:          p.Status,
		AuthorID:        p.AuthorID,
		IsPublic:        p.IsPublic,
		SeoScore:        p.SeoScore,
		Tags:            p.Tags,
		PublishedAt:     p.PublishedAt,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

type templateJSON struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category,omitempty"`
	Status      string    `json:"status"`
	IsActive    bool      `json:"isActive"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func templateToJSON(t *content.Template) templateJSON {
	return templateJSON{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		Category:    t.Category,
		Status:      t.Status,
		IsActive:    t.IsActive,
		Order:       t.Order,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

type mediaJSON struct {
	ID           string    `json:"id"`
	FileName     string    `json:"fileName"`
	AltText      string    `json:"altText,omitempty"`
	Caption      string    `json:"caption,omitempty"`
	AssetType    string    `json:"assetType,omitempty"`
	MimeType     string    `json:"mimeType,omitempty"`
	FileSize     int64     `json:"fileSize"`
	URL          string    `json:"url,omitempty"`
	ThumbnailURL string    `json:"thumbnailUrl,omitempty"`
	UploaderID   string    `json:"uploaderId,omitempty"`
	IsPublic     bool      `json:"isPublic"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func mediaToJSON(m *content.MediaAsset) mediaJSON {
	return mediaJSON{
		ID:           m.ID,
		FileName:     m.FileName,
		AltText:      m.AltText,
		Caption:      m.Caption,
		AssetType:    m.AssetType,
		MimeType:     m.MimeType,
		FileSize:     m.FileSize,
		URL:          m.URL,
		ThumbnailURL: m.ThumbnailURL,
		UploaderID:   m.UploaderID,
		IsPublic:     m.IsPublic,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

type sectionJSON struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content,omitempty"`
	SectionType string    `json:"sectionType,omitempty"`
	PageID      string    `json:"pageId,omitempty"`
	IsVisible   bool      `json:"isVisible"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func sectionToJSON(s *content.Section) sectionJSON {
	return sectionJSON{
		ID:          s.ID,
		Title:       s.Title,
		Content:     s.Content,
		SectionType: s.SectionType,
		PageID:      s.PageID,
		IsVisible:   s.IsVisible,
		Order:       s.Order,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}
