// Package content defines the entity kinds and raw records served by the
// content store.
package content

import "time"

// Kind identifies a searchable content entity kind.
type Kind string

// Supported entity kinds.
const (
	KindPage     Kind = "page"
	KindTemplate Kind = "template"
	KindMedia    Kind = "media"
	KindSection  Kind = "section"
)

// AllKinds returns every kind in the fixed search order.
func AllKinds() []Kind {
	return []Kind{KindPage, KindTemplate, KindMedia, KindSection}
}

// IsValid reports whether k is a supported kind.
func (k Kind) IsValid() bool {
	switch k {
	case KindPage, KindTemplate, KindMedia, KindSection:
		return true
	}
	return false
}

// Page is a CMS page record.
type Page struct {
	ID              string
	Title           string
	Slug            string
	PageKey         string
	MetaDescription string
	MetaKeywords    string
	PageType        string
	Status          string
	AuthorID        string
	IsPublic        bool
	SeoScore        int
	Tags            []string
	PublishedAt     *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       *time.Time
}

// Template is a reusable page template record.
type Template struct {
	ID          string
	Name        string
	Description string
	Category    string
	Status      string
	IsActive    bool
	Order       int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// MediaAsset is an uploaded media library record.
type MediaAsset struct {
	ID           string
	FileName     string
	AltText      string
	Caption      string
	AssetType    string
	MimeType     string
	FileSize     int64
	URL          string
	ThumbnailURL string
	UploaderID   string
	IsPublic     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time
}

// Section is a content section placed on a page.
type Section struct {
	ID          string
	Title       string
	Content     string
	SectionType string
	PageID      string
	IsVisible   bool
	Order       int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
