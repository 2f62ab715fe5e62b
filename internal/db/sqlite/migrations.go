package sqlite

// migrations is an ordered list of SQL migration groups. Each entry is a
// slice of SQL statements executed together in one transaction; the version
// number is the 1-based index into this slice.
//
// Timestamps are stored as RFC 3339 UTC strings so lexicographic comparison
// matches chronological order. Tags are a comma-separated list.
var migrations = [][]string{
	// Migration 1: content tables
	{
		`CREATE TABLE pages (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			slug TEXT UNIQUE NOT NULL,
			page_key TEXT NOT NULL DEFAULT '',
			meta_description TEXT NOT NULL DEFAULT '',
			meta_keywords TEXT NOT NULL DEFAULT '',
			page_type TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL DEFAULT 'draft',
			author_id TEXT NOT NULL DEFAULT '',
			is_public INTEGER NOT NULL DEFAULT 0,
			seo_score INTEGER NOT NULL DEFAULT 0,
			tags TEXT NOT NULL DEFAULT '',
			published_at TEXT,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL,
			deleted_at TEXT
		)`,

		`CREATE TABLE templates (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			category TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL DEFAULT 'draft',
			is_active INTEGER NOT NULL DEFAULT 1,
			sort_order INTEGER NOT NULL DEFAULT 0,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,

		`CREATE TABLE media_assets (
			id TEXT PRIMARY KEY,
			file_name TEXT NOT NULL,
			alt_text TEXT NOT NULL DEFAULT '',
			caption TEXT NOT NULL DEFAULT '',
			asset_type TEXT NOT NULL DEFAULT '',
			mime_type TEXT NOT NULL DEFAULT '',
			file_size INTEGER NOT NULL DEFAULT 0,
			url TEXT NOT NULL DEFAULT '',
			thumbnail_url TEXT NOT NULL DEFAULT '',
			uploader_id TEXT NOT NULL DEFAULT '',
			is_public INTEGER NOT NULL DEFAULT 0,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL,
			deleted_at TEXT
		)`,

		`CREATE TABLE sections (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			content TEXT NOT NULL DEFAULT '',
			section_type TEXT NOT NULL DEFAULT '',
			page_id TEXT NOT NULL DEFAULT '',
			is_visible INTEGER NOT NULL DEFAULT 1,
			sort_order INTEGER NOT NULL DEFAULT 0,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,

		`CREATE INDEX idx_pages_status ON pages(status)`,
		`CREATE INDEX idx_pages_updated_at ON pages(updated_at)`,
		`CREATE INDEX idx_pages_deleted_at ON pages(deleted_at)`,
		`CREATE INDEX idx_templates_category ON templates(category)`,
		`CREATE INDEX idx_media_asset_type ON media_assets(asset_type)`,
		`CREATE INDEX idx_media_deleted_at ON media_assets(deleted_at)`,
		`CREATE INDEX idx_sections_page_id ON sections(page_id)`,
	},
}
