package content

import (
	"fmt"
	"strings"
	"time"

	"github.com/lumenwork/contentdex/internal/domain"
	"github.com/lumenwork/contentdex/internal/domain/search/query"
)

// Column allowlists per table, keyed by the logical field names the query
// builder emits. Lookups outside the map fail the compile: nothing the
// caller supplies reaches the SQL text directly.
var (
	pageColumns = map[string]string{
		"title":           "title",
		"slug":            "slug",
		"pageKey":         "page_key",
		"metaDescription": "meta_description",
		"metaKeywords":    "meta_keywords",
		"pageType":        "page_type",
		"status":          "status",
		"authorId":        "author_id",
		"isPublic":        "is_public",
		"seoScore":        "seo_score",
		"tags":            "tags",
		"publishedAt":     "published_at",
		"createdAt":       "created_at",
		"updatedAt":       "updated_at",
		"deletedAt":       "deleted_at",
	}
	templateColumns = map[string]string{
		"name":        "name",
		"description": "description",
		"category":    "category",
		"status":      "status",
		"isActive":    "is_active",
		"order":       "sort_order",
		"createdAt":   "created_at",
		"updatedAt":   "updated_at",
	}
	mediaColumns = map[string]string{
		"fileName":     "file_name",
		"altText":      "alt_text",
		"caption":      "caption",
		"assetType":    "asset_type",
		"mimeType":     "mime_type",
		"fileSize":     "file_size",
		"url":          "url",
		"thumbnailUrl": "thumbnail_url",
		"uploaderId":   "uploader_id",
		"isPublic":     "is_public",
		"createdAt":    "created_at",
		"updatedAt":    "updated_at",
		"deletedAt":    "deleted_at",
	}
	sectionColumns = map[string]string{
		"title":       "title",
		"content":     "content",
		"sectionType": "section_type",
		"pageId":      "page_id",
		"isVisible":   "is_visible",
		"order":       "sort_order",
		"createdAt":   "created_at",
		"updatedAt":   "updated_at",
	}
)

// selectSQL renders a full SELECT for one table from a typed query.
func selectSQL(table string, cols []string, colMap map[string]string, q query.Query) (string, []any, error) {
	var sb strings.Builder
	sb.WriteString("SELECT ")
	sb.WriteString(strings.Join(cols, ", "))
	sb.WriteString(" FROM ")
	sb.WriteString(table)

	where, args, err := whereSQL(q.Where, colMap)
	if err != nil {
		return "", nil, err
	}
	if where != "" {
		sb.WriteString(" WHERE ")
		sb.WriteString(where)
	}

	order, err := orderSQL(q.OrderBy, colMap)
	if err != nil {
		return "", nil, err
	}
	if order != "" {
		sb.WriteString(" ORDER BY ")
		sb.WriteString(order)
	}

	sb.WriteString(" LIMIT ? OFFSET ?")
	args = append(args, q.Take, q.Skip)

	return sb.String(), args, nil
}

// whereSQL compiles a predicate tree to a WHERE fragment with positional
// args. A nil or empty predicate compiles to the empty string.
func whereSQL(p query.Predicate, colMap map[string]string) (string, []any, error) {
	if p == nil {
		return "", nil, nil
	}
	return compile(p, colMap)
}

func compile(p query.Predicate, colMap map[string]string) (string, []any, error) {
	switch v := p.(type) {
	case query.And:
		return compileGroup([]query.Predicate(v), " AND ", colMap)

	case query.Or:
		return compileGroup([]query.Predicate(v), " OR ", colMap)

	case query.Compare:
		col, err := column(v.Field, colMap)
		if err != nil {
			return "", nil, err
		}
		op, err := compareOp(v.Op)
		if err != nil {
			return "", nil, err
		}
		return col + " " + op + " ?", []any{sqlValue(v.Value)}, nil

	case query.In:
		col, err := column(v.Field, colMap)
		if err != nil {
			return "", nil, err
		}
		placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(v.Values)), ", ")
		args := make([]any, len(v.Values))
		for i, val := range v.Values {
			args[i] = val
		}
		return col + " IN (" + placeholders + ")", args, nil

	case query.Contains:
		col, err := column(v.Field, colMap)
		if err != nil {
			return "", nil, err
		}
		pattern := "%" + escapeLike(strings.ToLower(v.Value)) + "%"
		return "LOWER(" + col + `) LIKE ? ESCAPE '\'`, []any{pattern}, nil

	case query.HasTag:
		col, err := column(v.Field, colMap)
		if err != nil {
			return "", nil, err
		}
		// Anchor on the list delimiters so a tag never matches inside a
		// longer tag ("art" must not admit "smart-tips").
		pattern := "%," + escapeLike(strings.ToLower(v.Value)) + ",%"
		return "',' || LOWER(" + col + `) || ',' LIKE ? ESCAPE '\'`, []any{pattern}, nil

	case query.IsNull:
		col, err := column(v.Field, colMap)
		if err != nil {
			return "", nil, err
		}
		return col + " IS NULL", nil, nil

	case query.None:
		return "0 = 1", nil, nil
	}

	return "", nil, fmt.Errorf("%w: unsupported predicate %T", domain.ErrInvalidFilter, p)
}

func compileGroup(children []query.Predicate, sep string, colMap map[string]string) (string, []any, error) {
	parts := make([]string, 0, len(children))
	var args []any
	for _, child := range children {
		sql, childArgs, err := compile(child, colMap)
		if err != nil {
			return "", nil, err
		}
		if sql == "" {
			continue
		}
		parts = append(parts, sql)
		args = append(args, childArgs...)
	}
	switch len(parts) {
	case 0:
		return "", nil, nil
	case 1:
		return parts[0], args, nil
	}
	return "(" + strings.Join(parts, sep) + ")", args, nil
}

func orderSQL(orderings []query.Ordering, colMap map[string]string) (string, error) {
	parts := make([]string, 0, len(orderings))
	for _, o := range orderings {
		col, err := column(o.Field, colMap)
		if err != nil {
			return "", err
		}
		dir := "ASC"
		if o.Desc {
			dir = "DESC"
		}
		parts = append(parts, col+" "+dir)
	}
	return strings.Join(parts, ", "), nil
}

func column(field string, colMap map[string]string) (string, error) {
	col, ok := colMap[field]
	if !ok {
		return "", fmt.Errorf("%w: unknown field %q", domain.ErrInvalidFilter, field)
	}
	return col, nil
}

func compareOp(op query.CompareOp) (string, error) {
	switch op {
	case query.OpEq:
		return "=", nil
	case query.OpGte:
		return ">=", nil
	case query.OpLte:
		return "<=", nil
	}
	return "", fmt.Errorf("%w: unsupported operator %q", domain.ErrInvalidFilter, op)
}

// sqlValue converts predicate values into their stored representation:
// timestamps become RFC 3339 UTC strings, booleans become 0/1.
func sqlValue(v any) any {
	switch t := v.(type) {
	case time.Time:
		return t.UTC().Format(time.RFC3339)
	case bool:
		if t {
			return 1
		}
		return 0
	}
	return v
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
