package content

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/lumenwork/contentdex/internal/domain"
	"github.com/lumenwork/contentdex/internal/domain/search/query"
)

func TestSelectSQL(t *testing.T) {
	q := query.Query{
		Where: query.And{
			query.IsNull{Field: "deletedAt"},
			query.Compare{Field: "status", Op: query.OpEq, Value: "published"},
		},
		OrderBy: []query.Ordering{{Field: "updatedAt", Desc: true}},
		Take:    20,
		Skip:    40,
	}

	stmt, args, err := selectSQL("pages", []string{"id", "title"}, pageColumns, q)
	if err != nil {
		t.Fatalf("selectSQL: %v", err)
	}

	want := "SELECT id, title FROM pages" +
		" WHERE (deleted_at IS NULL AND status = ?)" +
		" ORDER BY updated_at DESC LIMIT ? OFFSET ?"
	if stmt != want {
		t.Errorf("stmt = %q, want %q", stmt, want)
	}
	if !reflect.DeepEqual(args, []any{"published", 20, 40}) {
		t.Errorf("args = %v", args)
	}
}

func TestCompile_EmptyWhere(t *testing.T) {
	stmt, args, err := selectSQL("pages", []string{"id"}, pageColumns, query.Query{Take: 10})
	if err != nil {
		t.Fatalf("selectSQL: %v", err)
	}
	if strings.Contains(stmt, "WHERE") {
		t.Errorf("stmt = %q, want no WHERE clause", stmt)
	}
	if !reflect.DeepEqual(args, []any{10, 0}) {
		t.Errorf("args = %v", args)
	}
}

func TestCompile_Contains(t *testing.T) {
	sql, args, err := compile(query.Contains{Field: "title", Value: "Hero"}, pageColumns)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if sql != `LOWER(title) LIKE ? ESCAPE '\'` {
		t.Errorf("sql = %q", sql)
	}
	if !reflect.DeepEqual(args, []any{"%hero%"}) {
		t.Errorf("args = %v", args)
	}
}

func TestCompile_ContainsEscapesWildcards(t *testing.T) {
	_, args, err := compile(query.Contains{Field: "title", Value: `50%_off\`}, pageColumns)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if !reflect.DeepEqual(args, []any{`%50\%\_off\\%`}) {
		t.Errorf("args = %v", args)
	}
}

func TestCompile_HasTag(t *testing.T) {
	sql, args, err := compile(query.HasTag{Field: "tags", Value: "Art"}, pageColumns)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if sql != `',' || LOWER(tags) || ',' LIKE ? ESCAPE '\'` {
		t.Errorf("sql = %q", sql)
	}
	if !reflect.DeepEqual(args, []any{"%,art,%"}) {
		t.Errorf("args = %v", args)
	}
}

func TestCompile_HasTagUnknownField(t *testing.T) {
	_, _, err := compile(query.HasTag{Field: "tags", Value: "art"}, templateColumns)
	if !errors.Is(err, domain.ErrInvalidFilter) {
		t.Errorf("err = %v, want ErrInvalidFilter", err)
	}
}

func TestCompile_In(t *testing.T) {
	sql, args, err := compile(query.In{Field: "status", Values: []string{"draft", "published"}}, pageColumns)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if sql != "status IN (?, ?)" {
		t.Errorf("sql = %q", sql)
	}
	if !reflect.DeepEqual(args, []any{"draft", "published"}) {
		t.Errorf("args = %v", args)
	}
}

func TestCompile_Or(t *testing.T) {
	sql, _, err := compile(query.Or{
		query.Contains{Field: "title", Value: "a"},
		query.Contains{Field: "slug", Value: "b"},
	}, pageColumns)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if !strings.HasPrefix(sql, "(") || !strings.Contains(sql, " OR ") {
		t.Errorf("sql = %q, want parenthesized OR group", sql)
	}
}

func TestCompile_None(t *testing.T) {
	sql, args, err := compile(query.None{}, pageColumns)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if sql != "0 = 1" {
		t.Errorf("sql = %q, want 0 = 1", sql)
	}
	if len(args) != 0 {
		t.Errorf("args = %v, want none", args)
	}
}

func TestCompile_UnknownField(t *testing.T) {
	_, _, err := compile(query.Compare{Field: "password", Op: query.OpEq, Value: "x"}, pageColumns)
	if !errors.Is(err, domain.ErrInvalidFilter) {
		t.Fatalf("err = %v, want ErrInvalidFilter", err)
	}

	_, err = orderSQL([]query.Ordering{{Field: "password"}}, pageColumns)
	if !errors.Is(err, domain.ErrInvalidFilter) {
		t.Fatalf("order err = %v, want ErrInvalidFilter", err)
	}
}

func TestCompile_SingleChildNotWrapped(t *testing.T) {
	sql, _, err := compile(query.And{query.IsNull{Field: "deletedAt"}}, pageColumns)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if sql != "deleted_at IS NULL" {
		t.Errorf("sql = %q, want bare clause without parens", sql)
	}
}

func TestSQLValue(t *testing.T) {
	at := time.Date(2024, time.March, 1, 15, 30, 0, 0, time.FixedZone("CET", 3600))
	if got := sqlValue(at); got != "2024-03-01T14:30:00Z" {
		t.Errorf("time value = %v", got)
	}
	if got := sqlValue(true); got != 1 {
		t.Errorf("bool true = %v, want 1", got)
	}
	if got := sqlValue(false); got != 0 {
		t.Errorf("bool false = %v, want 0", got)
	}
	if got := sqlValue(int64(7)); got != int64(7) {
		t.Errorf("int64 passthrough = %v", got)
	}
}
