// Package query translates filter specifications into typed store queries.
//
// Predicates are a small tagged union instead of a loosely typed map, so the
// store compiler can reject unknown fields at build time rather than passing
// arbitrary shapes through to SQL.
package query

// CompareOp is a scalar comparison operator.
type CompareOp string

// Comparison operators supported by Compare.
const (
	OpEq  CompareOp = "eq"
	OpGte CompareOp = "gte"
	OpLte CompareOp = "lte"
)

// Predicate is one node of a filter expression tree.
type Predicate interface {
	isPredicate()
}

// And matches records satisfying every child predicate.
type And []Predicate

// Or matches records satisfying at least one child predicate.
type Or []Predicate

// Compare matches records whose field compares against Value with Op.
// Value is a string, bool, int, int64 or time.Time.
type Compare struct {
	Field string
	Op    CompareOp
	Value any
}

// In matches records whose field equals one of Values.
type In struct {
	Field  string
	Values []string
}

// Contains matches records whose field contains Value as a case-insensitive
// substring.
type Contains struct {
	Field string
	Value string
}

// HasTag matches records whose comma-joined tag list carries Value as a
// whole element, case-insensitive. Unlike Contains, a tag never matches a
// substring of a longer tag.
type HasTag struct {
	Field string
	Value string
}

// IsNull matches records whose field is null.
type IsNull struct {
	Field string
}

// None matches no records. It is emitted for bounds that cannot be
// interpreted, such as unparseable date strings: the affected constraint
// fails for every record instead of raising an error.
type None struct{}

func (And) isPredicate()      {}
func (Or) isPredicate()       {}
func (Compare) isPredicate()  {}
func (In) isPredicate()       {}
func (Contains) isPredicate() {}
func (HasTag) isPredicate()   {}
func (IsNull) isPredicate()   {}
func (None) isPredicate()     {}

// Ordering is a single ORDER BY element.
type Ordering struct {
	Field string
	Desc  bool
}

// Query is the full store query for one entity kind: filter predicate,
// ordering and pagination window. The store owns the translation to SQL.
type Query struct {
	Where   Predicate
	OrderBy []Ordering
	Take    int
	Skip    int
}
