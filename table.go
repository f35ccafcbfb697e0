package datatable

import (
	"iter"
	"reflect"

	json "github.com/goccy/go-json"
)

// Table is the immutable dual-indexed row container: an ordered list, a
// case-insensitive name map and a name-to-ordinal map, built once by Parse
// and mutually consistent forever after (same cardinality, same key set,
// ordinal == list position). Safe for concurrent readers.
type Table[T any] struct {
	name      string
	rowStruct string
	genEnum   bool
	columns   json.RawMessage
	defaults  T
	rows      []T
	names     []string // original casing, by ordinal
	meta      []json.RawMessage
	byName    map[string]T   // folded name -> row
	ordinals  map[string]int // folded name -> ordinal
}

// Name returns the logical table name (document base name).
func (t *Table[T]) Name() string { return t.name }

// RowStruct returns the row-struct tag from the document header.
func (t *Table[T]) RowStruct() string { return t.rowStruct }

// GenerateEnum reports the header's enum-generation flag.
func (t *Table[T]) GenerateEnum() bool { return t.genEnum }

// Columns returns the header's column metadata verbatim; the engine never
// interprets it.
func (t *Table[T]) Columns() json.RawMessage { return t.columns }

// Defaults returns the table-level baseline row. Treat it as read-only; rows
// were built from independent deep copies of it.
func (t *Table[T]) Defaults() T { return t.defaults }

// Len returns the number of rows.
func (t *Table[T]) Len() int { return len(t.rows) }

// At returns the row at ordinal i, panicking on out-of-range like a slice
// index. Use Row for a safe lookup.
func (t *Table[T]) At(i int) T { return t.rows[i] }

// Row returns the row at ordinal i, reporting false when out of range.
func (t *Table[T]) Row(i int) (T, bool) {
	if i < 0 || i >= len(t.rows) {
		var zero T
		return zero, false
	}
	return t.rows[i], true
}

// NameAt returns the row name at ordinal i in its original casing.
func (t *Table[T]) NameAt(i int) string { return t.names[i] }

// MetadataAt returns the raw side-channel Metadata object of the row at
// ordinal i; nil when the row carried none.
func (t *Table[T]) MetadataAt(i int) json.RawMessage { return t.meta[i] }

// ByName looks a row up by name, ignoring case.
func (t *Table[T]) ByName(name string) (T, bool) {
	row, ok := t.byName[foldName(name)]
	return row, ok
}

// Contains reports whether a row of that name exists, ignoring case.
func (t *Table[T]) Contains(name string) bool {
	_, ok := t.ordinals[foldName(name)]
	return ok
}

// IndexOf returns the ordinal of the named row, or -1 when absent.
func (t *Table[T]) IndexOf(name string) int {
	if i, ok := t.ordinals[foldName(name)]; ok {
		return i
	}
	return -1
}

// IndexOfRow returns the ordinal of the first row deep-equal to row, or -1.
// Rows are arbitrary structs, so identity is a linear reflect.DeepEqual scan.
func (t *Table[T]) IndexOfRow(row T) int {
	for i := range t.rows {
		if reflect.DeepEqual(t.rows[i], row) {
			return i
		}
	}
	return -1
}

// Names returns the row names in construction order.
func (t *Table[T]) Names() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// All iterates name/row pairs in construction order.
func (t *Table[T]) All() iter.Seq2[string, T] {
	return func(yield func(string, T) bool) {
		for i, row := range t.rows {
			if !yield(t.names[i], row) {
				return
			}
		}
	}
}

// Values iterates rows only, in construction order.
func (t *Table[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, row := range t.rows {
			if !yield(row) {
				return
			}
		}
	}
}

// tableView is the registry's type-erased view over a loaded table.
type tableView interface {
	Name() string
	RowStruct() string
	Len() int
}

var _ tableView = (*Table[struct{}])(nil)
