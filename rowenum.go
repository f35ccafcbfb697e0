package datatable

import (
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
)

// RowEnum is an opaque string tag used where a compiled-in enumeration would
// be too static for the data. Comparison is the tag text; case-insensitive
// matching is the caller's choice via EqualFold.
type RowEnum string

// ParseRowEnum decodes the compact form `(Value="X")`. Malformed input yields
// the empty tag.
func ParseRowEnum(s string) RowEnum {
	return RowEnum(parseCompactPairs(s)["Value"])
}

// EqualFold reports whether the tag matches s ignoring case.
func (e RowEnum) EqualFold(s string) bool { return strings.EqualFold(string(e), s) }

// String renders the compact form the export format uses.
func (e RowEnum) String() string { return fmt.Sprintf(`(Value="%s")`, string(e)) }

// UnmarshalJSON accepts the compact string form; a bare string without the
// wrapper is taken as the tag itself.
func (e *RowEnum) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*e = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if strings.HasPrefix(s, "(") {
		*e = ParseRowEnum(s)
		return nil
	}
	*e = RowEnum(s)
	return nil
}
