package datatable

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// RowHandle is a weak, by-name reference to a row in another table, resolved
// lazily through the Registry. It never implies ownership; a dangling handle
// is a data-quality signal, not an error.
type RowHandle struct {
	RowName       string
	DataTableName string
}

// ParseRowHandle decodes the compact form `(RowName="X",DataTableName="Y")`.
// Malformed input yields a handle with unset components, never an error;
// unknown keys are ignored.
func ParseRowHandle(s string) RowHandle {
	kv := parseCompactPairs(s)
	return RowHandle{RowName: kv["RowName"], DataTableName: kv["DataTableName"]}
}

// IsSet reports whether both components are present.
func (h RowHandle) IsSet() bool { return h.RowName != "" && h.DataTableName != "" }

// String renders the compact form the export format uses.
func (h RowHandle) String() string {
	return fmt.Sprintf(`(RowName="%s",DataTableName="%s")`, h.RowName, h.DataTableName)
}

// UnmarshalJSON accepts either the compact string form or a plain JSON object
// with RowName/DataTableName keys.
func (h *RowHandle) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*h = ParseRowHandle(s)
		return nil
	}
	if string(b) == "null" {
		*h = RowHandle{}
		return nil
	}
	type plain RowHandle
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*h = RowHandle(p)
	return nil
}
