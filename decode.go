package datatable

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// document is the table export shape: header fields, one Defaults row and an
// ordered Rows array.
type document struct {
	RowStruct    string            `json:"RowStruct"`
	GenerateEnum bool              `json:"GenerateEnum"`
	Columns      json.RawMessage   `json:"Columns"`
	Defaults     json.RawMessage   `json:"Defaults"`
	Rows         []json.RawMessage `json:"Rows"`
}

// rowProbe pulls the engine-reserved keys out of a row object before the
// typed overlay. Metadata is attached verbatim and never interpreted here.
type rowProbe struct {
	Name     string          `json:"Name"`
	Metadata json.RawMessage `json:"Metadata"`
}

// Parse builds a Table[T] from one table document. name is the logical table
// name (the document's base name, e.g. "D_ItemTemplate").
//
// Every row starts as an independent deep copy of the Defaults row, then the
// row object is unmarshalled INTO that copy: keys present in the JSON replace
// or recursively merge into the defaulted value (non-nil composite fields
// merge sub-field by sub-field, nil composites are built fresh), keys absent
// keep the default, unknown keys are ignored and matching is case-insensitive.
// That overlay is the canonical defaulting semantics of the format.
//
// Parse is all-or-nothing: a missing Rows array, a row without a Name, a
// duplicate row name or an uncopyable Defaults field fails the whole table
// and no partial Table is ever returned.
func Parse[T any](name string, data []byte) (*Table[T], error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, AppendIssues(nil, Issue{
			Table: name, Code: CodeStructural,
			Message: "document does not parse as a table", Cause: err,
		})
	}
	if doc.Rows == nil {
		return nil, singleIssue(name, "/Rows", CodeStructural, "document has no Rows array")
	}

	var defaults T
	if len(doc.Defaults) > 0 {
		if err := json.Unmarshal(doc.Defaults, &defaults); err != nil {
			return nil, AppendIssues(nil, Issue{
				Table: name, Path: "/Defaults", Code: CodeStructural,
				Message: "Defaults does not parse as a row", Cause: err,
			})
		}
	}

	t := &Table[T]{
		name:      name,
		rowStruct: doc.RowStruct,
		genEnum:   doc.GenerateEnum,
		columns:   doc.Columns,
		defaults:  defaults,
		rows:      make([]T, 0, len(doc.Rows)),
		names:     make([]string, 0, len(doc.Rows)),
		meta:      make([]json.RawMessage, 0, len(doc.Rows)),
		byName:    make(map[string]T, len(doc.Rows)),
		ordinals:  make(map[string]int, len(doc.Rows)),
	}

	for i, raw := range doc.Rows {
		path := fmt.Sprintf("/Rows/%d", i)

		var probe rowProbe
		if err := json.Unmarshal(raw, &probe); err != nil {
			return nil, AppendIssues(nil, Issue{
				Table: name, Path: path, Code: CodeStructural,
				Message: "row entry is not an object", Cause: err,
			})
		}
		if probe.Name == "" {
			return nil, singleIssue(name, path, CodeMissingRowName, "row object has no Name")
		}
		key := foldName(probe.Name)
		if _, dup := t.ordinals[key]; dup {
			return nil, singleIssue(name, path, CodeDuplicateRowName,
				fmt.Sprintf("row %q already defined", probe.Name))
		}

		row, err := DeepCopy(defaults)
		if err != nil {
			iss := toIssues(name, err)
			for j := range iss {
				if iss[j].Table == "" {
					iss[j].Table = name
				}
				if iss[j].Path == "" {
					iss[j].Path = path
				}
			}
			return nil, iss
		}
		if err := json.Unmarshal(raw, &row); err != nil {
			return nil, AppendIssues(nil, Issue{
				Table: name, Path: path, Code: CodeParseError,
				Message: fmt.Sprintf("row %q does not overlay onto defaults", probe.Name), Cause: err,
			})
		}

		t.ordinals[key] = len(t.rows)
		t.byName[key] = row
		t.rows = append(t.rows, row)
		t.names = append(t.names, probe.Name)
		t.meta = append(t.meta, probe.Metadata)
	}

	return t, nil
}
