package datatable

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeStructural       = "structural"
	CodeMissingRowName   = "missing_row_name"
	CodeDuplicateRowName = "duplicate_row_name"
	CodeUnsupportedKind  = "unsupported_kind"
	CodeParseError       = "parse_error"
)

// Issue represents a single load-time failure.
type Issue struct {
	Table   string // Logical table name when known.
	Path    string // JSON-Pointer-ish location (for example: /Rows/2).
	Code    string // One of the codes listed above.
	Message string
	Cause   error // Optional: underlying error.
}

// Issues is a collection of load failures that implements error. Every code in
// the taxonomy is fatal for the table being loaded; lookup misses are never
// represented as Issues (they are (value, bool) results).
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. missing_row_name at D_ItemTemplate/Rows/2
		if it.Table != "" {
			fmt.Fprintf(b, "%s at %s%s", it.Code, it.Table, it.Path)
		} else {
			fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
		}
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

func singleIssue(table, path, code, msg string) Issues {
	return AppendIssues(nil, Issue{Table: table, Path: path, Code: code, Message: msg})
}

// toIssues wraps an arbitrary error as Issues, passing real Issues through.
func toIssues(table string, err error) Issues {
	if err == nil {
		return nil
	}
	if ii, ok := AsIssues(err); ok {
		return ii
	}
	return AppendIssues(nil, Issue{Table: table, Code: CodeParseError, Message: err.Error(), Cause: err})
}
