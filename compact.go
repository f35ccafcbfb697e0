package datatable

import "strings"

// parseCompactPairs decodes the export format's compact key-value encoding,
// e.g. `(RowName="Foo",DataTableName="D_Bar")`, into its pairs. Parsing is
// deliberately tolerant: surrounding parentheses are optional, entries that do
// not split on "=" are skipped, and quoting is stripped when present. Callers
// ignore keys they do not recognize.
func parseCompactPairs(s string) map[string]string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "(")
	s = strings.TrimSuffix(s, ")")
	if s == "" {
		return nil
	}
	pairs := make(map[string]string)
	for _, part := range strings.Split(s, ",") {
		k, v, ok := strings.Cut(part, "=")
		if !ok {
			continue
		}
		k = strings.TrimSpace(k)
		v = strings.TrimSpace(v)
		v = strings.Trim(v, `"`)
		if k == "" {
			continue
		}
		pairs[k] = v
	}
	return pairs
}

// foldName is the repository-wide rule for case-insensitive name keys: row
// names, table names and registry keys all compare through this fold.
func foldName(s string) string { return strings.ToLower(s) }
