package datatable

import (
	"strings"

	json "github.com/goccy/go-json"
)

// Asset path roots recognized by AssetPath.
const (
	engineRoot  = "/Script/"
	contentRoot = "/Game/"
)

// ObjectPointer references an external asset, encoded either as Type'Path'
// (hard pointer) or 'Path' / a bare path (soft pointer). Only the raw text is
// stored: two pointers are equal exactly when their raw encodings are equal,
// which keeps the type safe as a map or set key. The structured accessors
// re-derive type and path on demand; any token count other than 1 or 3
// degrades the value to raw-text-only comparison.
type ObjectPointer struct {
	raw string
}

// ParseObjectPointer wraps the raw encoding. It never fails; structure is
// probed lazily by the accessors.
func ParseObjectPointer(s string) ObjectPointer { return ObjectPointer{raw: s} }

// Raw returns the original encoding.
func (p ObjectPointer) Raw() string { return p.raw }

func (p ObjectPointer) String() string { return p.raw }

// split applies the format rule: split the raw text on single quotes.
// 1 token is a bare soft path; 3 tokens is Type'Path' (the third token is the
// empty tail after the closing quote, and an empty first token means the
// quoted soft form 'Path'). Anything else is unstructured.
func (p ObjectPointer) split() (typeName, path string, ok bool) {
	parts := strings.Split(p.raw, "'")
	switch len(parts) {
	case 1:
		return "", parts[0], true
	case 3:
		return parts[0], parts[1], true
	default:
		return "", "", false
	}
}

// TypeName returns the asset type of a hard pointer. Soft pointers and
// unstructured values report false.
func (p ObjectPointer) TypeName() (string, bool) {
	t, _, ok := p.split()
	if !ok || t == "" {
		return "", false
	}
	return t, true
}

// Path returns the asset path. Unstructured values report false.
func (p ObjectPointer) Path() (string, bool) {
	_, path, ok := p.split()
	if !ok {
		return "", false
	}
	return path, true
}

// IsSoft reports whether the pointer parsed without a type name.
func (p ObjectPointer) IsSoft() bool {
	t, _, ok := p.split()
	return ok && t == ""
}

// AssetPath normalizes the pointer's path for report output:
//
//   - the literal "None" (any case) passes through unchanged;
//   - engine-internal paths (under /Script/) pass through unchanged;
//   - project-content paths lose the /Game/ prefix, becoming content-relative;
//   - a trailing .TypeSuffix is stripped;
//   - an optional extension is appended when given.
//
// Unstructured pointers fall back to normalizing the raw text.
func (p ObjectPointer) AssetPath(ext ...string) string {
	path, ok := p.Path()
	if !ok {
		path = p.raw
	}
	if strings.EqualFold(path, "None") {
		return path
	}
	if strings.HasPrefix(path, engineRoot) {
		return path
	}
	if rest, found := strings.CutPrefix(path, contentRoot); found {
		path = rest
	}
	if i := strings.LastIndexByte(path, '.'); i >= 0 {
		path = path[:i]
	}
	if len(ext) > 0 {
		path += ext[len(ext)-1]
	}
	return path
}

// UnmarshalJSON accepts the raw encoding as a JSON string.
func (p *ObjectPointer) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*p = ObjectPointer{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*p = ObjectPointer{raw: s}
	return nil
}
