package datatable

import (
	"context"
	"io/fs"
	"path"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Provider supplies raw table documents by logical path. It is the only
// collaborator the engine reads from; everything downstream of the Registry
// is in-memory.
type Provider interface {
	ReadTable(ctx context.Context, logicalPath string) ([]byte, error)
}

// FSProvider adapts an fs.FS (an os.DirFS over the export root, an embed.FS,
// a fstest.MapFS in tests) as a Provider.
type FSProvider struct {
	fsys fs.FS
}

func NewFSProvider(fsys fs.FS) FSProvider { return FSProvider{fsys: fsys} }

func (p FSProvider) ReadTable(ctx context.Context, logicalPath string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return fs.ReadFile(p.fsys, logicalPath)
}

// TableNameFromPath derives the logical table name from a document path:
// base name minus extension, so "Items/D_ItemTemplate.json" loads as
// "D_ItemTemplate".
func TableNameFromPath(p string) string {
	base := path.Base(p)
	return strings.TrimSuffix(base, path.Ext(base))
}

// Entry loads one table into its typed container. Entries are deliberately
// opaque: only Load and LoadAs construct them, so every table in a Registry
// went through Parse and carries its static row type. LoadRegistry runs them.
type Entry func(ctx context.Context, p Provider) (tableView, error)

// Load returns an Entry that reads logicalPath and decodes its rows as T. The
// logical table name is derived from the path.
func Load[T any](logicalPath string) Entry {
	return LoadAs[T](logicalPath, TableNameFromPath(logicalPath))
}

// LoadAs is Load with an explicit logical table name.
func LoadAs[T any](logicalPath, name string) Entry {
	return func(ctx context.Context, p Provider) (tableView, error) {
		data, err := p.ReadTable(ctx, logicalPath)
		if err != nil {
			return nil, AppendIssues(nil, Issue{
				Table: name, Code: CodeParseError,
				Message: "reading " + logicalPath, Cause: err,
			})
		}
		return Parse[T](name, data)
	}
}

// Registry holds the fixed set of tables loaded at process start, keyed by
// folded logical name. Immutable once LoadRegistry returns; safe for
// concurrent readers.
type Registry struct {
	tables map[string]tableView
	names  []string // original casing, load order
}

// LoadRegistry loads every entry through the provider, all-or-nothing: the
// first failing table aborts the whole load and no partial registry is
// returned. Load progress is logged through zerolog.Ctx(ctx).
func LoadRegistry(ctx context.Context, p Provider, entries ...Entry) (*Registry, error) {
	log := zerolog.Ctx(ctx)
	r := &Registry{tables: make(map[string]tableView, len(entries))}
	for _, e := range entries {
		start := time.Now()
		tv, err := e(ctx, p)
		if err != nil {
			log.Error().Err(err).Msg("table load failed")
			return nil, err
		}
		key := foldName(tv.Name())
		if _, dup := r.tables[key]; dup {
			return nil, singleIssue(tv.Name(), "", CodeStructural, "table name already registered")
		}
		r.tables[key] = tv
		r.names = append(r.names, tv.Name())
		log.Debug().
			Str("table", tv.Name()).
			Str("row_struct", tv.RowStruct()).
			Int("rows", tv.Len()).
			Dur("elapsed", time.Since(start)).
			Msg("table loaded")
	}
	return r, nil
}

// Len returns the number of loaded tables.
func (r *Registry) Len() int { return len(r.tables) }

// Contains reports whether a table of that name was loaded, ignoring case.
func (r *Registry) Contains(name string) bool {
	_, ok := r.tables[foldName(name)]
	return ok
}

// Names returns the logical table names in load order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// TableOf fetches a loaded table together with its static row type. A table
// of that name loaded with a different row type reports false.
func TableOf[T any](r *Registry, name string) (*Table[T], bool) {
	tv, ok := r.tables[foldName(name)]
	if !ok {
		return nil, false
	}
	t, ok := tv.(*Table[T])
	return t, ok
}

// Resolve follows a RowHandle: find the table, check the statically expected
// row type, look the row up by name. Absent table, mismatched row type and
// absent row all yield (zero, false) — a dangling handle never aborts the
// caller.
func Resolve[T any](r *Registry, h RowHandle) (T, bool) {
	t, ok := TableOf[T](r, h.DataTableName)
	if !ok {
		var zero T
		return zero, false
	}
	return t.ByName(h.RowName)
}
