package datatable

// Package datatable loads game datatable documents (a JSON export format:
// header, one Defaults row, an ordered Rows array) into strongly typed,
// immutable in-memory tables.
//
// - Each row starts from an independent deep copy of the table's Defaults and
//   only the JSON-specified fields are overlaid on top (recursive merge for
//   composites).
// - Compact string encodings used by the format — (RowName="..",DataTableName=".."),
//   (Value=".."), Type'Path' / 'Path' — decode into RowHandle, RowEnum and
//   ObjectPointer value types.
// - A Registry loads a fixed set of tables at startup and resolves RowHandle
//   cross-references by name; misses are (zero, false), never errors.
//
// Design policy:
// - Keep the public API flat in the root package; the CLI lives under
//   cmd/datatable.
// - Tables and the Registry are immutable after load and safe for concurrent
//   readers; there is no write or serialize path.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	tbl, err := datatable.Parse[ItemRow]("D_ItemTemplate", data)
//	reg, err := datatable.LoadRegistry(ctx, provider,
//	    datatable.Load[ItemRow]("Items/D_ItemTemplate.json"),
//	    datatable.Load[TalentRow]("Talents/D_Talents.json"),
//	)
//	row, ok := datatable.Resolve[ItemRow](reg, handle)
