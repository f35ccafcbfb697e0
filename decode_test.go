package datatable_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/reoring/datatable"
)

type itemStats struct {
	Weight   float64 `json:"Weight"`
	MaxStack int     `json:"MaxStack"`
}

type itemRow struct {
	Name        string                  `json:"Name"`
	DisplayName string                  `json:"DisplayName"`
	Mesh        datatable.ObjectPointer `json:"Mesh"`
	Slot        datatable.RowEnum       `json:"Slot"`
	Repair      datatable.RowHandle     `json:"Repair"`
	Stats       *itemStats              `json:"Stats"`
	Tags        []string                `json:"Tags"`
}

const itemDoc = `{
  "RowStruct": "ItemTemplate",
  "GenerateEnum": true,
  "Columns": {"DisplayName": {"Type": "Text"}},
  "Defaults": {
    "DisplayName": "Unnamed",
    "Slot": "(Value=\"None\")",
    "Stats": {"Weight": 1.5, "MaxStack": 10},
    "Tags": ["item"]
  },
  "Rows": [
    {
      "Name": "Torch",
      "DisplayName": "Torch",
      "Mesh": "StaticMesh'/Game/Items/SM_Torch.SM_Torch'",
      "Slot": "(Value=\"Hand\")",
      "Repair": "(RowName=\"Wood\",DataTableName=\"D_Resources\")",
      "Stats": {"MaxStack": 50},
      "Metadata": {"Deprecated": true}
    },
    {
      "Name": "Rock"
    }
  ]
}`

func mustParseItems(t *testing.T) *datatable.Table[itemRow] {
	t.Helper()
	tbl, err := datatable.Parse[itemRow]("D_ItemTemplate", []byte(itemDoc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return tbl
}

func TestParse_Header(t *testing.T) {
	tbl := mustParseItems(t)
	if tbl.Name() != "D_ItemTemplate" {
		t.Fatalf("Name = %q", tbl.Name())
	}
	if tbl.RowStruct() != "ItemTemplate" {
		t.Fatalf("RowStruct = %q", tbl.RowStruct())
	}
	if !tbl.GenerateEnum() {
		t.Fatalf("GenerateEnum lost")
	}
	if !strings.Contains(string(tbl.Columns()), `"Type"`) {
		t.Fatalf("Columns not preserved verbatim: %s", tbl.Columns())
	}
	if tbl.Len() != 2 {
		t.Fatalf("Len = %d", tbl.Len())
	}
}

func TestParse_OverlayAndValueTypes(t *testing.T) {
	tbl := mustParseItems(t)
	torch, ok := tbl.ByName("Torch")
	if !ok {
		t.Fatalf("Torch missing")
	}
	if torch.DisplayName != "Torch" {
		t.Fatalf("override lost: %q", torch.DisplayName)
	}
	if torch.Slot != "Hand" {
		t.Fatalf("RowEnum = %q", torch.Slot)
	}
	if torch.Repair.RowName != "Wood" || torch.Repair.DataTableName != "D_Resources" {
		t.Fatalf("RowHandle = %+v", torch.Repair)
	}
	if path, ok := torch.Mesh.Path(); !ok || path != "/Game/Items/SM_Torch.SM_Torch" {
		t.Fatalf("ObjectPointer path = %q, %v", path, ok)
	}
}

// A row that sets only one sub-field of a defaulted composite keeps the
// other sub-fields from Defaults (the merge-variant defaulting).
func TestParse_CompositeMerge(t *testing.T) {
	tbl := mustParseItems(t)
	torch, _ := tbl.ByName("Torch")
	if torch.Stats == nil {
		t.Fatalf("Stats missing")
	}
	if torch.Stats.MaxStack != 50 {
		t.Fatalf("override lost: %d", torch.Stats.MaxStack)
	}
	if torch.Stats.Weight != 1.5 {
		t.Fatalf("unmentioned sub-field lost its default: %v", torch.Stats.Weight)
	}
}

func TestParse_DefaultsValueEqualNotAliased(t *testing.T) {
	tbl := mustParseItems(t)
	rock, _ := tbl.ByName("Rock")
	def := tbl.Defaults()

	if rock.DisplayName != def.DisplayName || !reflect.DeepEqual(rock.Tags, def.Tags) {
		t.Fatalf("defaults not inherited: %+v", rock)
	}
	if *rock.Stats != *def.Stats {
		t.Fatalf("defaults not inherited: %+v", rock.Stats)
	}
	if rock.Stats == def.Stats {
		t.Fatalf("row aliases the shared Defaults composite")
	}
	torch, _ := tbl.ByName("Torch")
	if rock.Stats == torch.Stats {
		t.Fatalf("rows alias each other's composites")
	}
}

func TestParse_CaseInsensitiveFieldMatch(t *testing.T) {
	doc := `{"Rows":[{"Name":"A","displayname":"Lantern"}]}`
	tbl, err := datatable.Parse[itemRow]("D_X", []byte(doc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	row, _ := tbl.ByName("a")
	if row.DisplayName != "Lantern" {
		t.Fatalf("case-insensitive key match failed: %+v", row)
	}
}

func TestParse_UnknownKeysIgnored(t *testing.T) {
	doc := `{"Rows":[{"Name":"A","NotAField":123}]}`
	if _, err := datatable.Parse[itemRow]("D_X", []byte(doc)); err != nil {
		t.Fatalf("unknown key must be tolerated: %v", err)
	}
}

func TestParse_Metadata(t *testing.T) {
	tbl := mustParseItems(t)
	meta := tbl.MetadataAt(tbl.IndexOf("Torch"))
	if !strings.Contains(string(meta), `"Deprecated"`) {
		t.Fatalf("Metadata not attached verbatim: %s", meta)
	}
	if tbl.MetadataAt(tbl.IndexOf("Rock")) != nil {
		t.Fatalf("absent Metadata must stay nil")
	}
}

func TestParse_MissingRowsFatal(t *testing.T) {
	_, err := datatable.Parse[itemRow]("D_X", []byte(`{"RowStruct":"ItemTemplate"}`))
	iss, ok := datatable.AsIssues(err)
	if !ok || iss[0].Code != datatable.CodeStructural {
		t.Fatalf("expected structural issue, got %v", err)
	}
}

func TestParse_MissingNameFatal(t *testing.T) {
	doc := `{"Rows":[{"Name":"A"},{"DisplayName":"nameless"}]}`
	tbl, err := datatable.Parse[itemRow]("D_X", []byte(doc))
	if tbl != nil {
		t.Fatalf("no partial table may be produced")
	}
	iss, ok := datatable.AsIssues(err)
	if !ok || iss[0].Code != datatable.CodeMissingRowName {
		t.Fatalf("expected missing_row_name, got %v", err)
	}
	if iss[0].Path != "/Rows/1" {
		t.Fatalf("path = %q", iss[0].Path)
	}
}

func TestParse_DuplicateNameFatal(t *testing.T) {
	doc := `{"Rows":[{"Name":"Foo"},{"Name":"FOO"}]}`
	_, err := datatable.Parse[itemRow]("D_X", []byte(doc))
	iss, ok := datatable.AsIssues(err)
	if !ok || iss[0].Code != datatable.CodeDuplicateRowName {
		t.Fatalf("expected duplicate_row_name, got %v", err)
	}
}

func TestParse_UnsupportedRowShapeFatal(t *testing.T) {
	type badRow struct {
		Name string   `json:"Name"`
		C    chan int `json:"-"`
	}
	doc := `{"Rows":[{"Name":"A"}]}`
	_, err := datatable.Parse[badRow]("D_X", []byte(doc))
	iss, ok := datatable.AsIssues(err)
	if !ok || iss[0].Code != datatable.CodeUnsupportedKind {
		t.Fatalf("expected unsupported_kind, got %v", err)
	}
	if iss[0].Table != "D_X" {
		t.Fatalf("issue not attributed to the table: %+v", iss[0])
	}
}

func TestParse_Deterministic(t *testing.T) {
	a := mustParseItems(t)
	b := mustParseItems(t)
	if !reflect.DeepEqual(a.Names(), b.Names()) {
		t.Fatalf("row order diverged")
	}
	for name, row := range a.All() {
		other, ok := b.ByName(name)
		if !ok || !reflect.DeepEqual(row, other) {
			t.Fatalf("row %q diverged", name)
		}
	}
}
