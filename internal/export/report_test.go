package export

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"glastor/app"
	"glastor/domain/core"
	"glastor/domain/persona"
	"glastor/ports"
)

func testSnapshot() app.RegistrySnapshot {
	p1 := core.ProductID("prod-1")
	p2 := core.ProductID("prod-2")
	return app.RegistrySnapshot{
		Assignments: []ports.Assignment{
			{Key: "Camila A.__Soldador", ProductID: p1},
			{Key: "Luis R.__Herrero", ProductID: p2},
			{Key: "María P.__Contratista", ProductID: p1},
		},
		Selections: map[core.ProductID][]persona.Key{
			p1: {"Camila A.__Soldador", "María P.__Contratista"},
			p2: {"Luis R.__Herrero"},
		},
	}
}

func TestWriteReport(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteReport(&buf, testSnapshot()); err != nil {
		t.Fatalf("write report: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(assignmentsSheet)
	if err != nil {
		t.Fatalf("read assignments: %v", err)
	}
	want := [][]string{
		{"Key", "Name", "Role", "Product"},
		{"Camila A.__Soldador", "Camila A.", "Soldador", "prod-1"},
		{"Luis R.__Herrero", "Luis R.", "Herrero", "prod-2"},
		{"María P.__Contratista", "María P.", "Contratista", "prod-1"},
	}
	if len(rows) != len(want) {
		t.Fatalf("assignments rows = %d, want %d", len(rows), len(want))
	}
	for i, row := range want {
		for j, cell := range row {
			if rows[i][j] != cell {
				t.Errorf("assignments[%d][%d] = %q, want %q", i, j, rows[i][j], cell)
			}
		}
	}

	sel, err := f.GetRows(selectionsSheet)
	if err != nil {
		t.Fatalf("read selections: %v", err)
	}
	if len(sel) != 3 {
		t.Fatalf("selections rows = %d, want 3", len(sel))
	}
	// Rows follow assignment order: prod-1 first surfaces first.
	if sel[1][0] != "prod-1" || sel[2][0] != "prod-2" {
		t.Fatalf("selection row order = %q, %q", sel[1][0], sel[2][0])
	}
	if sel[1][1] != "Camila A.__Soldador" || sel[1][2] != "María P.__Contratista" {
		t.Fatalf("prod-1 selection = %v", sel[1][1:])
	}
	if sel[2][1] != "Luis R.__Herrero" {
		t.Fatalf("prod-2 selection = %v", sel[2][1:])
	}
}

func TestWriteReportEmpty(t *testing.T) {
	var buf bytes.Buffer
	snap := app.RegistrySnapshot{Selections: map[core.ProductID][]persona.Key{}}
	if err := WriteReport(&buf, snap); err != nil {
		t.Fatalf("write report: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(assignmentsSheet)
	if err != nil {
		t.Fatalf("read assignments: %v", err)
	}
	if len(rows) != 1 || rows[0][0] != "Key" {
		t.Fatalf("empty report should still carry the header, got %v", rows)
	}
}
