// Package export writes the allocation state as an .xlsx ops report: one
// sheet of persona assignments, one of per-product selections.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"glastor/app"
	"glastor/domain/core"
	"glastor/domain/persona"
)

const (
	assignmentsSheet = "Assignments"
	selectionsSheet  = "Selections"
)

// WriteReport renders the snapshot as a workbook to w.
func WriteReport(w io.Writer, snap app.RegistrySnapshot) error {
	f, err := buildWorkbook(snap)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Write(w)
}

// WriteReportFile renders the snapshot as a workbook at path.
func WriteReportFile(path string, snap app.RegistrySnapshot) error {
	f, err := buildWorkbook(snap)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.SaveAs(path)
}

func buildWorkbook(snap app.RegistrySnapshot) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", assignmentsSheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(selectionsSheet); err != nil {
		return nil, err
	}

	if err := writeRows(f, assignmentsSheet, assignmentRows(snap)); err != nil {
		return nil, err
	}
	if err := writeRows(f, selectionsSheet, selectionRows(snap)); err != nil {
		return nil, err
	}

	return f, nil
}

func assignmentRows(snap app.RegistrySnapshot) [][]interface{} {
	rows := [][]interface{}{{"Key", "Name", "Role", "Product"}}
	for _, a := range snap.Assignments {
		name, role := a.Key.Split()
		rows = append(rows, []interface{}{a.Key.String(), name, role, a.ProductID.String()})
	}
	return rows
}

func selectionRows(snap app.RegistrySnapshot) [][]interface{} {
	header := []interface{}{"Product"}
	for slot := 0; slot < persona.SlotCount; slot++ {
		header = append(header, fmt.Sprintf("Slot %d", slot))
	}
	rows := [][]interface{}{header}

	// Selections map iteration is unordered; emit rows by assignment order.
	emitted := make(map[core.ProductID]bool)
	for _, a := range snap.Assignments {
		pid := a.ProductID
		if emitted[pid] {
			continue
		}
		emitted[pid] = true
		sel, ok := snap.Selections[pid]
		if !ok {
			continue
		}
		row := []interface{}{pid.String()}
		for _, k := range sel {
			row = append(row, k.String())
		}
		rows = append(rows, row)
	}
	return rows
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for r, row := range rows {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}
	return nil
}
