package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
	"github.com/zechsoft/new-trust-sub003/internal/models"
)

const SheetName = "Registrations"

// WriteXLSX writes the same rows as WriteCSV into a single-sheet workbook.
// Numeric columns stay numeric.
func WriteXLSX(w io.Writer, regs []models.Registration) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("export: rename sheet: %w", err)
	}

	header := make([]interface{}, len(Header))
	for i, h := range Header {
		header[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("export: header: %w", err)
	}

	for i, r := range regs {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		fields := row(r)
		values := []interface{}{
			fields[0], fields[1], fields[2], fields[3], fields[4],
			r.Participants, fields[6], r.Amount, fields[8],
		}
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return fmt.Errorf("export: row %d: %w", i+1, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("export: write workbook: %w", err)
	}
	return nil
}
