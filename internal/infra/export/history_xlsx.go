// Package export renders data for download.
package export

import (
	"bytes"

	"projectforge/internal/domain/candh"
	"projectforge/internal/domain/entity"
	"projectforge/internal/errors"

	"github.com/xuri/excelize/v2"
)

const historySheet = "History"

var historyHeader = []any{
	"Master", "Entity", "Id", "Operation", "Modified at", "Modified by", "User",
	"Property", "Type", "Old value", "New value", "Property operation",
}

// HistoryWorkbook writes history rows into a single sheet workbook.
func HistoryWorkbook(entries []entity.DisplayHistoryEntry) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", historySheet); err != nil {
		return nil, errors.Wrap(err, "failed to name sheet")
	}
	if err := f.SetSheetRow(historySheet, "A1", &historyHeader); err != nil {
		return nil, errors.Wrap(err, "failed to write header")
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create header style")
	}
	lastCol, err := excelize.ColumnNumberToName(len(historyHeader))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if err := f.SetCellStyle(historySheet, "A1", lastCol+"1", bold); err != nil {
		return nil, errors.Wrap(err, "failed to style header")
	}

	for i, e := range entries {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		row := []any{
			e.MasterID, e.EntityName, e.EntityID, string(e.EntityOpType),
			candh.FormatTimestamp(e.ModifiedAt), e.ModifiedBy, e.ModifiedByName,
			e.PropertyName, e.PropertyType, e.OldValue, e.NewValue, string(e.OpType),
		}
		if err := f.SetSheetRow(historySheet, cell, &row); err != nil {
			return nil, errors.Wrapf(err, "failed to write row %d", i+2)
		}
	}

	if err := f.SetColWidth(historySheet, "A", lastCol, 18); err != nil {
		return nil, errors.WithStack(err)
	}
	if err := f.SetPanes(historySheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return nil, errors.Wrap(err, "failed to freeze header")
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "failed to write workbook")
	}

	return bytes.Clone(buf.Bytes()), nil
}
