package fileio

import (
	"bytes"
	"encoding/csv"

	excelize "github.com/xuri/excelize/v2"

	"merge-service/internal/merge/model"
)

const resultSheet = "Result"

// WriteXLSX — результат слияния в xlsx для скачивания.
func WriteXLSX(res model.Result) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), resultSheet); err != nil {
		return nil, err
	}
	header := make([]any, len(res.Columns))
	for i, c := range res.Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(resultSheet, "A1", &header); err != nil {
		return nil, err
	}
	for i, row := range res.Rows {
		cells := make([]any, len(res.Columns))
		for j, c := range res.Columns {
			cells[j] = row.Cells[c]
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(resultSheet, cell, &cells); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteCSV — результат слияния в CSV (UTF-8).
func WriteCSV(res model.Result) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(res.Columns); err != nil {
		return nil, err
	}
	rec := make([]string, len(res.Columns))
	for _, row := range res.Rows {
		for j, c := range res.Columns {
			rec[j] = row.Cells[c]
		}
		if err := w.Write(rec); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
