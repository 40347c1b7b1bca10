package fileio

import (
	"bytes"
	"fmt"
	"io"

	excelize "github.com/xuri/excelize/v2"

	"merge-service/internal/merge/model"
)

func openXLSX(r io.Reader) (*excelize.File, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return excelize.OpenReader(bytes.NewReader(b))
}

func readXLSX(r io.Reader, sheet string, headerRow int) (model.Table, error) {
	f, err := openXLSX(r)
	if err != nil {
		return model.Table{}, err
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return model.Table{}, fmt.Errorf("sheet %q: %w", sheet, err)
	}
	h := pickHeader(rows, headerRow)
	return rowsToTable(rows, h, headerRow), nil
}

func sheetNamesXLSX(r io.Reader) ([]string, error) {
	f, err := openXLSX(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return f.GetSheetList(), nil
}
