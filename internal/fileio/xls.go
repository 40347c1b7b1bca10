// Надёжный парсер .xls: фиксируем ширину таблицы сами и читаем все ячейки до неё.
package fileio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	xls "github.com/extrame/xls"

	"merge-service/internal/merge/model"
)

func normalizeCell(v string) string {
	return strings.Join(strings.Fields(v), " ")
}

// .xls из 1С чаще всего cp1251, но иногда UTF-8/KOI8-R
func openXLS(r io.Reader) (*xls.WorkBook, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	tryCharsets := []string{"windows-1251", "utf-8", "koi8-r"}
	var lastErr error
	for _, ch := range tryCharsets {
		wb, err := xls.OpenReader(bytes.NewReader(b), ch)
		if err == nil && wb != nil {
			return wb, nil
		}
		lastErr = err
	}
	if lastErr == nil {
		lastErr = errors.New("xls: failed to open workbook")
	}
	return nil, lastErr
}

func pickSheet(wb *xls.WorkBook, sheet string) (*xls.WorkSheet, error) {
	if sheet == "" {
		return wb.GetSheet(0), nil
	}
	for i := 0; i < wb.NumSheets(); i++ {
		if s := wb.GetSheet(i); s != nil && s.Name == sheet {
			return s, nil
		}
	}
	return nil, fmt.Errorf("sheet %q not found", sheet)
}

// вычисляем "реальную" ширину: пробегаем разумное число колонок и ищем непустые
func computeMaxCols(sheet *xls.WorkSheet, headerRow int) int {
	const probeMax = 512
	maxCols := 0

	hdr0 := headerRow - 1
	if hdr0 < 0 {
		hdr0 = 0
	}
	checkRow := func(i int) {
		if i < 0 || i > int(sheet.MaxRow) {
			return
		}
		r := sheet.Row(i)
		if r == nil {
			return
		}
		for j := 0; j < probeMax; j++ {
			if v := normalizeCell(r.Col(j)); v != "" {
				if j+1 > maxCols {
					maxCols = j + 1
				}
			}
		}
	}

	// шапка и строка под ней — часто самые широкие
	checkRow(hdr0)
	checkRow(hdr0 + 1)
	// общий проход
	for i := 0; i <= int(sheet.MaxRow); i++ {
		checkRow(i)
	}
	if maxCols == 0 {
		maxCols = 1
	}
	return maxCols
}

func readXLS(r io.Reader, sheetName string, headerRow int) (model.Table, error) {
	if headerRow <= 0 {
		return model.Table{}, errors.New("headerRow must be 1-based and >= 1")
	}
	wb, err := openXLS(r)
	if err != nil {
		return model.Table{}, err
	}

	sheet, err := pickSheet(wb, sheetName)
	if err != nil {
		return model.Table{}, err
	}
	if sheet == nil {
		return model.Table{}, nil
	}

	// фиксируем ширину и читаем все строки до неё (НЕ полагаемся на Row.LastCol())
	maxCols := computeMaxCols(sheet, headerRow)
	rows := make([][]string, 0, int(sheet.MaxRow)+1)
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		cols := make([]string, maxCols)
		if row != nil {
			for j := 0; j < maxCols; j++ {
				cols[j] = normalizeCell(row.Col(j)) // безопасно: пустые -> ""
			}
		}
		rows = append(rows, cols)
	}

	h := pickHeader(rows, headerRow)
	return rowsToTable(rows, h, headerRow), nil
}

func sheetNamesXLS(r io.Reader) ([]string, error) {
	wb, err := openXLS(r)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, wb.NumSheets())
	for i := 0; i < wb.NumSheets(); i++ {
		if s := wb.GetSheet(i); s != nil {
			out = append(out, s.Name)
		}
	}
	return out, nil
}
