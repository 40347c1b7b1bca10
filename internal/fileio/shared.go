package fileio

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"merge-service/internal/merge/model"
)

// ReadTable — выберет парсер по расширению и вернёт таблицу с упорядоченными
// колонками. sheet — имя листа ("" = первый), headerRow — строка заголовков (1-based).
func ReadTable(r io.Reader, filename, sheet string, headerRow int) (model.Table, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".xlsx":
		return readXLSX(r, sheet, headerRow)
	case ".xls":
		return readXLS(r, sheet, headerRow)
	case ".csv":
		return readCSV(r, headerRow)
	default:
		return model.Table{}, fmt.Errorf("unsupported file: %s", filename)
	}
}

// SheetNames — имена листов книги; для CSV листов нет, вернём nil.
func SheetNames(r io.Reader, filename string) ([]string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".xlsx":
		return sheetNamesXLSX(r)
	case ".xls":
		return sheetNamesXLS(r)
	case ".csv":
		return nil, nil
	default:
		return nil, fmt.Errorf("unsupported file: %s", filename)
	}
}

// pickHeader — берёт строку заголовков, подставляет Column N для пустых и
// нумерует дубли, чтобы имена колонок были уникальны.
func pickHeader(rows [][]string, headerRow int) []string {
	idx := headerRow - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(rows) {
		idx = 0
	}
	h := rows[idx]
	out := make([]string, len(h))
	seen := map[string]int{}
	for i, v := range h {
		v = strings.TrimSpace(v)
		if v == "" {
			v = fmt.Sprintf("Column %d", i+1)
		}
		seen[v]++
		if n := seen[v]; n > 1 {
			v = fmt.Sprintf("%s (%d)", v, n)
		}
		out[i] = v
	}
	return out
}

// rowsToTable — конвертирует AoA в таблицу по заголовкам,
// пропуская полностью пустые строки.
func rowsToTable(rows [][]string, headers []string, headerRow int) model.Table {
	start := headerRow // первая строка после заголовков
	t := model.Table{Columns: headers}
	for r := start; r < len(rows); r++ {
		rec := rows[r]
		m := model.Row{}
		empty := true
		for c := 0; c < len(headers); c++ {
			var v string
			if c < len(rec) {
				v = rec[c]
			}
			m[headers[c]] = v
			if strings.TrimSpace(v) != "" {
				empty = false
			}
		}
		if !empty {
			t.Rows = append(t.Rows, m)
		}
	}
	return t
}
