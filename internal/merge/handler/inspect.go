package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/rs/zerolog"

	"merge-service/internal/config"
	"merge-service/internal/fileio"
)

type inspectResponse struct {
	Sheets  []string `json:"sheets"`
	Sheet   string   `json:"sheet"`
	Columns []string `json:"columns"`
	Rows    int      `json:"rows"`
}

// Inspect — листы и колонки загруженного файла, для пикеров на стороне UI.
// Форма: file (+ sheet, header_row).
func Inspect(cfg config.Config, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()
		if err := r.ParseMultipartForm(int64(cfg.MaxUploadMB) << 20); err != nil {
			http.Error(w, "bad multipart form: "+err.Error(), http.StatusBadRequest)
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			http.Error(w, "missing file: "+err.Error(), http.StatusBadRequest)
			return
		}
		defer file.Close()

		// файл читаем дважды (листы + таблица), поэтому в память
		b, err := io.ReadAll(file)
		if err != nil {
			http.Error(w, "failed to read file: "+err.Error(), http.StatusBadRequest)
			return
		}

		sheets, err := fileio.SheetNames(bytes.NewReader(b), header.Filename)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		sheet := r.FormValue("sheet")
		if sheet == "" && len(sheets) > 0 {
			sheet = sheets[0]
		}
		t, err := fileio.ReadTable(bytes.NewReader(b), header.Filename, sheet, atoi(r.FormValue("header_row"), 1))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		if err := json.NewEncoder(w).Encode(inspectResponse{
			Sheets:  sheets,
			Sheet:   sheet,
			Columns: t.Columns,
			Rows:    len(t.Rows),
		}); err != nil {
			logger.Error().Err(err).Msg("write json")
		}
	}
}
