package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"merge-service/internal/config"
	"merge-service/internal/fileio"
	"merge-service/internal/merge/model"
	mrgSvc "merge-service/internal/merge/service"
)

// Merge возвращает http.HandlerFunc, чтобы вызвать его как
// r.Post("/merge", mrgHnd.Merge(cfg, logger)) в роутере.
func Merge(cfg config.Config, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Привяжем req_id из заголовка, если middleware его проставил
		log := logger
		if reqID := r.Header.Get("X-Request-ID"); reqID != "" {
			log = logger.With().Str("req_id", reqID).Logger()
		}

		defer r.Body.Close()
		if err := r.ParseMultipartForm(int64(cfg.MaxUploadMB) << 20); err != nil {
			http.Error(w, "bad multipart form: "+err.Error(), http.StatusBadRequest)
			return
		}

		fileLeft, headerLeft, err := r.FormFile("fileLeft")
		if err != nil {
			http.Error(w, "missing fileLeft: "+err.Error(), http.StatusBadRequest)
			return
		}
		defer fileLeft.Close()

		fileRight, headerRight, err := r.FormFile("fileRight")
		if err != nil {
			http.Error(w, "missing fileRight: "+err.Error(), http.StatusBadRequest)
			return
		}
		defer fileRight.Close()

		// Читаем таблицы (auto-encoding CSV, XLS/XLSX и т.д. внутри fileio)
		left, err := fileio.ReadTable(fileLeft, headerLeft.Filename,
			r.FormValue("left_sheet"), atoi(r.FormValue("left_header_row"), 1))
		if err != nil {
			http.Error(w, "failed to read left: "+err.Error(), http.StatusBadRequest)
			return
		}
		right, err := fileio.ReadTable(fileRight, headerRight.Filename,
			r.FormValue("right_sheet"), atoi(r.FormValue("right_header_row"), 1))
		if err != nil {
			http.Error(w, "failed to read right: "+err.Error(), http.StatusBadRequest)
			return
		}

		leftOut := splitList(r.FormValue("left_output"))
		rightOut := splitList(r.FormValue("right_output"))
		// колонки не выбраны — берём все, в порядке таблицы
		if len(leftOut) == 0 {
			leftOut = left.Columns
		}
		if len(rightOut) == 0 {
			rightOut = right.Columns
		}

		opt := model.Options{
			Output:        buildOutput(leftOut, rightOut),
			LeftKeys:      splitList(r.FormValue("left_match")),
			RightKeys:     splitList(r.FormValue("right_match")),
			Threshold:     clamp01(toFloat(r.FormValue("threshold"), cfg.Threshold)),
			Strategy:      model.ParseStrategy(r.FormValue("strategy")),
			PreferLibrary: toBool(r.FormValue("prefer_library"), false),
			Filter:        model.ParseFilterMode(r.FormValue("filter")),
		}

		res, err := mrgSvc.Run(left, right, opt)
		if err != nil {
			var colErr *model.ColumnError
			if errors.As(err, &colErr) {
				http.Error(w, colErr.Error(), http.StatusBadRequest)
				return
			}
			log.Error().Err(err).Msg("merge failed")
			http.Error(w, "merge failed", http.StatusInternalServerError)
			return
		}

		log.Info().
			Int("rowsLeft", len(left.Rows)).
			Int("rowsRight", len(right.Rows)).
			Int("rowsOut", len(res.Rows)).
			Str("mode", res.Mode).
			Str("engine", res.Stats.Engine).
			Int("comparisons", res.Stats.Comparisons).
			Dur("elapsed", time.Since(start)).
			Msg("merge done")

		switch r.FormValue("format") {
		case "xlsx":
			b, err := fileio.WriteXLSX(res)
			if err != nil {
				log.Error().Err(err).Msg("write xlsx")
				http.Error(w, "export failed", http.StatusInternalServerError)
				return
			}
			w.Header().Set("Content-Type",
				"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
			w.Header().Set("Content-Disposition", `attachment; filename="merged.xlsx"`)
			_, _ = w.Write(b)
		case "csv":
			b, err := fileio.WriteCSV(res)
			if err != nil {
				log.Error().Err(err).Msg("write csv")
				http.Error(w, "export failed", http.StatusInternalServerError)
				return
			}
			w.Header().Set("Content-Type", "text/csv; charset=utf-8")
			w.Header().Set("Content-Disposition", `attachment; filename="merged.csv"`)
			_, _ = w.Write(b)
		default:
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.Header().Set("Cache-Control", "no-store")
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			if err := enc.Encode(res); err != nil {
				log.Error().Err(err).Msg("write json")
			}
		}
	}
}

// buildOutput — проекция: сначала левые колонки, затем правые,
// в выбранном пользователем порядке.
func buildOutput(left, right []string) []model.OutputColumn {
	out := make([]model.OutputColumn, 0, len(left)+len(right))
	for _, c := range left {
		out = append(out, model.OutputColumn{Side: model.SideLeft, Name: c})
	}
	for _, c := range right {
		out = append(out, model.OutputColumn{Side: model.SideRight, Name: c})
	}
	return out
}
