package preset

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Routes — CRUD по пресетам: GET /, GET /{name}, PUT /{name}, DELETE /{name}.
func Routes(store *Store, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	writeJSON := func(w http.ResponseWriter, v any) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		if err := json.NewEncoder(w).Encode(v); err != nil {
			logger.Error().Err(err).Msg("write json")
		}
	}

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		all, err := store.List()
		if err != nil {
			logger.Error().Err(err).Msg("presets load")
			http.Error(w, "presets unavailable", http.StatusInternalServerError)
			return
		}
		writeJSON(w, all)
	})

	r.Get("/{name}", func(w http.ResponseWriter, req *http.Request) {
		name := chi.URLParam(req, "name")
		p, ok, err := store.Get(name)
		if err != nil {
			logger.Error().Err(err).Msg("presets load")
			http.Error(w, "presets unavailable", http.StatusInternalServerError)
			return
		}
		if !ok {
			http.Error(w, "preset not found", http.StatusNotFound)
			return
		}
		writeJSON(w, p)
	})

	r.Put("/{name}", func(w http.ResponseWriter, req *http.Request) {
		name := chi.URLParam(req, "name")
		var p Preset
		defer req.Body.Close()
		if err := json.NewDecoder(req.Body).Decode(&p); err != nil {
			http.Error(w, "bad preset body: "+err.Error(), http.StatusBadRequest)
			return
		}
		if err := store.Upsert(name, p); err != nil {
			logger.Error().Err(err).Str("preset", name).Msg("presets save")
			http.Error(w, "failed to save preset", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})

	r.Delete("/{name}", func(w http.ResponseWriter, req *http.Request) {
		name := chi.URLParam(req, "name")
		ok, err := store.Delete(name)
		if err != nil {
			logger.Error().Err(err).Str("preset", name).Msg("presets delete")
			http.Error(w, "failed to delete preset", http.StatusInternalServerError)
			return
		}
		if !ok {
			http.Error(w, "preset not found", http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})

	return r
}
