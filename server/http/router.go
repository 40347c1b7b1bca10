package serverhttp

import (
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"merge-service/internal/config"
	mrgHnd "merge-service/internal/merge/handler"
	"merge-service/internal/middleware"
	"merge-service/internal/preset"
	"merge-service/server/http/handlers"
)

func NewRouter(cfg config.Config, logger zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// порядок важен: recover -> requestID -> logging -> cors -> limit
	r.Use(middleware.Recover(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS(cfg.AllowOrigins))
	r.Use(middleware.LimitBytes(int64(cfg.MaxUploadMB) * 1024 * 1024))

	// health-check
	r.Get("/health", handlers.Health)

	// основные эндпоинты
	r.Post("/merge", mrgHnd.Merge(cfg, logger))
	r.Post("/inspect", mrgHnd.Inspect(cfg, logger))

	// пресеты настроек
	store := preset.NewStore(cfg.PresetFile)
	r.Mount("/presets", preset.Routes(store, logger))

	return r
}
