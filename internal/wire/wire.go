package wire

import (
	"net/http"

	"movie-review/internal/adaptor"
	"movie-review/internal/data/repository"
	"movie-review/internal/usecase"
	"movie-review/pkg/database"
	"movie-review/pkg/middleware"
	"movie-review/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// App holds the assembled dependencies
type App struct {
	Router  *chi.Mux
	Service *usecase.Service
}

// Wiring builds repositories, services and handlers on top of one store handle
func Wiring(db database.PgxIface, config *utils.Config, logger *zap.Logger) *App {
	repo := repository.NewRepository(db, logger)
	service := usecase.NewService(repo, logger)
	handler := adaptor.NewHandler(service, db, logger)

	return &App{
		Router:  NewRouter(handler, middleware.NewMetrics("movie_review"), config, logger),
		Service: service,
	}
}

// NewRouter configures the chi router
func NewRouter(
	handler *adaptor.Handler,
	metrics *middleware.Metrics,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger, "/health", "/metrics"))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.CORS.AllowedOrigins))
	r.Use(metrics.Instrument)
	if config.App.RequestTimeout > 0 {
		r.Use(chimw.Timeout(config.App.RequestTimeout))
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseNotFound(w, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseJSON(w, http.StatusMethodNotAllowed, false, "Method not allowed", nil)
	})

	// Apply routes
	wireMovie(r, handler.Movie)
	wireReview(r, handler.Review)
	wireDocs(r, handler.Docs)

	r.Get("/health", handler.Health.Health)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	return r
}

func wireDocs(r chi.Router, docsHandler *adaptor.DocsHandler) {
	r.Get("/api", docsHandler.Index)
	r.Get("/api/openapi.yaml", docsHandler.YAML)
	r.Get("/api/openapi.json", docsHandler.JSON)
}
