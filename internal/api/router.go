package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/dtownsend/battleword/internal/api/handler"
	"github.com/dtownsend/battleword/internal/api/middleware"
	"github.com/dtownsend/battleword/internal/api/response"
	"github.com/dtownsend/battleword/internal/services/dictionary"
	"github.com/dtownsend/battleword/internal/services/game"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger            *slog.Logger
	GameController    game.ControllerInterface
	DictionaryService dictionary.ServiceInterface
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	gameHandler := handler.NewGameHandler(cfg.GameController)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))

	// Game routes
	api.HandleFunc("/games", gameHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/games", gameHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/games/{id}", gameHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/games/{id}", gameHandler.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/games/{id}/moves", gameHandler.Move).Methods(http.MethodPost)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler(cfg.DictionaryService)).Methods(http.MethodGet)

	return r
}

func healthHandler(dict dictionary.ServiceInterface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		health := response.Health{Status: "ok"}
		if dict != nil && dict.IsLoaded() {
			health.DictionaryWords = dict.WordCount()
		}
		response.JSON(w, http.StatusOK, health)
	}
}
