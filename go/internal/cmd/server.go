package main

import (
	"fmt"
	"net/http"

	"github.com/rs/cors"
	"github.com/rs/zerolog/log"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

func setupServer(config *Config, services *Services) *http.Server {
	mux := http.NewServeMux()

	// Setup CORS middleware
	c := cors.New(cors.Options{
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
		},
		AllowedOrigins: []string{"*"},
		AllowedHeaders: []string{"*"},
	})

	registerRoutes(mux, services)
	setupHealthCheck(mux)

	handler := c.Handler(mux)

	// Setup HTTP/2 server
	return &http.Server{
		Addr:    fmt.Sprintf(":%s", config.API.Port),
		Handler: h2c.NewHandler(handler, &http2.Server{}),
	}
}

func registerRoutes(mux *http.ServeMux, services *Services) {
	mux.HandleFunc("GET /api/games", services.handleListGames)
	mux.HandleFunc("GET /api/games/{id}", services.handleGetGame)
	mux.HandleFunc("GET /api/games/{id}/boxscore", services.handleGetBoxScore)
	mux.HandleFunc("GET /api/standings", services.handleStandings)
	mux.HandleFunc("GET /api/players", services.handleSearchPlayers)
	mux.HandleFunc("GET /api/players/{id}", services.handleGetPlayer)
	mux.HandleFunc("GET /api/prefs/team", services.handleGetMyTeam)
	mux.HandleFunc("PUT /api/prefs/team", services.handleSetMyTeam)
	mux.HandleFunc("DELETE /api/prefs/team", services.handleClearMyTeam)
}

func setupHealthCheck(mux *http.ServeMux) {
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			log.Error().Err(err).Msg("failed to write health check response")
		}
	})
}
