package routes

import (
	"log/slog"
	"net/http"

	_ "github.com/Dosada05/bracketboard/docs"
	"github.com/Dosada05/bracketboard/handlers"
	"github.com/Dosada05/bracketboard/middleware"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Handlers struct {
	Bracket     *handlers.BracketHandler
	Leaderboard *handlers.LeaderboardHandler
	Publish     *handlers.PublishHandler
	WebSocket   *handlers.WebSocketHandler
}

func SetupRoutes(router chi.Router, h Handlers, jwtSecret []byte, logger *slog.Logger) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Get("/swagger/*", httpSwagger.WrapHandler)
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	router.Post("/brackets", h.Bracket.BuildHandler)
	router.Post("/rankings", h.Leaderboard.RankHandler)

	router.Route("/tournaments/{tournamentID}", func(r chi.Router) {
		r.Get("/bracket", h.Bracket.TournamentBracketHandler)
		r.Get("/connectors", h.Bracket.ConnectorsHandler)
		r.Get("/rankings", h.Leaderboard.TournamentRankingsHandler)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(jwtSecret, logger))
			r.Use(middleware.Authorize(middleware.RoleOrganizer, middleware.RoleAdmin))

			r.Post("/publish", h.Publish.PublishSnapshotHandler)
			r.Delete("/publish", h.Publish.UnpublishSnapshotHandler)
			r.Put("/placement-round", h.Leaderboard.SetPlacementRoundHandler)
		})
	})

	router.Get("/ws/tournaments/{tournamentID}", h.WebSocket.ServeWs)
}
