package routes

import (
	"net/http"

	_ "github.com/Dosada05/volei-torneio/docs" // swagger.json
	"github.com/Dosada05/volei-torneio/handlers"
	"github.com/Dosada05/volei-torneio/metrics"
	"github.com/Dosada05/volei-torneio/middleware"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware" // Alias to avoid conflict
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Handlers struct {
	Document  *handlers.DocumentHandler
	Athlete   *handlers.AthleteHandler
	Team      *handlers.TeamHandler
	Match     *handlers.MatchHandler
	Bracket   *handlers.BracketHandler
	Vote      *handlers.VoteHandler
	Dashboard *handlers.DashboardHandler
	WebSocket *handlers.WebSocketHandler
}

type Options struct {
	AllowedOrigins []string
	RateLimitRPS   float64
	RateLimitBurst int
	Metrics        *metrics.Recorder
}

func SetupRoutes(router chi.Router, h Handlers, opts Options) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"Retry-After"},
		MaxAge:         300,
	}))

	router.Get("/health", handlers.Health)
	if opts.Metrics != nil {
		router.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())
	}
	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// WebSocket вне /api: без лимита и метрик, соединение долгоживущее
	router.Get("/ws", h.WebSocket.ServeWs)

	router.Route("/api", func(r chi.Router) {
		if opts.Metrics != nil {
			r.Use(opts.Metrics.Middleware)
		}
		r.Use(middleware.RateLimitWrites(opts.RateLimitRPS, opts.RateLimitBurst))

		r.Get("/document", h.Document.GetDocument)

		r.Route("/athletes", func(r chi.Router) {
			r.Get("/", h.Athlete.ListAthletes)
			r.Post("/", h.Athlete.CreateAthlete)
			r.Delete("/{athleteID}", h.Athlete.DeleteAthlete)
		})

		r.Route("/teams", func(r chi.Router) {
			r.Get("/", h.Team.ListTeams)
			r.Post("/", h.Team.CreateTeam)
			r.Patch("/{teamID}/group", h.Team.SetTeamGroup)
			r.Delete("/{teamID}", h.Team.DeleteTeam)
		})

		r.Route("/groups", func(r chi.Router) {
			r.Get("/", h.Bracket.ListGroups)
			r.Get("/standings", h.Bracket.Standings)
		})

		r.Route("/matches", func(r chi.Router) {
			r.Get("/", h.Match.ListMatches)
			r.Post("/", h.Match.CreateMatch)
			r.Put("/{matchID}/score", h.Match.UpdateScore)
			r.Delete("/{matchID}/score", h.Match.ResetScore)
		})

		r.Route("/bracket", func(r chi.Router) {
			r.Get("/phase", h.Bracket.Phase)
			r.Post("/groups", h.Bracket.GenerateGroups)
			r.Post("/semifinals", h.Bracket.AdvanceToSemifinals)
			r.Post("/finals", h.Bracket.AdvanceToFinals)
		})

		r.Route("/votes", func(r chi.Router) {
			r.Get("/", h.Vote.ListVotes)
			r.Post("/", h.Vote.CastVote)
		})

		r.Get("/dashboard", h.Dashboard.Stats)
	})
}
