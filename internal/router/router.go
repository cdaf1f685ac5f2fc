package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"fieldbook/internal/config"
	"fieldbook/internal/handlers"
	"fieldbook/internal/middleware"
	"fieldbook/internal/repository/postgres"
	"fieldbook/internal/service"
)

func New(log zerolog.Logger, db *pgxpool.Pool, cfg config.Config) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recoverer(log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.Origin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))
	r.Use(httprate.LimitByIP(200, time.Minute))

	// Repos + services
	userRepo := postgres.NewUserRepo(db)
	categoryRepo := postgres.NewCategoryRepo(db)
	issueRepo := postgres.NewIssueRepo(db)
	ticketRepo := postgres.NewTicketRepo(db)
	chatRepo := postgres.NewChatRepo(db)

	authSvc := service.NewAuthService(userRepo, cfg.SessionSecret)
	categorySvc := service.NewCategoryService(categoryRepo)
	issueSvc := service.NewIssueService(issueRepo)
	ticketSvc := service.NewTicketService(ticketRepo, issueRepo)
	chatSvc := service.NewChatService(chatRepo)

	ah := handlers.NewAuthHTTP(authSvc, log)
	uh := handlers.NewUserHTTP(userRepo, log)
	ch := handlers.NewCategoryHTTP(categorySvc, log)
	ih := handlers.NewIssueHTTP(issueSvc, log)
	th := handlers.NewTicketHTTP(ticketSvc, log)
	rh := handlers.NewReportHTTP(ticketSvc, log)
	mh := handlers.NewChatHTTP(chatSvc, log)

	// Health
	r.Get("/healthz", handlers.Health())

	// Public auth
	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", ah.Register())
		r.Post("/signup", ah.Register())
		r.Post("/login", ah.Login())
	})

	// Everything below requires a valid bearer token.
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.NoCache)
		r.Use(middleware.WithAuth(log, cfg))
		r.Use(middleware.RequireAuth)

		r.Route("/users", func(r chi.Router) {
			r.Get("/", uh.List())
			r.Get("/me", uh.Me())
		})

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", ch.List())
			r.Post("/", ch.Create())
			r.Put("/{id}", ch.Update())
			r.Delete("/{id}", ch.Delete())
		})

		r.Route("/issues", func(r chi.Router) {
			r.Get("/", ih.List())
			r.Post("/", ih.Create())
			r.Put("/{id}", ih.Update())
			r.Delete("/{id}", ih.Delete())
		})

		r.Route("/tickets", func(r chi.Router) {
			r.Get("/", th.List())
			r.Post("/", th.Create())
			r.Route("/{id}", func(r chi.Router) {
				r.Put("/status", th.SetStatus())
				r.Post("/bootstrap-steps", th.BootstrapSteps())
				r.Get("/steps", th.ListSteps())
				r.Put("/steps/{stepID}", th.UpdateStepResult())
				r.Get("/notes", th.ListNotes())
				r.Post("/notes", th.AddNote())
				r.Get("/report.pdf", rh.TicketPDF())
			})
		})

		r.Route("/chat", func(r chi.Router) {
			r.Get("/threads", mh.Threads())
			r.Get("/{otherUserID}", mh.Messages())
			r.Post("/{otherUserID}", mh.Send())
		})
	})

	return r
}
