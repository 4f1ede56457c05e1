package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/loancompare/verify-api/internal/application/emailverify"
	"github.com/loancompare/verify-api/internal/config"
	"github.com/loancompare/verify-api/internal/transport/http/handler"
	appmiddleware "github.com/loancompare/verify-api/internal/transport/http/middleware"
	"golang.org/x/time/rate"
)

// Router is the application handler plus resources that must be released on shutdown.
type Router struct {
	http.Handler
	sendRL *appmiddleware.RateLimiter
}

// Close releases background resources held by the router.
func (r *Router) Close() {
	r.sendRL.Close()
}

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) *Router {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Only code issuance is limited; it triggers outbound mail.
	sendRL := appmiddleware.NewRateLimiter(rate.Limit(cfg.SendRateLimitRPS), cfg.SendRateLimitBurst)

	verifySvc := emailverify.NewService(emailverify.ServiceDeps{
		Codes:    deps.Codes,
		Mailer:   deps.Mailer,
		Generate: deps.codeGenerator(),
		Metrics:  deps.Metrics,
	})

	healthH := handler.NewHealthHandler()
	verifyH := handler.NewEmailVerificationHandler(verifySvc)

	if deps.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", deps.MetricsHandler)
	}

	r.Route("/v1", func(r chi.Router) {
		r.Get("/health-check/{action}", healthH.Ping)
		r.Post("/health-check/{action}", healthH.Ping)

		r.With(sendRL.Limit).Post("/email-verification/send", verifyH.Send)
		r.Post("/email-verification/verify", verifyH.Verify)
	})

	return &Router{Handler: r, sendRL: sendRL}
}
