package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/loancompare/verify-api/internal/config"
	"github.com/loancompare/verify-api/internal/infrastructure/sendgrid"
	"github.com/loancompare/verify-api/internal/infrastructure/smtp"
	"github.com/loancompare/verify-api/internal/metrics"
	transporthttp "github.com/loancompare/verify-api/internal/transport/http"
	"github.com/loancompare/verify-api/internal/verification"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	cfg := config.Load()
	if cfg.IsProduction() {
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
	}

	m := metrics.New(prometheus.DefaultRegisterer)

	// One cache per process; codes do not survive a restart.
	codes := verification.NewCache(verification.WithTTL(cfg.VerificationCodeTTL))

	var sweeper *verification.Sweeper
	if cfg.VerificationSweepSpec != "" {
		sweeper = verification.NewSweeper(codes, cfg.VerificationSweepSpec, m.ObserveSweep)
		if err := sweeper.Start(); err != nil {
			log.Fatalf("verification sweep: %v", err)
		}
	}

	var mailer transporthttp.Mailer
	switch cfg.MailProvider {
	case config.MailProviderSendGrid:
		if cfg.SendGridAPIKey == "" {
			log.Fatal("MAIL_PROVIDER=sendgrid requires SENDGRID_API_KEY")
		}
		mailer = sendgrid.NewMailer(cfg)
	case config.MailProviderSMTP:
		mailer = smtp.NewMailer(cfg)
	default:
		log.Fatalf("unknown MAIL_PROVIDER %q", cfg.MailProvider)
	}

	router := transporthttp.NewRouter(cfg, &transporthttp.Deps{
		Codes:          codes,
		Mailer:         mailer,
		Metrics:        m,
		MetricsHandler: promhttp.Handler(),
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on :%s (env=%s, mail=%s)", cfg.AppPort, cfg.AppEnv, cfg.MailProvider)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}
	router.Close()
	if sweeper != nil {
		sweeper.Stop()
	}
	log.Println("Server stopped")
}
