package http

import (
	"context"
	"net/http"

	"github.com/loancompare/verify-api/internal/metrics"
	"github.com/loancompare/verify-api/internal/pkg/token"
	"github.com/loancompare/verify-api/internal/verification"
)

// Mailer is the minimal interface the router requires from an email backend.
type Mailer interface {
	SendEmail(ctx context.Context, to, subject, body string) error
}

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	Codes          *verification.Cache
	Mailer         Mailer
	Metrics        *metrics.Metrics
	MetricsHandler http.Handler
	// GenerateCode defaults to token.NewNumericCode.
	GenerateCode func(n int) (string, error)
}

func (d *Deps) codeGenerator() func(n int) (string, error) {
	if d.GenerateCode != nil {
		return d.GenerateCode
	}
	return token.NewNumericCode
}

