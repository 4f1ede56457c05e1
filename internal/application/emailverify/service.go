package emailverify

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/loancompare/verify-api/internal/domain"
	"github.com/loancompare/verify-api/internal/verification"
)

const (
	codeLength  = 6
	mailSubject = "Your verification code"
)

// ErrInvalidCode is returned for a missing, expired, wrong or already used code.
// The cases are deliberately not distinguished.
var ErrInvalidCode = fmt.Errorf("invalid or expired code, request a new one: %w", domain.ErrBadRequest)

type SendCodeRequest struct {
	Email string `json:"email" validate:"required,email_shape"`
}

type VerifyCodeRequest struct {
	Email string `json:"email" validate:"required"`
	Code  string `json:"code" validate:"required"`
}

type Service interface {
	RequestCode(ctx context.Context, req SendCodeRequest) error
	ConfirmCode(ctx context.Context, req VerifyCodeRequest) error
}

// CodeStore is the subset of *verification.Cache the service needs.
type CodeStore interface {
	Issue(email, code string)
	Verify(email, candidate string) bool
	Len() int
	TTL() time.Duration
}

type Mailer interface {
	SendEmail(ctx context.Context, to, subject, body string) error
}

// CodeGenerator produces a fresh numeric code of the given length.
type CodeGenerator func(n int) (string, error)

type Recorder interface {
	IncrementIssued()
	IncrementMailFailures()
	ObserveVerification(ok bool)
	SetPending(count int)
}

type ServiceDeps struct {
	Codes    CodeStore
	Mailer   Mailer
	Generate CodeGenerator
	Metrics  Recorder
}

type service struct {
	codes    CodeStore
	mailer   Mailer
	generate CodeGenerator
	metrics  Recorder
}

func NewService(deps ServiceDeps) Service {
	return &service{
		codes:    deps.Codes,
		mailer:   deps.Mailer,
		generate: deps.Generate,
		metrics:  deps.Metrics,
	}
}

func (s *service) RequestCode(ctx context.Context, req SendCodeRequest) error {
	if !verification.IsValidEmail(req.Email) {
		return fmt.Errorf("invalid email address: %w", domain.ErrBadRequest)
	}
	email := verification.Normalize(req.Email)

	code, err := s.generate(codeLength)
	if err != nil {
		return err
	}
	s.codes.Issue(email, code)
	s.metrics.IncrementIssued()
	s.metrics.SetPending(s.codes.Len())

	body := fmt.Sprintf(
		"Your verification code is %s.\n\nIt expires in %s. If you did not request it, you can ignore this email.",
		code, describeTTL(s.codes.TTL()),
	)
	if err := s.mailer.SendEmail(ctx, email, mailSubject, body); err != nil {
		s.metrics.IncrementMailFailures()
		slog.Error("failed to send verification email", "email", email, "err", err)
		return fmt.Errorf("could not send verification email: %w", domain.ErrUnavailable)
	}
	return nil
}

func (s *service) ConfirmCode(_ context.Context, req VerifyCodeRequest) error {
	ok := s.codes.Verify(req.Email, req.Code)
	s.metrics.ObserveVerification(ok)
	s.metrics.SetPending(s.codes.Len())
	if !ok {
		return ErrInvalidCode
	}
	return nil
}

func describeTTL(d time.Duration) string {
	if d >= time.Minute && d%time.Minute == 0 {
		if d == time.Minute {
			return "1 minute"
		}
		return fmt.Sprintf("%d minutes", int(d/time.Minute))
	}
	return fmt.Sprintf("%d seconds", int(d.Round(time.Second)/time.Second))
}
