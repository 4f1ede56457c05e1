package sendgrid

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/loancompare/verify-api/internal/config"
	"github.com/sendgrid/rest"
	sg "github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type client interface {
	SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
}

// Mailer sends emails through the SendGrid v3 API.
type Mailer struct {
	client   client
	from     string
	fromName string
	sandbox  bool
}

func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{
		client:   sg.NewSendClient(cfg.SendGridAPIKey),
		from:     cfg.MailFrom,
		fromName: cfg.MailFromName,
		sandbox:  cfg.SendGridSandbox,
	}
}

func (m *Mailer) SendEmail(ctx context.Context, to, subject, body string) error {
	message := mail.NewSingleEmail(
		mail.NewEmail(m.fromName, m.from),
		subject,
		mail.NewEmail("", to),
		body,
		"<p>"+strings.ReplaceAll(html.EscapeString(body), "\n", "<br>")+"</p>",
	)
	if m.sandbox {
		ms := mail.NewMailSettings()
		ms.SetSandboxMode(mail.NewSetting(true))
		message.MailSettings = ms
	}

	resp, err := m.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("sendgrid send: %w", err)
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("sendgrid send: status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}
