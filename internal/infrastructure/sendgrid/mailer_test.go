package sendgrid

import (
	"context"
	"errors"
	"testing"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockClient struct{ mock.Mock }

func (m *mockClient) SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error) {
	args := m.Called(ctx, email)
	if r, _ := args.Get(0).(*rest.Response); r != nil {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func newTestMailer(c *mockClient, sandbox bool) *Mailer {
	return &Mailer{client: c, from: "noreply@loans.example.com", fromName: "Loan Compare", sandbox: sandbox}
}

func TestSendEmail_HappyPath(t *testing.T) {
	c := &mockClient{}
	c.On("SendWithContext", mock.Anything, mock.MatchedBy(func(e *mail.SGMailV3) bool {
		return e.Subject == "Your code" &&
			e.From.Address == "noreply@loans.example.com" &&
			e.From.Name == "Loan Compare" &&
			len(e.Personalizations) == 1 &&
			e.Personalizations[0].To[0].Address == "jane@example.com" &&
			e.MailSettings == nil
	})).Return(&rest.Response{StatusCode: 202}, nil)

	err := newTestMailer(c, false).SendEmail(context.Background(), "jane@example.com", "Your code", "Code: 1")
	require.NoError(t, err)
	c.AssertExpectations(t)
}

func TestSendEmail_SandboxMode(t *testing.T) {
	c := &mockClient{}
	c.On("SendWithContext", mock.Anything, mock.MatchedBy(func(e *mail.SGMailV3) bool {
		return e.MailSettings != nil && e.MailSettings.SandboxMode != nil &&
			e.MailSettings.SandboxMode.Enable != nil && *e.MailSettings.SandboxMode.Enable
	})).Return(&rest.Response{StatusCode: 200}, nil)

	require.NoError(t, newTestMailer(c, true).SendEmail(context.Background(), "a@b.co", "s", "b"))
	c.AssertExpectations(t)
}

func TestSendEmail_TransportError(t *testing.T) {
	c := &mockClient{}
	boom := errors.New("dial tcp: timeout")
	c.On("SendWithContext", mock.Anything, mock.Anything).Return(nil, boom)

	err := newTestMailer(c, false).SendEmail(context.Background(), "a@b.co", "s", "b")
	assert.ErrorIs(t, err, boom)
}

func TestSendEmail_RejectedStatus(t *testing.T) {
	c := &mockClient{}
	c.On("SendWithContext", mock.Anything, mock.Anything).
		Return(&rest.Response{StatusCode: 401, Body: `{"errors":[{"message":"unauthorized"}]}`}, nil)

	err := newTestMailer(c, false).SendEmail(context.Background(), "a@b.co", "s", "b")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
}
