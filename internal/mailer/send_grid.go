package mailer

import (
	"fmt"
	"strings"
	"time"

	"github.com/SeakMengs/PropDesk/internal/util"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"
)

type SendGridMailer struct {
	fromEmail string
	client    *sendgrid.Client
	isSandBox bool
	logger    *zap.SugaredLogger
}

func NewSendgrid(apiKey string, fromEmail string, isProduction bool, logger *zap.SugaredLogger) *SendGridMailer {
	if logger == nil {
		logger = util.NewLogger()
	}

	client := sendgrid.NewSendClient(apiKey)

	return &SendGridMailer{
		fromEmail: fromEmail,
		client:    client,
		// Sandbox mode validates the request without delivering it
		isSandBox: !isProduction,
		logger:    logger,
	}
}

// Renders templateFile with data and sends it, retrying transport errors with a linear backoff.
// The returned status is SendGrid's; callers decide whether a non 2xx status is retried.
func (m SendGridMailer) Send(templateFile MailTemplateFile, toUsername, toEmail string, data any) (int, error) {
	subject, body, err := Render(templateFile, data)
	if err != nil {
		m.logger.Errorw("failed to render email template", "error", err, "templateFile", templateFile)
		return -1, err
	}

	message := mail.NewSingleEmail(mail.NewEmail(FROM_NAME, m.fromEmail), subject, mail.NewEmail(toUsername, toEmail), "", body)
	message.AddCategories(strings.TrimSuffix(string(templateFile), ".tmpl"))
	message.SetMailSettings(&mail.MailSettings{
		SandboxMode: &mail.Setting{
			Enable: &m.isSandBox,
		},
	})

	var lastErr error
	for attempt := 1; attempt <= MAX_RETRY; attempt++ {
		response, err := m.client.Send(message)
		if err == nil {
			m.logger.Debugw("sendgrid accepted email", "toEmail", toEmail, "status", response.StatusCode, "attempt", attempt)
			return response.StatusCode, nil
		}

		lastErr = err
		m.logger.Warnw("sendgrid request failed", "error", err, "toEmail", toEmail, "attempt", attempt)
		if attempt < MAX_RETRY {
			time.Sleep(time.Duration(attempt) * time.Second)
		}
	}

	return -1, fmt.Errorf("failed to send email after %d attempts: %w", MAX_RETRY, lastErr)
}
