package queue

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/SeakMengs/PropDesk/internal/mailer"
	"github.com/SeakMengs/PropDesk/internal/repository"
	"github.com/SeakMengs/PropDesk/internal/testutil"
	"github.com/SeakMengs/PropDesk/internal/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentMail struct {
	toUsername string
	toEmail    string
	data       mailer.NotificationMailData
}

type fakeMailer struct {
	status int
	err    error
	sent   []sentMail
}

func (m *fakeMailer) Send(_ mailer.MailTemplateFile, toUsername, toEmail string, data any) (int, error) {
	if m.err != nil {
		return -1, m.err
	}
	m.sent = append(m.sent, sentMail{toUsername: toUsername, toEmail: toEmail, data: data.(mailer.NotificationMailData)})
	return m.status, nil
}

func newConsumerContext(t *testing.T, mail *fakeMailer) (*MailConsumerContext, string) {
	t.Helper()

	logger := util.NewLogger()
	db := testutil.NewDB(t)
	users := testutil.SeedUsers(t, db, 1)

	return &MailConsumerContext{
		Logger:     logger,
		Repository: repository.NewRepository(db, logger),
		Mailer:     mail,
	}, users[0].ID
}

func TestHandleMailJob(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves the recipient from the user id", func(t *testing.T) {
		mail := &fakeMailer{status: http.StatusAccepted}
		app, userId := newConsumerContext(t, mail)

		job, err := NewNotificationMailJob(userId, mailer.NotificationMailData{Title: "Lease terminated", Priority: "HIGH"})
		require.NoError(t, err)

		retry, err := HandleMailJob(ctx, job, app)
		require.NoError(t, err)
		assert.True(t, retry)

		require.Len(t, mail.sent, 1)
		assert.Equal(t, "user1@propdesk.test", mail.sent[0].toEmail)
		assert.Equal(t, "User 1", mail.sent[0].toUsername)
		assert.Equal(t, "User 1", mail.sent[0].data.Username)
		assert.Equal(t, "Lease terminated", mail.sent[0].data.Title)
	})

	t.Run("unknown user is dropped", func(t *testing.T) {
		mail := &fakeMailer{status: http.StatusOK}
		app, _ := newConsumerContext(t, mail)

		job, err := NewNotificationMailJob("missing", mailer.NotificationMailData{Title: "x"})
		require.NoError(t, err)

		retry, err := HandleMailJob(ctx, job, app)
		require.Error(t, err)
		assert.False(t, retry)
		assert.Empty(t, mail.sent)
	})

	t.Run("send failure is retried", func(t *testing.T) {
		mail := &fakeMailer{err: errors.New("smtp down")}
		app, userId := newConsumerContext(t, mail)

		job, err := NewNotificationMailJob(userId, mailer.NotificationMailData{Title: "x"})
		require.NoError(t, err)

		retry, err := HandleMailJob(ctx, job, app)
		require.Error(t, err)
		assert.True(t, retry)
	})

	t.Run("rejected status is retried", func(t *testing.T) {
		mail := &fakeMailer{status: http.StatusBadRequest}
		app, userId := newConsumerContext(t, mail)

		job, err := NewNotificationMailJob(userId, mailer.NotificationMailData{Title: "x"})
		require.NoError(t, err)

		retry, err := HandleMailJob(ctx, job, app)
		assert.ErrorContains(t, err, "400")
		assert.True(t, retry)
	})

	t.Run("unsupported template", func(t *testing.T) {
		app, userId := newConsumerContext(t, &fakeMailer{status: http.StatusOK})

		job, err := NewMailJobPayload(userId, "someone@example.com", mailer.MailTemplateFile("welcome.tmpl"), struct{}{})
		require.NoError(t, err)

		retry, err := HandleMailJob(ctx, job, app)
		require.Error(t, err)
		assert.False(t, retry)
	})
}
