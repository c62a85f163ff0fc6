package queue

import (
	"encoding/json"
	"testing"

	"github.com/SeakMengs/PropDesk/internal/mailer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNotificationMailJob(t *testing.T) {
	job, err := NewNotificationMailJob("user-1", mailer.NotificationMailData{
		Title:    "Lease created",
		Priority: "HIGH",
	})
	require.NoError(t, err)

	assert.Equal(t, "user-1", job.UserID)
	assert.Empty(t, job.ToEmail)
	assert.Equal(t, mailer.TemplateNotification, job.TemplateFile)
	assert.Equal(t, 0, job.Try)
	assert.NotEmpty(t, job.CreatedAt)

	var data mailer.NotificationMailData
	require.NoError(t, json.Unmarshal(job.Data, &data))
	assert.Equal(t, "Lease created", data.Title)
	assert.Equal(t, "HIGH", data.Priority)
}
