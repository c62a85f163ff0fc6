package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/SeakMengs/PropDesk/internal/mailer"
	"gorm.io/gorm"
)

// HandleMailJob delivers a queued notification mail. The recipient address is
// looked up from UserID when the job carries none.
func HandleMailJob(ctx context.Context, jobPayload MailJobPayload, app *MailConsumerContext) (bool, error) {
	switch jobPayload.TemplateFile {
	case mailer.TemplateNotification:
		var data mailer.NotificationMailData
		if err := json.Unmarshal(jobPayload.Data, &data); err != nil {
			return false, fmt.Errorf("failed to unmarshal NotificationMailData: %w", err)
		}

		toEmail := jobPayload.ToEmail
		toUsername := data.Username
		if toEmail == "" {
			user, err := app.Repository.User.GetById(ctx, nil, jobPayload.UserID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return false, fmt.Errorf("user not found: %s", jobPayload.UserID)
				}

				return true, fmt.Errorf("failed to get user: %w", err)
			}
			toEmail = user.Email
			toUsername = user.FullName()
		}
		if data.Username == "" {
			data.Username = toUsername
		}

		status, err := app.Mailer.Send(jobPayload.TemplateFile, toUsername, toEmail, data)
		if err != nil {
			return true, fmt.Errorf("failed to send email: %w", err)
		}

		if status < http.StatusOK || status >= http.StatusMultipleChoices {
			return true, fmt.Errorf("email sending failed with status: %d", status)
		}

		return true, nil
	default:
		return false, fmt.Errorf("unsupported template: %s", jobPayload.TemplateFile)
	}
}
