package mailer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderNotificationTemplate(t *testing.T) {
	subject, body, err := Render(TemplateNotification, NotificationMailData{
		AppName:   "PropDesk",
		Username:  "Dara Sok",
		Title:     "Maintenance request created",
		Message:   "Leaking pipe <b>in</b> unit 4B",
		Priority:  "URGENT",
		ActionURL: "http://localhost:3000/maintenance/1",
	})
	require.NoError(t, err)

	assert.Equal(t, "[PropDesk] Maintenance request created", strings.TrimSpace(subject))
	assert.Contains(t, body, "Hi Dara Sok,")
	assert.Contains(t, body, "URGENT")
	assert.Contains(t, body, `href="http://localhost:3000/maintenance/1"`)
	// html/template escapes user supplied text
	assert.Contains(t, body, "Leaking pipe &lt;b&gt;in&lt;/b&gt; unit 4B")
}

func TestRenderUnknownTemplate(t *testing.T) {
	_, _, err := Render(MailTemplateFile("missing.tmpl"), nil)
	assert.Error(t, err)
}

// Compile time checks
var (
	_ Client = SendGridMailer{}
	_ Client = (*GmailMailer)(nil)
)
