package mailer

import (
	"bytes"
	"embed"
	"html/template"
)

const (
	FROM_NAME = "PropDesk"
	MAX_RETRY = 3
)

type MailTemplateFile string

const (
	TemplateNotification MailTemplateFile = "notification.tmpl"
)

//go:embed "templates"
var FS embed.FS

type Client interface {
	Send(templateFile MailTemplateFile, toUsername, toEmail string, data any) (int, error)
}

// Data for TemplateNotification
type NotificationMailData struct {
	AppName   string `json:"appName"`
	Username  string `json:"username"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Priority  string `json:"priority"`
	ActionURL string `json:"actionUrl"`
}

// Executes the "subject" and "body" blocks of an embedded template
func Render(templateFile MailTemplateFile, data any) (string, string, error) {
	tmpl, err := template.ParseFS(FS, "templates/"+string(templateFile))
	if err != nil {
		return "", "", err
	}

	subject := new(bytes.Buffer)
	if err := tmpl.ExecuteTemplate(subject, "subject", data); err != nil {
		return "", "", err
	}

	body := new(bytes.Buffer)
	if err := tmpl.ExecuteTemplate(body, "body", data); err != nil {
		return "", "", err
	}

	return subject.String(), body.String(), nil
}
