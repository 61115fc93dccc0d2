package mailer

import (
	"bytes"
	"fmt"
	"html/template"
)

// TemplateWelcome greets a newly registered account.
const TemplateWelcome = "welcome"

var welcomeHTML = template.Must(template.New(TemplateWelcome).Parse(`<!DOCTYPE html>
<html>
  <body style="font-family: sans-serif; color: #333;">
    <h2>Welcome, {{.Name}}!</h2>
    <p>Your student support account ({{.Email}}) is ready.</p>
    <p>You can now browse tutoring, scholarships, community events, and
    mental-health resources, and join the community discussion.</p>
    <p>— {{.AppName}}</p>
  </body>
</html>`))

// Render produces subject, text, and HTML bodies for a named template.
func Render(name string, data map[string]any) (subject, text, html string, err error) {
	switch name {
	case TemplateWelcome:
		var buf bytes.Buffer
		if err = welcomeHTML.Execute(&buf, data); err != nil {
			return "", "", "", err
		}
		subject = "Welcome to Student Support"
		text = fmt.Sprintf("Welcome, %v! Your student support account is ready.", data["Name"])
		html = buf.String()
		return subject, text, html, nil
	default:
		return "", "", "", fmt.Errorf("unknown email template %q", name)
	}
}
