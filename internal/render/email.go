package render

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
)

// defaultReminder is the banner line at the top of every mail.
const defaultReminder = "Read this reflection out loud and anchor to the facts."

//go:embed email.tmpl
var emailTmpl string

var compiledEmail = template.Must(template.New("email").Parse(emailTmpl))

type emailData struct {
	Reminder string
	Body     template.HTML
}

// Email wraps the sanitized reflection fragment in the full email envelope.
func Email(reflection string) (string, error) {
	var buf bytes.Buffer
	err := compiledEmail.Execute(&buf, emailData{
		Reminder: defaultReminder,
		// Sanitized by ReflectionHTML; safe to inline.
		Body: template.HTML(ReflectionHTML(reflection)),
	})
	if err != nil {
		return "", fmt.Errorf("render email: %w", err)
	}
	return buf.String(), nil
}
