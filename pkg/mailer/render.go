package mailer

import (
	"errors"
	"strings"

	"github.com/oksasatya/go-diary-api/pkg/mailer/templates"
)

var ErrNoRecipient = errors.New("email job has no recipient")

// Render resolves the subject and bodies for a job, rendering its template
// when one is named.
func (j *EmailJob) Render() (subject, text, html string, err error) {
	if strings.TrimSpace(j.To) == "" {
		return "", "", "", ErrNoRecipient
	}
	if j.Template == "" {
		return j.Subject, j.Text, j.HTML, nil
	}
	subject, text, html, err = templates.Render(j.Template, j.Data)
	if err != nil {
		return "", "", "", err
	}
	return strings.TrimSpace(subject), text, html, nil
}
