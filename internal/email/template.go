package email

import (
	"bytes"
	"fmt"
	"html/template"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var templates = template.Must(template.New("").Parse(`
{{- define "confirm-account" -}}
<p>Hello {{ .Name }}, you have created your account on CashTracker. It is almost ready!</p>
<p>Visit the following link:</p>
<a href="{{ .Link }}">Confirm account</a>
<p>and enter the code: <b>{{ .Token }}</b></p>
{{- end -}}

{{- define "reset-password" -}}
<p>Hello {{ .Name }}, you have requested to reset your password.</p>
<p>Visit the following link:</p>
<a href="{{ .Link }}">Reset password</a>
<p>and enter the code: <b>{{ .Token }}</b></p>
{{- end -}}
`))

var subjects = map[Kind]string{
	ConfirmAccount: "CashTracker - Confirm your account",
	ResetPassword:  "CashTracker - Reset your password",
}

var paths = map[Kind]string{
	ConfirmAccount: "/auth/confirm-account",
	ResetPassword:  "/auth/new-password",
}

// Render builds the mail for event. Links point to the frontend at frontendURL.
func Render(frontendURL string, event Event) (Message, error) {
	subject, ok := subjects[event.Kind]
	if !ok {
		return Message{}, fmt.Errorf("no mail for event kind %d", event.Kind)
	}

	var body bytes.Buffer
	err := templates.ExecuteTemplate(&body, event.Kind.String(), struct {
		Name  string
		Link  string
		Token string
	}{
		Name:  cases.Title(language.Und).String(event.Name),
		Link:  frontendURL + paths[event.Kind],
		Token: event.Token,
	})
	if err != nil {
		return Message{}, fmt.Errorf("rendering %s mail: %w", event.Kind, err)
	}

	return Message{
		To:      event.Email,
		Subject: subject,
		HTML:    body.String(),
	}, nil
}
