package mailer

import (
	"bytes"
	"html/template"
)

const ResetSubject = "Reset Your Password - Naturals"

var resetTmpl = template.Must(template.New("reset").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; background-color: #f5f5f5; margin: 0; padding: 20px;">
  <div style="max-width: 600px; margin: 0 auto; background: #ffffff; border-radius: 8px; padding: 32px;">
    <h2 style="color: #2E7D32;">Reset your password</h2>
    <p>Hi {{.Name}},</p>
    <p>We received a request to reset the password for your Naturals account.
       Click the button below to choose a new one.</p>
    <p style="text-align: center; margin: 32px 0;">
      <a href="{{.Link}}" style="background: #4CAF50; color: #ffffff; padding: 12px 24px; border-radius: 4px; text-decoration: none;">Reset Password</a>
    </p>
    <p>Or paste this link into your browser:<br><a href="{{.Link}}">{{.Link}}</a></p>
    <p>This link expires in {{.ValidFor}}. If you did not ask for a reset, you can ignore this email.</p>
  </div>
</body>
</html>`))

type ResetData struct {
	Name     string
	Link     string
	ValidFor string
}

func RenderReset(d ResetData) (string, error) {
	var buf bytes.Buffer
	if err := resetTmpl.Execute(&buf, d); err != nil {
		return "", err
	}
	return buf.String(), nil
}
