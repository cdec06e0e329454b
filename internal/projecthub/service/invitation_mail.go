package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/aussiebroadwan/projecthub/internal/projecthub/domain"
	"github.com/aussiebroadwan/projecthub/pkg/mailx"
)

// DefaultProductName appears in subjects and sender display names.
const DefaultProductName = "Project Manager"

var (
	invitationTemplate = template.Must(template.New("invitation").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Project invitation</title></head>
<body style="font-family: Arial, sans-serif; color: #333; background: #f5f5f5; margin: 0; padding: 0;">
  <div style="max-width: 600px; margin: 20px auto; background: #fff; border-radius: 8px; overflow: hidden;">
    <div style="background: #0056b3; color: #fff; padding: 24px; text-align: center;">
      <h1 style="margin: 0; font-weight: 300;">{{if .Reminder}}Invitation reminder{{else}}Project invitation{{end}}</h1>
    </div>
    <div style="padding: 24px;">
      <p><strong>{{.InviterName}}</strong> {{if .Reminder}}is still waiting for you to join{{else}}has invited you to join{{end}} a project.</p>
      <div style="background: #f8f9fa; border-left: 4px solid #0056b3; padding: 16px; margin: 16px 0;">
        <p><strong>Project:</strong> {{.ProjectTitle}}</p>
        <p><strong>Description:</strong> {{.ProjectDescription}}</p>
        <p><strong>Invited by:</strong> {{.InviterName}} ({{.InviterEmail}})</p>
      </div>
      <p style="text-align: center;">
        <a href="{{.AcceptURL}}" style="display: inline-block; padding: 12px 28px; background: #0056b3; color: #fff; text-decoration: none; border-radius: 24px;">Accept invitation</a>
      </p>
      <p>If the button does not work, paste this link into your browser:</p>
      <p style="word-break: break-all; font-family: monospace; font-size: 12px;">{{.AcceptURL}}</p>
      <p>This invitation expires on <strong>{{.ExpiresOn}}</strong>.</p>
      <p><small>You will need an account registered to {{.Email}} to accept it.</small></p>
    </div>
    <div style="padding: 16px; text-align: center; color: #666; font-size: 13px; background: #f8f9fa;">
      <p>If you did not expect this invitation you can ignore this email.</p>
      <p>{{.ProductName}}</p>
    </div>
  </div>
</body>
</html>
`))

	testEmailTemplate = template.Must(template.New("test").Parse(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #0056b3;">Test email delivered</h2>
  <p>Hi {{.Name}},</p>
  <p>Your email configuration is working.</p>
  <ul>
    <li>Sent at: {{.SentAt}}</li>
    <li>To: {{.Email}}</li>
  </ul>
  <p>You can now send project invitations.</p>
</div>
`))
)

// InvitationMailer renders and sends invitation emails.
type InvitationMailer struct {
	Sender      mailx.Sender
	FrontendURL string
	ProductName string
}

func (m *InvitationMailer) productName() string {
	if m.ProductName == "" {
		return DefaultProductName
	}
	return m.ProductName
}

// AcceptURL is the frontend link carrying the invitation token.
func (m *InvitationMailer) AcceptURL(token string) string {
	return strings.TrimRight(m.FrontendURL, "/") + "/accept-invitation/" + token
}

// SendInvitation mails the accept link for inv. A reminder uses the resend
// wording.
func (m *InvitationMailer) SendInvitation(
	ctx context.Context,
	inv domain.Invitation,
	project domain.Project,
	inviter domain.UserRef,
	reminder bool,
) (string, error) {
	var body bytes.Buffer
	err := invitationTemplate.Execute(&body, map[string]any{
		"Reminder":           reminder,
		"InviterName":        inviter.Name,
		"InviterEmail":       inviter.Email,
		"ProjectTitle":       project.Title,
		"ProjectDescription": project.Description,
		"AcceptURL":          m.AcceptURL(inv.Token),
		"ExpiresOn":          inv.ExpiresAt.UTC().Format("2 January 2006"),
		"Email":              inv.Email,
		"ProductName":        m.productName(),
	})
	if err != nil {
		return "", fmt.Errorf("render invitation email: %w", err)
	}

	subject := fmt.Sprintf("You're invited to join %q project!", project.Title)
	if reminder {
		subject = "Reminder: " + subject
	}

	return m.Sender.Send(ctx, mailx.Message{
		To:       inv.Email,
		FromName: inviter.Name + " via " + m.productName(),
		Subject:  subject,
		HTML:     body.String(),
	})
}

// SendTest mails a short confirmation to user.
func (m *InvitationMailer) SendTest(ctx context.Context, user domain.UserRef, now time.Time) (string, error) {
	var body bytes.Buffer
	err := testEmailTemplate.Execute(&body, map[string]any{
		"Name":   user.Name,
		"Email":  user.Email,
		"SentAt": now.UTC().Format(time.RFC1123),
	})
	if err != nil {
		return "", fmt.Errorf("render test email: %w", err)
	}

	return m.Sender.Send(ctx, mailx.Message{
		To:      user.Email,
		Subject: "Test Email from " + m.productName(),
		HTML:    body.String(),
	})
}
