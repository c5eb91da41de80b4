package mailer

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dheerghayush/naturals/pkg/apiclient"
)

// Sender delivers a single transactional HTML email.
type Sender interface {
	Send(ctx context.Context, toAddress, toName, subject, htmlBody string) error
}

type BrevoClient struct {
	api         *apiclient.Client
	senderEmail string
	senderName  string
}

func NewBrevoClient(baseURL, apiKey, senderEmail, senderName string) *BrevoClient {
	return &BrevoClient{
		api:         apiclient.NewClient(baseURL, apiclient.WithHeader("api-key", apiKey)),
		senderEmail: senderEmail,
		senderName:  senderName,
	}
}

type contact struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type sendRequest struct {
	Sender      contact   `json:"sender"`
	To          []contact `json:"to"`
	Subject     string    `json:"subject"`
	HTMLContent string    `json:"htmlContent"`
}

func (c *BrevoClient) Send(ctx context.Context, toAddress, toName, subject, htmlBody string) error {
	req := sendRequest{
		Sender:      contact{Email: c.senderEmail, Name: c.senderName},
		To:          []contact{{Email: toAddress, Name: toName}},
		Subject:     subject,
		HTMLContent: htmlBody,
	}
	if err := c.api.Do(ctx, http.MethodPost, "smtp/email", req, nil); err != nil {
		return fmt.Errorf("brevo send: %w", err)
	}
	return nil
}

// Disabled is used when no provider is configured; every send fails.
type Disabled struct{}

func (Disabled) Send(context.Context, string, string, string, string) error {
	return fmt.Errorf("email provider not configured")
}
