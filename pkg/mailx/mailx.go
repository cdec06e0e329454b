// Package mailx delivers HTML email through a configurable transport.
package mailx

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
)

// Drivers accepted by Config.Driver.
const (
	DriverLog  = "log"
	DriverSMTP = "smtp"
	DriverSES  = "ses"
)

var (
	ErrNoRecipient   = errors.New("mailx: message has no recipient")
	ErrUnknownDriver = errors.New("mailx: unknown driver")
	ErrMissingConfig = errors.New("mailx: incomplete transport configuration")
)

// Message is a single HTML email. FromName overrides the configured display
// name for this message only.
type Message struct {
	To       string
	FromName string
	Subject  string
	HTML     string
}

// Sender delivers a message and returns the transport's message id.
type Sender interface {
	Send(ctx context.Context, msg Message) (string, error)
}

// Config selects and configures the transport. It is built once at startup
// and handed to New.
type Config struct {
	Driver   string
	From     string
	FromName string
	SMTP     SMTPConfig
	SES      SESConfig
}

// New builds the Sender named by cfg.Driver.
func New(ctx context.Context, cfg Config, log *slog.Logger) (Sender, error) {
	if _, err := mail.ParseAddress(cfg.From); err != nil {
		return nil, fmt.Errorf("%w: from address %q: %v", ErrMissingConfig, cfg.From, err)
	}

	switch strings.ToLower(cfg.Driver) {
	case "", DriverLog:
		return NewLogSender(cfg.From, cfg.FromName, log), nil
	case DriverSMTP:
		return NewSMTPSender(cfg.From, cfg.FromName, cfg.SMTP)
	case DriverSES:
		return NewSESSender(ctx, cfg.From, cfg.FromName, cfg.SES)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}

// fromHeader renders the From header, preferring the per-message display
// name.
func fromHeader(addr, defaultName, override string) string {
	name := defaultName
	if override != "" {
		name = override
	}
	return (&mail.Address{Name: name, Address: addr}).String()
}

func validate(msg Message) error {
	if strings.TrimSpace(msg.To) == "" {
		return ErrNoRecipient
	}
	if _, err := mail.ParseAddress(msg.To); err != nil {
		return fmt.Errorf("mailx: recipient %q: %w", msg.To, err)
	}
	return nil
}
