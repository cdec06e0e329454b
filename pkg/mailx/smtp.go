package mailx

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"mime"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"github.com/aussiebroadwan/projecthub/pkg/idx"
)

// SMTPConfig configures SMTPSender. Port 465 uses implicit TLS; any other
// port upgrades with STARTTLS when the server offers it.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string

	// InsecureSkipVerify disables certificate checks. Local relays only.
	InsecureSkipVerify bool
	Timeout            time.Duration
}

// SMTPSender delivers mail through an SMTP relay, one connection per message.
type SMTPSender struct {
	from     string
	fromName string
	cfg      SMTPConfig
}

func NewSMTPSender(from, fromName string, cfg SMTPConfig) (*SMTPSender, error) {
	if cfg.Host == "" || cfg.Port <= 0 {
		return nil, fmt.Errorf("%w: smtp host and port are required", ErrMissingConfig)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	return &SMTPSender{from: from, fromName: fromName, cfg: cfg}, nil
}

func (s *SMTPSender) Send(ctx context.Context, msg Message) (string, error) {
	if err := validate(msg); err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	client, err := s.dial(ctx)
	if err != nil {
		return "", err
	}
	defer client.Close()

	if s.cfg.Username != "" {
		auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
		if err := client.Auth(auth); err != nil {
			return "", fmt.Errorf("mailx: smtp auth: %w", err)
		}
	}

	if err := client.Mail(s.from); err != nil {
		return "", fmt.Errorf("mailx: smtp MAIL FROM: %w", err)
	}
	if err := client.Rcpt(msg.To); err != nil {
		return "", fmt.Errorf("mailx: smtp RCPT TO: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return "", fmt.Errorf("mailx: smtp DATA: %w", err)
	}

	id := s.messageID()
	if _, err := w.Write(s.render(id, msg)); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("mailx: smtp write: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("mailx: smtp end DATA: %w", err)
	}

	_ = client.Quit()
	return id, nil
}

func (s *SMTPSender) dial(ctx context.Context) (*smtp.Client, error) {
	addr := net.JoinHostPort(s.cfg.Host, strconv.Itoa(s.cfg.Port))
	tlsConfig := &tls.Config{
		ServerName:         s.cfg.Host,
		InsecureSkipVerify: s.cfg.InsecureSkipVerify,
	}

	var (
		conn net.Conn
		err  error
	)
	if s.cfg.Port == 465 {
		d := &tls.Dialer{Config: tlsConfig}
		conn, err = d.DialContext(ctx, "tcp", addr)
	} else {
		var d net.Dialer
		conn, err = d.DialContext(ctx, "tcp", addr)
	}
	if err != nil {
		return nil, fmt.Errorf("mailx: smtp dial %s: %w", addr, err)
	}

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	client, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("mailx: smtp handshake: %w", err)
	}

	if s.cfg.Port != 465 {
		if ok, _ := client.Extension("STARTTLS"); ok {
			if err := client.StartTLS(tlsConfig); err != nil {
				client.Close()
				return nil, fmt.Errorf("mailx: smtp STARTTLS: %w", err)
			}
		}
	}

	return client, nil
}

func (s *SMTPSender) messageID() string {
	domain := s.cfg.Host
	if _, d, ok := strings.Cut(s.from, "@"); ok {
		domain = d
	}
	return "<" + idx.New().String() + "@" + domain + ">"
}

func (s *SMTPSender) render(id string, msg Message) []byte {
	var b bytes.Buffer
	header := func(k, v string) {
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(v)
		b.WriteString("\r\n")
	}

	header("From", fromHeader(s.from, s.fromName, msg.FromName))
	header("To", msg.To)
	header("Subject", mime.QEncoding.Encode("utf-8", msg.Subject))
	header("Message-ID", id)
	header("Date", time.Now().UTC().Format(time.RFC1123Z))
	header("MIME-Version", "1.0")
	header("Content-Type", `text/html; charset="UTF-8"`)
	header("Content-Transfer-Encoding", "8bit")
	b.WriteString("\r\n")

	body := strings.ReplaceAll(msg.HTML, "\r\n", "\n")
	b.WriteString(strings.ReplaceAll(body, "\n", "\r\n"))
	b.WriteString("\r\n")
	return b.Bytes()
}
