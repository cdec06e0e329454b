package mailx

import (
	"context"
	"log/slog"

	"github.com/aussiebroadwan/projecthub/pkg/idx"
	"github.com/aussiebroadwan/projecthub/pkg/slogx"
)

// LogSender writes a summary of each message to the log instead of sending
// it. Bodies are omitted because they carry invitation links.
type LogSender struct {
	from     string
	fromName string
	log      *slog.Logger
}

func NewLogSender(from, fromName string, log *slog.Logger) *LogSender {
	return &LogSender{from: from, fromName: fromName, log: log}
}

func (s *LogSender) Send(ctx context.Context, msg Message) (string, error) {
	if err := validate(msg); err != nil {
		return "", err
	}

	log := s.log
	if log == nil {
		log = slogx.FromContext(ctx)
	}

	id := "log-" + idx.New().String()
	log.InfoContext(ctx, "email not delivered (log driver)",
		slog.String("message_id", id),
		slog.String("from", fromHeader(s.from, s.fromName, msg.FromName)),
		slog.String("to", msg.To),
		slog.String("subject", msg.Subject),
		slog.Int("html_bytes", len(msg.HTML)),
	)
	return id, nil
}
