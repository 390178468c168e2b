package mailer

import (
	"context"
	"log/slog"

	"talent-notify/internal/usecase/commands"

	"github.com/google/uuid"
)

// LogProvider is the development adapter: it prints the message instead of
// sending it and fabricates a message id so the dispatch path behaves the
// same as with a real provider.
type LogProvider struct {
	logger *slog.Logger
}

func NewLogProvider(logger *slog.Logger) *LogProvider {
	return &LogProvider{logger: logger}
}

func (p *LogProvider) Send(_ context.Context, msg commands.OutboundMessage) (string, error) {
	id := "log-" + uuid.NewString()
	p.logger.Info("mail delivery (log provider)",
		"to", msg.To,
		"subject", msg.Subject,
		"html_bytes", len(msg.HTML),
		"message_id", id,
	)
	return id, nil
}
