package bootstrap

import (
	"log/slog"

	"talent-notify/internal/infra/contacts"
	"talent-notify/internal/infra/mailer"
	"talent-notify/internal/pkg/config"
	"talent-notify/internal/usecase/commands"

	"go.uber.org/fx"
)

var MailModule = fx.Module("mail",
	fx.Provide(
		NewMailProvider,
		fx.Annotate(
			NewContactDirectory,
			fx.As(new(commands.ContactDirectory)),
		),
	),
)

func NewMailProvider(cfg config.Config, logger *slog.Logger) commands.MailProvider {
	if cfg.Mail.Provider == "log" {
		return mailer.NewLogProvider(logger)
	}
	return mailer.NewResendProvider(cfg.Mail)
}

func NewContactDirectory(cfg config.Config) *contacts.HTTPDirectory {
	return contacts.NewHTTPDirectory(cfg.Mail)
}
