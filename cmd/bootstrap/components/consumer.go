package components

import (
	"fmt"
	"log/slog"

	"talent-notify/internal/consumer"
	"talent-notify/internal/pkg/clock"
	"talent-notify/internal/pkg/config"
	"talent-notify/internal/usecase/commands"

	"go.uber.org/fx"
)

// Each notification family gets its own delivery service so the fan-out
// policy and metric labels stay per family: health alerts are best effort,
// everything else fails the event so the bus can redeliver it.
var ConsumerModule = fx.Module("consumer",
	fx.Provide(
		NewBillingConsumer,
		NewHealthConsumer,
		NewApplicationConsumer,
		NewInvitationConsumer,
		NewCandidateConsumer,
		NewRegistry,
	),
)

type deliveryDeps struct {
	fx.In

	Repo     commands.NotificationRepository
	Provider commands.MailProvider
	Clock    clock.Clock
	Config   config.Config
	Logger   *slog.Logger
}

func (d deliveryDeps) newDelivery(family string, policy commands.FanOutPolicy) commands.DeliveryService {
	from := fmt.Sprintf("%s <%s>", d.Config.Mail.FromName, d.Config.Mail.FromAddress)
	return commands.NewDeliveryService(family, from, policy, d.Repo, d.Provider, d.Clock, d.Logger)
}

func NewBillingConsumer(deps deliveryDeps, contacts commands.ContactDirectory) *consumer.BillingConsumer {
	return consumer.NewBillingConsumer(
		deps.newDelivery("billing", commands.AllOrNothing), contacts, deps.Logger)
}

func NewHealthConsumer(deps deliveryDeps) *consumer.HealthConsumer {
	return consumer.NewHealthConsumer(
		deps.newDelivery("health", commands.BestEffort), deps.Config.Alerts.Recipients, deps.Logger)
}

func NewApplicationConsumer(deps deliveryDeps, contacts commands.ContactDirectory) *consumer.ApplicationConsumer {
	return consumer.NewApplicationConsumer(
		deps.newDelivery("applications", commands.AllOrNothing), contacts, deps.Logger)
}

func NewInvitationConsumer(deps deliveryDeps) *consumer.InvitationConsumer {
	return consumer.NewInvitationConsumer(
		deps.newDelivery("invitations", commands.AllOrNothing), deps.Logger)
}

func NewCandidateConsumer(deps deliveryDeps, contacts commands.ContactDirectory) *consumer.CandidateConsumer {
	return consumer.NewCandidateConsumer(
		deps.newDelivery("candidates", commands.AllOrNothing), contacts, deps.Logger)
}

func NewRegistry(
	logger *slog.Logger,
	billing *consumer.BillingConsumer,
	health *consumer.HealthConsumer,
	applications *consumer.ApplicationConsumer,
	invitations *consumer.InvitationConsumer,
	candidates *consumer.CandidateConsumer,
) *consumer.Registry {
	r := consumer.NewRegistry(logger)
	billing.Register(r)
	health.Register(r)
	applications.Register(r)
	invitations.Register(r)
	candidates.Register(r)
	return r
}
