package components

import (
	"talent-notify/internal/infra/readstore"
	"talent-notify/internal/infra/repository"
	"talent-notify/internal/usecase/commands"
	"talent-notify/internal/usecase/queries"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		fx.Annotate(
			repository.NewNotificationRepository,
			fx.As(new(commands.NotificationRepository)),
			fx.As(new(commands.NotificationFlagsRepository)),
		),
		fx.Annotate(
			readstore.NewNotificationReadStore,
			fx.As(new(queries.NotificationQueries)),
		),
	),
)
