package components

import (
	"talent-notify/internal/pkg/clock"
	"talent-notify/internal/usecase/commands"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		commands.NewNotificationCommands,
	),
)
