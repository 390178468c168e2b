package bootstrap

import (
	"talent-notify/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	MailModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.ConsumerModule,
	components.HandlerModule,
	EventBusModule,
)
