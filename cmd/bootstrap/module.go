package bootstrap

import (
	"content-dispatch/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// Module is shared by the API and the worker process.
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	RedisModule,
	JWTModule,
	components.PersistenceModule,
	components.DispatchModule,
	components.UseCaseModule,
)
