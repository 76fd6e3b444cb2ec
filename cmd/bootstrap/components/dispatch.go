package components

import (
	"content-dispatch/internal/infra/queue"
	"content-dispatch/internal/usecase/dispatch"

	"go.uber.org/fx"
)

var DispatchModule = fx.Module("dispatch",
	fx.Provide(
		func(b *queue.Broker) dispatch.Enqueuer { return b },
		dispatch.NewService,
	),
)
