package components

import (
	"content-dispatch/internal/handler"
	"content-dispatch/internal/handler/api"
	"content-dispatch/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewAccountHandler,
		api.NewContentHandler,
		api.NewJobHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(auth *api.AuthHandler, account *api.AccountHandler, content *api.ContentHandler, job *api.JobHandler) handler.Handlers {
	return handler.Handlers{
		Auth:    auth,
		Account: account,
		Content: content,
		Job:     job,
	}
}
