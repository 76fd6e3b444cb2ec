package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"content-dispatch/internal/domain/user"
	"content-dispatch/internal/handler/api"
	"content-dispatch/internal/handler/middleware"
	"content-dispatch/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth    *api.AuthHandler
	Account *api.AccountHandler
	Content *api.ContentHandler
	Job     *api.JobHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := authMiddleware.RequireAuth()
	requireOperator := authMiddleware.RequireRoleAtLeast(user.RoleOperator)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(requireAuth)
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		account := apiGroup.Group("/account")
		{
			addRoutes(account, []route{
				{Method: http.MethodPost, Path: "/verification", Handler: h.Account.RequestVerification, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodPost, Path: "/verify", Handler: h.Account.VerifyEmail},
				{Method: http.MethodPost, Path: "/password-reset", Handler: h.Account.RequestPasswordReset},
				{Method: http.MethodPost, Path: "/password-reset/confirm", Handler: h.Account.ConfirmPasswordReset},
			})
		}

		contents := apiGroup.Group("/contents")
		contents.Use(requireAuth)
		{
			addRoutes(contents, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Content.Create, Mw: []gin.HandlerFunc{requireOperator}},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Content.Get},
				{Method: http.MethodPost, Path: "/:id/publish", Handler: h.Content.Publish},
				{Method: http.MethodPost, Path: "/:id/unpublish", Handler: h.Content.Unpublish},
			})
		}

		jobs := apiGroup.Group("/jobs")
		jobs.Use(requireAuth, requireOperator)
		{
			addRoutes(jobs, []route{
				{Method: http.MethodGet, Path: "/:kind", Handler: h.Job.List},
				{Method: http.MethodGet, Path: "/:kind/:id", Handler: h.Job.Get},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
