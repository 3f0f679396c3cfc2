package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"foodai-api/internal/handler/api"
	"foodai-api/internal/handler/middleware"
	"foodai-api/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Offer    *api.OfferHandler
	Catalog  *api.CatalogHandler
	Clickout *api.ClickoutHandler
	Admin    *api.AdminHandler
	Chat     *api.ChatHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware, chatLimit gin.HandlerFunc) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware, chatLimit)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware, chatLimit gin.HandlerFunc) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/offers", Handler: h.Offer.List},
			{Method: http.MethodGet, Path: "/stats", Handler: h.Offer.Stats},
			{Method: http.MethodGet, Path: "/search", Handler: h.Offer.Search},
			{Method: http.MethodGet, Path: "/providers", Handler: h.Catalog.Providers},
			{Method: http.MethodGet, Path: "/cities", Handler: h.Catalog.Cities},
			{Method: http.MethodGet, Path: "/cuisines", Handler: h.Catalog.Cuisines},
			{Method: http.MethodPost, Path: "/clickouts", Handler: h.Clickout.Create},
		})

		chat := apiGroup.Group("/chat")
		chat.Use(chatLimit)
		{
			addRoutes(chat, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Chat.Complete},
				{Method: http.MethodPost, Path: "/stream", Handler: h.Chat.Stream},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAdmin())
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/overview", Handler: h.Admin.Overview},
				{Method: http.MethodGet, Path: "/providers", Handler: h.Admin.Providers},
				{Method: http.MethodGet, Path: "/clickouts", Handler: h.Admin.Clickouts},
				{Method: http.MethodGet, Path: "/commissions", Handler: h.Admin.Commissions},
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
