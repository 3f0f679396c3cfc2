package components

import (
	"foodai-api/internal/handler"
	"foodai-api/internal/handler/api"
	"foodai-api/internal/handler/middleware"
	"foodai-api/internal/infra/ratelimit"
	"foodai-api/internal/pkg/config"
	"foodai-api/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewOfferHandler,
		api.NewCatalogHandler,
		api.NewClickoutHandler,
		api.NewAdminHandler,
		api.NewChatHandler,
		func(svc *jwt.Service, cfg config.Config) *middleware.AuthMiddleware {
			return middleware.NewAuthMiddleware(svc, cfg.JWT.Secret != "")
		},
		func(h *api.OfferHandler, cat *api.CatalogHandler, clk *api.ClickoutHandler, adm *api.AdminHandler, chat *api.ChatHandler) handler.Handlers {
			return handler.Handlers{
				Offer:    h,
				Catalog:  cat,
				Clickout: clk,
				Admin:    adm,
				Chat:     chat,
			}
		},
		func(limiter ratelimit.Limiter) gin.HandlerFunc {
			return middleware.RateLimitMiddleware(limiter)
		},
	),
	fx.Invoke(handler.NewRouter),
)
