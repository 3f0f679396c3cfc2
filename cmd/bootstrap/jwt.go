package bootstrap

import (
	"time"

	"foodai-api/internal/pkg/config"
	"foodai-api/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config) *jwt.Service {
	duration, err := time.ParseDuration(cfg.JWT.Duration)
	if err != nil {
		duration = 24 * time.Hour
	}
	return jwt.NewService(cfg.JWT.Secret, duration)
}
