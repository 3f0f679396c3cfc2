package bootstrap

import (
	"foodai-api/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	StorageModule,
	JWTModule,
	AssistantModule,
	RateLimitModule,
	components.UseCaseModule,
	components.HandlerModule,
)
