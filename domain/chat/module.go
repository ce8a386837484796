package chat

import (
	"go.uber.org/fx"
)

var Module = fx.Module("chat",
	fx.Provide(NewService),
	fx.Provide(NewHandler),
	fx.Provide(NewLimiter),
	fx.Invoke(RegisterRoutes),
)
