package site

import (
	"go.uber.org/fx"
)

var Module = fx.Module("site",
	fx.Provide(NewService),
	fx.Provide(NewHandler),
	fx.Invoke(RegisterRoutes),
	fx.Invoke(RegisterTools),
)
