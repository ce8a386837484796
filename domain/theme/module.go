package theme

import (
	"go.uber.org/fx"
)

var Module = fx.Module("theme",
	fx.Provide(NewService),
	fx.Provide(NewHandler),
	fx.Invoke(RegisterRoutes),
	fx.Invoke(RegisterTools),
)
