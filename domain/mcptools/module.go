package mcptools

import (
	"go.uber.org/fx"
)

// Module must be listed after the domain modules that register tools.
var Module = fx.Module("mcp",
	fx.Invoke(RegisterRoutes),
)
