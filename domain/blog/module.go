package blog

import (
	"context"
	"log/slog"

	"go.uber.org/fx"
)

var Module = fx.Module("blog",
	fx.Provide(NewService),
	fx.Provide(NewHandler),
	fx.Invoke(RegisterRoutes),
	fx.Invoke(RegisterTools),
	fx.Invoke(RegisterLifecycle),
)

// RegisterLifecycle loads the index before the server accepts traffic.
// A failed initial load is logged, not fatal; the scheduler retries.
func RegisterLifecycle(lc fx.Lifecycle, svc *Service, log *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := svc.Refresh(ctx); err != nil {
				log.Warn("initial blog load failed", slog.String("error", err.Error()))
			}
			return nil
		},
	})
}
