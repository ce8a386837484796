package chat

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CommandsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chat_commands_total",
		Help: "Chat commands resolved, by tool and match kind",
	}, []string{"tool", "matched"})

	RateLimited = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chat_rate_limited_total",
		Help: "Chat commands rejected by the per-client rate limit",
	})
)
