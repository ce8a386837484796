package analytics

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/supernalintelligence/interface-docs-sub001/pkg/logger"
)

const (
	MaxProperties        = 32
	maxPropertyLength    = 256
	maxPropertyKeyLength = 64
)

var (
	ErrInvalidName        = errors.New("invalid event name")
	ErrTooManyProps       = errors.New("too many properties")
	ErrPropertyTooLong    = errors.New("property value too long")
	ErrInvalidPropertyKey = errors.New("invalid property key")
)

var eventName = regexp.MustCompile(`^[a-z][a-z0-9_.]{0,63}$`)

var EventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "site_events_total",
	Help: "First-party analytics events received, by name",
}, []string{"name"})

// Service validates and records events. Events are logged and counted;
// nothing is forwarded.
type Service struct {
	log    *slog.Logger
	now    func() time.Time
	mu     sync.Mutex
	counts map[string]int64
}

func NewService(log *slog.Logger) *Service {
	return &Service{
		log:    log.With(logger.Scope("analytics")),
		now:    time.Now,
		counts: make(map[string]int64),
	}
}

// Validate checks the event name and properties.
func Validate(ev Event) error {
	if !eventName.MatchString(ev.Name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, ev.Name)
	}
	if len(ev.Properties) > MaxProperties {
		return fmt.Errorf("%w: %d, limit is %d", ErrTooManyProps, len(ev.Properties), MaxProperties)
	}
	for k, v := range ev.Properties {
		if strings.TrimSpace(k) == "" || len(k) > maxPropertyKeyLength {
			return fmt.Errorf("%w: %.*q", ErrInvalidPropertyKey, maxPropertyKeyLength, k)
		}
		if len(v) > maxPropertyLength {
			return fmt.Errorf("%w: %s", ErrPropertyTooLong, k)
		}
	}
	return nil
}

// Track records ev and returns it with ReceivedAt set.
func (s *Service) Track(ctx context.Context, ev Event) (Event, error) {
	if err := Validate(ev); err != nil {
		return ev, err
	}
	ev.ReceivedAt = s.now().UTC()

	s.mu.Lock()
	s.counts[ev.Name]++
	s.mu.Unlock()
	EventsTotal.WithLabelValues(ev.Name).Inc()

	attrs := []any{
		slog.String("event", ev.Name),
		slog.String("path", ev.Path),
		slog.String("visitor", ev.VisitorID),
	}
	if len(ev.Properties) > 0 {
		keys := make([]string, 0, len(ev.Properties))
		for k := range ev.Properties {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		props := make([]any, len(keys))
		for i, k := range keys {
			props[i] = slog.String(k, ev.Properties[k])
		}
		attrs = append(attrs, slog.Group("properties", props...))
	}
	s.log.InfoContext(ctx, "site event", attrs...)

	return ev, nil
}

// Summary returns counts per event name, highest first.
func (s *Service) Summary() SummaryResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := SummaryResponse{Events: make([]EventCount, 0, len(s.counts))}
	for name, n := range s.counts {
		out.Events = append(out.Events, EventCount{Name: name, Count: n})
		out.Total += n
	}
	slices.SortFunc(out.Events, func(a, b EventCount) int {
		if a.Count != b.Count {
			if a.Count > b.Count {
				return -1
			}
			return 1
		}
		return strings.Compare(a.Name, b.Name)
	})
	return out
}
