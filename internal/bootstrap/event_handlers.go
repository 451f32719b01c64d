package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/binderapp/binder/internal/event"
	"github.com/binderapp/binder/internal/metrics"
	"github.com/binderapp/binder/internal/sse"
)

// RegisterEventHandlers subscribes the event consumers to the bus:
// - Metrics collector (business counters fed by events)
// - SSE subscriber (bridges bus events to connected clients)
func RegisterEventHandlers(bus event.Bus, hub *sse.Hub) error {
	metricsCollector := metrics.NewEventMetricsCollector()
	if err := metricsCollector.Register(bus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	subscriber := sse.NewSubscriber(hub, bus)
	subscriber.Subscribe()
	slog.Info(LogMsgSSESubscriberRegistered)

	return nil
}
