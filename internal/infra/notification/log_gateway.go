package notification

import (
	"context"
	"log/slog"

	"notifyd/internal/domain/service"
)

// logGateway reports every target as delivered without contacting a push service.
// It backs local development when Firebase is not configured.
type logGateway struct {
	logger *slog.Logger
}

// NewLogGateway creates a PushGateway that only logs deliveries.
func NewLogGateway(logger *slog.Logger) service.PushGateway {
	return &logGateway{logger: logger}
}

func (g *logGateway) SendToDevices(ctx context.Context, targets []service.PushTarget, payload service.PushPayload) (*service.PushResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for _, target := range targets {
		g.logger.Info("[LogGateway] Push delivered",
			slog.String("device_id", target.DeviceID),
			slog.String("platform", target.Platform),
			slog.String("title", payload.Title),
		)
	}

	return &service.PushResult{Success: len(targets)}, nil
}
