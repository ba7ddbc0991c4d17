package notification

import (
	"context"
	"log/slog"

	"notifyd/config"
	"notifyd/internal/domain/service"

	"go.uber.org/fx"
)

// GatewayParams holds dependencies for PushGateway, injected by Fx
type GatewayParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewPushGateway creates the Firebase gateway, or the log gateway when Firebase is not configured.
func NewPushGateway(params GatewayParams) (service.PushGateway, error) {
	if params.Config.Firebase == nil {
		params.Logger.Warn("Firebase not configured, push deliveries are only logged")

		return NewLogGateway(params.Logger), nil
	}

	return NewFirebaseGateway(params.Ctx, params.Config.Firebase, params.Logger)
}

// Module provides the push gateway FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewPushGateway),
)
