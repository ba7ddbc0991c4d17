package metrics

import (
	"notifyd/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

// ProvideDispatchMetrics registers the dispatch metrics on the application registry.
func ProvideDispatchMetrics(registry *prometheus.Registry) (service.DispatchMetrics, error) {
	m, err := NewDispatchMetrics(registry)
	if err != nil {
		return nil, err
	}

	return m, nil
}

// Module provides the registry and the dispatch metrics
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewRegistry,
		ProvideDispatchMetrics,
	),
)
