package service

import "time"

// DispatchMetrics records operational counters of the dispatch pipeline.
type DispatchMetrics interface {
	// EventEnqueued counts an accepted event.
	EventEnqueued(eventType string)

	// EventOutcome counts an event reaching a status.
	EventOutcome(category, status string)

	// GatewayCall observes one push gateway call.
	GatewayCall(elapsed time.Duration, success, failed int, err error)

	// DevicesRevoked counts devices revoked by eviction or invalid-token feedback.
	DevicesRevoked(reason string, count int)

	// BatchCompleted observes one batch run.
	BatchCompleted(processed, failed int, elapsed time.Duration)
}
