package service

import (
	"context"
)

// PushTarget is a single device endpoint for a push delivery.
type PushTarget struct {
	DeviceID string // Row ID of the device record.
	Token    string
	Platform string
}

// PushPayload is the rendered message sent to every target.
type PushPayload struct {
	Title string
	Body  string
	Data  map[string]string
}

// DeviceError describes a per-device delivery failure.
type DeviceError struct {
	DeviceID     string
	Error        string
	InvalidToken bool // The token is unregistered or malformed and will never succeed.
}

// PushResult summarizes a multi-device delivery.
type PushResult struct {
	Success int
	Failed  int
	Errors  []DeviceError
}

// InvalidDeviceIDs returns the IDs of devices reported with invalid tokens.
func (r *PushResult) InvalidDeviceIDs() []string {
	if r == nil {
		return nil
	}

	ids := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		if e.InvalidToken {
			ids = append(ids, e.DeviceID)
		}
	}

	return ids
}

// PushGateway defines the interface for the external push delivery transport.
type PushGateway interface {
	// SendToDevices delivers the payload to all targets in one logical call.
	// A returned error means the whole attempt failed and may be retried.
	// Per-device failures are reported in the result.
	SendToDevices(ctx context.Context, targets []PushTarget, payload PushPayload) (*PushResult, error)
}
