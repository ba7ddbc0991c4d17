// Package notification provides push delivery gateways.
package notification

import (
	"context"
	"log/slog"

	"notifyd/config"
	"notifyd/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"
	"google.golang.org/api/option"
)

// FCM accepts at most 500 tokens per multicast request.
const maxTokensPerMulticast = 500

// multicastSender is the subset of messaging.Client used by the gateway.
type multicastSender interface {
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

type firebaseGateway struct {
	client         multicastSender
	limiter        *rate.Limiter
	isInvalidToken func(error) bool
	logger         *slog.Logger
}

// NewFirebaseGateway creates a PushGateway backed by Firebase Cloud Messaging.
func NewFirebaseGateway(ctx context.Context, cfg *config.FirebaseConfig, logger *slog.Logger) (service.PushGateway, error) {
	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	var appConfig *firebase.Config
	if cfg.ProjectID != "" {
		appConfig = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(ctx, appConfig, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	logger.Info("Firebase push gateway initialized",
		slog.String("project_id", cfg.ProjectID),
		slog.Float64("send_rate", cfg.SendRatePerSecond),
	)

	return newFirebaseGateway(client, cfg, logger), nil
}

func newFirebaseGateway(client multicastSender, cfg *config.FirebaseConfig, logger *slog.Logger) *firebaseGateway {
	return &firebaseGateway{
		client:         client,
		limiter:        rate.NewLimiter(rate.Limit(cfg.SendRatePerSecond), cfg.SendBurst),
		isInvalidToken: isInvalidTokenError,
		logger:         logger,
	}
}

// isInvalidTokenError reports errors for tokens that will never be deliverable.
func isInvalidTokenError(err error) bool {
	return messaging.IsUnregistered(err) || messaging.IsInvalidArgument(err)
}

// SendToDevices sends the payload to every target, chunked by the multicast limit.
func (g *firebaseGateway) SendToDevices(ctx context.Context, targets []service.PushTarget, payload service.PushPayload) (*service.PushResult, error) {
	result := &service.PushResult{}

	for start := 0; start < len(targets); start += maxTokensPerMulticast {
		end := min(start+maxTokensPerMulticast, len(targets))
		chunk := targets[start:end]

		if err := g.limiter.Wait(ctx); err != nil {
			return nil, errors.Wrap(err, "push send rate limiter")
		}

		response, err := g.client.SendEachForMulticast(ctx, buildMulticastMessage(chunk, payload))
		if err != nil {
			return nil, errors.Wrap(err, "failed to send multicast notification")
		}

		g.collect(result, chunk, response)
	}

	g.logger.Debug("Push delivery completed",
		slog.Int("targets", len(targets)),
		slog.Int("success", result.Success),
		slog.Int("failed", result.Failed),
	)

	return result, nil
}

func (g *firebaseGateway) collect(result *service.PushResult, chunk []service.PushTarget, response *messaging.BatchResponse) {
	for idx, target := range chunk {
		if idx >= len(response.Responses) {
			result.Failed++
			result.Errors = append(result.Errors, service.DeviceError{
				DeviceID: target.DeviceID,
				Error:    "missing response from messaging service",
			})

			continue
		}

		sendResponse := response.Responses[idx]
		if sendResponse.Success {
			result.Success++

			continue
		}

		result.Failed++
		deviceErr := service.DeviceError{DeviceID: target.DeviceID, Error: "unknown delivery failure"}
		if sendResponse.Error != nil {
			deviceErr.Error = sendResponse.Error.Error()
			deviceErr.InvalidToken = g.isInvalidToken(sendResponse.Error)
		}
		result.Errors = append(result.Errors, deviceErr)
	}
}

func buildMulticastMessage(targets []service.PushTarget, payload service.PushPayload) *messaging.MulticastMessage {
	tokens := make([]string, 0, len(targets))
	for _, target := range targets {
		tokens = append(tokens, target.Token)
	}

	return &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: payload.Title,
			Body:  payload.Body,
		},
		Data: payload.Data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
		},
		APNS: &messaging.APNSConfig{
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{Sound: "default"},
			},
		},
	}
}
