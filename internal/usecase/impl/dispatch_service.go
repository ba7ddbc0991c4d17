package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"notifyd/config"
	deliverycontext "notifyd/internal/delivery/context"
	"notifyd/internal/domain/entity"
	domainerrors "notifyd/internal/domain/errors"
	"notifyd/internal/domain/repository"
	"notifyd/internal/domain/service"
	"notifyd/internal/usecase"
	"notifyd/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Push data keys delivered alongside the rendered message.
const (
	pushDataDeeplink  = "deeplink"
	pushDataEventID   = "eventId"
	pushDataEventType = "eventType"
	pushDataCategory  = "category"
)

// dispatchService implements the DispatchUsecase interface.
type dispatchService struct {
	eventRepo        repository.EventRepository
	notificationRepo repository.NotificationRepository
	preferences      usecase.PreferenceUsecase
	devices          usecase.DeviceUsecase
	gateway          service.PushGateway
	publisher        service.EventPublisher
	clock            service.Clock
	metrics          service.DispatchMetrics
	cfg              *config.DispatchConfig
	logger           *slog.Logger
}

// DispatchServiceParams holds dependencies for DispatchService, injected by Fx.
type DispatchServiceParams struct {
	fx.In

	EventRepo        repository.EventRepository
	NotificationRepo repository.NotificationRepository
	Preferences      usecase.PreferenceUsecase
	Devices          usecase.DeviceUsecase
	Gateway          service.PushGateway
	Publisher        service.EventPublisher
	Clock            service.Clock
	Metrics          service.DispatchMetrics
	Config           *config.Config
	Logger           *slog.Logger
}

// NewDispatchService is the constructor for dispatchService.
func NewDispatchService(params DispatchServiceParams) usecase.DispatchUsecase {
	dispatchCfg := config.DefaultDispatchConfig()
	if params.Config != nil && params.Config.Dispatch != nil {
		dispatchCfg = params.Config.Dispatch
	}

	return &dispatchService{
		eventRepo:        params.EventRepo,
		notificationRepo: params.NotificationRepo,
		preferences:      params.Preferences,
		devices:          params.Devices,
		gateway:          params.Gateway,
		publisher:        params.Publisher,
		clock:            params.Clock,
		metrics:          params.Metrics,
		cfg:              dispatchCfg,
		logger:           params.Logger,
	}
}

func (s *dispatchService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Enqueue validates and stores an event as PENDING, then signals consumers.
func (s *dispatchService) Enqueue(ctx context.Context, req *usecase.EnqueueRequest) (*entity.NotificationEvent, error) {
	if req == nil {
		return nil, domainerrors.ErrInvalidEvent.WrapMessage("missing event")
	}
	if err := validateInput(req, domainerrors.ErrInvalidEvent); err != nil {
		return nil, err
	}
	if !req.EventType.Valid() {
		return nil, domainerrors.ErrInvalidEvent.WrapMessage("unknown event type " + string(req.EventType))
	}

	now := s.clock.Now()
	dedupeKey := strings.TrimSpace(req.DedupeKey)
	if dedupeKey == "" {
		dedupeKey = entity.DefaultDedupeKey(req.UserID, req.EventType, req.Payload.TargetID)
	}

	event := &entity.NotificationEvent{
		ID:        uuid.New(),
		UserID:    req.UserID,
		EventType: req.EventType,
		Category:  req.EventType.Category(),
		Payload:   req.Payload,
		Status:    entity.EventStatusPending,
		DedupeKey: dedupeKey,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if req.ScheduledAt != nil {
		scheduledAt := req.ScheduledAt.UTC()
		event.ScheduledAt = &scheduledAt
	}

	if err := s.eventRepo.CreateEvent(ctx, event); err != nil {
		s.log(ctx).Error("Failed to enqueue notification event",
			slog.String("userID", req.UserID.String()),
			slog.String("eventType", string(req.EventType)),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to create notification event")
	}

	s.metrics.EventEnqueued(string(event.EventType))
	s.log(ctx).Info("Notification event enqueued",
		slog.String("eventID", event.ID.String()),
		slog.String("userID", event.UserID.String()),
		slog.String("eventType", string(event.EventType)),
	)

	if event.IsDue(now) {
		s.signal(ctx, event)
	}

	return event, nil
}

// signal publishes a dispatch signal. The batch processor picks the event up if publishing fails.
func (s *dispatchService) signal(ctx context.Context, event *entity.NotificationEvent) {
	signal := &service.DispatchSignal{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		EventID:   event.ID.String(),
		UserID:    event.UserID.String(),
		EventType: string(event.EventType),
	}

	if err := s.publisher.PublishDispatchSignal(ctx, signal); err != nil {
		s.log(ctx).Warn("Failed to publish dispatch signal, leaving event to the batch processor",
			slog.String("eventID", signal.EventID),
			slog.Any("error", err),
		)
	}
}

// ProcessEventByID loads an event and processes it if it is still due.
func (s *dispatchService) ProcessEventByID(ctx context.Context, eventID uuid.UUID) error {
	event, err := s.eventRepo.FindEventByID(ctx, eventID)
	if errors.Is(err, repository.ErrEventNotFound) {
		return domainerrors.ErrEventNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to load notification event")
	}

	return s.ProcessEvent(ctx, event)
}

// ProcessEvent runs the decision pipeline for one event and records its outcome.
func (s *dispatchService) ProcessEvent(ctx context.Context, event *entity.NotificationEvent) error {
	if event == nil {
		return domainerrors.ErrInvalidEvent.WrapMessage("missing event")
	}

	now := s.clock.Now()
	logger := s.log(ctx).With(
		slog.String("eventID", event.ID.String()),
		slog.String("userID", event.UserID.String()),
		slog.String("eventType", string(event.EventType)),
	)

	if event.IsTerminal(s.cfg.MaxAttempts) || !event.IsDue(now) {
		logger.Debug("Event is not due, skipping", slog.String("status", string(event.Status)))

		return nil
	}

	prefs, err := s.preferences.GetOrCreate(ctx, event.UserID, s.cfg.DefaultTimezone)
	if err != nil {
		return errors.Wrap(err, "failed to load preferences")
	}

	if !prefs.CategoryEnabled(event.Category) {
		logger.Info("Category disabled by user, completing without delivery")

		return s.finish(ctx, event, entity.EventStatusCompleted, now)
	}

	duplicate, err := s.eventRepo.ExistsCompletedByDedupeKey(ctx, event.DedupeKey, now.Add(-s.cfg.DedupeWindow), event.ID)
	if err != nil {
		return errors.Wrap(err, "failed to check duplicate events")
	}
	if duplicate {
		logger.Info("Duplicate event within window", slog.String("dedupeKey", event.DedupeKey))

		return s.finish(ctx, event, entity.EventStatusDeduplicated, now)
	}

	limited, err := s.isRateLimited(ctx, event, now)
	if err != nil {
		return err
	}
	if limited {
		logger.Info("Category rate limit reached", slog.String("category", string(event.Category)))

		return s.finish(ctx, event, entity.EventStatusRateLimited, now)
	}

	content := event.EventType.Render(event.Payload)

	if prefs.InQuietHours(now) {
		logger.Info("Quiet hours, suppressing push", slog.Int("localHour", prefs.LocalHour(now)))
	} else if err := s.deliver(ctx, event, content); err != nil {
		return s.fail(ctx, event, now, err)
	}

	if err := s.upsertNotification(ctx, event, content, now); err != nil {
		return err
	}

	return s.finish(ctx, event, entity.EventStatusCompleted, now)
}

func (s *dispatchService) isRateLimited(ctx context.Context, event *entity.NotificationEvent, now time.Time) (bool, error) {
	limit := s.cfg.RateLimitFor(string(event.Category))
	if limit <= 0 {
		return false, nil
	}

	count, err := s.notificationRepo.CountRecentByCategory(ctx, event.UserID, event.Category, now.Add(-s.cfg.RateLimitWindow), event.ID)
	if err != nil {
		return false, errors.Wrap(err, "failed to count recent notifications")
	}

	return count >= int64(limit), nil
}

// deliver pushes the content to every active device. A returned error is a transient failure.
func (s *dispatchService) deliver(ctx context.Context, event *entity.NotificationEvent, content entity.RenderedContent) error {
	devices, err := s.devices.ListActive(ctx, event.UserID)
	if err != nil {
		return errors.Wrap(err, "failed to load active devices")
	}
	if len(devices) == 0 {
		s.log(ctx).Debug("No active devices, skipping push", slog.String("eventID", event.ID.String()))

		return nil
	}

	targets := make([]service.PushTarget, 0, len(devices))
	for _, device := range devices {
		targets = append(targets, service.PushTarget{
			DeviceID: device.ID.String(),
			Token:    device.PushToken,
			Platform: device.Platform,
		})
	}

	payload := service.PushPayload{
		Title: content.Title,
		Body:  content.Body,
		Data: map[string]string{
			pushDataDeeplink:  content.Deeplink,
			pushDataEventID:   event.ID.String(),
			pushDataEventType: string(event.EventType),
			pushDataCategory:  string(event.Category),
		},
	}

	result, err := s.sendWithTimeout(ctx, targets, payload)
	if err != nil {
		return err
	}

	s.log(ctx).Info("Push delivered",
		slog.String("eventID", event.ID.String()),
		slog.Int("success", result.Success),
		slog.Int("failed", result.Failed),
	)

	s.revokeInvalidTokens(ctx, event, result)

	return nil
}

type sendOutcome struct {
	result *service.PushResult
	err    error
}

// sendWithTimeout bounds the gateway call by the configured timeout even if the gateway ignores its context.
func (s *dispatchService) sendWithTimeout(ctx context.Context, targets []service.PushTarget, payload service.PushPayload) (*service.PushResult, error) {
	callCtx, cancel := context.WithTimeout(ctx, s.cfg.GatewayTimeout)
	defer cancel()

	start := time.Now()
	done := make(chan sendOutcome, 1)
	go func() {
		result, err := s.gateway.SendToDevices(callCtx, targets, payload)
		done <- sendOutcome{result: result, err: err}
	}()

	var outcome sendOutcome
	select {
	case outcome = <-done:
	case <-callCtx.Done():
		outcome.err = errors.Wrap(callCtx.Err(), "push gateway call timed out")
	}

	if outcome.err == nil && outcome.result == nil {
		outcome.result = &service.PushResult{}
	}

	success, failed := 0, 0
	if outcome.result != nil {
		success, failed = outcome.result.Success, outcome.result.Failed
	}
	s.metrics.GatewayCall(time.Since(start), success, failed, outcome.err)

	if outcome.err != nil {
		return nil, errors.Wrap(outcome.err, "push gateway call failed")
	}

	return outcome.result, nil
}

func (s *dispatchService) revokeInvalidTokens(ctx context.Context, event *entity.NotificationEvent, result *service.PushResult) {
	if !s.cfg.ShouldRevokeInvalidTokens() {
		return
	}

	invalid := result.InvalidDeviceIDs()
	if len(invalid) == 0 {
		return
	}

	ids := make([]uuid.UUID, 0, len(invalid))
	for _, raw := range invalid {
		id, err := uuid.Parse(raw)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}

	revoked, err := s.devices.RevokeInvalidTokens(ctx, event.UserID, ids)
	if err != nil {
		s.log(ctx).Warn("Failed to revoke devices with invalid tokens",
			slog.String("eventID", event.ID.String()),
			slog.Any("error", err),
		)

		return
	}

	s.log(ctx).Info("Revoked devices with invalid tokens",
		slog.String("eventID", event.ID.String()),
		slog.Int("revoked", revoked),
	)
}

// upsertNotification writes the in-app entry once per event.
func (s *dispatchService) upsertNotification(ctx context.Context, event *entity.NotificationEvent, content entity.RenderedContent, now time.Time) error {
	existing, err := s.notificationRepo.FindNotificationByEventID(ctx, event.ID)
	switch {
	case err == nil:
		applyContent(existing, event, content)
		existing.UpdatedAt = now
		if err := s.notificationRepo.UpdateNotificationContent(ctx, existing); err != nil {
			return errors.Wrap(err, "failed to update in-app notification")
		}

		return nil
	case !errors.Is(err, repository.ErrNotificationNotFound):
		return errors.Wrap(err, "failed to find in-app notification")
	}

	notification := &entity.Notification{
		ID:        uuid.New(),
		EventID:   event.ID,
		UserID:    event.UserID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.cfg.NotificationTTL),
		UpdatedAt: now,
	}
	applyContent(notification, event, content)

	err = s.notificationRepo.CreateNotification(ctx, notification)
	if errors.Is(err, repository.ErrDuplicateNotification) {
		// Another worker wrote the entry first.
		return nil
	}

	return errors.Wrap(err, "failed to create in-app notification")
}

func applyContent(notification *entity.Notification, event *entity.NotificationEvent, content entity.RenderedContent) {
	notification.Category = event.Category
	notification.EventType = event.EventType
	notification.Title = content.Title
	notification.Body = content.Body
	notification.Deeplink = content.Deeplink
	notification.TargetID = event.Payload.TargetID
	notification.TargetType = event.Payload.TargetType
}

// finish records a terminal status.
func (s *dispatchService) finish(ctx context.Context, event *entity.NotificationEvent, status entity.EventStatus, now time.Time) error {
	return s.transition(ctx, event, func(e *entity.NotificationEvent) {
		e.Status = status
		e.ProcessedAt = &now
		e.NextRetryAt = nil
	})
}

// fail records a transient delivery failure and schedules the next attempt.
func (s *dispatchService) fail(ctx context.Context, event *entity.NotificationEvent, now time.Time, cause error) error {
	delay := util.ExponentialBackoff(s.cfg.BackoffBase, s.cfg.BackoffMax, event.AttemptCount)
	nextRetryAt := now.Add(delay)

	err := s.transition(ctx, event, func(e *entity.NotificationEvent) {
		e.Status = entity.EventStatusFailed
		e.AttemptCount++
		e.LastError = cause.Error()
		e.ProcessedAt = &now
		e.NextRetryAt = &nextRetryAt
	})
	if err != nil {
		return err
	}

	attrs := []any{
		slog.String("eventID", event.ID.String()),
		slog.Int("attemptCount", event.AttemptCount),
		slog.Any("error", cause),
	}
	if event.AttemptCount >= s.cfg.MaxAttempts {
		s.log(ctx).Error("Notification delivery failed permanently", attrs...)
	} else {
		attrs = append(attrs, slog.String("retryIn", util.FormatDuration(delay)))
		s.log(ctx).Warn("Notification delivery failed, will retry", attrs...)
	}

	return nil
}

// transition applies mutate and writes the result guarded by the previous status and attempt count.
// A lost race is treated as handled by the other worker.
func (s *dispatchService) transition(ctx context.Context, event *entity.NotificationEvent, mutate func(*entity.NotificationEvent)) error {
	previous := *event
	mutate(event)

	err := s.eventRepo.UpdateEventOutcome(ctx, event, previous.Status, previous.AttemptCount)
	if errors.Is(err, repository.ErrEventConflict) {
		s.log(ctx).Warn("Event was processed concurrently, dropping outcome",
			slog.String("eventID", event.ID.String()),
			slog.String("status", string(event.Status)),
		)

		return nil
	}
	if err != nil {
		*event = previous

		return errors.Wrap(err, "failed to record event outcome")
	}

	s.metrics.EventOutcome(string(event.Category), string(event.Status))

	return nil
}

// ProcessPendingEventsBatch processes up to limit due events sequentially.
func (s *dispatchService) ProcessPendingEventsBatch(ctx context.Context, limit int) (*usecase.BatchResult, error) {
	if limit <= 0 {
		limit = s.cfg.BatchSize
	}

	start := time.Now()
	events, err := s.eventRepo.FindDispatchableEvents(ctx, s.clock.Now(), s.cfg.MaxAttempts, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find dispatchable events")
	}

	result := &usecase.BatchResult{}
	for _, event := range events {
		if ctx.Err() != nil {
			break
		}

		err := s.processIsolated(ctx, event)
		if err != nil {
			s.log(ctx).Error("Failed to process notification event",
				slog.String("eventID", event.ID.String()),
				slog.Any("error", err),
			)
		}

		if err != nil || event.Status == entity.EventStatusFailed {
			result.Failed++
		} else {
			result.Processed++
		}
	}

	s.metrics.BatchCompleted(result.Processed, result.Failed, time.Since(start))
	if len(events) > 0 {
		s.log(ctx).Info("Batch processed",
			slog.Int("fetched", len(events)),
			slog.Int("processed", result.Processed),
			slog.Int("failed", result.Failed),
		)
	}

	return result, nil
}

// processIsolated keeps a panic in one event from aborting the batch.
func (s *dispatchService) processIsolated(ctx context.Context, event *entity.NotificationEvent) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("panic while processing event: %v", r)
		}
	}()

	return s.ProcessEvent(ctx, event)
}

// PurgeStaleEvents deletes terminal events older than the retention period.
func (s *dispatchService) PurgeStaleEvents(ctx context.Context) (int64, error) {
	cutoff := s.clock.Now().Add(-s.cfg.EventRetention)

	count, err := s.eventRepo.DeleteTerminalEventsBefore(ctx, cutoff, s.cfg.MaxAttempts)
	if err != nil {
		return 0, errors.Wrap(err, "failed to purge stale events")
	}

	if count > 0 {
		s.log(ctx).Info("Purged stale notification events", slog.Int64("count", count))
	}

	return count, nil
}
