package impl

import (
	"context"
	"log/slog"
	"time"

	"notifyd/config"
	deliverycontext "notifyd/internal/delivery/context"
	"notifyd/internal/domain/entity"
	domainerrors "notifyd/internal/domain/errors"
	"notifyd/internal/domain/repository"
	"notifyd/internal/domain/service"
	"notifyd/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// maxPreferenceUpdateAttempts bounds the re-read and merge cycles of one update.
const maxPreferenceUpdateAttempts = 5

// preferenceService implements the PreferenceUsecase interface.
type preferenceService struct {
	prefRepo        repository.PreferenceRepository
	clock           service.Clock
	defaultTimezone string
	logger          *slog.Logger
}

// PreferenceServiceParams holds dependencies for PreferenceService, injected by Fx.
type PreferenceServiceParams struct {
	fx.In

	PrefRepo repository.PreferenceRepository
	Clock    service.Clock
	Config   *config.Config
	Logger   *slog.Logger
}

// NewPreferenceService is the constructor for preferenceService.
func NewPreferenceService(params PreferenceServiceParams) usecase.PreferenceUsecase {
	defaultTimezone := config.DefaultDispatchConfig().DefaultTimezone
	if params.Config != nil && params.Config.Dispatch != nil {
		defaultTimezone = params.Config.Dispatch.DefaultTimezone
	}

	return &preferenceService{
		prefRepo:        params.PrefRepo,
		clock:           params.Clock,
		defaultTimezone: defaultTimezone,
		logger:          params.Logger,
	}
}

func (srv *preferenceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetOrCreate returns the user's preferences, creating permissive defaults on first access.
func (srv *preferenceService) GetOrCreate(ctx context.Context, userID uuid.UUID, timezone string) (*entity.UserNotificationPreferences, error) {
	prefs, err := srv.prefRepo.FindPreferences(ctx, userID)
	if err == nil {
		return prefs, nil
	}
	if !errors.Is(err, repository.ErrPreferencesNotFound) {
		return nil, errors.Wrap(err, "failed to find preferences")
	}

	if timezone == "" || !entity.ValidTimezone(timezone) {
		timezone = srv.defaultTimezone
	}

	prefs = entity.NewDefaultPreferences(userID, timezone, srv.clock.Now())
	err = srv.prefRepo.CreatePreferences(ctx, prefs)
	if errors.Is(err, repository.ErrDuplicatePreferences) {
		// Lost a concurrent first access; the stored record wins.
		srv.log(ctx).Debug("Preferences created concurrently, re-reading", slog.String("userID", userID.String()))

		return srv.findExisting(ctx, userID)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to create default preferences")
	}

	srv.log(ctx).Info("Created default notification preferences", slog.String("userID", userID.String()))

	return prefs, nil
}

// Update merges a partial update into the user's preferences.
func (srv *preferenceService) Update(ctx context.Context, userID uuid.UUID, patch *usecase.PreferencesPatch) (*entity.UserNotificationPreferences, error) {
	if patch == nil {
		return nil, domainerrors.ErrInvalidPreferences.WrapMessage("empty update")
	}
	if err := validatePatch(patch); err != nil {
		return nil, err
	}

	var lastErr error
	for attempt := 1; attempt <= maxPreferenceUpdateAttempts; attempt++ {
		prefs, err := srv.GetOrCreate(ctx, userID, srv.defaultTimezone)
		if err != nil {
			return nil, err
		}

		expectedVersion := prefs.Version
		applyPatch(prefs, patch, srv.clock.Now())

		lastErr = srv.prefRepo.UpdatePreferences(ctx, prefs, expectedVersion)
		if lastErr == nil {
			srv.log(ctx).Info("Updated notification preferences", slog.String("userID", userID.String()))

			return prefs, nil
		}
		if !errors.Is(lastErr, repository.ErrPreferencesConflict) {
			return nil, errors.Wrap(lastErr, "failed to update preferences")
		}

		srv.log(ctx).Warn("Preferences changed concurrently, retrying",
			slog.String("userID", userID.String()),
			slog.Int("attempt", attempt),
		)
	}

	return nil, domainerrors.ErrPreferencesConflict.WrapMessage(lastErr.Error())
}

func (srv *preferenceService) findExisting(ctx context.Context, userID uuid.UUID) (*entity.UserNotificationPreferences, error) {
	prefs, err := srv.prefRepo.FindPreferences(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to re-read preferences")
	}

	return prefs, nil
}

func validatePatch(patch *usecase.PreferencesPatch) error {
	if patch.Timezone != nil && !entity.ValidTimezone(*patch.Timezone) {
		return domainerrors.ErrInvalidPreferences.WrapMessage("unknown timezone " + *patch.Timezone)
	}
	if patch.QuietHours != nil && len(patch.QuietHours) != entity.HoursPerDay {
		return domainerrors.ErrInvalidPreferences.WrapMessage("quiet hours must have 24 entries")
	}
	for category := range patch.Categories {
		if !category.Valid() {
			return domainerrors.ErrInvalidPreferences.WrapMessage("unknown category " + string(category))
		}
	}

	return nil
}

// applyPatch replaces timezone and quiet hours wholesale and merges categories key by key.
func applyPatch(prefs *entity.UserNotificationPreferences, patch *usecase.PreferencesPatch, now time.Time) {
	if patch.Timezone != nil {
		prefs.Timezone = *patch.Timezone
	}
	if patch.QuietHours != nil {
		prefs.QuietHours = append([]bool(nil), patch.QuietHours...)
	}
	if len(patch.Categories) > 0 {
		if prefs.Categories == nil {
			prefs.Categories = make(map[entity.Category]bool, len(patch.Categories))
		}
		for category, enabled := range patch.Categories {
			prefs.Categories[category] = enabled
		}
	}
	prefs.UpdatedAt = now
}
