package handler

import (
	"log/slog"
	"net/http"

	"notifyd/internal/delivery/api/middleware"
	"notifyd/internal/delivery/api/response"
	"notifyd/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PreferenceHandlerParams holds dependencies for PreferenceHandler, injected by Fx.
type PreferenceHandlerParams struct {
	fx.In

	PreferenceUC usecase.PreferenceUsecase
	Logger       *slog.Logger
}

// PreferenceHandler serves the caller's notification preferences
type PreferenceHandler struct {
	preferenceUC usecase.PreferenceUsecase
	logger       *slog.Logger
}

// NewPreferenceHandler is the constructor for PreferenceHandler
func NewPreferenceHandler(params PreferenceHandlerParams) *PreferenceHandler {
	return &PreferenceHandler{
		preferenceUC: params.PreferenceUC,
		logger:       params.Logger,
	}
}

// GetPreferences returns the caller's preferences, creating defaults on first access.
// The optional timezone query parameter seeds the defaults.
func (h *PreferenceHandler) GetPreferences(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	prefs, err := h.preferenceUC.GetOrCreate(c.Request().Context(), userID, c.QueryParam("timezone"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, prefs)
}

// UpdatePreferences merges a partial update into the caller's preferences
func (h *PreferenceHandler) UpdatePreferences(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var patch usecase.PreferencesPatch
	if err := c.Bind(&patch); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid preferences input")
	}

	prefs, err := h.preferenceUC.Update(c.Request().Context(), userID, &patch)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, prefs)
}
