package impl

import (
	domainerrors "notifyd/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

var inputValidator = validator.New(validator.WithRequiredStructEnabled())

// validateInput checks struct tags and maps failures to the given application error.
func validateInput(input any, appErr *domainerrors.BaseError) error {
	if err := inputValidator.Struct(input); err != nil {
		return appErr.WrapMessage(err.Error())
	}

	return nil
}
