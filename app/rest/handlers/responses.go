package handlers

import (
	"errors"

	"github.com/labstack/echo/v4"

	"portfolio-api/app/domain"
	apperrors "portfolio-api/app/utils/errors"
)

// MessageResponse is the uniform JSON body for simple outcomes and all
// client-visible failures. Internal error detail stays in the logs.
type MessageResponse struct {
	Message string `json:"message"`
}

// respondError translates a propagated error into its HTTP status and a
// uniform message body.
func respondError(c echo.Context, err error) error {
	appErr := translateError(err)
	return c.JSON(appErr.StatusCode, MessageResponse{Message: appErr.Message})
}

// translateError maps domain errors onto the application error taxonomy.
// Unknown errors collapse to an internal error so store and driver detail
// never reaches the client.
func translateError(err error) *apperrors.AppError {
	if appErr, ok := apperrors.AsAppError(err); ok {
		return appErr
	}

	switch {
	case errors.Is(err, domain.ErrUserAlreadyExists):
		return apperrors.New(apperrors.ErrCodeUserExists, "User already exists!")
	case errors.Is(err, domain.ErrInvalidCredentials):
		return apperrors.New(apperrors.ErrCodeInvalidCredentials, "Invalid email or password")
	case errors.Is(err, domain.ErrTokenMissing):
		return apperrors.New(apperrors.ErrCodeTokenMissing, "Unauthorized access")
	case errors.Is(err, domain.ErrTokenExpired), errors.Is(err, domain.ErrTokenInvalid):
		return apperrors.New(apperrors.ErrCodeInvalidToken, "Forbidden access")
	case errors.Is(err, domain.ErrDocumentNotFound):
		return apperrors.New(apperrors.ErrCodeNotFound, "Not found")
	case errors.Is(err, domain.ErrEmptyPatch):
		return apperrors.New(apperrors.ErrCodeEmptyPatch, "Nothing to update")
	case errors.Is(err, domain.ErrMissingField):
		return apperrors.New(apperrors.ErrCodeMissingField, err.Error())
	case errors.Is(err, domain.ErrInvalidInput):
		return apperrors.New(apperrors.ErrCodeInvalidInput, err.Error())
	default:
		return apperrors.NewInternalError(err)
	}
}
