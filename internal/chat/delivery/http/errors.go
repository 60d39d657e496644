package http

import (
	"errors"
	"net/http"

	"preinscription-chatbot/internal/chat"
	pkgErrors "preinscription-chatbot/pkg/errors"
)

var (
	errInvalidBody      = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid request body")
	errInvalidQuery     = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	errMissingSessionID = pkgErrors.NewHTTPError(http.StatusBadRequest, "session id is required")
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
// Anything not listed is reported as an internal error.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, chat.ErrEmptyMessage):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "message cannot be empty")
	case errors.Is(err, chat.ErrMessageTooLong):
		return pkgErrors.NewHTTPError(http.StatusRequestEntityTooLarge, "message is too long")
	case errors.Is(err, chat.ErrInvalidSessionID):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid session id")
	case errors.Is(err, chat.ErrInvalidUserID):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid user id")
	case errors.Is(err, chat.ErrEmptyAttributes):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "attributes cannot be empty")
	case errors.Is(err, chat.ErrSessionNotFound):
		return pkgErrors.ErrNotFound
	default:
		return pkgErrors.ErrInternalServerError
	}
}
