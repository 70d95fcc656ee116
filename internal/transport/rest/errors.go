package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/foodtracker-backend/internal/domain"
)

// respondDomainError maps a service error onto the envelope. notFoundMsg
// is the message shown for 404s; validation messages come from the error
// itself. Unclassified faults are logged in full and redacted to a
// generic message in production.
func respondDomainError(w http.ResponseWriter, r *http.Request, log *slog.Logger, production bool, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusUnprocessableEntity, codeValidation, validationMessage(err))
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, codeNotFound, notFoundMsg)
	default:
		log.ErrorContext(r.Context(), "internal error",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		message := internalMessage
		if !production {
			message = err.Error()
		}
		writeError(w, http.StatusInternalServerError, codeInternal, message)
	}
}

func validationMessage(err error) string {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return ve.Error()
	}
	return err.Error()
}
