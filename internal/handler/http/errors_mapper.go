package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-signout/internal/app"
	"github.com/MKhiriev/go-signout/internal/logger"
	"github.com/MKhiriev/go-signout/internal/service"
	"github.com/MKhiriev/go-signout/internal/utils"
	"github.com/MKhiriev/go-signout/models"
)

var errorStatusMap = map[error]int{
	service.ErrEmptyScanCode:      http.StatusBadRequest,
	service.ErrInvalidPIN:         http.StatusBadRequest,
	service.ErrInvalidDisplayName: http.StatusBadRequest,

	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,

	service.ErrIdentityNotFound:  http.StatusNotFound,
	service.ErrDuplicateIdentity: http.StatusConflict,

	service.ErrAlreadyCheckedOut: http.StatusConflict,
	service.ErrNotCheckedOut:     http.StatusNotFound,
	service.ErrNotHolder:         http.StatusForbidden,

	service.ErrLookupFailed:     http.StatusBadGateway,
	service.ErrStoreUnavailable: http.StatusServiceUnavailable,

	ErrNoSession: http.StatusUnauthorized,
}

var errorMessageMap = map[int]string{
	http.StatusBadRequest:          app.MsgInvalidDataProvided,
	http.StatusUnauthorized:        app.MsgTokenIsExpiredOrInvalid,
	http.StatusForbidden:           app.MsgNotHolder,
	http.StatusBadGateway:          app.MsgLookupFailed,
	http.StatusServiceUnavailable:  app.MsgStoreUnavailable,
	http.StatusInternalServerError: app.MsgInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError maps err to its status code and writes a plain-text body. A
// checkout conflict is written as a JSON [models.ConflictResponse] so the
// terminal can show who holds the item.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	var conflict *service.AlreadyCheckedOutError
	if errors.As(err, &conflict) {
		log.Info().Err(err).Str("item_id", conflict.Record.ItemID).Msg("checkout rejected")
		utils.WriteJSON(w, models.ConflictResponse{
			Error:  app.MsgAlreadyCheckedOut,
			Record: conflict.Record,
		}, http.StatusConflict)
		return
	}

	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Info().Err(err).Int("status", status).Msg("request rejected")
	}

	message, ok := errorMessageMap[status]
	if !ok || status == http.StatusBadRequest {
		message = err.Error()
	}
	http.Error(w, message, status)
}
