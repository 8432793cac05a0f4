package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-signout/internal/app"
	"github.com/MKhiriev/go-signout/internal/logger"
	"github.com/MKhiriev/go-signout/internal/utils"
	"github.com/MKhiriev/go-signout/models"
)

// scanUser tells the terminal whether a scanned badge needs a PIN or a
// registration.
func (h *Handler) scanUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.ScanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	resolution, err := h.services.IdentityResolver.Resolve(r.Context(), req.Code)
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp := models.UserScanResponse{
		State:  models.ScanStateAwaitingRegistration,
		UserID: resolution.Code,
	}
	if resolution.Known {
		resp.State = models.ScanStateAwaitingPIN
		resp.DisplayName = resolution.Value.DisplayName
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) verifyPIN(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.PINRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	ok, err := h.services.CredentialService.Verify(ctx, req.UserID, req.PIN)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if !ok {
		log.Info().Str("user_id", req.UserID).Msg("wrong PIN")
		http.Error(w, app.MsgInvalidPIN, http.StatusUnauthorized)
		return
	}

	resolution, err := h.services.IdentityResolver.Resolve(ctx, req.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if !resolution.Known {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		return
	}

	h.openSession(w, r, resolution.Value)
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	identity, err := h.services.CredentialService.Register(r.Context(), req.UserID, req.DisplayName, req.PIN)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Str("user_id", identity.UserID).Msg("identity registered")
	h.openSession(w, r, identity)
}

// openSession establishes a session for identity and answers with its
// bearer token in the "Authorization" header and the identity as the body.
func (h *Handler) openSession(w http.ResponseWriter, r *http.Request, identity models.Identity) {
	session := h.services.SessionManager.Establish(identity)

	token, err := h.services.AuthService.CreateToken(r.Context(), session)
	if err != nil {
		h.services.SessionManager.Clear(session.SessionID)
		writeError(w, r, err)
		return
	}

	w.Header().Set("Authorization", utils.BearerHeader(token.SignedString))
	utils.WriteJSON(w, identity, http.StatusOK)
}

func (h *Handler) signOut(w http.ResponseWriter, r *http.Request) {
	session, ok := utils.GetSessionFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoSession)
		return
	}

	h.services.SessionManager.Clear(session.SessionID)
	logger.FromRequest(r).Info().Str("user_id", session.Identity.UserID).Msg("signed out")

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) currentSession(w http.ResponseWriter, r *http.Request) {
	session, ok := utils.GetSessionFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoSession)
		return
	}

	utils.WriteJSON(w, session, http.StatusOK)
}
