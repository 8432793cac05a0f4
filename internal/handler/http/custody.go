package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-signout/internal/logger"
	"github.com/MKhiriev/go-signout/internal/utils"
	"github.com/MKhiriev/go-signout/models"
	"github.com/go-chi/chi/v5"
)

// checkout resolves the scanned item, registering it through the external
// lookup when needed, and checks it out to the session identity. A failed
// lookup never reaches the ledger.
func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	session, req, ok := h.sessionAndScan(w, r)
	if !ok {
		return
	}

	item, err := h.services.CatalogResolver.ResolveOrRegister(ctx, req.Code)
	if err != nil {
		writeError(w, r, err)
		return
	}

	record, err := h.services.CustodyLedger.Checkout(ctx, item.ItemID, item.DisplayName, session.Identity)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, record, http.StatusCreated)
}

func (h *Handler) checkin(w http.ResponseWriter, r *http.Request) {
	session, req, ok := h.sessionAndScan(w, r)
	if !ok {
		return
	}

	event, err := h.services.CustodyLedger.Checkin(r.Context(), utils.NormalizeScannedCode(req.Code), session.Identity)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, event, http.StatusOK)
}

// listActive returns the active records. "?holder=<id>" restricts the list
// to one holder; "?mine=true" restricts it to the session identity.
func (h *Handler) listActive(w http.ResponseWriter, r *http.Request) {
	session, ok := utils.GetSessionFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoSession)
		return
	}

	var holder *string
	if value := strings.TrimSpace(r.URL.Query().Get("holder")); value != "" {
		holder = &value
	}
	if mine, _ := strconv.ParseBool(r.URL.Query().Get("mine")); mine {
		holder = &session.Identity.UserID
	}

	records, err := h.services.CustodyLedger.ListActive(r.Context(), holder)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if records == nil {
		records = []models.CustodyRecord{}
	}

	utils.WriteJSON(w, records, http.StatusOK)
}

func (h *Handler) history(w http.ResponseWriter, r *http.Request) {
	events, err := h.services.CustodyLedger.History(r.Context(), chi.URLParam(r, "itemID"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	if events == nil {
		events = []models.CustodyEvent{}
	}

	utils.WriteJSON(w, events, http.StatusOK)
}

// sessionAndScan reads the session from the context and decodes a scan
// request body. On failure the response is already written.
func (h *Handler) sessionAndScan(w http.ResponseWriter, r *http.Request) (models.Session, models.ScanRequest, bool) {
	var req models.ScanRequest

	session, ok := utils.GetSessionFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoSession)
		return models.Session{}, req, false
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return models.Session{}, req, false
	}

	return session, req, true
}
