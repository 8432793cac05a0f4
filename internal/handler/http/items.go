package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-signout/internal/logger"
	"github.com/MKhiriev/go-signout/internal/utils"
	"github.com/MKhiriev/go-signout/models"
)

// scanItem resolves an item code without registering it.
func (h *Handler) scanItem(w http.ResponseWriter, r *http.Request) {
	var req models.ScanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	resolution, err := h.services.CatalogResolver.Resolve(r.Context(), req.Code)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ItemScanResponse{
		Known:  resolution.Known,
		ItemID: resolution.Code,
		Item:   resolution.Value,
	}, http.StatusOK)
}

// registerItem registers an item through the external title lookup.
func (h *Handler) registerItem(w http.ResponseWriter, r *http.Request) {
	var req models.ScanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	item, err := h.services.CatalogResolver.RegisterFromExternalLookup(r.Context(), req.Code)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, item, http.StatusOK)
}
