package handlers

import (
	"errors"
	"io"
	"net/http"

	"viukon-cms/logging"
	"viukon-cms/middleware"
	"viukon-cms/models"
	"viukon-cms/services"
	"viukon-cms/utils"
)

// Documents carry image URLs only, never image bytes.
const maxSiteDataBytes = 5 << 20

type UpdateResponse struct {
	Message string           `json:"message"`
	Data    *models.SiteData `json:"data"`
}

type SiteDataHandler struct {
	Service *services.SiteDataService
}

func NewSiteDataHandler(service *services.SiteDataService) *SiteDataHandler {
	return &SiteDataHandler{Service: service}
}

func (h *SiteDataHandler) GetSiteData(w http.ResponseWriter, r *http.Request) {
	doc, err := h.Service.GetSiteData(r.Context())
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Failed to fetch site data")
		return
	}
	utils.WriteJSON(w, http.StatusOK, doc)
}

func (h *SiteDataHandler) UpdateSiteData(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxSiteDataBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			middleware.RecordSiteDataWrite("invalid")
			utils.WriteError(w, http.StatusRequestEntityTooLarge, "Request body too large")
			return
		}
		middleware.RecordSiteDataWrite("invalid")
		utils.WriteError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	doc, err := models.ParseSiteData(body)
	if err != nil {
		logging.Logger.Warnf("Event ID: SITEDATA_MALFORMED, Description: Malformed site data body: %v", err)
		middleware.RecordSiteDataWrite("invalid")
		writeValidationError(w, err)
		return
	}

	updated, err := h.Service.ReplaceSiteData(r.Context(), doc)
	if err != nil {
		if errors.Is(err, services.ErrInvalidDocument) {
			middleware.RecordSiteDataWrite("invalid")
			writeValidationError(w, err)
			return
		}
		middleware.RecordSiteDataWrite("error")
		utils.WriteError(w, http.StatusInternalServerError, "Failed to update data")
		return
	}

	middleware.RecordSiteDataWrite("ok")
	utils.WriteJSON(w, http.StatusOK, UpdateResponse{
		Message: "Data updated successfully!",
		Data:    updated,
	})
}

func writeValidationError(w http.ResponseWriter, err error) {
	resp := utils.ErrorResponse{Message: "Invalid site data"}
	var verr *models.ValidationError
	if errors.As(err, &verr) {
		resp.Errors = verr.Problems
	}
	utils.WriteJSON(w, http.StatusBadRequest, resp)
}
