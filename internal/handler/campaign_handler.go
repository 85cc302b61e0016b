// internal/handler/campaign_handler.go
package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	appErrors "github.com/unclebandit/campaigns-api/internal/errors"
	"github.com/unclebandit/campaigns-api/internal/model"
	"github.com/unclebandit/campaigns-api/internal/service"
)

var validate = validator.New()

// Envelope wraps every successful response payload in a data field.
type Envelope[T any] struct {
	Data T `json:"data"`
}

type CreateCampaignRequest struct {
	Name    string     `json:"name" validate:"required"`
	DueDate *time.Time `json:"due_date"`
}

// UpdateCampaignRequest carries a partial payload: nil fields leave the
// stored value untouched. An explicit null is indistinguishable from an
// absent field.
type UpdateCampaignRequest struct {
	Name    *string    `json:"name"`
	DueDate *time.Time `json:"due_date"`
}

// CampaignHandler holds the dependencies for campaign-related HTTP handlers
type CampaignHandler struct {
	Service *service.CampaignService
}

// NewCampaignHandler creates a new CampaignHandler with the given service
func NewCampaignHandler(svc *service.CampaignService) *CampaignHandler {
	return &CampaignHandler{
		Service: svc,
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// decodeErrorStatus separates a body that is not JSON at all (400) from
// one whose fields fail type-level checks, e.g. a malformed timestamp
// or a number where a string belongs (422).
func decodeErrorStatus(err error) int {
	var typeErr *json.UnmarshalTypeError
	var timeErr *time.ParseError
	if errors.As(err, &typeErr) || errors.As(err, &timeErr) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusBadRequest
}

// respondServiceError maps a service error to the right HTTP response.
func respondServiceError(w http.ResponseWriter, err error) {
	var notFound *appErrors.ErrCampaignNotFound
	if errors.As(err, &notFound) {
		writeError(w, http.StatusNotFound, "Campaign not found")
		return
	}
	writeError(w, http.StatusInternalServerError, err.Error())
}

func campaignID(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "id"))
}

// HelloHandler answers the API root
func (h *CampaignHandler) HelloHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Hello World!"})
}

// ListCampaignsHandler returns all campaigns in insertion order
func (h *CampaignHandler) ListCampaignsHandler(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.Service.ListCampaigns()
	if err != nil {
		respondServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, Envelope[[]model.Campaign]{Data: campaigns})
}

// GetCampaignHandler returns a single campaign by ID
func (h *CampaignHandler) GetCampaignHandler(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid campaign id")
		return
	}

	campaign, err := h.Service.GetCampaign(id)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, Envelope[*model.Campaign]{Data: campaign})
}

// CreateCampaignHandler handles creating a new campaign
func (h *CampaignHandler) CreateCampaignHandler(w http.ResponseWriter, r *http.Request) {
	var payload CreateCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, decodeErrorStatus(err), "invalid request body: "+err.Error())
		return
	}

	if err := validate.Struct(payload); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation failed: "+err.Error())
		return
	}

	campaign, err := h.Service.CreateCampaign(payload.Name, payload.DueDate)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, Envelope[*model.Campaign]{Data: campaign})
}

// UpdateCampaignHandler applies a partial update to an existing campaign
func (h *CampaignHandler) UpdateCampaignHandler(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid campaign id")
		return
	}

	var payload UpdateCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, decodeErrorStatus(err), "invalid request body: "+err.Error())
		return
	}

	campaign, err := h.Service.UpdateCampaign(id, payload.Name, payload.DueDate)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, Envelope[*model.Campaign]{Data: campaign})
}

// DeleteCampaignHandler removes a campaign permanently
func (h *CampaignHandler) DeleteCampaignHandler(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid campaign id")
		return
	}

	if err := h.Service.DeleteCampaign(id); err != nil {
		respondServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, Envelope[string]{Data: "Campaign deleted successfully"})
}
