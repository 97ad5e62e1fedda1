package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/wadirect-backend/internal/domain"
	"github.com/heartmarshall/wadirect-backend/internal/phone"
	"github.com/heartmarshall/wadirect-backend/internal/service/contact"
)

// contactService defines the minimal interface needed by ContactHandler.
type contactService interface {
	Save(ctx context.Context, input contact.SaveInput) (*domain.Contact, error)
	ListHistory(ctx context.Context, input contact.HistoryInput) ([]*domain.Contact, error)
	Update(ctx context.Context, input contact.UpdateInput) (*domain.Contact, error)
	Delete(ctx context.Context, input contact.DeleteInput) error
	FormatNumber(ctx context.Context, input contact.FormatInput) (*contact.FormatResult, error)
}

// ContactHandler serves contact and formatting REST endpoints.
type ContactHandler struct {
	svc contactService
	log *slog.Logger
}

// NewContactHandler creates a ContactHandler.
func NewContactHandler(svc contactService, logger *slog.Logger) *ContactHandler {
	return &ContactHandler{svc: svc, log: logger.With("handler", "contact")}
}

type saveRequest struct {
	Name        *string `json:"name,omitempty"`
	PhoneNumber string  `json:"phoneNumber"`
	Country     string  `json:"country"`
}

type updateRequest struct {
	Name        *string `json:"name,omitempty"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
	Country     *string `json:"country,omitempty"`
}

type formatRequest struct {
	PhoneNumber string `json:"phoneNumber"`
	Country     string `json:"country"`
}

type formatResponse struct {
	PhoneNumber string `json:"phoneNumber"`
	WALink      string `json:"waLink"`
}

type contactResponse struct {
	ID          string    `json:"id"`
	Name        *string   `json:"name,omitempty"`
	PhoneNumber string    `json:"phoneNumber"`
	Country     string    `json:"country"`
	WALink      string    `json:"waLink"`
	CreatedAt   time.Time `json:"createdAt"`
}

type countryResponse struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	DialCode string `json:"dialCode"`
	Flag     string `json:"flag"`
}

// Save handles POST /api/messages.
func (h *ContactHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req saveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.Save(r.Context(), contact.SaveInput{
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
		Country:     req.Country,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toContactResponse(created))
}

// List handles GET /api/messages.
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	records, err := h.svc.ListHistory(r.Context(), contact.HistoryInput{
		Search:  q.Get("search"),
		Country: q.Get("country"),
		SortBy:  q.Get("sort_by"),
		SortDir: q.Get("sort_dir"),
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	out := make([]contactResponse, 0, len(records))
	for _, c := range records {
		out = append(out, toContactResponse(c))
	}
	writeJSON(w, http.StatusOK, out)
}

// Update handles PATCH /api/messages/{id}.
func (h *ContactHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid contact id")
		return
	}

	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.svc.Update(r.Context(), contact.UpdateInput{
		ContactID:   id,
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
		Country:     req.Country,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toContactResponse(updated))
}

// Delete handles DELETE /api/messages/{id}.
func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid contact id")
		return
	}

	if err := h.svc.Delete(r.Context(), contact.DeleteInput{ContactID: id}); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Format handles POST /api/format.
func (h *ContactHandler) Format(w http.ResponseWriter, r *http.Request) {
	var req formatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.FormatNumber(r.Context(), contact.FormatInput{
		PhoneNumber: req.PhoneNumber,
		Country:     req.Country,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, formatResponse{
		PhoneNumber: result.PhoneNumber,
		WALink:      result.WALink,
	})
}

// Countries handles GET /api/countries.
func (h *ContactHandler) Countries(w http.ResponseWriter, r *http.Request) {
	countries := phone.Countries()
	out := make([]countryResponse, 0, len(countries))
	for _, c := range countries {
		out = append(out, countryResponse{
			Code:     c.Code.String(),
			Name:     c.Name,
			DialCode: c.DialCode,
			Flag:     c.Flag,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *ContactHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrInvalidNumber):
		writeError(w, http.StatusBadRequest, "invalid phone number")
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func toContactResponse(c *domain.Contact) contactResponse {
	return contactResponse{
		ID:          c.ID.String(),
		Name:        c.Name,
		PhoneNumber: c.PhoneNumber,
		Country:     c.CountryCode.String(),
		WALink:      phone.DeepLink(c.PhoneNumber),
		CreatedAt:   c.CreatedAt,
	}
}
