package controllers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/blogem/forum-admin/middleware"
	"github.com/blogem/forum-admin/models"
	"github.com/blogem/forum-admin/services"
)

// maxBodyBytes bounds JSON request bodies on the public endpoints
const maxBodyBytes = 64 << 10

// APIController handles the JSON endpoints
type APIController struct {
	services *services.Services
}

// NewAPIController creates a new API controller
func NewAPIController(services *services.Services) *APIController {
	return &APIController{
		services: services,
	}
}

// Stats handles GET /api/stats
func (c *APIController) Stats(w http.ResponseWriter, r *http.Request) {
	data, err := c.services.Stats.GetChartData(r.Context())
	if err != nil {
		slog.Error("failed to load chart data", "error", err)
		writeJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, data)
}

// SubmitContact handles POST /api/contact from the public contact form
func (c *APIController) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var form models.ContactForm
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&form); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	contact, err := c.services.Contacts.SubmitContact(r.Context(), &form)
	if errors.Is(err, services.ErrValidation) {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		slog.Error("failed to store contact request", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "failed to store contact request")
		return
	}

	slog.Info("contact request received", "contact_id", contact.ID)
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"id":     contact.ID,
		"status": contact.Status,
	})
}

type trackRequest struct {
	Page   string `json:"page"`
	UserID *int64 `json:"user_id"`
}

// Track handles POST /api/track, the page view beacon called by the forum.
// It always answers 204; a view that cannot be recorded is only logged.
func (c *APIController) Track(w http.ResponseWriter, r *http.Request) {
	req, ok := parseTrackRequest(w, r)
	if ok {
		c.services.Access.Record(r.Context(), middleware.ClientIP(r), r.UserAgent(), req.Page, req.UserID)
	}

	w.WriteHeader(http.StatusNoContent)
}

// parseTrackRequest accepts either a JSON body or form values
func parseTrackRequest(w http.ResponseWriter, r *http.Request) (trackRequest, bool) {
	var req trackRequest

	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
			slog.Debug("ignoring malformed track request", "error", err)
			return req, false
		}
	} else {
		if err := r.ParseForm(); err != nil {
			slog.Debug("ignoring malformed track request", "error", err)
			return req, false
		}
		req.Page = r.FormValue("page")
		if raw := r.FormValue("user_id"); raw != "" {
			if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
				req.UserID = &id
			}
		}
	}

	req.Page = strings.TrimSpace(req.Page)
	if req.Page == "" {
		slog.Debug("ignoring track request without page")
		return req, false
	}

	return req, true
}
