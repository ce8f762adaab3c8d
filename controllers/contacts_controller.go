package controllers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/blogem/forum-admin/models"
	"github.com/blogem/forum-admin/services"
	"github.com/blogem/forum-admin/userctx"
)

// ContactsController handles contact request triage
type ContactsController struct {
	services *services.Services
	view     *renderer
}

// NewContactsController creates a new contacts controller
func NewContactsController(services *services.Services, view *renderer) *ContactsController {
	return &ContactsController{
		services: services,
		view:     view,
	}
}

// Index handles GET /contacts
func (c *ContactsController) Index(w http.ResponseWriter, r *http.Request) {
	errMsg, success := "", ""
	if flash, ok := popFlash(r); ok {
		if flash.Type == models.FlashSuccess {
			success = flash.Message
		} else {
			errMsg = flash.Message
		}
	}
	c.renderIndex(w, r, http.StatusOK, errMsg, success)
}

// Respond handles POST /contacts/respond/{id}
func (c *ContactsController) Respond(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		c.renderIndex(w, r, http.StatusBadRequest, "Invalid contact ID", "")
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	form := &models.ContactResponseForm{Response: r.FormValue("response")}

	err = c.services.Contacts.RespondToContact(r.Context(), id, form)
	switch {
	case err == nil:
		slog.Info("contact responded", "contact_id", id, "admin", userctx.GetAdmin(r.Context()))
		setFlash(r, models.FlashMessage{Type: models.FlashSuccess, Message: c.respondedMessage(r, id)})
		http.Redirect(w, r, "/contacts", http.StatusSeeOther)
	case errors.Is(err, services.ErrValidation):
		c.renderIndex(w, r, http.StatusBadRequest, "Response is required", "")
	case errors.Is(err, models.ErrContactNotFound):
		slog.Warn("respond to unknown contact", "contact_id", id)
		c.renderIndex(w, r, http.StatusNotFound, "Contact request not found", "")
	default:
		slog.Error("failed to respond to contact", "contact_id", id, "error", err)
		c.view.renderError(w, http.StatusInternalServerError, "contacts", "Failed to save the response", "/contacts")
	}
}

// respondedMessage names the person whose request was answered
func (c *ContactsController) respondedMessage(r *http.Request, id int64) string {
	contact, err := c.services.Contacts.GetContact(r.Context(), id)
	if err != nil {
		slog.Warn("failed to load responded contact", "contact_id", id, "error", err)
		return "Response saved"
	}
	return fmt.Sprintf("Response to %s saved", contact.Name)
}

func (c *ContactsController) renderIndex(w http.ResponseWriter, r *http.Request, statusCode int, errMsg, success string) {
	contacts, err := c.services.Contacts.ListContacts(r.Context())
	if err != nil {
		slog.Error("failed to load contacts", "error", err)
		c.view.renderError(w, http.StatusInternalServerError, "contacts", "Failed to load contact requests", "/")
		return
	}

	templateData := struct {
		Title       string
		CurrentPage string
		Error       string
		Success     string
		Contacts    []models.ContactRequest
	}{
		Title:       "Contacts",
		CurrentPage: "contacts",
		Error:       errMsg,
		Success:     success,
		Contacts:    contacts,
	}

	c.view.renderWithStatus(w, statusCode, "contacts.html", templateData)
}
