package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/blogem/forum-admin/models"
	"github.com/blogem/forum-admin/repositories"
)

// ErrValidation is returned when submitted input fails validation
var ErrValidation = errors.New("validation failed")

// ContactService interface defines contact request business logic
type ContactService interface {
	ListContacts(ctx context.Context) ([]models.ContactRequest, error)
	GetContact(ctx context.Context, id int64) (*models.ContactRequest, error)
	SubmitContact(ctx context.Context, form *models.ContactForm) (*models.ContactRequest, error)
	RespondToContact(ctx context.Context, id int64, form *models.ContactResponseForm) error
}

// contactService implements ContactService interface
type contactService struct {
	contactRepo repositories.ContactRepository
}

// NewContactService creates a new contact service
func NewContactService(contactRepo repositories.ContactRepository) ContactService {
	return &contactService{contactRepo: contactRepo}
}

// ListContacts retrieves all contact requests, newest first
func (s *contactService) ListContacts(ctx context.Context) ([]models.ContactRequest, error) {
	return s.contactRepo.GetAll(ctx)
}

// GetContact retrieves a single contact request
func (s *contactService) GetContact(ctx context.Context, id int64) (*models.ContactRequest, error) {
	return s.contactRepo.GetByID(ctx, id)
}

// SubmitContact validates and stores a new pending contact request
func (s *contactService) SubmitContact(ctx context.Context, form *models.ContactForm) (*models.ContactRequest, error) {
	if errs := form.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, strings.Join(errs, ", "))
	}

	contact := &models.ContactRequest{
		Name:    strings.TrimSpace(form.Name),
		Email:   strings.TrimSpace(form.Email),
		Subject: strings.TrimSpace(form.Subject),
		Message: strings.TrimSpace(form.Message),
	}

	if err := s.contactRepo.Create(ctx, contact); err != nil {
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}

	return contact, nil
}

// RespondToContact records the administrator's response. An unknown id
// yields models.ErrContactNotFound.
func (s *contactService) RespondToContact(ctx context.Context, id int64, form *models.ContactResponseForm) error {
	if errs := form.Validate(); len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrValidation, strings.Join(errs, ", "))
	}

	return s.contactRepo.Respond(ctx, id, strings.TrimSpace(form.Response))
}
