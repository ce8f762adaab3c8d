package models

import (
	"errors"
	"strings"
	"time"
)

// ContactStatus tracks a contact request through its lifecycle
type ContactStatus string

const (
	ContactPending   ContactStatus = "pending"
	ContactResponded ContactStatus = "responded"
)

// ErrContactNotFound is returned when a contact id matches no row
var ErrContactNotFound = errors.New("contact request not found")

// ContactRequest is a message submitted through the public contact form
type ContactRequest struct {
	ID            int64         `json:"id" db:"id"`
	Name          string        `json:"name" db:"name"`
	Email         string        `json:"email" db:"email"`
	Subject       string        `json:"subject" db:"subject"`
	Message       string        `json:"message" db:"message"`
	CreatedAt     time.Time     `json:"created_at" db:"created_at"`
	Status        ContactStatus `json:"status" db:"status"`
	AdminResponse string        `json:"admin_response,omitempty" db:"admin_response"`
}

// IsPending reports whether the request still awaits a response
func (c *ContactRequest) IsPending() bool {
	return c.Status == ContactPending
}

// ContactForm is the payload the public contact form submits
type ContactForm struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Validate validates the contact form data
func (f *ContactForm) Validate() []string {
	var errors []string

	if strings.TrimSpace(f.Name) == "" {
		errors = append(errors, "Name is required")
	}
	if len(f.Name) > 100 {
		errors = append(errors, "Name must be less than 100 characters")
	}

	if strings.TrimSpace(f.Email) == "" {
		errors = append(errors, "Email is required")
	} else if len(f.Email) > 255 || !isValidEmail(strings.TrimSpace(f.Email)) {
		errors = append(errors, "Email format is invalid")
	}

	if strings.TrimSpace(f.Subject) == "" {
		errors = append(errors, "Subject is required")
	}
	if len(f.Subject) > 200 {
		errors = append(errors, "Subject must be less than 200 characters")
	}

	if strings.TrimSpace(f.Message) == "" {
		errors = append(errors, "Message is required")
	}

	return errors
}

// ContactResponseForm carries the administrator's reply to a contact request
type ContactResponseForm struct {
	Response string `json:"response"`
}

// Validate validates the response form data
func (f *ContactResponseForm) Validate() []string {
	var errors []string

	if strings.TrimSpace(f.Response) == "" {
		errors = append(errors, "Response is required")
	}

	return errors
}

// isValidEmail performs basic email validation
func isValidEmail(email string) bool {
	// Simple validation: must contain @ and at least one dot after @
	atIndex := -1
	for i, char := range email {
		if char == '@' {
			if atIndex != -1 {
				return false // Multiple @ symbols
			}
			atIndex = i
		}
	}

	if atIndex == -1 || atIndex == 0 || atIndex == len(email)-1 {
		return false
	}

	for i := atIndex + 1; i < len(email); i++ {
		if email[i] == '.' && i < len(email)-1 {
			return true
		}
	}

	return false
}
