package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/blogem/forum-admin/models"
)

// ContactRepository interface defines contact request database operations
type ContactRepository interface {
	GetAll(ctx context.Context) ([]models.ContactRequest, error)
	GetByID(ctx context.Context, id int64) (*models.ContactRequest, error)
	Create(ctx context.Context, contact *models.ContactRequest) error
	Respond(ctx context.Context, id int64, response string) error
	CountByStatus(ctx context.Context, status models.ContactStatus) (int, error)
}

// contactRepository implements ContactRepository interface
type contactRepository struct {
	db *sql.DB
}

// NewContactRepository creates a new contact repository
func NewContactRepository(db *sql.DB) ContactRepository {
	return &contactRepository{db: db}
}

// GetAll retrieves every contact request, newest first
func (r *contactRepository) GetAll(ctx context.Context) ([]models.ContactRequest, error) {
	query := `
		SELECT id, name, email, subject, message, created_at, status, admin_response
		FROM contacts
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query contacts: %w", err)
	}
	defer rows.Close()

	contacts := []models.ContactRequest{}
	for rows.Next() {
		contact, err := scanContact(rows)
		if err != nil {
			return nil, err
		}
		contacts = append(contacts, *contact)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating contacts: %w", err)
	}

	return contacts, nil
}

// GetByID retrieves a contact request by ID
func (r *contactRepository) GetByID(ctx context.Context, id int64) (*models.ContactRequest, error) {
	query := `
		SELECT id, name, email, subject, message, created_at, status, admin_response
		FROM contacts
		WHERE id = ?
	`

	contact, err := scanContact(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("contact %d: %w", id, models.ErrContactNotFound)
	}
	if err != nil {
		return nil, err
	}

	return contact, nil
}

// Create inserts a new pending contact request
func (r *contactRepository) Create(ctx context.Context, contact *models.ContactRequest) error {
	query := `
		INSERT INTO contacts (name, email, subject, message, status)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		contact.Name,
		contact.Email,
		contact.Subject,
		contact.Message,
		string(models.ContactPending),
	)
	if err != nil {
		return fmt.Errorf("failed to create contact: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted ID: %w", err)
	}

	contact.ID = id
	contact.Status = models.ContactPending
	return nil
}

// Respond stores the administrator's response and marks the request as
// responded. Responding again overwrites the previous text.
func (r *contactRepository) Respond(ctx context.Context, id int64, response string) error {
	query := `UPDATE contacts SET admin_response = ?, status = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, response, string(models.ContactResponded), id)
	if err != nil {
		return fmt.Errorf("failed to respond to contact: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("contact %d: %w", id, models.ErrContactNotFound)
	}

	return nil
}

// CountByStatus returns the number of contact requests in the given status
func (r *contactRepository) CountByStatus(ctx context.Context, status models.ContactStatus) (int, error) {
	query := `SELECT COUNT(*) FROM contacts WHERE status = ?`

	var count int
	if err := r.db.QueryRowContext(ctx, query, string(status)).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count %s contacts: %w", status, err)
	}

	return count, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanContact reads one contacts row. sql.ErrNoRows is returned unwrapped.
func scanContact(row rowScanner) (*models.ContactRequest, error) {
	var contact models.ContactRequest
	var status string
	var adminResponse sql.NullString

	err := row.Scan(
		&contact.ID,
		&contact.Name,
		&contact.Email,
		&contact.Subject,
		&contact.Message,
		&contact.CreatedAt,
		&status,
		&adminResponse,
	)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan contact: %w", err)
	}

	contact.Status = models.ContactStatus(status)
	contact.AdminResponse = adminResponse.String
	return &contact, nil
}
