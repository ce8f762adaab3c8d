package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/blogem/forum-admin/database"
	"github.com/blogem/forum-admin/models"
)

// UserRepository defines read-only queries over the forum's users table
type UserRepository interface {
	Count(ctx context.Context) (int, error)
	GetAllWithActivity(ctx context.Context) ([]models.UserSummary, error)
	GetRegistrationsSince(ctx context.Context, since time.Time) ([]models.DailyCount, error)
}

// userRepository implements UserRepository interface
type userRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

// Count returns the total number of users
func (r *userRepository) Count(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM users`

	var count int
	if err := r.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}

	return count, nil
}

// GetAllWithActivity retrieves every user with the number of topics and
// posts they own, newest account first
func (r *userRepository) GetAllWithActivity(ctx context.Context) ([]models.UserSummary, error) {
	query := `
		SELECT u.id, u.username, u.email, u.created_at, u.is_active,
		       COUNT(DISTINCT t.id) AS topic_count,
		       COUNT(DISTINCT p.id) AS post_count
		FROM users u
		LEFT JOIN topics t ON u.id = t.user_id
		LEFT JOIN posts p ON u.id = p.user_id
		GROUP BY u.id
		ORDER BY u.created_at DESC, u.id DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	users := []models.UserSummary{}
	for rows.Next() {
		var user models.UserSummary
		var active sql.NullBool

		err := rows.Scan(
			&user.ID,
			&user.Username,
			&user.Email,
			&user.CreatedAt,
			&active,
			&user.TopicCount,
			&user.PostCount,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}

		// A NULL flag predates the column and counts as active
		user.Active = !active.Valid || active.Bool
		users = append(users, user)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}

	return users, nil
}

// GetRegistrationsSince counts users created at or after since, grouped by
// calendar date in since's location, oldest date first
func (r *userRepository) GetRegistrationsSince(ctx context.Context, since time.Time) ([]models.DailyCount, error) {
	query := `
		SELECT DATE(created_at, ?) AS date, COUNT(*) AS count
		FROM users
		WHERE created_at >= ?
		GROUP BY date
		ORDER BY date ASC
	`

	rows, err := r.db.QueryContext(ctx, query, zoneModifier(since), database.FormatTimestamp(since))
	if err != nil {
		return nil, fmt.Errorf("failed to query registrations: %w", err)
	}
	defer rows.Close()

	days := []models.DailyCount{}
	for rows.Next() {
		var day models.DailyCount
		if err := rows.Scan(&day.Date, &day.Count); err != nil {
			return nil, fmt.Errorf("failed to scan registrations: %w", err)
		}
		days = append(days, day)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating registrations: %w", err)
	}

	return days, nil
}
