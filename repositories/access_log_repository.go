package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/blogem/forum-admin/database"
	"github.com/blogem/forum-admin/models"
)

// AccessLogRepository handles access event persistence and the aggregate
// queries over it
type AccessLogRepository interface {
	Create(ctx context.Context, event *models.AccessEvent) error
	GetRecent(ctx context.Context, limit int) ([]models.AccessLogEntry, error)
	CountBetween(ctx context.Context, window models.DateRange) (int, error)
	CountUniqueIPsBetween(ctx context.Context, window models.DateRange) (int, error)
	CountActiveUsersSince(ctx context.Context, since time.Time) (int, error)
	GetPopularPages(ctx context.Context, since time.Time, limit int) ([]models.PageVisits, error)
	GetHourlyActivity(ctx context.Context, window models.DateRange) ([]models.HourlyCount, error)
}

// accessLogRepository implements AccessLogRepository interface
type accessLogRepository struct {
	db *sql.DB
}

// NewAccessLogRepository creates a new access log repository
func NewAccessLogRepository(db *sql.DB) AccessLogRepository {
	return &accessLogRepository{db: db}
}

// Create appends an access event. The timestamp is assigned by the store.
func (r *accessLogRepository) Create(ctx context.Context, event *models.AccessEvent) error {
	query := `
		INSERT INTO access_logs (ip_address, user_agent, page, user_id)
		VALUES (?, ?, ?, ?)
	`

	var userAgent sql.NullString
	if event.UserAgent != "" {
		userAgent = sql.NullString{String: event.UserAgent, Valid: true}
	}
	var userID sql.NullInt64
	if event.UserID != nil {
		userID = sql.NullInt64{Int64: *event.UserID, Valid: true}
	}

	result, err := r.db.ExecContext(ctx, query, event.IPAddress, userAgent, event.Page, userID)
	if err != nil {
		return fmt.Errorf("failed to create access event: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted ID: %w", err)
	}

	event.ID = id
	return nil
}

// GetRecent retrieves the newest access events with the acting user's name
func (r *accessLogRepository) GetRecent(ctx context.Context, limit int) ([]models.AccessLogEntry, error) {
	query := `
		SELECT al.ip_address, al.user_agent, al.page, al.timestamp, u.username
		FROM access_logs al
		LEFT JOIN users u ON al.user_id = u.id
		ORDER BY al.timestamp DESC, al.id DESC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query access logs: %w", err)
	}
	defer rows.Close()

	entries := []models.AccessLogEntry{}
	for rows.Next() {
		var entry models.AccessLogEntry
		var userAgent sql.NullString
		var username sql.NullString

		if err := rows.Scan(&entry.IPAddress, &userAgent, &entry.Page, &entry.Timestamp, &username); err != nil {
			return nil, fmt.Errorf("failed to scan access log: %w", err)
		}

		entry.UserAgent = userAgent.String
		entry.Username = username.String
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating access logs: %w", err)
	}

	return entries, nil
}

// CountBetween counts events inside the half-open window
func (r *accessLogRepository) CountBetween(ctx context.Context, window models.DateRange) (int, error) {
	query := `SELECT COUNT(*) FROM access_logs WHERE timestamp >= ? AND timestamp < ?`

	var count int
	err := r.db.QueryRowContext(ctx, query,
		database.FormatTimestamp(window.Start),
		database.FormatTimestamp(window.End),
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count visits: %w", err)
	}

	return count, nil
}

// CountUniqueIPsBetween counts distinct visitor IPs inside the half-open window
func (r *accessLogRepository) CountUniqueIPsBetween(ctx context.Context, window models.DateRange) (int, error) {
	query := `SELECT COUNT(DISTINCT ip_address) FROM access_logs WHERE timestamp >= ? AND timestamp < ?`

	var count int
	err := r.db.QueryRowContext(ctx, query,
		database.FormatTimestamp(window.Start),
		database.FormatTimestamp(window.End),
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count unique visitors: %w", err)
	}

	return count, nil
}

// CountActiveUsersSince counts distinct forum users with an event strictly
// after since. Anonymous events are ignored.
func (r *accessLogRepository) CountActiveUsersSince(ctx context.Context, since time.Time) (int, error) {
	query := `
		SELECT COUNT(DISTINCT user_id)
		FROM access_logs
		WHERE timestamp > ? AND user_id IS NOT NULL
	`

	var count int
	if err := r.db.QueryRowContext(ctx, query, database.FormatTimestamp(since)).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count online users: %w", err)
	}

	return count, nil
}

// GetPopularPages returns the most visited pages since the given instant
// (inclusive), busiest first
func (r *accessLogRepository) GetPopularPages(ctx context.Context, since time.Time, limit int) ([]models.PageVisits, error) {
	query := `
		SELECT page, COUNT(*) AS visits
		FROM access_logs
		WHERE timestamp >= ?
		GROUP BY page
		ORDER BY visits DESC, page ASC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, database.FormatTimestamp(since), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query popular pages: %w", err)
	}
	defer rows.Close()

	pages := []models.PageVisits{}
	for rows.Next() {
		var page models.PageVisits
		if err := rows.Scan(&page.Page, &page.Visits); err != nil {
			return nil, fmt.Errorf("failed to scan popular page: %w", err)
		}
		pages = append(pages, page)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating popular pages: %w", err)
	}

	return pages, nil
}

// GetHourlyActivity counts events inside the window grouped by hour of day
// in the window's location. Hours without events are omitted.
func (r *accessLogRepository) GetHourlyActivity(ctx context.Context, window models.DateRange) ([]models.HourlyCount, error) {
	query := `
		SELECT strftime('%H', timestamp, ?) AS hour, COUNT(*) AS count
		FROM access_logs
		WHERE timestamp >= ? AND timestamp < ?
		GROUP BY hour
		ORDER BY hour ASC
	`

	rows, err := r.db.QueryContext(ctx, query,
		zoneModifier(window.Start),
		database.FormatTimestamp(window.Start),
		database.FormatTimestamp(window.End),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query hourly activity: %w", err)
	}
	defer rows.Close()

	hours := []models.HourlyCount{}
	for rows.Next() {
		var hour models.HourlyCount
		if err := rows.Scan(&hour.Hour, &hour.Count); err != nil {
			return nil, fmt.Errorf("failed to scan hourly activity: %w", err)
		}
		hours = append(hours, hour)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating hourly activity: %w", err)
	}

	return hours, nil
}

// zoneModifier builds the SQLite date modifier that shifts stored UTC
// timestamps into t's zone, using the offset in effect at t
func zoneModifier(t time.Time) string {
	_, offset := t.Zone()
	return fmt.Sprintf("%+d seconds", offset)
}
