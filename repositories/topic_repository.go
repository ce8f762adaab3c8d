package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/blogem/forum-admin/models"
)

// TopicRepository defines read-only queries over the forum's topics table
type TopicRepository interface {
	Count(ctx context.Context) (int, error)
	GetRecent(ctx context.Context, limit int) ([]models.RecentTopic, error)
}

// topicRepository implements TopicRepository interface
type topicRepository struct {
	db *sql.DB
}

// NewTopicRepository creates a new topic repository
func NewTopicRepository(db *sql.DB) TopicRepository {
	return &topicRepository{db: db}
}

// Count returns the total number of topics
func (r *topicRepository) Count(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM topics`

	var count int
	if err := r.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count topics: %w", err)
	}

	return count, nil
}

// GetRecent retrieves the newest topics with their author's username
func (r *topicRepository) GetRecent(ctx context.Context, limit int) ([]models.RecentTopic, error) {
	query := `
		SELECT u.username, t.title, t.created_at
		FROM topics t
		JOIN users u ON t.user_id = u.id
		ORDER BY t.created_at DESC, t.id DESC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent topics: %w", err)
	}
	defer rows.Close()

	topics := []models.RecentTopic{}
	for rows.Next() {
		var topic models.RecentTopic
		if err := rows.Scan(&topic.Username, &topic.Title, &topic.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan recent topic: %w", err)
		}
		topics = append(topics, topic)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating recent topics: %w", err)
	}

	return topics, nil
}
