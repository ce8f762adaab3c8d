package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/blogem/forum-admin/models"
)

// PostRepository defines read-only queries over the forum's posts table
type PostRepository interface {
	Count(ctx context.Context) (int, error)
	GetRecent(ctx context.Context, limit int) ([]models.RecentPost, error)
}

// postRepository implements PostRepository interface
type postRepository struct {
	db *sql.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *sql.DB) PostRepository {
	return &postRepository{db: db}
}

// Count returns the total number of posts
func (r *postRepository) Count(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM posts`

	var count int
	if err := r.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count posts: %w", err)
	}

	return count, nil
}

// GetRecent retrieves the newest posts with their author's username
func (r *postRepository) GetRecent(ctx context.Context, limit int) ([]models.RecentPost, error) {
	query := `
		SELECT u.username, p.content, p.created_at
		FROM posts p
		JOIN users u ON p.user_id = u.id
		ORDER BY p.created_at DESC, p.id DESC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent posts: %w", err)
	}
	defer rows.Close()

	posts := []models.RecentPost{}
	for rows.Next() {
		var post models.RecentPost
		if err := rows.Scan(&post.Username, &post.Content, &post.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan recent post: %w", err)
		}
		posts = append(posts, post)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating recent posts: %w", err)
	}

	return posts, nil
}
