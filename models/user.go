package models

import (
	"time"
)

// User is a forum account. The forum owns the table; the panel only reads it.
type User struct {
	ID        int64     `json:"id" db:"id"`
	Username  string    `json:"username" db:"username"`
	Email     string    `json:"email" db:"email"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	Active    bool      `json:"is_active" db:"is_active"`
}

// UserSummary is a user with the number of topics and posts they own
type UserSummary struct {
	User
	TopicCount int `json:"topic_count" db:"topic_count"`
	PostCount  int `json:"post_count" db:"post_count"`
}

// RecentTopic is a topic joined to its author's username
type RecentTopic struct {
	Username  string    `json:"username" db:"username"`
	Title     string    `json:"title" db:"title"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// RecentPost is a post joined to its author's username
type RecentPost struct {
	Username  string    `json:"username" db:"username"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
