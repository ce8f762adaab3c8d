package repositories

import (
	"database/sql"
)

// Repositories struct holds all repository interfaces
type Repositories struct {
	Users      UserRepository
	Topics     TopicRepository
	Posts      PostRepository
	Contacts   ContactRepository
	AccessLogs AccessLogRepository
}

// NewRepositories creates and initializes all repositories
func NewRepositories(db *sql.DB) *Repositories {
	return &Repositories{
		Users:      NewUserRepository(db),
		Topics:     NewTopicRepository(db),
		Posts:      NewPostRepository(db),
		Contacts:   NewContactRepository(db),
		AccessLogs: NewAccessLogRepository(db),
	}
}
