package services

import (
	"time"

	"github.com/blogem/forum-admin/config"
	"github.com/blogem/forum-admin/repositories"
)

// Services holds all service instances
type Services struct {
	Stats    StatsService
	Contacts ContactService
	Access   *AccessRecorder
	Auth     AuthService
}

// NewServices creates and initializes all service instances
func NewServices(repos *repositories.Repositories, admin config.AdminConfig, loc *time.Location) *Services {
	return &Services{
		Stats:    NewStatsService(repos.Users, repos.Topics, repos.Posts, repos.Contacts, repos.AccessLogs, loc),
		Contacts: NewContactService(repos.Contacts),
		Access:   NewAccessRecorder(repos.AccessLogs),
		Auth:     NewAuthService(admin),
	}
}
