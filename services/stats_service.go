package services

import (
	"context"
	"fmt"
	"time"

	"github.com/blogem/forum-admin/models"
	"github.com/blogem/forum-admin/repositories"
)

var timeNow = func() time.Time {
	return time.Now()
}

// Defaults used by the dashboard views
const (
	OnlineWindow          = 15 * time.Minute
	RecentItemsLimit      = 5
	RecentAccessLogsLimit = 100
	PopularPagesDays      = 7
	PopularPagesLimit     = 10
	RegistrationDays      = 7
)

// StatsService interface defines the read-only forum statistics
type StatsService interface {
	CountUsers(ctx context.Context) (int, error)
	CountTopics(ctx context.Context) (int, error)
	CountPosts(ctx context.Context) (int, error)
	CountPendingContacts(ctx context.Context) (int, error)
	CountOnlineUsers(ctx context.Context) (int, error)
	RecentTopics(ctx context.Context, limit int) ([]models.RecentTopic, error)
	RecentPosts(ctx context.Context, limit int) ([]models.RecentPost, error)
	RecentAccessLogs(ctx context.Context, limit int) ([]models.AccessLogEntry, error)
	TodayVisitCount(ctx context.Context) (int, error)
	TodayUniqueVisitors(ctx context.Context) (int, error)
	PopularPages(ctx context.Context, days, limit int) ([]models.PageVisits, error)
	ListUsers(ctx context.Context) ([]models.UserSummary, error)
	UserRegistrationsByDay(ctx context.Context, days int) ([]models.DailyCount, error)
	HourlyActivityToday(ctx context.Context) ([]models.HourlyCount, error)
	GetDashboardData(ctx context.Context) (*DashboardData, error)
	GetAccessReport(ctx context.Context) (*AccessReport, error)
	GetChartData(ctx context.Context) (*ChartData, error)
}

// DashboardStats holds the headline counters
type DashboardStats struct {
	TotalUsers      int `json:"total_users"`
	TotalTopics     int `json:"total_topics"`
	TotalPosts      int `json:"total_posts"`
	PendingContacts int `json:"pending_contacts"`
	OnlineUsers     int `json:"online_users"`
}

// DashboardData represents data for the dashboard view
type DashboardData struct {
	Stats        DashboardStats       `json:"stats"`
	RecentTopics []models.RecentTopic `json:"recent_topics"`
	RecentPosts  []models.RecentPost  `json:"recent_posts"`
}

// AccessReport represents data for the access logs view
type AccessReport struct {
	Logs           []models.AccessLogEntry `json:"logs"`
	TodayVisits    int                     `json:"today_visits"`
	UniqueVisitors int                     `json:"unique_visitors"`
	PopularPages   []models.PageVisits     `json:"popular_pages"`
}

// ChartData is the payload of the chart endpoint
type ChartData struct {
	UserRegistrations []models.DailyCount  `json:"user_registrations"`
	HourlyActivity    []models.HourlyCount `json:"hourly_activity"`
}

// statsService implements StatsService interface
type statsService struct {
	userRepo    repositories.UserRepository
	topicRepo   repositories.TopicRepository
	postRepo    repositories.PostRepository
	contactRepo repositories.ContactRepository
	accessRepo  repositories.AccessLogRepository
	loc         *time.Location
}

// NewStatsService creates a new stats service. Day and hour buckets are
// computed in loc.
func NewStatsService(
	userRepo repositories.UserRepository,
	topicRepo repositories.TopicRepository,
	postRepo repositories.PostRepository,
	contactRepo repositories.ContactRepository,
	accessRepo repositories.AccessLogRepository,
	loc *time.Location,
) StatsService {
	if loc == nil {
		loc = time.Local
	}
	return &statsService{
		userRepo:    userRepo,
		topicRepo:   topicRepo,
		postRepo:    postRepo,
		contactRepo: contactRepo,
		accessRepo:  accessRepo,
		loc:         loc,
	}
}

func (s *statsService) now() time.Time {
	return timeNow().In(s.loc)
}

// CountUsers returns the number of registered forum users
func (s *statsService) CountUsers(ctx context.Context) (int, error) {
	return s.userRepo.Count(ctx)
}

// CountTopics returns the number of forum topics
func (s *statsService) CountTopics(ctx context.Context) (int, error) {
	return s.topicRepo.Count(ctx)
}

// CountPosts returns the number of forum posts
func (s *statsService) CountPosts(ctx context.Context) (int, error) {
	return s.postRepo.Count(ctx)
}

// CountPendingContacts returns the number of unanswered contact requests
func (s *statsService) CountPendingContacts(ctx context.Context) (int, error) {
	return s.contactRepo.CountByStatus(ctx, models.ContactPending)
}

// CountOnlineUsers returns the distinct users seen in the last OnlineWindow
func (s *statsService) CountOnlineUsers(ctx context.Context) (int, error) {
	return s.accessRepo.CountActiveUsersSince(ctx, s.now().Add(-OnlineWindow))
}

// RecentTopics returns the newest topics
func (s *statsService) RecentTopics(ctx context.Context, limit int) ([]models.RecentTopic, error) {
	return s.topicRepo.GetRecent(ctx, limit)
}

// RecentPosts returns the newest posts
func (s *statsService) RecentPosts(ctx context.Context, limit int) ([]models.RecentPost, error) {
	return s.postRepo.GetRecent(ctx, limit)
}

// RecentAccessLogs returns the newest access events
func (s *statsService) RecentAccessLogs(ctx context.Context, limit int) ([]models.AccessLogEntry, error) {
	return s.accessRepo.GetRecent(ctx, limit)
}

// TodayVisitCount counts access events during the current local day
func (s *statsService) TodayVisitCount(ctx context.Context) (int, error) {
	return s.accessRepo.CountBetween(ctx, models.DayOf(s.now()))
}

// TodayUniqueVisitors counts distinct IPs during the current local day
func (s *statsService) TodayUniqueVisitors(ctx context.Context) (int, error) {
	return s.accessRepo.CountUniqueIPsBetween(ctx, models.DayOf(s.now()))
}

// PopularPages returns the most visited pages over the last days
func (s *statsService) PopularPages(ctx context.Context, days, limit int) ([]models.PageVisits, error) {
	if days <= 0 || limit <= 0 {
		return []models.PageVisits{}, nil
	}
	return s.accessRepo.GetPopularPages(ctx, models.LastDays(s.now(), days).Start, limit)
}

// ListUsers returns every user with topic and post counts
func (s *statsService) ListUsers(ctx context.Context) ([]models.UserSummary, error) {
	return s.userRepo.GetAllWithActivity(ctx)
}

// UserRegistrationsByDay returns registrations per local date, counting
// whole days from the date days ago through today
func (s *statsService) UserRegistrationsByDay(ctx context.Context, days int) ([]models.DailyCount, error) {
	if days <= 0 {
		return []models.DailyCount{}, nil
	}
	return s.userRepo.GetRegistrationsSince(ctx, models.CalendarDays(s.now(), days).Start)
}

// HourlyActivityToday returns today's access events per local hour
func (s *statsService) HourlyActivityToday(ctx context.Context) ([]models.HourlyCount, error) {
	return s.accessRepo.GetHourlyActivity(ctx, models.DayOf(s.now()))
}

// GetDashboardData retrieves data for the dashboard
func (s *statsService) GetDashboardData(ctx context.Context) (*DashboardData, error) {
	var data DashboardData
	var err error

	if data.Stats.TotalUsers, err = s.CountUsers(ctx); err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	if data.Stats.TotalTopics, err = s.CountTopics(ctx); err != nil {
		return nil, fmt.Errorf("failed to count topics: %w", err)
	}
	if data.Stats.TotalPosts, err = s.CountPosts(ctx); err != nil {
		return nil, fmt.Errorf("failed to count posts: %w", err)
	}
	if data.Stats.PendingContacts, err = s.CountPendingContacts(ctx); err != nil {
		return nil, fmt.Errorf("failed to count pending contacts: %w", err)
	}
	if data.Stats.OnlineUsers, err = s.CountOnlineUsers(ctx); err != nil {
		return nil, fmt.Errorf("failed to count online users: %w", err)
	}
	if data.RecentTopics, err = s.RecentTopics(ctx, RecentItemsLimit); err != nil {
		return nil, fmt.Errorf("failed to get recent topics: %w", err)
	}
	if data.RecentPosts, err = s.RecentPosts(ctx, RecentItemsLimit); err != nil {
		return nil, fmt.Errorf("failed to get recent posts: %w", err)
	}

	return &data, nil
}

// GetAccessReport retrieves data for the access logs view
func (s *statsService) GetAccessReport(ctx context.Context) (*AccessReport, error) {
	var report AccessReport
	var err error

	if report.Logs, err = s.RecentAccessLogs(ctx, RecentAccessLogsLimit); err != nil {
		return nil, fmt.Errorf("failed to get access logs: %w", err)
	}
	if report.TodayVisits, err = s.TodayVisitCount(ctx); err != nil {
		return nil, fmt.Errorf("failed to count today's visits: %w", err)
	}
	if report.UniqueVisitors, err = s.TodayUniqueVisitors(ctx); err != nil {
		return nil, fmt.Errorf("failed to count unique visitors: %w", err)
	}
	if report.PopularPages, err = s.PopularPages(ctx, PopularPagesDays, PopularPagesLimit); err != nil {
		return nil, fmt.Errorf("failed to get popular pages: %w", err)
	}

	return &report, nil
}

// GetChartData retrieves the series for the dashboard charts
func (s *statsService) GetChartData(ctx context.Context) (*ChartData, error) {
	registrations, err := s.UserRegistrationsByDay(ctx, RegistrationDays)
	if err != nil {
		return nil, fmt.Errorf("failed to get user registrations: %w", err)
	}

	hourly, err := s.HourlyActivityToday(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get hourly activity: %w", err)
	}

	return &ChartData{
		UserRegistrations: registrations,
		HourlyActivity:    hourly,
	}, nil
}
