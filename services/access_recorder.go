package services

import (
	"context"
	"log/slog"

	"github.com/blogem/forum-admin/models"
	"github.com/blogem/forum-admin/repositories"
)

// AccessRecorder appends page views to the access log. Recording is best
// effort: failures are logged and never reach the caller.
type AccessRecorder struct {
	accessRepo repositories.AccessLogRepository
}

// NewAccessRecorder creates a new access recorder
func NewAccessRecorder(accessRepo repositories.AccessLogRepository) *AccessRecorder {
	return &AccessRecorder{accessRepo: accessRepo}
}

// Record stores one access event and reports whether it was written
func (r *AccessRecorder) Record(ctx context.Context, ip, userAgent, page string, userID *int64) bool {
	event := &models.AccessEvent{
		IPAddress: ip,
		UserAgent: userAgent,
		Page:      page,
		UserID:    userID,
	}

	if err := r.accessRepo.Create(ctx, event); err != nil {
		slog.Error("failed to record access", "page", page, "ip", ip, "error", err)
		return false
	}

	return true
}
