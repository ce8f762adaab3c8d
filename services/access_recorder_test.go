package services

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/blogem/forum-admin/database"
	"github.com/blogem/forum-admin/models"
	"github.com/blogem/forum-admin/repositories"
	"github.com/blogem/forum-admin/repositories/mocks"
)

func TestRecord_Success(t *testing.T) {
	repo := mocks.NewMockAccessLogRepository(t)
	userID := int64(7)

	repo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(e *models.AccessEvent) bool {
		return e.IPAddress == "10.0.0.1" && e.UserAgent == "curl/8" && e.Page == "/topics/1" && *e.UserID == 7
	})).Return(nil)

	recorder := NewAccessRecorder(repo)
	assert.True(t, recorder.Record(context.Background(), "10.0.0.1", "curl/8", "/topics/1", &userID))
}

func TestRecord_StoreErrorIsSwallowed(t *testing.T) {
	repo := mocks.NewMockAccessLogRepository(t)
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.New("database is locked"))

	recorder := NewAccessRecorder(repo)

	assert.NotPanics(t, func() {
		assert.False(t, recorder.Record(context.Background(), "10.0.0.1", "", "/", nil))
	})
}

func TestRecord_ClosedDatabase(t *testing.T) {
	db, err := database.InitializeDatabase(filepath.Join(t.TempDir(), "forum.db"))
	require.NoError(t, err)
	require.NoError(t, db.Close())

	recorder := NewAccessRecorder(repositories.NewAccessLogRepository(db))

	assert.False(t, recorder.Record(context.Background(), "10.0.0.1", "Mozilla/5.0", "/", nil))
}
