package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"dailyreview/config"
	"dailyreview/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:  logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	require.NoError(t, err)

	// 内存库每个连接独立，只能用一个连接
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, config.MigrateDB(db))
	return db
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func adaRequest() *models.FormdataRequest {
	return &models.FormdataRequest{
		Name:         strPtr("Ada"),
		SelfRating:   intPtr(4),
		Achievements: strPtr("Shipped X"),
		Challenges:   strPtr(""),
		Goals:        strPtr("Ship Y"),
		Feedback:     strPtr(""),
		DreamTeam:    strPtr(""),
		Improvement:  strPtr("Focus"),
	}
}

type failingStore struct{}

func (failingStore) Create(context.Context, *models.Formdata) error {
	return errors.New("UNIQUE constraint failed: Formdata.id")
}

func (failingStore) ListSince(context.Context, time.Time, int) ([]models.Formdata, error) {
	return nil, errors.New("connection refused")
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []models.FormdataEvent
	err    error
	closed bool
}

func (p *recordingPublisher) Publish(_ context.Context, event models.FormdataEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return p.err
}

func (p *recordingPublisher) Close() error {
	p.closed = true
	return nil
}

type recordingArchiver struct {
	archived []string
	err      error
}

func (a *recordingArchiver) Archive(_ context.Context, f *models.Formdata) error {
	a.archived = append(a.archived, f.ID)
	return a.err
}
