package services

import (
	"context"
	"time"

	"dailyreview/models"
	"dailyreview/utils"

	"gorm.io/gorm"
)

// FormdataStore 复盘记录的持久化接口，只有插入和只读查询
type FormdataStore interface {
	Create(ctx context.Context, f *models.Formdata) error
	ListSince(ctx context.Context, since time.Time, limit int) ([]models.Formdata, error)
}

// GormFormdataStore 基于 gorm 的实现
type GormFormdataStore struct {
	db *gorm.DB
}

func NewGormFormdataStore(db *gorm.DB) *GormFormdataStore {
	return &GormFormdataStore{db: db}
}

// Create 插入一行，ID 为空时生成
func (s *GormFormdataStore) Create(ctx context.Context, f *models.Formdata) error {
	if f.ID == "" {
		f.ID = utils.GenerateID()
	}
	return s.db.WithContext(ctx).Create(f).Error
}

// ListSince 查询 since 之后创建的记录，按创建时间倒序
func (s *GormFormdataStore) ListSince(ctx context.Context, since time.Time, limit int) ([]models.Formdata, error) {
	var rows []models.Formdata
	err := s.db.WithContext(ctx).
		Where("created_at > ?", since).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
