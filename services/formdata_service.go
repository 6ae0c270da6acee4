package services

import (
	"context"
	"fmt"
	"time"

	"dailyreview/config"
	"dailyreview/models"
)

// FormdataService 复盘记录的写入与查询
type FormdataService struct {
	store     FormdataStore
	publisher Publisher
	archiver  Archiver
	now       func() time.Time

	// sinkTimeout 单个下游调用的上限，超时只记日志
	sinkTimeout time.Duration
}

// DefaultSinkTimeout 下游通知和归档各自的超时
const DefaultSinkTimeout = 2 * time.Second

// NewFormdataService publisher 和 archiver 可为 nil
func NewFormdataService(store FormdataStore, publisher Publisher, archiver Archiver) *FormdataService {
	if publisher == nil {
		publisher = NoopPublisher{}
	}
	if archiver == nil {
		archiver = NoopArchiver{}
	}
	return &FormdataService{
		store:       store,
		publisher:   publisher,
		archiver:    archiver,
		now:         time.Now,
		sinkTimeout: DefaultSinkTimeout,
	}
}

// Create 插入一条复盘记录。没有幂等键，重复提交会产生多行。
func (s *FormdataService) Create(ctx context.Context, req *models.FormdataRequest) (*models.Formdata, error) {
	f, err := req.ToFormdata(s.now())
	if err != nil {
		return nil, err
	}

	if err := s.store.Create(ctx, f); err != nil {
		return nil, fmt.Errorf("插入复盘记录失败: %w", err)
	}

	s.afterCreate(ctx, f)
	return f, nil
}

// afterCreate 下游通知和归档都是尽力而为，失败只记日志。
// 每次调用都有独立的超时，不会拖住响应。
func (s *FormdataService) afterCreate(ctx context.Context, f *models.Formdata) {
	event := models.FormdataEvent{Type: models.EventFormdataCreated, Formdata: *f}

	pubCtx, cancel := context.WithTimeout(ctx, s.sinkTimeout)
	err := s.publisher.Publish(pubCtx, event)
	cancel()
	if err != nil {
		config.Logger.Warnw("发布复盘事件失败", "error", err, "id", f.ID)
	}

	arcCtx, cancel := context.WithTimeout(ctx, s.sinkTimeout)
	err = s.archiver.Archive(arcCtx, f)
	cancel()
	if err != nil {
		config.Logger.Warnw("归档复盘记录失败", "error", err, "id", f.ID)
	}
}

// List 内部只读查询
func (s *FormdataService) List(ctx context.Context, req models.ListFormdataRequest) ([]models.Formdata, error) {
	req.Normalize()
	rows, err := s.store.ListSince(ctx, req.Since, req.Limit)
	if err != nil {
		return nil, fmt.Errorf("查询复盘记录失败: %w", err)
	}
	return rows, nil
}

// Close 关闭下游连接
func (s *FormdataService) Close() error {
	return s.publisher.Close()
}
