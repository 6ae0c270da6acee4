package utils

import (
	"dailyreview/config"

	"github.com/google/uuid"
)

// GenerateID 生成记录和请求使用的 UUID
func GenerateID() string {
	id := uuid.New().String()
	config.Logger.Debugw("生成新ID", "id", id)
	return id
}
