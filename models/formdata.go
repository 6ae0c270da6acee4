package models

import "time"

// Formdata 每日复盘记录
type Formdata struct {
	ID           string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name         string    `gorm:"type:text;not null" json:"name"`
	SelfRating   int       `gorm:"not null" json:"selfRating"` // 1-5，服务端不校验
	Achievements string    `gorm:"type:text;not null" json:"achievements"`
	Challenges   string    `gorm:"type:text;not null" json:"challenges"`
	Goals        string    `gorm:"type:text;not null" json:"goals"`
	Feedback     *string   `gorm:"type:text" json:"feedback"`
	DreamTeam    *string   `gorm:"type:text" json:"dreamTeam"`
	Improvement  string    `gorm:"type:text;not null" json:"improvement"`
	Date         time.Time `gorm:"not null;index" json:"date"`
	CreatedAt    time.Time `gorm:"autoCreateTime;index" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Formdata) TableName() string {
	return "Formdata"
}
