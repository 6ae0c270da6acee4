package models

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrMissingColumn = errors.New("missing required column")
	ErrInvalidDate   = errors.New("invalid date")
)

// FormdataRequest 提交复盘的请求体，字段缺失与空字符串需要区分，所以全部用指针
type FormdataRequest struct {
	Name         *string `json:"name"`
	SelfRating   *int    `json:"selfRating"`
	Achievements *string `json:"achievements"`
	Challenges   *string `json:"challenges"`
	Goals        *string `json:"goals"`
	Feedback     *string `json:"feedback"`
	DreamTeam    *string `json:"dreamTeam"`
	Improvement  *string `json:"improvement"`
	Date         *string `json:"date"`
}

// ToFormdata 转换为待插入的记录，只检查表结构要求的非空列，不做内容校验。
// date 缺省时取 now。
func (r *FormdataRequest) ToFormdata(now time.Time) (*Formdata, error) {
	required := []struct {
		column string
		value  *string
	}{
		{"name", r.Name},
		{"achievements", r.Achievements},
		{"challenges", r.Challenges},
		{"goals", r.Goals},
		{"improvement", r.Improvement},
	}
	for _, col := range required {
		if col.value == nil {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, col.column)
		}
	}
	if r.SelfRating == nil {
		return nil, fmt.Errorf("%w: selfRating", ErrMissingColumn)
	}

	date := now
	if r.Date != nil {
		t, err := time.Parse(time.RFC3339Nano, *r.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidDate, *r.Date)
		}
		date = t
	}

	return &Formdata{
		Name:         *r.Name,
		SelfRating:   *r.SelfRating,
		Achievements: *r.Achievements,
		Challenges:   *r.Challenges,
		Goals:        *r.Goals,
		Feedback:     r.Feedback,
		DreamTeam:    r.DreamTeam,
		Improvement:  *r.Improvement,
		Date:         date.UTC(),
	}, nil
}

// ListFormdataRequest 内部查询参数
type ListFormdataRequest struct {
	Since time.Time
	Limit int
}

const (
	DefaultListLimit = 50
	MaxListLimit     = 500
)

// Normalize 补全默认值并限制上限
func (r *ListFormdataRequest) Normalize() {
	if r.Limit <= 0 {
		r.Limit = DefaultListLimit
	}
	if r.Limit > MaxListLimit {
		r.Limit = MaxListLimit
	}
	r.Since = r.Since.UTC()
}
