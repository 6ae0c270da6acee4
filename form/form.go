package form

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"
)

var (
	ErrValidation       = errors.New("validation failed")
	ErrRatingOutOfRange = errors.New("rating must be between 1 and 5")
	ErrUnknownField     = errors.New("unknown field")
	ErrAlreadySubmitted = errors.New("review already submitted")
)

const genericSubmitMessage = "An unexpected error occurred"

type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
)

// Toast 非阻塞提示
type Toast struct {
	Title       string
	Description string
	Variant     Variant
	Duration    time.Duration
}

type Notifier interface {
	Notify(Toast)
}

type NotifierFunc func(Toast)

func (fn NotifierFunc) Notify(t Toast) { fn(t) }

// Submitter 发送一次提交，返回 HTTP 状态码
type Submitter interface {
	Submit(ctx context.Context, review Review) (int, error)
}

type Option func(*Form)

// WithRequired 覆盖必填字段集合
func WithRequired(fields ...Field) Option {
	return func(f *Form) {
		f.required = append([]Field(nil), fields...)
	}
}

func WithNotifier(n Notifier) Option {
	return func(f *Form) {
		f.notifier = n
	}
}

// Form 复盘表单的状态机：编辑中 -> 已提交 -> (Reset) 编辑中
type Form struct {
	submitter Submitter
	notifier  Notifier
	required  []Field

	mu         sync.Mutex
	review     Review
	errors     map[Field]string
	submitting bool
	submitted  bool
}

func New(submitter Submitter, opts ...Option) *Form {
	f := &Form{
		submitter: submitter,
		notifier:  NotifierFunc(func(Toast) {}),
		required:  DefaultRequired,
		review:    NewReview(),
		errors:    map[Field]string{},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Form) Review() Review {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.review
}

// Required 返回必填字段的副本。required 在 New 之后不再修改。
func (f *Form) Required() []Field {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Field(nil), f.required...)
}

// Errors 返回当前各字段的校验错误
func (f *Form) Errors() map[Field]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[Field]string, len(f.errors))
	for k, v := range f.errors {
		out[k] = v
	}
	return out
}

// Submitting 提交进行中，只用于界面禁用按钮，不阻止再次调用 Submit
func (f *Form) Submitting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitting
}

func (f *Form) Submitted() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitted
}

// SetField 修改文本字段，同时清除该字段的错误
func (f *Form) SetField(field Field, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p := f.review.field(field)
	if p == nil {
		return ErrUnknownField
	}
	*p = value
	delete(f.errors, field)
	return nil
}

// SetRating 对应五个固定按钮，范围外的值被拒绝
func (f *Form) SetRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return ErrRatingOutOfRange
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.review.SelfRating = rating
	return nil
}

// Validate 检查必填字段去掉首尾空白后非空
func (f *Form) Validate() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.validateLocked()
}

func (f *Form) validateLocked() bool {
	errs := map[Field]string{}
	for _, field := range f.required {
		if strings.TrimSpace(f.review.Get(field)) == "" {
			errs[field] = requiredMessages[field]
		}
	}
	f.errors = errs
	return len(errs) == 0
}

// Submit 校验并发送。校验失败不发请求；只有 200 会进入已提交状态，
// 失败时保留已填写的内容。
func (f *Form) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.submitted {
		f.mu.Unlock()
		return ErrAlreadySubmitted
	}
	if !f.validateLocked() {
		f.mu.Unlock()
		f.notifier.Notify(Toast{
			Title:       "Validation Error",
			Description: "Please fill in all required fields",
			Variant:     VariantDestructive,
		})
		return ErrValidation
	}
	review := f.review
	f.submitting = true
	f.mu.Unlock()

	status, err := f.submitter.Submit(ctx, review)

	f.mu.Lock()
	f.submitting = false
	if err == nil && status == 200 {
		f.submitted = true
	}
	f.mu.Unlock()

	if err != nil {
		msg := err.Error()
		if msg == "" {
			msg = genericSubmitMessage
		}
		f.notifier.Notify(Toast{
			Title:       "Error",
			Description: msg,
			Variant:     VariantDestructive,
			Duration:    5 * time.Second,
		})
		return err
	}

	if status == 200 {
		f.notifier.Notify(Toast{
			Title:       "Success!",
			Description: "Your daily review has been submitted.",
			Variant:     VariantDefault,
			Duration:    3 * time.Second,
		})
	}
	return nil
}

// Reset 回到初始空表单
func (f *Form) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitted = false
	f.errors = map[Field]string{}
	f.review = NewReview()
}
