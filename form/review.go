package form

import "fmt"

// Field 表单中的文本字段
type Field string

const (
	FieldName         Field = "name"
	FieldAchievements Field = "achievements"
	FieldChallenges   Field = "challenges"
	FieldGoals        Field = "goals"
	FieldFeedback     Field = "feedback"
	FieldDreamTeam    Field = "dreamTeam"
	FieldImprovement  Field = "improvement"
)

// TextFields 按页面展示顺序排列
var TextFields = []Field{
	FieldName,
	FieldAchievements,
	FieldChallenges,
	FieldDreamTeam,
	FieldImprovement,
	FieldGoals,
	FieldFeedback,
}

// DefaultRequired 实际校验的必填字段。页面上所有文本字段都标了星号，
// 但只有这三个会被检查。
var DefaultRequired = []Field{FieldName, FieldAchievements, FieldGoals}

const (
	MinRating     = 1
	MaxRating     = 5
	DefaultRating = MinRating
)

var labels = map[Field]string{
	FieldName:         "Your Name",
	FieldAchievements: "What did you achieve today?",
	FieldChallenges:   "What challenges or blockers did you face?",
	FieldDreamTeam:    "If you were to start a startup, describe your ideal 7-member team",
	FieldImprovement:  "What's one thing you would improve about yourself if you could?",
	FieldGoals:        "What's your main goal for tomorrow?",
	FieldFeedback:     "Any ideas, feedback, or thoughts you'd like to share?",
}

var placeholders = map[Field]string{
	FieldName:         "Enter your name...",
	FieldAchievements: "List your accomplishments...",
	FieldChallenges:   "Describe any obstacles...",
	FieldDreamTeam:    "Describe the roles, skills, and personalities you'd want in your dream team...",
	FieldImprovement:  "Share your thoughts on personal growth...",
	FieldGoals:        "Set your primary objective...",
	FieldFeedback:     "Share your thoughts...",
}

var requiredMessages = map[Field]string{
	FieldName:         "Name is required",
	FieldAchievements: "Please share at least one achievement",
	FieldGoals:        "Please set at least one goal",
	FieldChallenges:   "Challenges is required",
	FieldFeedback:     "Feedback is required",
	FieldDreamTeam:    "Dream team is required",
	FieldImprovement:  "Improvement is required",
}

func (f Field) Label() string       { return labels[f] }
func (f Field) Placeholder() string { return placeholders[f] }

// ParseField 解析字段名，大小写必须与 JSON key 一致
func ParseField(s string) (Field, error) {
	f := Field(s)
	if _, ok := labels[f]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownField, s)
	}
	return f, nil
}

// ParseFields 解析配置里的必填字段列表
func ParseFields(names []string) ([]Field, error) {
	fields := make([]Field, 0, len(names))
	for _, name := range names {
		f, err := ParseField(name)
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}
	return fields, nil
}

// Review 一次复盘提交的全部内容，JSON 即请求体
type Review struct {
	Name         string `json:"name"`
	SelfRating   int    `json:"selfRating"`
	Achievements string `json:"achievements"`
	Challenges   string `json:"challenges"`
	Goals        string `json:"goals"`
	Feedback     string `json:"feedback"`
	DreamTeam    string `json:"dreamTeam"`
	Improvement  string `json:"improvement"`
}

// NewReview 初始状态：文本全空，评分为 1
func NewReview() Review {
	return Review{SelfRating: DefaultRating}
}

func (r *Review) Get(f Field) string {
	if p := r.field(f); p != nil {
		return *p
	}
	return ""
}

func (r *Review) field(f Field) *string {
	switch f {
	case FieldName:
		return &r.Name
	case FieldAchievements:
		return &r.Achievements
	case FieldChallenges:
		return &r.Challenges
	case FieldGoals:
		return &r.Goals
	case FieldFeedback:
		return &r.Feedback
	case FieldDreamTeam:
		return &r.DreamTeam
	case FieldImprovement:
		return &r.Improvement
	}
	return nil
}
