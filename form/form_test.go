package form

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSubmitter struct {
	mu     sync.Mutex
	calls  []Review
	status int
	err    error
	onCall func()
}

func (s *fakeSubmitter) Submit(_ context.Context, r Review) (int, error) {
	if s.onCall != nil {
		s.onCall()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, r)
	return s.status, s.err
}

type toastRecorder struct {
	toasts []Toast
}

func (r *toastRecorder) Notify(t Toast) { r.toasts = append(r.toasts, t) }

func (r *toastRecorder) last() Toast {
	if len(r.toasts) == 0 {
		return Toast{}
	}
	return r.toasts[len(r.toasts)-1]
}

func fillValid(t *testing.T, f *Form) {
	t.Helper()
	require.NoError(t, f.SetField(FieldName, "Ada"))
	require.NoError(t, f.SetField(FieldAchievements, "Shipped X"))
	require.NoError(t, f.SetField(FieldGoals, "Ship Y"))
	require.NoError(t, f.SetField(FieldImprovement, "Focus"))
	require.NoError(t, f.SetRating(4))
}

func TestNewFormInitialState(t *testing.T) {
	f := New(&fakeSubmitter{status: 200})

	assert.Equal(t, NewReview(), f.Review())
	assert.Equal(t, 1, f.Review().SelfRating)
	assert.Equal(t, DefaultRequired, f.Required())
	assert.False(t, f.Submitting())
	assert.False(t, f.Submitted())
	assert.Empty(t, f.Errors())
}

func TestSubmitValidationFailure(t *testing.T) {
	tests := []struct {
		name  string
		field Field
		value string
		msg   string
	}{
		{"empty name", FieldName, "", "Name is required"},
		{"whitespace name", FieldName, "   \t", "Name is required"},
		{"empty achievements", FieldAchievements, "", "Please share at least one achievement"},
		{"whitespace goals", FieldGoals, "\n ", "Please set at least one goal"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := &fakeSubmitter{status: 200}
			toasts := &toastRecorder{}
			f := New(sub, WithNotifier(toasts))
			fillValid(t, f)
			require.NoError(t, f.SetField(tt.field, tt.value))

			err := f.Submit(context.Background())
			assert.True(t, errors.Is(err, ErrValidation))
			assert.Empty(t, sub.calls, "no request is sent")
			assert.Equal(t, tt.msg, f.Errors()[tt.field])
			assert.Equal(t, Toast{Title: "Validation Error", Description: "Please fill in all required fields", Variant: VariantDestructive}, toasts.last())
			assert.False(t, f.Submitted())
		})
	}
}

func TestUncheckedFieldsMayBeEmpty(t *testing.T) {
	sub := &fakeSubmitter{status: 200}
	f := New(sub)
	require.NoError(t, f.SetField(FieldName, "Ada"))
	require.NoError(t, f.SetField(FieldAchievements, "a"))
	require.NoError(t, f.SetField(FieldGoals, "g"))

	require.NoError(t, f.Submit(context.Background()))
	assert.Len(t, sub.calls, 1)
}

func TestWithRequiredExtendsCheckedSet(t *testing.T) {
	sub := &fakeSubmitter{status: 200}
	f := New(sub, WithRequired(FieldName, FieldAchievements, FieldGoals, FieldChallenges, FieldImprovement))
	fillValid(t, f)

	err := f.Submit(context.Background())
	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, map[Field]string{FieldChallenges: "Challenges is required"}, f.Errors())
	assert.Empty(t, sub.calls)

	require.NoError(t, f.SetField(FieldChallenges, "Flaky CI"))
	assert.Empty(t, f.Errors(), "typing clears the field error")
	require.NoError(t, f.Submit(context.Background()))
	assert.Len(t, sub.calls, 1)
}

func TestRequiredReturnsCopy(t *testing.T) {
	f := New(&fakeSubmitter{status: 200}, WithRequired(FieldName))

	got := f.Required()
	got[0] = FieldFeedback

	assert.Equal(t, []Field{FieldName}, f.Required())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = f.Required()
			_ = f.Validate()
		}()
	}
	wg.Wait()
}

func TestSubmitSuccess(t *testing.T) {
	toasts := &toastRecorder{}
	sub := &fakeSubmitter{status: 200}
	f := New(sub, WithNotifier(toasts))
	fillValid(t, f)
	require.NoError(t, f.SetField(FieldFeedback, "more coffee"))

	require.NoError(t, f.Submit(context.Background()))

	require.Len(t, sub.calls, 1)
	assert.Equal(t, Review{
		Name:         "Ada",
		SelfRating:   4,
		Achievements: "Shipped X",
		Goals:        "Ship Y",
		Improvement:  "Focus",
		Feedback:     "more coffee",
	}, sub.calls[0])
	assert.True(t, f.Submitted())
	assert.False(t, f.Submitting())
	assert.Equal(t, "Success!", toasts.last().Title)
	assert.Equal(t, "Your daily review has been submitted.", toasts.last().Description)

	assert.ErrorIs(t, f.Submit(context.Background()), ErrAlreadySubmitted)
	assert.Len(t, sub.calls, 1)

	f.Reset()
	assert.False(t, f.Submitted())
	assert.Equal(t, NewReview(), f.Review())
	assert.Empty(t, f.Errors())
}

func TestSubmitNon200SuccessStatusDoesNotTransition(t *testing.T) {
	toasts := &toastRecorder{}
	f := New(&fakeSubmitter{status: 201}, WithNotifier(toasts))
	fillValid(t, f)

	require.NoError(t, f.Submit(context.Background()))
	assert.False(t, f.Submitted())
	assert.Empty(t, toasts.toasts)
}

func TestSubmitFailureKeepsFields(t *testing.T) {
	tests := []struct {
		name string
		sub  *fakeSubmitter
		desc string
	}{
		{"server error", &fakeSubmitter{status: 500, err: &StatusError{StatusCode: 500}}, "Request failed with status code 500"},
		{"network error", &fakeSubmitter{err: errors.New("dial tcp: connection refused")}, "dial tcp: connection refused"},
		{"error without message", &fakeSubmitter{err: errors.New("")}, "An unexpected error occurred"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toasts := &toastRecorder{}
			f := New(tt.sub, WithNotifier(toasts))
			fillValid(t, f)
			before := f.Review()

			err := f.Submit(context.Background())
			require.Error(t, err)
			assert.False(t, f.Submitted())
			assert.False(t, f.Submitting())
			assert.Equal(t, before, f.Review())
			assert.Equal(t, Toast{Title: "Error", Description: tt.desc, Variant: VariantDestructive, Duration: toasts.last().Duration}, toasts.last())
			assert.NotZero(t, toasts.last().Duration)

			tt.sub.err, tt.sub.status = nil, 200
			require.NoError(t, f.Submit(context.Background()), "retry is possible")
			assert.True(t, f.Submitted())
		})
	}
}

func TestSubmittingFlagDuringRequest(t *testing.T) {
	var f *Form
	var seen bool
	sub := &fakeSubmitter{status: 200}
	sub.onCall = func() { seen = f.Submitting() }
	f = New(sub)
	fillValid(t, f)

	require.NoError(t, f.Submit(context.Background()))
	assert.True(t, seen)
	assert.False(t, f.Submitting())
}

func TestConcurrentSubmitsAreNotBlocked(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{}, 2)
	sub := &fakeSubmitter{status: 200}
	sub.onCall = func() {
		started <- struct{}{}
		<-release
	}
	f := New(sub)
	fillValid(t, f)

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = f.Submit(context.Background())
		}()
	}
	<-started
	<-started
	close(release)
	wg.Wait()

	assert.Len(t, sub.calls, 2, "the submitting flag is visual only")
}

func TestSetRatingStaysInRange(t *testing.T) {
	f := New(&fakeSubmitter{})
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 500; i++ {
		click := rng.Intn(9) - 2 // -2..6
		prev := f.Review().SelfRating
		err := f.SetRating(click)
		got := f.Review().SelfRating
		if click < MinRating || click > MaxRating {
			assert.ErrorIs(t, err, ErrRatingOutOfRange)
			assert.Equal(t, prev, got)
		} else {
			assert.NoError(t, err)
			assert.Equal(t, click, got)
		}
		assert.True(t, got >= MinRating && got <= MaxRating)
	}
}

func TestSetFieldUnknown(t *testing.T) {
	f := New(&fakeSubmitter{})
	assert.ErrorIs(t, f.SetField(Field("selfRating"), "3"), ErrUnknownField)
}

func TestParseFields(t *testing.T) {
	fields, err := ParseFields([]string{"name", "dreamTeam"})
	require.NoError(t, err)
	assert.Equal(t, []Field{FieldName, FieldDreamTeam}, fields)

	_, err = ParseFields([]string{"name", "dream_team"})
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestEveryTextFieldHasCopy(t *testing.T) {
	for _, field := range TextFields {
		assert.NotEmpty(t, field.Label(), field)
		assert.NotEmpty(t, field.Placeholder(), field)
		assert.NotEmpty(t, requiredMessages[field], field)
	}
}
