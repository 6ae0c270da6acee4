package form

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")).MarginBottom(1)
	titleStyle   = lipgloss.NewStyle().Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	quoteStyle   = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("245"))
	boxStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("99")).Padding(1, 3)
)

// ToastPrinter 在终端里打印提示
type ToastPrinter struct {
	W io.Writer
}

func (p ToastPrinter) Notify(t Toast) {
	style := successStyle
	if t.Variant == VariantDestructive {
		style = errorStyle
	}
	fmt.Fprintf(p.W, "%s %s\n", style.Render(titleStyle.Render(t.Title)), t.Description)
}

// Header 页面标题
func Header(now time.Time) string {
	return headerStyle.Render("Review for " + now.Format("January 02, 2006"))
}

// SuccessScreen 提交成功后的终态
func SuccessScreen() string {
	body := strings.Join([]string{
		titleStyle.Render("Thank you for your daily reflection!"),
		"",
		quoteStyle.Render(`"The only way to do great work is to love what you do." - Steve Jobs`),
	}, "\n")
	return boxStyle.Render(body)
}

// RunPrompt 交互式填写并提交，直到用户不再继续
func RunPrompt(ctx context.Context, f *Form, out io.Writer) error {
	fmt.Fprintln(out, Header(time.Now()))

	for {
		if err := fill(ctx, f); err != nil {
			return err
		}

		err := f.Submit(ctx)
		switch {
		case errors.Is(err, ErrValidation):
			for _, field := range TextFields {
				if msg, ok := f.Errors()[field]; ok {
					fmt.Fprintln(out, errorStyle.Render("  • "+msg))
				}
			}
			continue
		case err != nil:
			retry, cerr := confirm(ctx, "Try again?")
			if cerr != nil {
				return cerr
			}
			if !retry {
				return err
			}
			continue
		case !f.Submitted():
			continue
		}

		fmt.Fprintln(out, SuccessScreen())
		again, err := confirm(ctx, "Write Another Review?")
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
		f.Reset()
	}
}

// fill 以当前内容为初值展示表单，结束后写回
func fill(ctx context.Context, f *Form) error {
	review := f.Review()
	required := map[Field]bool{}
	for _, field := range f.Required() {
		required[field] = true
	}

	values := map[Field]*string{}
	for _, field := range TextFields {
		v := review.Get(field)
		values[field] = &v
	}
	rating := review.SelfRating

	title := func(field Field) string {
		if required[field] {
			return field.Label() + " *"
		}
		return field.Label()
	}

	ratingOptions := make([]huh.Option[int], 0, MaxRating)
	for i := MinRating; i <= MaxRating; i++ {
		ratingOptions = append(ratingOptions, huh.NewOption(strings.Repeat("★", i), i))
	}

	fields := []huh.Field{
		huh.NewInput().
			Title(title(FieldName)).
			Placeholder(FieldName.Placeholder()).
			Value(values[FieldName]),
		huh.NewSelect[int]().
			Title("Rate Your Day (1-5)").
			Options(ratingOptions...).
			Value(&rating),
	}
	for _, field := range TextFields[1:] {
		fields = append(fields, huh.NewText().
			Title(title(field)).
			Placeholder(field.Placeholder()).
			Value(values[field]))
	}

	if err := huh.NewForm(huh.NewGroup(fields...)).RunWithContext(ctx); err != nil {
		return fmt.Errorf("interactive form error: %w", err)
	}

	for field, v := range values {
		if err := f.SetField(field, *v); err != nil {
			return err
		}
	}
	return f.SetRating(rating)
}

func confirm(ctx context.Context, question string) (bool, error) {
	var yes bool
	err := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(question).
			Affirmative("Yes").
			Negative("No").
			Value(&yes),
	)).RunWithContext(ctx)
	if err != nil {
		return false, fmt.Errorf("interactive form error: %w", err)
	}
	return yes, nil
}
