package wizard

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Collect asks every default question that o leaves open and merges the
// replies over the resolved overrides.
func Collect(ctx context.Context, o Overrides, d Defaults, noColor bool) (*Answers, error) {
	answers := Resolve(o, d)
	questions := Pending(DefaultQuestions(d), o)
	if len(questions) == 0 {
		return answers, nil
	}
	return Run(ctx, questions, answers, noColor)
}

// Run executes the wizard, storing replies into base (a fresh Answers when
// nil). Each question runs as its own huh.Form; huh v0.8.x mis-scrolls
// when several groups share one viewport.
func Run(ctx context.Context, questions []Question, base *Answers, noColor bool) (*Answers, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	answers := base
	if answers == nil {
		answers = &Answers{}
	}
	theme := newWizardTheme()
	if noColor {
		theme = huh.ThemeBase()
	}

	for i := range questions {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		form := huh.NewForm(buildQuestionGroup(&questions[i], answers)).
			WithTheme(theme).
			WithAccessible(false)

		if err := form.RunWithContext(ctx); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil, ErrCancelled
			}
			return nil, fmt.Errorf("wizard error: %w", err)
		}
	}

	return answers, nil
}

// buildQuestionGroup creates a huh.Group holding the field for q.
func buildQuestionGroup(q *Question, answers *Answers) *huh.Group {
	var field huh.Field

	switch q.Type {
	case QuestionTypeSelect:
		field = buildSelectField(q, answers)
	case QuestionTypeConfirm:
		field = buildConfirmField(q, answers)
	default:
		field = buildInputField(q, answers)
	}

	return huh.NewGroup(field)
}

func buildSelectField(q *Question, answers *Answers) *huh.Select[string] {
	selected := q.Default
	saveAnswer(q.ID, selected, answers)

	opts := make([]huh.Option[string], len(q.Options))
	for i, opt := range q.Options {
		key := opt.Label
		if opt.Desc != "" {
			key = opt.Label + " - " + opt.Desc
		}
		opts[i] = huh.NewOption(key, opt.Value)
	}

	id := q.ID
	return huh.NewSelect[string]().
		Title(q.Title).
		Description(q.Description).
		Options(opts...).
		Value(&selected).
		Validate(func(val string) error {
			saveAnswer(id, val, answers)
			return nil
		})
}

func buildConfirmField(q *Question, answers *Answers) *huh.Confirm {
	value, _ := strconv.ParseBool(q.Default)
	saveAnswer(q.ID, strconv.FormatBool(value), answers)

	id := q.ID
	return huh.NewConfirm().
		Title(q.Title).
		Description(q.Description).
		Affirmative("Yes").
		Negative("No").
		Value(&value).
		Validate(func(val bool) error {
			saveAnswer(id, strconv.FormatBool(val), answers)
			return nil
		})
}

func buildInputField(q *Question, answers *Answers) *huh.Input {
	var value string

	inp := huh.NewInput().
		Title(q.Title).
		Description(q.Description).
		Value(&value)
	if q.Default != "" {
		inp = inp.Placeholder(q.Default)
	}

	qq := *q
	return inp.Validate(func(val string) error {
		v, err := validateInput(&qq, val)
		if err != nil {
			return err
		}
		saveAnswer(qq.ID, v, answers)
		return nil
	})
}

// validateInput trims val, falls back to the question default when empty,
// and enforces Required.
func validateInput(q *Question, val string) (string, error) {
	v := strings.TrimSpace(val)
	if v == "" {
		v = q.Default
	}
	if q.Required && v == "" {
		return "", ErrRequired
	}
	return v, nil
}

// saveAnswer stores an answer in the result.
func saveAnswer(id, value string, answers *Answers) {
	switch id {
	case QuestionProjectName:
		answers.ProjectName = value
	case QuestionDockerize:
		answers.Dockerize = value == "true"
	case QuestionPackageManager:
		answers.PackageManager = value
	}
}

// Wizard brand colors.
const (
	ColorPrimary   = "#2E86AB"
	ColorSecondary = "#A23B72"
	ColorSuccess   = "#10B981"
	ColorError     = "#EF4444"
	ColorText      = "#E5E7EB"
	ColorMuted     = "#9CA3AF"
	ColorBorder    = "#4B5563"
)

// newWizardTheme creates a huh.Theme with restsnap branding.
func newWizardTheme() *huh.Theme {
	t := huh.ThemeBase()

	primary := lipgloss.AdaptiveColor{Light: "#1F6F8B", Dark: ColorPrimary}
	secondary := lipgloss.AdaptiveColor{Light: "#7A2C56", Dark: ColorSecondary}
	green := lipgloss.AdaptiveColor{Light: "#059669", Dark: ColorSuccess}
	red := lipgloss.AdaptiveColor{Light: "#DC2626", Dark: ColorError}
	text := lipgloss.AdaptiveColor{Light: "#111827", Dark: ColorText}
	muted := lipgloss.AdaptiveColor{Light: "#6B7280", Dark: ColorMuted}
	border := lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: ColorBorder}

	t.Focused.Base = t.Focused.Base.BorderForeground(border)
	t.Focused.Card = t.Focused.Base
	t.Focused.Title = t.Focused.Title.Foreground(primary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(muted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(red)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(red)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(primary).SetString("▸ ")
	t.Focused.Option = t.Focused.Option.Foreground(text)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(green)
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(primary)
	t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(muted)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(secondary)
	t.Focused.FocusedButton = t.Focused.FocusedButton.
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(primary)
	t.Focused.BlurredButton = t.Focused.BlurredButton.
		Foreground(text).
		Background(lipgloss.AdaptiveColor{Light: "#E5E7EB", Dark: "#374151"})

	t.Blurred = t.Focused
	t.Blurred.Base = t.Focused.Base.BorderStyle(lipgloss.HiddenBorder())
	t.Blurred.Card = t.Blurred.Base

	t.Group.Title = t.Focused.Title
	t.Group.Description = t.Focused.Description

	return t
}
