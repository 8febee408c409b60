package tui

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/rs/zerolog"

	"github.com/jmereardon17/fsjs-techdegree-project-3/pkg/catalog"
	"github.com/jmereardon17/fsjs-techdegree-project-3/pkg/form"
	"github.com/jmereardon17/fsjs-techdegree-project-3/pkg/model"
)

// Session walks a user through the registration form on a terminal. Every
// answer is written through the form's host API, so the same handlers that
// drive the browser page (job role, design filter, activity conflicts,
// payment panels, live validation) shape which prompts come next.
type Session struct {
	driver    PromptDriver
	theme     Theme
	intro     IntroRenderer
	wordWrap  int
	maxRounds int
	logger    zerolog.Logger
}

// New constructs a session with defaults (survey driver, glamour intro,
// three retry rounds).
func New(options ...Option) *Session {
	s := &Session{
		theme:     DefaultTheme(),
		wordWrap:  80,
		maxRounds: 3,
		logger:    zerolog.Nop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	if s.driver == nil {
		s.driver = NewSurveyDriver(nil)
	}
	if s.intro == nil {
		s.intro = glamourIntro(s.wordWrap)
	}
	return s
}

func glamourIntro(width int) IntroRenderer {
	return func(markdown string) (string, error) {
		r, err := glamour.NewTermRenderer(
			glamour.WithStylePath("dark"),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return "", err
		}
		return r.Render(markdown)
	}
}

// Run prompts for every reachable field, submits, and offers to revisit the
// failed fields while the submission stays blocked.
func (s *Session) Run(ctx context.Context, f *form.Form) (form.SubmitResult, error) {
	if ctx == nil {
		return form.SubmitResult{}, errors.New("tui: context is required")
	}
	if f == nil {
		return form.SubmitResult{}, errors.New("tui: form is required")
	}

	if err := s.showIntro(ctx, f.Catalog()); err != nil {
		return form.SubmitResult{}, err
	}
	if err := s.promptFields(ctx, f, model.Fields()); err != nil {
		return form.SubmitResult{}, err
	}

	result := f.Submit()
	for round := 0; result.Prevented && round < s.maxRounds; round++ {
		s.logger.Info().Int("round", round+1).Int("failures", len(result.Failures)).Msg("submit blocked")
		if err := s.errorf(ctx, "Registration not submitted: %s", failureSummary(f, result.Failures)); err != nil {
			return result, err
		}
		retry, err := s.driver.Confirm(ctx, ConfirmConfig{
			Message: "Fix these fields now?",
			Default: true,
		})
		if err != nil {
			return result, err
		}
		if !retry {
			return result, nil
		}
		if err := s.promptFields(ctx, f, result.Failures); err != nil {
			return result, err
		}
		result = f.Submit()
	}

	if !result.Prevented {
		if err := s.successf(ctx, "Registration submitted. %s", f.TotalText()); err != nil {
			return result, err
		}
	}
	return result, nil
}

func (s *Session) showIntro(ctx context.Context, c model.Catalog) error {
	markdown := "# " + c.Title
	switch {
	case catalog.IntroHasHeading(c.Intro):
		markdown = c.Intro
	case strings.TrimSpace(c.Intro) != "":
		markdown += "\n\n" + c.Intro
	}
	rendered, err := s.intro(markdown)
	if err != nil {
		return fmt.Errorf("tui: render intro: %w", err)
	}
	rendered = strings.TrimRight(rendered, "\n")
	if rendered == "" {
		return nil
	}
	return s.driver.Info(ctx, rendered)
}

func (s *Session) promptFields(ctx context.Context, f *form.Form, ids []model.FieldID) error {
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !reachable(f, id) {
			continue
		}
		s.logger.Debug().Str("field", id.String()).Msg("prompt")

		var err error
		switch {
		case id == model.FieldActivities:
			err = s.promptActivities(ctx, f)
		case id.Select():
			err = s.promptSelect(ctx, f, id)
		default:
			err = s.promptText(ctx, f, id)
		}
		if err != nil {
			return err
		}
		if err := s.reportInvalid(ctx, f, id); err != nil {
			return err
		}
	}
	return nil
}

// reachable reports whether a user could interact with the control right now.
func reachable(f *form.Form, id model.FieldID) bool {
	if id.PaymentScoped() && f.Payment() != model.PaymentCreditCard {
		return false
	}
	if id == model.FieldActivities {
		return true
	}
	ctrl, ok := f.Control(id)
	return ok && !ctrl.Hidden && !ctrl.Disabled
}

func (s *Session) promptText(ctx context.Context, f *form.Form, id model.FieldID) error {
	ctrl, _ := f.Control(id)
	value, err := s.driver.Input(ctx, InputConfig{
		Message: s.label(f, id),
		Default: ctrl.Value,
		Help:    s.help(f, id),
	})
	if err != nil {
		return err
	}
	if err := f.Type(id, strings.TrimRight(value, "\r\n")); err != nil {
		return fmt.Errorf("tui: %s: %w", id, err)
	}
	return f.Leave(id)
}

func (s *Session) promptSelect(ctx context.Context, f *form.Form, id model.FieldID) error {
	ctrl, _ := f.Control(id)

	var (
		choices []int
		labels  []string
	)
	for i, option := range ctrl.Options {
		if option.Hidden || option.Placeholder {
			continue
		}
		choices = append(choices, i)
		labels = append(labels, catalog.PlainText(option.Label))
	}
	if len(choices) == 0 {
		return s.errorf(ctx, "%s: %s", s.label(f, id), ErrNoOptions)
	}

	defaultIndex := slices.Index(choices, ctrl.Selected)
	if defaultIndex < 0 {
		defaultIndex = 0
	}
	picked, err := s.driver.Select(ctx, SelectConfig{
		Message:      s.label(f, id),
		Options:      labels,
		DefaultIndex: defaultIndex,
		Help:         s.help(f, id),
	})
	if err != nil {
		return err
	}
	if picked < 0 || picked >= len(choices) {
		return fmt.Errorf("tui: %s: selection %d: %w", id, picked, ErrNoOptions)
	}

	value := ctrl.Options[choices[picked]].Value
	if err := f.Choose(id, value); err != nil {
		return fmt.Errorf("tui: %s: %w", id, err)
	}
	return nil
}

// promptActivities offers every activity at once. Deselections are applied
// before selections so slots freed by an unchecked box can be taken in the
// same answer. A box still blocked by a same-slot choice is reported, not
// forced.
func (s *Session) promptActivities(ctx context.Context, f *form.Form) error {
	boxes := f.Activities()
	options := make([]string, len(boxes))
	var checked []int
	for i, box := range boxes {
		options[i] = activityLabel(box)
		if box.Checked {
			checked = append(checked, i)
		}
	}

	picked, err := s.driver.MultiSelect(ctx, SelectConfig{
		Message:  s.label(f, model.FieldActivities),
		Options:  options,
		Defaults: checked,
		Help:     s.help(f, model.FieldActivities),
		PageSize: len(options),
	})
	if err != nil {
		return err
	}

	for _, i := range checked {
		if slices.Contains(picked, i) {
			continue
		}
		if err := f.Toggle(i); err != nil {
			return fmt.Errorf("tui: activities: %w", err)
		}
	}
	for _, i := range picked {
		if i < 0 || i >= len(boxes) || boxes[i].Checked {
			continue
		}
		err := f.Toggle(i)
		switch {
		case errors.Is(err, form.ErrDisabled):
			if err := s.errorf(ctx, "%s overlaps another activity on %s", catalog.PlainText(boxes[i].Label), boxes[i].TimeSlot); err != nil {
				return err
			}
		case err != nil:
			return fmt.Errorf("tui: activities: %w", err)
		}
	}

	// Leaving the group validates it even when nothing changed.
	if err := f.Leave(model.FieldActivities); err != nil {
		return err
	}
	return s.driver.Info(ctx, f.TotalText())
}

func activityLabel(box *form.Checkbox) string {
	label := catalog.PlainText(box.Label)
	if box.TimeSlot != "" {
		label += ", " + box.TimeSlot
	}
	return fmt.Sprintf("%s ($%d)", label, box.Cost)
}

func (s *Session) reportInvalid(ctx context.Context, f *form.Form, id model.FieldID) error {
	p, ok := f.Presentation(id)
	if !ok || !p.Invalid() {
		return nil
	}
	return s.errorf(ctx, "%s", catalog.PlainText(p.HintText))
}

func (s *Session) label(f *form.Form, id model.FieldID) string {
	return catalog.PlainText(f.Catalog().Label(id))
}

func (s *Session) help(f *form.Form, id model.FieldID) string {
	if !slices.Contains(f.RequiredFields(), id) {
		return ""
	}
	return catalog.PlainText(f.Catalog().Hint(id))
}

func (s *Session) errorf(ctx context.Context, format string, args ...any) error {
	msg := s.theme.ErrorPrefix + fmt.Sprintf(format, args...)
	return s.driver.Info(ctx, s.theme.Error.Render(msg))
}

func (s *Session) successf(ctx context.Context, format string, args ...any) error {
	msg := s.theme.SuccessPrefix + fmt.Sprintf(format, args...)
	return s.driver.Info(ctx, s.theme.Success.Render(msg))
}

func failureSummary(f *form.Form, failures []model.FieldID) string {
	names := make([]string, 0, len(failures))
	for _, id := range failures {
		names = append(names, catalog.PlainText(f.Catalog().Label(id)))
	}
	return strings.Join(names, ", ")
}
