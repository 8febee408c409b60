package catalog

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/jmereardon17/fsjs-techdegree-project-3/pkg/model"
)

var (
	copyPolicyOnce sync.Once
	copyPolicy     *bluemonday.Policy
	stripPolicy    = bluemonday.StrictPolicy()
)

// Sanitize returns a copy of c with every piece of display copy passed through
// the inline markup policy. Option values and ids are left untouched.
func Sanitize(c model.Catalog) model.Catalog {
	c.Title = PlainText(c.Title)
	c.Intro = strings.TrimSpace(c.Intro)
	c.JobRoles = sanitizeOptions(c.JobRoles)
	c.Sizes = sanitizeOptions(c.Sizes)
	c.Designs = sanitizeOptions(c.Designs)
	c.Colors = sanitizeOptions(c.Colors)
	c.Payments = sanitizeOptions(c.Payments)
	c.ExpMonths = sanitizeOptions(c.ExpMonths)
	c.ExpYears = sanitizeOptions(c.ExpYears)

	if len(c.Activities) > 0 {
		activities := make([]model.Activity, len(c.Activities))
		for i, activity := range c.Activities {
			activity.ID = strings.TrimSpace(activity.ID)
			activity.Label = Markup(activity.Label)
			activity.TimeSlot = strings.TrimSpace(activity.TimeSlot)
			activities[i] = activity
		}
		c.Activities = activities
	}

	c.Labels = sanitizeCopy(c.Labels)
	c.Hints = sanitizeCopy(c.Hints)
	return c
}

// Markup keeps bold and emphasis tags and strips everything else.
func Markup(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(markupPolicy().Sanitize(trimmed))
}

// PlainText strips all markup, for hosts that cannot render tags.
func PlainText(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return html.UnescapeString(strings.TrimSpace(stripPolicy.Sanitize(trimmed)))
}

func markupPolicy() *bluemonday.Policy {
	copyPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("b", "strong", "em", "i")
		copyPolicy = policy
	})
	return copyPolicy
}

func sanitizeOptions(options []model.Option) []model.Option {
	if len(options) == 0 {
		return options
	}
	out := make([]model.Option, len(options))
	for i, option := range options {
		option.Label = Markup(option.Label)
		option.Theme = strings.TrimSpace(option.Theme)
		out[i] = option
	}
	return out
}

func sanitizeCopy(in map[string]string) map[string]string {
	if len(in) == 0 {
		return in
	}
	out := make(map[string]string, len(in))
	for key, value := range in {
		out[strings.TrimSpace(key)] = Markup(value)
	}
	return out
}
