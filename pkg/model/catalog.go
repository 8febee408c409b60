package model

// Option is a single entry of a select control.
type Option struct {
	Value       string `json:"value" yaml:"value"`
	Label       string `json:"label" yaml:"label"`
	Theme       string `json:"theme,omitempty" yaml:"theme,omitempty"`
	Placeholder bool   `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
}

// Activity is one checkbox of the activities group. Activities sharing a
// non-empty TimeSlot are mutually exclusive.
type Activity struct {
	ID       string `json:"id" yaml:"id"`
	Label    string `json:"label" yaml:"label"`
	Cost     int    `json:"cost" yaml:"cost"`
	TimeSlot string `json:"timeSlot,omitempty" yaml:"timeSlot,omitempty"`
}

// Catalog describes the option data and copy a registration form is built
// from.
type Catalog struct {
	Title      string            `json:"title" yaml:"title"`
	Intro      string            `json:"intro,omitempty" yaml:"intro,omitempty"`
	JobRoles   []Option          `json:"jobRoles" yaml:"jobRoles"`
	Sizes      []Option          `json:"sizes" yaml:"sizes"`
	Designs    []Option          `json:"designs" yaml:"designs"`
	Colors     []Option          `json:"colors" yaml:"colors"`
	Activities []Activity        `json:"activities" yaml:"activities"`
	Payments   []Option          `json:"payments" yaml:"payments"`
	ExpMonths  []Option          `json:"expMonths" yaml:"expMonths"`
	ExpYears   []Option          `json:"expYears" yaml:"expYears"`
	Labels     map[string]string `json:"labels,omitempty" yaml:"labels,omitempty"`
	Hints      map[string]string `json:"hints,omitempty" yaml:"hints,omitempty"`
	Visibility map[string]string `json:"visibility,omitempty" yaml:"visibility,omitempty"`
}

// Options returns the option list backing a select control, or nil for
// controls that are not selects.
func (c Catalog) Options(id FieldID) []Option {
	switch id {
	case FieldJobRole:
		return c.JobRoles
	case FieldShirtSize:
		return c.Sizes
	case FieldShirtDesign:
		return c.Designs
	case FieldShirtColor:
		return c.Colors
	case FieldPayment:
		return c.Payments
	case FieldExpMonth:
		return c.ExpMonths
	case FieldExpYear:
		return c.ExpYears
	default:
		return nil
	}
}

// Label returns the display label for a control, falling back to its id.
func (c Catalog) Label(id FieldID) string {
	if label := c.Labels[id.String()]; label != "" {
		return label
	}
	return id.String()
}

// Hint returns the hint copy attached to a control.
func (c Catalog) Hint(id FieldID) string {
	return c.Hints[id.String()]
}

// IndexOf returns the index of the option carrying value, or -1.
func IndexOf(options []Option, value string) int {
	for i, option := range options {
		if option.Value == value {
			return i
		}
	}
	return -1
}
