package form

import (
	"slices"
	"strings"

	"github.com/jmereardon17/fsjs-techdegree-project-3/pkg/model"
)

// Presentation class names and hint display values.
const (
	ClassValid    = "valid"
	ClassNotValid = "not-valid"
	ClassDisabled = "disabled"
	ClassFocus    = "focus"

	HintDisplayBlock   = "block"
	HintDisplayDefault = ""
)

// ClassList is an ordered set of class names.
type ClassList []string

// Add appends name unless it is already present.
func (c *ClassList) Add(name string) {
	if !c.Contains(name) {
		*c = append(*c, name)
	}
}

// Remove drops name if present.
func (c *ClassList) Remove(name string) {
	*c = slices.DeleteFunc(*c, func(s string) bool { return s == name })
}

// Contains reports whether name is present.
func (c ClassList) Contains(name string) bool {
	return slices.Contains(c, name)
}

// String joins the classes the way a class attribute would.
func (c ClassList) String() string {
	return strings.Join(c, " ")
}

// Presentation is the validity state of a required field: the classes of its
// enclosing label and the hint shown beneath it.
type Presentation struct {
	Classes     ClassList
	HintDisplay string
	HintText    string
}

// HintVisible reports whether the hint is displayed.
func (p Presentation) HintVisible() bool {
	return p.HintDisplay == HintDisplayBlock
}

// Invalid reports whether the field is currently marked invalid.
func (p Presentation) Invalid() bool {
	return p.Classes.Contains(ClassNotValid)
}

func (p Presentation) clone() Presentation {
	p.Classes = slices.Clone(p.Classes)
	return p
}

// showError marks id invalid and reveals its hint.
func (f *Form) showError(id model.FieldID) {
	p, ok := f.presentation[id]
	if !ok {
		return
	}
	p.Classes.Add(ClassNotValid)
	p.Classes.Remove(ClassValid)
	p.HintDisplay = HintDisplayBlock
}

// hideError marks id valid and resets its hint display.
func (f *Form) hideError(id model.FieldID) {
	p, ok := f.presentation[id]
	if !ok {
		return
	}
	p.Classes.Add(ClassValid)
	p.Classes.Remove(ClassNotValid)
	p.HintDisplay = HintDisplayDefault
}

// Presentation returns a copy of the presentation state of a required field.
func (f *Form) Presentation(id model.FieldID) (Presentation, bool) {
	p, ok := f.presentation[id]
	if !ok {
		return Presentation{}, false
	}
	return p.clone(), true
}
