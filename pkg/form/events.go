package form

import (
	"fmt"

	"github.com/jmereardon17/fsjs-techdegree-project-3/pkg/model"
)

// EventKind names an interaction event delivered by the host.
type EventKind string

const (
	EventKeyUp  EventKind = "keyup"
	EventBlur   EventKind = "blur"
	EventChange EventKind = "change"
	EventFocus  EventKind = "focus"
	EventSubmit EventKind = "submit"
)

// Event is one interaction. Target is the control the event fired on; for
// events on an activity checkbox Target is FieldActivities and Index is the
// checkbox position. Submit events carry no target.
type Event struct {
	Kind   EventKind
	Target model.FieldID
	Index  int
}

func (e Event) String() string {
	if e.Kind == EventSubmit {
		return string(e.Kind)
	}
	if e.Target == model.FieldActivities {
		return fmt.Sprintf("%s %s[%d]", e.Kind, e.Target, e.Index)
	}
	return fmt.Sprintf("%s %s", e.Kind, e.Target)
}

type listener func(f *Form, ev Event)

type listenerKey struct {
	kind   EventKind
	target model.FieldID
}

type listenerTable map[listenerKey][]listener

func (t listenerTable) on(kind EventKind, target model.FieldID, fn listener) {
	key := listenerKey{kind: kind, target: target}
	t[key] = append(t[key], fn)
}

// attachListeners builds the listener table. Required fields validate on
// blur and change, text inputs also on keyup. Interaction handlers follow.
func (f *Form) attachListeners() listenerTable {
	t := make(listenerTable)

	for _, req := range f.required {
		id := req.id
		validate := func(f *Form, _ Event) { f.validateField(id) }
		if id.TextInput() {
			t.on(EventKeyUp, id, validate)
		}
		t.on(EventBlur, id, validate)
		t.on(EventChange, id, validate)
	}

	for source := range f.watchers {
		t.on(EventChange, source, func(f *Form, _ Event) { f.applyVisibility(source) })
	}

	t.on(EventChange, model.FieldShirtDesign, func(f *Form, _ Event) { f.onDesignChange() })
	t.on(EventChange, model.FieldActivities, func(f *Form, ev Event) { f.onActivityChange(ev.Index) })
	t.on(EventFocus, model.FieldActivities, func(f *Form, ev Event) { f.onActivityFocus(ev.Index) })
	t.on(EventBlur, model.FieldActivities, func(f *Form, ev Event) { f.onActivityBlur(ev.Index) })
	t.on(EventChange, model.FieldPayment, func(f *Form, _ Event) { f.showPaymentPanel() })
	return t
}

// Dispatch delivers ev to the listeners attached to its kind and target. A
// submit event runs the submission controller; its result is returned, other
// events return a zero SubmitResult.
func (f *Form) Dispatch(ev Event) (SubmitResult, error) {
	if ev.Kind == EventSubmit {
		return f.Submit(), nil
	}
	if ev.Target == model.FieldActivities {
		if ev.Index < 0 || ev.Index >= len(f.activities) {
			return SubmitResult{}, fmt.Errorf("form: %s: activity %d: %w", ev.Kind, ev.Index, ErrOutOfRange)
		}
	} else if _, ok := f.controls[ev.Target]; !ok {
		return SubmitResult{}, fmt.Errorf("form: %s: %w", ev, ErrUnknownField)
	}

	switch ev.Kind {
	case EventFocus:
		f.focused = ev.Target
	case EventBlur:
		if f.focused == ev.Target {
			f.focused = model.FieldUnknown
		}
	}

	handlers := f.listeners[listenerKey{kind: ev.Kind, target: ev.Target}]
	f.logger.Debug().Str("event", ev.String()).Int("listeners", len(handlers)).Msg("dispatch")
	for _, fn := range handlers {
		fn(f, ev)
	}
	return SubmitResult{}, nil
}
