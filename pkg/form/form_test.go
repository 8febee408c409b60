package form

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jmereardon17/fsjs-techdegree-project-3/pkg/catalog"
	"github.com/jmereardon17/fsjs-techdegree-project-3/pkg/model"
)

func newTestForm(t *testing.T) *Form {
	t.Helper()
	f, err := New(catalog.MustDefault())
	if err != nil {
		t.Fatalf("new form: %v", err)
	}
	return f
}

func mustDo(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func activity(t *testing.T, f *Form, id string) int {
	t.Helper()
	idx := f.ActivityIndex(id)
	if idx < 0 {
		t.Fatalf("activity %q not in catalog", id)
	}
	return idx
}

func TestNewInitialState(t *testing.T) {
	f := newTestForm(t)

	if got := f.Focused(); got != model.FieldName {
		t.Fatalf("expected name to be focused, got %s", got)
	}
	other, _ := f.Control(model.FieldOtherJobRole)
	if !other.Hidden {
		t.Fatalf("expected other job role to be hidden")
	}
	color, _ := f.Control(model.FieldShirtColor)
	if !color.Disabled {
		t.Fatalf("expected color selector to be disabled")
	}
	if got := f.Payment(); got != model.PaymentCreditCard {
		t.Fatalf("expected credit-card payment, got %q", got)
	}

	hidden := map[string]bool{}
	for _, panel := range f.Panels() {
		hidden[panel.ID] = panel.Hidden
	}
	want := map[string]bool{"credit-card": false, "paypal": true, "bitcoin": true}
	if diff := cmp.Diff(want, hidden); diff != "" {
		t.Fatalf("panel visibility mismatch (-want +got):\n%s", diff)
	}

	if got := f.TotalText(); got != "Total: $0" {
		t.Fatalf("unexpected total text %q", got)
	}

	wantRequired := []model.FieldID{
		model.FieldName, model.FieldEmail, model.FieldActivities,
		model.FieldExpMonth, model.FieldExpYear, model.FieldCardNumber, model.FieldZip, model.FieldCVV,
	}
	if diff := cmp.Diff(wantRequired, f.RequiredFields()); diff != "" {
		t.Fatalf("required fields mismatch (-want +got):\n%s", diff)
	}
	for _, id := range wantRequired {
		p, ok := f.Presentation(id)
		if !ok {
			t.Fatalf("missing presentation for %s", id)
		}
		if len(p.Classes) != 0 || p.HintVisible() {
			t.Fatalf("expected untouched presentation for %s, got %+v", id, p)
		}
	}
}

func TestNewRequiresCreditCard(t *testing.T) {
	c := catalog.MustDefault()
	c.Payments = []model.Option{
		{Value: "select method", Label: "Select", Placeholder: true},
		{Value: "paypal", Label: "PayPal"},
	}
	if _, err := New(c); err == nil {
		t.Fatalf("expected error without a credit-card option")
	}
}

func TestHideErrorIsIdempotent(t *testing.T) {
	f := newTestForm(t)

	f.hideError(model.FieldName)
	once, _ := f.Presentation(model.FieldName)
	f.hideError(model.FieldName)
	twice, _ := f.Presentation(model.FieldName)

	if diff := cmp.Diff(once, twice); diff != "" {
		t.Fatalf("hideError not idempotent (-once +twice):\n%s", diff)
	}
	want := Presentation{Classes: ClassList{ClassValid}, HintDisplay: HintDisplayDefault, HintText: "Name field cannot be blank"}
	if diff := cmp.Diff(want, twice); diff != "" {
		t.Fatalf("presentation mismatch (-want +got):\n%s", diff)
	}
}

func TestShowErrorIsIdempotentAndInverse(t *testing.T) {
	f := newTestForm(t)

	f.showError(model.FieldZip)
	f.showError(model.FieldZip)
	p, _ := f.Presentation(model.FieldZip)
	if diff := cmp.Diff(ClassList{ClassNotValid}, p.Classes); diff != "" {
		t.Fatalf("classes mismatch (-want +got):\n%s", diff)
	}
	if !p.HintVisible() || !p.Invalid() {
		t.Fatalf("expected visible hint and invalid mark, got %+v", p)
	}

	f.hideError(model.FieldZip)
	p, _ = f.Presentation(model.FieldZip)
	if diff := cmp.Diff(ClassList{ClassValid}, p.Classes); diff != "" {
		t.Fatalf("classes mismatch after hide (-want +got):\n%s", diff)
	}
	if p.HintVisible() {
		t.Fatalf("expected hint to be hidden")
	}

	other, _ := f.Presentation(model.FieldCVV)
	if len(other.Classes) != 0 {
		t.Fatalf("presentation of unrelated field changed: %+v", other)
	}
}

func TestJobRoleOtherTogglesFreeText(t *testing.T) {
	f := newTestForm(t)
	other, _ := f.Control(model.FieldOtherJobRole)

	mustDo(t, f.Choose(model.FieldJobRole, model.OtherJobRole))
	if other.Hidden {
		t.Fatalf("expected other job role to be shown")
	}
	mustDo(t, f.Type(model.FieldOtherJobRole, "Rocket scientist"))

	mustDo(t, f.Choose(model.FieldJobRole, "student"))
	if !other.Hidden {
		t.Fatalf("expected other job role to be hidden again")
	}
	if err := f.Type(model.FieldOtherJobRole, "x"); !errors.Is(err, ErrHidden) {
		t.Fatalf("expected ErrHidden, got %v", err)
	}
}

func TestDesignFiltersColors(t *testing.T) {
	f := newTestForm(t)
	mustDo(t, f.Choose(model.FieldShirtDesign, "js-puns"))

	color, _ := f.Control(model.FieldShirtColor)
	if color.Disabled {
		t.Fatalf("expected color selector to be enabled")
	}

	var visible []string
	for _, option := range color.Options {
		if !option.Hidden {
			visible = append(visible, option.Value)
		}
	}
	if diff := cmp.Diff([]string{"cornflowerblue", "darkslategrey", "gold"}, visible); diff != "" {
		t.Fatalf("visible colors mismatch (-want +got):\n%s", diff)
	}
	if got := color.SelectedValue(); got != "cornflowerblue" {
		t.Fatalf("expected first js-puns color selected, got %q", got)
	}
	if got := len(color.Options); got != 7 {
		t.Fatalf("options must be hidden, not removed: got %d", got)
	}

	if err := f.Choose(model.FieldShirtColor, "tomato"); !errors.Is(err, ErrHiddenOption) {
		t.Fatalf("expected ErrHiddenOption, got %v", err)
	}

	mustDo(t, f.Choose(model.FieldShirtDesign, "heart-js"))
	if got := color.SelectedValue(); got != "tomato" {
		t.Fatalf("expected first heart-js color selected, got %q", got)
	}
}

func TestDesignWithoutColorsClearsSelection(t *testing.T) {
	c := catalog.MustDefault()
	c.Designs = append(c.Designs, model.Option{Value: "plain", Label: "Plain"})
	f, err := New(c)
	mustDo(t, err)

	mustDo(t, f.Choose(model.FieldShirtDesign, "plain"))
	color, _ := f.Control(model.FieldShirtColor)
	if color.Selected != -1 {
		t.Fatalf("expected cleared color selection, got %d", color.Selected)
	}
	for _, option := range color.Options {
		if !option.Hidden {
			t.Fatalf("expected every color hidden, %q is visible", option.Value)
		}
	}
}

func TestColorSelectorDisabledUntilDesign(t *testing.T) {
	f := newTestForm(t)
	if err := f.Choose(model.FieldShirtColor, "gold"); !errors.Is(err, ErrDisabled) {
		t.Fatalf("expected ErrDisabled, got %v", err)
	}
}

func TestActivitiesMutualExclusion(t *testing.T) {
	f := newTestForm(t)
	frameworks := activity(t, f, "js-frameworks")
	express := activity(t, f, "express")
	libs := activity(t, f, "js-libs")
	boxes := f.Activities()

	mustDo(t, f.Toggle(frameworks))
	if !boxes[express].Disabled {
		t.Fatalf("expected express to be disabled after checking frameworks")
	}
	if !boxes[express].LabelClasses.Contains(ClassDisabled) {
		t.Fatalf("expected express label to be marked disabled")
	}
	if boxes[frameworks].Disabled {
		t.Fatalf("toggled box must stay enabled")
	}
	if boxes[libs].Disabled {
		t.Fatalf("box in another slot must stay enabled")
	}
	if err := f.Toggle(express); !errors.Is(err, ErrDisabled) {
		t.Fatalf("expected ErrDisabled toggling a conflicted box, got %v", err)
	}

	mustDo(t, f.Toggle(frameworks))
	if boxes[express].Disabled || boxes[express].LabelClasses.Contains(ClassDisabled) {
		t.Fatalf("expected express re-enabled after unchecking frameworks")
	}
}

func TestActivitiesWithoutSlotNeverConflict(t *testing.T) {
	f := newTestForm(t)
	main := activity(t, f, "all")

	mustDo(t, f.Toggle(main))
	for i, box := range f.Activities() {
		if box.Disabled {
			t.Fatalf("activity %d disabled by a slotless activity", i)
		}
	}
}

func TestActivitiesSharedSlotTotal(t *testing.T) {
	c := catalog.MustDefault()
	c.Activities = []model.Activity{
		{ID: "workshop-a", Label: "Workshop A", Cost: 100, TimeSlot: "Tue 9am"},
		{ID: "workshop-b", Label: "Workshop B", Cost: 150, TimeSlot: "Tue 9am"},
		{ID: "keynote", Label: "Keynote", Cost: 200},
	}
	f, err := New(c)
	mustDo(t, err)

	mustDo(t, f.Toggle(0))
	if !f.Activities()[1].Disabled {
		t.Fatalf("expected workshop B disabled")
	}
	if got := f.Total(); got != 100 {
		t.Fatalf("expected total 100, got %d", got)
	}
	if got := f.TotalText(); got != "Total: $100" {
		t.Fatalf("unexpected total text %q", got)
	}

	mustDo(t, f.Toggle(2))
	if got := f.TotalText(); got != "Total: $300" {
		t.Fatalf("unexpected total text %q", got)
	}
}

func TestActivityFocusHighlightsLabel(t *testing.T) {
	f := newTestForm(t)
	idx := activity(t, f, "npm")

	_, err := f.Dispatch(Event{Kind: EventFocus, Target: model.FieldActivities, Index: idx})
	mustDo(t, err)
	if !f.Activities()[idx].LabelClasses.Contains(ClassFocus) {
		t.Fatalf("expected focus class on label")
	}

	_, err = f.Dispatch(Event{Kind: EventBlur, Target: model.FieldActivities, Index: idx})
	mustDo(t, err)
	if f.Activities()[idx].LabelClasses.Contains(ClassFocus) {
		t.Fatalf("expected focus class removed on blur")
	}
}

func TestPaymentSwitchesPanels(t *testing.T) {
	f := newTestForm(t)

	mustDo(t, f.Choose(model.FieldPayment, string(model.PaymentPayPal)))
	paypal, _ := f.Panel("paypal")
	card, _ := f.Panel("credit-card")
	bitcoin, _ := f.Panel("bitcoin")
	if paypal.Hidden || !card.Hidden || !bitcoin.Hidden {
		t.Fatalf("expected only paypal visible, got card=%v paypal=%v bitcoin=%v", card.Hidden, paypal.Hidden, bitcoin.Hidden)
	}

	mustDo(t, f.Choose(model.FieldPayment, string(model.PaymentBitcoin)))
	if !paypal.Hidden || !card.Hidden || bitcoin.Hidden {
		t.Fatalf("expected only bitcoin visible")
	}

	if err := f.Select(model.FieldPayment, 0); !errors.Is(err, ErrDisabled) {
		t.Fatalf("expected placeholder to be disabled, got %v", err)
	}
}

func TestDispatcherPaymentGating(t *testing.T) {
	f := newTestForm(t)
	mustDo(t, f.SetValue(model.FieldCardNumber, "1234"))
	if f.IsValid(model.FieldCardNumber) {
		t.Fatalf("short card number must fail under credit card")
	}

	mustDo(t, f.Choose(model.FieldPayment, string(model.PaymentPayPal)))
	if !f.IsValid(model.FieldCardNumber) {
		t.Fatalf("card number must be vacuously valid under paypal")
	}
	for _, id := range []model.FieldID{model.FieldExpMonth, model.FieldExpYear, model.FieldZip, model.FieldCVV} {
		if !f.IsValid(id) {
			t.Fatalf("%s must be vacuously valid under paypal", id)
		}
	}
	if !f.IsValid(model.FieldShirtSize) {
		t.Fatalf("fields without a rule are valid")
	}
}

func TestValidateFromSnapshot(t *testing.T) {
	s := Snapshot{
		Values:   map[model.FieldID]string{model.FieldName: "Ada", model.FieldEmail: "ada@host.com", model.FieldZip: "1234"},
		Selected: map[model.FieldID]int{model.FieldExpMonth: 0},
		Checked:  1,
		Payment:  model.PaymentCreditCard,
	}
	cases := map[model.FieldID]bool{
		model.FieldName:       true,
		model.FieldEmail:      true,
		model.FieldActivities: true,
		model.FieldExpMonth:   false,
		model.FieldExpYear:    false,
		model.FieldZip:        false,
		model.FieldShirtColor: true,
	}
	for id, want := range cases {
		if got := Validate(id, s); got != want {
			t.Fatalf("Validate(%s) = %v, want %v", id, got, want)
		}
	}
}
