package model

import "strings"

// FieldID identifies a control on the registration form.
type FieldID int

const (
	FieldUnknown FieldID = iota
	FieldName
	FieldEmail
	FieldJobRole
	FieldOtherJobRole
	FieldShirtSize
	FieldShirtDesign
	FieldShirtColor
	FieldActivities
	FieldPayment
	FieldExpMonth
	FieldExpYear
	FieldCardNumber
	FieldZip
	FieldCVV
)

var fieldNames = [...]string{
	FieldUnknown:      "",
	FieldName:         "name",
	FieldEmail:        "email",
	FieldJobRole:      "title",
	FieldOtherJobRole: "other-job-role",
	FieldShirtSize:    "size",
	FieldShirtDesign:  "design",
	FieldShirtColor:   "color",
	FieldActivities:   "activities-box",
	FieldPayment:      "payment",
	FieldExpMonth:     "exp-month",
	FieldExpYear:      "exp-year",
	FieldCardNumber:   "cc-num",
	FieldZip:          "zip",
	FieldCVV:          "cvv",
}

// Fields lists every known control in document order.
func Fields() []FieldID {
	return []FieldID{
		FieldName,
		FieldEmail,
		FieldJobRole,
		FieldOtherJobRole,
		FieldShirtSize,
		FieldShirtDesign,
		FieldShirtColor,
		FieldActivities,
		FieldPayment,
		FieldExpMonth,
		FieldExpYear,
		FieldCardNumber,
		FieldZip,
		FieldCVV,
	}
}

// String returns the element id of the control.
func (id FieldID) String() string {
	if id < 0 || int(id) >= len(fieldNames) {
		return ""
	}
	return fieldNames[id]
}

// ParseFieldID resolves an element id. The lookup is case-insensitive and
// ignores surrounding whitespace.
func ParseFieldID(raw string) (FieldID, bool) {
	key := strings.ToLower(strings.TrimSpace(raw))
	if key == "" {
		return FieldUnknown, false
	}
	for id, name := range fieldNames {
		if name == key {
			return FieldID(id), true
		}
	}
	return FieldUnknown, false
}

// MarshalText encodes the id as its element id.
func (id FieldID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText accepts an element id. Unknown ids decode to FieldUnknown.
func (id *FieldID) UnmarshalText(text []byte) error {
	parsed, _ := ParseFieldID(string(text))
	*id = parsed
	return nil
}

// TextInput reports whether the control is a free text input, which is
// validated as the user types.
func (id FieldID) TextInput() bool {
	switch id {
	case FieldName, FieldEmail, FieldOtherJobRole, FieldCardNumber, FieldZip, FieldCVV:
		return true
	default:
		return false
	}
}

// Select reports whether the control is a single-choice selector.
func (id FieldID) Select() bool {
	switch id {
	case FieldJobRole, FieldShirtSize, FieldShirtDesign, FieldShirtColor, FieldPayment, FieldExpMonth, FieldExpYear:
		return true
	default:
		return false
	}
}

// PaymentScoped reports whether the control belongs to the credit card panel.
func (id FieldID) PaymentScoped() bool {
	switch id {
	case FieldExpMonth, FieldExpYear, FieldCardNumber, FieldZip, FieldCVV:
		return true
	default:
		return false
	}
}

// PaymentMethod is the value of a payment option.
type PaymentMethod string

const (
	PaymentCreditCard PaymentMethod = "credit-card"
	PaymentPayPal     PaymentMethod = "paypal"
	PaymentBitcoin    PaymentMethod = "bitcoin"
)

// OtherJobRole is the job role value that reveals the free text role field.
const OtherJobRole = "other"
