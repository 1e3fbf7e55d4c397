package checkout

import "github.com/Yashkatiyar24/E-commerce-app/pkg/types"

// Field keys double as error-map keys and match the field names the
// storefront shells render against.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldPhone   = "phone"
	FieldLine    = "line"
	FieldCity    = "city"
	FieldState   = "state"
	FieldPincode = "pincode"

	FieldPayment    = "payment"
	FieldCardNumber = "cardNumber"
	FieldExpiry     = "expiry"
	FieldCVV        = "cvv"
	FieldCardName   = "cardName"
	FieldBilling    = "billing"
)

// CardDetails captures card payment input. Only validated when the selected
// method is card-based and card capture is enabled.
type CardDetails struct {
	Number  string
	Expiry  string
	CVV     string
	Name    string
	Billing string
}

// Form accumulates everything entered across the three checkout steps. It is
// transient: it lives only for the checkout session.
type Form struct {
	Name          string
	Email         string
	Phone         string
	Address       types.Address
	PaymentMethod string
	Card          CardDetails
}

// set routes a field edit to the owning form slot. Unknown fields are
// ignored; the machine reports whether anything changed.
func (f *Form) set(field, value string) bool {
	switch field {
	case FieldName:
		f.Name = value
	case FieldEmail:
		f.Email = value
	case FieldPhone:
		f.Phone = value
	case FieldLine:
		f.Address.Line = value
	case FieldCity:
		f.Address.City = value
	case FieldState:
		f.Address.State = value
	case FieldPincode:
		f.Address.Pincode = value
	case FieldPayment:
		f.PaymentMethod = value
	case FieldCardNumber:
		f.Card.Number = value
	case FieldExpiry:
		f.Card.Expiry = value
	case FieldCVV:
		f.Card.CVV = value
	case FieldCardName:
		f.Card.Name = value
	case FieldBilling:
		f.Card.Billing = value
	default:
		return false
	}
	return true
}
