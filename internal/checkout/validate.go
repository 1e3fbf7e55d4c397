package checkout

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/Yashkatiyar24/E-commerce-app/pkg/enums"
	"github.com/go-playground/validator/v10"
)

var (
	phonePattern   = regexp.MustCompile(`^[0-9]{10}$`)
	pincodePattern = regexp.MustCompile(`^[0-9]{5,6}$`)
	cardPattern    = regexp.MustCompile(`^[0-9]{12,19}$`)
	expiryPattern  = regexp.MustCompile(`^(0[1-9]|1[0-2])/[0-9]{2}$`)
	cvvPattern     = regexp.MustCompile(`^[0-9]{3,4}$`)
	whitespace     = regexp.MustCompile(`\s+`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" {
			return f.Name
		}
		return tag
	})

	must := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}
	must("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	must("phone10", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	must("pincode", func(fl validator.FieldLevel) bool {
		return pincodePattern.MatchString(fl.Field().String())
	})
	must("cardnumber", func(fl validator.FieldLevel) bool {
		return cardPattern.MatchString(stripWhitespace(fl.Field().String()))
	})
	must("cardprefix", func(fl validator.FieldLevel) bool {
		digits := stripWhitespace(fl.Field().String())
		if digits == "" {
			return false
		}
		// Visa numbers start with 4, Mastercard with 2 or 5.
		return digits[0] == '4' || digits[0] == '2' || digits[0] == '5'
	})
	must("expiry", func(fl validator.FieldLevel) bool {
		return expiryPattern.MatchString(fl.Field().String())
	})
	must("cvv", func(fl validator.FieldLevel) bool {
		return cvvPattern.MatchString(fl.Field().String())
	})
	must("paymentmethod", func(fl validator.FieldLevel) bool {
		return enums.PaymentMethod(fl.Field().String()).IsValid()
	})
	return v
}

func stripWhitespace(value string) string {
	return whitespace.ReplaceAllString(value, "")
}

type identityFields struct {
	Name  string `json:"name" validate:"notblank"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"phone10"`
}

type shippingFields struct {
	Line    string `json:"line" validate:"notblank"`
	City    string `json:"city" validate:"notblank"`
	State   string `json:"state" validate:"notblank"`
	Pincode string `json:"pincode" validate:"pincode"`
}

type cardFields struct {
	Number  string `json:"cardNumber" validate:"cardnumber,cardprefix"`
	Expiry  string `json:"expiry" validate:"expiry"`
	CVV     string `json:"cvv" validate:"cvv"`
	Name    string `json:"cardName" validate:"notblank"`
	Billing string `json:"billing" validate:"notblank"`
}

type paymentFields struct {
	Payment string      `json:"payment" validate:"paymentmethod"`
	Card    *cardFields `json:"card"`
}

// validateStep runs the rules for exactly one step and returns the failing
// fields mapped to their user-facing messages. An empty map means the step
// passed.
func validateStep(step enums.CheckoutStep, form Form, cardDetails bool) map[string]string {
	var subject any
	switch step {
	case enums.StepIdentity:
		subject = identityFields{Name: form.Name, Email: form.Email, Phone: form.Phone}
	case enums.StepShipping:
		subject = shippingFields{
			Line:    form.Address.Line,
			City:    form.Address.City,
			State:   form.Address.State,
			Pincode: form.Address.Pincode,
		}
	case enums.StepPayment:
		fields := paymentFields{Payment: form.PaymentMethod}
		if cardDetails && enums.PaymentMethod(form.PaymentMethod).IsCardBased() {
			fields.Card = &cardFields{
				Number:  form.Card.Number,
				Expiry:  form.Card.Expiry,
				CVV:     form.Card.CVV,
				Name:    form.Card.Name,
				Billing: form.Card.Billing,
			}
		}
		subject = fields
	default:
		return map[string]string{}
	}

	errs := map[string]string{}
	err := validate.Struct(subject)
	if err == nil {
		return errs
	}
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		errs["form"] = "is invalid"
		return errs
	}
	for _, fe := range fieldErrs {
		errs[fe.Field()] = messageFor(fe.Field(), fe.Tag())
	}
	return errs
}

// messageFor translates a failed rule into the storefront's message for that
// field.
func messageFor(field, tag string) string {
	if field == FieldCardNumber && tag == "cardprefix" {
		return "Visa starts with 4; Mastercard with 2 or 5"
	}
	switch field {
	case FieldName:
		return "Name is required"
	case FieldEmail:
		return "Valid email required"
	case FieldPhone:
		return "Enter a 10-digit number"
	case FieldLine:
		return "Address is required"
	case FieldCity:
		return "City is required"
	case FieldState:
		return "State is required"
	case FieldPincode:
		return "Enter a 5 or 6 digit code"
	case FieldPayment:
		return "Select a method"
	case FieldCardNumber:
		return "Enter 12-19 digit card number"
	case FieldExpiry:
		return "Use MM/YY"
	case FieldCVV:
		return "3-4 digit CVV"
	case FieldCardName:
		return "Name on card required"
	case FieldBilling:
		return "Billing address required"
	}
	return "is invalid"
}
