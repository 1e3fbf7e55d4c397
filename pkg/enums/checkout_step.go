package enums

import "fmt"

// CheckoutStep identifies one stage of the three-step checkout wizard.
type CheckoutStep int

const (
	StepIdentity CheckoutStep = 1
	StepShipping CheckoutStep = 2
	StepPayment  CheckoutStep = 3
)

// String implements fmt.Stringer.
func (s CheckoutStep) String() string {
	switch s {
	case StepIdentity:
		return "identity"
	case StepShipping:
		return "shipping"
	case StepPayment:
		return "payment"
	}
	return fmt.Sprintf("step(%d)", int(s))
}

// IsValid reports whether the value is a known CheckoutStep.
func (s CheckoutStep) IsValid() bool {
	return s >= StepIdentity && s <= StepPayment
}

// Next returns the following step, capped at the payment step.
func (s CheckoutStep) Next() CheckoutStep {
	if s >= StepPayment {
		return StepPayment
	}
	return s + 1
}

// Prev returns the preceding step, floored at the identity step.
func (s CheckoutStep) Prev() CheckoutStep {
	if s <= StepIdentity {
		return StepIdentity
	}
	return s - 1
}
