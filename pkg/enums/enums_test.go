package enums

import "testing"

func TestParsePaymentMethod(t *testing.T) {
	for _, method := range PaymentMethods() {
		parsed, err := ParsePaymentMethod(method.String())
		if err != nil {
			t.Fatalf("unexpected error parsing %q: %v", method, err)
		}
		if parsed != method {
			t.Fatalf("expected %q got %q", method, parsed)
		}
	}

	if _, err := ParsePaymentMethod("wire transfer"); err == nil {
		t.Fatal("expected error for unknown method")
	}
	if PaymentMethod("upi").IsValid() {
		t.Fatal("payment methods are case sensitive")
	}
}

func TestPaymentMethodCardBased(t *testing.T) {
	if !PaymentMethodCard.IsCardBased() {
		t.Fatal("Card should be card based")
	}
	if PaymentMethodUPI.IsCardBased() || PaymentMethodCOD.IsCardBased() {
		t.Fatal("UPI and COD are not card based")
	}
}

func TestCheckoutStepBounds(t *testing.T) {
	if got := StepPayment.Next(); got != StepPayment {
		t.Fatalf("Next should cap at payment, got %v", got)
	}
	if got := StepIdentity.Prev(); got != StepIdentity {
		t.Fatalf("Prev should floor at identity, got %v", got)
	}
	if got := StepIdentity.Next(); got != StepShipping {
		t.Fatalf("expected shipping, got %v", got)
	}
	if got := StepPayment.Prev(); got != StepShipping {
		t.Fatalf("expected shipping, got %v", got)
	}
	if CheckoutStep(0).IsValid() || CheckoutStep(4).IsValid() {
		t.Fatal("steps outside 1..3 are invalid")
	}
}
