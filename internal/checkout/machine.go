// Package checkout drives the three-step order placement wizard: identity,
// shipping, payment. Forward progress is gated by per-step validation; the
// final submission snapshots the cart into an order and then clears it.
package checkout

import (
	"fmt"
	"sync"
	"time"

	"github.com/Yashkatiyar24/E-commerce-app/internal/cart"
	"github.com/Yashkatiyar24/E-commerce-app/internal/orders"
	"github.com/Yashkatiyar24/E-commerce-app/pkg/enums"
	pkgerrors "github.com/Yashkatiyar24/E-commerce-app/pkg/errors"
	"github.com/Yashkatiyar24/E-commerce-app/pkg/metrics"
)

// Options selects the optional capture features. The two original storefront
// shells differ exactly here: the mobile shell captures card details and
// snapshots the shipping address onto the order, the web shell does neither.
type Options struct {
	CardDetails     bool
	AddressSnapshot bool
}

// DefaultOptions enables both capture features.
func DefaultOptions() Options {
	return Options{CardDetails: true, AddressSnapshot: true}
}

// CanEnter is the presentation-level entry guard: checkout is reachable only
// with a non-empty cart, or with a pending last order to display.
func CanEnter(cartStore *cart.Store, recorder *orders.Recorder) bool {
	if cartStore == nil || recorder == nil {
		return false
	}
	return cartStore.Count() > 0 || recorder.Last() != nil
}

// Machine is the checkout step machine. It is driven from a single logical
// flow at a time and is not safe for concurrent use.
type Machine struct {
	cart     *cart.Store
	recorder *orders.Recorder
	opts     Options
	metrics  *metrics.CheckoutMetrics
	ids      *orderIDGenerator

	step enums.CheckoutStep
	form Form
	errs map[string]string
}

// NewMachine builds a machine over the given cart store and order recorder.
func NewMachine(cartStore *cart.Store, recorder *orders.Recorder, opts Options, m *metrics.CheckoutMetrics) (*Machine, error) {
	if cartStore == nil {
		return nil, fmt.Errorf("cart store required")
	}
	if recorder == nil {
		return nil, fmt.Errorf("order recorder required")
	}
	machine := &Machine{
		cart:     cartStore,
		recorder: recorder,
		opts:     opts,
		metrics:  m,
		ids:      &orderIDGenerator{},
	}
	machine.resetSession()
	return machine, nil
}

func (m *Machine) resetSession() {
	m.step = enums.StepIdentity
	m.form = Form{PaymentMethod: enums.PaymentMethodUPI.String()}
	m.errs = map[string]string{}
}

// Step returns the current step.
func (m *Machine) Step() enums.CheckoutStep {
	return m.step
}

// Form returns a copy of the accumulated form state.
func (m *Machine) Form() Form {
	return m.form
}

// Errors returns a copy of the current step's field errors.
func (m *Machine) Errors() map[string]string {
	out := make(map[string]string, len(m.errs))
	for k, v := range m.errs {
		out[k] = v
	}
	return out
}

// Set edits one form field without triggering validation. Policy: an edit
// eagerly clears that field's existing error; the full step is only
// re-validated on the next Advance or Submit.
func (m *Machine) Set(field, value string) {
	if !m.form.set(field, value) {
		return
	}
	delete(m.errs, field)
}

// Advance validates the current step only. On success the step number is
// bumped (capped at the payment step, where advancing is a no-op) and the
// error map is cleared; on failure the step stays and the error map is
// replaced with exactly the failing fields.
func (m *Machine) Advance() bool {
	errs := validateStep(m.step, m.form, m.opts.CardDetails)
	if len(errs) > 0 {
		m.errs = errs
		m.metrics.IncStepFailure(m.step.String())
		return false
	}
	m.errs = map[string]string{}
	if m.step < enums.StepPayment {
		m.metrics.IncStepAdvance(m.step.String())
		m.step = m.step.Next()
	}
	return true
}

// Retreat steps backwards without validating; entered values are retained.
func (m *Machine) Retreat() {
	m.step = m.step.Prev()
}

// Abandon resets the machine to a fresh session, discarding the form.
func (m *Machine) Abandon() {
	m.resetSession()
}

// Submit places the order. Only meaningful on the payment step; it re-runs
// payment validation, snapshots the cart into an OrderSummary, records it and
// then clears the cart, in that order. The returned summary is the recorded
// snapshot.
func (m *Machine) Submit() (*orders.Summary, error) {
	if m.step != enums.StepPayment {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "submit is only available on the payment step").
			WithDetails(map[string]string{"step": m.step.String()})
	}
	errs := validateStep(m.step, m.form, m.opts.CardDetails)
	if len(errs) > 0 {
		m.errs = errs
		m.metrics.IncStepFailure(m.step.String())
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "payment details failed validation").
			WithDetails(m.Errors())
	}
	m.errs = map[string]string{}

	summary := orders.Summary{
		ID:    m.ids.Next(),
		Items: m.cart.Lines(),
		Total: m.cart.Total(),
	}
	if m.opts.AddressSnapshot {
		addr := m.form.Address
		summary.Address = &addr
	}

	// Snapshot before clearing: the recorder must see the cart as it was.
	m.recorder.Record(summary)
	m.cart.Clear()
	m.metrics.IncOrderPlaced()

	m.resetSession()
	out := summary.Clone()
	return &out, nil
}

// orderIDGenerator derives human-scannable ids from a monotonic millisecond
// stamp, unique within a session.
type orderIDGenerator struct {
	mu   sync.Mutex
	last int64
}

func (g *orderIDGenerator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	stamp := time.Now().UnixMilli()
	if stamp <= g.last {
		stamp = g.last + 1
	}
	g.last = stamp
	return fmt.Sprintf("SO-%06d", stamp%1_000_000)
}
