// Package orders holds the single last-order slot. It is not an order
// history: recording a new order replaces the previous one.
package orders

import (
	"sync"

	"github.com/Yashkatiyar24/E-commerce-app/internal/cart"
	"github.com/Yashkatiyar24/E-commerce-app/pkg/types"
	"github.com/shopspring/decimal"
)

// Summary is the immutable snapshot of a placed order. Items never alias the
// live cart; the cart is cleared right after the snapshot is taken.
type Summary struct {
	ID      string          `json:"id"`
	Items   []cart.Line     `json:"items"`
	Total   decimal.Decimal `json:"total"`
	Address *types.Address  `json:"address,omitempty"`
}

// Clone returns a deep copy of the summary.
func (s Summary) Clone() Summary {
	out := s
	out.Items = cart.CloneLines(s.Items)
	if s.Address != nil {
		addr := *s.Address
		out.Address = &addr
	}
	return out
}

// Subscriber receives the new slot value after every change: the recorded
// summary, or nil when the slot was reset.
type Subscriber func(last *Summary)

// Recorder owns the last-order slot.
type Recorder struct {
	mu          sync.Mutex
	last        *Summary
	subscribers []Subscriber
}

// NewRecorder returns a recorder with an empty slot.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Subscribe registers a change listener.
func (r *Recorder) Subscribe(fn Subscriber) {
	if fn == nil {
		return
	}
	r.mu.Lock()
	r.subscribers = append(r.subscribers, fn)
	r.mu.Unlock()
}

// Record stores the summary as the last order, replacing any previous value.
// It does not touch the cart; the checkout machine sequences record-then-clear.
func (r *Recorder) Record(summary Summary) {
	stored := summary.Clone()
	r.mu.Lock()
	r.last = &stored
	r.notifyLocked()
}

// Reset clears the slot.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.last = nil
	r.notifyLocked()
}

// Last returns a copy of the slot value, or nil when empty.
func (r *Recorder) Last() *Summary {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.last == nil {
		return nil
	}
	out := r.last.Clone()
	return &out
}

// notifyLocked snapshots the slot, releases the lock and fans out to
// subscribers. Must be called with the lock held.
func (r *Recorder) notifyLocked() {
	last := r.last
	subscribers := append([]Subscriber(nil), r.subscribers...)
	r.mu.Unlock()
	for _, fn := range subscribers {
		if last == nil {
			fn(nil)
			continue
		}
		copied := last.Clone()
		fn(&copied)
	}
}
