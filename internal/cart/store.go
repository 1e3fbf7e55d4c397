// Package cart owns the live shopping cart: its lines, their quantities and
// the totals derived from them. The store is the only writer of cart state;
// every other component either reads snapshots or requests mutations through
// its operations.
package cart

import (
	"sync"

	"github.com/Yashkatiyar24/E-commerce-app/internal/catalog"
	"github.com/shopspring/decimal"
)

// Line pairs one product with a quantity. A cart holds at most one line per
// product id and a line's quantity is always >= 1.
type Line struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// Clone returns a deep copy of the line.
func (l Line) Clone() Line {
	return Line{Product: l.Product.Clone(), Quantity: l.Quantity}
}

// Subtotal returns unit price times quantity.
func (l Line) Subtotal() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// CloneLines deep-copies a slice of lines.
func CloneLines(lines []Line) []Line {
	if lines == nil {
		return nil
	}
	out := make([]Line, len(lines))
	for i, l := range lines {
		out[i] = l.Clone()
	}
	return out
}

// Subscriber receives a deep-copied snapshot of the cart lines after every
// mutation. Callbacks run on the mutating goroutine, outside the store lock.
type Subscriber func(lines []Line)

// Store is the single source of truth for cart contents. Lines keep
// insertion order for stable display.
type Store struct {
	mu          sync.Mutex
	lines       []Line
	subscribers []Subscriber
}

// NewStore returns an empty cart store.
func NewStore() *Store {
	return &Store{}
}

// Subscribe registers a change listener. Listeners registered after
// mutations have occurred only see subsequent changes.
func (s *Store) Subscribe(fn Subscriber) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	s.subscribers = append(s.subscribers, fn)
	s.mu.Unlock()
}

// AddItem merges the product into the cart: an existing line's quantity is
// incremented, otherwise a new line is appended. Quantity is a caller
// contract (> 0); non-positive input is clamped so a line can never be
// created at or driven to zero by this operation.
func (s *Store) AddItem(product catalog.Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	s.mu.Lock()
	merged := false
	for i := range s.lines {
		if s.lines[i].Product.ID == product.ID {
			s.lines[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		s.lines = append(s.lines, Line{Product: product.Clone(), Quantity: quantity})
	}
	s.notifyLocked()
}

// SetQuantity replaces the named line's quantity. A value <= 0 removes the
// line. Unknown product ids are a silent no-op, mirroring the original
// storefront's leniency.
func (s *Store) SetQuantity(productID string, quantity int) {
	s.mu.Lock()
	changed := false
	for i := range s.lines {
		if s.lines[i].Product.ID != productID {
			continue
		}
		if quantity <= 0 {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
		} else {
			s.lines[i].Quantity = quantity
		}
		changed = true
		break
	}
	if !changed {
		s.mu.Unlock()
		return
	}
	s.notifyLocked()
}

// RemoveItem removes the named line if present; unknown ids are a no-op.
func (s *Store) RemoveItem(productID string) {
	s.mu.Lock()
	for i := range s.lines {
		if s.lines[i].Product.ID == productID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			s.notifyLocked()
			return
		}
	}
	s.mu.Unlock()
}

// Clear removes all lines.
func (s *Store) Clear() {
	s.mu.Lock()
	s.lines = nil
	s.notifyLocked()
}

// Replace swaps the full line list in one step. It is used by the
// persistence adapter during hydration and applies the same invariants as
// AddItem: one line per product id, quantities >= 1.
func (s *Store) Replace(lines []Line) {
	s.mu.Lock()
	s.lines = nil
	seen := map[string]int{}
	for _, l := range lines {
		if l.Quantity < 1 {
			continue
		}
		if i, ok := seen[l.Product.ID]; ok {
			s.lines[i].Quantity += l.Quantity
			continue
		}
		seen[l.Product.ID] = len(s.lines)
		s.lines = append(s.lines, l.Clone())
	}
	s.notifyLocked()
}

// Lines returns a deep-copied snapshot in insertion order.
func (s *Store) Lines() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	return CloneLines(s.lines)
}

// Count recomputes the sum of line quantities on every call.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, l := range s.lines {
		count += l.Quantity
	}
	return count
}

// Total recomputes the cart total on every call.
func (s *Store) Total() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := decimal.Zero
	for _, l := range s.lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

// notifyLocked snapshots state, releases the lock and fans out to
// subscribers. Must be called with the lock held; the lock is released when
// it returns.
func (s *Store) notifyLocked() {
	snapshot := CloneLines(s.lines)
	subscribers := append([]Subscriber(nil), s.subscribers...)
	s.mu.Unlock()
	for _, fn := range subscribers {
		fn(CloneLines(snapshot))
	}
}
