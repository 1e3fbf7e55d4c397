package orders

import (
	"testing"

	"github.com/Yashkatiyar24/E-commerce-app/internal/cart"
	"github.com/Yashkatiyar24/E-commerce-app/internal/catalog"
	"github.com/Yashkatiyar24/E-commerce-app/pkg/types"
	"github.com/shopspring/decimal"
)

func sampleSummary(id string) Summary {
	return Summary{
		ID: id,
		Items: []cart.Line{
			{
				Product: catalog.Product{
					ID:      "p1",
					Name:    "coat",
					Price:   decimal.NewFromInt(15999),
					Gallery: []string{"img"},
					Sizes:   []string{"M"},
				},
				Quantity: 1,
			},
		},
		Total:   decimal.NewFromInt(15999),
		Address: &types.Address{Line: "12 Rue", City: "Paris", State: "IDF", Pincode: "75001"},
	}
}

func TestRecordReplacesPreviousOrder(t *testing.T) {
	r := NewRecorder()
	if r.Last() != nil {
		t.Fatal("expected empty slot")
	}

	r.Record(sampleSummary("SO-000001"))
	r.Record(sampleSummary("SO-000002"))

	last := r.Last()
	if last == nil || last.ID != "SO-000002" {
		t.Fatalf("expected the newer order, got %+v", last)
	}
}

func TestResetClearsSlot(t *testing.T) {
	r := NewRecorder()
	r.Record(sampleSummary("SO-000001"))
	r.Reset()

	if r.Last() != nil {
		t.Fatal("expected slot to be empty after reset")
	}
}

func TestLastReturnsIsolatedCopy(t *testing.T) {
	r := NewRecorder()
	r.Record(sampleSummary("SO-000001"))

	got := r.Last()
	got.Items[0].Quantity = 42
	got.Address.City = "Lyon"

	fresh := r.Last()
	if fresh.Items[0].Quantity != 1 {
		t.Fatalf("stored items were mutated through the copy: %+v", fresh.Items[0])
	}
	if fresh.Address.City != "Paris" {
		t.Fatalf("stored address was mutated through the copy: %+v", fresh.Address)
	}
}

func TestRecordDoesNotAliasCallerSummary(t *testing.T) {
	r := NewRecorder()
	summary := sampleSummary("SO-000001")
	r.Record(summary)

	summary.Items[0].Quantity = 99
	summary.Address.City = "Nice"

	last := r.Last()
	if last.Items[0].Quantity != 1 || last.Address.City != "Paris" {
		t.Fatalf("recorder aliased the caller's summary: %+v", last)
	}
}

func TestSubscribeSeesRecordAndReset(t *testing.T) {
	r := NewRecorder()
	var events []*Summary
	r.Subscribe(func(last *Summary) {
		events = append(events, last)
	})

	r.Record(sampleSummary("SO-000001"))
	r.Reset()

	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0] == nil || events[0].ID != "SO-000001" {
		t.Fatalf("unexpected first event %+v", events[0])
	}
	if events[1] != nil {
		t.Fatalf("reset should deliver nil, got %+v", events[1])
	}
}
