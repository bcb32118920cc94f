package render

import (
	"errors"
	"testing"

	"billforge/internal/domain"
)

func allRegistries() []*Registry {
	return []*Registry{Invoices(), Receipts(), Quotations(), PriceLists()}
}

func TestAvailable_FreeIsSubsetOfPaid(t *testing.T) {
	for _, r := range allRegistries() {
		free := r.Available(TierFree)
		paid := r.Available(TierPaid)

		if len(free) == 0 {
			t.Fatalf("%s: every kind must ship at least one free template", r.Kind())
		}
		if len(paid) < len(free) {
			t.Fatalf("%s: paid list smaller than free list", r.Kind())
		}

		paidIDs := make(map[int]bool, len(paid))
		for _, d := range paid {
			paidIDs[d.ID] = true
		}
		for _, d := range free {
			if d.Tier != TierFree {
				t.Fatalf("%s: free listing leaked paid template %d", r.Kind(), d.ID)
			}
			if !paidIDs[d.ID] {
				t.Fatalf("%s: free template %d missing from paid listing", r.Kind(), d.ID)
			}
		}
	}
}

func TestAvailable_PreservesRegistrationOrder(t *testing.T) {
	for _, r := range allRegistries() {
		prev := 0
		for _, d := range r.Available(TierPaid) {
			if d.ID <= prev {
				t.Fatalf("%s: listing out of order at id %d", r.Kind(), d.ID)
			}
			prev = d.ID
		}
	}
}

func TestGet_UnknownID(t *testing.T) {
	for _, r := range allRegistries() {
		_, err := r.Get(999)
		var unknown *UnknownTemplateError
		if !errors.As(err, &unknown) {
			t.Fatalf("%s: expected UnknownTemplateError, got %v", r.Kind(), err)
		}
		if unknown.Kind != r.Kind() || unknown.ID != 999 {
			t.Fatalf("%s: error carries wrong identity: %+v", r.Kind(), unknown)
		}
	}
}

func TestGet_EveryListedIDResolves(t *testing.T) {
	for _, r := range allRegistries() {
		for _, d := range r.Available(TierPaid) {
			got, err := r.Get(d.ID)
			if err != nil {
				t.Fatalf("%s: listed id %d failed lookup: %v", r.Kind(), d.ID, err)
			}
			if got.Name != d.Name {
				t.Fatalf("%s: id %d resolved to %q, listed as %q", r.Kind(), d.ID, got.Name, d.Name)
			}
		}
	}
}

func TestForKind(t *testing.T) {
	for _, kind := range []domain.DocumentKind{
		domain.KindInvoice, domain.KindReceipt, domain.KindQuotation, domain.KindPriceList,
	} {
		r, err := ForKind(kind)
		if err != nil {
			t.Fatalf("ForKind(%s): %v", kind, err)
		}
		if r.Kind() != kind {
			t.Fatalf("ForKind(%s) returned registry for %s", kind, r.Kind())
		}
	}
	if _, err := ForKind(domain.DocumentKind("memo")); err == nil {
		t.Fatal("expected error for unregistered kind")
	}
}
