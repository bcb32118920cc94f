package render

import (
	"fmt"

	"billforge/internal/domain"
)

// Tier is the subscription level gating template visibility. It is the only
// business rule the registry enforces.
type Tier string

const (
	TierFree Tier = "free"
	TierPaid Tier = "paid"
)

// Options tune a single render call without touching document data.
type Options struct {
	Preview     bool
	AccentColor string
}

type RenderFunc func(doc domain.Document, opts Options) Artifact

// Descriptor ties a template id to its renderer. Descriptors are owned
// exclusively by the registry; callers obtain them via Get or Available.
type Descriptor struct {
	ID     int
	Name   string
	Tier   Tier
	render RenderFunc
}

// Render invokes the template on doc.
func (d Descriptor) Render(doc domain.Document, opts Options) Artifact {
	return d.render(doc, opts)
}

// UnknownTemplateError signals that a caller asked for a template id the
// registry does not hold — a contract violation, since visible ids come from
// Available.
type UnknownTemplateError struct {
	Kind domain.DocumentKind
	ID   int
}

func (e *UnknownTemplateError) Error() string {
	return fmt.Sprintf("render: no %s template with id %d", e.Kind, e.ID)
}

// Registry maps template ids to descriptors for one document kind. Registries
// are assembled at init and read-only afterwards.
type Registry struct {
	kind  domain.DocumentKind
	order []int
	byID  map[int]Descriptor
}

func newRegistry(kind domain.DocumentKind, descriptors ...Descriptor) *Registry {
	r := &Registry{kind: kind, byID: make(map[int]Descriptor, len(descriptors))}
	for _, d := range descriptors {
		if _, dup := r.byID[d.ID]; dup {
			panic(fmt.Sprintf("render: duplicate %s template id %d", kind, d.ID))
		}
		r.byID[d.ID] = d
		r.order = append(r.order, d.ID)
	}
	return r
}

func (r *Registry) Kind() domain.DocumentKind { return r.kind }

// Get resolves a template id. Missing ids return *UnknownTemplateError.
func (r *Registry) Get(id int) (Descriptor, error) {
	d, ok := r.byID[id]
	if !ok {
		return Descriptor{}, &UnknownTemplateError{Kind: r.kind, ID: id}
	}
	return d, nil
}

// Render looks up id and applies it to doc.
func (r *Registry) Render(doc domain.Document, id int, opts Options) (Artifact, error) {
	d, err := r.Get(id)
	if err != nil {
		return Artifact{}, err
	}
	return d.Render(doc, opts), nil
}

// Available returns the descriptors visible to tier, in registration order.
// Free-tier callers see only free templates; the paid tier sees everything.
func (r *Registry) Available(tier Tier) []Descriptor {
	var out []Descriptor
	for _, id := range r.order {
		d := r.byID[id]
		if tier != TierPaid && d.Tier != TierFree {
			continue
		}
		out = append(out, d)
	}
	return out
}

var (
	invoices = newRegistry(domain.KindInvoice,
		Descriptor{ID: 1, Name: "Classic", Tier: TierFree, render: invoiceClassic},
		Descriptor{ID: 2, Name: "Modern", Tier: TierFree, render: invoiceModern},
		Descriptor{ID: 3, Name: "Minimal", Tier: TierPaid, render: invoiceMinimal},
	)
	receipts = newRegistry(domain.KindReceipt,
		Descriptor{ID: 1, Name: "Classic", Tier: TierFree, render: receiptClassic},
		Descriptor{ID: 2, Name: "Compact", Tier: TierPaid, render: receiptCompact},
	)
	quotations = newRegistry(domain.KindQuotation,
		Descriptor{ID: 1, Name: "Standard", Tier: TierFree, render: quotationStandard},
		Descriptor{ID: 2, Name: "Detailed", Tier: TierPaid, render: quotationDetailed},
	)
	priceLists = newRegistry(domain.KindPriceList,
		Descriptor{ID: 1, Name: "Simple", Tier: TierFree, render: priceListSimple},
		Descriptor{ID: 2, Name: "Catalog", Tier: TierPaid, render: priceListCatalog},
	)
)

func Invoices() *Registry   { return invoices }
func Receipts() *Registry   { return receipts }
func Quotations() *Registry { return quotations }
func PriceLists() *Registry { return priceLists }

// ForKind returns the registry owning templates for kind.
func ForKind(kind domain.DocumentKind) (*Registry, error) {
	switch kind {
	case domain.KindInvoice:
		return invoices, nil
	case domain.KindReceipt:
		return receipts, nil
	case domain.KindQuotation:
		return quotations, nil
	case domain.KindPriceList:
		return priceLists, nil
	}
	return nil, fmt.Errorf("render: no registry for document kind %q", kind)
}
