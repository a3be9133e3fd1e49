package ledger

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/safar-erp/safar-erp/internal/shared"
)

// ErrBothSides indicates an event carrying both a debit and a credit.
var ErrBothSides = errors.New("ledger: event must carry either a debit or a credit, not both")

// Book holds one side's ledgers (customer or purchase), one event stream
// per ref. Mutations on a ref are serialized through a per-ref lock so an
// anchor can never be created twice and append/delete never interleave.
type Book struct {
	mu     sync.RWMutex
	events map[string][]Event
	order  []string
	locks  map[string]*sync.Mutex
}

// NewBook returns an empty book.
func NewBook() *Book {
	return &Book{
		events: make(map[string][]Event),
		locks:  make(map[string]*sync.Mutex),
	}
}

func (b *Book) refLock(refNo string) *sync.Mutex {
	b.mu.Lock()
	defer b.mu.Unlock()
	l, ok := b.locks[refNo]
	if !ok {
		l = &sync.Mutex{}
		b.locks[refNo] = l
	}
	return l
}

// Open starts the ledger for a ref by posting its anchor. The anchor's kind
// is forced; a second Open for the same ref fails.
func (b *Book) Open(refNo string, anchor Event) error {
	if refNo == "" {
		return shared.MissingField("ref_no")
	}
	lock := b.refLock(refNo)
	lock.Lock()
	defer lock.Unlock()

	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.events[refNo]; ok {
		return ErrDuplicateAnchor
	}
	anchor.RefNo = refNo
	anchor.Kind = KindAnchor
	if anchor.ID == "" {
		anchor.ID = uuid.NewString()
	}
	b.events[refNo] = []Event{anchor}
	b.order = append(b.order, refNo)
	return nil
}

// Append posts a payment or adjustment. Payments are normalized to credits
// so they always reduce the balance, on either side of the business.
// Backdated events are accepted; View rebuilds the balance column from the
// anchor forward on every read, which covers the recompute contract.
func (b *Book) Append(e Event) error {
	if e.RefNo == "" {
		return shared.MissingField("ref_no")
	}
	if e.Date.IsZero() {
		return shared.MissingField("date")
	}
	if e.Kind == KindAnchor {
		return ErrDuplicateAnchor
	}
	if e.Debit.Sign() != 0 && e.Credit.Sign() != 0 {
		return ErrBothSides
	}
	if e.Kind == KindPayment {
		e.Credit = e.Amount()
		e.Debit = decimal.Zero
	}
	if e.ID == "" {
		e.ID = uuid.NewString()
	}

	lock := b.refLock(e.RefNo)
	lock.Lock()
	defer lock.Unlock()

	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.events[e.RefNo]; !ok {
		return shared.ErrNotFound
	}
	b.events[e.RefNo] = append(b.events[e.RefNo], e)
	return nil
}

// Delete removes a non-anchor event. The anchor rejects deletion outright.
// Requires the ledger delete capability.
func (b *Book) Delete(refNo, eventID string, authz shared.Authorizer) error {
	if err := shared.Require(authz, shared.CapLedgerDelete); err != nil {
		return err
	}
	lock := b.refLock(refNo)
	lock.Lock()
	defer lock.Unlock()

	b.mu.Lock()
	defer b.mu.Unlock()
	events, ok := b.events[refNo]
	if !ok {
		return shared.ErrNotFound
	}
	for i, e := range events {
		if e.ID != eventID {
			continue
		}
		if e.Kind == KindAnchor {
			return shared.ErrProtectedRecord
		}
		b.events[refNo] = append(events[:i], events[i+1:]...)
		return nil
	}
	return shared.ErrNotFound
}

// View computes the current ledger view for one ref.
func (b *Book) View(refNo string) (View, error) {
	b.mu.RLock()
	events, ok := b.events[refNo]
	if ok {
		events = append([]Event(nil), events...)
	}
	b.mu.RUnlock()
	if !ok {
		return View{}, shared.ErrNotFound
	}
	return Compute(events)
}

// Views computes all ledgers in the order their refs were opened.
func (b *Book) Views() ([]View, error) {
	b.mu.RLock()
	refs := append([]string(nil), b.order...)
	b.mu.RUnlock()
	return b.viewRefs(refs, false)
}

// ViewsFor computes ledgers for the given refs only, preserving the given
// order. Refs without a ledger are skipped; callers use this to exclude
// soft-deleted bookings from aggregations.
func (b *Book) ViewsFor(refs []string) ([]View, error) {
	return b.viewRefs(refs, true)
}

func (b *Book) viewRefs(refs []string, skipMissing bool) ([]View, error) {
	views := make([]View, 0, len(refs))
	for _, ref := range refs {
		v, err := b.View(ref)
		if errors.Is(err, shared.ErrNotFound) && skipMissing {
			continue
		}
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

// EventsFor returns the raw events of the given refs, flattened in ref
// order. Refs without a ledger are skipped.
func (b *Book) EventsFor(refs []string) []Event {
	b.mu.RLock()
	defer b.mu.RUnlock()
	var out []Event
	for _, ref := range refs {
		out = append(out, b.events[ref]...)
	}
	return out
}
