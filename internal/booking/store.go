package booking

import (
	"sync"

	"github.com/safar-erp/safar-erp/internal/shared"
)

// Store keeps bookings and their purchase entries in memory, keyed by ref
// no. Destructive commands are serialized per ref and require a caller
// supplied capability. The persistence layer proper lives outside the
// engine; this store is the snapshot the computations run against.
type Store struct {
	mu        sync.RWMutex
	bookings  map[string]*Booking
	purchases map[string][]PurchaseEntry
	order     []string
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		bookings:  make(map[string]*Booking),
		purchases: make(map[string][]PurchaseEntry),
	}
}

// Save validates and upserts a booking. The soft-delete flag of an existing
// record survives an update.
func (s *Store) Save(b Booking) error {
	if err := b.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.bookings[b.RefNo]; ok {
		b.Deleted = existing.Deleted
	} else {
		s.order = append(s.order, b.RefNo)
	}
	stored := b
	s.bookings[b.RefNo] = &stored
	return nil
}

// Get returns the booking for refNo, deleted or not.
func (s *Store) Get(refNo string) (Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.bookings[refNo]
	if !ok {
		return Booking{}, shared.ErrNotFound
	}
	return *b, nil
}

// Active returns non-deleted bookings in insertion order.
func (s *Store) Active() []Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Booking
	for _, ref := range s.order {
		if b := s.bookings[ref]; !b.Deleted {
			out = append(out, *b)
		}
	}
	return out
}

// ActiveRefs returns the ref nos of non-deleted bookings, insertion order.
func (s *Store) ActiveRefs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []string
	for _, ref := range s.order {
		if !s.bookings[ref].Deleted {
			out = append(out, ref)
		}
	}
	return out
}

// SoftDelete flags a booking recoverable-deleted.
func (s *Store) SoftDelete(refNo string, authz shared.Authorizer) error {
	if err := shared.Require(authz, shared.CapBookingDelete); err != nil {
		return err
	}
	return s.setDeleted(refNo, true)
}

// Restore clears the soft-delete flag.
func (s *Store) Restore(refNo string, authz shared.Authorizer) error {
	if err := shared.Require(authz, shared.CapBookingRestore); err != nil {
		return err
	}
	return s.setDeleted(refNo, false)
}

func (s *Store) setDeleted(refNo string, deleted bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[refNo]
	if !ok {
		return shared.ErrNotFound
	}
	b.Deleted = deleted
	return nil
}

// PermanentDelete removes the booking and its purchase entries for good.
func (s *Store) PermanentDelete(refNo string, authz shared.Authorizer) error {
	if err := shared.Require(authz, shared.CapBookingPurge); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.bookings[refNo]; !ok {
		return shared.ErrNotFound
	}
	delete(s.bookings, refNo)
	delete(s.purchases, refNo)
	for i, ref := range s.order {
		if ref == refNo {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// SetPurchases records the supplier-side entries for a booking. SaleTarget
// is fixed at first write: updates to an existing item keep the stored
// value regardless of what the caller passes.
func (s *Store) SetPurchases(refNo string, rows []PurchaseEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.bookings[refNo]; !ok {
		return shared.ErrNotFound
	}
	existing := s.purchases[refNo]
	stored := make([]PurchaseEntry, len(rows))
	for i, row := range rows {
		row.RefNo = refNo
		if i < len(existing) {
			row.SaleTarget = existing[i].SaleTarget
		}
		stored[i] = row
	}
	s.purchases[refNo] = stored
	return nil
}

// Purchases returns the purchase entries recorded for refNo.
func (s *Store) Purchases(refNo string) ([]PurchaseEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.bookings[refNo]; !ok {
		return nil, shared.ErrNotFound
	}
	return append([]PurchaseEntry(nil), s.purchases[refNo]...), nil
}

// ActivePurchases returns purchase entries for all non-deleted bookings,
// insertion order of the booking list.
func (s *Store) ActivePurchases() []PurchaseEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []PurchaseEntry
	for _, ref := range s.order {
		if s.bookings[ref].Deleted {
			continue
		}
		out = append(out, s.purchases[ref]...)
	}
	return out
}
