package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// Method is how money moved.
type Method string

const (
	MethodCash Method = "cash"
	MethodBank Method = "bank"
)

// Kind classifies a ledger event.
type Kind string

const (
	// KindAnchor is the immutable first entry carrying the full sale or
	// purchase value for a ref.
	KindAnchor Kind = "anchor"
	// KindPayment is a settlement installment; it always reduces the balance.
	KindPayment Kind = "payment"
	// KindAdjustment moves the balance in either direction.
	KindAdjustment Kind = "adjustment"
)

// Status is the settlement state derived from a ledger's final balance.
type Status string

const (
	StatusSettled Status = "SETTLED"
	StatusPartial Status = "PARTIAL"
	// StatusPending is only emitted by the reconciliation detector; a single
	// ledger cannot know whether its purchase counterpart exists.
	StatusPending Status = "PENDING"
)

// Event is one dated debit/credit entry belonging to a single ref.
// Exactly one of Debit and Credit is non-zero, except the anchor.
type Event struct {
	ID          string
	RefNo       string
	Date        time.Time
	Description string
	Debit       decimal.Decimal
	Credit      decimal.Decimal
	Method      Method
	Kind        Kind
}

// Amount is the magnitude of the event's non-zero side.
func (e Event) Amount() decimal.Decimal {
	return e.Debit.Add(e.Credit)
}

// Signed is the event's effect on a running balance: debit minus credit.
func (e Event) Signed() decimal.Decimal {
	return e.Debit.Sub(e.Credit)
}

// Line is an event augmented with the cumulative balance after it.
type Line struct {
	Event
	Balance decimal.Decimal
}

// View is the computed ledger for one ref: ordered lines, the anchor value,
// the final balance, and its settlement classification.
type View struct {
	RefNo        string
	Lines        []Line
	AnchorAmount decimal.Decimal
	Balance      decimal.Decimal
	Status       Status
}
