// Package reconcile finds sale refs whose purchase counterpart is missing
// or not fully settled. It is pure over the two summary lists it is given;
// soft-deleted refs are excluded by the caller before they get here.
package reconcile

import (
	"github.com/shopspring/decimal"

	"github.com/safar-erp/safar-erp/internal/ledger"
)

// RefSummary is the settlement snapshot of one ref on one side.
type RefSummary struct {
	RefNo        string
	Balance      decimal.Decimal
	AnchorAmount decimal.Decimal
}

// Summarize trims a ledger view down to what the detector needs.
func Summarize(v ledger.View) RefSummary {
	return RefSummary{RefNo: v.RefNo, Balance: v.Balance, AnchorAmount: v.AnchorAmount}
}

// SummarizeAll converts a slice of views, preserving order.
func SummarizeAll(views []ledger.View) []RefSummary {
	out := make([]RefSummary, len(views))
	for i, v := range views {
		out[i] = Summarize(v)
	}
	return out
}

// PendingItem flags a ref needing back-office attention.
type PendingItem struct {
	RefNo  string
	Status ledger.Status
	Note   string
}

// FindPending emits one PENDING item per sale ref with no purchase
// counterpart, and one PARTIAL item per purchase ref still carrying a
// positive balance. Matching is exact, case-sensitive ref equality.
func FindPending(sales, purchases []RefSummary) []PendingItem {
	purchased := make(map[string]struct{}, len(purchases))
	for _, p := range purchases {
		purchased[p.RefNo] = struct{}{}
	}

	var items []PendingItem
	for _, s := range sales {
		if _, ok := purchased[s.RefNo]; !ok {
			items = append(items, PendingItem{
				RefNo:  s.RefNo,
				Status: ledger.StatusPending,
				Note:   "sale exists, purchase missing",
			})
		}
	}
	for _, p := range purchases {
		if p.Balance.IsPositive() {
			items = append(items, PendingItem{
				RefNo:  p.RefNo,
				Status: ledger.StatusPartial,
				Note:   "balance outstanding",
			})
		}
	}
	return items
}
