package reports

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/safar-erp/safar-erp/internal/booking"
	"github.com/safar-erp/safar-erp/internal/ledger"
)

// Window selects a reporting period: a year, optionally narrowed to one
// month. A zero Month means the full year.
type Window struct {
	Year  int
	Month time.Month
}

// Contains reports whether t falls inside the window. Zero dates never
// match, which is how unparsable rows drop out silently.
func (w Window) Contains(t time.Time) bool {
	if t.IsZero() || t.Year() != w.Year {
		return false
	}
	return w.Month == 0 || t.Month() == w.Month
}

// ProfitReport sums sales, purchases, and ledger adjustments over a window.
type ProfitReport struct {
	Window             Window
	TotalSales         decimal.Decimal
	TotalPurchase      decimal.Decimal
	PurchaseAdjustment decimal.Decimal
	CustomerAdjustment decimal.Decimal
	Profit             decimal.Decimal
}

// BuildProfit computes profit = sales - purchase + purchase adjustments -
// customer adjustments. An adjustment's signed value is credit minus debit:
// a credit on the purchase ledger is cost forgiven (profit up), a credit on
// the customer ledger is revenue given up (profit down).
func BuildProfit(entries []booking.PurchaseEntry, customerEvents, purchaseEvents []ledger.Event, w Window) ProfitReport {
	r := ProfitReport{
		Window:             w,
		TotalSales:         decimal.Zero,
		TotalPurchase:      decimal.Zero,
		PurchaseAdjustment: decimal.Zero,
		CustomerAdjustment: decimal.Zero,
	}

	for _, e := range entries {
		if !w.Contains(e.Date) {
			continue
		}
		r.TotalSales = r.TotalSales.Add(e.SaleTarget)
		r.TotalPurchase = r.TotalPurchase.Add(e.PurchaseTarget())
	}
	r.PurchaseAdjustment = sumAdjustments(purchaseEvents, w)
	r.CustomerAdjustment = sumAdjustments(customerEvents, w)

	r.Profit = r.TotalSales.Sub(r.TotalPurchase).Add(r.PurchaseAdjustment).Sub(r.CustomerAdjustment)
	return r
}

func sumAdjustments(events []ledger.Event, w Window) decimal.Decimal {
	sum := decimal.Zero
	for _, e := range events {
		if e.Kind != ledger.KindAdjustment || !w.Contains(e.Date) {
			continue
		}
		sum = sum.Add(e.Credit.Sub(e.Debit))
	}
	return sum
}
