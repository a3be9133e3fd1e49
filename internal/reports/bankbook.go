package reports

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/safar-erp/safar-erp/internal/ledger"
)

// Direction tags a bank movement's effect on the agency cash position.
type Direction string

const (
	DirectionIn  Direction = "in"
	DirectionOut Direction = "out"
)

// BankLine is one bank movement in the merged cash-flow ledger.
type BankLine struct {
	RefNo       string
	Date        string
	Description string
	Direction   Direction
	Amount      decimal.Decimal
	Balance     decimal.Decimal
}

// BankBook is the agency-wide bank ledger: every bank-method event from
// every customer and purchase ledger, merged chronologically with a single
// running cash balance. This balance models the agency's cash position, not
// any one counterparty's debt.
type BankBook struct {
	Lines   []BankLine
	Balance decimal.Decimal
}

// MergeBankLedger collects bank-method payments and adjustments across both
// sides: customer receipts flow in, purchase payments flow out. The merge
// sort is stable so same-date events keep their collection order.
func MergeBankLedger(customers, purchases []ledger.View) BankBook {
	type tagged struct {
		event     ledger.Event
		direction Direction
	}
	var events []tagged
	collect := func(views []ledger.View, direction Direction) {
		for _, v := range views {
			for _, line := range v.Lines {
				if line.Method != ledger.MethodBank || line.Kind == ledger.KindAnchor {
					continue
				}
				events = append(events, tagged{event: line.Event, direction: direction})
			}
		}
	}
	collect(customers, DirectionIn)
	collect(purchases, DirectionOut)

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].event.Date.Before(events[j].event.Date)
	})

	book := BankBook{Balance: decimal.Zero}
	for _, e := range events {
		amount := e.event.Amount()
		if e.direction == DirectionIn {
			book.Balance = book.Balance.Add(amount)
		} else {
			book.Balance = book.Balance.Sub(amount)
		}
		book.Lines = append(book.Lines, BankLine{
			RefNo:       e.event.RefNo,
			Date:        e.event.Date.Format("2006-01-02"),
			Description: e.event.Description,
			Direction:   e.direction,
			Amount:      amount,
			Balance:     book.Balance,
		})
	}
	return book
}
