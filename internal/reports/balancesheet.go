package reports

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/safar-erp/safar-erp/internal/ledger"
)

// BalanceSheetRow summarises one ref still carrying an outstanding balance.
type BalanceSheetRow struct {
	RefNo   string
	Total   decimal.Decimal
	Settled decimal.Decimal
	Balance decimal.Decimal
}

// BalanceSheetSection contains the rows and total for one side.
type BalanceSheetSection struct {
	Label string
	Rows  []BalanceSheetRow
	Total decimal.Decimal
}

// BalanceSheet nets outstanding customer receivables against supplier
// payables across all refs.
type BalanceSheet struct {
	Receivables BalanceSheetSection
	Payables    BalanceSheetSection
	Net         decimal.Decimal
}

// BuildBalanceSheet keeps only refs with a positive balance; settled and
// overpaid refs are excluded, not zeroed. Row order follows the order of
// the input views.
func BuildBalanceSheet(customers, purchases []ledger.View) BalanceSheet {
	bs := BalanceSheet{
		Receivables: buildSection("Receivable", customers),
		Payables:    buildSection("Payable", purchases),
	}
	bs.Net = bs.Receivables.Total.Sub(bs.Payables.Total)
	return bs
}

func buildSection(label string, views []ledger.View) BalanceSheetSection {
	section := BalanceSheetSection{Label: label, Total: decimal.Zero}
	for _, v := range views {
		if !v.Balance.IsPositive() {
			continue
		}
		section.Rows = append(section.Rows, BalanceSheetRow{
			RefNo:   v.RefNo,
			Total:   v.AnchorAmount,
			Settled: v.AnchorAmount.Sub(v.Balance),
			Balance: v.Balance,
		})
		section.Total = section.Total.Add(v.Balance)
	}
	return section
}

// SortByRefNo orders a section's rows by ref no for callers that want a
// sorted listing instead of insertion order.
func (s *BalanceSheetSection) SortByRefNo() {
	sort.SliceStable(s.Rows, func(i, j int) bool { return s.Rows[i].RefNo < s.Rows[j].RefNo })
}
