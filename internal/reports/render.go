package reports

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/safar-erp/safar-erp/internal/money"
)

// RenderBalanceSheet writes the balance sheet as fixed-width text.
func RenderBalanceSheet(w io.Writer, p *message.Printer, vm BalanceSheetViewModel) {
	fmt.Fprintf(w, "== Balance Sheet (%s, %s sales settled in %s)\n",
		vm.AgencyName, vm.SourceCurrency, vm.TargetCurrency)
	renderSection(w, p, vm.Report.Receivables)
	renderSection(w, p, vm.Report.Payables)
	fmt.Fprintf(w, "net position: %s\n", formatAmount(p, vm.Report.Net))
}

func renderSection(w io.Writer, p *message.Printer, s BalanceSheetSection) {
	fmt.Fprintf(w, "-- %s\n", s.Label)
	for _, row := range s.Rows {
		fmt.Fprintf(w, "%-12s total %14s settled %14s balance %14s\n",
			row.RefNo, formatAmount(p, row.Total), formatAmount(p, row.Settled), formatAmount(p, row.Balance))
	}
	fmt.Fprintf(w, "%s total: %s\n", s.Label, formatAmount(p, s.Total))
}

// RenderBankBook writes the merged bank ledger with its running balance.
func RenderBankBook(w io.Writer, p *message.Printer, vm BankBookViewModel) {
	fmt.Fprintf(w, "== Bank Ledger (%s, %s)\n", vm.AgencyName, vm.TargetCurrency)
	for _, line := range vm.Report.Lines {
		fmt.Fprintf(w, "%s %-12s %-3s %14s %14s\n",
			line.Date, line.RefNo, line.Direction, formatAmount(p, line.Amount), formatAmount(p, line.Balance))
	}
	fmt.Fprintf(w, "cash position: %s\n", formatAmount(p, vm.Report.Balance))
}

// RenderProfit writes the period profit summary.
func RenderProfit(w io.Writer, p *message.Printer, vm ProfitViewModel) {
	fmt.Fprintf(w, "== Profit %s (%s, %s)\n", vm.PeriodLabel, vm.AgencyName, vm.TargetCurrency)
	fmt.Fprintf(w, "total sales:         %s\n", formatAmount(p, vm.Report.TotalSales))
	fmt.Fprintf(w, "total purchase:      %s\n", formatAmount(p, vm.Report.TotalPurchase))
	fmt.Fprintf(w, "purchase adjustment: %s\n", formatAmount(p, vm.Report.PurchaseAdjustment))
	fmt.Fprintf(w, "customer adjustment: %s\n", formatAmount(p, vm.Report.CustomerAdjustment))
	fmt.Fprintf(w, "net profit:          %s\n", formatAmount(p, vm.Report.Profit))
}

// formatAmount renders an amount with locale-aware grouping. InexactFloat64
// overflows to Inf for extreme magnitudes; money.FromFloat folds non-finite
// values back to zero so the formatter never sees one.
func formatAmount(p *message.Printer, d decimal.Decimal) string {
	f, _ := money.FromFloat(d.InexactFloat64()).Float64()
	return p.Sprintf("%v", number.Decimal(f, number.MaxFractionDigits(2)))
}
