package reports

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/safar-erp/safar-erp/internal/booking"
	"github.com/safar-erp/safar-erp/internal/ledger"
)

func day(d int) time.Time {
	return time.Date(2025, time.March, d, 0, 0, 0, 0, time.UTC)
}

func view(t *testing.T, refNo string, anchor int64, payments ...ledger.Event) ledger.View {
	t.Helper()
	events := []ledger.Event{{
		ID:    refNo + "-anchor",
		RefNo: refNo,
		Date:  day(1),
		Debit: decimal.NewFromInt(anchor),
		Kind:  ledger.KindAnchor,
	}}
	for i := range payments {
		payments[i].RefNo = refNo
	}
	v, err := ledger.Compute(append(events, payments...))
	if err != nil {
		t.Fatalf("compute %s: %v", refNo, err)
	}
	return v
}

func bankPayment(id string, d int, amount int64) ledger.Event {
	return ledger.Event{
		ID:     id,
		Date:   day(d),
		Credit: decimal.NewFromInt(amount),
		Method: ledger.MethodBank,
		Kind:   ledger.KindPayment,
	}
}

func cashPayment(id string, d int, amount int64) ledger.Event {
	e := bankPayment(id, d, amount)
	e.Method = ledger.MethodCash
	return e
}

func TestBuildBalanceSheet(t *testing.T) {
	customers := []ledger.View{
		view(t, "PKG-00001", 337125, bankPayment("p1", 5, 100000)),
		view(t, "PKG-00002", 50000, bankPayment("p2", 6, 50000)), // settled
		view(t, "PKG-00003", 20000, bankPayment("p3", 7, 25000)), // overpaid
		view(t, "HOT-00001", 90000, cashPayment("p4", 8, 40000)),
	}
	purchases := []ledger.View{
		view(t, "PKG-00001", 300000, bankPayment("q1", 9, 120000)),
	}

	bs := BuildBalanceSheet(customers, purchases)

	if len(bs.Receivables.Rows) != 2 {
		t.Fatalf("expected 2 receivable rows, got %d", len(bs.Receivables.Rows))
	}
	if bs.Receivables.Rows[0].RefNo != "PKG-00001" || bs.Receivables.Rows[1].RefNo != "HOT-00001" {
		t.Fatal("rows must keep input order")
	}
	row := bs.Receivables.Rows[0]
	if row.Total.String() != "337125" || row.Settled.String() != "100000" || row.Balance.String() != "237125" {
		t.Fatalf("unexpected row: %+v", row)
	}
	if got := bs.Receivables.Total.String(); got != "287125" {
		t.Fatalf("receivable total = %s, want 287125", got)
	}
	if got := bs.Payables.Total.String(); got != "180000" {
		t.Fatalf("payable total = %s, want 180000", got)
	}
	if got := bs.Net.String(); got != "107125" {
		t.Fatalf("net = %s, want 107125", got)
	}
}

func TestBuildBalanceSheetSort(t *testing.T) {
	customers := []ledger.View{
		view(t, "PKG-00002", 100),
		view(t, "PKG-00001", 100),
	}
	bs := BuildBalanceSheet(customers, nil)
	bs.Receivables.SortByRefNo()
	if bs.Receivables.Rows[0].RefNo != "PKG-00001" {
		t.Fatal("sorted listing must order by ref no")
	}
}

func TestMergeBankLedger(t *testing.T) {
	customers := []ledger.View{
		view(t, "PKG-00001", 337125,
			bankPayment("in-late", 9, 237125),
			bankPayment("in-early", 5, 100000),
			cashPayment("cash", 6, 5000), // cash stays out of the bank book
		),
	}
	purchases := []ledger.View{
		view(t, "PKG-00001", 300000, bankPayment("out-1", 9, 150000)),
	}

	book := MergeBankLedger(customers, purchases)

	if len(book.Lines) != 3 {
		t.Fatalf("expected 3 bank lines, got %d", len(book.Lines))
	}
	if book.Lines[0].RefNo != "PKG-00001" || book.Lines[0].Direction != DirectionIn {
		t.Fatalf("unexpected first line: %+v", book.Lines[0])
	}
	if book.Lines[0].Amount.String() != "100000" {
		t.Fatalf("lines must be date ordered, got first amount %s", book.Lines[0].Amount)
	}
	// date tie between in-late and out-1: customer collection order wins
	if book.Lines[1].Direction != DirectionIn || book.Lines[2].Direction != DirectionOut {
		t.Fatal("stable sort must keep collection order on date ties")
	}
	if got := book.Lines[1].Balance.String(); got != "337125" {
		t.Fatalf("running balance = %s, want 337125", got)
	}
	if got := book.Balance.String(); got != "187125" {
		t.Fatalf("final cash position = %s, want 187125", got)
	}
}

func TestMergeBankLedgerEmpty(t *testing.T) {
	book := MergeBankLedger(nil, nil)
	if len(book.Lines) != 0 || !book.Balance.IsZero() {
		t.Fatalf("empty merge must start from zero, got %+v", book)
	}
}

func TestBuildProfit(t *testing.T) {
	entries := []booking.PurchaseEntry{{
		RefNo:          "PKG-00001",
		Date:           day(10),
		SaleTarget:     decimal.NewFromInt(337125),
		PurchaseSource: decimal.NewFromInt(4000),
		PurchaseRate:   decimal.NewFromInt(75),
	}}
	purchaseEvents := []ledger.Event{{
		RefNo:  "PKG-00001",
		Date:   day(12),
		Credit: decimal.NewFromInt(5000),
		Kind:   ledger.KindAdjustment,
	}}
	customerEvents := []ledger.Event{{
		RefNo: "PKG-00001",
		Date:  day(14),
		Debit: decimal.NewFromInt(2000),
		Kind:  ledger.KindAdjustment,
	}}

	r := BuildProfit(entries, customerEvents, purchaseEvents, Window{Year: 2025})

	if got := r.TotalSales.String(); got != "337125" {
		t.Fatalf("total sales = %s, want 337125", got)
	}
	if got := r.TotalPurchase.String(); got != "300000" {
		t.Fatalf("total purchase = %s, want 300000", got)
	}
	if got := r.PurchaseAdjustment.String(); got != "5000" {
		t.Fatalf("purchase adjustment = %s, want 5000", got)
	}
	if got := r.CustomerAdjustment.String(); got != "-2000" {
		t.Fatalf("customer adjustment = %s, want -2000", got)
	}
	if got := r.Profit.String(); got != "44125" {
		t.Fatalf("profit = %s, want 44125", got)
	}
}

func TestBuildProfitWindowFilters(t *testing.T) {
	inWindow := booking.PurchaseEntry{Date: day(10), SaleTarget: decimal.NewFromInt(1000), PurchaseSource: decimal.NewFromInt(10), PurchaseRate: decimal.NewFromInt(50)}
	otherMonth := inWindow
	otherMonth.Date = time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	otherYear := inWindow
	otherYear.Date = time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	undated := inWindow
	undated.Date = time.Time{}

	entries := []booking.PurchaseEntry{inWindow, otherMonth, otherYear, undated}

	full := BuildProfit(entries, nil, nil, Window{Year: 2025})
	if got := full.TotalSales.String(); got != "2000" {
		t.Fatalf("full-year sales = %s, want 2000", got)
	}

	march := BuildProfit(entries, nil, nil, Window{Year: 2025, Month: time.March})
	if got := march.TotalSales.String(); got != "1000" {
		t.Fatalf("march sales = %s, want 1000", got)
	}
	if got := march.Profit.String(); got != "500" {
		t.Fatalf("march profit = %s, want 500", got)
	}
}

func TestBuildProfitIgnoresNonAdjustments(t *testing.T) {
	events := []ledger.Event{{
		RefNo:  "PKG-00001",
		Date:   day(5),
		Credit: decimal.NewFromInt(100000),
		Kind:   ledger.KindPayment,
	}}
	r := BuildProfit(nil, events, events, Window{Year: 2025})
	if !r.Profit.IsZero() {
		t.Fatalf("payments must not move profit, got %s", r.Profit)
	}
}
