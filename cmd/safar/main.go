package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/safar-erp/safar-erp/internal/app"
	"github.com/safar-erp/safar-erp/internal/booking"
	"github.com/safar-erp/safar-erp/internal/reconcile"
	"github.com/safar-erp/safar-erp/internal/reports"
)

func main() {
	year := flag.Int("year", time.Now().Year(), "profit report year")
	month := flag.Int("month", 0, "profit report month, 0 for the full year")
	flag.Parse()

	cfg, err := app.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	logger := app.NewLogger(cfg)

	if err := run(context.Background(), cfg, logger, *year, time.Month(*month)); err != nil {
		logger.Error("report run failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *app.Config, logger *slog.Logger, year int, month time.Month) error {
	snap, err := loadSnapshot(ctx, cfg.SnapshotDir)
	if err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}
	logger.Info("snapshot loaded",
		slog.Int("bookings", len(snap.Bookings)),
		slog.Int("purchases", len(snap.Purchases)),
		slog.Int("customer_events", len(snap.CustomerEvents)),
		slog.Int("purchase_events", len(snap.PurchaseEvents)),
	)

	store := booking.NewStore()
	for _, rec := range snap.Bookings {
		if err := store.Save(rec.booking()); err != nil {
			logger.Warn("skipping booking", slog.String("ref_no", rec.RefNo), slog.Any("error", err))
		}
	}
	byRef := make(map[string][]booking.PurchaseEntry)
	var refOrder []string
	for _, rec := range snap.Purchases {
		if _, ok := byRef[rec.RefNo]; !ok {
			refOrder = append(refOrder, rec.RefNo)
		}
		byRef[rec.RefNo] = append(byRef[rec.RefNo], rec.entry())
	}
	for _, ref := range refOrder {
		if err := store.SetPurchases(ref, byRef[ref]); err != nil {
			logger.Warn("skipping purchase rows", slog.String("ref_no", ref), slog.Any("error", err))
		}
	}

	customerBook, err := buildBook(snap.CustomerEvents)
	if err != nil {
		return fmt.Errorf("customer ledger: %w", err)
	}
	purchaseBook, err := buildBook(snap.PurchaseEvents)
	if err != nil {
		return fmt.Errorf("purchase ledger: %w", err)
	}

	// soft-deleted bookings drop out of every aggregation here
	activeRefs := store.ActiveRefs()
	customerViews, err := customerBook.ViewsFor(activeRefs)
	if err != nil {
		return fmt.Errorf("customer views: %w", err)
	}
	purchaseViews, err := purchaseBook.ViewsFor(activeRefs)
	if err != nil {
		return fmt.Errorf("purchase views: %w", err)
	}

	printer := message.NewPrinter(language.Make(cfg.ReportLocale))
	out := os.Stdout

	pending := reconcile.FindPending(reconcile.SummarizeAll(customerViews), reconcile.SummarizeAll(purchaseViews))
	fmt.Fprintf(out, "== Reconciliation (%s)\n", cfg.AgencyName)
	if len(pending) == 0 {
		fmt.Fprintln(out, "all refs reconciled")
	}
	for _, item := range pending {
		fmt.Fprintf(out, "%-12s %-8s %s\n", item.RefNo, item.Status, item.Note)
	}

	fmt.Fprintln(out)
	reports.RenderBalanceSheet(out, printer, reports.BalanceSheetViewModel{
		AgencyName:     cfg.AgencyName,
		SourceCurrency: cfg.SourceCurrency,
		TargetCurrency: cfg.TargetCurrency,
		Report:         reports.BuildBalanceSheet(customerViews, purchaseViews),
	})

	fmt.Fprintln(out)
	reports.RenderBankBook(out, printer, reports.BankBookViewModel{
		AgencyName:     cfg.AgencyName,
		TargetCurrency: cfg.TargetCurrency,
		Report:         reports.MergeBankLedger(customerViews, purchaseViews),
	})

	window := reports.Window{Year: year, Month: month}
	profit := reports.BuildProfit(store.ActivePurchases(), customerBook.EventsFor(activeRefs), purchaseBook.EventsFor(activeRefs), window)
	fmt.Fprintln(out)
	reports.RenderProfit(out, printer, reports.ProfitViewModel{
		AgencyName:     cfg.AgencyName,
		PeriodLabel:    periodLabel(window),
		TargetCurrency: cfg.TargetCurrency,
		Report:         profit,
	})

	return nil
}

func periodLabel(w reports.Window) string {
	if w.Month == 0 {
		return fmt.Sprintf("%d", w.Year)
	}
	return fmt.Sprintf("%s %d", w.Month, w.Year)
}
