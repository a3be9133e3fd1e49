package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/safar-erp/safar-erp/internal/booking"
	"github.com/safar-erp/safar-erp/internal/ledger"
	"github.com/safar-erp/safar-erp/internal/money"
)

// Snapshot file names inside the snapshot directory.
const (
	bookingsFile       = "bookings.json"
	purchasesFile      = "purchases.json"
	customerLedgerFile = "customer_ledger.json"
	purchaseLedgerFile = "purchase_ledger.json"
)

// All numeric fields arrive as strings exactly as the back office exported
// them; conversion happens through the booking form and the money package
// so malformed values degrade to zero instead of failing the load.

type hotelRecord struct {
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
	Nights   string `json:"nights"`
	Location string `json:"location"`
	Hotel    string `json:"hotel"`
	Rooms    string `json:"rooms"`
	Type     string `json:"type"`
	Rate     string `json:"rate"`
}

type visaRecord struct {
	Type    string `json:"type"`
	Persons string `json:"persons"`
	Rate    string `json:"rate"`
}

type transportRecord struct {
	Description string `json:"description"`
	Amount      string `json:"amount"`
}

type bookingRecord struct {
	RefNo         string            `json:"ref_no"`
	CustomerName  string            `json:"customer_name"`
	BookingDate   string            `json:"booking_date"`
	AdultCount    string            `json:"adult_count"`
	AdultRate     string            `json:"adult_rate"`
	ChildCount    string            `json:"child_count"`
	ChildRate     string            `json:"child_rate"`
	InfantCount   string            `json:"infant_count"`
	InfantRate    string            `json:"infant_rate"`
	Hotels        []hotelRecord     `json:"hotels"`
	Visas         []visaRecord      `json:"visa"`
	Transports    []transportRecord `json:"transport"`
	ROE           string            `json:"roe"`
	TravelerCount string            `json:"traveler_count"`
	Deleted       bool              `json:"deleted"`
}

func (r bookingRecord) booking() booking.Booking {
	f := booking.Form{
		RefNo:         r.RefNo,
		CustomerName:  r.CustomerName,
		BookingDate:   r.BookingDate,
		AdultCount:    r.AdultCount,
		AdultRate:     r.AdultRate,
		ChildCount:    r.ChildCount,
		ChildRate:     r.ChildRate,
		InfantCount:   r.InfantCount,
		InfantRate:    r.InfantRate,
		ROE:           r.ROE,
		TravelerCount: r.TravelerCount,
	}
	for _, h := range r.Hotels {
		f.Hotels = append(f.Hotels, booking.HotelForm{
			CheckIn: h.CheckIn, CheckOut: h.CheckOut, Nights: h.Nights,
			Location: h.Location, Hotel: h.Hotel, Rooms: h.Rooms,
			RoomType: h.Type, Rate: h.Rate,
		})
	}
	for _, v := range r.Visas {
		f.Visas = append(f.Visas, booking.VisaForm{Type: v.Type, Persons: v.Persons, Rate: v.Rate})
	}
	for _, tr := range r.Transports {
		f.Transports = append(f.Transports, booking.TransportForm{Description: tr.Description, Amount: tr.Amount})
	}
	b := f.Booking()
	b.Deleted = r.Deleted
	return b
}

type purchaseRecord struct {
	RefNo          string `json:"ref_no"`
	Item           string `json:"item"`
	Date           string `json:"date"`
	SaleTarget     string `json:"sale_target"`
	PurchaseSource string `json:"purchase_source"`
	PurchaseRate   string `json:"purchase_rate"`
}

func (r purchaseRecord) entry() booking.PurchaseEntry {
	return booking.PurchaseEntry{
		RefNo:          r.RefNo,
		Item:           r.Item,
		Date:           booking.ParseDate(r.Date),
		SaleTarget:     money.Parse(r.SaleTarget),
		PurchaseSource: money.Parse(r.PurchaseSource),
		PurchaseRate:   money.Parse(r.PurchaseRate),
	}
}

type eventRecord struct {
	ID          string `json:"id"`
	RefNo       string `json:"ref_no"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Debit       string `json:"debit"`
	Credit      string `json:"credit"`
	Method      string `json:"method"`
	Kind        string `json:"kind"`
}

func (r eventRecord) event() ledger.Event {
	return ledger.Event{
		ID:          r.ID,
		RefNo:       r.RefNo,
		Date:        booking.ParseDate(r.Date),
		Description: r.Description,
		Debit:       money.Parse(r.Debit),
		Credit:      money.Parse(r.Credit),
		Method:      ledger.Method(r.Method),
		Kind:        ledger.Kind(r.Kind),
	}
}

type snapshot struct {
	Bookings       []bookingRecord
	Purchases      []purchaseRecord
	CustomerEvents []eventRecord
	PurchaseEvents []eventRecord
}

// loadSnapshot reads the four export files concurrently. A missing file is
// an empty list, not an error; a malformed file fails the load.
func loadSnapshot(ctx context.Context, dir string) (*snapshot, error) {
	var snap snapshot
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error { return readJSON(filepath.Join(dir, bookingsFile), &snap.Bookings) })
	g.Go(func() error { return readJSON(filepath.Join(dir, purchasesFile), &snap.Purchases) })
	g.Go(func() error { return readJSON(filepath.Join(dir, customerLedgerFile), &snap.CustomerEvents) })
	g.Go(func() error { return readJSON(filepath.Join(dir, purchaseLedgerFile), &snap.PurchaseEvents) })
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &snap, nil
}

func readJSON(path string, out any) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return nil
}

// buildBook opens one ledger per ref from its anchor and appends the rest.
// Events arrive in export order; anchors are located first per ref.
func buildBook(records []eventRecord) (*ledger.Book, error) {
	book := ledger.NewBook()
	for _, r := range records {
		if ledger.Kind(r.Kind) != ledger.KindAnchor {
			continue
		}
		if err := book.Open(r.RefNo, r.event()); err != nil {
			return nil, fmt.Errorf("anchor %s: %w", r.RefNo, err)
		}
	}
	for _, r := range records {
		if ledger.Kind(r.Kind) == ledger.KindAnchor {
			continue
		}
		if err := book.Append(r.event()); err != nil {
			return nil, fmt.Errorf("event %s/%s: %w", r.RefNo, r.ID, err)
		}
	}
	return book, nil
}
