package booking

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestPricePackageBooking(t *testing.T) {
	b := Booking{
		RefNo:        "PKG-00001",
		CustomerName: "Abdul Rehman",
		Hotels: []HotelStay{
			{CheckIn: date(2025, 3, 1), CheckOut: date(2025, 3, 5), Rooms: 2, Rate: decimal.NewFromInt(200)},
		},
		Visas:         []VisaItem{{Type: "Umrah", Persons: 3, Rate: decimal.NewFromInt(500)}},
		Transports:    []TransportItem{{Description: "Jeddah-Makkah", Amount: decimal.NewFromInt(1250)}},
		ROE:           decimal.RequireFromString("77.5"),
		TravelerCount: 2,
	}

	tot := Price(b)
	if got := tot.HotelSource.String(); got != "1600" {
		t.Fatalf("hotel subtotal = %s, want 1600", got)
	}
	if got := tot.VisaSource.String(); got != "1500" {
		t.Fatalf("visa subtotal = %s, want 1500", got)
	}
	if got := tot.GrandSource.String(); got != "4350" {
		t.Fatalf("grand source = %s, want 4350", got)
	}
	if got := tot.GrandTarget.String(); got != "337125" {
		t.Fatalf("grand target = %s, want 337125", got)
	}
	if got := tot.PerTraveler.String(); got != "168563" {
		t.Fatalf("per traveler = %s, want 168563", got)
	}
}

func TestPriceZeroTravelerGuard(t *testing.T) {
	b := Booking{
		RefNo:      "PKG-00003",
		Transports: []TransportItem{{Amount: decimal.NewFromInt(100)}},
		ROE:        decimal.NewFromInt(10),
	}
	tot := Price(b)
	if !tot.PerTraveler.IsZero() {
		t.Fatalf("per traveler with zero travelers must be 0, got %s", tot.PerTraveler)
	}

	b.TravelerCount = -4
	if got := Price(b).PerTraveler; !got.IsZero() {
		t.Fatalf("per traveler with negative travelers must be 0, got %s", got)
	}
}

func TestPriceNonPositiveROE(t *testing.T) {
	b := Booking{
		RefNo:         "PKG-00004",
		Transports:    []TransportItem{{Amount: decimal.NewFromInt(100)}},
		ROE:           decimal.NewFromInt(-5),
		TravelerCount: 1,
	}
	tot := Price(b)
	if got := tot.GrandSource.String(); got != "100" {
		t.Fatalf("grand source = %s, want 100", got)
	}
	if !tot.GrandTarget.IsZero() {
		t.Fatalf("negative roe must produce zero target, got %s", tot.GrandTarget)
	}
	if !tot.PerTraveler.IsZero() {
		t.Fatalf("per traveler must follow target to zero, got %s", tot.PerTraveler)
	}
}

func TestNights(t *testing.T) {
	stay := HotelStay{CheckIn: date(2025, 3, 1), CheckOut: date(2025, 3, 5), Nights: 99}
	if got := Nights(stay); got != 4 {
		t.Fatalf("nights must come from the dates when both present, got %d", got)
	}

	stay = HotelStay{Nights: 3}
	if got := Nights(stay); got != 3 {
		t.Fatalf("operator nights must stand without dates, got %d", got)
	}

	stay = HotelStay{CheckIn: date(2025, 3, 5), CheckOut: date(2025, 3, 1)}
	if got := Nights(stay); got != 0 {
		t.Fatalf("reversed dates must clamp to 0 nights, got %d", got)
	}
}

func TestFormCoercion(t *testing.T) {
	f := Form{
		RefNo:         " PKG-00001 ",
		CustomerName:  "Abdul Rehman",
		BookingDate:   "2025-02-15",
		AdultCount:    "not-a-number",
		AdultRate:     "",
		Hotels:        []HotelForm{{Nights: "4", Rooms: "2", Rate: "200"}},
		Visas:         []VisaForm{{Persons: "3", Rate: "five hundred"}},
		Transports:    []TransportForm{{Amount: "1,250"}},
		ROE:           "77.5",
		TravelerCount: "2",
	}

	b := f.Booking()
	if b.RefNo != "PKG-00001" {
		t.Fatalf("ref no not trimmed: %q", b.RefNo)
	}
	if b.Flight.AdultCount != 0 || !b.Flight.AdultRate.IsZero() {
		t.Fatal("bad flight input must coerce to zero")
	}
	if !b.Visas[0].Rate.IsZero() {
		t.Fatal("bad visa rate must coerce to zero")
	}
	if got := b.Transports[0].Amount.String(); got != "1250" {
		t.Fatalf("transport amount = %s, want 1250", got)
	}

	tot := Price(b)
	if got := tot.GrandSource.String(); got != "2850" {
		t.Fatalf("grand source = %s, want 2850", got)
	}
}

func TestPurchaseEntryDerivation(t *testing.T) {
	e := PurchaseEntry{
		RefNo:          "PKG-00001",
		Item:           "Hotel",
		SaleTarget:     decimal.NewFromInt(337125),
		PurchaseSource: decimal.NewFromInt(4000),
		PurchaseRate:   decimal.NewFromInt(75),
	}
	if got := e.PurchaseTarget().String(); got != "300000" {
		t.Fatalf("purchase target = %s, want 300000", got)
	}
	if got := e.Profit().String(); got != "37125" {
		t.Fatalf("profit = %s, want 37125", got)
	}

	e.PurchaseRate = decimal.Zero
	if !e.PurchaseTarget().IsZero() {
		t.Fatal("zero rate must produce zero purchase target")
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
