package booking

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/safar-erp/safar-erp/internal/money"
)

// Totals is the priced result of a booking: per-category subtotals in the
// source currency, the converted grand total, and the per-traveler split.
type Totals struct {
	FlightSource    decimal.Decimal
	HotelSource     decimal.Decimal
	VisaSource      decimal.Decimal
	TransportSource decimal.Decimal
	GrandSource     decimal.Decimal
	GrandTarget     decimal.Decimal
	PerTraveler     decimal.Decimal
}

// Price computes the booking's totals. It is pure: no field of b is
// modified, and invalid numeric input has already been coerced to zero, so
// pricing never fails.
func Price(b Booking) Totals {
	t := Totals{
		FlightSource:    flightSubtotal(b.Flight),
		HotelSource:     hotelsSubtotal(b.Hotels),
		VisaSource:      visasSubtotal(b.Visas),
		TransportSource: transportsSubtotal(b.Transports),
	}
	t.GrandSource = t.FlightSource.Add(t.HotelSource).Add(t.VisaSource).Add(t.TransportSource)
	if b.ROE.IsPositive() {
		t.GrandTarget = t.GrandSource.Mul(b.ROE)
	}
	if b.TravelerCount > 0 {
		t.PerTraveler = money.Round(money.SafeDiv(t.GrandTarget, decimal.NewFromInt(int64(b.TravelerCount))))
	}
	return t
}

func flightSubtotal(f Flight) decimal.Decimal {
	sub := count(f.AdultCount).Mul(f.AdultRate)
	sub = sub.Add(count(f.ChildCount).Mul(f.ChildRate))
	return sub.Add(count(f.InfantCount).Mul(f.InfantRate))
}

func hotelsSubtotal(stays []HotelStay) decimal.Decimal {
	sub := decimal.Zero
	for _, stay := range stays {
		sub = sub.Add(HotelSubtotal(stay))
	}
	return sub
}

// HotelSubtotal is rate x rooms x nights for one stay.
func HotelSubtotal(stay HotelStay) decimal.Decimal {
	nights := Nights(stay)
	return stay.Rate.Mul(count(stay.Rooms)).Mul(count(nights))
}

// Nights returns the stay length. When both dates are present it is the
// calendar-day difference between check-out and check-in; otherwise the
// operator-entered value stands. Never negative.
func Nights(stay HotelStay) int {
	if stay.CheckIn.IsZero() || stay.CheckOut.IsZero() {
		if stay.Nights < 0 {
			return 0
		}
		return stay.Nights
	}
	nights := int(midnight(stay.CheckOut).Sub(midnight(stay.CheckIn)).Hours() / 24)
	if nights < 0 {
		return 0
	}
	return nights
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func visasSubtotal(items []VisaItem) decimal.Decimal {
	sub := decimal.Zero
	for _, item := range items {
		sub = sub.Add(item.Rate.Mul(count(item.Persons)))
	}
	return sub
}

func transportsSubtotal(items []TransportItem) decimal.Decimal {
	sub := decimal.Zero
	for _, item := range items {
		sub = sub.Add(item.Amount)
	}
	return sub
}

func count(n int) decimal.Decimal {
	if n < 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(n))
}
