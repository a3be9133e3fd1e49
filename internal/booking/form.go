package booking

import (
	"strings"
	"time"

	"github.com/safar-erp/safar-erp/internal/money"
)

// Form carries raw operator input for a booking. Every numeric field is a
// string exactly as typed; conversion goes through the money package so a
// blank or mistyped value contributes zero instead of corrupting totals.
type Form struct {
	RefNo        string
	CustomerName string
	BookingDate  string

	AdultCount  string
	AdultRate   string
	ChildCount  string
	ChildRate   string
	InfantCount string
	InfantRate  string

	Hotels     []HotelForm
	Visas      []VisaForm
	Transports []TransportForm

	ROE           string
	TravelerCount string
}

// HotelForm is one raw hotel row.
type HotelForm struct {
	CheckIn  string
	CheckOut string
	Nights   string
	Location string
	Hotel    string
	Rooms    string
	RoomType string
	Rate     string
}

// VisaForm is one raw visa row.
type VisaForm struct {
	Type    string
	Persons string
	Rate    string
}

// TransportForm is one raw transport row.
type TransportForm struct {
	Description string
	Amount      string
}

const dateLayout = "2006-01-02"

// ParseDate reads an ISO date, returning the zero time for anything else.
func ParseDate(s string) time.Time {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}
	}
	return t
}

// Booking converts the form into a domain record, coercing every numeric
// field through the parse-or-zero primitive.
func (f Form) Booking() Booking {
	b := Booking{
		RefNo:        strings.TrimSpace(f.RefNo),
		CustomerName: strings.TrimSpace(f.CustomerName),
		BookingDate:  ParseDate(f.BookingDate),
		Flight: Flight{
			AdultCount:  money.ParseCount(f.AdultCount),
			AdultRate:   money.Parse(f.AdultRate),
			ChildCount:  money.ParseCount(f.ChildCount),
			ChildRate:   money.Parse(f.ChildRate),
			InfantCount: money.ParseCount(f.InfantCount),
			InfantRate:  money.Parse(f.InfantRate),
		},
		ROE:           money.Parse(f.ROE),
		TravelerCount: money.ParseCount(f.TravelerCount),
	}
	for _, h := range f.Hotels {
		b.Hotels = append(b.Hotels, HotelStay{
			CheckIn:  ParseDate(h.CheckIn),
			CheckOut: ParseDate(h.CheckOut),
			Nights:   money.ParseCount(h.Nights),
			Location: strings.TrimSpace(h.Location),
			Hotel:    strings.TrimSpace(h.Hotel),
			Rooms:    money.ParseCount(h.Rooms),
			RoomType: strings.TrimSpace(h.RoomType),
			Rate:     money.Parse(h.Rate),
		})
	}
	for _, v := range f.Visas {
		b.Visas = append(b.Visas, VisaItem{
			Type:    strings.TrimSpace(v.Type),
			Persons: money.ParseCount(v.Persons),
			Rate:    money.Parse(v.Rate),
		})
	}
	for _, tr := range f.Transports {
		b.Transports = append(b.Transports, TransportItem{
			Description: strings.TrimSpace(tr.Description),
			Amount:      money.Parse(tr.Amount),
		})
	}
	return b
}
