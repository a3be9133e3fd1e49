package booking

import (
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/safar-erp/safar-erp/internal/shared"
)

// Ref no prefixes per service type.
const (
	RefPrefixPackage   = "PKG"
	RefPrefixHotel     = "HOT"
	RefPrefixTransport = "TRN"
	RefPrefixTicket    = "TCK"
)

var refNoPattern = regexp.MustCompile(`^(PKG|HOT|TRN|TCK)-\d{5}$`)

// Flight holds per-fare-class traveler counts and rates in source currency.
type Flight struct {
	AdultCount  int
	AdultRate   decimal.Decimal
	ChildCount  int
	ChildRate   decimal.Decimal
	InfantCount int
	InfantRate  decimal.Decimal
}

// HotelStay is a single hotel row on a booking.
type HotelStay struct {
	CheckIn  time.Time
	CheckOut time.Time
	Nights   int
	Location string
	Hotel    string
	Rooms    int
	RoomType string
	Rate     decimal.Decimal
}

// VisaItem is a visa row on a booking.
type VisaItem struct {
	Type    string
	Persons int
	Rate    decimal.Decimal
}

// TransportItem is a ground-transport row on a booking.
type TransportItem struct {
	Description string
	Amount      decimal.Decimal
}

// Booking is a multi-service package priced in a source currency and
// invoiced in a target currency.
type Booking struct {
	RefNo         string `validate:"required,refno"`
	CustomerName  string `validate:"required"`
	BookingDate   time.Time
	Flight        Flight
	Hotels        []HotelStay
	Visas         []VisaItem
	Transports    []TransportItem
	ROE           decimal.Decimal
	TravelerCount int
	Deleted       bool
}

// PurchaseEntry is one priced item bought from a supplier against a booking.
// SaleTarget is copied from the booking at creation and never changes.
type PurchaseEntry struct {
	RefNo          string
	Item           string
	Date           time.Time
	SaleTarget     decimal.Decimal
	PurchaseSource decimal.Decimal
	PurchaseRate   decimal.Decimal
}

// PurchaseTarget converts the supplier cost into the target currency.
// A zero or negative rate yields zero.
func (e PurchaseEntry) PurchaseTarget() decimal.Decimal {
	if !e.PurchaseRate.IsPositive() {
		return decimal.Zero
	}
	return e.PurchaseSource.Mul(e.PurchaseRate)
}

// Profit is the sale value less the supplier cost, in target currency.
func (e PurchaseEntry) Profit() decimal.Decimal {
	return e.SaleTarget.Sub(e.PurchaseTarget())
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("refno", func(fl validator.FieldLevel) bool {
		return refNoPattern.MatchString(fl.Field().String())
	})
	return v
}

// Validate checks the booking's identifying fields.
func (b Booking) Validate() error {
	if b.RefNo == "" {
		return shared.MissingField("ref_no")
	}
	return validate.Struct(b)
}
