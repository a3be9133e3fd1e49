package ledger

import (
	"errors"
	"sort"

	"github.com/safar-erp/safar-erp/internal/shared"
)

var (
	// ErrAnchorMissing indicates the event list has no anchor to compute from.
	ErrAnchorMissing = errors.New("ledger: anchor event missing")
	// ErrDuplicateAnchor indicates more than one anchor for a ref.
	ErrDuplicateAnchor = errors.New("ledger: duplicate anchor event")
	// ErrMixedRefs indicates events from different refs in one computation.
	ErrMixedRefs = errors.New("ledger: events belong to different refs")
)

// Compute derives the ledger view for one ref. The anchor is always the
// first line regardless of its date; the remaining events are ordered
// ascending by date with ties kept in input order. The running balance
// follows balance[i] = balance[i-1] + debit[i] - credit[i], seeded from the
// anchor alone with its side folded out: a sale anchored as a debit and a
// purchase anchored as a credit both start at the outstanding magnitude,
// so payments reduce either ledger toward zero. Compute is pure: callers
// re-run it after any append or deletion and get the rebuilt balance
// column.
func Compute(events []Event) (View, error) {
	if len(events) == 0 {
		return View{}, ErrAnchorMissing
	}

	var anchor *Event
	rest := make([]Event, 0, len(events)-1)
	for i := range events {
		e := events[i]
		if e.RefNo == "" {
			return View{}, shared.MissingField("ref_no")
		}
		if e.RefNo != events[0].RefNo {
			return View{}, ErrMixedRefs
		}
		if e.Kind == KindAnchor {
			if anchor != nil {
				return View{}, ErrDuplicateAnchor
			}
			anchor = &e
			continue
		}
		if e.Date.IsZero() {
			return View{}, shared.MissingField("date")
		}
		rest = append(rest, e)
	}
	if anchor == nil {
		return View{}, ErrAnchorMissing
	}

	sort.SliceStable(rest, func(i, j int) bool { return rest[i].Date.Before(rest[j].Date) })

	view := View{
		RefNo:        anchor.RefNo,
		Lines:        make([]Line, 0, len(rest)+1),
		AnchorAmount: anchor.Signed().Abs(),
	}

	balance := anchor.Signed().Abs()
	view.Lines = append(view.Lines, Line{Event: *anchor, Balance: balance})
	for _, e := range rest {
		balance = balance.Add(e.Signed())
		view.Lines = append(view.Lines, Line{Event: e, Balance: balance})
	}

	view.Balance = balance
	view.Status = classify(view)
	return view, nil
}

// Overpayment counts as settled; anything still outstanding is partial.
// Pending requires knowledge of the purchase side and is never emitted here.
func classify(v View) Status {
	if !v.Balance.IsPositive() {
		return StatusSettled
	}
	return StatusPartial
}
