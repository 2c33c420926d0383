package models

const (
	// MinPartySize is the smallest party the selector offers.
	MinPartySize PartySize = 2

	// MaxPartySize is the largest party the selector offers.
	MaxPartySize PartySize = 100

	// DefaultPartySize is selected on launch.
	DefaultPartySize = MinPartySize

	// DefaultTipRate is selected on launch.
	DefaultTipRate TipRate = 20
)

// BillAmount is the pre-tip total owed, in the display currency's major unit.
// It is never negative.
type BillAmount float64

// PartySize is the number of people splitting the bill.
// Always within [MinPartySize, MaxPartySize].
type PartySize int

// TipRate is a tip percentage (20 means 20%).
type TipRate int

// tipRates is the selector's display order.
var tipRates = [...]TipRate{10, 15, 20, 25, 0}

// TipRates returns the offered tip percentages in display order.
func TipRates() []TipRate {
	out := make([]TipRate, len(tipRates))
	copy(out, tipRates[:])
	return out
}

// PartySizes returns every selectable party size in ascending order. The
// party size selector steps through this list.
func PartySizes() []PartySize {
	out := make([]PartySize, 0, MaxPartySize-MinPartySize+1)
	for n := MinPartySize; n <= MaxPartySize; n++ {
		out = append(out, n)
	}
	return out
}

// Valid reports whether the party size is one the selector offers.
func (p PartySize) Valid() bool {
	return p >= MinPartySize && p <= MaxPartySize
}

// Valid reports whether the rate is one of the offered tip percentages.
func (r TipRate) Valid() bool {
	return r.Index() >= 0
}

// Index returns the position of the rate in the display order, or -1.
func (r TipRate) Index() int {
	for i, v := range tipRates {
		if v == r {
			return i
		}
	}
	return -1
}

// Split is the calculated result for one set of inputs.
// This is the output of the tip calculation.
type Split struct {
	// TipValue is the tip on top of the bill: bill / 100 * rate.
	TipValue float64

	// GrandTotal is the bill plus the tip.
	GrandTotal float64

	// PerPersonAmount is the grand total divided evenly by the party size.
	PerPersonAmount float64
}
