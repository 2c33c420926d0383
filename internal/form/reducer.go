package form

import (
	"slices"

	"github.com/mmynk/tipsplitter/internal/calculator"
	"github.com/mmynk/tipsplitter/internal/models"
)

// Reducer maps a state and an event to the next state.
type Reducer func(State, Event) State

// Middleware wraps a Reducer, e.g. to log every event.
type Middleware func(Reducer) Reducer

// Reduce is the form's reducer. It never mutates its input.
// Selections outside the selectors' domains leave the state unchanged.
func Reduce(s State, e Event) State {
	switch e := e.(type) {
	case AmountEdited:
		s.AmountText = e.Text
		s.Amount = calculator.ParseAmount(e.Text)
		s.AmountFocused = true
		s.Selected = FieldAmount
	case AmountFocused:
		s.AmountFocused = true
		s.Selected = FieldAmount
	case Dismissed:
		s.AmountFocused = false
	case PartySizeSelected:
		if e.Size.Valid() {
			s.PartySize = e.Size
		}
	case TipRateSelected:
		if e.Rate.Valid() {
			s.TipRate = e.Rate
		}
	case FieldSelected:
		if e.Field < FieldAmount || e.Field > FieldTipRate {
			return s
		}
		s.Selected = e.Field
		if e.Field != FieldAmount {
			s.AmountFocused = false
		}
	}
	return s
}

// NextPartySize steps n places up the party size selector, stopping at the
// largest size. A size the selector does not offer resets to the default.
func NextPartySize(p models.PartySize, n int) models.PartySize {
	return stepPartySize(p, n)
}

// PrevPartySize steps n places down the party size selector, stopping at
// the smallest size. A size the selector does not offer resets to the
// default.
func PrevPartySize(p models.PartySize, n int) models.PartySize {
	return stepPartySize(p, -n)
}

func stepPartySize(p models.PartySize, delta int) models.PartySize {
	sizes := models.PartySizes()
	i := slices.Index(sizes, p)
	if i < 0 {
		return models.DefaultPartySize
	}
	i = max(0, min(len(sizes)-1, i+delta))
	return sizes[i]
}

// NextTipRate returns the rate after r in display order, wrapping around.
func NextTipRate(r models.TipRate) models.TipRate {
	return stepTipRate(r, 1)
}

// PrevTipRate returns the rate before r in display order, wrapping around.
func PrevTipRate(r models.TipRate) models.TipRate {
	return stepTipRate(r, -1)
}

func stepTipRate(r models.TipRate, delta int) models.TipRate {
	rates := models.TipRates()
	i := r.Index()
	if i < 0 {
		return models.DefaultTipRate
	}
	i = (i + delta + len(rates)) % len(rates)
	return rates[i]
}
