// Package form holds the tip form's state and the unidirectional update loop
// that drives it: events go through a pure reducer, the store recomputes the
// split, and subscribers render the new snapshot.
package form

import "github.com/mmynk/tipsplitter/internal/models"

// Field identifies one of the form's input controls.
type Field int

const (
	FieldAmount Field = iota
	FieldPartySize
	FieldTipRate
)

// Fields lists the input controls in on-screen order.
var Fields = []Field{FieldAmount, FieldPartySize, FieldTipRate}

func (f Field) String() string {
	switch f {
	case FieldAmount:
		return "amount"
	case FieldPartySize:
		return "party_size"
	case FieldTipRate:
		return "tip_rate"
	default:
		return "unknown"
	}
}

// State is everything the user can change on the form.
type State struct {
	// AmountText is the bill amount field's raw text.
	AmountText string

	// Amount is AmountText parsed, zero when the text is empty or invalid.
	Amount models.BillAmount

	PartySize models.PartySize
	TipRate   models.TipRate

	// AmountFocused is true while the amount field is being edited.
	AmountFocused bool

	// Selected is the control the keyboard cursor is on.
	Selected Field
}

// Default returns the state the form starts with on every launch.
func Default() State {
	return State{
		PartySize: models.DefaultPartySize,
		TipRate:   models.DefaultTipRate,
		Selected:  FieldAmount,
	}
}

// Snapshot is a state together with the split derived from it.
type Snapshot struct {
	State State
	Split models.Split
}
