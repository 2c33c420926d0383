package form

import "github.com/mmynk/tipsplitter/internal/models"

// Event is a discrete user action on the form.
type Event interface {
	Name() string
}

// AmountEdited replaces the bill amount field's text. It also focuses the
// field.
type AmountEdited struct {
	Text string
}

// AmountFocused starts editing the bill amount field.
type AmountFocused struct{}

// Dismissed ends editing of the bill amount field. The value is kept.
type Dismissed struct{}

// PartySizeSelected picks a party size from the selector.
type PartySizeSelected struct {
	Size models.PartySize
}

// TipRateSelected picks a tip percentage from the segmented control.
type TipRateSelected struct {
	Rate models.TipRate
}

// FieldSelected moves the keyboard cursor to another control.
type FieldSelected struct {
	Field Field
}

func (AmountEdited) Name() string      { return "amount_edited" }
func (AmountFocused) Name() string     { return "amount_focused" }
func (Dismissed) Name() string         { return "dismissed" }
func (PartySizeSelected) Name() string { return "party_size_selected" }
func (TipRateSelected) Name() string   { return "tip_rate_selected" }
func (FieldSelected) Name() string     { return "field_selected" }
