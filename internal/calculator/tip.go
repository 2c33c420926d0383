package calculator

import (
	"math"
	"strconv"
	"strings"

	"github.com/mmynk/tipsplitter/internal/models"
)

// CalculateTip computes the tip, grand total and per-person share for a bill.
// Based on the algorithm:
//
//	tip = bill / 100 × rate
//	grand_total = bill + tip
//	per_person = grand_total / people
//
// Values are not rounded. The party size is always at least 2, so the
// division is safe without a guard.
func CalculateTip(bill models.BillAmount, people models.PartySize, rate models.TipRate) models.Split {
	tipValue := float64(bill) / 100 * float64(rate)
	grandTotal := float64(bill) + tipValue

	return models.Split{
		TipValue:        tipValue,
		GrandTotal:      grandTotal,
		PerPersonAmount: grandTotal / float64(people),
	}
}

// ParseAmount converts bill amount field text into a BillAmount.
// Empty, non-numeric, non-finite and negative input all read as zero.
// When both '.' and ',' appear, the one used last is the decimal separator
// and the other is grouping ("1,234.50" and "1.234,50" are both 1234.5).
// A lone comma is a decimal separator; a separator repeated with no other
// kind present is grouping.
func ParseAmount(text string) models.BillAmount {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0
	}

	dot, comma := strings.LastIndex(s, "."), strings.LastIndex(s, ",")
	switch {
	case dot >= 0 && comma >= 0:
		if dot > comma {
			s = strings.ReplaceAll(s, ",", "")
		} else {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		}
	case comma >= 0:
		if strings.Count(s, ",") == 1 {
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case strings.Count(s, ".") > 1:
		s = strings.ReplaceAll(s, ".", "")
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0
	}
	return models.BillAmount(v)
}
