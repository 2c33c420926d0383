// Package models defines the core domain models for Tip Splitter.
//
// # Inputs
//
// The form has exactly three inputs, each constrained at the source:
//   - BillAmount: the pre-tip total, entered as text (non-negative)
//   - PartySize: number of people sharing the bill, chosen from 2 through 100
//   - TipRate: tip percentage, chosen from a fixed five-value set
//
// Invalid values are excluded by construction. The selectors only offer
// members of PartySizes and TipRates, and unparseable amount text is read
// as zero.
//
// # Outputs
//
// Split holds the derived values (tip, grand total, per-person share). It is
// recomputed from the inputs on every change and never stored on its own.
package models
