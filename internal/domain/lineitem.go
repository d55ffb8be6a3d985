package domain

import (
	"github.com/shopspring/decimal"
)

// LineItem represents a single named asset or liability slot
type LineItem struct {
	Name  string          `json:"name" yaml:"name"`
	Value decimal.Decimal `json:"value" yaml:"value"`
}

// NewLineItem creates a line item, flooring negative values to zero.
// Items live in a fixed catalog; they are reset, never removed.
func NewLineItem(name string, value decimal.Decimal) LineItem {
	if value.LessThan(decimal.Zero) {
		value = decimal.Zero
	}
	return LineItem{Name: name, Value: value}
}

// SetValue replaces the item's value, flooring negatives to zero
func (li *LineItem) SetValue(value decimal.Decimal) {
	if value.LessThan(decimal.Zero) {
		value = decimal.Zero
	}
	li.Value = value
}

// Reset zeroes the item's value while keeping its catalog slot
func (li *LineItem) Reset() {
	li.Value = decimal.Zero
}

// DefaultAssetItems returns the fixed catalog of asset slots
func DefaultAssetItems() []LineItem {
	return []LineItem{
		{Name: "Cash"},
		{Name: "Stocks"},
		{Name: "Bonds"},
		{Name: "Real Estate"},
		{Name: "Retirement Accounts"},
		{Name: "Other Assets"},
	}
}

// DefaultLiabilityItems returns the fixed catalog of liability slots
func DefaultLiabilityItems() []LineItem {
	return []LineItem{
		{Name: "Mortgage"},
		{Name: "Car Loans"},
		{Name: "Student Loans"},
		{Name: "Credit Cards"},
		{Name: "Other Debts"},
	}
}

// SetItemValue updates the named slot in place and reports whether it exists
func SetItemValue(items []LineItem, name string, value decimal.Decimal) bool {
	for i := range items {
		if items[i].Name == name {
			items[i].SetValue(value)
			return true
		}
	}
	return false
}

// Totals holds the derived balance-sheet summary for a plan
type Totals struct {
	TotalAssets      decimal.Decimal `json:"total_assets"`
	TotalLiabilities decimal.Decimal `json:"total_liabilities"`
	NetWorth         decimal.Decimal `json:"net_worth"`
}
