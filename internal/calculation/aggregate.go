package calculation

import (
	"github.com/finfree/independence-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// SumItems sums a line item collection. Inputs are pre-normalized so the
// result is always finite and non-negative.
func SumItems(items []domain.LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Value)
	}
	return total
}

// NetWorth computes total assets minus total liabilities. Unclamped: a
// negative net worth is a valid, meaningful result.
func NetWorth(totalAssets, totalLiabilities decimal.Decimal) decimal.Decimal {
	return totalAssets.Sub(totalLiabilities)
}

// ComputeTotals derives the full balance-sheet summary from the item
// collections. Recomputed from scratch on every input change.
func ComputeTotals(assets, liabilities []domain.LineItem) domain.Totals {
	totalAssets := SumItems(assets)
	totalLiabilities := SumItems(liabilities)
	return domain.Totals{
		TotalAssets:      totalAssets,
		TotalLiabilities: totalLiabilities,
		NetWorth:         NetWorth(totalAssets, totalLiabilities),
	}
}
