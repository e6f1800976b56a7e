package recap

import (
	"strings"

	"github.com/adiwignya/tembakau-api/internal/domain/entity"
	"github.com/adiwignya/tembakau-api/internal/domain/enum"
)

// KindAll matches both purchases and sales.
const KindAll = "all"

// Filter narrows a transaction list. Zero values mean "no bound";
// all predicates compose with logical AND.
type Filter struct {
	Kind         string // "all", "purchase" or "sale"
	NameContains string // case-insensitive substring match
	DateFrom     string // inclusive, yyyy-mm-dd
	DateTo       string // inclusive, yyyy-mm-dd
}

// Summary holds the aggregates over a filtered subset.
type Summary struct {
	PurchaseTotal int64 `json:"purchase_total"`
	SaleTotal     int64 `json:"sale_total"`
	Count         int   `json:"count"`
}

// Matches reports whether a single transaction passes every predicate.
// Date bounds are compared lexicographically on ISO date strings.
func (f Filter) Matches(t *entity.Transaction) bool {
	if f.Kind != "" && f.Kind != KindAll && string(t.Kind) != f.Kind {
		return false
	}
	if needle := strings.TrimSpace(f.NameContains); needle != "" {
		if !strings.Contains(strings.ToLower(t.Name), strings.ToLower(needle)) {
			return false
		}
	}
	date := t.DateString()
	if f.DateFrom != "" && date < f.DateFrom {
		return false
	}
	if f.DateTo != "" && date > f.DateTo {
		return false
	}
	return true
}

// Apply returns the subset of transactions passing the filter,
// preserving the original relative order.
func Apply(transactions []entity.Transaction, f Filter) []entity.Transaction {
	filtered := make([]entity.Transaction, 0, len(transactions))
	for i := range transactions {
		if f.Matches(&transactions[i]) {
			filtered = append(filtered, transactions[i])
		}
	}
	return filtered
}

// Summarize computes the purchase/sale totals and count over an
// already-filtered subset.
func Summarize(filtered []entity.Transaction) Summary {
	s := Summary{Count: len(filtered)}
	for i := range filtered {
		switch filtered[i].Kind {
		case enum.KindPurchase:
			s.PurchaseTotal += filtered[i].Total
		case enum.KindSale:
			s.SaleTotal += filtered[i].Total
		}
	}
	return s
}
