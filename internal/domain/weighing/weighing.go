package weighing

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/adiwignya/tembakau-api/internal/domain/entity"
)

// deduction applied to every item: 5% tare/spillage loss, floored.
const (
	deductionNumerator   = 95
	deductionDenominator = 100
)

// ItemInput is one item as entered on the form: a name, the ordered
// weighing passes (kg) and the raw price field.
type ItemInput struct {
	Name    string
	Weights []int
	Price   string
}

// ItemCalc holds the derived values of a single item.
type ItemCalc struct {
	TotalWeight int
	NetWeight   int
	Price       int64
	Subtotal    int64
}

// NetWeight returns the weight after the 5% deduction, floored to an
// integer. Floor, not rounding: rounding up would overcount net weight.
func NetWeight(totalWeight int) int {
	return totalWeight * deductionNumerator / deductionDenominator
}

// ParsePrice parses a unit price field, defaulting to 0 when the field
// is blank or not a valid non-negative integer.
func ParsePrice(s string) int64 {
	p, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || p < 0 {
		return 0
	}
	return p
}

// CalculateItem derives total weight, net weight and subtotal for one
// item. Weights are assumed to be valid positive integers; entry-time
// validation is the caller's job (see ValidateSubmission). An empty
// weight list yields zeros, which is a valid in-progress state.
func CalculateItem(weights []int, price string) ItemCalc {
	total := 0
	for _, kg := range weights {
		total += kg
	}
	net := NetWeight(total)
	p := ParsePrice(price)
	return ItemCalc{
		TotalWeight: total,
		NetWeight:   net,
		Price:       p,
		Subtotal:    int64(net) * p,
	}
}

// Total sums the subtotals of all items. No rounding happens at this
// level; each item's floor is the only rounding in the system.
func Total(items []ItemInput) int64 {
	var total int64
	for _, item := range items {
		total += CalculateItem(item.Weights, item.Price).Subtotal
	}
	return total
}

// FieldError describes one submission rule violation.
type FieldError struct {
	Field   string
	Message string
}

// ValidateSubmission checks the all-or-nothing submission preconditions:
// a trimmed non-empty counterparty name, and for every item at least one
// weighing pass, only positive integer weights, and a non-empty price
// field. It has no side effects and touches no persistence.
func ValidateSubmission(name string, items []ItemInput) []FieldError {
	var errs []FieldError

	if strings.TrimSpace(name) == "" {
		errs = append(errs, FieldError{Field: "name", Message: "counterparty name is required"})
	}
	if len(items) == 0 {
		errs = append(errs, FieldError{Field: "items", Message: "at least one item is required"})
	}

	for i, item := range items {
		if len(item.Weights) == 0 {
			errs = append(errs, FieldError{
				Field:   fmt.Sprintf("items[%d].weights", i),
				Message: "at least one weighing pass is required",
			})
		}
		for j, kg := range item.Weights {
			if kg <= 0 {
				errs = append(errs, FieldError{
					Field:   fmt.Sprintf("items[%d].weights[%d]", i, j),
					Message: "weight must be a positive integer",
				})
			}
		}
		if strings.TrimSpace(item.Price) == "" {
			errs = append(errs, FieldError{
				Field:   fmt.Sprintf("items[%d].price", i),
				Message: "price is required",
			})
		}
	}

	return errs
}

// BuildItems shapes validated form items into persistable records tagged
// with the owning transaction's identity. The transaction record must
// already exist: its ID is the foreign key on every row.
func BuildItems(transactionID uuid.UUID, items []ItemInput) []entity.TransactionItem {
	rows := make([]entity.TransactionItem, 0, len(items))
	for _, item := range items {
		calc := CalculateItem(item.Weights, item.Price)
		rows = append(rows, entity.TransactionItem{
			TransactionID: transactionID,
			Name:          item.Name,
			Weights:       entity.WeightList(item.Weights),
			TotalWeight:   calc.TotalWeight,
			NetWeight:     calc.NetWeight,
			Price:         calc.Price,
			Subtotal:      calc.Subtotal,
		})
	}
	return rows
}
