package weighing

import (
	"testing"

	"github.com/google/uuid"
)

func TestCalculateItem(t *testing.T) {
	cases := []struct {
		name        string
		weights     []int
		price       string
		totalWeight int
		netWeight   int
		subtotal    int64
	}{
		{"three passes", []int{10, 10, 5}, "1000", 25, 23, 23000},
		{"single pass", []int{100}, "30000", 100, 95, 2850000},
		{"empty weights", nil, "1000", 0, 0, 0},
		{"empty price defaults to zero", []int{20}, "", 20, 19, 0},
		{"garbage price defaults to zero", []int{20}, "abc", 20, 19, 0},
		{"negative price defaults to zero", []int{20}, "-5", 20, 19, 0},
		{"deduction floors", []int{19}, "1", 19, 18, 18}, // 18.05 -> 18
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := CalculateItem(tc.weights, tc.price)
			if got.TotalWeight != tc.totalWeight {
				t.Errorf("TotalWeight = %d, want %d", got.TotalWeight, tc.totalWeight)
			}
			if got.NetWeight != tc.netWeight {
				t.Errorf("NetWeight = %d, want %d", got.NetWeight, tc.netWeight)
			}
			if got.Subtotal != tc.subtotal {
				t.Errorf("Subtotal = %d, want %d", got.Subtotal, tc.subtotal)
			}
		})
	}
}

func TestNetWeightNeverExceedsTotal(t *testing.T) {
	for total := 0; total <= 500; total++ {
		net := NetWeight(total)
		if net > total {
			t.Fatalf("NetWeight(%d) = %d exceeds total", total, net)
		}
		if total > 0 && net == total {
			t.Fatalf("NetWeight(%d) = %d, expected strict deduction for positive totals", total, net)
		}
	}
	if NetWeight(0) != 0 {
		t.Fatalf("NetWeight(0) = %d, want 0", NetWeight(0))
	}
}

func TestSubtotalMonotonic(t *testing.T) {
	// Subtotal must be non-decreasing in both total weight and price.
	prev := int64(-1)
	for total := 0; total <= 100; total++ {
		sub := int64(NetWeight(total)) * 1000
		if sub < prev {
			t.Fatalf("subtotal decreased at total=%d: %d < %d", total, sub, prev)
		}
		prev = sub
	}
	prev = -1
	for price := int64(0); price <= 100; price++ {
		sub := int64(NetWeight(25)) * price
		if sub < prev {
			t.Fatalf("subtotal decreased at price=%d: %d < %d", price, sub, prev)
		}
		prev = sub
	}
}

func TestCalculateItemIdempotent(t *testing.T) {
	weights := []int{10, 10, 5}
	first := CalculateItem(weights, "1000")
	second := CalculateItem(weights, "1000")
	if first != second {
		t.Fatalf("repeated calculation differs: %+v vs %+v", first, second)
	}
}

func TestTotal(t *testing.T) {
	items := []ItemInput{
		{Name: "Tembakau", Weights: []int{10, 10, 5}, Price: "1000"}, // net 23 * 1000 = 23000
		{Name: "Kritik", Weights: []int{10}, Price: "500"},           // net 9 * 500 = 4500
	}
	if got := Total(items); got != 27500 {
		t.Fatalf("Total = %d, want 27500", got)
	}

	// Transaction total is the exact sum of item subtotals.
	sum := CalculateItem(items[0].Weights, items[0].Price).Subtotal +
		CalculateItem(items[1].Weights, items[1].Price).Subtotal
	if got := Total(items); got != sum {
		t.Fatalf("Total = %d, want sum of subtotals %d", got, sum)
	}
}

func TestTotalTwoItemsScenario(t *testing.T) {
	// Two items with subtotals 23000 and 5000 aggregate to 28000.
	items := []ItemInput{
		{Name: "A", Weights: []int{10, 10, 5}, Price: "1000"}, // net 23 * 1000 = 23000
		{Name: "B", Weights: []int{11}, Price: "500"},         // net 10 * 500 = 5000
	}
	if got := CalculateItem(items[1].Weights, items[1].Price).Subtotal; got != 5000 {
		t.Fatalf("item B subtotal = %d, want 5000", got)
	}
	if got := Total(items); got != 28000 {
		t.Fatalf("Total = %d, want 28000", got)
	}
}

func TestValidateSubmission(t *testing.T) {
	valid := []ItemInput{{Name: "Tembakau", Weights: []int{10}, Price: "1000"}}

	cases := []struct {
		name    string
		txnName string
		items   []ItemInput
		wantErr bool
	}{
		{"valid", "Pak Budi", valid, false},
		{"blank name", "", valid, true},
		{"whitespace name", "   ", valid, true},
		{"no items", "Pak Budi", nil, true},
		{"item without weights", "Pak Budi", []ItemInput{{Name: "Tembakau", Price: "1000"}}, true},
		{"item without price", "Pak Budi", []ItemInput{{Name: "Tembakau", Weights: []int{10}, Price: ""}}, true},
		{"whitespace price", "Pak Budi", []ItemInput{{Name: "Tembakau", Weights: []int{10}, Price: " "}}, true},
		{"zero weight", "Pak Budi", []ItemInput{{Name: "Tembakau", Weights: []int{0}, Price: "1000"}}, true},
		{"negative weight", "Pak Budi", []ItemInput{{Name: "Tembakau", Weights: []int{-3}, Price: "1000"}}, true},
		{"all violations at once", " ", []ItemInput{{Name: "Tembakau", Price: ""}}, true},
		{"second item invalid blocks all", "Pak Budi", append(append([]ItemInput{}, valid...), ItemInput{Name: "Kritik", Price: "500"}), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			errs := ValidateSubmission(tc.txnName, tc.items)
			if tc.wantErr && len(errs) == 0 {
				t.Fatalf("expected validation errors, got none")
			}
			if !tc.wantErr && len(errs) > 0 {
				t.Fatalf("expected no errors, got %v", errs)
			}
		})
	}
}

func TestBuildItems(t *testing.T) {
	txnID := uuid.New()
	rows := BuildItems(txnID, []ItemInput{
		{Name: "Tembakau", Weights: []int{10, 10, 5}, Price: "1000"},
		{Name: "Kritik", Weights: []int{4, 6}, Price: "500"},
	})

	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	for i, row := range rows {
		if row.TransactionID != txnID {
			t.Errorf("row %d missing transaction id", i)
		}
	}
	if rows[0].TotalWeight != 25 || rows[0].NetWeight != 23 || rows[0].Subtotal != 23000 {
		t.Errorf("row 0 = %+v", rows[0])
	}
	if rows[1].TotalWeight != 10 || rows[1].NetWeight != 9 || rows[1].Subtotal != 4500 {
		t.Errorf("row 1 = %+v", rows[1])
	}
	// Entry order of weighing passes must survive.
	if rows[1].Weights[0] != 4 || rows[1].Weights[1] != 6 {
		t.Errorf("weight order not preserved: %v", rows[1].Weights)
	}
}
