package enum

import "testing"

func TestParseTransactionKind(t *testing.T) {
	cases := []struct {
		in      string
		want    TransactionKind
		wantErr bool
	}{
		{"purchase", KindPurchase, false},
		{"sale", KindSale, false},
		{"pembelian", KindPurchase, false},
		{"penjualan", KindSale, false},
		{"barter", "", true},
		{"", "", true},
		{"Purchase", "", true},
	}
	for _, tc := range cases {
		got, err := ParseTransactionKind(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseTransactionKind(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseTransactionKind(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseTransactionKind(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTransactionKindDisplay(t *testing.T) {
	if got := KindPurchase.Display(); got != "Pembelian" {
		t.Errorf("purchase display = %q", got)
	}
	if got := KindSale.Display(); got != "Penjualan" {
		t.Errorf("sale display = %q", got)
	}
}

func TestTransactionKindScan(t *testing.T) {
	var k TransactionKind
	if err := k.Scan("sale"); err != nil || k != KindSale {
		t.Errorf("Scan(string) = %q, %v", k, err)
	}
	if err := k.Scan([]byte("purchase")); err != nil || k != KindPurchase {
		t.Errorf("Scan([]byte) = %q, %v", k, err)
	}
	if err := k.Scan(nil); err == nil {
		t.Errorf("Scan(nil) accepted a NULL column")
	}
	if err := k.Scan(42); err == nil {
		t.Errorf("Scan(int) accepted a non-text column")
	}
}
