package enum

import (
	"database/sql/driver"
	"fmt"
)

// TransactionKind represents the direction of a transaction:
// purchase (stock acquired) or sale (stock sold).
type TransactionKind string

const (
	KindPurchase TransactionKind = "purchase"
	KindSale     TransactionKind = "sale"
)

func (k TransactionKind) String() string {
	return string(k)
}

// Display returns the label printed on receipts.
func (k TransactionKind) Display() string {
	switch k {
	case KindPurchase:
		return "Pembelian"
	case KindSale:
		return "Penjualan"
	}
	return string(k)
}

// IsValid reports whether k is a recognized transaction kind.
func (k TransactionKind) IsValid() bool {
	return k == KindPurchase || k == KindSale
}

// ParseTransactionKind parses a kind string, accepting the stored
// English values and the legacy Indonesian spreadsheet values.
func ParseTransactionKind(s string) (TransactionKind, error) {
	switch s {
	case "purchase", "pembelian":
		return KindPurchase, nil
	case "sale", "penjualan":
		return KindSale, nil
	}
	return "", fmt.Errorf("unknown transaction kind %q", s)
}

func (k TransactionKind) Value() (driver.Value, error) {
	return string(k), nil
}

func (k *TransactionKind) Scan(value interface{}) error {
	switch v := value.(type) {
	case string:
		*k = TransactionKind(v)
	case []byte:
		*k = TransactionKind(v)
	default:
		// The column is NOT NULL; a missing or oddly-typed value is
		// corruption, not a default direction.
		return fmt.Errorf("transaction kind: unsupported column value %T", value)
	}
	return nil
}
