package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/adiwignya/tembakau-api/internal/domain/enum"
	"gorm.io/gorm"
)

// WeightList holds the ordered weighing passes (kg) of an item.
// Persisted as a JSONB array so the original entry order survives.
type WeightList []int

func (w WeightList) Value() (driver.Value, error) {
	if w == nil {
		w = WeightList{}
	}
	return json.Marshal(w)
}

func (w *WeightList) Scan(value interface{}) error {
	if value == nil {
		*w = WeightList{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("weight list: unsupported column type %T", value)
	}
	return json.Unmarshal(data, w)
}

// Sum returns the total weighed quantity before deduction.
func (w WeightList) Sum() int {
	total := 0
	for _, kg := range w {
		total += kg
	}
	return total
}

// Transaction represents one purchase or sale, owning its line items.
// Neither the transaction nor its items are mutated after creation.
type Transaction struct {
	ID        uuid.UUID            `gorm:"type:uuid;primary_key" json:"id"`
	Date      time.Time            `gorm:"type:date;not null;index" json:"date"`
	Name      string               `gorm:"size:255;not null" json:"name"`
	Kind      enum.TransactionKind `gorm:"size:20;not null;index" json:"kind"`
	Total     int64                `gorm:"not null;default:0" json:"total"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
	DeletedAt gorm.DeletedAt       `gorm:"index" json:"-"`

	// Relationships
	Items []TransactionItem `gorm:"foreignKey:TransactionID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Transaction model
func (Transaction) TableName() string {
	return "transactions"
}

// DateString returns the transaction date in ISO format (yyyy-mm-dd).
// Recap date bounds are compared against this string.
func (t *Transaction) DateString() string {
	return t.Date.Format("2006-01-02")
}

// TransactionItem represents a weighed line item in a transaction.
// TotalWeight, NetWeight and Subtotal are computed once at submission
// and stored denormalized; readers never recompute them.
type TransactionItem struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	TransactionID uuid.UUID      `gorm:"type:uuid;not null;index" json:"transaction_id"`
	Name          string         `gorm:"size:255;not null" json:"name"`
	Weights       WeightList     `gorm:"type:jsonb;not null" json:"weights"`
	TotalWeight   int            `gorm:"not null" json:"total_weight"` // kg before deduction
	NetWeight     int            `gorm:"not null" json:"net_weight"`   // kg after 5% deduction, floored
	Price         int64          `gorm:"not null" json:"price"`        // per kg, whole rupiah
	Subtotal      int64          `gorm:"not null" json:"subtotal"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Transaction Transaction `gorm:"foreignKey:TransactionID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new transaction item
func (i *TransactionItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the TransactionItem model
func (TransactionItem) TableName() string {
	return "transaction_items"
}
