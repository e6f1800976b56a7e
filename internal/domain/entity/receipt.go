package entity

// ReceiptHeader holds the store header printed at the top of a receipt.
type ReceiptHeader struct {
	StoreName string `json:"store_name"`
	Address   string `json:"address,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// ReceiptItem is one weighed item section on a receipt. Every weighing
// pass is listed individually above the computed lines.
type ReceiptItem struct {
	Name        string `json:"name"`
	Weights     []int  `json:"weights"`
	TotalWeight int    `json:"total_weight"`
	Deduction   int    `json:"deduction"`
	NetWeight   int    `json:"net_weight"`
	Price       int64  `json:"price"`
	Subtotal    int64  `json:"subtotal"`
}

// Receipt is a value object representing a printable receipt.
// It is NOT a database entity — it is composed from persisted
// transaction data at print time and performs no calculation.
type Receipt struct {
	Header ReceiptHeader `json:"header"`
	Date   string        `json:"date"` // dd-mm-yyyy
	Name   string        `json:"name"`
	Kind   string        `json:"kind"`
	Items  []ReceiptItem `json:"items"`
	Total  int64         `json:"total"`
}
