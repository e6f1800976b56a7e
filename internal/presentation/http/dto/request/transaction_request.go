package request

// TransactionItemRequest is one weighed item on the transaction form.
// Price arrives as a string because the form field is free text; the
// service parses it.
type TransactionItemRequest struct {
	Name    string `json:"name"`
	Weights []int  `json:"weights" binding:"required"`
	Price   string `json:"price"`
}

// CreateTransactionRequest is the payload for saving a transaction.
// Date uses YYYY-MM-DD; empty means today.
type CreateTransactionRequest struct {
	Date  string                   `json:"date"`
	Name  string                   `json:"name"`
	Kind  string                   `json:"kind" binding:"required"`
	Items []TransactionItemRequest `json:"items" binding:"required"`
}
