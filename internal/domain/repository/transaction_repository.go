package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/adiwignya/tembakau-api/internal/domain/entity"
	"github.com/adiwignya/tembakau-api/internal/domain/enum"
	"github.com/adiwignya/tembakau-api/pkg/pagination"
)

// TransactionRepository defines the interface for transaction data operations
type TransactionRepository interface {
	Create(ctx context.Context, transaction *entity.Transaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)
	List(ctx context.Context, params *TransactionFilterParams) ([]entity.Transaction, int64, error)
	ListAll(ctx context.Context) ([]entity.Transaction, error)
}

// TransactionFilterParams contains filtering parameters for paginated
// transaction queries. The recap view does not use these; it filters
// the full ListAll result in memory.
type TransactionFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Kind       *enum.TransactionKind
	StartDate  *time.Time
	EndDate    *time.Time
}

// TransactionItemRepository defines the interface for transaction item data operations
type TransactionItemRepository interface {
	CreateBatch(ctx context.Context, items []entity.TransactionItem) error
	GetByTransactionID(ctx context.Context, transactionID uuid.UUID) ([]entity.TransactionItem, error)
	ListAll(ctx context.Context) ([]entity.TransactionItem, error)
}
