package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/adiwignya/tembakau-api/internal/domain/entity"
	"github.com/adiwignya/tembakau-api/internal/domain/enum"
	"github.com/adiwignya/tembakau-api/internal/domain/repository"
	"github.com/adiwignya/tembakau-api/internal/domain/weighing"
	"github.com/adiwignya/tembakau-api/pkg/apperror"
	"github.com/adiwignya/tembakau-api/pkg/pagination"
)

// TransactionService handles transaction submission and retrieval
type TransactionService struct {
	transactionRepo repository.TransactionRepository
	itemRepo        repository.TransactionItemRepository
}

// NewTransactionService creates a new transaction service
func NewTransactionService(
	transactionRepo repository.TransactionRepository,
	itemRepo repository.TransactionItemRepository,
) *TransactionService {
	return &TransactionService{
		transactionRepo: transactionRepo,
		itemRepo:        itemRepo,
	}
}

// CreateTransactionInput represents the create transaction input
type CreateTransactionInput struct {
	Date  time.Time
	Name  string
	Kind  enum.TransactionKind
	Items []weighing.ItemInput
}

// CreateTransaction validates and persists a transaction with its items.
// Validation is all-or-nothing: any incomplete item blocks the whole
// submission before anything touches the database.
//
// The transaction record is created first so its identity can be stamped
// onto the item rows. If item creation then fails, the header is left in
// place without a compensating delete; the orphan is logged and the
// error surfaced to the caller.
func (s *TransactionService) CreateTransaction(ctx context.Context, input *CreateTransactionInput) (*entity.Transaction, error) {
	if !input.Kind.IsValid() {
		return nil, apperror.NewBadRequestError(fmt.Sprintf("Unknown transaction kind %q", input.Kind))
	}

	if errs := weighing.ValidateSubmission(input.Name, input.Items); len(errs) > 0 {
		fieldErrors := make([]apperror.FieldError, len(errs))
		for i, e := range errs {
			fieldErrors[i] = apperror.FieldError{Field: e.Field, Message: e.Message}
		}
		return nil, apperror.NewValidationError(fieldErrors)
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}

	transaction := &entity.Transaction{
		Date:  date,
		Name:  strings.TrimSpace(input.Name),
		Kind:  input.Kind,
		Total: weighing.Total(input.Items),
	}

	if err := s.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, err
	}

	items := weighing.BuildItems(transaction.ID, input.Items)
	if err := s.itemRepo.CreateBatch(ctx, items); err != nil {
		log.Printf("transaction %s created but its items failed to persist: %v", transaction.ID, err)
		return nil, apperror.NewAppError(500, "Transaction saved without items; please check the record")
	}

	return s.transactionRepo.GetWithItems(ctx, transaction.ID)
}

// GetTransaction retrieves a transaction with its items by ID
func (s *TransactionService) GetTransaction(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	transaction, err := s.transactionRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if transaction == nil {
		return nil, apperror.NewNotFoundError("Transaction")
	}
	return transaction, nil
}

// ListTransactions lists transactions with filtering, newest first
func (s *TransactionService) ListTransactions(ctx context.Context, params *repository.TransactionFilterParams) (*pagination.PaginatedResult[entity.Transaction], error) {
	transactions, total, err := s.transactionRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(transactions, pag), nil
}
