package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/adiwignya/tembakau-api/internal/domain/entity"
	domainRepo "github.com/adiwignya/tembakau-api/internal/domain/repository"
	"gorm.io/gorm"
)

type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) domainRepo.TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	return r.db.WithContext(ctx).Omit("Items").Create(transaction).Error
}

func (r *transactionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	var transaction entity.Transaction
	err := r.db.WithContext(ctx).First(&transaction, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &transaction, err
}

func (r *transactionRepository) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	var transaction entity.Transaction
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		First(&transaction, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &transaction, err
}

func (r *transactionRepository) List(ctx context.Context, params *domainRepo.TransactionFilterParams) ([]entity.Transaction, int64, error) {
	var transactions []entity.Transaction
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Transaction{})

	if params.Search != "" {
		query = query.Where("name ILIKE ?", "%"+params.Search+"%")
	}

	if params.Kind != nil {
		query = query.Where("kind = ?", *params.Kind)
	}

	if params.StartDate != nil {
		query = query.Where("date >= ?", *params.StartDate)
	}

	if params.EndDate != nil {
		query = query.Where("date <= ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("created_at DESC").
		Find(&transactions).Error

	return transactions, total, err
}

func (r *transactionRepository) ListAll(ctx context.Context) ([]entity.Transaction, error) {
	var transactions []entity.Transaction
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&transactions).Error
	return transactions, err
}

type transactionItemRepository struct {
	db *gorm.DB
}

// NewTransactionItemRepository creates a new transaction item repository
func NewTransactionItemRepository(db *gorm.DB) domainRepo.TransactionItemRepository {
	return &transactionItemRepository{db: db}
}

func (r *transactionItemRepository) CreateBatch(ctx context.Context, items []entity.TransactionItem) error {
	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *transactionItemRepository) GetByTransactionID(ctx context.Context, transactionID uuid.UUID) ([]entity.TransactionItem, error) {
	var items []entity.TransactionItem
	err := r.db.WithContext(ctx).
		Where("transaction_id = ?", transactionID).
		Order("created_at ASC").
		Find(&items).Error
	return items, err
}

func (r *transactionItemRepository) ListAll(ctx context.Context) ([]entity.TransactionItem, error) {
	var items []entity.TransactionItem
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&items).Error
	return items, err
}
