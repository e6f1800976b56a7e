package service

import (
	"context"

	"github.com/adiwignya/tembakau-api/internal/domain/entity"
	"github.com/adiwignya/tembakau-api/internal/domain/recap"
	"github.com/adiwignya/tembakau-api/internal/domain/repository"
)

// RecapService builds the filtered, aggregated recap view
type RecapService struct {
	transactionRepo repository.TransactionRepository
}

// NewRecapService creates a new recap service
func NewRecapService(transactionRepo repository.TransactionRepository) *RecapService {
	return &RecapService{transactionRepo: transactionRepo}
}

// RecapResult pairs the filtered transactions with their aggregates.
type RecapResult struct {
	Transactions []entity.Transaction `json:"transactions"`
	Summary      recap.Summary        `json:"summary"`
}

// Recap loads the full transaction history (newest first) and applies
// the filter in memory, so the aggregates always agree exactly with the
// listed subset.
func (s *RecapService) Recap(ctx context.Context, filter recap.Filter) (*RecapResult, error) {
	transactions, err := s.transactionRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	filtered := recap.Apply(transactions, filter)
	return &RecapResult{
		Transactions: filtered,
		Summary:      recap.Summarize(filtered),
	}, nil
}
