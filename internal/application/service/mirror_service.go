package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/adiwignya/tembakau-api/internal/domain/entity"
	"github.com/adiwignya/tembakau-api/internal/domain/repository"
)

// SheetWriter abstracts the spreadsheet backend of the mirror export.
type SheetWriter interface {
	Clear(ctx context.Context, sheetName string) error
	Append(ctx context.Context, sheetName string, rows [][]interface{}) error
}

// MirrorService copies the whole database into a spreadsheet for
// backup/reporting. Full rewrite every run, no incremental sync.
type MirrorService struct {
	transactionRepo repository.TransactionRepository
	itemRepo        repository.TransactionItemRepository
	sheets          SheetWriter
	txnSheet        string
	itemSheet       string
}

// NewMirrorService creates a new mirror service
func NewMirrorService(
	transactionRepo repository.TransactionRepository,
	itemRepo repository.TransactionItemRepository,
	sheets SheetWriter,
	txnSheet, itemSheet string,
) *MirrorService {
	return &MirrorService{
		transactionRepo: transactionRepo,
		itemRepo:        itemRepo,
		sheets:          sheets,
		txnSheet:        txnSheet,
		itemSheet:       itemSheet,
	}
}

// Run clears both sheets and re-appends header plus every row.
func (s *MirrorService) Run(ctx context.Context) error {
	transactions, err := s.transactionRepo.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("load transactions: %w", err)
	}
	items, err := s.itemRepo.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("load transaction items: %w", err)
	}

	if err := s.sheets.Clear(ctx, s.txnSheet); err != nil {
		return err
	}
	if err := s.sheets.Append(ctx, s.txnSheet, TransactionRows(transactions)); err != nil {
		return err
	}
	log.Printf("Mirrored %d transactions to sheet %q", len(transactions), s.txnSheet)

	if err := s.sheets.Clear(ctx, s.itemSheet); err != nil {
		return err
	}
	if err := s.sheets.Append(ctx, s.itemSheet, ItemRows(items)); err != nil {
		return err
	}
	log.Printf("Mirrored %d transaction items to sheet %q", len(items), s.itemSheet)

	return nil
}

// TransactionRows shapes transactions into sheet rows with a fixed
// column order: id, date, name, kind, total, created_at.
func TransactionRows(transactions []entity.Transaction) [][]interface{} {
	rows := make([][]interface{}, 0, len(transactions)+1)
	rows = append(rows, []interface{}{"id", "date", "name", "kind", "total", "created_at"})
	for i := range transactions {
		t := &transactions[i]
		rows = append(rows, []interface{}{
			t.ID.String(),
			t.DateString(),
			t.Name,
			t.Kind.String(),
			t.Total,
			t.CreatedAt.Format(time.RFC3339),
		})
	}
	return rows
}

// ItemRows shapes transaction items into sheet rows with a fixed column
// order: id, transaction_id, item name, weights as a JSON string, total
// weight, net weight, price, subtotal, created_at.
func ItemRows(items []entity.TransactionItem) [][]interface{} {
	rows := make([][]interface{}, 0, len(items)+1)
	rows = append(rows, []interface{}{
		"id", "transaction_id", "item_name", "weights",
		"total_weight", "net_weight", "price", "subtotal", "created_at",
	})
	for i := range items {
		item := &items[i]
		weights, _ := json.Marshal(item.Weights)
		rows = append(rows, []interface{}{
			item.ID.String(),
			item.TransactionID.String(),
			item.Name,
			string(weights),
			item.TotalWeight,
			item.NetWeight,
			item.Price,
			item.Subtotal,
			item.CreatedAt.Format(time.RFC3339),
		})
	}
	return rows
}
