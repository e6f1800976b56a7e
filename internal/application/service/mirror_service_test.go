package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/adiwignya/tembakau-api/internal/domain/entity"
	"github.com/adiwignya/tembakau-api/internal/domain/enum"
)

type fakeSheetWriter struct {
	calls    []string
	appended map[string][][]interface{}
	clearErr error
}

func newFakeSheetWriter() *fakeSheetWriter {
	return &fakeSheetWriter{appended: map[string][][]interface{}{}}
}

func (w *fakeSheetWriter) Clear(ctx context.Context, sheetName string) error {
	if w.clearErr != nil {
		return w.clearErr
	}
	w.calls = append(w.calls, "clear:"+sheetName)
	return nil
}

func (w *fakeSheetWriter) Append(ctx context.Context, sheetName string, rows [][]interface{}) error {
	w.calls = append(w.calls, "append:"+sheetName)
	w.appended[sheetName] = rows
	return nil
}

func TestMirrorRun(t *testing.T) {
	txnRepo := newFakeTransactionRepo()
	itemRepo := &fakeItemRepo{parent: txnRepo}
	svc := NewTransactionService(txnRepo, itemRepo)
	if _, err := svc.CreateTransaction(context.Background(), validInput()); err != nil {
		t.Fatalf("seed: %v", err)
	}

	writer := newFakeSheetWriter()
	mirror := NewMirrorService(txnRepo, itemRepo, writer, "transactions", "transaction_items")

	if err := mirror.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	want := []string{"clear:transactions", "append:transactions", "clear:transaction_items", "append:transaction_items"}
	if len(writer.calls) != len(want) {
		t.Fatalf("calls = %v", writer.calls)
	}
	for i := range want {
		if writer.calls[i] != want[i] {
			t.Errorf("call %d = %q, want %q", i, writer.calls[i], want[i])
		}
	}

	// Header row plus one data row per record.
	if n := len(writer.appended["transactions"]); n != 2 {
		t.Errorf("transaction rows = %d, want 2", n)
	}
	if n := len(writer.appended["transaction_items"]); n != 3 {
		t.Errorf("item rows = %d, want 3", n)
	}
}

func TestMirrorRunClearFailure(t *testing.T) {
	txnRepo := newFakeTransactionRepo()
	itemRepo := &fakeItemRepo{parent: txnRepo}
	writer := newFakeSheetWriter()
	writer.clearErr = errors.New("quota exceeded")
	mirror := NewMirrorService(txnRepo, itemRepo, writer, "transactions", "transaction_items")

	if err := mirror.Run(context.Background()); err == nil {
		t.Fatalf("expected error when clear fails")
	}
	if len(writer.appended) != 0 {
		t.Errorf("rows were appended after a failed clear")
	}
}

func TestTransactionRows(t *testing.T) {
	id := uuid.New()
	created := time.Date(2024, 2, 1, 9, 30, 0, 0, time.UTC)
	rows := TransactionRows([]entity.Transaction{{
		ID:        id,
		Date:      time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
		Name:      "Bu Siti",
		Kind:      enum.KindSale,
		Total:     135000,
		CreatedAt: created,
	}})

	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	header := rows[0]
	if header[0] != "id" || header[5] != "created_at" {
		t.Errorf("unexpected header: %v", header)
	}
	got := rows[1]
	if got[0] != id.String() {
		t.Errorf("id = %v", got[0])
	}
	if got[1] != "2024-01-31" {
		t.Errorf("date = %v", got[1])
	}
	if got[2] != "Bu Siti" || got[3] != "sale" {
		t.Errorf("name/kind = %v/%v", got[2], got[3])
	}
	if got[4] != int64(135000) {
		t.Errorf("total = %v", got[4])
	}
	if got[5] != "2024-02-01T09:30:00Z" {
		t.Errorf("created_at = %v", got[5])
	}
}

func TestItemRows(t *testing.T) {
	id := uuid.New()
	txnID := uuid.New()
	rows := ItemRows([]entity.TransactionItem{{
		ID:            id,
		TransactionID: txnID,
		Name:          "Tembakau",
		Weights:       entity.WeightList{10, 10, 5},
		TotalWeight:   25,
		NetWeight:     23,
		Price:         1000,
		Subtotal:      23000,
		CreatedAt:     time.Date(2024, 2, 1, 9, 30, 0, 0, time.UTC),
	}})

	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	got := rows[1]
	if got[1] != txnID.String() {
		t.Errorf("transaction_id = %v", got[1])
	}
	if got[3] != "[10,10,5]" {
		t.Errorf("weights = %v", got[3])
	}
	if got[4] != 25 || got[5] != 23 {
		t.Errorf("weights totals = %v/%v", got[4], got[5])
	}
	if got[6] != int64(1000) || got[7] != int64(23000) {
		t.Errorf("price/subtotal = %v/%v", got[6], got[7])
	}
}
