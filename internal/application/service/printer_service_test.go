package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/adiwignya/tembakau-api/internal/config"
	"github.com/adiwignya/tembakau-api/internal/domain/entity"
	"github.com/adiwignya/tembakau-api/internal/domain/enum"
	"github.com/adiwignya/tembakau-api/pkg/apperror"
)

type capturePrinter struct {
	printed [][]byte
}

func (p *capturePrinter) Print(data []byte) error {
	p.printed = append(p.printed, data)
	return nil
}

func (p *capturePrinter) IsConnected() bool { return true }
func (p *capturePrinter) Close() error      { return nil }

func sampleReceipt() *entity.Receipt {
	return &entity.Receipt{
		Header: entity.ReceiptHeader{StoreName: "TOKO TEMBAKAU"},
		Date:   "05-01-2024",
		Name:   "Pak Budi",
		Kind:   "Pembelian",
		Items: []entity.ReceiptItem{
			{Name: "Tembakau", Weights: []int{10, 10, 5}, TotalWeight: 25, Deduction: 2, NetWeight: 23, Price: 1000, Subtotal: 23000},
			{Name: "Kritik", Weights: []int{11}, TotalWeight: 11, Deduction: 1, NetWeight: 10, Price: 500, Subtotal: 5000},
		},
		Total: 28000,
	}
}

func TestFormatReceipt(t *testing.T) {
	data := FormatReceipt(sampleReceipt())

	for _, want := range []string{
		"TOKO TEMBAKAU",
		"Tgl  : 05-01-2024",
		"Nama : Pak Budi",
		"Jenis: Pembelian",
		"ITEM: TEMBAKAU",
		"Total   : 25 kg",
		"Pot 5%  : 2 kg",
		"Bersih  : 23 kg",
		"Harga   : 1.000",
		"Subttl  : 23.000",
		"ITEM: KRITIK",
		"TOTAL : 28.000",
		"Terima Kasih",
	} {
		if !bytes.Contains(data, []byte(want)) {
			t.Errorf("receipt missing %q", want)
		}
	}

	// Each weight goes on its own line so the buyer can check the scale
	// readings one by one.
	if !bytes.Contains(data, []byte("10\n10\n5\n")) {
		t.Errorf("weights are not printed line by line")
	}

	// Ends with a partial cut.
	if !bytes.HasSuffix(data, []byte{0x1D, 'V', 0x01}) {
		t.Errorf("receipt does not end with a partial cut")
	}
}

func TestPrintTransactionReceipt(t *testing.T) {
	txnRepo := newFakeTransactionRepo()
	itemRepo := &fakeItemRepo{parent: txnRepo}
	txnSvc := NewTransactionService(txnRepo, itemRepo)
	created, err := txnSvc.CreateTransaction(context.Background(), validInput())
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	cap := &capturePrinter{}
	svc := NewPrinterService(cap, txnRepo, "usb", config.ReceiptConfig{StoreName: "TOKO TEMBAKAU"})

	receipt, err := svc.PrintTransactionReceipt(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("PrintTransactionReceipt: %v", err)
	}
	if len(cap.printed) != 1 {
		t.Fatalf("printed %d documents, want 1", len(cap.printed))
	}
	if receipt.Name != "Pak Budi" || receipt.Total != 28000 {
		t.Errorf("receipt header = %q / %d", receipt.Name, receipt.Total)
	}
	if len(receipt.Items) != 2 {
		t.Fatalf("receipt items = %d, want 2", len(receipt.Items))
	}
	if receipt.Items[0].Deduction != 2 {
		t.Errorf("deduction = %d, want 2", receipt.Items[0].Deduction)
	}
}

func TestPrintTransactionReceiptNotFound(t *testing.T) {
	txnRepo := newFakeTransactionRepo()
	cap := &capturePrinter{}
	svc := NewPrinterService(cap, txnRepo, "usb", config.ReceiptConfig{StoreName: "TOKO TEMBAKAU"})

	_, err := svc.PrintTransactionReceipt(context.Background(), uuid.New())
	if err == nil {
		t.Fatalf("expected not found error")
	}
	if apperror.GetAppError(err).Code != 404 {
		t.Errorf("code = %d, want 404", apperror.GetAppError(err).Code)
	}
	if len(cap.printed) != 0 {
		t.Errorf("printed a receipt for a missing transaction")
	}
}

func TestBuildReceiptUsesStoredValues(t *testing.T) {
	cap := &capturePrinter{}
	txnRepo := newFakeTransactionRepo()
	svc := NewPrinterService(cap, txnRepo, "none", config.ReceiptConfig{StoreName: "TOKO TEMBAKAU"})

	// Deliberately inconsistent numbers: the receipt must echo them
	// rather than recompute.
	txn := &entity.Transaction{
		Date:  time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		Name:  "Bu Siti",
		Kind:  enum.KindSale,
		Total: 99999,
		Items: []entity.TransactionItem{
			{Name: "Rajangan", Weights: entity.WeightList{7}, TotalWeight: 7, NetWeight: 6, Price: 2000, Subtotal: 12345},
		},
	}

	receipt := svc.BuildReceipt(txn)
	if receipt.Date != "10-03-2024" {
		t.Errorf("date = %q", receipt.Date)
	}
	if receipt.Kind != "Penjualan" {
		t.Errorf("kind = %q", receipt.Kind)
	}
	if receipt.Total != 99999 {
		t.Errorf("total = %d", receipt.Total)
	}
	if receipt.Items[0].Subtotal != 12345 {
		t.Errorf("subtotal = %d", receipt.Items[0].Subtotal)
	}
	if receipt.Items[0].Deduction != 1 {
		t.Errorf("deduction = %d", receipt.Items[0].Deduction)
	}
}
