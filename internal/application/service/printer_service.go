package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/adiwignya/tembakau-api/internal/config"
	"github.com/adiwignya/tembakau-api/internal/domain/entity"
	"github.com/adiwignya/tembakau-api/internal/domain/repository"
	"github.com/adiwignya/tembakau-api/pkg/apperror"
	"github.com/adiwignya/tembakau-api/pkg/format"
	"github.com/adiwignya/tembakau-api/pkg/printer"
)

// PrinterService composes receipts from persisted transactions and
// sends them to the thermal printer.
type PrinterService struct {
	printer         printer.Printer
	transactionRepo repository.TransactionRepository
	printerType     string
	header          entity.ReceiptHeader
}

// NewPrinterService creates a new printer service.
func NewPrinterService(
	p printer.Printer,
	transactionRepo repository.TransactionRepository,
	printerType string,
	receiptCfg config.ReceiptConfig,
) *PrinterService {
	return &PrinterService{
		printer:         p,
		transactionRepo: transactionRepo,
		printerType:     printerType,
		header: entity.ReceiptHeader{
			StoreName: receiptCfg.StoreName,
			Address:   receiptCfg.Address,
			Phone:     receiptCfg.Phone,
		},
	}
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetStatus returns printer connection status.
func (s *PrinterService) GetStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

// TestPrint sends a test receipt to the printer. The receipt is also
// returned so the handler can show it when no printer is attached.
func (s *PrinterService) TestPrint() (*entity.Receipt, error) {
	receipt := &entity.Receipt{
		Header: s.header,
		Date:   "01-01-2024",
		Name:   "Test",
		Kind:   "Pembelian",
		Items: []entity.ReceiptItem{
			{Name: "Tembakau", Weights: []int{10, 10, 5}, TotalWeight: 25, Deduction: 2, NetWeight: 23, Price: 1000, Subtotal: 23000},
		},
		Total: 23000,
	}

	data := FormatReceipt(receipt)
	if err := s.printer.Print(data); err != nil {
		return receipt, fmt.Errorf("test print failed: %w", err)
	}

	return receipt, nil
}

// PrintTransactionReceipt fetches a transaction (with items) and prints
// its receipt. The receipt is returned either way so callers can render
// it even when no hardware is attached.
func (s *PrinterService) PrintTransactionReceipt(ctx context.Context, transactionID uuid.UUID) (*entity.Receipt, error) {
	transaction, err := s.transactionRepo.GetWithItems(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if transaction == nil {
		return nil, apperror.NewNotFoundError("Transaction")
	}

	receipt := s.BuildReceipt(transaction)

	data := FormatReceipt(receipt)
	if err := s.printer.Print(data); err != nil {
		log.Printf("Printer error (transaction %s): %v", transactionID, err)
		return receipt, fmt.Errorf("failed to print receipt: %w", err)
	}

	return receipt, nil
}

// BuildReceipt shapes a persisted transaction into a printable receipt.
// Purely presentational: every number is read from stored fields, never
// recomputed.
func (s *PrinterService) BuildReceipt(t *entity.Transaction) *entity.Receipt {
	receipt := &entity.Receipt{
		Header: s.header,
		Date:   format.Date(t.Date),
		Name:   t.Name,
		Kind:   t.Kind.Display(),
		Total:  t.Total,
	}

	for _, item := range t.Items {
		receipt.Items = append(receipt.Items, entity.ReceiptItem{
			Name:        item.Name,
			Weights:     item.Weights,
			TotalWeight: item.TotalWeight,
			Deduction:   item.TotalWeight - item.NetWeight,
			NetWeight:   item.NetWeight,
			Price:       item.Price,
			Subtotal:    item.Subtotal,
		})
	}

	return receipt
}

// FormatReceipt converts a Receipt into ESC/POS bytes for 58mm paper.
func FormatReceipt(r *entity.Receipt) []byte {
	doc := printer.NewDocument(32) // 58mm paper = 32 chars

	// Header
	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(r.Header.StoreName).
		SetFontSize(printer.FontNormal).
		SetBold(false)

	if r.Header.Address != "" {
		doc.Text(r.Header.Address)
	}
	if r.Header.Phone != "" {
		doc.Text(r.Header.Phone)
	}

	doc.SetAlign(printer.AlignLeft).
		Separator('-')

	doc.LabelValue("Tgl", 5, r.Date).
		LabelValue("Nama", 5, r.Name).
		LabelValue("Jenis", 5, r.Kind)

	doc.Separator('-')

	for i, item := range r.Items {
		doc.SetBold(true).
			TextF("ITEM: %s", strings.ToUpper(item.Name)).
			SetBold(false)

		for _, kg := range item.Weights {
			doc.TextF("%d", kg)
		}

		doc.LabelValue("Total", 8, fmt.Sprintf("%d kg", item.TotalWeight)).
			LabelValue("Pot 5%", 8, fmt.Sprintf("%d kg", item.Deduction)).
			LabelValue("Bersih", 8, fmt.Sprintf("%d kg", item.NetWeight)).
			LabelValue("Harga", 8, format.Thousands(item.Price)).
			LabelValue("Subttl", 8, format.Thousands(item.Subtotal))

		if i < len(r.Items)-1 {
			doc.Separator('-')
		}
	}

	doc.Separator('=')
	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		TextF("TOTAL : %s", format.Thousands(r.Total)).
		SetBold(false).
		SetAlign(printer.AlignLeft)
	doc.Separator('=')

	doc.SetAlign(printer.AlignCenter).
		LineFeed().
		Text("Terima Kasih").
		LineFeed().
		SetAlign(printer.AlignLeft)

	doc.FeedLines(3).
		PartialCut()

	return doc.Bytes()
}
