package service

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
	"github.com/adiwignya/tembakau-api/internal/domain/recap"
	"github.com/adiwignya/tembakau-api/pkg/format"
)

// ExportService renders a recap as an XLSX workbook.
type ExportService struct {
	recapService *RecapService
}

// NewExportService creates a new export service
func NewExportService(recapService *RecapService) *ExportService {
	return &ExportService{recapService: recapService}
}

const recapSheet = "Recap"

// ExportRecapXLSX builds a workbook for the filtered recap: one row per
// transaction followed by the summary block.
func (s *ExportService) ExportRecapXLSX(ctx context.Context, filter recap.Filter) (*excelize.File, error) {
	result, err := s.recapService.Recap(ctx, filter)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	f.SetSheetName("Sheet1", recapSheet)

	headers := []string{"Tanggal", "Jenis", "Nama", "Total"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(recapSheet, cell, h)
	}

	row := 2
	for i := range result.Transactions {
		t := &result.Transactions[i]
		f.SetCellValue(recapSheet, fmt.Sprintf("A%d", row), format.Date(t.Date))
		f.SetCellValue(recapSheet, fmt.Sprintf("B%d", row), t.Kind.Display())
		f.SetCellValue(recapSheet, fmt.Sprintf("C%d", row), t.Name)
		f.SetCellValue(recapSheet, fmt.Sprintf("D%d", row), t.Total)
		row++
	}

	row++ // blank line before the summary block
	f.SetCellValue(recapSheet, fmt.Sprintf("A%d", row), "Total Pembelian")
	f.SetCellValue(recapSheet, fmt.Sprintf("D%d", row), result.Summary.PurchaseTotal)
	row++
	f.SetCellValue(recapSheet, fmt.Sprintf("A%d", row), "Total Penjualan")
	f.SetCellValue(recapSheet, fmt.Sprintf("D%d", row), result.Summary.SaleTotal)
	row++
	f.SetCellValue(recapSheet, fmt.Sprintf("A%d", row), "Jumlah Transaksi")
	f.SetCellValue(recapSheet, fmt.Sprintf("D%d", row), result.Summary.Count)

	return f, nil
}
