package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/odanga/stockledger-api/internal/domain/entity"
	"github.com/odanga/stockledger-api/internal/domain/repository"
	"github.com/odanga/stockledger-api/pkg/apperror"
)

// ExportService renders the full, unfiltered sales history as CSV text.
type ExportService struct {
	saleRepo repository.SaleRepository
}

// NewExportService creates a new export service
func NewExportService(saleRepo repository.SaleRepository) *ExportService {
	return &ExportService{saleRepo: saleRepo}
}

// exportHeader is the fixed column set of the export format.
var exportHeader = []string{"ID", "Date", "Customer", "Phone", "Items", "Amount"}

// ExportSalesCSV builds the CSV document and the download filename. An
// empty history is refused rather than producing an empty file.
func (s *ExportService) ExportSalesCSV(ctx context.Context) (filename string, data []byte, err error) {
	sales, err := s.saleRepo.All(ctx)
	if err != nil {
		return "", nil, err
	}
	if len(sales) == 0 {
		return "", nil, apperror.NewBadRequestError("No sales to export")
	}

	var b strings.Builder
	writeRow(&b, exportHeader)
	for i := range sales {
		writeRow(&b, exportRow(&sales[i]))
	}

	filename = fmt.Sprintf("sales_export_%s.csv", time.Now().Format("2006-01-02"))
	return filename, []byte(b.String()), nil
}

func exportRow(sale *entity.Sale) []string {
	lines := make([]string, len(sale.Items))
	for i, item := range sale.Items {
		lines[i] = fmt.Sprintf("%dx %s", item.Quantity, item.ProductName)
	}
	return []string{
		sale.ID,
		sale.Timestamp.Format("1/2/2006"),
		sale.CustomerName,
		sale.CustomerPhone,
		strings.Join(lines, "; "),
		strconv.FormatFloat(sale.GetPaymentAmountDecimal(), 'f', 2, 64),
	}
}

// writeRow emits one CSV line with every field quoted and internal quotes
// doubled, so fields containing commas or quotes round-trip under standard
// CSV parsing rules.
func writeRow(b *strings.Builder, fields []string) {
	for i, field := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(field, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}
