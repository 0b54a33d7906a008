package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/odanga/stockledger-api/internal/domain/entity"
	"github.com/odanga/stockledger-api/internal/domain/enum"
	"github.com/odanga/stockledger-api/internal/domain/repository"
	"github.com/odanga/stockledger-api/pkg/apperror"
	"github.com/odanga/stockledger-api/pkg/utils"
)

// SaleService is the ledger engine: it validates and applies sales against
// the catalog, and hosts the history editor and the history query surface.
type SaleService struct {
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository
	ledgerRepo  repository.LedgerRepository
}

// NewSaleService creates a new sale service
func NewSaleService(saleRepo repository.SaleRepository, productRepo repository.ProductRepository, ledgerRepo repository.LedgerRepository) *SaleService {
	return &SaleService{
		saleRepo:    saleRepo,
		productRepo: productRepo,
		ledgerRepo:  ledgerRepo,
	}
}

// SaleItemInput represents one cart line
type SaleItemInput struct {
	ProductID uuid.UUID
	Quantity  int
}

// CreateSaleInput represents the process-sale input
type CreateSaleInput struct {
	CustomerName  string
	CustomerPhone string
	Items         []SaleItemInput
	PaymentAmount float64
	// AllowMissingPhone is the confirmable override: without it a sale
	// with no phone number is rejected so the operator can double-check.
	AllowMissingPhone bool
}

// CreateSale validates the whole cart before mutating anything. Either the
// sale record is inserted and every stock decrement applied, or nothing
// changes at all.
func (s *SaleService) CreateSale(ctx context.Context, input *CreateSaleInput) (*entity.Sale, error) {
	customerName := strings.TrimSpace(input.CustomerName)
	if customerName == "" {
		return nil, apperror.NewBadRequestError("Customer name is required")
	}

	customerPhone := strings.TrimSpace(input.CustomerPhone)
	if customerPhone == "" && !input.AllowMissingPhone {
		return nil, apperror.NewAppError(422, "Customer phone is missing; confirm to proceed without it")
	}

	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("Cart is empty")
	}
	for _, item := range input.Items {
		if item.Quantity <= 0 {
			return nil, apperror.NewBadRequestError("Item quantity must be greater than zero")
		}
	}

	// Batch fetch all cart products in one call
	productIDs := make([]uuid.UUID, len(input.Items))
	for i, item := range input.Items {
		productIDs[i] = item.ProductID
	}
	products, err := s.productRepo.GetByIDs(ctx, productIDs)
	if err != nil {
		return nil, err
	}

	// Snapshot each line at current name/price/category and compute the total
	var totalPrice int64
	items := make([]entity.SaleItem, 0, len(input.Items))
	stockDecrements := make(map[uuid.UUID]int)
	var shortIDs []uuid.UUID

	for _, line := range input.Items {
		product, exists := products[line.ProductID]
		if !exists || product.StockQuantity < line.Quantity {
			shortIDs = append(shortIDs, line.ProductID)
			continue
		}

		items = append(items, entity.SaleItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			UnitPrice:   product.UnitPrice,
			Category:    product.Category,
			Quantity:    line.Quantity,
		})
		totalPrice += product.UnitPrice * int64(line.Quantity)
		stockDecrements[product.ID] += line.Quantity
	}

	if len(shortIDs) > 0 {
		return nil, insufficientStockError(products, shortIDs)
	}

	paymentCents := int64(math.Round(input.PaymentAmount * 100))
	if paymentCents <= 0 {
		return nil, apperror.NewBadRequestError("Payment amount must be greater than zero")
	}
	if paymentCents > totalPrice {
		return nil, apperror.NewBadRequestError("Payment amount exceeds the sale total")
	}

	sale := &entity.Sale{
		ID:            utils.GenerateTransactionID(),
		CustomerName:  customerName,
		CustomerPhone: customerPhone,
		Items:         items,
		TotalPrice:    totalPrice,
		PaymentAmount: paymentCents,
		Timestamp:     time.Now(),
	}

	// Commit the deduction and the record in one critical section. The
	// ledger re-validates stock under the write lock, so a concurrent sale
	// can never push stock negative, and no persisted snapshot can hold
	// the deduction without the sale.
	failedIDs, err := s.ledgerRepo.ApplySale(ctx, stockDecrements, sale)
	if err != nil {
		return nil, err
	}
	if len(failedIDs) > 0 {
		return nil, insufficientStockError(products, failedIDs)
	}

	return sale, nil
}

func insufficientStockError(products map[uuid.UUID]entity.Product, ids []uuid.UUID) error {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if product, ok := products[id]; ok {
			names = append(names, product.Name)
		} else {
			names = append(names, id.String())
		}
	}
	return apperror.NewBadRequestError(fmt.Sprintf("Insufficient stock for: %s", strings.Join(names, ", ")))
}

// UpdateSaleInput represents the editable fields of a settled sale. Nil
// means "leave unchanged".
type UpdateSaleInput struct {
	ID                string
	CustomerName      *string
	CustomerPhone     *string
	PaymentAmount     *float64
	ReceiptReceivedAt *string
}

// UpdateSale corrects an already-settled record. It never touches stock:
// this is a bookkeeping fix, not a new transaction. An unknown id is a
// silent no-op and returns (nil, nil).
func (s *SaleService) UpdateSale(ctx context.Context, input *UpdateSaleInput) (*entity.Sale, error) {
	sale, err := s.saleRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, nil
	}

	if input.CustomerName != nil {
		sale.CustomerName = strings.TrimSpace(*input.CustomerName)
	}
	if input.CustomerPhone != nil {
		sale.CustomerPhone = strings.TrimSpace(*input.CustomerPhone)
	}
	if input.PaymentAmount != nil {
		cents := int64(math.Round(*input.PaymentAmount * 100))
		if cents <= 0 {
			return nil, apperror.NewBadRequestError("Payment amount must be greater than zero")
		}
		sale.PaymentAmount = cents
	}
	if input.ReceiptReceivedAt != nil {
		sale.ReceiptReceivedAt = strings.TrimSpace(*input.ReceiptReceivedAt)
	}

	if err := s.saleRepo.Update(ctx, sale); err != nil {
		return nil, err
	}
	return sale, nil
}

// DeleteSale removes a sale record. Stock is deliberately not restored;
// deductions are never reconciled retroactively. An unknown id is a
// silent no-op.
func (s *SaleService) DeleteSale(ctx context.Context, id string) error {
	return s.saleRepo.Delete(ctx, id)
}

// ListSales runs the history query engine: filter by the committed search
// string, then stable-sort. The stored history is never mutated.
func (s *SaleService) ListSales(ctx context.Context, search string, sort enum.SaleSortMode) ([]entity.Sale, error) {
	return s.saleRepo.List(ctx, &repository.SaleFilterParams{
		Search: search,
		Sort:   sort,
	})
}

// GetSale retrieves a sale by id
func (s *SaleService) GetSale(ctx context.Context, id string) (*entity.Sale, error) {
	return s.saleRepo.GetByID(ctx, id)
}
