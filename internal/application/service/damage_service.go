package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/odanga/stockledger-api/internal/domain/entity"
	"github.com/odanga/stockledger-api/internal/domain/enum"
	"github.com/odanga/stockledger-api/internal/domain/repository"
	"github.com/odanga/stockledger-api/pkg/apperror"
	"github.com/odanga/stockledger-api/pkg/utils"
)

// DamageService records shrinkage: stock lost to damage or theft.
type DamageService struct {
	damageRepo  repository.DamageRepository
	productRepo repository.ProductRepository
	ledgerRepo  repository.LedgerRepository
}

// NewDamageService creates a new damage service
func NewDamageService(damageRepo repository.DamageRepository, productRepo repository.ProductRepository, ledgerRepo repository.LedgerRepository) *DamageService {
	return &DamageService{
		damageRepo:  damageRepo,
		productRepo: productRepo,
		ledgerRepo:  ledgerRepo,
	}
}

// RecordDamageInput represents the log-shrinkage input
type RecordDamageInput struct {
	ProductID uuid.UUID
	Quantity  int
	Type      enum.DamageType
	Note      string
}

// RecordDamage validates, snapshots the product name and price, decrements
// stock and appends the record. Each failure mode reports its specific
// reason and leaves state unchanged.
func (s *DamageService) RecordDamage(ctx context.Context, input *RecordDamageInput) (*entity.DamageRecord, error) {
	if input.Quantity <= 0 {
		return nil, apperror.NewBadRequestError("Quantity must be greater than zero")
	}
	if !input.Type.Valid() {
		return nil, apperror.NewBadRequestError("Type must be 'damaged' or 'stolen'")
	}

	product, err := s.productRepo.GetByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	if product.StockQuantity < input.Quantity {
		return nil, apperror.NewBadRequestError("Quantity exceeds current stock")
	}

	record := &entity.DamageRecord{
		ID:          utils.GenerateDamageID(),
		ProductID:   product.ID,
		ProductName: product.Name,
		UnitPrice:   product.UnitPrice,
		Quantity:    input.Quantity,
		Type:        input.Type,
		Note:        strings.TrimSpace(input.Note),
		Timestamp:   time.Now(),
	}

	// Commit the deduction and the record in one critical section; the
	// ledger re-validates stock under the write lock.
	failedIDs, err := s.ledgerRepo.ApplyDamage(ctx, record)
	if err != nil {
		return nil, err
	}
	if len(failedIDs) > 0 {
		return nil, apperror.NewBadRequestError("Quantity exceeds current stock")
	}

	return record, nil
}

// ListDamages returns the shrinkage log, newest first.
func (s *DamageService) ListDamages(ctx context.Context) ([]entity.DamageRecord, error) {
	return s.damageRepo.All(ctx)
}
