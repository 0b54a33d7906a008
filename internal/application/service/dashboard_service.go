package service

import (
	"context"
	"time"

	"github.com/odanga/stockledger-api/internal/domain/entity"
	"github.com/odanga/stockledger-api/internal/domain/repository"
)

// DashboardService derives business analytics from the current state.
// Every figure is recomputed on each call; nothing is cached or stored.
type DashboardService struct {
	productRepo       repository.ProductRepository
	saleRepo          repository.SaleRepository
	damageRepo        repository.DamageRepository
	lowStockThreshold int
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
	damageRepo repository.DamageRepository,
	lowStockThreshold int,
) *DashboardService {
	return &DashboardService{
		productRepo:       productRepo,
		saleRepo:          saleRepo,
		damageRepo:        damageRepo,
		lowStockThreshold: lowStockThreshold,
	}
}

// DashboardStats represents the derived analytics snapshot
type DashboardStats struct {
	// TotalRevenue is payments received minus shrinkage loss. It can go
	// negative when losses exceed recorded payments; that is reported
	// as-is, not clamped.
	TotalRevenue         float64           `json:"total_revenue"`
	StockValue           float64           `json:"stock_value"`
	DamageLoss           float64           `json:"damage_loss"`
	TotalSalesCount      int               `json:"total_sales_count"`
	TotalProducts        int               `json:"total_products"`
	LowStockCount        int               `json:"low_stock_count"`
	CategoryDistribution map[string]int    `json:"category_distribution"`
	DailySales           []DailySalesPoint `json:"daily_sales"`
}

// DailySalesPoint represents payments received on a single day
type DailySalesPoint struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
}

// GetStats recomputes the full analytics aggregate from current state.
func (s *DashboardService) GetStats(ctx context.Context) (*DashboardStats, error) {
	products, err := s.productRepo.List(ctx, nil)
	if err != nil {
		return nil, err
	}
	sales, err := s.saleRepo.All(ctx)
	if err != nil {
		return nil, err
	}
	damages, err := s.damageRepo.All(ctx)
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{
		TotalSalesCount:      len(sales),
		TotalProducts:        len(products),
		CategoryDistribution: make(map[string]int),
	}

	var stockValue int64
	for i := range products {
		stockValue += products[i].StockValue()
		if products[i].StockQuantity <= s.lowStockThreshold {
			stats.LowStockCount++
		}
	}

	var payments int64
	for i := range sales {
		payments += sales[i].PaymentAmount
		for _, item := range sales[i].Items {
			// group by the category snapshotted at sale time, not the
			// live product's category
			label := item.Category.Normalize().String()
			stats.CategoryDistribution[label] += item.Quantity
		}
	}

	var damageLoss int64
	for i := range damages {
		damageLoss += damages[i].Loss()
	}

	stats.TotalRevenue = float64(payments-damageLoss) / 100
	stats.StockValue = float64(stockValue) / 100
	stats.DamageLoss = float64(damageLoss) / 100
	stats.DailySales = dailySales(sales, 7)

	return stats, nil
}

// dailySales rolls up payments received per calendar day for the last n
// days, oldest first.
func dailySales(sales []entity.Sale, days int) []DailySalesPoint {
	now := time.Now()
	points := make([]DailySalesPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		dayKey := day.Format("2006-01-02")

		var revenue int64
		for j := range sales {
			if sales[j].Timestamp.Format("2006-01-02") == dayKey {
				revenue += sales[j].PaymentAmount
			}
		}

		points = append(points, DailySalesPoint{
			Date:    day.Format("Jan 02"),
			Revenue: float64(revenue) / 100,
		})
	}
	return points
}
