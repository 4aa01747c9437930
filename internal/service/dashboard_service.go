package service

import (
	"context"
	"sort"
	"time"

	"orionpos/internal/dto"
	"orionpos/internal/model"
	"orionpos/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DashboardService computes the admin landing-page aggregates. Sales are
// pulled once per call and folded in Go; the windows are small (a month of
// rows at most) and doing the math here keeps the SQL dialect-neutral.
type DashboardService interface {
	Stats(ctx context.Context) (*dto.DashboardStats, error)
	Chart(ctx context.Context, days int) ([]dto.ChartPoint, error)
	TopProducts(ctx context.Context, limit int) ([]dto.TopProduct, error)
}

type dashboardService struct {
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository
	expenseRepo repository.ExpenseRepository
	now         func() time.Time
}

func NewDashboardService(
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	expenseRepo repository.ExpenseRepository,
) DashboardService {
	return &dashboardService{
		saleRepo:    saleRepo,
		productRepo: productRepo,
		expenseRepo: expenseRepo,
		now:         time.Now,
	}
}

func (s *dashboardService) Stats(ctx context.Context) (*dto.DashboardStats, error) {
	now := s.now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	sales, err := s.saleRepo.ListSince(ctx, startOfMonth)
	if err != nil {
		return nil, err
	}

	stats := &dto.DashboardStats{
		TodayRevenue:  decimal.Zero,
		MonthRevenue:  decimal.Zero,
		MonthProfit:   decimal.Zero,
		MonthExpenses: decimal.Zero,
		NetProfit:     decimal.Zero,
	}

	// Purchase prices for cost-of-goods; one lookup for the whole window.
	costs, err := s.purchasePrices(ctx, sales)
	if err != nil {
		return nil, err
	}

	for _, sale := range sales {
		stats.MonthSales++
		stats.MonthRevenue = stats.MonthRevenue.Add(sale.Total)
		if !sale.CreatedAt.Before(startOfDay) {
			stats.TodaySales++
			stats.TodayRevenue = stats.TodayRevenue.Add(sale.Total)
		}
		for _, item := range sale.Items {
			cost := costs[item.ProductID].Mul(decimal.NewFromInt(int64(item.Quantity)))
			stats.MonthProfit = stats.MonthProfit.Add(item.Total.Sub(cost))
		}
	}

	low, err := s.productRepo.FindBelowMinStock(ctx)
	if err != nil {
		return nil, err
	}
	stats.CriticalStock = int64(len(low))

	expenses, err := s.expenseRepo.SumSince(ctx, startOfMonth, "realized")
	if err != nil {
		return nil, err
	}
	stats.MonthExpenses = expenses
	stats.NetProfit = stats.MonthProfit.Sub(expenses)
	return stats, nil
}

// Chart returns one point per day for the trailing window, oldest first.
// Days without sales still get a zero point so the series has no gaps.
func (s *dashboardService) Chart(ctx context.Context, days int) ([]dto.ChartPoint, error) {
	if days <= 0 {
		days = 7
	}
	now := s.now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, -(days - 1))

	sales, err := s.saleRepo.ListSince(ctx, start)
	if err != nil {
		return nil, err
	}

	byDay := make(map[string]*dto.ChartPoint, days)
	points := make([]dto.ChartPoint, 0, days)
	for i := 0; i < days; i++ {
		date := start.AddDate(0, 0, i).Format("2006-01-02")
		points = append(points, dto.ChartPoint{Date: date, Revenue: decimal.Zero})
	}
	for i := range points {
		byDay[points[i].Date] = &points[i]
	}

	for _, sale := range sales {
		if p, ok := byDay[sale.CreatedAt.Format("2006-01-02")]; ok {
			p.Sales++
			p.Revenue = p.Revenue.Add(sale.Total)
		}
	}
	return points, nil
}

func (s *dashboardService) TopProducts(ctx context.Context, limit int) ([]dto.TopProduct, error) {
	if limit <= 0 {
		limit = 5
	}
	sales, err := s.saleRepo.ListSince(ctx, s.now().AddDate(0, 0, -30))
	if err != nil {
		return nil, err
	}

	type agg struct {
		name    string
		sold    int64
		revenue decimal.Decimal
	}
	byProduct := make(map[uuid.UUID]*agg)
	for _, sale := range sales {
		for _, item := range sale.Items {
			a, ok := byProduct[item.ProductID]
			if !ok {
				a = &agg{name: item.ProductName, revenue: decimal.Zero}
				byProduct[item.ProductID] = a
			}
			a.sold += int64(item.Quantity)
			a.revenue = a.revenue.Add(item.Total)
		}
	}

	ranked := make([]dto.TopProduct, 0, len(byProduct))
	for _, a := range byProduct {
		ranked = append(ranked, dto.TopProduct{ProductName: a.name, TotalSold: a.sold, Revenue: a.revenue})
	}
	sort.Slice(ranked, func(i, j int) bool { return ranked[i].TotalSold > ranked[j].TotalSold })
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, nil
}

func (s *dashboardService) purchasePrices(ctx context.Context, sales []model.Sale) (map[uuid.UUID]decimal.Decimal, error) {
	seen := make(map[uuid.UUID]struct{})
	var ids []uuid.UUID
	for _, sale := range sales {
		for _, item := range sale.Items {
			if _, ok := seen[item.ProductID]; !ok {
				seen[item.ProductID] = struct{}{}
				ids = append(ids, item.ProductID)
			}
		}
	}
	costs := make(map[uuid.UUID]decimal.Decimal, len(ids))
	if len(ids) == 0 {
		return costs, nil
	}
	products, err := s.productRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		costs[p.ID] = p.PurchasePrice
	}
	return costs, nil
}
