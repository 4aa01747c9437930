package service

import (
	"context"
	"testing"
	"time"

	"orionpos/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dashboardFixture struct {
	sales    *stubSaleRepo
	products *stubProductRepo
	expenses *stubExpenseRepo
	svc      *dashboardService
	now      time.Time
}

func newDashboardFixture() *dashboardFixture {
	f := &dashboardFixture{
		sales:    newStubSaleRepo(),
		products: newStubProductRepo(),
		expenses: newStubExpenseRepo(),
		// Mid-month so "today" and "earlier this month" are distinct buckets.
		now: time.Date(2026, 6, 15, 14, 0, 0, 0, time.Local),
	}
	f.svc = NewDashboardService(f.sales, f.products, f.expenses).(*dashboardService)
	f.svc.now = func() time.Time { return f.now }
	return f
}

func (f *dashboardFixture) addSale(createdAt time.Time, items ...model.SaleItem) *model.Sale {
	total := price("0")
	for _, item := range items {
		total = total.Add(item.Total)
	}
	s := &model.Sale{
		ID:            uuid.New(),
		InvoiceNumber: "INV-" + createdAt.Format("20060102-150405"),
		Subtotal:      total,
		Total:         total,
		CreatedAt:     createdAt,
		Items:         items,
	}
	f.sales.sales[s.ID] = s
	return s
}

func TestDashboardStats(t *testing.T) {
	f := newDashboardFixture()
	p := f.products.add(&model.Product{Name: "Widget", PurchasePrice: price("2.00"), SalePrice: price("5.00"), Quantity: 50, MinStock: 5})
	f.products.add(&model.Product{Name: "Low", PurchasePrice: price("1.00"), SalePrice: price("2.00"), Quantity: 1, MinStock: 5})

	// Two sales this month, one of them today. 3 + 2 units at 5.00, cost 2.00.
	f.addSale(f.now.Add(-time.Hour), model.SaleItem{
		ProductID: p.ID, ProductName: "Widget", Quantity: 3, UnitPrice: price("5.00"), Total: price("15.00"),
	})
	f.addSale(f.now.AddDate(0, 0, -10), model.SaleItem{
		ProductID: p.ID, ProductName: "Widget", Quantity: 2, UnitPrice: price("5.00"), Total: price("10.00"),
	})
	// Last month's sale stays out of every bucket.
	f.addSale(f.now.AddDate(0, -1, 0), model.SaleItem{
		ProductID: p.ID, ProductName: "Widget", Quantity: 9, UnitPrice: price("5.00"), Total: price("45.00"),
	})

	f.expenses.expenses[uuid.New()] = &model.Expense{
		Description: "Rent", Amount: price("4.00"), Type: "realized", Status: model.ExpenseValidated,
		CreatedAt: f.now.AddDate(0, 0, -5),
	}
	f.expenses.expenses[uuid.New()] = &model.Expense{
		Description: "Forecast", Amount: price("99.00"), Type: "projected", Status: model.ExpensePending,
		CreatedAt: f.now.AddDate(0, 0, -5),
	}

	stats, err := f.svc.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(1), stats.TodaySales)
	assert.True(t, stats.TodayRevenue.Equal(price("15.00")), "today revenue %s", stats.TodayRevenue)
	assert.Equal(t, int64(2), stats.MonthSales)
	assert.True(t, stats.MonthRevenue.Equal(price("25.00")), "month revenue %s", stats.MonthRevenue)

	// Profit: (15 - 3*2) + (10 - 2*2) = 15. Projected expenses don't count.
	assert.True(t, stats.MonthProfit.Equal(price("15.00")), "month profit %s", stats.MonthProfit)
	assert.True(t, stats.MonthExpenses.Equal(price("4.00")), "month expenses %s", stats.MonthExpenses)
	assert.True(t, stats.NetProfit.Equal(price("11.00")), "net profit %s", stats.NetProfit)

	assert.Equal(t, int64(1), stats.CriticalStock)
}

func TestDashboardChartZeroFills(t *testing.T) {
	f := newDashboardFixture()
	p := f.products.add(&model.Product{Name: "Widget", SalePrice: price("5.00")})

	f.addSale(f.now.AddDate(0, 0, -2), model.SaleItem{
		ProductID: p.ID, ProductName: "Widget", Quantity: 1, UnitPrice: price("5.00"), Total: price("5.00"),
	})

	points, err := f.svc.Chart(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, points, 7)

	// Oldest first, today last, exactly one non-zero day.
	assert.Equal(t, f.now.AddDate(0, 0, -6).Format("2006-01-02"), points[0].Date)
	assert.Equal(t, f.now.Format("2006-01-02"), points[6].Date)

	nonZero := 0
	for _, pt := range points {
		if pt.Sales > 0 {
			nonZero++
			assert.Equal(t, f.now.AddDate(0, 0, -2).Format("2006-01-02"), pt.Date)
			assert.True(t, pt.Revenue.Equal(price("5.00")))
		}
	}
	assert.Equal(t, 1, nonZero)
}

func TestDashboardTopProducts(t *testing.T) {
	f := newDashboardFixture()
	a := uuid.New()
	b := uuid.New()

	f.addSale(f.now.AddDate(0, 0, -1),
		model.SaleItem{ProductID: a, ProductName: "Alpha", Quantity: 5, UnitPrice: price("1.00"), Total: price("5.00")},
		model.SaleItem{ProductID: b, ProductName: "Beta", Quantity: 2, UnitPrice: price("3.00"), Total: price("6.00")},
	)
	f.addSale(f.now.AddDate(0, 0, -3),
		model.SaleItem{ProductID: b, ProductName: "Beta", Quantity: 1, UnitPrice: price("3.00"), Total: price("3.00")},
	)

	top, err := f.svc.TopProducts(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, top, 2)

	assert.Equal(t, "Alpha", top[0].ProductName)
	assert.Equal(t, int64(5), top[0].TotalSold)
	assert.Equal(t, "Beta", top[1].ProductName)
	assert.Equal(t, int64(3), top[1].TotalSold)
	assert.True(t, top[1].Revenue.Equal(price("9.00")))

	limited, err := f.svc.TopProducts(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "Alpha", limited[0].ProductName)
}
