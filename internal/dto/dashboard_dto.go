package dto

import "github.com/shopspring/decimal"

// DashboardStats aggregates the admin landing-page figures.
type DashboardStats struct {
	TodaySales    int64           `json:"today_sales"`
	TodayRevenue  decimal.Decimal `json:"today_revenue"`
	MonthSales    int64           `json:"month_sales"`
	MonthRevenue  decimal.Decimal `json:"month_revenue"`
	CriticalStock int64           `json:"critical_stock"`
	MonthProfit   decimal.Decimal `json:"month_profit"`
	MonthExpenses decimal.Decimal `json:"month_expenses"`
	NetProfit     decimal.Decimal `json:"net_profit"`
}

// ChartPoint is one day of the revenue series.
type ChartPoint struct {
	Date    string          `json:"date"`
	Revenue decimal.Decimal `json:"revenue"`
	Sales   int64           `json:"sales"`
}

// TopProduct is one row of the best-sellers ranking (last 30 days).
type TopProduct struct {
	ProductName string          `json:"product_name"`
	TotalSold   int64           `json:"total_sold"`
	Revenue     decimal.Decimal `json:"revenue"`
}
