package dto

import "github.com/shopspring/decimal"

// DashboardSummaryResponse resumen de GET /api/dashboard/summary.
type DashboardSummaryResponse struct {
	TodayPrice  decimal.Decimal        `json:"today_price"`
	TodayWeight decimal.Decimal        `json:"today_weight"`
	MonthPrice  decimal.Decimal        `json:"month_price"`
	MonthWeight decimal.Decimal        `json:"month_weight"`
	TopProducts []ProductStatsResponse `json:"top_products"`
	DateLabel   string                 `json:"date_label"`
}
