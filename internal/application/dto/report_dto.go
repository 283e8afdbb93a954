package dto

import "github.com/shopspring/decimal"

// Períodos válidos del reporte financiero.
const (
	PeriodToday = "today"
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodYear  = "year"
)

// ReportResponse respuesta de GET /api/reports.
type ReportResponse struct {
	Period    string `json:"period"`
	DateLabel string `json:"date_label"`

	Summary       ReportSummaryDTO   `json:"summary"`
	ByCategory    []CategorySalesDTO `json:"sales_by_category"`
	TopProducts   []TopProductDTO    `json:"top_products"`
	InventoryRows []InventoryRowDTO  `json:"inventory_status"`
}

// ReportSummaryDTO resumen financiero del período.
type ReportSummaryDTO struct {
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
	TotalCosts        decimal.Decimal `json:"total_costs"`
	TotalTransactions int             `json:"total_transactions"`
	AvgTicket         decimal.Decimal `json:"avg_ticket"`
	NetProfit         decimal.Decimal `json:"net_profit"`
	ProfitMargin      decimal.Decimal `json:"profit_margin"` // porcentaje sobre ingresos
}

// CategorySalesDTO ventas agregadas por categoría de producto.
type CategorySalesDTO struct {
	Category   string          `json:"category"`
	Quantity   int64           `json:"quantity"`
	Revenue    decimal.Decimal `json:"revenue"`
	Percentage decimal.Decimal `json:"percentage"` // % del ingreso total
}

// TopProductDTO producto más vendido del período.
type TopProductDTO struct {
	Name     string          `json:"name"`
	Quantity int64           `json:"quantity"`
	Revenue  decimal.Decimal `json:"revenue"`
}

// Estados de stock del reporte de inventario.
const (
	StockStatusNormal  = "Normal"
	StockStatusBajo    = "Bajo"
	StockStatusCritico = "Crítico"
)

// InventoryRowDTO fila del estado del inventario.
type InventoryRowDTO struct {
	Name   string          `json:"name"`
	Stock  int64           `json:"stock"`
	Status string          `json:"status"`
	Value  decimal.Decimal `json:"value"` // stock * costo
}
