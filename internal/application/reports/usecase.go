// Package reports calcula el reporte financiero por período: resumen de
// ingresos/costos, ventas por categoría, productos más vendidos y estado
// del inventario. Los agregados se calculan sobre el historial inmutable,
// así que un cambio de precio posterior no altera reportes pasados.
package reports

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/coffee-urbantech/pos-api/internal/application/analytics"
	"github.com/coffee-urbantech/pos-api/internal/application/dto"
	"github.com/coffee-urbantech/pos-api/internal/domain"
	"github.com/coffee-urbantech/pos-api/internal/domain/entity"
	"github.com/coffee-urbantech/pos-api/internal/domain/repository"
)

// Umbrales de stock para el estado del inventario.
const (
	criticalStockThreshold = 8  // stock < 8  → Crítico
	lowStockThreshold      = 16 // stock < 16 → Bajo
)

const (
	topProductsLimit = 5
	inventoryRowsMax = 500 // catálogo de una cafetería; no se pagina el reporte
)

// ReportUseCase genera el reporte financiero de un período.
type ReportUseCase struct {
	saleRepo     repository.SaleRepository
	purchaseRepo repository.PurchaseRepository
	productRepo  repository.ProductRepository
	pdfGenerator ReportPDFGenerator
}

// NewReportUseCase construye el caso de uso. pdfGenerator puede ser nil si
// no se expone la descarga en PDF.
func NewReportUseCase(
	saleRepo repository.SaleRepository,
	purchaseRepo repository.PurchaseRepository,
	productRepo repository.ProductRepository,
	pdfGenerator ReportPDFGenerator,
) *ReportUseCase {
	return &ReportUseCase{
		saleRepo:     saleRepo,
		purchaseRepo: purchaseRepo,
		productRepo:  productRepo,
		pdfGenerator: pdfGenerator,
	}
}

// Generate calcula el reporte del período ("today", "week", "month", "year").
func (uc *ReportUseCase) Generate(ctx context.Context, period string) (*dto.ReportResponse, error) {
	from, to, err := periodRange(period, time.Now())
	if err != nil {
		return nil, err
	}

	sales, err := uc.saleRepo.ListByDateRange(from, to)
	if err != nil {
		return nil, fmt.Errorf("reporte: ventas del período: %w", err)
	}
	purchases, err := uc.purchaseRepo.ListByDateRange(from, to)
	if err != nil {
		return nil, fmt.Errorf("reporte: compras del período: %w", err)
	}
	products, err := uc.productRepo.List(inventoryRowsMax, 0)
	if err != nil {
		return nil, fmt.Errorf("reporte: inventario: %w", err)
	}

	summary := buildSummary(sales, purchases)
	byCategory := uc.salesByCategory(sales, summary.TotalRevenue)
	top := topProducts(sales)
	inventory := inventoryStatus(products)

	return &dto.ReportResponse{
		Period:        period,
		DateLabel:     analytics.MonthLabel(time.Now()),
		Summary:       summary,
		ByCategory:    byCategory,
		TopProducts:   top,
		InventoryRows: inventory,
	}, nil
}

// GeneratePDF calcula el reporte y lo convierte a PDF.
func (uc *ReportUseCase) GeneratePDF(ctx context.Context, period string) ([]byte, error) {
	if uc.pdfGenerator == nil {
		return nil, domain.ErrNotFound
	}
	report, err := uc.Generate(ctx, period)
	if err != nil {
		return nil, err
	}
	return uc.pdfGenerator.GenerateReportPDF(ctx, report)
}

// periodRange traduce el período a [from, to]. "week" son los últimos 7
// días incluyendo hoy; "month" y "year" van desde el día 1 / enero 1.
func periodRange(period string, now time.Time) (time.Time, time.Time, error) {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.Add(24*time.Hour - time.Nanosecond)

	switch period {
	case dto.PeriodToday:
		return dayStart, dayEnd, nil
	case dto.PeriodWeek:
		return dayStart.AddDate(0, 0, -6), dayEnd, nil
	case dto.PeriodMonth:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), dayEnd, nil
	case dto.PeriodYear:
		return time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location()), dayEnd, nil
	default:
		return time.Time{}, time.Time{}, domain.ErrInvalidInput
	}
}

func buildSummary(sales []*entity.Sale, purchases []*entity.Purchase) dto.ReportSummaryDTO {
	revenue := decimal.Zero
	for _, s := range sales {
		revenue = revenue.Add(s.Total)
	}
	costs := decimal.Zero
	for _, p := range purchases {
		costs = costs.Add(p.Total)
	}

	transactions := len(sales)
	avgTicket := decimal.Zero
	if transactions > 0 {
		avgTicket = revenue.Div(decimal.NewFromInt(int64(transactions))).Round(2)
	}
	netProfit := revenue.Sub(costs)
	margin := decimal.Zero
	if revenue.IsPositive() {
		margin = netProfit.Div(revenue).Mul(decimal.NewFromInt(100)).Round(1)
	}

	return dto.ReportSummaryDTO{
		TotalRevenue:      revenue.Round(2),
		TotalCosts:        costs.Round(2),
		TotalTransactions: transactions,
		AvgTicket:         avgTicket,
		NetProfit:         netProfit.Round(2),
		ProfitMargin:      margin,
	}
}

// salesByCategory agrega cantidades e ingresos por categoría del producto.
// Las líneas de productos ya eliminados del inventario se agrupan en
// "Otros" (el historial solo guarda nombre y precio, no la categoría).
func (uc *ReportUseCase) salesByCategory(sales []*entity.Sale, totalRevenue decimal.Decimal) []dto.CategorySalesDTO {
	type acc struct {
		quantity int64
		revenue  decimal.Decimal
	}
	byCategory := map[string]*acc{}
	categoryOf := map[string]string{} // productID -> categoría, memoizado

	for _, s := range sales {
		for _, item := range s.Items {
			category, ok := categoryOf[item.ProductID]
			if !ok {
				category = entity.CategoryOtros
				if p, err := uc.productRepo.GetByID(item.ProductID); err == nil && p != nil {
					category = p.Category
				}
				categoryOf[item.ProductID] = category
			}
			a := byCategory[category]
			if a == nil {
				a = &acc{revenue: decimal.Zero}
				byCategory[category] = a
			}
			a.quantity += item.Quantity
			a.revenue = a.revenue.Add(item.Subtotal)
		}
	}

	out := make([]dto.CategorySalesDTO, 0, len(byCategory))
	for category, a := range byCategory {
		percentage := decimal.Zero
		if totalRevenue.IsPositive() {
			percentage = a.revenue.Div(totalRevenue).Mul(decimal.NewFromInt(100)).Round(1)
		}
		out = append(out, dto.CategorySalesDTO{
			Category:   category,
			Quantity:   a.quantity,
			Revenue:    a.revenue.Round(2),
			Percentage: percentage,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Revenue.GreaterThan(out[j].Revenue)
	})
	return out
}

// topProducts agrega por nombre de producto (el snapshot histórico) y
// devuelve los de mayor ingreso.
func topProducts(sales []*entity.Sale) []dto.TopProductDTO {
	type acc struct {
		quantity int64
		revenue  decimal.Decimal
	}
	byName := map[string]*acc{}
	for _, s := range sales {
		for _, item := range s.Items {
			a := byName[item.Name]
			if a == nil {
				a = &acc{revenue: decimal.Zero}
				byName[item.Name] = a
			}
			a.quantity += item.Quantity
			a.revenue = a.revenue.Add(item.Subtotal)
		}
	}
	out := make([]dto.TopProductDTO, 0, len(byName))
	for name, a := range byName {
		out = append(out, dto.TopProductDTO{
			Name:     name,
			Quantity: a.quantity,
			Revenue:  a.revenue.Round(2),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Revenue.GreaterThan(out[j].Revenue)
	})
	if len(out) > topProductsLimit {
		out = out[:topProductsLimit]
	}
	return out
}

// inventoryStatus clasifica cada producto por nivel de stock y lo valora
// al costo.
func inventoryStatus(products []*entity.Product) []dto.InventoryRowDTO {
	out := make([]dto.InventoryRowDTO, 0, len(products))
	for _, p := range products {
		status := dto.StockStatusNormal
		switch {
		case p.Stock < criticalStockThreshold:
			status = dto.StockStatusCritico
		case p.Stock < lowStockThreshold:
			status = dto.StockStatusBajo
		}
		out = append(out, dto.InventoryRowDTO{
			Name:   p.Name,
			Stock:  p.Stock,
			Status: status,
			Value:  p.Cost.Mul(decimal.NewFromInt(p.Stock)).Round(2),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
