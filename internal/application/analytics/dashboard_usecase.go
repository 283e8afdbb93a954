// Package analytics contiene el caso de uso del dashboard: KPIs del día y
// del mes más el feed de actividad reciente.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/coffee-urbantech/pos-api/internal/application/dto"
	"github.com/coffee-urbantech/pos-api/internal/domain/repository"
)

const dashboardActivityLimit = 10 // entradas del feed de actividad

// DashboardUseCase genera el resumen financiero del día y del mes en curso.
//
// Fuente de datos: AnalyticsRepository (consultas read-only). No accede a
// las tablas de ventas/compras directamente; delega todo en el repositorio.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

// GetSummary construye el DashboardSummaryDTO.
//
// Tres llamadas en paralelo:
//  1. GetSalesMetrics(hoy)  → TodaySales + TodayCosts
//  2. GetSalesMetrics(mes)  → MonthlySales + MonthlyCosts
//  3. GetRecentActivity     → RecentActivity
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	now := time.Now()

	// Hoy: 00:00:00.000 – 23:59:59.999
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayEnd := todayStart.Add(24*time.Hour - time.Nanosecond)

	// Mes en curso: día 1 a las 00:00 – hoy a las 23:59:59
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := todayEnd

	type metricsResult struct {
		revenue decimal.Decimal
		cost    decimal.Decimal
		err     error
	}
	type activityResult struct {
		entries []repository.ActivityEntry
		err     error
	}

	todayCh := make(chan metricsResult, 1)
	monthCh := make(chan metricsResult, 1)
	activityCh := make(chan activityResult, 1)

	go func() {
		rev, cost, err := uc.analyticsRepo.GetSalesMetrics(ctx, todayStart, todayEnd)
		todayCh <- metricsResult{rev, cost, err}
	}()
	go func() {
		rev, cost, err := uc.analyticsRepo.GetSalesMetrics(ctx, monthStart, monthEnd)
		monthCh <- metricsResult{rev, cost, err}
	}()
	go func() {
		entries, err := uc.analyticsRepo.GetRecentActivity(ctx, dashboardActivityLimit)
		activityCh <- activityResult{entries, err}
	}()

	today := <-todayCh
	month := <-monthCh
	activity := <-activityCh

	if today.err != nil {
		return nil, fmt.Errorf("dashboard: métricas de hoy: %w", today.err)
	}
	if month.err != nil {
		return nil, fmt.Errorf("dashboard: métricas del mes: %w", month.err)
	}
	if activity.err != nil {
		return nil, fmt.Errorf("dashboard: actividad reciente: %w", activity.err)
	}

	recent := make([]dto.ActivityDTO, 0, len(activity.entries))
	for _, e := range activity.entries {
		recent = append(recent, dto.ActivityDTO{
			Type:        e.Type,
			Date:        e.Date,
			Description: e.Description,
			Amount:      e.Amount,
		})
	}

	return &dto.DashboardSummaryDTO{
		TodaySales:     today.revenue.Round(2),
		TodayCosts:     today.cost.Round(2),
		TodayMargin:    today.revenue.Sub(today.cost).Round(2),
		MonthlySales:   month.revenue.Round(2),
		MonthlyCosts:   month.cost.Round(2),
		MonthlyMargin:  month.revenue.Sub(month.cost).Round(2),
		RecentActivity: recent,
		DateLabel:      MonthLabel(now),
	}, nil
}

// MonthLabel devuelve una etiqueta legible del mes, ej: "Agosto 2026".
func MonthLabel(t time.Time) string {
	months := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
