package analytics

import (
	"context"
	"time"

	"github.com/Misa55555/stockpro-api/internal/application/dto"
	"github.com/Misa55555/stockpro-api/internal/domain"
	"github.com/Misa55555/stockpro-api/internal/domain/repository"
)

// DashboardUseCase arma las métricas del panel principal: ventas del día,
// alertas de stock bajo/agotado y lotes por vencer o vencidos. Solo lectura.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	batchRepo     repository.BatchRepository
	expiryDays    int
}

// NewDashboardUseCase construye el caso de uso. expiryDays es el horizonte
// de la alerta "por vencer" (7 días en la configuración por defecto).
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository, batchRepo repository.BatchRepository, expiryDays int) *DashboardUseCase {
	if expiryDays <= 0 {
		expiryDays = 7
	}
	return &DashboardUseCase{analyticsRepo: analyticsRepo, batchRepo: batchRepo, expiryDays: expiryDays}
}

// Build consulta todas las métricas y arma la respuesta del dashboard.
func (uc *DashboardUseCase) Build(ctx context.Context, role string) (*dto.DashboardResponse, error) {
	if !domain.HasPermission(role, domain.OpDashboardView) {
		return nil, domain.ErrForbidden
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	tomorrow := today.AddDate(0, 0, 1)

	total, tickets, err := uc.analyticsRepo.SalesTotals(today, tomorrow)
	if err != nil {
		return nil, err
	}

	low, err := uc.analyticsRepo.LowStockProducts()
	if err != nil {
		return nil, err
	}
	out, err := uc.analyticsRepo.OutOfStockProducts()
	if err != nil {
		return nil, err
	}

	expiring, err := uc.batchRepo.ListExpiringBetween(today, today.AddDate(0, 0, uc.expiryDays))
	if err != nil {
		return nil, err
	}
	expired, err := uc.batchRepo.ListExpired(today)
	if err != nil {
		return nil, err
	}

	resp := &dto.DashboardResponse{
		TodayTotal:   total,
		TodayTickets: tickets,
		LowStock:     make([]dto.LowStockItem, 0, len(low)),
		OutOfStock:   make([]dto.LowStockItem, 0, len(out)),
		ExpiringSoon: make([]dto.ExpiryItem, 0, len(expiring)),
		Expired:      make([]dto.ExpiryItem, 0, len(expired)),
	}
	for _, ps := range low {
		resp.LowStock = append(resp.LowStock, dto.LowStockItem{
			ProductID: ps.Product.ID,
			Name:      ps.Product.Name,
			Stock:     ps.Stock,
			MinStock:  ps.Product.MinStock,
		})
	}
	for _, ps := range out {
		resp.OutOfStock = append(resp.OutOfStock, dto.LowStockItem{
			ProductID: ps.Product.ID,
			Name:      ps.Product.Name,
			Stock:     ps.Stock,
			MinStock:  ps.Product.MinStock,
		})
	}
	for _, b := range expiring {
		resp.ExpiringSoon = append(resp.ExpiringSoon, dto.ExpiryItem{
			BatchID:      b.ID,
			ProductID:    b.ProductID,
			QtyRemaining: b.QtyRemaining,
			ExpiresAt:    *b.ExpiresAt,
		})
	}
	for _, b := range expired {
		resp.Expired = append(resp.Expired, dto.ExpiryItem{
			BatchID:      b.ID,
			ProductID:    b.ProductID,
			QtyRemaining: b.QtyRemaining,
			ExpiresAt:    *b.ExpiresAt,
		})
	}
	return resp, nil
}
