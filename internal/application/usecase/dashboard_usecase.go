package usecase

import (
	"context"

	"github.com/bereketw/itadmin-api/internal/application/dto"
	"github.com/bereketw/itadmin-api/internal/application/policy"
	"github.com/bereketw/itadmin-api/internal/application/scope"
	"github.com/bereketw/itadmin-api/internal/domain/entity"
	"github.com/bereketw/itadmin-api/internal/domain/repository"
)

// DashboardUseCase serves the scope-filtered landing-page aggregates.
type DashboardUseCase struct {
	repo     repository.DashboardRepository
	resolver *scope.Resolver
}

// NewDashboardUseCase constructs the use case.
func NewDashboardUseCase(repo repository.DashboardRepository, resolver *scope.Resolver) *DashboardUseCase {
	return &DashboardUseCase{repo: repo, resolver: resolver}
}

// Summary returns counts and chart breakdowns for the actor's scope.
func (uc *DashboardUseCase) Summary(ctx context.Context, actor entity.Actor) (*dto.DashboardResponse, error) {
	if err := authorize(actor, policy.Dashboard, policy.Read); err != nil {
		return nil, err
	}
	sc, err := uc.resolver.Resolve(ctx, actor)
	if err != nil {
		return nil, err
	}
	sum, err := uc.repo.Summary(ctx, sc)
	if err != nil {
		return nil, err
	}
	out := &dto.DashboardResponse{
		TotalSessions:       sum.TotalSessions,
		TotalTrainees:       sum.TotalTrainees,
		CategoriesInUse:     sum.CategoriesInUse,
		ActiveDistricts:     sum.ActiveDistricts,
		TotalDevices:        sum.TotalDevices,
		TotalMaintenances:   sum.TotalMaintenances,
		MaintenanceByStatus: toLabelCounts(sum.MaintenanceByStatus),
		DevicesByType:       toLabelCounts(sum.DevicesByType),
		SessionsByCategory:  toLabelCounts(sum.SessionsByCategory),
		TraineesByGender:    toLabelCounts(sum.TraineesByGender),
	}
	for _, s := range sum.RecentSessions {
		out.RecentSessions = append(out.RecentSessions, dto.RecentSessionItem{
			Title:        s.Title,
			DistrictName: s.DistrictName,
			CategoryName: s.CategoryName,
			StartDate:    s.StartDate.Format(dto.DateLayout),
		})
	}
	for _, m := range sum.RecentMaintenances {
		out.RecentMaintenances = append(out.RecentMaintenances, dto.RecentMaintenanceItem{
			ID:              m.ID,
			DeviceName:      m.DeviceName,
			DeviceCode:      m.DeviceCode,
			Status:          m.Status,
			MaintenanceDate: m.MaintenanceDate.Format(dto.DateLayout),
			DistrictName:    m.DistrictName,
		})
	}
	return out, nil
}

func toLabelCounts(in []repository.LabelCount) []dto.LabelCount {
	out := make([]dto.LabelCount, 0, len(in))
	for _, lc := range in {
		out = append(out, dto.LabelCount{Label: lc.Label, Count: lc.Count})
	}
	return out
}
