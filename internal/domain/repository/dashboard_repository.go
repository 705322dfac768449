package repository

import (
	"context"
	"time"

	"github.com/bereketw/itadmin-api/internal/application/scope"
)

// LabelCount is a generic (label, count) pair used by dashboard breakdowns:
// maintenance by status, devices by type, sessions by category, trainees by
// gender.
type LabelCount struct {
	Label string
	Count int64
}

// RecentSession is a compact row for the dashboard's latest-sessions table.
type RecentSession struct {
	Title        string
	DistrictName string
	CategoryName string
	StartDate    time.Time
}

// RecentMaintenance is a compact row for the dashboard's latest-maintenance
// table.
type RecentMaintenance struct {
	ID              int64
	DeviceName      string
	DeviceCode      string
	Status          string
	MaintenanceDate time.Time
	DistrictName    string
}

// DashboardSummary aggregates the scope-filtered counts shown on the landing
// dashboard.
type DashboardSummary struct {
	TotalSessions       int64
	TotalTrainees       int64
	CategoriesInUse     int64
	ActiveDistricts     int64
	TotalDevices        int64
	TotalMaintenances   int64
	MaintenanceByStatus []LabelCount
	DevicesByType       []LabelCount
	SessionsByCategory  []LabelCount
	TraineesByGender    []LabelCount
	RecentSessions      []RecentSession
	RecentMaintenances  []RecentMaintenance
}

// DashboardRepository is the read-only port for dashboard aggregates.
type DashboardRepository interface {
	Summary(ctx context.Context, sc scope.Scope) (*DashboardSummary, error)
}
