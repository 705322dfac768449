package postgres

import (
	"context"
	"fmt"

	"github.com/bereketw/itadmin-api/internal/application/scope"
	"github.com/bereketw/itadmin-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo computes the landing-page aggregates. Every query applies the
// caller's scope so each role sees only its own districts' numbers.
type DashboardRepo struct {
	db DBTX
}

// NewDashboardRepository builds the read-only adapter for dashboard summaries.
func NewDashboardRepository(db DBTX) *DashboardRepo {
	return &DashboardRepo{db: db}
}

// sessionFilter and deviceFilter return a WHERE fragment plus its args for the
// given scope. The fragment is empty for an unbounded scope.
func sessionFilter(sc scope.Scope) (string, []any) {
	if sc.Unbounded() {
		return "", nil
	}
	return " WHERE s.district_id = ANY($1)", []any{sc.IDs()}
}

func deviceFilter(sc scope.Scope) (string, []any) {
	if sc.Unbounded() {
		return "", nil
	}
	return " WHERE d.district_id = ANY($1)", []any{sc.IDs()}
}

// Summary gathers the scoped dashboard aggregates. An empty scope short
// circuits to an all-zero summary without touching the database.
func (r *DashboardRepo) Summary(ctx context.Context, sc scope.Scope) (*repository.DashboardSummary, error) {
	sum := &repository.DashboardSummary{}
	if sc.Empty() {
		return sum, nil
	}

	if err := r.counts(ctx, sc, sum); err != nil {
		return nil, err
	}

	var err error
	sWhere, sArgs := sessionFilter(sc)
	dWhere, dArgs := deviceFilter(sc)

	sum.MaintenanceByStatus, err = r.labelCounts(ctx, `
		SELECT m.status, COUNT(*)
		FROM maintenances m
		JOIN devices d ON m.device_id = d.id`+dWhere+`
		GROUP BY m.status ORDER BY m.status`, dArgs)
	if err != nil {
		return nil, fmt.Errorf("maintenance by status: %w", err)
	}

	sum.DevicesByType, err = r.labelCounts(ctx, `
		SELECT d.device_type, COUNT(*)
		FROM devices d`+dWhere+`
		GROUP BY d.device_type ORDER BY COUNT(*) DESC`, dArgs)
	if err != nil {
		return nil, fmt.Errorf("devices by type: %w", err)
	}

	sum.SessionsByCategory, err = r.labelCounts(ctx, `
		SELECT c.name, COUNT(*)
		FROM training_sessions s
		JOIN training_categories c ON s.category_id = c.id`+sWhere+`
		GROUP BY c.name ORDER BY COUNT(*) DESC`, sArgs)
	if err != nil {
		return nil, fmt.Errorf("sessions by category: %w", err)
	}

	sum.TraineesByGender, err = r.labelCounts(ctx, `
		SELECT t.gender, COUNT(*)
		FROM trainees t
		JOIN training_sessions s ON t.session_id = s.id`+sWhere+`
		GROUP BY t.gender ORDER BY t.gender`, sArgs)
	if err != nil {
		return nil, fmt.Errorf("trainees by gender: %w", err)
	}

	if err := r.recentSessions(ctx, sc, sum); err != nil {
		return nil, err
	}
	if err := r.recentMaintenances(ctx, sc, sum); err != nil {
		return nil, err
	}
	return sum, nil
}

func (r *DashboardRepo) counts(ctx context.Context, sc scope.Scope, sum *repository.DashboardSummary) error {
	sWhere, sArgs := sessionFilter(sc)
	dWhere, dArgs := deviceFilter(sc)

	type countQuery struct {
		dst   *int64
		query string
		args  []any
	}
	queries := []countQuery{
		{&sum.TotalSessions, `SELECT COUNT(*) FROM training_sessions s` + sWhere, sArgs},
		{&sum.TotalTrainees, `SELECT COUNT(*) FROM trainees t JOIN training_sessions s ON t.session_id = s.id` + sWhere, sArgs},
		{&sum.CategoriesInUse, `SELECT COUNT(DISTINCT s.category_id) FROM training_sessions s` + sWhere, sArgs},
		{&sum.ActiveDistricts, `SELECT COUNT(DISTINCT s.district_id) FROM training_sessions s` + sWhere, sArgs},
		{&sum.TotalDevices, `SELECT COUNT(*) FROM devices d` + dWhere, dArgs},
		{&sum.TotalMaintenances, `SELECT COUNT(*) FROM maintenances m JOIN devices d ON m.device_id = d.id` + dWhere, dArgs},
	}
	for _, q := range queries {
		if err := r.db.QueryRow(ctx, q.query, q.args...).Scan(q.dst); err != nil {
			return fmt.Errorf("dashboard count: %w", err)
		}
	}
	return nil
}

func (r *DashboardRepo) labelCounts(ctx context.Context, query string, args []any) ([]repository.LabelCount, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []repository.LabelCount
	for rows.Next() {
		var lc repository.LabelCount
		if err := rows.Scan(&lc.Label, &lc.Count); err != nil {
			return nil, err
		}
		list = append(list, lc)
	}
	return list, rows.Err()
}

func (r *DashboardRepo) recentSessions(ctx context.Context, sc scope.Scope, sum *repository.DashboardSummary) error {
	sWhere, sArgs := sessionFilter(sc)
	query := `
		SELECT s.title, w.name, c.name, s.start_date
		FROM training_sessions s
		JOIN districts w ON s.district_id = w.id
		JOIN training_categories c ON s.category_id = c.id` + sWhere + `
		ORDER BY s.start_date DESC, s.id DESC
		LIMIT 5`
	rows, err := r.db.Query(ctx, query, sArgs...)
	if err != nil {
		return fmt.Errorf("recent sessions: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var rs repository.RecentSession
		if err := rows.Scan(&rs.Title, &rs.DistrictName, &rs.CategoryName, &rs.StartDate); err != nil {
			return fmt.Errorf("scan recent session: %w", err)
		}
		sum.RecentSessions = append(sum.RecentSessions, rs)
	}
	return rows.Err()
}

func (r *DashboardRepo) recentMaintenances(ctx context.Context, sc scope.Scope, sum *repository.DashboardSummary) error {
	dWhere, dArgs := deviceFilter(sc)
	query := `
		SELECT m.id, d.name, d.device_code, m.status, m.maintenance_date, w.name
		FROM maintenances m
		JOIN devices d ON m.device_id = d.id
		JOIN districts w ON d.district_id = w.id` + dWhere + `
		ORDER BY m.maintenance_date DESC, m.id DESC
		LIMIT 5`
	rows, err := r.db.Query(ctx, query, dArgs...)
	if err != nil {
		return fmt.Errorf("recent maintenance: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var rm repository.RecentMaintenance
		if err := rows.Scan(&rm.ID, &rm.DeviceName, &rm.DeviceCode, &rm.Status, &rm.MaintenanceDate, &rm.DistrictName); err != nil {
			return fmt.Errorf("scan recent maintenance: %w", err)
		}
		sum.RecentMaintenances = append(sum.RecentMaintenances, rm)
	}
	return rows.Err()
}
