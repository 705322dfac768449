package usecase_test

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/bereketw/itadmin-api/internal/application/scope"
	"github.com/bereketw/itadmin-api/internal/application/usecase"
	"github.com/bereketw/itadmin-api/internal/domain/entity"
	"github.com/bereketw/itadmin-api/internal/domain/repository"
)

// In-memory fakes for the repository ports. They keep rows in maps and only
// implement the behavior the use cases rely on.

// ── districts ────────────────────────────────────────────────────────────────

type fakeDistrictRepo struct {
	rows   map[int64]*entity.District
	nextID int64
}

func newFakeDistrictRepo() *fakeDistrictRepo {
	return &fakeDistrictRepo{rows: map[int64]*entity.District{}, nextID: 1}
}

func (f *fakeDistrictRepo) add(d entity.District) *entity.District {
	if d.ID == 0 {
		d.ID = f.nextID
	}
	if d.ID >= f.nextID {
		f.nextID = d.ID + 1
	}
	f.rows[d.ID] = &d
	return f.rows[d.ID]
}

func (f *fakeDistrictRepo) Create(_ context.Context, d *entity.District) (int64, error) {
	stored := f.add(*d)
	return stored.ID, nil
}

func (f *fakeDistrictRepo) GetByID(_ context.Context, id int64) (*entity.District, error) {
	d, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	cp := *d
	return &cp, nil
}

func (f *fakeDistrictRepo) FindByName(_ context.Context, name string, excludeID int64) (*entity.District, error) {
	for _, d := range f.rows {
		if d.ID != excludeID && strings.EqualFold(d.Name, name) {
			cp := *d
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeDistrictRepo) Update(_ context.Context, d *entity.District) error {
	cp := *d
	f.rows[d.ID] = &cp
	return nil
}

func (f *fakeDistrictRepo) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := f.rows[id]; !ok {
		return false, nil
	}
	delete(f.rows, id)
	return true, nil
}

func (f *fakeDistrictRepo) List(_ context.Context) ([]repository.DistrictRow, error) {
	out := make([]repository.DistrictRow, 0, len(f.rows))
	for _, d := range f.rows {
		row := repository.DistrictRow{District: *d}
		if d.ParentID != nil {
			if p, ok := f.rows[*d.ParentID]; ok {
				row.ParentName = p.Name
			}
		}
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeDistrictRepo) ListZones(_ context.Context) ([]*entity.District, error) {
	var out []*entity.District
	for _, d := range f.rows {
		if d.IsZone() {
			cp := *d
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeDistrictRepo) ListChildren(_ context.Context, parentID int64) ([]*entity.District, error) {
	var out []*entity.District
	for _, d := range f.rows {
		if d.ParentID != nil && *d.ParentID == parentID {
			cp := *d
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeDistrictRepo) ChildIDs(ctx context.Context, parentID int64) ([]int64, error) {
	children, _ := f.ListChildren(ctx, parentID)
	ids := make([]int64, 0, len(children))
	for _, c := range children {
		ids = append(ids, c.ID)
	}
	return ids, nil
}

// ── users ────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	rows      map[int64]*entity.User
	nextID    int64
	deleteErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{rows: map[int64]*entity.User{}, nextID: 1}
}

func (f *fakeUserRepo) add(u entity.User) *entity.User {
	if u.ID == 0 {
		u.ID = f.nextID
	}
	if u.ID >= f.nextID {
		f.nextID = u.ID + 1
	}
	f.rows[u.ID] = &u
	return f.rows[u.ID]
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) (int64, error) {
	stored := f.add(*u)
	return stored.ID, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*repository.UserRow, error) {
	u, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	return &repository.UserRow{User: *u}, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range f.rows {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) EmailExists(_ context.Context, email string, excludeID int64) (bool, error) {
	for _, u := range f.rows {
		if u.ID != excludeID && u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	cp := *u
	f.rows[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id int64) (bool, error) {
	if f.deleteErr != nil {
		return false, f.deleteErr
	}
	if _, ok := f.rows[id]; !ok {
		return false, nil
	}
	delete(f.rows, id)
	return true, nil
}

func (f *fakeUserRepo) List(_ context.Context) ([]repository.UserRow, error) {
	out := make([]repository.UserRow, 0, len(f.rows))
	for _, u := range f.rows {
		out = append(out, repository.UserRow{User: *u})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeUserRepo) CountByDistricts(_ context.Context, districtIDs []int64) (int64, error) {
	var count int64
	for _, u := range f.rows {
		for _, id := range districtIDs {
			if u.DistrictID == id {
				count++
				break
			}
		}
	}
	return count, nil
}

// ── categories ───────────────────────────────────────────────────────────────

type fakeCategoryRepo struct {
	rows   map[int64]*entity.TrainingCategory
	nextID int64
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{rows: map[int64]*entity.TrainingCategory{}, nextID: 1}
}

func (f *fakeCategoryRepo) add(c entity.TrainingCategory) *entity.TrainingCategory {
	if c.ID == 0 {
		c.ID = f.nextID
	}
	if c.ID >= f.nextID {
		f.nextID = c.ID + 1
	}
	f.rows[c.ID] = &c
	return f.rows[c.ID]
}

func (f *fakeCategoryRepo) Create(_ context.Context, c *entity.TrainingCategory) (int64, error) {
	stored := f.add(*c)
	return stored.ID, nil
}

func (f *fakeCategoryRepo) GetByID(_ context.Context, id int64) (*entity.TrainingCategory, error) {
	c, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCategoryRepo) Update(_ context.Context, c *entity.TrainingCategory) error {
	cp := *c
	f.rows[c.ID] = &cp
	return nil
}

func (f *fakeCategoryRepo) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := f.rows[id]; !ok {
		return false, nil
	}
	delete(f.rows, id)
	return true, nil
}

func (f *fakeCategoryRepo) List(_ context.Context) ([]*entity.TrainingCategory, error) {
	var out []*entity.TrainingCategory
	for _, c := range f.rows {
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// ── sessions ─────────────────────────────────────────────────────────────────

type fakeSessionRepo struct {
	rows   map[int64]*repository.SessionRow
	nextID int64
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{rows: map[int64]*repository.SessionRow{}, nextID: 1}
}

func (f *fakeSessionRepo) add(row repository.SessionRow) *repository.SessionRow {
	if row.ID == 0 {
		row.ID = f.nextID
	}
	if row.ID >= f.nextID {
		f.nextID = row.ID + 1
	}
	f.rows[row.ID] = &row
	return f.rows[row.ID]
}

func (f *fakeSessionRepo) Create(_ context.Context, s *entity.TrainingSession) (int64, error) {
	stored := f.add(repository.SessionRow{TrainingSession: *s})
	return stored.ID, nil
}

func (f *fakeSessionRepo) GetByID(_ context.Context, id int64) (*repository.SessionRow, error) {
	row, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	cp := *row
	return &cp, nil
}

func (f *fakeSessionRepo) Update(_ context.Context, s *entity.TrainingSession) error {
	row, ok := f.rows[s.ID]
	if !ok {
		return nil
	}
	row.TrainingSession = *s
	return nil
}

func (f *fakeSessionRepo) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := f.rows[id]; !ok {
		return false, nil
	}
	delete(f.rows, id)
	return true, nil
}

func (f *fakeSessionRepo) List(_ context.Context, sc scope.Scope) ([]repository.SessionRow, error) {
	if sc.Empty() {
		return nil, nil
	}
	var out []repository.SessionRow
	for _, row := range f.rows {
		if sc.Contains(row.DistrictID) {
			out = append(out, *row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeSessionRepo) CountByDistricts(_ context.Context, districtIDs []int64) (int64, error) {
	var count int64
	for _, row := range f.rows {
		for _, id := range districtIDs {
			if row.DistrictID == id {
				count++
				break
			}
		}
	}
	return count, nil
}

// ── trainees ─────────────────────────────────────────────────────────────────

type fakeTraineeRepo struct {
	rows     map[int64]*entity.Trainee
	sessions *fakeSessionRepo
	nextID   int64
}

func newFakeTraineeRepo(sessions *fakeSessionRepo) *fakeTraineeRepo {
	return &fakeTraineeRepo{rows: map[int64]*entity.Trainee{}, sessions: sessions, nextID: 1}
}

func (f *fakeTraineeRepo) add(t entity.Trainee) *entity.Trainee {
	if t.ID == 0 {
		t.ID = f.nextID
	}
	if t.ID >= f.nextID {
		f.nextID = t.ID + 1
	}
	f.rows[t.ID] = &t
	return f.rows[t.ID]
}

func (f *fakeTraineeRepo) toRow(t *entity.Trainee) *repository.TraineeRow {
	row := &repository.TraineeRow{Trainee: *t}
	if s, ok := f.sessions.rows[t.SessionID]; ok {
		row.SessionTitle = s.Title
		row.DistrictID = s.DistrictID
		row.DistrictName = s.DistrictName
	}
	return row
}

func (f *fakeTraineeRepo) Create(_ context.Context, t *entity.Trainee) (int64, error) {
	stored := f.add(*t)
	return stored.ID, nil
}

func (f *fakeTraineeRepo) GetByID(_ context.Context, id int64) (*repository.TraineeRow, error) {
	t, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	return f.toRow(t), nil
}

func (f *fakeTraineeRepo) Update(_ context.Context, t *entity.Trainee) error {
	cp := *t
	f.rows[t.ID] = &cp
	return nil
}

func (f *fakeTraineeRepo) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := f.rows[id]; !ok {
		return false, nil
	}
	delete(f.rows, id)
	return true, nil
}

func (f *fakeTraineeRepo) List(_ context.Context, sc scope.Scope) ([]repository.TraineeRow, error) {
	if sc.Empty() {
		return nil, nil
	}
	var out []repository.TraineeRow
	for _, t := range f.rows {
		row := f.toRow(t)
		if sc.Contains(row.DistrictID) {
			out = append(out, *row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeTraineeRepo) ListBySession(_ context.Context, sessionID int64) ([]*entity.Trainee, error) {
	var out []*entity.Trainee
	for _, t := range f.rows {
		if t.SessionID == sessionID {
			cp := *t
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeTraineeRepo) DeleteBySession(_ context.Context, sessionID int64) (int64, error) {
	var count int64
	for id, t := range f.rows {
		if t.SessionID == sessionID {
			delete(f.rows, id)
			count++
		}
	}
	return count, nil
}

// ── devices ──────────────────────────────────────────────────────────────────

type fakeDeviceRepo struct {
	rows   map[int64]*entity.Device
	nextID int64
}

func newFakeDeviceRepo() *fakeDeviceRepo {
	return &fakeDeviceRepo{rows: map[int64]*entity.Device{}, nextID: 1}
}

func (f *fakeDeviceRepo) add(d entity.Device) *entity.Device {
	if d.ID == 0 {
		d.ID = f.nextID
	}
	if d.ID >= f.nextID {
		f.nextID = d.ID + 1
	}
	f.rows[d.ID] = &d
	return f.rows[d.ID]
}

func (f *fakeDeviceRepo) Create(_ context.Context, d *entity.Device) (int64, error) {
	stored := f.add(*d)
	return stored.ID, nil
}

func (f *fakeDeviceRepo) GetByID(_ context.Context, id int64) (*entity.Device, error) {
	d, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	cp := *d
	return &cp, nil
}

func (f *fakeDeviceRepo) CodeExists(_ context.Context, code string, excludeID int64) (bool, error) {
	for _, d := range f.rows {
		if d.ID != excludeID && d.DeviceCode == code {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeDeviceRepo) Update(_ context.Context, d *entity.Device) error {
	cp := *d
	f.rows[d.ID] = &cp
	return nil
}

func (f *fakeDeviceRepo) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := f.rows[id]; !ok {
		return false, nil
	}
	delete(f.rows, id)
	return true, nil
}

func (f *fakeDeviceRepo) List(_ context.Context, sc scope.Scope) ([]repository.DeviceRow, error) {
	if sc.Empty() {
		return nil, nil
	}
	var out []repository.DeviceRow
	for _, d := range f.rows {
		if sc.Contains(d.DistrictID) {
			out = append(out, repository.DeviceRow{Device: *d})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// ── maintenance ──────────────────────────────────────────────────────────────

type fakeMaintenanceRepo struct {
	rows    map[int64]*entity.MaintenanceRecord
	devices *fakeDeviceRepo
	nextID  int64
}

func newFakeMaintenanceRepo(devices *fakeDeviceRepo) *fakeMaintenanceRepo {
	return &fakeMaintenanceRepo{rows: map[int64]*entity.MaintenanceRecord{}, devices: devices, nextID: 1}
}

func (f *fakeMaintenanceRepo) add(m entity.MaintenanceRecord) *entity.MaintenanceRecord {
	if m.ID == 0 {
		m.ID = f.nextID
	}
	if m.ID >= f.nextID {
		f.nextID = m.ID + 1
	}
	f.rows[m.ID] = &m
	return f.rows[m.ID]
}

func (f *fakeMaintenanceRepo) toRow(m *entity.MaintenanceRecord) *repository.MaintenanceRow {
	row := &repository.MaintenanceRow{MaintenanceRecord: *m}
	if d, ok := f.devices.rows[m.DeviceID]; ok {
		row.DeviceCode = d.DeviceCode
		row.DeviceName = d.Name
		row.DistrictID = d.DistrictID
	}
	return row
}

func (f *fakeMaintenanceRepo) Create(_ context.Context, m *entity.MaintenanceRecord) (int64, error) {
	stored := f.add(*m)
	return stored.ID, nil
}

func (f *fakeMaintenanceRepo) GetByID(_ context.Context, id int64) (*repository.MaintenanceRow, error) {
	m, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	return f.toRow(m), nil
}

func (f *fakeMaintenanceRepo) Update(_ context.Context, m *entity.MaintenanceRecord) error {
	cp := *m
	f.rows[m.ID] = &cp
	return nil
}

func (f *fakeMaintenanceRepo) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := f.rows[id]; !ok {
		return false, nil
	}
	delete(f.rows, id)
	return true, nil
}

func (f *fakeMaintenanceRepo) List(_ context.Context, sc scope.Scope) ([]repository.MaintenanceRow, error) {
	if sc.Empty() {
		return nil, nil
	}
	var out []repository.MaintenanceRow
	for _, m := range f.rows {
		row := f.toRow(m)
		if sc.Contains(row.DistrictID) {
			out = append(out, *row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeMaintenanceRepo) CountByDevice(_ context.Context, deviceID int64) (int64, error) {
	var count int64
	for _, m := range f.rows {
		if m.DeviceID == deviceID {
			count++
		}
	}
	return count, nil
}

// ── transaction runners ──────────────────────────────────────────────────────

// The fake runners hand the same in-memory repos to fn; atomicity is not
// simulated.

type fakeDistrictTx struct {
	districts *fakeDistrictRepo
	users     *fakeUserRepo
	sessions  *fakeSessionRepo
}

func (f *fakeDistrictTx) RunDistrict(_ context.Context, fn func(
	repository.DistrictRepository,
	repository.UserRepository,
	repository.TrainingSessionRepository,
) error) error {
	return fn(f.districts, f.users, f.sessions)
}

type fakeSessionTx struct {
	sessions *fakeSessionRepo
	trainees *fakeTraineeRepo
}

func (f *fakeSessionTx) RunSession(_ context.Context, fn func(
	repository.TrainingSessionRepository,
	repository.TraineeRepository,
) error) error {
	return fn(f.sessions, f.trainees)
}

type fakeDeviceTx struct {
	devices      *fakeDeviceRepo
	maintenances *fakeMaintenanceRepo
}

func (f *fakeDeviceTx) RunDevice(_ context.Context, fn func(
	repository.DeviceRepository,
	repository.MaintenanceRepository,
) error) error {
	return fn(f.devices, f.maintenances)
}

// Interface guards: the fakes must keep tracking the ports.
var (
	_ repository.DistrictRepository         = (*fakeDistrictRepo)(nil)
	_ repository.UserRepository             = (*fakeUserRepo)(nil)
	_ repository.TrainingCategoryRepository = (*fakeCategoryRepo)(nil)
	_ repository.TrainingSessionRepository  = (*fakeSessionRepo)(nil)
	_ repository.TraineeRepository          = (*fakeTraineeRepo)(nil)
	_ repository.DeviceRepository           = (*fakeDeviceRepo)(nil)
	_ repository.MaintenanceRepository      = (*fakeMaintenanceRepo)(nil)
	_ usecase.DistrictTxRunner              = (*fakeDistrictTx)(nil)
	_ usecase.SessionTxRunner               = (*fakeSessionTx)(nil)
	_ usecase.DeviceTxRunner                = (*fakeDeviceTx)(nil)
)

// ── shared fixtures ──────────────────────────────────────────────────────────

func ptr(v int64) *int64 { return &v }

// sessionRowInDistrict builds a minimal stored session for guard tests.
func sessionRowInDistrict(districtID int64) repository.SessionRow {
	return repository.SessionRow{
		TrainingSession: entity.TrainingSession{
			Title:      "ICT Basics",
			DistrictID: districtID,
			CategoryID: 1,
			StartDate:  time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
			EndDate:    time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
			CreatedBy:  1,
		},
	}
}

var (
	adminActor  = entity.Actor{UserID: 1, Role: entity.RoleAdmin}
	zoneActor   = entity.Actor{UserID: 2, Role: entity.RoleZone, DistrictID: ptr(1)}
	woredaActor = entity.Actor{UserID: 3, Role: entity.RoleWoreda, DistrictID: ptr(2)}
)
