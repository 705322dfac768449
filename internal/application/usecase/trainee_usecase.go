package usecase

import (
	"context"
	"strings"

	"github.com/bereketw/itadmin-api/internal/application/dto"
	"github.com/bereketw/itadmin-api/internal/application/policy"
	"github.com/bereketw/itadmin-api/internal/application/scope"
	"github.com/bereketw/itadmin-api/internal/domain"
	"github.com/bereketw/itadmin-api/internal/domain/entity"
	"github.com/bereketw/itadmin-api/internal/domain/repository"
)

// TraineeUseCase manages session participants. Access is always gated through
// the owning session's district.
type TraineeUseCase struct {
	trainees repository.TraineeRepository
	sessions repository.TrainingSessionRepository
	resolver *scope.Resolver
}

// NewTraineeUseCase constructs the use case.
func NewTraineeUseCase(
	trainees repository.TraineeRepository,
	sessions repository.TrainingSessionRepository,
	resolver *scope.Resolver,
) *TraineeUseCase {
	return &TraineeUseCase{trainees: trainees, sessions: sessions, resolver: resolver}
}

// Create adds a trainee to a session inside the actor's scope.
func (uc *TraineeUseCase) Create(ctx context.Context, actor entity.Actor, in dto.TraineeRequest) (*dto.TraineeResponse, error) {
	if err := authorize(actor, policy.Trainees, policy.Create); err != nil {
		return nil, err
	}
	in.FullName = strings.TrimSpace(in.FullName)
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	if err := uc.checkSessionAccess(ctx, actor, in.SessionID); err != nil {
		return nil, err
	}
	t := &entity.Trainee{
		FullName:     in.FullName,
		Gender:       in.Gender,
		Phone:        strings.TrimSpace(in.Phone),
		Organization: strings.TrimSpace(in.Organization),
		SessionID:    in.SessionID,
	}
	id, err := uc.trainees.Create(ctx, t)
	if err != nil {
		return nil, err
	}
	t.ID = id
	return toTraineeResponse(&repository.TraineeRow{Trainee: *t}), nil
}

// Update replaces a trainee's fields. Both the current and the target session
// must be in scope.
func (uc *TraineeUseCase) Update(ctx context.Context, actor entity.Actor, id int64, in dto.TraineeRequest) (*dto.TraineeResponse, error) {
	if err := authorize(actor, policy.Trainees, policy.Update); err != nil {
		return nil, err
	}
	in.FullName = strings.TrimSpace(in.FullName)
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	row, err := uc.requireTrainee(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if err := uc.checkSessionAccess(ctx, actor, in.SessionID); err != nil {
		return nil, err
	}
	t := row.Trainee
	t.FullName = in.FullName
	t.Gender = in.Gender
	t.Phone = strings.TrimSpace(in.Phone)
	t.Organization = strings.TrimSpace(in.Organization)
	t.SessionID = in.SessionID
	if err := uc.trainees.Update(ctx, &t); err != nil {
		return nil, err
	}
	return toTraineeResponse(&repository.TraineeRow{Trainee: t}), nil
}

// Delete removes a trainee inside the actor's scope.
func (uc *TraineeUseCase) Delete(ctx context.Context, actor entity.Actor, id int64) error {
	if err := authorize(actor, policy.Trainees, policy.Delete); err != nil {
		return err
	}
	if _, err := uc.requireTrainee(ctx, actor, id); err != nil {
		return err
	}
	deleted, err := uc.trainees.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotFound
	}
	return nil
}

// GetByID fetches one trainee inside the actor's scope.
func (uc *TraineeUseCase) GetByID(ctx context.Context, actor entity.Actor, id int64) (*dto.TraineeResponse, error) {
	if err := authorize(actor, policy.Trainees, policy.Read); err != nil {
		return nil, err
	}
	row, err := uc.requireTrainee(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	return toTraineeResponse(row), nil
}

// List returns the trainees whose sessions fall inside the actor's scope.
func (uc *TraineeUseCase) List(ctx context.Context, actor entity.Actor) ([]dto.TraineeResponse, error) {
	if err := authorize(actor, policy.Trainees, policy.Read); err != nil {
		return nil, err
	}
	sc, err := uc.resolver.Resolve(ctx, actor)
	if err != nil {
		return nil, err
	}
	rows, err := uc.trainees.List(ctx, sc)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TraineeResponse, 0, len(rows))
	for i := range rows {
		out = append(out, *toTraineeResponse(&rows[i]))
	}
	return out, nil
}

// ListBySession returns the roster of one in-scope session.
func (uc *TraineeUseCase) ListBySession(ctx context.Context, actor entity.Actor, sessionID int64) ([]dto.TraineeResponse, error) {
	if err := authorize(actor, policy.Trainees, policy.Read); err != nil {
		return nil, err
	}
	if err := uc.checkSessionAccess(ctx, actor, sessionID); err != nil {
		return nil, err
	}
	list, err := uc.trainees.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TraineeResponse, 0, len(list))
	for _, t := range list {
		out = append(out, *toTraineeResponse(&repository.TraineeRow{Trainee: *t}))
	}
	return out, nil
}

// requireTrainee loads a trainee and verifies its session's district is in
// scope. Out-of-scope rows read as access denied, never as existence hints.
func (uc *TraineeUseCase) requireTrainee(ctx context.Context, actor entity.Actor, id int64) (*repository.TraineeRow, error) {
	row, err := uc.trainees.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, domain.ErrNotFound
	}
	sc, err := uc.resolver.Resolve(ctx, actor)
	if err != nil {
		return nil, err
	}
	if !sc.Contains(row.DistrictID) {
		return nil, domain.Forbiddenf("Access denied to this trainee")
	}
	return row, nil
}

func (uc *TraineeUseCase) checkSessionAccess(ctx context.Context, actor entity.Actor, sessionID int64) error {
	s, err := uc.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return err
	}
	if s == nil {
		return domain.Validationf("Selected session does not exist.")
	}
	sc, err := uc.resolver.Resolve(ctx, actor)
	if err != nil {
		return err
	}
	if !sc.Contains(s.DistrictID) {
		return domain.Forbiddenf("Access denied to this session")
	}
	return nil
}

func toTraineeResponse(row *repository.TraineeRow) *dto.TraineeResponse {
	return &dto.TraineeResponse{
		ID:           row.ID,
		FullName:     row.FullName,
		Gender:       row.Gender,
		Phone:        row.Phone,
		Organization: row.Organization,
		SessionID:    row.SessionID,
		SessionTitle: row.SessionTitle,
		DistrictName: row.DistrictName,
	}
}
