package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bereketw/itadmin-api/internal/application/dto"
	"github.com/bereketw/itadmin-api/internal/application/policy"
	"github.com/bereketw/itadmin-api/internal/application/scope"
	"github.com/bereketw/itadmin-api/internal/domain"
	"github.com/bereketw/itadmin-api/internal/domain/entity"
	"github.com/bereketw/itadmin-api/internal/domain/repository"
)

// SessionUseCase manages training sessions. All roles participate, but the
// submitted district is always checked against the actor server side: a
// Woreda actor only in their own district, a Zone actor only in child
// Woredas.
type SessionUseCase struct {
	sessions   repository.TrainingSessionRepository
	categories repository.TrainingCategoryRepository
	resolver   *scope.Resolver
	tx         SessionTxRunner
}

// NewSessionUseCase constructs the use case.
func NewSessionUseCase(
	sessions repository.TrainingSessionRepository,
	categories repository.TrainingCategoryRepository,
	resolver *scope.Resolver,
	tx SessionTxRunner,
) *SessionUseCase {
	return &SessionUseCase{sessions: sessions, categories: categories, resolver: resolver, tx: tx}
}

// Create adds a session. The creator is always the acting user, never a
// client-submitted id.
func (uc *SessionUseCase) Create(ctx context.Context, actor entity.Actor, in dto.SessionRequest) (*dto.SessionResponse, error) {
	if err := authorize(actor, policy.Sessions, policy.Create); err != nil {
		return nil, err
	}
	in.Title = strings.TrimSpace(in.Title)
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	if err := uc.checkDistrictWrite(ctx, actor, in.DistrictID); err != nil {
		return nil, err
	}
	if cat, err := uc.categories.GetByID(ctx, in.CategoryID); err != nil {
		return nil, err
	} else if cat == nil {
		return nil, domain.Validationf("Selected category does not exist.")
	}
	s, err := sessionFromRequest(in)
	if err != nil {
		return nil, err
	}
	s.CreatedBy = actor.UserID
	id, err := uc.sessions.Create(ctx, s)
	if err != nil {
		return nil, err
	}
	s.ID = id
	return toSessionResponse(&repository.SessionRow{TrainingSession: *s}), nil
}

// Update replaces a session's mutable fields. Both the session's current
// district and the newly submitted one must be writable by the actor.
func (uc *SessionUseCase) Update(ctx context.Context, actor entity.Actor, id int64, in dto.SessionRequest) (*dto.SessionResponse, error) {
	if err := authorize(actor, policy.Sessions, policy.Update); err != nil {
		return nil, err
	}
	in.Title = strings.TrimSpace(in.Title)
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	row, err := uc.sessions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.checkDistrictWrite(ctx, actor, row.DistrictID); err != nil {
		return nil, err
	}
	if err := uc.checkDistrictWrite(ctx, actor, in.DistrictID); err != nil {
		return nil, err
	}
	if cat, err := uc.categories.GetByID(ctx, in.CategoryID); err != nil {
		return nil, err
	} else if cat == nil {
		return nil, domain.Validationf("Selected category does not exist.")
	}
	s, err := sessionFromRequest(in)
	if err != nil {
		return nil, err
	}
	s.ID = id
	s.CreatedBy = row.CreatedBy
	if err := uc.sessions.Update(ctx, s); err != nil {
		return nil, err
	}
	return toSessionResponse(&repository.SessionRow{TrainingSession: *s}), nil
}

// Delete removes a session and all its trainees in one transaction. The
// cascade is unconditional: trainees never block a session delete.
func (uc *SessionUseCase) Delete(ctx context.Context, actor entity.Actor, id int64) error {
	if err := authorize(actor, policy.Sessions, policy.Delete); err != nil {
		return err
	}
	row, err := uc.sessions.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if row == nil {
		return domain.ErrNotFound
	}
	if err := uc.checkDistrictWrite(ctx, actor, row.DistrictID); err != nil {
		return err
	}
	return uc.tx.RunSession(ctx, func(
		sessions repository.TrainingSessionRepository,
		trainees repository.TraineeRepository,
	) error {
		if _, err := trainees.DeleteBySession(ctx, id); err != nil {
			return err
		}
		deleted, err := sessions.Delete(ctx, id)
		if err != nil {
			return err
		}
		if !deleted {
			return domain.ErrNotFound
		}
		return nil
	})
}

// GetByID fetches one session if its district is inside the actor's scope.
func (uc *SessionUseCase) GetByID(ctx context.Context, actor entity.Actor, id int64) (*dto.SessionResponse, error) {
	if err := authorize(actor, policy.Sessions, policy.Read); err != nil {
		return nil, err
	}
	row, err := uc.sessions.GetByID(ctx, id)
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
		return nil, domain.ErrNotFound
	}
	return toSessionResponse(row), nil
}

// List returns the sessions inside the actor's scope.
func (uc *SessionUseCase) List(ctx context.Context, actor entity.Actor) ([]dto.SessionResponse, error) {
	if err := authorize(actor, policy.Sessions, policy.Read); err != nil {
		return nil, err
	}
	sc, err := uc.resolver.Resolve(ctx, actor)
	if err != nil {
		return nil, err
	}
	rows, err := uc.sessions.List(ctx, sc)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SessionResponse, 0, len(rows))
	for i := range rows {
		out = append(out, *toSessionResponse(&rows[i]))
	}
	return out, nil
}

// checkDistrictWrite enforces the per-role write rule for a submitted
// district id.
func (uc *SessionUseCase) checkDistrictWrite(ctx context.Context, actor entity.Actor, districtID int64) error {
	switch actor.Role {
	case entity.RoleAdmin:
		return nil
	case entity.RoleWoreda:
		own, ok := actor.District()
		if !ok || own != districtID {
			return domain.Forbiddenf("Woreda users can only manage sessions in their assigned district")
		}
		return nil
	case entity.RoleZone:
		sc, err := uc.resolver.Resolve(ctx, actor)
		if err != nil {
			return err
		}
		if !sc.Contains(districtID) {
			return domain.Forbiddenf("You can only assign sessions to districts under your zone")
		}
		return nil
	default:
		return domain.Forbiddenf("insufficient permissions")
	}
}

func sessionFromRequest(in dto.SessionRequest) (*entity.TrainingSession, error) {
	start, err := time.Parse(dto.DateLayout, in.StartDate)
	if err != nil {
		return nil, domain.Validationf("Field 'start_date' must be a date in YYYY-MM-DD format")
	}
	end, err := time.Parse(dto.DateLayout, in.EndDate)
	if err != nil {
		return nil, domain.Validationf("Field 'end_date' must be a date in YYYY-MM-DD format")
	}
	if end.Before(start) {
		return nil, domain.Validationf("End date cannot be earlier than start date.")
	}
	s := &entity.TrainingSession{
		Title:      in.Title,
		DistrictID: in.DistrictID,
		CategoryID: in.CategoryID,
		StartDate:  start,
		EndDate:    end,
	}
	if in.Budget != "" {
		b, err := decimal.NewFromString(in.Budget)
		if err != nil {
			return nil, domain.Validationf("Field 'budget' must be a valid amount")
		}
		s.Budget = &b
	}
	return s, nil
}

func toSessionResponse(row *repository.SessionRow) *dto.SessionResponse {
	out := &dto.SessionResponse{
		ID:           row.ID,
		Title:        row.Title,
		DistrictID:   row.DistrictID,
		DistrictName: row.DistrictName,
		CategoryID:   row.CategoryID,
		CategoryName: row.CategoryName,
		StartDate:    row.StartDate.Format(dto.DateLayout),
		EndDate:      row.EndDate.Format(dto.DateLayout),
		CreatedBy:    row.CreatedBy,
		TraineeCount: row.TraineeCount,
	}
	if row.Budget != nil {
		out.Budget = row.Budget.String()
	}
	return out
}
