package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/bereketw/itadmin-api/internal/application/dto"
	"github.com/bereketw/itadmin-api/internal/application/policy"
	"github.com/bereketw/itadmin-api/internal/domain"
	"github.com/bereketw/itadmin-api/internal/domain/entity"
	"github.com/bereketw/itadmin-api/internal/domain/repository"
)

// DistrictUseCase manages the Zone/Woreda hierarchy. Only Zone-role actors
// mutate it; listings are reference data for every role.
type DistrictUseCase struct {
	repo repository.DistrictRepository
	tx   DistrictTxRunner
}

// NewDistrictUseCase constructs the use case.
func NewDistrictUseCase(repo repository.DistrictRepository, tx DistrictTxRunner) *DistrictUseCase {
	return &DistrictUseCase{repo: repo, tx: tx}
}

// Create adds a Zone or Woreda. A Woreda needs an existing parent of type
// Zone; any parent submitted for a Zone is normalized to null.
func (uc *DistrictUseCase) Create(ctx context.Context, actor entity.Actor, in dto.CreateDistrictRequest) (*dto.DistrictResponse, error) {
	if err := authorize(actor, policy.Districts, policy.Create); err != nil {
		return nil, err
	}
	in.Name = strings.TrimSpace(in.Name)
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	parentID, err := uc.resolveParent(ctx, in.Type, in.ParentID)
	if err != nil {
		return nil, err
	}
	if existing, err := uc.repo.FindByName(ctx, in.Name, 0); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.Conflictf("District name '%s' already exists.", existing.Name)
	}
	d := &entity.District{Name: in.Name, Type: in.Type, ParentID: parentID}
	id, err := uc.repo.Create(ctx, d)
	if err != nil {
		return nil, err
	}
	d.ID = id
	return toDistrictResponse(d, ""), nil
}

// Update replaces a district's mutable fields with the same validation as
// Create, excluding the district itself from the name-uniqueness check.
func (uc *DistrictUseCase) Update(ctx context.Context, actor entity.Actor, id int64, in dto.UpdateDistrictRequest) (*dto.DistrictResponse, error) {
	if err := authorize(actor, policy.Districts, policy.Update); err != nil {
		return nil, err
	}
	in.Name = strings.TrimSpace(in.Name)
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	parentID, err := uc.resolveParent(ctx, in.Type, in.ParentID)
	if err != nil {
		return nil, err
	}
	if dup, err := uc.repo.FindByName(ctx, in.Name, id); err != nil {
		return nil, err
	} else if dup != nil {
		return nil, domain.Conflictf("District name '%s' already exists.", dup.Name)
	}
	existing.Name = in.Name
	existing.Type = in.Type
	existing.ParentID = parentID
	if err := uc.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return toDistrictResponse(existing, ""), nil
}

// Delete removes a district after the referential guard passes. All guard
// checks and the delete itself run in one transaction: a district with child
// districts, assigned users or training sessions (directly, or for a Zone via
// its child Woredas) stays untouched and the reason names the dependents.
func (uc *DistrictUseCase) Delete(ctx context.Context, actor entity.Actor, id int64) error {
	if err := authorize(actor, policy.Districts, policy.Delete); err != nil {
		return err
	}
	return uc.tx.RunDistrict(ctx, func(
		districts repository.DistrictRepository,
		users repository.UserRepository,
		sessions repository.TrainingSessionRepository,
	) error {
		d, err := districts.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if d == nil {
			return domain.ErrNotFound
		}

		children, err := districts.ListChildren(ctx, id)
		if err != nil {
			return err
		}
		if len(children) > 0 {
			return domain.Conflictf("Cannot delete %s '%s'. It is a parent to %s. Please reassign or delete the child districts first.",
				d.Type, d.Name, describeChildren(children))
		}

		// A Zone owns no resources directly; its dependents live in the
		// child Woredas. A Woreda is checked on its own id.
		dependentIDs := []int64{id}
		suffix := "to it"
		if d.IsZone() {
			ids, err := districts.ChildIDs(ctx, id)
			if err != nil {
				return err
			}
			dependentIDs = ids
			suffix = "to its Woredas"
		}
		if len(dependentIDs) > 0 {
			userCount, err := users.CountByDistricts(ctx, dependentIDs)
			if err != nil {
				return err
			}
			if userCount > 0 {
				return domain.Conflictf("Cannot delete %s '%s'. It has %d user(s) assigned %s. Please reassign the users first.",
					d.Type, d.Name, userCount, suffix)
			}
			sessionCount, err := sessions.CountByDistricts(ctx, dependentIDs)
			if err != nil {
				return err
			}
			if sessionCount > 0 {
				return domain.Conflictf("Cannot delete %s '%s'. It has %d training session(s) assigned %s. Please reassign the training sessions first.",
					d.Type, d.Name, sessionCount, suffix)
			}
		}

		deleted, err := districts.Delete(ctx, id)
		if err != nil {
			return err
		}
		if !deleted {
			return domain.ErrNotFound
		}
		return nil
	})
}

// GetByID fetches one district.
func (uc *DistrictUseCase) GetByID(ctx context.Context, actor entity.Actor, id int64) (*dto.DistrictResponse, error) {
	if err := authorize(actor, policy.Districts, policy.Read); err != nil {
		return nil, err
	}
	d, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrNotFound
	}
	return toDistrictResponse(d, ""), nil
}

// List returns the whole hierarchy with parent names. Districts are reference
// data (dropdowns, labels) and are visible to every role.
func (uc *DistrictUseCase) List(ctx context.Context, actor entity.Actor) ([]dto.DistrictResponse, error) {
	if err := authorize(actor, policy.Districts, policy.Read); err != nil {
		return nil, err
	}
	rows, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DistrictResponse, 0, len(rows))
	for i := range rows {
		out = append(out, *toDistrictResponse(&rows[i].District, rows[i].ParentName))
	}
	return out, nil
}

// ListZones returns only the Zone rows, for parent dropdowns.
func (uc *DistrictUseCase) ListZones(ctx context.Context, actor entity.Actor) ([]dto.DistrictResponse, error) {
	if err := authorize(actor, policy.Districts, policy.Read); err != nil {
		return nil, err
	}
	zones, err := uc.repo.ListZones(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DistrictResponse, 0, len(zones))
	for _, z := range zones {
		out = append(out, *toDistrictResponse(z, ""))
	}
	return out, nil
}

// resolveParent applies the hierarchy invariant: Woredas need an existing
// parent of type Zone, Zones never carry a parent.
func (uc *DistrictUseCase) resolveParent(ctx context.Context, districtType string, parentID *int64) (*int64, error) {
	if districtType == entity.DistrictZone {
		return nil, nil
	}
	if parentID == nil || *parentID == 0 {
		return nil, domain.Validationf("Woredas must be assigned to a Parent Zone.")
	}
	parent, err := uc.repo.GetByID(ctx, *parentID)
	if err != nil {
		return nil, err
	}
	if parent == nil || !parent.IsZone() {
		return nil, domain.Validationf("Selected parent zone does not exist or is not a valid Zone.")
	}
	return parentID, nil
}

// describeChildren renders "1 Zone(s) and 2 Woreda(s)" style summaries for
// blocked-delete messages.
func describeChildren(children []*entity.District) string {
	var zones, woredas int
	for _, c := range children {
		if c.IsZone() {
			zones++
		} else {
			woredas++
		}
	}
	var parts []string
	if zones > 0 {
		parts = append(parts, fmt.Sprintf("%d Zone(s)", zones))
	}
	if woredas > 0 {
		parts = append(parts, fmt.Sprintf("%d Woreda(s)", woredas))
	}
	return strings.Join(parts, " and ")
}

func toDistrictResponse(d *entity.District, parentName string) *dto.DistrictResponse {
	return &dto.DistrictResponse{
		ID:         d.ID,
		Name:       d.Name,
		Type:       d.Type,
		ParentID:   d.ParentID,
		ParentName: parentName,
	}
}
