package scope

import (
	"context"

	"github.com/bereketw/itadmin-api/internal/domain/entity"
)

// DistrictSource is the minimal lookup the resolver needs. It is implemented
// by the district repository; the narrow interface avoids an import cycle and
// keeps the resolver trivially fakeable in tests.
type DistrictSource interface {
	ChildIDs(ctx context.Context, parentID int64) ([]int64, error)
}

// Resolver maps (role, assigned district) to a Scope.
//
// Admin  -> everything.
// Zone   -> the Woredas whose parent is the actor's district. The Zone's own
//           row is not in downstream resource scope: Zone users work with
//           child-Woreda resources, not their own Zone as a resource owner.
// Woreda -> exactly the actor's district.
//
// An actor with no assigned district (outside Admin) resolves to the empty
// scope: deny-by-default, not an error.
type Resolver struct {
	districts DistrictSource
}

// NewResolver constructs the resolver over a district source.
func NewResolver(districts DistrictSource) *Resolver {
	return &Resolver{districts: districts}
}

// Resolve computes the actor's scope. Pure with respect to the actor; the only
// I/O is the child lookup for Zone actors.
func (r *Resolver) Resolve(ctx context.Context, actor entity.Actor) (Scope, error) {
	switch actor.Role {
	case entity.RoleAdmin:
		return All(), nil
	case entity.RoleZone:
		zoneID, ok := actor.District()
		if !ok {
			return None(), nil
		}
		ids, err := r.districts.ChildIDs(ctx, zoneID)
		if err != nil {
			return None(), err
		}
		return Of(ids...), nil
	case entity.RoleWoreda:
		id, ok := actor.District()
		if !ok {
			return None(), nil
		}
		return Of(id), nil
	default:
		return None(), nil
	}
}
