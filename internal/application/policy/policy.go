// Package policy holds the per-resource role table. Every use case consults
// the gate once, before any other logic runs, instead of repeating ad hoc
// role checks per endpoint.
package policy

import "github.com/bereketw/itadmin-api/internal/domain/entity"

// Resource names the guarded resource kinds.
type Resource string

// Action names the guarded operations. Read covers list and get; Create,
// Update and Delete are the write operations.
type Action string

// Resources.
const (
	Districts   Resource = "districts"
	Users       Resource = "users"
	Categories  Resource = "categories"
	Sessions    Resource = "sessions"
	Trainees    Resource = "trainees"
	Devices     Resource = "devices"
	Maintenance Resource = "maintenance"
	Dashboard   Resource = "dashboard"
	Reports     Resource = "reports"
)

// Actions.
const (
	Create Action = "create"
	Read   Action = "read"
	Update Action = "update"
	Delete Action = "delete"
)

type roleSet map[entity.Role]struct{}

func roles(rs ...entity.Role) roleSet {
	set := make(roleSet, len(rs))
	for _, r := range rs {
		set[r] = struct{}{}
	}
	return set
}

var (
	everyone  = roles(entity.RoleAdmin, entity.RoleZone, entity.RoleWoreda)
	adminOnly = roles(entity.RoleAdmin)
	zoneOnly  = roles(entity.RoleZone)
	training  = roles(entity.RoleZone, entity.RoleWoreda)
	// Zone is read-only on assets: it views child-Woreda devices and
	// maintenance but never mutates them.
	assetWriters = roles(entity.RoleAdmin, entity.RoleWoreda)
)

// table is the single source of truth for who may do what. Read defaults are
// explicit so a missing entry denies.
var table = map[Resource]map[Action]roleSet{
	Districts: {
		Create: zoneOnly, Update: zoneOnly, Delete: zoneOnly,
		Read: everyone,
	},
	Users: {
		Create: adminOnly, Update: adminOnly, Delete: adminOnly,
		Read: adminOnly,
	},
	Categories: {
		Create: training, Update: training, Delete: training,
		Read: everyone,
	},
	Sessions: {
		Create: everyone, Update: everyone, Delete: everyone,
		Read: everyone,
	},
	Trainees: {
		Create: training, Update: training, Delete: training,
		Read: training,
	},
	Devices: {
		Create: assetWriters, Update: assetWriters, Delete: assetWriters,
		Read: everyone,
	},
	Maintenance: {
		Create: assetWriters, Update: assetWriters, Delete: assetWriters,
		Read: everyone,
	},
	Dashboard: {Read: everyone},
	Reports:   {Read: everyone},
}

// Allows reports whether role may perform action on resource. Unknown
// resources, actions and roles all deny.
func Allows(resource Resource, action Action, role entity.Role) bool {
	actions, ok := table[resource]
	if !ok {
		return false
	}
	set, ok := actions[action]
	if !ok {
		return false
	}
	_, ok = set[role]
	return ok
}
