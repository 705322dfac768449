package entity

// Actor is the immutable per-request identity extracted from the JWT by the
// auth middleware. It is passed explicitly into every use case and is never
// read from ambient state.
type Actor struct {
	UserID     int64
	Role       Role
	DistrictID *int64 // nil when the token carries no district claim
}

// District returns the assigned district id and whether one is set.
func (a Actor) District() (int64, bool) {
	if a.DistrictID == nil {
		return 0, false
	}
	return *a.DistrictID, true
}
