package entity

import "time"

// District types. Zones are top-level; Woredas hang under exactly one Zone.
const (
	DistrictZone   = "Zone"
	DistrictWoreda = "Woreda"
)

// ValidDistrictType reports whether t is a known district type.
func ValidDistrictType(t string) bool {
	return t == DistrictZone || t == DistrictWoreda
}

// District is a node of the two-level administrative hierarchy. ParentID is
// nil for Zones and references the parent Zone for Woredas.
type District struct {
	ID        int64
	Name      string
	Type      string
	ParentID  *int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsZone reports whether the district is a top-level Zone.
func (d *District) IsZone() bool { return d.Type == DistrictZone }
