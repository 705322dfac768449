package dto

// CreateDistrictRequest creates a Zone or Woreda. ParentID is required for
// Woredas and ignored (normalized to null) for Zones.
type CreateDistrictRequest struct {
	Name     string `json:"name" form:"name" validate:"required"`
	Type     string `json:"type" form:"type" validate:"required,oneof=Zone Woreda"`
	ParentID *int64 `json:"parent_id" form:"parent_id"`
}

// UpdateDistrictRequest replaces the mutable fields of a district.
type UpdateDistrictRequest struct {
	Name     string `json:"name" form:"name" validate:"required"`
	Type     string `json:"type" form:"type" validate:"required,oneof=Zone Woreda"`
	ParentID *int64 `json:"parent_id" form:"parent_id"`
}

// DistrictResponse is a district row for listings and gets.
type DistrictResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Type       string `json:"type"`
	ParentID   *int64 `json:"parent_id,omitempty"`
	ParentName string `json:"parent_name,omitempty"`
}
