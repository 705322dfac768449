package dto

// CreateUserRequest creates a directory account. Admin only.
type CreateUserRequest struct {
	FirstName  string `json:"firstname" form:"firstname" validate:"required"`
	LastName   string `json:"lastname" form:"lastname" validate:"required"`
	Email      string `json:"email" form:"email" validate:"required,email"`
	Password   string `json:"password" form:"password" validate:"required,min=6"`
	Role       string `json:"role" form:"role" validate:"required,oneof=Admin Zone Woreda"`
	Sex        string `json:"sex" form:"sex" validate:"required"`
	DistrictID int64  `json:"district_id" form:"district_id" validate:"required"`
	Phone      string `json:"phone" form:"phone"`
	Position   string `json:"position" form:"position"`
}

// UpdateUserRequest replaces a user's mutable fields. Password is optional:
// when empty the stored hash is kept.
type UpdateUserRequest struct {
	FirstName  string `json:"firstname" form:"firstname" validate:"required"`
	LastName   string `json:"lastname" form:"lastname" validate:"required"`
	Email      string `json:"email" form:"email" validate:"required,email"`
	Password   string `json:"password" form:"password" validate:"omitempty,min=6"`
	Role       string `json:"role" form:"role" validate:"required,oneof=Admin Zone Woreda"`
	Sex        string `json:"sex" form:"sex" validate:"required"`
	DistrictID int64  `json:"district_id" form:"district_id" validate:"required"`
	Phone      string `json:"phone" form:"phone"`
	Position   string `json:"position" form:"position"`
}

// UserResponse is a user row. The password hash never leaves the service.
type UserResponse struct {
	ID           int64  `json:"id"`
	FirstName    string `json:"firstname"`
	LastName     string `json:"lastname"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	Sex          string `json:"sex"`
	DistrictID   int64  `json:"district_id"`
	DistrictName string `json:"district_name,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Position     string `json:"position,omitempty"`
}
