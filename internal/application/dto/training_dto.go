package dto

// CategoryRequest creates or renames a training category.
type CategoryRequest struct {
	Name string `json:"name" form:"name" validate:"required"`
}

// CategoryResponse is a category row.
type CategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// SessionRequest creates or replaces a training session. Dates use the
// YYYY-MM-DD layout; Budget is optional decimal text.
type SessionRequest struct {
	Title      string `json:"title" form:"title" validate:"required"`
	DistrictID int64  `json:"district_id" form:"district_id" validate:"required"`
	CategoryID int64  `json:"category_id" form:"category_id" validate:"required"`
	StartDate  string `json:"start_date" form:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate    string `json:"end_date" form:"end_date" validate:"required,datetime=2006-01-02"`
	Budget     string `json:"budget" form:"budget"`
}

// SessionResponse is a session row joined with district and category names.
type SessionResponse struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	DistrictID   int64  `json:"district_id"`
	DistrictName string `json:"district_name,omitempty"`
	CategoryID   int64  `json:"category_id"`
	CategoryName string `json:"category_name,omitempty"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	Budget       string `json:"budget,omitempty"`
	CreatedBy    int64  `json:"created_by"`
	TraineeCount int64  `json:"trainee_count"`
}

// TraineeRequest creates or replaces a trainee within a session.
type TraineeRequest struct {
	FullName     string `json:"fullname" form:"fullname" validate:"required"`
	Gender       string `json:"gender" form:"gender" validate:"required"`
	Phone        string `json:"phone" form:"phone"`
	Organization string `json:"organization" form:"organization"`
	SessionID    int64  `json:"session_id" form:"session_id" validate:"required"`
}

// TraineeResponse is a trainee row joined with its session context.
type TraineeResponse struct {
	ID           int64  `json:"id"`
	FullName     string `json:"fullname"`
	Gender       string `json:"gender"`
	Phone        string `json:"phone,omitempty"`
	Organization string `json:"organization,omitempty"`
	SessionID    int64  `json:"session_id"`
	SessionTitle string `json:"session_title,omitempty"`
	DistrictName string `json:"district_name,omitempty"`
}
