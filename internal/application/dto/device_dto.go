package dto

// DeviceRequest creates or replaces a device.
type DeviceRequest struct {
	DeviceCode   string `json:"device_code" form:"device_code" validate:"required"`
	Name         string `json:"name" form:"name" validate:"required"`
	Brand        string `json:"brand" form:"brand" validate:"required"`
	Model        string `json:"model" form:"model" validate:"required"`
	SerialNumber string `json:"serial_number" form:"serial_number"`
	DeviceType   string `json:"device_type" form:"device_type" validate:"required"`
	Description  string `json:"description" form:"description"`
	DistrictID   int64  `json:"district_id" form:"district_id" validate:"required"`
}

// DeviceResponse is a device row joined with its district name.
type DeviceResponse struct {
	ID           int64  `json:"id"`
	DeviceCode   string `json:"device_code"`
	Name         string `json:"name"`
	Brand        string `json:"brand"`
	Model        string `json:"model"`
	SerialNumber string `json:"serial_number,omitempty"`
	DeviceType   string `json:"device_type"`
	Description  string `json:"description,omitempty"`
	DistrictID   int64  `json:"district_id"`
	DistrictName string `json:"district_name,omitempty"`
}

// MaintenanceRequest creates or replaces a maintenance record. The technician
// is always the acting user; the client never supplies it.
type MaintenanceRequest struct {
	DeviceID         int64  `json:"device_id" form:"device_id" validate:"required"`
	IssueDescription string `json:"issue_description" form:"issue_description" validate:"required"`
	ActionTaken      string `json:"action_taken" form:"action_taken"`
	Status           string `json:"status" form:"status" validate:"required"`
	MaintenanceDate  string `json:"maintenance_date" form:"maintenance_date" validate:"required,datetime=2006-01-02"`
	Remarks          string `json:"remarks" form:"remarks"`
}

// MaintenanceResponse is a maintenance row joined with device and district
// context.
type MaintenanceResponse struct {
	ID               int64  `json:"id"`
	DeviceID         int64  `json:"device_id"`
	DeviceCode       string `json:"device_code,omitempty"`
	DeviceName       string `json:"device_name,omitempty"`
	IssueDescription string `json:"issue_description"`
	ActionTaken      string `json:"action_taken,omitempty"`
	Status           string `json:"status"`
	MaintenanceDate  string `json:"maintenance_date"`
	Remarks          string `json:"remarks,omitempty"`
	DistrictName     string `json:"district_name,omitempty"`
	TechnicianName   string `json:"technician_name,omitempty"`
}
