package dto

// LabelCount is a (label, count) chart slice.
type LabelCount struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}

// RecentSessionItem is a row in the dashboard's latest-sessions table.
type RecentSessionItem struct {
	Title        string `json:"title"`
	DistrictName string `json:"district_name"`
	CategoryName string `json:"category_name"`
	StartDate    string `json:"start_date"`
}

// RecentMaintenanceItem is a row in the dashboard's latest-maintenance table.
type RecentMaintenanceItem struct {
	ID              int64  `json:"id"`
	DeviceName      string `json:"device_name"`
	DeviceCode      string `json:"device_code"`
	Status          string `json:"status"`
	MaintenanceDate string `json:"maintenance_date"`
	DistrictName    string `json:"district_name"`
}

// DashboardResponse aggregates the scope-filtered counts and breakdowns for
// the landing dashboard.
type DashboardResponse struct {
	TotalSessions       int64                   `json:"total_sessions"`
	TotalTrainees       int64                   `json:"total_trainees"`
	CategoriesInUse     int64                   `json:"categories_in_use"`
	ActiveDistricts     int64                   `json:"active_districts"`
	TotalDevices        int64                   `json:"total_devices"`
	TotalMaintenances   int64                   `json:"total_maintenances"`
	MaintenanceByStatus []LabelCount            `json:"maintenance_by_status"`
	DevicesByType       []LabelCount            `json:"devices_by_type"`
	SessionsByCategory  []LabelCount            `json:"sessions_by_category"`
	TraineesByGender    []LabelCount            `json:"trainees_by_gender"`
	RecentSessions      []RecentSessionItem     `json:"recent_sessions"`
	RecentMaintenances  []RecentMaintenanceItem `json:"recent_maintenances"`
}
