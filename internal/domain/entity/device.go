package entity

import "time"

// Device is a tracked IT asset assigned to a district.
type Device struct {
	ID           int64
	DeviceCode   string // unique inventory code
	Name         string
	Brand        string
	Model        string
	SerialNumber string
	DeviceType   string
	Description  string
	DistrictID   int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Maintenance statuses. Transitions are deliberately unconstrained: any
// authorized editor may set any status.
const (
	StatusPending    = "Pending"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
	StatusNotFixable = "Not Fixable"
)

// ValidMaintenanceStatus reports whether s is a known status.
func ValidMaintenanceStatus(s string) bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusNotFixable:
		return true
	}
	return false
}

// MaintenanceRecord documents a repair or inspection performed on a device.
type MaintenanceRecord struct {
	ID               int64
	DeviceID         int64
	UserID           int64 // technician who logged the record
	IssueDescription string
	ActionTaken      string
	Status           string
	MaintenanceDate  time.Time
	Remarks          string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
