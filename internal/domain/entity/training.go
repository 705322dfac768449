package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TrainingCategory is a flat lookup entity for classifying sessions.
type TrainingCategory struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TrainingSession is a training event held in a district. Deleting a session
// removes its trainees in the same transaction.
type TrainingSession struct {
	ID         int64
	Title      string
	DistrictID int64
	CategoryID int64
	StartDate  time.Time
	EndDate    time.Time
	Budget     *decimal.Decimal
	CreatedBy  int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Trainee exists only in the context of a session; access is gated by the
// session's district.
type Trainee struct {
	ID           int64
	FullName     string
	Gender       string
	Phone        string
	Organization string
	SessionID    int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
