package repository

import (
	"context"

	"github.com/bereketw/itadmin-api/internal/application/scope"
	"github.com/bereketw/itadmin-api/internal/domain/entity"
)

// TrainingCategoryRepository is the persistence port for session categories.
type TrainingCategoryRepository interface {
	Create(ctx context.Context, c *entity.TrainingCategory) (int64, error)
	GetByID(ctx context.Context, id int64) (*entity.TrainingCategory, error)
	Update(ctx context.Context, c *entity.TrainingCategory) error
	Delete(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context) ([]*entity.TrainingCategory, error)
}

// SessionRow is a session joined with district and category names for
// listings and reports.
type SessionRow struct {
	entity.TrainingSession
	DistrictName string
	CategoryName string
	TraineeCount int64
}

// TrainingSessionRepository is the persistence port for training sessions.
type TrainingSessionRepository interface {
	Create(ctx context.Context, s *entity.TrainingSession) (int64, error)
	GetByID(ctx context.Context, id int64) (*SessionRow, error)
	Update(ctx context.Context, s *entity.TrainingSession) error
	Delete(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context, sc scope.Scope) ([]SessionRow, error)
	// CountByDistricts counts sessions held in any of the given districts.
	// Used by the referential guard before a district delete.
	CountByDistricts(ctx context.Context, districtIDs []int64) (int64, error)
}

// TraineeRow is a trainee joined with its session title and district.
type TraineeRow struct {
	entity.Trainee
	SessionTitle string
	DistrictID   int64
	DistrictName string
}

// TraineeRepository is the persistence port for trainees.
type TraineeRepository interface {
	Create(ctx context.Context, t *entity.Trainee) (int64, error)
	GetByID(ctx context.Context, id int64) (*TraineeRow, error)
	Update(ctx context.Context, t *entity.Trainee) error
	Delete(ctx context.Context, id int64) (bool, error)
	// List filters through the trainee's session district.
	List(ctx context.Context, sc scope.Scope) ([]TraineeRow, error)
	ListBySession(ctx context.Context, sessionID int64) ([]*entity.Trainee, error)
	// DeleteBySession removes all trainees of a session (cascade step) and
	// returns the number of rows deleted.
	DeleteBySession(ctx context.Context, sessionID int64) (int64, error)
}
