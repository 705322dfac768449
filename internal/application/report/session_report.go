// Package report builds downloadable training-session reports.
package report

import (
	"context"

	"github.com/bereketw/itadmin-api/internal/application/policy"
	"github.com/bereketw/itadmin-api/internal/application/scope"
	"github.com/bereketw/itadmin-api/internal/domain"
	"github.com/bereketw/itadmin-api/internal/domain/entity"
	"github.com/bereketw/itadmin-api/internal/domain/repository"
)

// SessionPDFGenerator renders a session plus its trainee roster as a PDF.
// Implemented by the Maroto adapter in infrastructure/pdf.
type SessionPDFGenerator interface {
	GenerateSessionPDF(ctx context.Context, session *repository.SessionRow, trainees []*entity.Trainee) ([]byte, error)
}

// SessionReportUseCase produces the PDF export for one in-scope session.
type SessionReportUseCase struct {
	sessions  repository.TrainingSessionRepository
	trainees  repository.TraineeRepository
	resolver  *scope.Resolver
	generator SessionPDFGenerator
}

// NewSessionReportUseCase constructs the use case.
func NewSessionReportUseCase(
	sessions repository.TrainingSessionRepository,
	trainees repository.TraineeRepository,
	resolver *scope.Resolver,
	generator SessionPDFGenerator,
) *SessionReportUseCase {
	return &SessionReportUseCase{
		sessions:  sessions,
		trainees:  trainees,
		resolver:  resolver,
		generator: generator,
	}
}

// Generate renders the report. Scope is checked exactly like a session read.
func (uc *SessionReportUseCase) Generate(ctx context.Context, actor entity.Actor, sessionID int64) ([]byte, error) {
	if !policy.Allows(policy.Reports, policy.Read, actor.Role) {
		return nil, domain.Forbiddenf("insufficient permissions")
	}
	row, err := uc.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, domain.ErrNotFound
	}
	sc, err := uc.resolver.Resolve(ctx, actor)
	if err != nil {
		return nil, err
	}
	if !sc.Contains(row.DistrictID) {
		return nil, domain.ErrNotFound
	}
	list, err := uc.trainees.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateSessionPDF(ctx, row, list)
}
