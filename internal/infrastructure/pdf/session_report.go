// Package pdf renders the printable training session report.
//
// A4 page layout:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Report title  │  Session id + generation date      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SESSION: Title / District / Category / Dates / Budget       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLE: # | Full Name | Gender | Phone | Organization        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: trainee total                                       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/bereketw/itadmin-api/internal/domain/entity"
	"github.com/bereketw/itadmin-api/internal/domain/repository"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoReportGenerator implements report.SessionPDFGenerator using Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator builds the generator.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateSessionPDF renders the session report and returns its bytes.
func (g *MarotoReportGenerator) GenerateSessionPDF(
	_ context.Context,
	session *repository.SessionRow,
	trainees []*entity.Trainee,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Training Session Report", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(session))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(sessionDetailRows(session)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range traineeRows(trainees) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(len(trainees)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: report title on the left, session id and dates on the right.
func headerRow(session *repository.SessionRow) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New("TRAINING SESSION REPORT", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(session.Title, props.Text{
				Size: 10, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(fmt.Sprintf("Session #%d", session.ID), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 3,
			}),
			text.New(
				session.StartDate.Format("2006-01-02")+" - "+session.EndDate.Format("2006-01-02"),
				props.Text{Size: 8, Align: align.Right, Top: 11, Color: colorGray},
			),
		),
	)
}

// sessionDetailRows: district, category and budget lines.
func sessionDetailRows(session *repository.SessionRow) []core.Row {
	detail := func(label, value string) core.Row {
		return row.New(7).Add(
			col.New(3).Add(text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			})),
			col.New(9).Add(text.New(value, props.Text{Size: 9, Top: 1})),
		)
	}
	budget := "—"
	if session.Budget != nil {
		budget = session.Budget.StringFixed(2) + " ETB"
	}
	return []core.Row{
		detail("District", session.DistrictName),
		detail("Category", session.CategoryName),
		detail("Budget", budget),
	}
}

// tableHeaderRow: trainee table header.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("#", 1, align.Center),
		h("Full Name", 4, align.Left),
		h("Gender", 2, align.Center),
		h("Phone", 2, align.Left),
		h("Organization", 3, align.Left),
	)
}

// traineeRows: one row per registered trainee.
func traineeRows(trainees []*entity.Trainee) []core.Row {
	result := make([]core.Row, 0, len(trainees))
	for i, t := range trainees {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", i+1),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(4).Add(text.New(
				t.FullName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				t.Gender,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				t.Phone,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				t.Organization,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
		))
	}
	return result
}

// footerRow: trainee total, right aligned.
func footerRow(total int) core.Row {
	return row.New(8).Add(
		col.New(12).Add(text.New(
			fmt.Sprintf("Registered trainees: %d", total),
			props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2},
		)),
	)
}
