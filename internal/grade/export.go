package grade

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ExportAssignmentSheet renders one assignment's grades as an xlsx workbook,
// one row per student, for teachers who keep offline gradebooks.
func (s *Service) ExportAssignmentSheet(assignmentID string, profiles ProfileStore) (*excelize.File, error) {
	grades, err := s.repo.ListByAssignment(assignmentID)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheet := "Grades"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"Student", "Email", "Score", "Max Score", "Percent", "Letter"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, g := range grades {
		name, email := g.StudentID, ""
		if p, err := profiles.GetByID(g.StudentID); err == nil {
			name, email = p.Name, p.Email
		}

		percent := 0.0
		if g.MaxScore > 0 {
			percent = g.Score / g.MaxScore * 100
		}

		values := []interface{}{name, email, g.Score, g.MaxScore, percent, Letter(percent)}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	return f, nil
}
