package attendance

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ExportCourseSheet renders a course's attendance log as an xlsx workbook,
// one row per session.
func (s *Service) ExportCourseSheet(courseID string) (*excelize.File, error) {
	records, err := s.repo.ListByCourse(courseID)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheet := "Attendance"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"Date", "Present", "Absent", "Rate"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, rec := range records {
		present := len(rec.PresentStudentIDs)
		absent := len(rec.AbsentStudentIDs)
		rate := 0.0
		if present+absent > 0 {
			rate = float64(present) / float64(present+absent)
		}

		values := []interface{}{rec.Date.Format("2006-01-02"), present, absent, rate}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	return f, nil
}
