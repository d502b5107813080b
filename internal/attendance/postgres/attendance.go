package postgres

import (
	attendancepkg "github.com/evening-academy/academy-management/internal/attendance"
	attendanceDatamodel "github.com/evening-academy/academy-management/internal/core/datamodel/attendance"
	"gorm.io/gorm"
)

type AttendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) attendancepkg.RepositoryAPI {
	return &AttendanceRepository{db: db}
}

func (r *AttendanceRepository) Create(rec *attendanceDatamodel.Record) error {
	return r.db.Create(rec).Error
}

func (r *AttendanceRepository) GetByID(id string) (*attendanceDatamodel.Record, error) {
	var rec attendanceDatamodel.Record
	if err := r.db.Where("id = ?", id).First(&rec).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *AttendanceRepository) ListByCourse(courseID string) ([]*attendanceDatamodel.Record, error) {
	var records []*attendanceDatamodel.Record
	err := r.db.Where("course_id = ?", courseID).Order("date ASC").Find(&records).Error
	return records, err
}

// ListByStudent relies on a JSON containment scan; attendance volumes are
// small enough that the sequential scan is acceptable.
func (r *AttendanceRepository) ListByStudent(studentID string) ([]*attendanceDatamodel.Record, error) {
	var records []*attendanceDatamodel.Record
	err := r.db.
		Where("present_student_ids LIKE ? OR absent_student_ids LIKE ?", "%"+studentID+"%", "%"+studentID+"%").
		Order("date ASC").
		Find(&records).Error
	return records, err
}
