package postgres

import (
	scheduleDatamodel "github.com/evening-academy/academy-management/internal/core/datamodel/schedule"
	schedulepkg "github.com/evening-academy/academy-management/internal/schedule"
	"gorm.io/gorm"
)

type ScheduleRepository struct {
	db *gorm.DB
}

func NewScheduleRepository(db *gorm.DB) schedulepkg.RepositoryAPI {
	return &ScheduleRepository{db: db}
}

func (r *ScheduleRepository) Create(e *scheduleDatamodel.Entry) error {
	return r.db.Create(e).Error
}

func (r *ScheduleRepository) GetByID(id string) (*scheduleDatamodel.Entry, error) {
	var e scheduleDatamodel.Entry
	if err := r.db.Where("id = ?", id).First(&e).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *ScheduleRepository) Update(e *scheduleDatamodel.Entry) error {
	return r.db.Save(e).Error
}

func (r *ScheduleRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&scheduleDatamodel.Entry{}).Error
}

func (r *ScheduleRepository) ListByCourse(courseID string) ([]*scheduleDatamodel.Entry, error) {
	var entries []*scheduleDatamodel.Entry
	err := r.db.Where("course_id = ?", courseID).Order("day_of_week ASC, start_time ASC").Find(&entries).Error
	return entries, err
}

func (r *ScheduleRepository) ListByDay(dayOfWeek string) ([]*scheduleDatamodel.Entry, error) {
	var entries []*scheduleDatamodel.Entry
	err := r.db.Where("day_of_week = ?", dayOfWeek).Order("start_time ASC").Find(&entries).Error
	return entries, err
}
