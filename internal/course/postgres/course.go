package postgres

import (
	coursepkg "github.com/evening-academy/academy-management/internal/course"
	courseDatamodel "github.com/evening-academy/academy-management/internal/core/datamodel/course"
	"gorm.io/gorm"
)

type CourseRepository struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) coursepkg.RepositoryAPI {
	return &CourseRepository{db: db}
}

func (r *CourseRepository) Create(c *courseDatamodel.Course) error {
	return r.db.Create(c).Error
}

func (r *CourseRepository) GetByID(id string) (*courseDatamodel.Course, error) {
	var c courseDatamodel.Course
	if err := r.db.Where("id = ?", id).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CourseRepository) GetByCode(code string) (*courseDatamodel.Course, error) {
	var c courseDatamodel.Course
	if err := r.db.Where("code = ?", code).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CourseRepository) Update(c *courseDatamodel.Course) error {
	return r.db.Save(c).Error
}

func (r *CourseRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&courseDatamodel.Course{}).Error
}

func (r *CourseRepository) List() ([]*courseDatamodel.Course, error) {
	var courses []*courseDatamodel.Course
	err := r.db.Order("name ASC").Find(&courses).Error
	return courses, err
}

func (r *CourseRepository) ListByTeacher(teacherID string) ([]*courseDatamodel.Course, error) {
	var courses []*courseDatamodel.Course
	err := r.db.Where("teacher_id = ?", teacherID).Order("name ASC").Find(&courses).Error
	return courses, err
}
