package course

import (
	courseDatamodel "github.com/evening-academy/academy-management/internal/core/datamodel/course"
)

type RepositoryAPI interface {
	Create(c *courseDatamodel.Course) error
	GetByID(id string) (*courseDatamodel.Course, error)
	GetByCode(code string) (*courseDatamodel.Course, error)
	Update(c *courseDatamodel.Course) error
	Delete(id string) error
	List() ([]*courseDatamodel.Course, error)
	ListByTeacher(teacherID string) ([]*courseDatamodel.Course, error)
}
