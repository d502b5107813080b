package course

import (
	"time"

	"gorm.io/datatypes"
)

type Course struct {
	ID          string         `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"column:name;not null" json:"name"`
	Code        string         `gorm:"column:code;uniqueIndex;not null" json:"code"`
	Description string         `gorm:"column:description" json:"description"`
	TeacherID   string         `gorm:"column:teacher_id;index" json:"teacher_id"`
	Room        string         `gorm:"column:room" json:"room"`
	Materials   datatypes.JSON `gorm:"column:materials" json:"materials,omitempty"`
	CreatedAt   time.Time      `gorm:"column:created_at;default:now()" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"column:updated_at;default:now()" json:"updated_at"`
}

func (Course) TableName() string {
	return "courses"
}

// Material entries are stored as a JSON list on the course row; files live in
// external storage and only their URLs are kept here.
type Material struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Type string `json:"type"`
}
