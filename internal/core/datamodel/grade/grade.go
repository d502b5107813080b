package grade

import "time"

type Grade struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	StudentID    string    `gorm:"column:student_id;index;not null" json:"student_id"`
	AssignmentID string    `gorm:"column:assignment_id;index;not null" json:"assignment_id"`
	Score        float64   `gorm:"column:score;not null" json:"score"`
	MaxScore     float64   `gorm:"column:max_score;not null" json:"max_score"`
	CreatedAt    time.Time `gorm:"column:created_at;default:now()" json:"created_at"`
}

func (Grade) TableName() string {
	return "grades"
}
