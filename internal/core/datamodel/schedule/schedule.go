package schedule

type Entry struct {
	ID        string `gorm:"primaryKey" json:"id"`
	CourseID  string `gorm:"column:course_id;index;not null" json:"course_id"`
	DayOfWeek string `gorm:"column:day_of_week;not null" json:"day_of_week"`
	StartTime string `gorm:"column:start_time;not null" json:"start_time"`
	EndTime   string `gorm:"column:end_time;not null" json:"end_time"`
	Activity  string `gorm:"column:activity" json:"activity"`
}

func (Entry) TableName() string {
	return "schedule"
}
