package schedule

import (
	errors "github.com/evening-academy/academy-management/internal"
	"github.com/evening-academy/academy-management/internal/core/common/validation"
)

var daysOfWeek = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

type CreateEntryDTO struct {
	CourseID  string `json:"course_id"`
	DayOfWeek string `json:"day_of_week"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Activity  string `json:"activity"`
}

func (d *CreateEntryDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("course_id", d.CourseID).Required()
	v.Field("day_of_week", d.DayOfWeek).Required().OneOf(daysOfWeek...)
	v.Field("start_time", d.StartTime).Required()
	v.Field("end_time", d.EndTime).Required()

	if err := v.Validate(); err != nil {
		return err
	}

	// Times are HH:MM strings, so lexical order is chronological order.
	if d.EndTime <= d.StartTime {
		return errors.NewValidationFieldError("end_time", "end_time must be after start_time", errors.ErrCodeValidationFailed)
	}
	return nil
}

type UpdateEntryDTO struct {
	DayOfWeek *string `json:"day_of_week,omitempty"`
	StartTime *string `json:"start_time,omitempty"`
	EndTime   *string `json:"end_time,omitempty"`
	Activity  *string `json:"activity,omitempty"`
}

func (d *UpdateEntryDTO) Validate() error {
	v := validation.NewValidator()
	if d.DayOfWeek != nil {
		v.Field("day_of_week", *d.DayOfWeek).Required().OneOf(daysOfWeek...)
	}
	if d.StartTime != nil {
		v.Field("start_time", *d.StartTime).Required()
	}
	if d.EndTime != nil {
		v.Field("end_time", *d.EndTime).Required()
	}
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}
