package schedule

import (
	"io"
	"log/slog"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"

	apperrors "github.com/evening-academy/academy-management/internal"
	courseDatamodel "github.com/evening-academy/academy-management/internal/core/datamodel/course"
	enrollmentDatamodel "github.com/evening-academy/academy-management/internal/core/datamodel/enrollment"
	scheduleDatamodel "github.com/evening-academy/academy-management/internal/core/datamodel/schedule"
)

type stubRepo struct {
	entries map[string]*scheduleDatamodel.Entry
}

func (s *stubRepo) Create(e *scheduleDatamodel.Entry) error {
	s.entries[e.ID] = e
	return nil
}

func (s *stubRepo) GetByID(id string) (*scheduleDatamodel.Entry, error) {
	if e, ok := s.entries[id]; ok {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubRepo) Update(e *scheduleDatamodel.Entry) error { return nil }

func (s *stubRepo) Delete(id string) error {
	delete(s.entries, id)
	return nil
}

func (s *stubRepo) ListByCourse(courseID string) ([]*scheduleDatamodel.Entry, error) {
	var out []*scheduleDatamodel.Entry
	for _, e := range s.entries {
		if e.CourseID == courseID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *stubRepo) ListByDay(dayOfWeek string) ([]*scheduleDatamodel.Entry, error) {
	var out []*scheduleDatamodel.Entry
	for _, e := range s.entries {
		if e.DayOfWeek == dayOfWeek {
			out = append(out, e)
		}
	}
	return out, nil
}

type stubEnrollments struct {
	rows []*enrollmentDatamodel.Enrollment
}

func (s *stubEnrollments) ListByStudent(studentID string) ([]*enrollmentDatamodel.Enrollment, error) {
	var out []*enrollmentDatamodel.Enrollment
	for _, e := range s.rows {
		if e.StudentID == studentID {
			out = append(out, e)
		}
	}
	return out, nil
}

type stubCourses struct {
	courses []*courseDatamodel.Course
}

func (s *stubCourses) ListByTeacher(teacherID string) ([]*courseDatamodel.Course, error) {
	var out []*courseDatamodel.Course
	for _, c := range s.courses {
		if c.TeacherID == teacherID {
			out = append(out, c)
		}
	}
	return out, nil
}

var _ = Describe("Schedule Service", func() {
	var (
		repo        *stubRepo
		enrollments *stubEnrollments
		courses     *stubCourses
		service     *Service
	)

	BeforeEach(func() {
		repo = &stubRepo{entries: make(map[string]*scheduleDatamodel.Entry)}
		enrollments = &stubEnrollments{}
		courses = &stubCourses{}
		lg := slog.New(slog.NewTextHandler(io.Discard, nil))
		service = NewService(repo, enrollments, courses, lg)
	})

	Describe("CreateEntry", func() {
		It("lowercases the day and stores the entry", func() {
			e, err := service.CreateEntry(CreateEntryDTO{
				CourseID: "c1", DayOfWeek: "Monday", StartTime: "18:00", EndTime: "19:30", Activity: "Lecture",
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(e.DayOfWeek).To(Equal("monday"))
		})

		It("rejects an end time before the start time", func() {
			_, err := service.CreateEntry(CreateEntryDTO{
				CourseID: "c1", DayOfWeek: "monday", StartTime: "19:00", EndTime: "18:00",
			})
			Expect(err).To(HaveOccurred())
		})

		It("rejects unknown weekdays", func() {
			_, err := service.CreateEntry(CreateEntryDTO{
				CourseID: "c1", DayOfWeek: "someday", StartTime: "18:00", EndTime: "19:00",
			})
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("UpdateEntry", func() {
		It("keeps start before end across partial updates", func() {
			e, err := service.CreateEntry(CreateEntryDTO{
				CourseID: "c1", DayOfWeek: "monday", StartTime: "18:00", EndTime: "19:30",
			})
			Expect(err).NotTo(HaveOccurred())

			late := "20:00"
			_, err = service.UpdateEntry(e.ID, UpdateEntryDTO{StartTime: &late})
			Expect(err).To(HaveOccurred())
		})

		It("fails for unknown entries with the schedule code", func() {
			act := "Lab"
			_, err := service.UpdateEntry("missing", UpdateEntryDTO{Activity: &act})

			appErr, ok := apperrors.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Code).To(Equal(apperrors.ErrCodeScheduleEntryNotFound))
		})
	})

	Describe("WeekForStudent", func() {
		BeforeEach(func() {
			repo.entries["e1"] = &scheduleDatamodel.Entry{ID: "e1", CourseID: "c1", DayOfWeek: "wednesday", StartTime: "18:00", EndTime: "19:00"}
			repo.entries["e2"] = &scheduleDatamodel.Entry{ID: "e2", CourseID: "c2", DayOfWeek: "monday", StartTime: "19:00", EndTime: "20:00"}
			repo.entries["e3"] = &scheduleDatamodel.Entry{ID: "e3", CourseID: "c2", DayOfWeek: "monday", StartTime: "18:00", EndTime: "19:00"}
			repo.entries["e4"] = &scheduleDatamodel.Entry{ID: "e4", CourseID: "c3", DayOfWeek: "friday", StartTime: "18:00", EndTime: "19:00"}

			enrollments.rows = []*enrollmentDatamodel.Enrollment{
				{StudentID: "s1", CourseID: "c1", EnrollmentStatus: enrollmentDatamodel.Enrolled},
				{StudentID: "s1", CourseID: "c2", EnrollmentStatus: enrollmentDatamodel.Enrolled},
				{StudentID: "s1", CourseID: "c3", EnrollmentStatus: enrollmentDatamodel.NotEnrolled},
			}
		})

		It("orders entries by weekday then start time", func() {
			week, err := service.WeekForStudent("s1")

			Expect(err).NotTo(HaveOccurred())
			ids := make([]string, len(week))
			for i, e := range week {
				ids[i] = e.ID
			}
			Expect(ids).To(Equal([]string{"e3", "e2", "e1"}))
		})

		It("skips courses the student is not enrolled in", func() {
			week, err := service.WeekForStudent("s1")

			Expect(err).NotTo(HaveOccurred())
			for _, e := range week {
				Expect(e.CourseID).NotTo(Equal("c3"))
			}
		})
	})

	Describe("WeekForTeacher", func() {
		It("collects entries across the teacher's courses", func() {
			repo.entries["e1"] = &scheduleDatamodel.Entry{ID: "e1", CourseID: "c1", DayOfWeek: "tuesday", StartTime: "18:00", EndTime: "19:00"}
			repo.entries["e2"] = &scheduleDatamodel.Entry{ID: "e2", CourseID: "c9", DayOfWeek: "monday", StartTime: "18:00", EndTime: "19:00"}
			courses.courses = []*courseDatamodel.Course{
				{ID: "c1", TeacherID: "t1"},
				{ID: "c9", TeacherID: "other"},
			}

			week, err := service.WeekForTeacher("t1")

			Expect(err).NotTo(HaveOccurred())
			Expect(week).To(HaveLen(1))
			Expect(week[0].ID).To(Equal("e1"))
		})
	})
})
