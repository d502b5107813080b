package enrollment

import (
	"context"
	"io"
	"log/slog"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"

	apperrors "github.com/evening-academy/academy-management/internal"
	courseDatamodel "github.com/evening-academy/academy-management/internal/core/datamodel/course"
	enrollmentDatamodel "github.com/evening-academy/academy-management/internal/core/datamodel/enrollment"
	profileDatamodel "github.com/evening-academy/academy-management/internal/core/datamodel/profile"
)

type memoryRepo struct {
	byPair    map[string]*enrollmentDatamodel.Enrollment
	byID      map[string]*enrollmentDatamodel.Enrollment
	upserts   int
	upsertErr error
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{
		byPair: make(map[string]*enrollmentDatamodel.Enrollment),
		byID:   make(map[string]*enrollmentDatamodel.Enrollment),
	}
}

func pairKey(studentID, courseID string) string { return studentID + "/" + courseID }

func (m *memoryRepo) Upsert(e *enrollmentDatamodel.Enrollment) error {
	if m.upsertErr != nil {
		return m.upsertErr
	}
	m.upserts++
	key := pairKey(e.StudentID, e.CourseID)
	if existing, ok := m.byPair[key]; ok {
		existing.ApprovalStatus = e.ApprovalStatus
		existing.EnrollmentStatus = e.EnrollmentStatus
		return nil
	}
	clone := *e
	m.byPair[key] = &clone
	m.byID[clone.ID] = &clone
	return nil
}

func (m *memoryRepo) GetByStudentAndCourse(studentID, courseID string) (*enrollmentDatamodel.Enrollment, error) {
	if e, ok := m.byPair[pairKey(studentID, courseID)]; ok {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memoryRepo) GetByID(id string) (*enrollmentDatamodel.Enrollment, error) {
	if e, ok := m.byID[id]; ok {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memoryRepo) Update(e *enrollmentDatamodel.Enrollment) error {
	m.byID[e.ID] = e
	m.byPair[pairKey(e.StudentID, e.CourseID)] = e
	return nil
}

func (m *memoryRepo) ListByStudent(studentID string) ([]*enrollmentDatamodel.Enrollment, error) {
	var out []*enrollmentDatamodel.Enrollment
	for _, e := range m.byPair {
		if e.StudentID == studentID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *memoryRepo) ListByCourse(courseID string) ([]*enrollmentDatamodel.Enrollment, error) {
	var out []*enrollmentDatamodel.Enrollment
	for _, e := range m.byPair {
		if e.CourseID == courseID {
			out = append(out, e)
		}
	}
	return out, nil
}

type stubCourses struct {
	courses map[string]*courseDatamodel.Course
}

func (s *stubCourses) GetByID(id string) (*courseDatamodel.Course, error) {
	if c, ok := s.courses[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type stubProfiles struct {
	profiles map[string]*profileDatamodel.Profile
}

func (s *stubProfiles) GetByID(id string) (*profileDatamodel.Profile, error) {
	if p, ok := s.profiles[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

var _ = Describe("Enrollment Service", func() {
	var (
		repo    *memoryRepo
		service *Service
		ctx     context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		repo = newMemoryRepo()
		courses := &stubCourses{courses: map[string]*courseDatamodel.Course{
			"cs101": {ID: "cs101", Name: "Intro to Programming", Code: "CS101"},
		}}
		profiles := &stubProfiles{profiles: map[string]*profileDatamodel.Profile{
			"student-1": {ID: "student-1", Name: "Sam", Email: "sam@academy.test"},
		}}
		lg := slog.New(slog.NewTextHandler(io.Discard, nil))
		service = NewService(repo, courses, profiles, nil, lg)
	})

	Describe("RequestEnrollment", func() {
		It("creates a pending, not enrolled row", func() {
			e, err := service.RequestEnrollment("student-1", RequestEnrollmentDTO{CourseID: "cs101"})

			Expect(err).NotTo(HaveOccurred())
			Expect(e.ApprovalStatus).To(Equal(enrollmentDatamodel.ApprovalPending))
			Expect(e.EnrollmentStatus).To(Equal(enrollmentDatamodel.NotEnrolled))
		})

		It("returns the existing row on a duplicate request", func() {
			first, err := service.RequestEnrollment("student-1", RequestEnrollmentDTO{CourseID: "cs101"})
			Expect(err).NotTo(HaveOccurred())

			second, err := service.RequestEnrollment("student-1", RequestEnrollmentDTO{CourseID: "cs101"})
			Expect(err).NotTo(HaveOccurred())
			Expect(second.ID).To(Equal(first.ID))
			Expect(repo.upserts).To(Equal(1))
		})

		It("rejects unknown courses", func() {
			_, err := service.RequestEnrollment("student-1", RequestEnrollmentDTO{CourseID: "nope"})
			Expect(err).To(MatchError(apperrors.ErrCourseNotFound))
		})
	})

	Describe("MarkEnrolled", func() {
		It("activates an existing request", func() {
			_, err := service.RequestEnrollment("student-1", RequestEnrollmentDTO{CourseID: "cs101"})
			Expect(err).NotTo(HaveOccurred())

			Expect(service.MarkEnrolled(ctx, "student-1", "cs101")).To(Succeed())

			e, err := repo.GetByStudentAndCourse("student-1", "cs101")
			Expect(err).NotTo(HaveOccurred())
			Expect(e.EnrollmentStatus).To(Equal(enrollmentDatamodel.Enrolled))
			Expect(e.ApprovalStatus).To(Equal(enrollmentDatamodel.ApprovalApproved))
		})

		It("creates the row when no request preceded the payment", func() {
			Expect(service.MarkEnrolled(ctx, "student-1", "cs101")).To(Succeed())

			enrolled, err := service.IsEnrolled("student-1", "cs101")
			Expect(err).NotTo(HaveOccurred())
			Expect(enrolled).To(BeTrue())
		})

		It("stays a single row across repeated activation", func() {
			Expect(service.MarkEnrolled(ctx, "student-1", "cs101")).To(Succeed())
			Expect(service.MarkEnrolled(ctx, "student-1", "cs101")).To(Succeed())

			rows, err := repo.ListByCourse("cs101")
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(HaveLen(1))
		})
	})

	Describe("Review", func() {
		It("rejects invalid approval values", func() {
			e, err := service.RequestEnrollment("student-1", RequestEnrollmentDTO{CourseID: "cs101"})
			Expect(err).NotTo(HaveOccurred())

			_, err = service.Review(e.ID, ReviewEnrollmentDTO{ApprovalStatus: "maybe"})
			Expect(err).To(HaveOccurred())
		})

		It("records the decision", func() {
			e, err := service.RequestEnrollment("student-1", RequestEnrollmentDTO{CourseID: "cs101"})
			Expect(err).NotTo(HaveOccurred())

			reviewed, err := service.Review(e.ID, ReviewEnrollmentDTO{ApprovalStatus: enrollmentDatamodel.ApprovalRejected})
			Expect(err).NotTo(HaveOccurred())
			Expect(reviewed.ApprovalStatus).To(Equal(enrollmentDatamodel.ApprovalRejected))
		})
	})
})
