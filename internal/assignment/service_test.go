package assignment

import (
	"io"
	"log/slog"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"

	apperrors "github.com/evening-academy/academy-management/internal"
	assignmentDatamodel "github.com/evening-academy/academy-management/internal/core/datamodel/assignment"
)

type stubRepo struct {
	assignments map[string]*assignmentDatamodel.Assignment
	submissions map[string]*assignmentDatamodel.Submission
}

func newStubRepo() *stubRepo {
	return &stubRepo{
		assignments: make(map[string]*assignmentDatamodel.Assignment),
		submissions: make(map[string]*assignmentDatamodel.Submission),
	}
}

func subKey(assignmentID, studentID string) string { return assignmentID + "/" + studentID }

func (s *stubRepo) Create(a *assignmentDatamodel.Assignment) error {
	s.assignments[a.ID] = a
	return nil
}

func (s *stubRepo) GetByID(id string) (*assignmentDatamodel.Assignment, error) {
	if a, ok := s.assignments[id]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubRepo) Update(a *assignmentDatamodel.Assignment) error { return nil }

func (s *stubRepo) Delete(id string) error {
	delete(s.assignments, id)
	return nil
}

func (s *stubRepo) ListByCourse(courseID string) ([]*assignmentDatamodel.Assignment, error) {
	var out []*assignmentDatamodel.Assignment
	for _, a := range s.assignments {
		if a.CourseID == courseID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *stubRepo) UpsertSubmission(sub *assignmentDatamodel.Submission) error {
	key := subKey(sub.AssignmentID, sub.StudentID)
	if existing, ok := s.submissions[key]; ok {
		existing.FileURL = sub.FileURL
		existing.FileName = sub.FileName
		existing.FileType = sub.FileType
		existing.SubmittedAt = sub.SubmittedAt
		return nil
	}
	s.submissions[key] = sub
	return nil
}

func (s *stubRepo) GetSubmission(assignmentID, studentID string) (*assignmentDatamodel.Submission, error) {
	if sub, ok := s.submissions[subKey(assignmentID, studentID)]; ok {
		return sub, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubRepo) GetSubmissionByID(id string) (*assignmentDatamodel.Submission, error) {
	for _, sub := range s.submissions {
		if sub.ID == id {
			return sub, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubRepo) UpdateSubmission(sub *assignmentDatamodel.Submission) error { return nil }

func (s *stubRepo) ListSubmissions(assignmentID string) ([]*assignmentDatamodel.Submission, error) {
	var out []*assignmentDatamodel.Submission
	for _, sub := range s.submissions {
		if sub.AssignmentID == assignmentID {
			out = append(out, sub)
		}
	}
	return out, nil
}

func (s *stubRepo) ListSubmissionsByStudent(studentID string) ([]*assignmentDatamodel.Submission, error) {
	var out []*assignmentDatamodel.Submission
	for _, sub := range s.submissions {
		if sub.StudentID == studentID {
			out = append(out, sub)
		}
	}
	return out, nil
}

type stubEnrollments struct {
	enrolled map[string]bool
}

func (s *stubEnrollments) IsEnrolled(studentID, courseID string) (bool, error) {
	return s.enrolled[studentID+"/"+courseID], nil
}

var _ = Describe("Assignment Service", func() {
	var (
		repo        *stubRepo
		enrollments *stubEnrollments
		service     *Service
	)

	BeforeEach(func() {
		repo = newStubRepo()
		enrollments = &stubEnrollments{enrolled: map[string]bool{"s1/cs101": true}}
		lg := slog.New(slog.NewTextHandler(io.Discard, nil))
		service = NewService(repo, enrollments, lg)

		_, err := service.CreateAssignment(CreateAssignmentDTO{CourseID: "cs101", Title: "Homework 1"})
		Expect(err).NotTo(HaveOccurred())
	})

	assignmentID := func() string {
		for id := range repo.assignments {
			return id
		}
		return ""
	}

	Describe("Submit", func() {
		It("stores a submission for an enrolled student", func() {
			sub, err := service.Submit(assignmentID(), "s1", SubmitDTO{
				FileURL: "https://files.test/hw1.pdf", FileName: "hw1.pdf", FileType: "application/pdf",
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(sub.StudentID).To(Equal("s1"))
		})

		It("rejects students not enrolled in the course", func() {
			_, err := service.Submit(assignmentID(), "outsider", SubmitDTO{
				FileURL: "https://files.test/hw1.pdf", FileName: "hw1.pdf",
			})
			Expect(err).To(MatchError(apperrors.ErrNotEnrolled))
		})

		It("keeps a single row when a student resubmits", func() {
			id := assignmentID()

			_, err := service.Submit(id, "s1", SubmitDTO{FileURL: "https://files.test/v1.pdf", FileName: "v1.pdf"})
			Expect(err).NotTo(HaveOccurred())
			_, err = service.Submit(id, "s1", SubmitDTO{FileURL: "https://files.test/v2.pdf", FileName: "v2.pdf"})
			Expect(err).NotTo(HaveOccurred())

			subs, err := service.ListSubmissions(id)
			Expect(err).NotTo(HaveOccurred())
			Expect(subs).To(HaveLen(1))
			Expect(subs[0].FileName).To(HaveValue(Equal("v2.pdf")))
		})

		It("fails for unknown assignments", func() {
			_, err := service.Submit("missing", "s1", SubmitDTO{FileURL: "u", FileName: "f"})
			Expect(err).To(MatchError(apperrors.ErrAssignmentNotFound))
		})
	})

	Describe("GradeSubmission", func() {
		It("sets score, feedback and graded time", func() {
			sub, err := service.Submit(assignmentID(), "s1", SubmitDTO{FileURL: "u", FileName: "f"})
			Expect(err).NotTo(HaveOccurred())

			feedback := "solid work"
			graded, err := service.GradeSubmission(sub.ID, GradeSubmissionDTO{Grade: 92, Feedback: &feedback})

			Expect(err).NotTo(HaveOccurred())
			Expect(*graded.Grade).To(BeNumerically("==", 92))
			Expect(graded.GradedAt).NotTo(BeNil())
		})

		It("rejects out-of-range grades", func() {
			sub, err := service.Submit(assignmentID(), "s1", SubmitDTO{FileURL: "u", FileName: "f"})
			Expect(err).NotTo(HaveOccurred())

			_, err = service.GradeSubmission(sub.ID, GradeSubmissionDTO{Grade: 180})
			Expect(err).To(HaveOccurred())
		})
	})
})
