package grade

import (
	"io"
	"log/slog"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"

	assignmentDatamodel "github.com/evening-academy/academy-management/internal/core/datamodel/assignment"
	gradeDatamodel "github.com/evening-academy/academy-management/internal/core/datamodel/grade"
)

type stubGradeRepo struct {
	grades []*gradeDatamodel.Grade
}

func (s *stubGradeRepo) Create(g *gradeDatamodel.Grade) error {
	s.grades = append(s.grades, g)
	return nil
}

func (s *stubGradeRepo) GetByID(id string) (*gradeDatamodel.Grade, error) {
	for _, g := range s.grades {
		if g.ID == id {
			return g, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubGradeRepo) Update(g *gradeDatamodel.Grade) error { return nil }

func (s *stubGradeRepo) ListByStudent(studentID string) ([]*gradeDatamodel.Grade, error) {
	var out []*gradeDatamodel.Grade
	for _, g := range s.grades {
		if g.StudentID == studentID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (s *stubGradeRepo) ListByAssignment(assignmentID string) ([]*gradeDatamodel.Grade, error) {
	var out []*gradeDatamodel.Grade
	for _, g := range s.grades {
		if g.AssignmentID == assignmentID {
			out = append(out, g)
		}
	}
	return out, nil
}

type stubAssignments struct {
	byCourse map[string][]*assignmentDatamodel.Assignment
}

func (s *stubAssignments) ListByCourse(courseID string) ([]*assignmentDatamodel.Assignment, error) {
	return s.byCourse[courseID], nil
}

var _ = Describe("Grade Service", func() {
	Describe("Letter", func() {
		It("maps percentages onto the report-card scale", func() {
			Expect(Letter(95)).To(Equal("A"))
			Expect(Letter(90)).To(Equal("A"))
			Expect(Letter(89.9)).To(Equal("B"))
			Expect(Letter(80)).To(Equal("B"))
			Expect(Letter(70)).To(Equal("C"))
			Expect(Letter(60)).To(Equal("D"))
			Expect(Letter(59.9)).To(Equal("F"))
			Expect(Letter(0)).To(Equal("F"))
		})
	})

	Describe("RecordGrade", func() {
		var service *Service

		BeforeEach(func() {
			lg := slog.New(slog.NewTextHandler(io.Discard, nil))
			service = NewService(&stubGradeRepo{}, &stubAssignments{}, lg)
		})

		It("rejects a score above max_score", func() {
			_, err := service.RecordGrade(RecordGradeDTO{
				StudentID: "s1", AssignmentID: "a1", Score: 110, MaxScore: 100,
			})
			Expect(err).To(HaveOccurred())
		})

		It("rejects a zero max_score", func() {
			_, err := service.RecordGrade(RecordGradeDTO{
				StudentID: "s1", AssignmentID: "a1", Score: 0, MaxScore: 0,
			})
			Expect(err).To(HaveOccurred())
		})

		It("stores a valid grade", func() {
			g, err := service.RecordGrade(RecordGradeDTO{
				StudentID: "s1", AssignmentID: "a1", Score: 88, MaxScore: 100,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(g.ID).NotTo(BeEmpty())
		})
	})

	Describe("CourseSummaryFor", func() {
		It("aggregates only the course's assignments", func() {
			repo := &stubGradeRepo{grades: []*gradeDatamodel.Grade{
				{ID: "g1", StudentID: "s1", AssignmentID: "a1", Score: 90, MaxScore: 100},
				{ID: "g2", StudentID: "s1", AssignmentID: "a2", Score: 70, MaxScore: 100},
				{ID: "g3", StudentID: "s1", AssignmentID: "other", Score: 10, MaxScore: 100},
			}}
			assignments := &stubAssignments{byCourse: map[string][]*assignmentDatamodel.Assignment{
				"cs101": {{ID: "a1"}, {ID: "a2"}},
			}}
			lg := slog.New(slog.NewTextHandler(io.Discard, nil))
			service := NewService(repo, assignments, lg)

			summary, err := service.CourseSummaryFor("s1", "cs101")

			Expect(err).NotTo(HaveOccurred())
			Expect(summary.GradedCount).To(Equal(2))
			Expect(summary.Percent).To(BeNumerically("==", 80))
			Expect(summary.Letter).To(Equal("B"))
		})

		It("reports F with no graded work", func() {
			lg := slog.New(slog.NewTextHandler(io.Discard, nil))
			service := NewService(&stubGradeRepo{}, &stubAssignments{}, lg)

			summary, err := service.CourseSummaryFor("s1", "cs101")

			Expect(err).NotTo(HaveOccurred())
			Expect(summary.GradedCount).To(BeZero())
			Expect(summary.Letter).To(Equal("F"))
		})
	})
})
