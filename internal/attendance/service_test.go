package attendance

import (
	"io"
	"log/slog"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	attendanceDatamodel "github.com/evening-academy/academy-management/internal/core/datamodel/attendance"
)

type stubRepo struct {
	records []*attendanceDatamodel.Record
}

func (s *stubRepo) Create(rec *attendanceDatamodel.Record) error {
	s.records = append(s.records, rec)
	return nil
}

func (s *stubRepo) GetByID(id string) (*attendanceDatamodel.Record, error) {
	for _, rec := range s.records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubRepo) ListByCourse(courseID string) ([]*attendanceDatamodel.Record, error) {
	var out []*attendanceDatamodel.Record
	for _, rec := range s.records {
		if rec.CourseID == courseID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (s *stubRepo) ListByStudent(studentID string) ([]*attendanceDatamodel.Record, error) {
	return s.records, nil
}

var _ = Describe("Attendance Service", func() {
	var (
		repo    *stubRepo
		service *Service
	)

	yesterday := time.Now().Add(-24 * time.Hour)

	BeforeEach(func() {
		repo = &stubRepo{}
		lg := slog.New(slog.NewTextHandler(io.Discard, nil))
		service = NewService(repo, lg)
	})

	Describe("RecordSession", func() {
		It("stores present and absent lists", func() {
			rec, err := service.RecordSession(RecordSessionDTO{
				CourseID:          "cs101",
				Date:              yesterday,
				PresentStudentIDs: []string{"s1", "s2"},
				AbsentStudentIDs:  []string{"s3"},
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(rec.PresentStudentIDs).To(HaveLen(2))
			Expect(rec.AbsentStudentIDs).To(HaveLen(1))
		})

		It("rejects a student listed both present and absent", func() {
			_, err := service.RecordSession(RecordSessionDTO{
				CourseID:          "cs101",
				Date:              yesterday,
				PresentStudentIDs: []string{"s1"},
				AbsentStudentIDs:  []string{"s1"},
			})
			Expect(err).To(HaveOccurred())
		})

		It("rejects future dates", func() {
			_, err := service.RecordSession(RecordSessionDTO{
				CourseID: "cs101",
				Date:     time.Now().Add(48 * time.Hour),
			})
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("RateFor", func() {
		It("computes present over mentioned sessions", func() {
			repo.records = []*attendanceDatamodel.Record{
				{ID: "r1", CourseID: "cs101", PresentStudentIDs: datatypes.NewJSONSlice([]string{"s1"})},
				{ID: "r2", CourseID: "cs101", PresentStudentIDs: datatypes.NewJSONSlice([]string{"s1"})},
				{ID: "r3", CourseID: "cs101", AbsentStudentIDs: datatypes.NewJSONSlice([]string{"s1"})},
				{ID: "r4", CourseID: "cs101", PresentStudentIDs: datatypes.NewJSONSlice([]string{"s2"})},
			}

			rate, err := service.RateFor("s1", "cs101")

			Expect(err).NotTo(HaveOccurred())
			Expect(rate.Present).To(Equal(2))
			Expect(rate.Absent).To(Equal(1))
			Expect(rate.Rate).To(BeNumerically("~", 2.0/3.0, 1e-9))
		})

		It("is zero with no mentions", func() {
			rate, err := service.RateFor("ghost", "cs101")

			Expect(err).NotTo(HaveOccurred())
			Expect(rate.Rate).To(BeZero())
		})
	})
})
