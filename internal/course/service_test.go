package course

import (
	"encoding/json"
	"io"
	"log/slog"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"

	apperrors "github.com/evening-academy/academy-management/internal"
	courseDatamodel "github.com/evening-academy/academy-management/internal/core/datamodel/course"
)

type stubRepo struct {
	byID map[string]*courseDatamodel.Course
}

func newStubRepo() *stubRepo {
	return &stubRepo{byID: make(map[string]*courseDatamodel.Course)}
}

func (s *stubRepo) Create(c *courseDatamodel.Course) error {
	s.byID[c.ID] = c
	return nil
}

func (s *stubRepo) GetByID(id string) (*courseDatamodel.Course, error) {
	if c, ok := s.byID[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubRepo) GetByCode(code string) (*courseDatamodel.Course, error) {
	for _, c := range s.byID {
		if c.Code == code {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubRepo) Update(c *courseDatamodel.Course) error {
	s.byID[c.ID] = c
	return nil
}

func (s *stubRepo) Delete(id string) error {
	delete(s.byID, id)
	return nil
}

func (s *stubRepo) List() ([]*courseDatamodel.Course, error) {
	var out []*courseDatamodel.Course
	for _, c := range s.byID {
		out = append(out, c)
	}
	return out, nil
}

func (s *stubRepo) ListByTeacher(teacherID string) ([]*courseDatamodel.Course, error) {
	var out []*courseDatamodel.Course
	for _, c := range s.byID {
		if c.TeacherID == teacherID {
			out = append(out, c)
		}
	}
	return out, nil
}

var _ = Describe("Course Service", func() {
	var (
		repo    *stubRepo
		service *Service
	)

	BeforeEach(func() {
		repo = newStubRepo()
		lg := slog.New(slog.NewTextHandler(io.Discard, nil))
		service = NewService(repo, lg)
	})

	Describe("CreateCourse", func() {
		It("rejects duplicate course codes", func() {
			_, err := service.CreateCourse(CreateCourseDTO{Name: "Intro", Code: "CS101", TeacherID: "t1"})
			Expect(err).NotTo(HaveOccurred())

			_, err = service.CreateCourse(CreateCourseDTO{Name: "Intro Again", Code: "CS101", TeacherID: "t1"})
			appErr, ok := apperrors.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Code).To(Equal(apperrors.ErrCodeDuplicateCourse))
		})

		It("requires name, code and teacher", func() {
			_, err := service.CreateCourse(CreateCourseDTO{Name: "Intro"})
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("materials", func() {
		var courseID string

		BeforeEach(func() {
			c, err := service.CreateCourse(CreateCourseDTO{Name: "Intro", Code: "CS101", TeacherID: "t1"})
			Expect(err).NotTo(HaveOccurred())
			courseID = c.ID
		})

		materialNames := func(c *courseDatamodel.Course) []string {
			var materials []courseDatamodel.Material
			Expect(json.Unmarshal(c.Materials, &materials)).To(Succeed())
			names := make([]string, len(materials))
			for i, m := range materials {
				names[i] = m.Name
			}
			return names
		}

		It("appends and removes by name", func() {
			_, err := service.AddMaterial(courseID, AddMaterialDTO{Name: "Syllabus", URL: "https://files.test/syllabus.pdf", Type: "pdf"})
			Expect(err).NotTo(HaveOccurred())
			c, err := service.AddMaterial(courseID, AddMaterialDTO{Name: "Slides", URL: "https://files.test/slides.pdf", Type: "pdf"})
			Expect(err).NotTo(HaveOccurred())
			Expect(materialNames(c)).To(Equal([]string{"Syllabus", "Slides"}))

			c, err = service.RemoveMaterial(courseID, "Syllabus")
			Expect(err).NotTo(HaveOccurred())
			Expect(materialNames(c)).To(Equal([]string{"Slides"}))
		})

		It("fails to remove a material that is not there", func() {
			_, err := service.RemoveMaterial(courseID, "Ghost")
			Expect(err).To(HaveOccurred())
		})
	})
})
