package seed

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	appModels "github.com/yigit/registrar/internal/app/models"
	appRepos "github.com/yigit/registrar/internal/app/repositories"
	"github.com/yigit/registrar/internal/pkg/apperrors"
)

type demoEnrollment struct {
	lastName string
	grade    string
}

var (
	demoInstructor = appModels.Instructor{
		FirstName: "Barbara",
		LastName:  "Liskov",
		HireDate:  datePtr(2010, time.September, 1),
	}

	demoStudents = []appModels.Student{
		{FirstName: "Ada", LastName: "Lovelace", Year: intPtr(2), GPA: floatPtr(3.9)},
		{FirstName: "Alan", LastName: "Turing", Year: intPtr(3), GPA: floatPtr(4.0)},
	}

	demoCourse = appModels.Course{Name: "Algorithms", Credits: intPtr(4)}

	demoEnrollments = []demoEnrollment{
		{lastName: "Lovelace", grade: "A"},
		{lastName: "Turing", grade: "A+"},
	}
)

// CreateDefaultData inserts a small demo data set unless it is already present.
// Individual failures are logged and joined so one bad row does not stop the rest.
func CreateDefaultData(ctx context.Context, repos *appRepos.Repositories, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating demo data (Instructor/Students/Course)...")
	var finalErr error

	instructorID, err := ensureInstructor(ctx, repos.InstructorRepository, demoInstructor)
	if err != nil {
		lgr.Error().Err(err).Msg("Error creating demo instructor")
		finalErr = errors.Join(finalErr, err)
	}

	studentIDs := make(map[string]int64, len(demoStudents))
	for _, student := range demoStudents {
		id, err := ensureStudent(ctx, repos.StudentRepository, student)
		if err != nil {
			lgr.Error().Err(err).Str("lastName", student.LastName).Msg("Error creating demo student")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		studentIDs[student.LastName] = id
	}

	course := demoCourse
	if instructorID > 0 {
		course.InstructorID = &instructorID
	}
	courseID, err := ensureCourse(ctx, repos.CourseRepository, course)
	if err != nil {
		lgr.Error().Err(err).Msg("Error creating demo course")
		return errors.Join(finalErr, err)
	}

	for _, enrollment := range demoEnrollments {
		studentID, ok := studentIDs[enrollment.lastName]
		if !ok {
			continue
		}
		err := repos.StudentCourseRepository.Create(ctx, &appModels.StudentCourse{
			StudentID: studentID,
			CourseID:  courseID,
			Grade:     &enrollment.grade,
		})
		if err != nil && !errors.Is(err, apperrors.ErrEnrollmentExists) {
			lgr.Error().Err(err).Str("lastName", enrollment.lastName).Msg("Error creating demo enrollment")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if finalErr == nil {
		lgr.Info().Int64("courseID", courseID).Msg("Demo data ready")
	}
	return finalErr
}

func ensureInstructor(ctx context.Context, repo *appRepos.InstructorRepository, instructor appModels.Instructor) (int64, error) {
	existing, err := repo.Find(ctx, appRepos.InstructorFilter{LastName: &instructor.LastName})
	if err != nil {
		return 0, err
	}
	for _, i := range existing {
		if i.FirstName == instructor.FirstName {
			return i.ID, nil
		}
	}
	return repo.Create(ctx, &instructor)
}

func ensureStudent(ctx context.Context, repo *appRepos.StudentRepository, student appModels.Student) (int64, error) {
	existing, err := repo.Find(ctx, appRepos.StudentFilter{LastName: &student.LastName})
	if err != nil {
		return 0, err
	}
	for _, s := range existing {
		if s.FirstName == student.FirstName {
			return s.ID, nil
		}
	}
	return repo.Create(ctx, &student)
}

func ensureCourse(ctx context.Context, repo *appRepos.CourseRepository, course appModels.Course) (int64, error) {
	existing, err := repo.Find(ctx, appRepos.CourseFilter{Name: &course.Name})
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		return existing[0].ID, nil
	}
	return repo.Create(ctx, &course)
}

func datePtr(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
