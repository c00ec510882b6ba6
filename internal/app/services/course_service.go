package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/yigit/registrar/internal/app/models"
	"github.com/yigit/registrar/internal/app/repositories"
	"github.com/yigit/registrar/internal/pkg/apperrors"
)

// CourseService defines the interface for course-related operations
type CourseService interface {
	GetCourseRoster(ctx context.Context, courseID int64) (*models.Course, error)
}

// courseServiceImpl implements the CourseService interface
type courseServiceImpl struct {
	db repositories.TxStarter
}

// NewCourseService creates a new course service instance
func NewCourseService(db repositories.TxStarter) CourseService {
	return &courseServiceImpl{db: db}
}

// GetCourseRoster loads a course with its instructor and enrolled students.
// Both reads share one snapshot, so the roster always belongs to the course returned.
func (s *courseServiceImpl) GetCourseRoster(ctx context.Context, courseID int64) (*models.Course, error) {
	var course *models.Course
	err := repositories.InSnapshot(ctx, s.db, func(repos *repositories.Repositories) error {
		var err error
		course, err = repos.CourseRepository.GetByID(ctx, courseID)
		if err != nil {
			if errors.Is(err, apperrors.ErrCourseNotFound) {
				return apperrors.ErrCourseNotFound
			}
			return fmt.Errorf("error retrieving course: %w", err)
		}

		students, err := repos.StudentRepository.GetByCourseID(ctx, courseID)
		if err != nil {
			return fmt.Errorf("error retrieving course students: %w", err)
		}
		course.Students = students
		return nil
	})
	if err != nil {
		return nil, err
	}
	return course, nil
}
