package services

import (
	"context"
	"fmt"
	"math"

	"github.com/yigit/registrar/internal/app/models"
	"github.com/yigit/registrar/internal/app/repositories"
	"github.com/yigit/registrar/internal/pkg/apperrors"
)

// StudentService defines the interface for student-related operations
type StudentService interface {
	ListStudents(ctx context.Context, filter repositories.StudentFilter) ([]*models.Student, error)
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	studentRepo *repositories.StudentRepository
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo *repositories.StudentRepository) StudentService {
	return &studentServiceImpl{
		studentRepo: studentRepo,
	}
}

// ListStudents returns the students matching filter, or every student when filter is empty
func (s *studentServiceImpl) ListStudents(ctx context.Context, filter repositories.StudentFilter) ([]*models.Student, error) {
	if filter.GPA != nil && (math.IsNaN(*filter.GPA) || math.IsInf(*filter.GPA, 0)) {
		return nil, apperrors.ErrInvalidGPA
	}

	students, err := s.studentRepo.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}
	return students, nil
}
