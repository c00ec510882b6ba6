package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/registrar/internal/app/models"
	"github.com/yigit/registrar/internal/pkg/apperrors"
	"github.com/yigit/registrar/internal/pkg/dberrors"
	"github.com/yigit/registrar/internal/pkg/logger"
)

const studentCoursePrimaryKey = "student_course_pkey"

// StudentCourseRepository handles enrollment rows
type StudentCourseRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewStudentCourseRepository creates a new StudentCourseRepository
func NewStudentCourseRepository(db DBTX) *StudentCourseRepository {
	return &StudentCourseRepository{
		db: db,
		sb: newStatementBuilder(),
	}
}

// Create enrolls a student in a course
func (r *StudentCourseRepository) Create(ctx context.Context, enrollment *models.StudentCourse) error {
	sql, args, err := r.sb.Insert(models.TableStudentCourse).
		Columns("student_id", "course_id", "grade").
		Values(enrollment.StudentID, enrollment.CourseID, enrollment.Grade).
		ToSql()
	if err != nil {
		logger.FromContext(ctx).Error().Err(err).Msg("Error building create enrollment SQL")
		return fmt.Errorf("failed to build create enrollment query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if dberrors.IsDuplicateConstraintError(err, studentCoursePrimaryKey) {
			return apperrors.ErrEnrollmentExists
		}
		logger.FromContext(ctx).Error().Err(err).
			Int64("studentID", enrollment.StudentID).
			Int64("courseID", enrollment.CourseID).
			Msg("Error executing create enrollment query")
		return fmt.Errorf("error creating enrollment: %w", err)
	}

	return nil
}
