package repositories

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/registrar/internal/app/models"
	"github.com/yigit/registrar/internal/pkg/apperrors"
)

const insertEnrollmentSQL = `^INSERT INTO student_course \(student_id,course_id,grade\) VALUES \(\$1,\$2,\$3\)$`

func TestStudentCourseRepository_Create(t *testing.T) {
	mock := newMockPool(t)
	repo := NewStudentCourseRepository(mock)

	mock.ExpectExec(insertEnrollmentSQL).
		WithArgs(int64(1), int64(5), strPtr("A")).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := repo.Create(context.Background(), &models.StudentCourse{StudentID: 1, CourseID: 5, Grade: strPtr("A")})
	require.NoError(t, err)
}

func TestStudentCourseRepository_CreateDuplicate(t *testing.T) {
	mock := newMockPool(t)
	repo := NewStudentCourseRepository(mock)

	mock.ExpectExec(insertEnrollmentSQL).
		WithArgs(int64(1), int64(5), (*string)(nil)).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "student_course_pkey"})

	err := repo.Create(context.Background(), &models.StudentCourse{StudentID: 1, CourseID: 5})
	assert.ErrorIs(t, err, apperrors.ErrEnrollmentExists)
	assert.ErrorIs(t, err, apperrors.ErrResourceAlreadyExists)
}

func TestStudentCourseRepository_CreateForeignKeyViolation(t *testing.T) {
	mock := newMockPool(t)
	repo := NewStudentCourseRepository(mock)

	mock.ExpectExec(insertEnrollmentSQL).
		WithArgs(int64(1), int64(404), (*string)(nil)).
		WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "student_course_course_id_fkey"})

	err := repo.Create(context.Background(), &models.StudentCourse{StudentID: 1, CourseID: 404})
	require.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrEnrollmentExists)
}
