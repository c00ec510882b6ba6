package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/registrar/internal/app/models"
	"github.com/yigit/registrar/internal/pkg/apperrors"
)

var studentRowColumns = []string{"id", "first_name", "last_name", "year", "gpa"}

func TestStudentRepository_GetAll(t *testing.T) {
	mock := newMockPool(t)
	repo := NewStudentRepository(mock)

	mock.ExpectQuery(`^SELECT s\.id, s\.first_name, s\.last_name, s\.year, s\.gpa FROM students s ORDER BY s\.id ASC$`).
		WillReturnRows(pgxmock.NewRows(studentRowColumns).
			AddRow(int64(1), "Ada", "Lovelace", intPtr(2), floatPtr(3.9)).
			AddRow(int64(2), "Alan", "Turing", nil, nil))

	students, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, students, 2)

	assert.Equal(t, &models.Student{ID: 1, FirstName: "Ada", LastName: "Lovelace", Year: intPtr(2), GPA: floatPtr(3.9)}, students[0])
	assert.Equal(t, int64(2), students[1].ID)
	assert.Nil(t, students[1].Year)
	assert.Nil(t, students[1].GPA)
}

func TestStudentRepository_Find(t *testing.T) {
	tests := []struct {
		name   string
		filter StudentFilter
		query  string
		args   []interface{}
	}{
		{
			name:   "last name",
			filter: StudentFilter{LastName: strPtr("Turing")},
			query:  `FROM students s WHERE \(s\.last_name = \$1\) ORDER BY s\.id ASC$`,
			args:   []interface{}{"Turing"},
		},
		{
			name:   "gpa",
			filter: StudentFilter{GPA: floatPtr(4.0)},
			query:  `FROM students s WHERE \(s\.gpa = \$1\) ORDER BY s\.id ASC$`,
			args:   []interface{}{4.0},
		},
		{
			name:   "both filters are ANDed",
			filter: StudentFilter{LastName: strPtr("Turing"), GPA: floatPtr(4.0)},
			query:  `FROM students s WHERE \(s\.last_name = \$1 AND s\.gpa = \$2\) ORDER BY s\.id ASC$`,
			args:   []interface{}{"Turing", 4.0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMockPool(t)
			repo := NewStudentRepository(mock)

			mock.ExpectQuery(tt.query).
				WithArgs(tt.args...).
				WillReturnRows(pgxmock.NewRows(studentRowColumns).
					AddRow(int64(2), "Alan", "Turing", intPtr(3), floatPtr(4.0)))

			students, err := repo.Find(context.Background(), tt.filter)
			require.NoError(t, err)
			require.Len(t, students, 1)
			assert.Equal(t, "Alan", students[0].FirstName)
		})
	}
}

func TestStudentRepository_FindEmpty(t *testing.T) {
	mock := newMockPool(t)
	repo := NewStudentRepository(mock)

	mock.ExpectQuery(`FROM students s WHERE`).
		WithArgs("Nobody").
		WillReturnRows(pgxmock.NewRows(studentRowColumns))

	students, err := repo.Find(context.Background(), StudentFilter{LastName: strPtr("Nobody")})
	require.NoError(t, err)
	assert.NotNil(t, students)
	assert.Empty(t, students)
}

func TestStudentRepository_FindQueryError(t *testing.T) {
	mock := newMockPool(t)
	repo := NewStudentRepository(mock)

	dbErr := &pgconn.PgError{Code: "08006", Message: "connection failure"}
	mock.ExpectQuery(`FROM students s`).WillReturnError(dbErr)

	_, err := repo.GetAll(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, dbErr))
}

func TestStudentRepository_GetByID(t *testing.T) {
	mock := newMockPool(t)
	repo := NewStudentRepository(mock)

	mock.ExpectQuery(`FROM students s WHERE s\.id = \$1 LIMIT 1`).
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows(studentRowColumns).
			AddRow(int64(1), "Ada", "Lovelace", intPtr(2), floatPtr(3.9)))

	student, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Lovelace", student.LastName)
}

func TestStudentRepository_GetByIDNotFound(t *testing.T) {
	mock := newMockPool(t)
	repo := NewStudentRepository(mock)

	mock.ExpectQuery(`FROM students s WHERE s\.id = \$1`).
		WithArgs(int64(42)).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestStudentRepository_GetByCourseID(t *testing.T) {
	mock := newMockPool(t)
	repo := NewStudentRepository(mock)

	mock.ExpectQuery(`FROM students s JOIN student_course sc ON sc\.student_id = s\.id WHERE sc\.course_id = \$1 ORDER BY s\.id ASC`).
		WithArgs(int64(5)).
		WillReturnRows(pgxmock.NewRows(studentRowColumns).
			AddRow(int64(1), "Ada", "Lovelace", intPtr(2), floatPtr(3.9)).
			AddRow(int64(2), "Alan", "Turing", intPtr(3), floatPtr(4.0)))

	students, err := repo.GetByCourseID(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, students, 2)
	assert.Equal(t, []int64{1, 2}, []int64{students[0].ID, students[1].ID})
}

func TestStudentRepository_Create(t *testing.T) {
	mock := newMockPool(t)
	repo := NewStudentRepository(mock)

	mock.ExpectQuery(`^INSERT INTO students \(first_name,last_name,year,gpa\) VALUES \(\$1,\$2,\$3,\$4\) RETURNING id$`).
		WithArgs("Grace", "Hopper", (*int)(nil), floatPtr(3.7)).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(3)))

	student := &models.Student{FirstName: "Grace", LastName: "Hopper", GPA: floatPtr(3.7)}
	id, err := repo.Create(context.Background(), student)
	require.NoError(t, err)
	assert.Equal(t, int64(3), id)
	assert.Equal(t, int64(3), student.ID)
}
