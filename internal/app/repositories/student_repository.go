package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/registrar/internal/app/models"
	"github.com/yigit/registrar/internal/pkg/apperrors"
	"github.com/yigit/registrar/internal/pkg/logger"
)

var studentColumns = []string{"s.id", "s.first_name", "s.last_name", "s.year", "s.gpa"}

// StudentFilter narrows a student query. Nil fields are ignored; set fields are ANDed.
type StudentFilter struct {
	LastName *string
	GPA      *float64
}

// Conditions returns the predicates for the set fields
func (f StudentFilter) Conditions() squirrel.And {
	conditions := squirrel.And{}
	if f.LastName != nil {
		conditions = append(conditions, squirrel.Eq{"s.last_name": *f.LastName})
	}
	if f.GPA != nil {
		conditions = append(conditions, squirrel.Eq{"s.gpa": *f.GPA})
	}
	return conditions
}

// StudentRepository handles student database operations
type StudentRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db DBTX) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: newStatementBuilder(),
	}
}

// GetAll retrieves every student ordered by id
func (r *StudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	return r.Find(ctx, StudentFilter{})
}

// Find retrieves the students matching filter ordered by id
func (r *StudentRepository) Find(ctx context.Context, filter StudentFilter) ([]*models.Student, error) {
	query := r.sb.Select(studentColumns...).From(models.TableStudents + " s")
	query = applyConditions(query, filter.Conditions()).OrderBy("s.id ASC")

	sql, args, err := query.ToSql()
	if err != nil {
		logger.FromContext(ctx).Error().Err(err).Msg("Error building find students SQL")
		return nil, fmt.Errorf("failed to build find students query: %w", err)
	}

	return r.queryStudents(ctx, sql, args)
}

// GetByID retrieves a student by ID
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).
		From(models.TableStudents + " s").
		Where(squirrel.Eq{"s.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.FromContext(ctx).Error().Err(err).Msg("Error building get student by ID SQL")
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.FromContext(ctx).Error().Err(err).Int64("studentID", id).Msg("Error scanning student row")
		return nil, fmt.Errorf("error getting student by ID: %w", err)
	}

	return student, nil
}

// Create inserts a student and sets its ID
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) (int64, error) {
	sql, args, err := r.sb.Insert(models.TableStudents).
		Columns("first_name", "last_name", "year", "gpa").
		Values(student.FirstName, student.LastName, student.Year, student.GPA).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.FromContext(ctx).Error().Err(err).Msg("Error building create student SQL")
		return 0, fmt.Errorf("failed to build create student query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&student.ID); err != nil {
		logger.FromContext(ctx).Error().Err(err).Str("lastName", student.LastName).Msg("Error executing create student query")
		return 0, fmt.Errorf("error creating student: %w", err)
	}

	return student.ID, nil
}

// GetByCourseID retrieves the students enrolled in a course ordered by id
func (r *StudentRepository) GetByCourseID(ctx context.Context, courseID int64) ([]*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).
		From(models.TableStudents + " s").
		Join(models.TableStudentCourse + " sc ON sc.student_id = s.id").
		Where(squirrel.Eq{"sc.course_id": courseID}).
		OrderBy("s.id ASC").
		ToSql()
	if err != nil {
		logger.FromContext(ctx).Error().Err(err).Msg("Error building get students by course SQL")
		return nil, fmt.Errorf("failed to build get students by course query: %w", err)
	}

	return r.queryStudents(ctx, sql, args)
}

func (r *StudentRepository) queryStudents(ctx context.Context, sql string, args []interface{}) ([]*models.Student, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.FromContext(ctx).Error().Err(err).Msg("Error executing students query")
		return nil, fmt.Errorf("error querying students: %w", err)
	}
	defer rows.Close()

	students := []*models.Student{}
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			logger.FromContext(ctx).Error().Err(err).Msg("Error scanning student row")
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		logger.FromContext(ctx).Error().Err(err).Msg("Error iterating student rows")
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}

	return students, nil
}

func scanStudent(row rowScanner) (*models.Student, error) {
	student := &models.Student{}
	if err := row.Scan(&student.ID, &student.FirstName, &student.LastName, &student.Year, &student.GPA); err != nil {
		return nil, err
	}
	return student, nil
}
