package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/registrar/internal/app/models"
	"github.com/yigit/registrar/internal/pkg/apperrors"
	"github.com/yigit/registrar/internal/pkg/logger"
)

var courseColumns = []string{
	"c.id", "c.name", "c.credits", "c.instructor_id",
	"i.id", "i.first_name", "i.last_name", "i.hire_date",
}

// CourseFilter narrows a course query. Nil fields are ignored; set fields are ANDed.
type CourseFilter struct {
	Name         *string
	InstructorID *int64
	StudentID    *int64
}

// Conditions returns the predicates for the set fields
func (f CourseFilter) Conditions() squirrel.And {
	conditions := squirrel.And{}
	if f.Name != nil {
		conditions = append(conditions, squirrel.Eq{"c.name": *f.Name})
	}
	if f.InstructorID != nil {
		conditions = append(conditions, squirrel.Eq{"c.instructor_id": *f.InstructorID})
	}
	if f.StudentID != nil {
		conditions = append(conditions, squirrel.Expr(
			"EXISTS (SELECT 1 FROM "+models.TableStudentCourse+" sc WHERE sc.course_id = c.id AND sc.student_id = ?)", *f.StudentID))
	}
	return conditions
}

// CourseRepository handles course database operations
type CourseRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db DBTX) *CourseRepository {
	return &CourseRepository{
		db: db,
		sb: newStatementBuilder(),
	}
}

func (r *CourseRepository) selectCourses() squirrel.SelectBuilder {
	return r.sb.Select(courseColumns...).
		From(models.TableCourses + " c").
		LeftJoin(models.TableInstructors + " i ON c.instructor_id = i.id")
}

// Create inserts a course and sets its ID
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) (int64, error) {
	sql, args, err := r.sb.Insert(models.TableCourses).
		Columns("name", "credits", "instructor_id").
		Values(course.Name, course.Credits, course.InstructorID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.FromContext(ctx).Error().Err(err).Msg("Error building create course SQL")
		return 0, fmt.Errorf("failed to build create course query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&course.ID); err != nil {
		logger.FromContext(ctx).Error().Err(err).Str("name", course.Name).Msg("Error executing create course query")
		return 0, fmt.Errorf("error creating course: %w", err)
	}

	return course.ID, nil
}

// GetByID retrieves a course and its instructor by ID
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	sql, args, err := r.selectCourses().
		Where(squirrel.Eq{"c.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.FromContext(ctx).Error().Err(err).Msg("Error building get course by ID SQL")
		return nil, fmt.Errorf("failed to build get course query: %w", err)
	}

	course, err := scanCourse(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		logger.FromContext(ctx).Error().Err(err).Int64("courseID", id).Msg("Error scanning course row")
		return nil, fmt.Errorf("error getting course by ID: %w", err)
	}

	return course, nil
}

// GetAll retrieves every course ordered by id
func (r *CourseRepository) GetAll(ctx context.Context) ([]*models.Course, error) {
	return r.Find(ctx, CourseFilter{})
}

// Find retrieves the courses matching filter ordered by id
func (r *CourseRepository) Find(ctx context.Context, filter CourseFilter) ([]*models.Course, error) {
	sql, args, err := applyConditions(r.selectCourses(), filter.Conditions()).
		OrderBy("c.id ASC").
		ToSql()
	if err != nil {
		logger.FromContext(ctx).Error().Err(err).Msg("Error building find courses SQL")
		return nil, fmt.Errorf("failed to build find courses query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.FromContext(ctx).Error().Err(err).Msg("Error executing find courses query")
		return nil, fmt.Errorf("error querying courses: %w", err)
	}
	defer rows.Close()

	courses := []*models.Course{}
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			logger.FromContext(ctx).Error().Err(err).Msg("Error scanning course row")
			return nil, fmt.Errorf("error scanning course row: %w", err)
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		logger.FromContext(ctx).Error().Err(err).Msg("Error iterating course rows")
		return nil, fmt.Errorf("error iterating course rows: %w", err)
	}

	return courses, nil
}

// scanCourse reads a course row; the instructor columns are NULL when no instructor is assigned
func scanCourse(row rowScanner) (*models.Course, error) {
	course := &models.Course{}
	var (
		instructorID        *int64
		firstName, lastName *string
		hireDate            *time.Time
	)

	err := row.Scan(
		&course.ID, &course.Name, &course.Credits, &course.InstructorID,
		&instructorID, &firstName, &lastName, &hireDate,
	)
	if err != nil {
		return nil, err
	}

	if instructorID != nil {
		course.Instructor = &models.Instructor{
			ID:       *instructorID,
			HireDate: hireDate,
		}
		if firstName != nil {
			course.Instructor.FirstName = *firstName
		}
		if lastName != nil {
			course.Instructor.LastName = *lastName
		}
	}

	return course, nil
}
