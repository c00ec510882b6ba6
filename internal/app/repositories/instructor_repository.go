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

var instructorColumns = []string{"i.id", "i.first_name", "i.last_name", "i.hire_date"}

// InstructorFilter narrows an instructor query. Nil fields are ignored; set fields are ANDed.
type InstructorFilter struct {
	LastName *string
	CourseID *int64
}

// Conditions returns the predicates for the set fields
func (f InstructorFilter) Conditions() squirrel.And {
	conditions := squirrel.And{}
	if f.LastName != nil {
		conditions = append(conditions, squirrel.Eq{"i.last_name": *f.LastName})
	}
	if f.CourseID != nil {
		conditions = append(conditions, squirrel.Expr(
			"EXISTS (SELECT 1 FROM courses c WHERE c.instructor_id = i.id AND c.id = ?)", *f.CourseID))
	}
	return conditions
}

// InstructorRepository handles instructor database operations
type InstructorRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewInstructorRepository creates a new InstructorRepository
func NewInstructorRepository(db DBTX) *InstructorRepository {
	return &InstructorRepository{
		db: db,
		sb: newStatementBuilder(),
	}
}

// Create inserts an instructor and sets its ID
func (r *InstructorRepository) Create(ctx context.Context, instructor *models.Instructor) (int64, error) {
	sql, args, err := r.sb.Insert(models.TableInstructors).
		Columns("first_name", "last_name", "hire_date").
		Values(instructor.FirstName, instructor.LastName, instructor.HireDate).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.FromContext(ctx).Error().Err(err).Msg("Error building create instructor SQL")
		return 0, fmt.Errorf("failed to build create instructor query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&instructor.ID); err != nil {
		logger.FromContext(ctx).Error().Err(err).Str("lastName", instructor.LastName).Msg("Error executing create instructor query")
		return 0, fmt.Errorf("error creating instructor: %w", err)
	}

	return instructor.ID, nil
}

// GetByID retrieves an instructor by ID
func (r *InstructorRepository) GetByID(ctx context.Context, id int64) (*models.Instructor, error) {
	sql, args, err := r.sb.Select(instructorColumns...).
		From(models.TableInstructors + " i").
		Where(squirrel.Eq{"i.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.FromContext(ctx).Error().Err(err).Msg("Error building get instructor by ID SQL")
		return nil, fmt.Errorf("failed to build get instructor query: %w", err)
	}

	instructor := &models.Instructor{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&instructor.ID, &instructor.FirstName, &instructor.LastName, &instructor.HireDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrInstructorNotFound
		}
		logger.FromContext(ctx).Error().Err(err).Int64("instructorID", id).Msg("Error scanning instructor row")
		return nil, fmt.Errorf("error getting instructor by ID: %w", err)
	}

	return instructor, nil
}

// GetAll retrieves every instructor ordered by id
func (r *InstructorRepository) GetAll(ctx context.Context) ([]*models.Instructor, error) {
	return r.Find(ctx, InstructorFilter{})
}

// Find retrieves the instructors matching filter ordered by id
func (r *InstructorRepository) Find(ctx context.Context, filter InstructorFilter) ([]*models.Instructor, error) {
	query := r.sb.Select(instructorColumns...).From(models.TableInstructors + " i")
	sql, args, err := applyConditions(query, filter.Conditions()).
		OrderBy("i.id ASC").
		ToSql()
	if err != nil {
		logger.FromContext(ctx).Error().Err(err).Msg("Error building find instructors SQL")
		return nil, fmt.Errorf("failed to build find instructors query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.FromContext(ctx).Error().Err(err).Msg("Error executing find instructors query")
		return nil, fmt.Errorf("error querying instructors: %w", err)
	}
	defer rows.Close()

	instructors := []*models.Instructor{}
	for rows.Next() {
		instructor := &models.Instructor{}
		if err := rows.Scan(&instructor.ID, &instructor.FirstName, &instructor.LastName, &instructor.HireDate); err != nil {
			logger.FromContext(ctx).Error().Err(err).Msg("Error scanning instructor row")
			return nil, fmt.Errorf("error scanning instructor row: %w", err)
		}
		instructors = append(instructors, instructor)
	}

	if err := rows.Err(); err != nil {
		logger.FromContext(ctx).Error().Err(err).Msg("Error iterating instructor rows")
		return nil, fmt.Errorf("error iterating instructor rows: %w", err)
	}

	return instructors, nil
}
