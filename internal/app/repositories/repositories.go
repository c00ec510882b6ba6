package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/yigit/registrar/internal/pkg/logger"
)

// DBTX is the subset of *pgxpool.Pool the repositories need. pgx.Tx satisfies it too.
type DBTX interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// TxStarter is a DBTX that can open transactions, such as *pgxpool.Pool.
type TxStarter interface {
	DBTX
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

// SnapshotTxOptions gives every read in a snapshot the same view of the data.
var SnapshotTxOptions = pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}

// InSnapshot runs fn with repositories bound to one read-only repeatable-read
// transaction. The transaction is committed when fn succeeds and rolled back otherwise.
func InSnapshot(ctx context.Context, db TxStarter, fn func(repos *Repositories) error) error {
	tx, err := db.BeginTx(ctx, SnapshotTxOptions)
	if err != nil {
		return fmt.Errorf("failed to begin snapshot: %w", err)
	}

	if err := fn(NewRepositories(tx)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			logger.FromContext(ctx).Warn().Err(rbErr).Msg("Error rolling back snapshot")
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to end snapshot: %w", err)
	}
	return nil
}

// rowScanner is implemented by both pgx.Row and pgx.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository       *StudentRepository
	CourseRepository        *CourseRepository
	InstructorRepository    *InstructorRepository
	StudentCourseRepository *StudentCourseRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db DBTX) *Repositories {
	return &Repositories{
		StudentRepository:       NewStudentRepository(db),
		CourseRepository:        NewCourseRepository(db),
		InstructorRepository:    NewInstructorRepository(db),
		StudentCourseRepository: NewStudentCourseRepository(db),
	}
}

func newStatementBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// applyConditions adds a WHERE clause only when there is something to filter on
func applyConditions(query squirrel.SelectBuilder, conditions squirrel.And) squirrel.SelectBuilder {
	if len(conditions) == 0 {
		return query
	}
	return query.Where(conditions)
}
