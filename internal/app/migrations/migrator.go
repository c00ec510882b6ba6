package migrations

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
)

const versionsTable = "schema_migrations"

const createVersionsTableSQL = `CREATE TABLE IF NOT EXISTS schema_migrations (
	version VARCHAR(255) PRIMARY KEY,
	applied_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`

// Database is the part of *pgxpool.Pool the migrator uses
type Database interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Migrator applies numbered .sql files once each, recording them in schema_migrations.
type Migrator struct {
	db     Database
	sb     squirrel.StatementBuilderType
	logger zerolog.Logger
}

// NewMigrator creates a Migrator logging under the "migrator" component
func NewMigrator(db Database, lgr zerolog.Logger) *Migrator {
	return &Migrator{
		db:     db,
		sb:     squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		logger: lgr.With().Str("component", "migrator").Logger(),
	}
}

// MigrateFromDirectory runs Migrate over the .sql files in dir.
func (m *Migrator) MigrateFromDirectory(ctx context.Context, dir string) error {
	if info, err := os.Stat(dir); err != nil {
		return fmt.Errorf("migrations directory %s: %w", dir, err)
	} else if !info.IsDir() {
		return fmt.Errorf("migrations path %s is not a directory", dir)
	}

	applied, err := m.Migrate(ctx, os.DirFS(dir))
	if err != nil {
		return err
	}
	m.logger.Info().Int("applied", applied).Str("dir", dir).Msg("Schema up to date")
	return nil
}

// Migrate applies every pending .sql file at the root of fsys in name order and
// returns how many were applied. Each file runs in its own transaction.
func (m *Migrator) Migrate(ctx context.Context, fsys fs.FS) (int, error) {
	names, err := fs.Glob(fsys, "*.sql")
	if err != nil {
		return 0, fmt.Errorf("list migrations: %w", err)
	}
	sort.Strings(names)
	if err := checkVersions(names); err != nil {
		return 0, err
	}

	if _, err := m.db.Exec(ctx, createVersionsTableSQL); err != nil {
		return 0, fmt.Errorf("create %s: %w", versionsTable, err)
	}

	done, err := m.appliedVersions(ctx)
	if err != nil {
		return 0, err
	}

	applied := 0
	for _, name := range names {
		version := migrationVersion(name)
		if done[version] {
			m.logger.Debug().Str("file", name).Msg("Already applied")
			continue
		}

		body, err := fs.ReadFile(fsys, name)
		if err != nil {
			return applied, fmt.Errorf("read migration %s: %w", name, err)
		}
		if err := m.apply(ctx, version, string(body)); err != nil {
			return applied, fmt.Errorf("migration %s: %w", name, err)
		}

		done[version] = true
		applied++
		m.logger.Info().Str("file", name).Str("version", version).Msg("Migration applied")
	}
	return applied, nil
}

func (m *Migrator) appliedVersions(ctx context.Context) (map[string]bool, error) {
	sql, args, err := m.sb.Select("version").From(versionsTable).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build applied versions query: %w", err)
	}

	rows, err := m.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("load applied versions: %w", err)
	}
	defer rows.Close()

	done := make(map[string]bool)
	for rows.Next() {
		var version string
		if err := rows.Scan(&version); err != nil {
			return nil, fmt.Errorf("scan applied version: %w", err)
		}
		done[version] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load applied versions: %w", err)
	}
	return done, nil
}

func (m *Migrator) apply(ctx context.Context, version, body string) error {
	record, args, err := m.sb.Insert(versionsTable).Columns("version").Values(version).ToSql()
	if err != nil {
		return fmt.Errorf("build version insert: %w", err)
	}

	tx, err := m.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}

	if _, err := tx.Exec(ctx, body); err != nil {
		m.rollback(ctx, tx)
		return err
	}
	if _, err := tx.Exec(ctx, record, args...); err != nil {
		m.rollback(ctx, tx)
		return fmt.Errorf("record version: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (m *Migrator) rollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil {
		m.logger.Error().Err(err).Msg("Rollback failed")
	}
}

// checkVersions rejects file sets where two files share a version prefix.
func checkVersions(names []string) error {
	seen := make(map[string]string, len(names))
	for _, name := range names {
		version := migrationVersion(name)
		if prev, ok := seen[version]; ok {
			return fmt.Errorf("migrations %s and %s share version %q", prev, name, version)
		}
		seen[version] = name
	}
	return nil
}

// migrationVersion is the file name up to the first underscore, e.g. "001_init.sql" => "001"
func migrationVersion(name string) string {
	base := strings.TrimSuffix(path.Base(name), ".sql")
	version, _, _ := strings.Cut(base, "_")
	return version
}
