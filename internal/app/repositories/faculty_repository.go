package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/adarsh/schoolsite/internal/app/models"
	"github.com/adarsh/schoolsite/internal/pkg/apperrors"
	"github.com/adarsh/schoolsite/internal/pkg/logger"
)

var facultyColumns = []string{
	"id", "name", "position", "qualification", "experience",
	"specializations", "email", "phone", "department", "photo",
}

// FacultyRepository handles faculty database operations
type FacultyRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewFacultyRepository creates a new FacultyRepository
func NewFacultyRepository(db *pgxpool.Pool) *FacultyRepository {
	return &FacultyRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanFaculty(row pgx.Row) (*models.Faculty, error) {
	f := &models.Faculty{}
	err := row.Scan(&f.ID, &f.Name, &f.Position, &f.Qualification, &f.Experience,
		&f.Specializations, &f.Email, &f.Phone, &f.Department, &f.Photo)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// FindByID retrieves a faculty member by ID
func (r *FacultyRepository) FindByID(ctx context.Context, id int64) (*models.Faculty, error) {
	sql, args, err := r.sb.Select(facultyColumns...).
		From("faculty").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build find faculty query: %w", err)
	}

	faculty, err := scanFaculty(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		logger.Error().Err(err).Int64("facultyID", id).Msg("Error scanning faculty row")
		return nil, fmt.Errorf("error getting faculty by ID: %w", err)
	}

	return faculty, nil
}

// FindAll retrieves all faculty members
func (r *FacultyRepository) FindAll(ctx context.Context) ([]models.Faculty, error) {
	sql, args, err := r.sb.Select(facultyColumns...).
		From("faculty").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list faculty query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list faculty query")
		return nil, fmt.Errorf("error querying faculty: %w", err)
	}
	defer rows.Close()

	items := []models.Faculty{}
	for rows.Next() {
		faculty, err := scanFaculty(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning faculty row: %w", err)
		}
		items = append(items, *faculty)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating faculty rows: %w", err)
	}

	return items, nil
}

// Create inserts a faculty member and returns it with the generated id.
// The photo URL must already be set by the caller.
func (r *FacultyRepository) Create(ctx context.Context, faculty *models.Faculty) (*models.Faculty, error) {
	sql, args, err := r.sb.Insert("faculty").
		Columns("name", "position", "qualification", "experience",
			"specializations", "email", "phone", "department", "photo").
		Values(faculty.Name, faculty.Position, faculty.Qualification, faculty.Experience,
			faculty.Specializations, faculty.Email, faculty.Phone, faculty.Department, faculty.Photo).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build create faculty query: %w", err)
	}

	created := *faculty
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&created.ID); err != nil {
		logger.Error().Err(err).Msg("Error executing create faculty query")
		return nil, fmt.Errorf("error creating faculty: %w", err)
	}

	return &created, nil
}

// DeleteByID removes a faculty member by ID
func (r *FacultyRepository) DeleteByID(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("faculty").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete faculty query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("facultyID", id).Msg("Error executing delete faculty query")
		return fmt.Errorf("error deleting faculty: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}
