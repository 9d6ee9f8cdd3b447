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

// NewsRepository handles news database operations
type NewsRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewNewsRepository creates a new NewsRepository
func NewNewsRepository(db *pgxpool.Pool) *NewsRepository {
	return &NewsRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// FindByID retrieves a news entry by ID
func (r *NewsRepository) FindByID(ctx context.Context, id int64) (*models.News, error) {
	sql, args, err := r.sb.Select("id", "title", "excerpt", "category", "type", "featured", "created_at").
		From("news").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build find news query: %w", err)
	}

	news := &models.News{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&news.ID, &news.Title, &news.Excerpt, &news.Category, &news.Type, &news.Featured, &news.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		logger.Error().Err(err).Int64("newsID", id).Msg("Error scanning news row")
		return nil, fmt.Errorf("error getting news by ID: %w", err)
	}

	return news, nil
}

// FindAll retrieves all news entries in the store's natural order
func (r *NewsRepository) FindAll(ctx context.Context) ([]models.News, error) {
	sql, args, err := r.sb.Select("id", "title", "excerpt", "category", "type", "featured", "created_at").
		From("news").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list news query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list news query")
		return nil, fmt.Errorf("error querying news: %w", err)
	}
	defer rows.Close()

	items := []models.News{}
	for rows.Next() {
		var news models.News
		if err := rows.Scan(&news.ID, &news.Title, &news.Excerpt, &news.Category, &news.Type, &news.Featured, &news.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning news row: %w", err)
		}
		items = append(items, news)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating news rows: %w", err)
	}

	return items, nil
}

// Create inserts a news entry and returns it with the generated id and
// creation timestamp filled in.
func (r *NewsRepository) Create(ctx context.Context, news *models.News) (*models.News, error) {
	sql, args, err := r.sb.Insert("news").
		Columns("title", "excerpt", "category", "type", "featured").
		Values(news.Title, news.Excerpt, news.Category, news.Type, news.Featured).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build create news query: %w", err)
	}

	created := *news
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&created.ID, &created.CreatedAt); err != nil {
		logger.Error().Err(err).Msg("Error executing create news query")
		return nil, fmt.Errorf("error creating news: %w", err)
	}

	return &created, nil
}

// DeleteByID removes a news entry by ID
func (r *NewsRepository) DeleteByID(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("news").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete news query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("newsID", id).Msg("Error executing delete news query")
		return fmt.Errorf("error deleting news: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}
