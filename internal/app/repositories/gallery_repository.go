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

// GalleryRepository handles gallery database operations
type GalleryRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewGalleryRepository creates a new GalleryRepository
func NewGalleryRepository(db *pgxpool.Pool) *GalleryRepository {
	return &GalleryRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// FindByID retrieves a gallery image by ID
func (r *GalleryRepository) FindByID(ctx context.Context, id int64) (*models.Gallery, error) {
	sql, args, err := r.sb.Select("id", "title", "description", "photo", "created_at").
		From("gallery").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build find gallery query: %w", err)
	}

	item := &models.Gallery{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&item.ID, &item.Title, &item.Description, &item.Photo, &item.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		logger.Error().Err(err).Int64("galleryID", id).Msg("Error scanning gallery row")
		return nil, fmt.Errorf("error getting gallery item by ID: %w", err)
	}

	return item, nil
}

// FindAll retrieves all gallery images
func (r *GalleryRepository) FindAll(ctx context.Context) ([]models.Gallery, error) {
	sql, args, err := r.sb.Select("id", "title", "description", "photo", "created_at").
		From("gallery").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list gallery query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list gallery query")
		return nil, fmt.Errorf("error querying gallery: %w", err)
	}
	defer rows.Close()

	items := []models.Gallery{}
	for rows.Next() {
		var item models.Gallery
		if err := rows.Scan(&item.ID, &item.Title, &item.Description, &item.Photo, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning gallery row: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating gallery rows: %w", err)
	}

	return items, nil
}

// Create inserts a gallery image and returns it with the generated id and
// creation timestamp filled in. The photo URL must already be set.
func (r *GalleryRepository) Create(ctx context.Context, item *models.Gallery) (*models.Gallery, error) {
	sql, args, err := r.sb.Insert("gallery").
		Columns("title", "description", "photo").
		Values(item.Title, item.Description, item.Photo).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build create gallery query: %w", err)
	}

	created := *item
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&created.ID, &created.CreatedAt); err != nil {
		logger.Error().Err(err).Msg("Error executing create gallery query")
		return nil, fmt.Errorf("error creating gallery item: %w", err)
	}

	return &created, nil
}

// DeleteByID removes a gallery image by ID. The remote photo stays on the
// media host; records and uploads are intentionally not coupled.
func (r *GalleryRepository) DeleteByID(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("gallery").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete gallery query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("galleryID", id).Msg("Error executing delete gallery query")
		return fmt.Errorf("error deleting gallery item: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}
