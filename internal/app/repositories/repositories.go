package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all entity repositories
type Repositories struct {
	NewsRepository    *NewsRepository
	FacultyRepository *FacultyRepository
	GalleryRepository *GalleryRepository
}

// NewRepositories creates all repositories over a shared pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		NewsRepository:    NewNewsRepository(db),
		FacultyRepository: NewFacultyRepository(db),
		GalleryRepository: NewGalleryRepository(db),
	}
}
