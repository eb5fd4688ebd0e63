package repository

import (
	"openlab-reservation-backend/internal/database/models"

	"gorm.io/gorm"
)

// SearchHistoryRepository handles database operations for UI search audit rows
type SearchHistoryRepository struct {
	db *gorm.DB
}

// NewSearchHistoryRepository creates a new search-history repository
func NewSearchHistoryRepository(db *gorm.DB) *SearchHistoryRepository {
	return &SearchHistoryRepository{db: db}
}

// Ensure SearchHistoryRepository implements SearchHistoryRepositoryInterface
var _ SearchHistoryRepositoryInterface = (*SearchHistoryRepository)(nil)

// Create stores one audit row
func (r *SearchHistoryRepository) Create(row *models.UISearchHistory) error {
	return r.db.Create(row).Error
}
