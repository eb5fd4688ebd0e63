package service

import (
	"fmt"
	"strings"
	"time"

	"openlab-reservation-backend/internal/database/models"
	apperrors "openlab-reservation-backend/internal/errors"
	"openlab-reservation-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// SearchHistoryRequest records the filter state a shared UI control submitted
type SearchHistoryRequest struct {
	AppID       string `json:"appId" validate:"required"`
	ControlID   string `json:"controlId" validate:"required"`
	UserID      string `json:"userId" validate:"required"`
	SearchValue string `json:"searchValue"`
}

// AuditService handles UI audit writes
type AuditService struct {
	repo      repository.SearchHistoryRepositoryInterface
	validator *validator.Validate
	now       func() time.Time
}

// NewAuditService creates a new audit service
func NewAuditService(repo repository.SearchHistoryRepositoryInterface) *AuditService {
	return &AuditService{
		repo:      repo,
		validator: validator.New(),
		now:       time.Now,
	}
}

// Ensure AuditService implements AuditServiceInterface
var _ AuditServiceInterface = (*AuditService)(nil)

// SaveSearchHistory stores one audit row
func (s *AuditService) SaveSearchHistory(req *SearchHistoryRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return apperrors.NewValidationError("", err.Error())
	}

	row := &models.UISearchHistory{
		AppID:       strings.TrimSpace(req.AppID),
		ControlID:   strings.TrimSpace(req.ControlID),
		UserID:      strings.TrimSpace(req.UserID),
		SearchValue: strings.TrimSpace(req.SearchValue),
		SearchTime:  s.now().UTC(),
	}
	if err := s.repo.Create(row); err != nil {
		return fmt.Errorf("failed to save search history: %w", err)
	}
	return nil
}
