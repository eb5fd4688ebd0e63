package service

import (
	"fmt"

	"openlab-reservation-backend/internal/database/models"
	"openlab-reservation-backend/internal/repository"
)

// EquipmentService handles catalog reads. Filters arrive as comma-joined
// query values and are split here.
type EquipmentService struct {
	repo repository.EquipmentRepositoryInterface
}

// NewEquipmentService creates a new equipment service
func NewEquipmentService(repo repository.EquipmentRepositoryInterface) *EquipmentService {
	return &EquipmentService{repo: repo}
}

// Ensure EquipmentService implements EquipmentServiceInterface
var _ EquipmentServiceInterface = (*EquipmentService)(nil)

// ListEquipments returns catalog rows matching the filters
func (s *EquipmentService) ListEquipments(lineID, largeClass, eqpType string) ([]models.Equipment, error) {
	equipments, err := s.repo.List(
		models.SplitFilter(lineID),
		models.SplitFilter(largeClass),
		models.SplitFilter(eqpType),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list equipments: %w", err)
	}
	return equipments, nil
}

// ListWithReservationCounts returns catalog rows annotated with how many
// reservations each currently holds.
func (s *EquipmentService) ListWithReservationCounts(lineID, largeClass string) ([]repository.EquipmentCountRow, error) {
	rows, err := s.repo.ListWithReservationCounts(
		models.SplitFilter(lineID),
		models.SplitFilter(largeClass),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list equipments with counts: %w", err)
	}
	return rows, nil
}

// GetLines returns the distinct line ids of the catalog
func (s *EquipmentService) GetLines() ([]string, error) {
	lines, err := s.repo.DistinctLines()
	if err != nil {
		return nil, fmt.Errorf("failed to list lines: %w", err)
	}
	return lines, nil
}

// GetClasses returns the distinct classes, optionally scoped to lines
func (s *EquipmentService) GetClasses(lineID string) ([]string, error) {
	classes, err := s.repo.DistinctClasses(models.SplitFilter(lineID))
	if err != nil {
		return nil, fmt.Errorf("failed to list classes: %w", err)
	}
	return classes, nil
}
