package service

import (
	"fmt"

	"openlab-reservation-backend/internal/database/models"
	"openlab-reservation-backend/internal/repository"
)

// LookupResponse hydrates the client on page load: filter facets plus the
// full catalog and directory.
type LookupResponse struct {
	Lines      []string                       `json:"lines"`
	Classes    []string                       `json:"classes"`
	Purposes   []string                       `json:"purposes"`
	Equipments []repository.EquipmentCountRow `json:"equipments"`
	Employees  []models.Employee              `json:"employees"`
}

// LookupService aggregates the page-load lookups
type LookupService struct {
	equipmentRepo   repository.EquipmentRepositoryInterface
	reservationRepo repository.ReservationRepositoryInterface
	employeeRepo    repository.EmployeeRepositoryInterface
}

// NewLookupService creates a new lookup service
func NewLookupService(
	equipmentRepo repository.EquipmentRepositoryInterface,
	reservationRepo repository.ReservationRepositoryInterface,
	employeeRepo repository.EmployeeRepositoryInterface,
) *LookupService {
	return &LookupService{
		equipmentRepo:   equipmentRepo,
		reservationRepo: reservationRepo,
		employeeRepo:    employeeRepo,
	}
}

// Ensure LookupService implements LookupServiceInterface
var _ LookupServiceInterface = (*LookupService)(nil)

// GetLookups returns the aggregate. The equipment list carries reservation
// counts of zero here; the admin grid fetches live counts separately.
func (s *LookupService) GetLookups(site string) (*LookupResponse, error) {
	normalizedSite := models.NormalizeSite(site)

	lines, err := s.equipmentRepo.DistinctLines()
	if err != nil {
		return nil, fmt.Errorf("failed to list lines: %w", err)
	}
	classes, err := s.equipmentRepo.DistinctClasses(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list classes: %w", err)
	}
	purposes, err := s.reservationRepo.DistinctPurposes()
	if err != nil {
		return nil, fmt.Errorf("failed to list purposes: %w", err)
	}

	equipments, err := s.equipmentRepo.List(nil, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list equipments: %w", err)
	}
	equipmentRows := make([]repository.EquipmentCountRow, 0, len(equipments))
	for _, e := range equipments {
		equipmentRows = append(equipmentRows, repository.EquipmentCountRow{
			ID:           e.ID,
			LineID:       e.LineID,
			LargeClass:   e.LargeClass,
			EqpType:      e.EqpType,
			EqpID:        e.EqpID,
			EqpGroupName: e.EqpGroupName,
		})
	}

	employees, err := s.employeeRepo.GetBySite(normalizedSite)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	return &LookupResponse{
		Lines:      lines,
		Classes:    classes,
		Purposes:   purposes,
		Equipments: equipmentRows,
		Employees:  employees,
	}, nil
}
