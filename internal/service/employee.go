package service

import (
	"fmt"
	"strings"

	"openlab-reservation-backend/internal/database/models"
	"openlab-reservation-backend/internal/repository"
)

// AdminCandidateResponse is one ADMIN holder in the select-input shape the
// shared UI controls expect: key/value plus display columns.
type AdminCandidateResponse struct {
	InputKey   string `json:"inputKey"`
	InputValue string `json:"inputValue"`
	Name       string `json:"name"`
	UserID     string `json:"userId"`
	DeptCode   string `json:"deptCode"`
	DeptName   string `json:"deptName"`
}

// EmployeeService handles directory reads
type EmployeeService struct {
	repo repository.EmployeeRepositoryInterface
}

// NewEmployeeService creates a new employee service
func NewEmployeeService(repo repository.EmployeeRepositoryInterface) *EmployeeService {
	return &EmployeeService{repo: repo}
}

// Ensure EmployeeService implements EmployeeServiceInterface
var _ EmployeeServiceInterface = (*EmployeeService)(nil)

// ListEmployees returns the directory, optionally scoped to one site.
// A blank site means everyone.
func (s *EmployeeService) ListEmployees(site string) ([]models.Employee, error) {
	site = strings.ToUpper(strings.TrimSpace(site))
	var (
		employees []models.Employee
		err       error
	)
	if site == "" {
		employees, err = s.repo.GetAll()
	} else {
		employees, err = s.repo.GetBySite(site)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, nil
}

// ListAdminCandidates returns the employees holding ADMIN authority at a
// site, one entry per person regardless of how many grants they hold.
func (s *EmployeeService) ListAdminCandidates(site string) ([]AdminCandidateResponse, error) {
	normalized := strings.ToUpper(strings.TrimSpace(site))

	rows, err := s.repo.GetAdminCandidates(normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to list admin candidates: %w", err)
	}

	seen := make(map[string]struct{}, len(rows))
	candidates := make([]AdminCandidateResponse, 0, len(rows))
	for _, row := range rows {
		if _, ok := seen[row.EmpNo]; ok {
			continue
		}
		seen[row.EmpNo] = struct{}{}
		candidates = append(candidates, AdminCandidateResponse{
			InputKey:   row.EmpNo,
			InputValue: row.SingleID,
			Name:       row.HName,
			UserID:     row.UserID,
			DeptCode:   row.DeptCode,
			DeptName:   row.DeptName,
		})
	}
	return candidates, nil
}
