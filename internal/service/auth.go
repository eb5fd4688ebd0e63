package service

import (
	"errors"
	"fmt"
	"strings"

	"openlab-reservation-backend/internal/database/models"
	apperrors "openlab-reservation-backend/internal/errors"
	"openlab-reservation-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// CheckReceptionRequest asks whether an employee may receive reservations on
// a piece of equipment at a site.
type CheckReceptionRequest struct {
	Site     string `json:"site" validate:"required"`
	EqpName  string `json:"eqpName" validate:"required"`
	AuthType string `json:"authType"`
	EmpNo    string `json:"empNo" validate:"required"`
	SingleID string `json:"singleId" validate:"required"`
}

// AuthUpsertRequest creates one authorization grant
type AuthUpsertRequest struct {
	Site     string `json:"site"`
	EqpName  string `json:"eqpName" validate:"required"`
	AuthType string `json:"authType"`
	EmpNo    string `json:"empNo" validate:"required"`
}

// AuthService handles the authorization table and the reception check
type AuthService struct {
	repo          repository.EquipmentAuthRepositoryInterface
	employeeRepo  repository.EmployeeRepositoryInterface
	equipmentRepo repository.EquipmentRepositoryInterface
	validator     *validator.Validate
}

// NewAuthService creates a new authorization service
func NewAuthService(
	repo repository.EquipmentAuthRepositoryInterface,
	employeeRepo repository.EmployeeRepositoryInterface,
	equipmentRepo repository.EquipmentRepositoryInterface,
) *AuthService {
	return &AuthService{
		repo:          repo,
		employeeRepo:  employeeRepo,
		equipmentRepo: equipmentRepo,
		validator:     validator.New(),
	}
}

// Ensure AuthService implements AuthServiceInterface
var _ AuthServiceInterface = (*AuthService)(nil)

// CheckReception answers the standalone authority probe the client runs
// before opening the reservation dialog.
func (s *AuthService) CheckReception(req *CheckReceptionRequest) (bool, error) {
	if err := s.validator.Struct(req); err != nil {
		return false, apperrors.NewValidationError("", err.Error())
	}

	site := strings.ToUpper(strings.TrimSpace(req.Site))
	eqpName := strings.ToUpper(strings.TrimSpace(req.EqpName))
	authType := string(models.ParseAuthType(req.AuthType))
	empNo := strings.ToUpper(strings.TrimSpace(req.EmpNo))
	singleID := strings.ToLower(strings.TrimSpace(req.SingleID))
	if site == "" || eqpName == "" || empNo == "" || singleID == "" {
		return false, apperrors.NewValidationError("", "site/eqpName/empNo/singleId are required")
	}

	authorized, err := s.repo.HasAuthority(site, eqpName, authType, empNo, singleID)
	if err != nil {
		return false, fmt.Errorf("failed to check reception authority: %w", err)
	}
	return authorized, nil
}

// ListAuthorizations returns grants joined with their holder, filtered by
// site, equipment and kind.
func (s *AuthService) ListAuthorizations(site, eqpName, authType string) ([]repository.AuthRow, error) {
	normalizedSite := models.NormalizeSite(site)
	normalizedEqpName := strings.ToUpper(strings.TrimSpace(eqpName))
	normalizedAuthType := strings.ToUpper(strings.TrimSpace(authType))

	rows, err := s.repo.List(normalizedSite, normalizedEqpName, normalizedAuthType)
	if err != nil {
		return nil, fmt.Errorf("failed to list authorizations: %w", err)
	}
	return rows, nil
}

// CreateAuthorization stores one grant. The holder must exist in the
// directory and the equipment in the catalog. Re-creating an existing grant
// is not an error; the stored row comes back unchanged.
func (s *AuthService) CreateAuthorization(req *AuthUpsertRequest) (*repository.AuthRow, error) {
	site := models.NormalizeSite(req.Site)
	eqpName := strings.ToUpper(strings.TrimSpace(req.EqpName))
	authType := string(models.ParseAuthType(req.AuthType))
	empNo := strings.ToUpper(strings.TrimSpace(req.EmpNo))

	if eqpName == "" || empNo == "" {
		return nil, apperrors.NewValidationError("", "eqpName and empNo are required")
	}

	employee, err := s.employeeRepo.GetByEmpNo(empNo)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewValidationError("empNo", "employee does not exist")
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	exists, err := s.equipmentRepo.ExistsByEqpID(eqpName)
	if err != nil {
		return nil, fmt.Errorf("failed to check equipment: %w", err)
	}
	if !exists {
		return nil, apperrors.NewValidationError("eqpName", "equipment does not exist")
	}

	existing, err := s.repo.GetByTuple(site, eqpName, authType, empNo)
	if err == nil {
		return toAuthRow(existing, employee), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check authorization: %w", err)
	}

	auth := &models.EquipmentAuth{
		Site:     site,
		EqpName:  eqpName,
		AuthType: authType,
		EmpNo:    empNo,
	}
	if err := s.repo.Create(auth); err != nil {
		return nil, fmt.Errorf("failed to create authorization: %w", err)
	}
	return toAuthRow(auth, employee), nil
}

// DeleteAuthorization removes one grant by id
func (s *AuthService) DeleteAuthorization(id uint) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrEquipmentAuthNotFound
		}
		return fmt.Errorf("failed to delete authorization: %w", err)
	}
	return nil
}

func toAuthRow(auth *models.EquipmentAuth, employee *models.Employee) *repository.AuthRow {
	return &repository.AuthRow{
		ID:       auth.ID,
		Site:     auth.Site,
		EqpName:  auth.EqpName,
		AuthType: auth.AuthType,
		EmpNo:    auth.EmpNo,
		UserID:   employee.UserID,
		EmpName:  employee.HName,
		SingleID: employee.SingleID,
		DeptCode: employee.DeptCode,
		DeptName: employee.DeptName,
	}
}
