package repository

import (
	"openlab-reservation-backend/internal/database/models"

	"gorm.io/gorm"
)

// EmployeeRepository handles database operations for the employee directory
type EmployeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

// Ensure EmployeeRepository implements EmployeeRepositoryInterface
var _ EmployeeRepositoryInterface = (*EmployeeRepository)(nil)

// GetAll returns every employee ordered by Korean name
func (r *EmployeeRepository) GetAll() ([]models.Employee, error) {
	var employees []models.Employee
	err := r.db.Order("h_name ASC").Find(&employees).Error
	return employees, err
}

// GetBySite returns the employees of one site; SiteAll disables the filter.
func (r *EmployeeRepository) GetBySite(site string) ([]models.Employee, error) {
	if site == "" || site == models.SiteAll {
		return r.GetAll()
	}
	var employees []models.Employee
	err := r.db.Where("UPPER(site) = ?", site).Order("h_name ASC").Find(&employees).Error
	return employees, err
}

// GetByUserID retrieves an employee by login id, case-insensitively
func (r *EmployeeRepository) GetByUserID(userID string) (*models.Employee, error) {
	var employee models.Employee
	err := r.db.Where("LOWER(user_id) = LOWER(?)", userID).First(&employee).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

// GetByEmpNo retrieves an employee by personnel number, case-insensitively
func (r *EmployeeRepository) GetByEmpNo(empNo string) (*models.Employee, error) {
	var employee models.Employee
	err := r.db.Where("LOWER(emp_no) = LOWER(?)", empNo).First(&employee).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

// GetAdminCandidates joins employees against ADMIN authorization rows. One
// employee may hold ADMIN on several pieces of equipment, so the same person
// can appear more than once; the service layer deduplicates.
func (r *EmployeeRepository) GetAdminCandidates(site string) ([]AdminCandidateRow, error) {
	query := r.db.Model(&models.Employee{}).
		Select(`"MST_EMPLOYEE".emp_no, "MST_EMPLOYEE".user_id, "MST_EMPLOYEE".h_name,
			"MST_EMPLOYEE".dept_code, "MST_EMPLOYEE".dept_name, "MST_EMPLOYEE".single_id`).
		Joins(`JOIN "DDB_OPENLAB_AUTH" auth ON auth.emp_no = "MST_EMPLOYEE".emp_no`).
		Where("auth.auth_type = ?", string(models.AuthTypeAdmin))
	if site != "" && site != models.SiteAll {
		query = query.Where("UPPER(auth.site) = ?", site)
	}

	var rows []AdminCandidateRow
	err := query.Order(`"MST_EMPLOYEE".h_name ASC`).Scan(&rows).Error
	return rows, err
}
