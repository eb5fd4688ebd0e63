package repository

import (
	"openlab-reservation-backend/internal/database/models"

	"gorm.io/gorm"
)

// EquipmentAuthRepository handles database operations for the authorization table
type EquipmentAuthRepository struct {
	db *gorm.DB
}

// NewEquipmentAuthRepository creates a new equipment-authorization repository
func NewEquipmentAuthRepository(db *gorm.DB) *EquipmentAuthRepository {
	return &EquipmentAuthRepository{db: db}
}

// Ensure EquipmentAuthRepository implements EquipmentAuthRepositoryInterface
var _ EquipmentAuthRepositoryInterface = (*EquipmentAuthRepository)(nil)

// HasAuthority reports whether an authorization row exists for the tuple and
// the requester's single_id matches the joined directory credential. All
// inputs are expected pre-normalized (trimmed, site upper-cased).
func (r *EquipmentAuthRepository) HasAuthority(site, eqpName, authType, empNo, singleID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.EquipmentAuth{}).
		Joins(`JOIN "MST_EMPLOYEE" emp ON emp.emp_no = "DDB_OPENLAB_AUTH".emp_no`).
		Where(`UPPER("DDB_OPENLAB_AUTH".site) = ?`, site).
		Where(`UPPER("DDB_OPENLAB_AUTH".eqp_name) = UPPER(?)`, eqpName).
		Where(`"DDB_OPENLAB_AUTH".auth_type = ?`, authType).
		Where(`LOWER("DDB_OPENLAB_AUTH".emp_no) = LOWER(?)`, empNo).
		Where("LOWER(emp.single_id) = LOWER(?)", singleID).
		Count(&count).Error
	return count > 0, err
}

// List returns authorization rows joined with the holder's directory entry.
// Empty filter values match everything; SiteAll disables the site filter.
func (r *EquipmentAuthRepository) List(site, eqpName, authType string) ([]AuthRow, error) {
	query := r.db.Model(&models.EquipmentAuth{}).
		Select(`"DDB_OPENLAB_AUTH".id, "DDB_OPENLAB_AUTH".site, "DDB_OPENLAB_AUTH".eqp_name,
			"DDB_OPENLAB_AUTH".auth_type, "DDB_OPENLAB_AUTH".emp_no,
			emp.user_id, emp.h_name, emp.single_id, emp.dept_code, emp.dept_name`).
		Joins(`JOIN "MST_EMPLOYEE" emp ON emp.emp_no = "DDB_OPENLAB_AUTH".emp_no`)
	if site != "" && site != models.SiteAll {
		query = query.Where(`UPPER("DDB_OPENLAB_AUTH".site) = ?`, site)
	}
	if eqpName != "" {
		query = query.Where(`UPPER("DDB_OPENLAB_AUTH".eqp_name) = UPPER(?)`, eqpName)
	}
	if authType != "" {
		query = query.Where(`"DDB_OPENLAB_AUTH".auth_type = ?`, authType)
	}

	var rows []AuthRow
	err := query.
		Order(`"DDB_OPENLAB_AUTH".site ASC, "DDB_OPENLAB_AUTH".eqp_name ASC, "DDB_OPENLAB_AUTH".auth_type ASC, emp.h_name ASC`).
		Scan(&rows).Error
	return rows, err
}

// GetByTuple retrieves the authorization row matching the full unique tuple
func (r *EquipmentAuthRepository) GetByTuple(site, eqpName, authType, empNo string) (*models.EquipmentAuth, error) {
	var auth models.EquipmentAuth
	err := r.db.
		Where("UPPER(site) = ? AND UPPER(eqp_name) = UPPER(?) AND auth_type = ? AND LOWER(emp_no) = LOWER(?)",
			site, eqpName, authType, empNo).
		First(&auth).Error
	if err != nil {
		return nil, err
	}
	return &auth, nil
}

// Create inserts a new authorization row
func (r *EquipmentAuthRepository) Create(auth *models.EquipmentAuth) error {
	return r.db.Create(auth).Error
}

// GetByID retrieves an authorization row by primary key
func (r *EquipmentAuthRepository) GetByID(id uint) (*models.EquipmentAuth, error) {
	var auth models.EquipmentAuth
	err := r.db.First(&auth, id).Error
	if err != nil {
		return nil, err
	}
	return &auth, nil
}

// Delete removes an authorization row by primary key
func (r *EquipmentAuthRepository) Delete(id uint) error {
	result := r.db.Delete(&models.EquipmentAuth{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
