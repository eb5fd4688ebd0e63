package repository

import (
	"strings"

	"openlab-reservation-backend/internal/database/models"

	"gorm.io/gorm"
)

// EquipmentRepository handles database operations for the equipment catalog
type EquipmentRepository struct {
	db *gorm.DB
}

// NewEquipmentRepository creates a new equipment repository
func NewEquipmentRepository(db *gorm.DB) *EquipmentRepository {
	return &EquipmentRepository{db: db}
}

// Ensure EquipmentRepository implements EquipmentRepositoryInterface
var _ EquipmentRepositoryInterface = (*EquipmentRepository)(nil)

// List returns catalog rows matching the given line, class and type filters.
// Filter values are matched case-insensitively; empty slices match everything.
func (r *EquipmentRepository) List(lineIDs, classes, types []string) ([]models.Equipment, error) {
	query := r.db.Model(&models.Equipment{})
	if len(lineIDs) > 0 {
		query = query.Where("UPPER(line_id) IN ?", upperAll(lineIDs))
	}
	if len(classes) > 0 {
		query = query.Where("UPPER(large_class) IN ?", upperAll(classes))
	}
	if len(types) > 0 {
		query = query.Where("UPPER(eqp_type) IN ?", upperAll(types))
	}

	var equipments []models.Equipment
	err := query.Order("line_id ASC, large_class ASC, eqp_id ASC").Find(&equipments).Error
	return equipments, err
}

// GetByID retrieves a single equipment row by primary key
func (r *EquipmentRepository) GetByID(id uint) (*models.Equipment, error) {
	var equipment models.Equipment
	err := r.db.First(&equipment, id).Error
	if err != nil {
		return nil, err
	}
	return &equipment, nil
}

// ExistsByEqpID reports whether an equipment id is present in the catalog
func (r *EquipmentRepository) ExistsByEqpID(eqpID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Equipment{}).
		Where("UPPER(eqp_id) = ?", strings.ToUpper(eqpID)).
		Count(&count).Error
	return count > 0, err
}

// DistinctLines returns the sorted distinct line ids of the catalog
func (r *EquipmentRepository) DistinctLines() ([]string, error) {
	var lines []string
	err := r.db.Model(&models.Equipment{}).
		Distinct("line_id").
		Order("line_id ASC").
		Pluck("line_id", &lines).Error
	return lines, err
}

// DistinctClasses returns the sorted distinct large classes, optionally
// restricted to the given lines.
func (r *EquipmentRepository) DistinctClasses(lineIDs []string) ([]string, error) {
	query := r.db.Model(&models.Equipment{})
	if len(lineIDs) > 0 {
		query = query.Where("UPPER(line_id) IN ?", upperAll(lineIDs))
	}

	var classes []string
	err := query.Distinct("large_class").
		Order("large_class ASC").
		Pluck("large_class", &classes).Error
	return classes, err
}

// ListWithReservationCounts returns catalog rows with the number of
// reservations held against each, matched on the denormalized eqp_id.
func (r *EquipmentRepository) ListWithReservationCounts(lineIDs, classes []string) ([]EquipmentCountRow, error) {
	query := r.db.Model(&models.Equipment{}).
		Select(`"DDB_EQUIPMENT_MST".id, "DDB_EQUIPMENT_MST".line_id, "DDB_EQUIPMENT_MST".large_class,
			"DDB_EQUIPMENT_MST".eqp_type, "DDB_EQUIPMENT_MST".eqp_id, "DDB_EQUIPMENT_MST".eqp_group_name,
			COUNT(resv.id) AS reservation_count`).
		Joins(`LEFT JOIN "DDB_EQUIPMENT_RESV" resv ON resv.eqp_id = "DDB_EQUIPMENT_MST".eqp_id`).
		Group(`"DDB_EQUIPMENT_MST".id, "DDB_EQUIPMENT_MST".line_id, "DDB_EQUIPMENT_MST".large_class,
			"DDB_EQUIPMENT_MST".eqp_type, "DDB_EQUIPMENT_MST".eqp_id, "DDB_EQUIPMENT_MST".eqp_group_name`)
	if len(lineIDs) > 0 {
		query = query.Where(`UPPER("DDB_EQUIPMENT_MST".line_id) IN ?`, upperAll(lineIDs))
	}
	if len(classes) > 0 {
		query = query.Where(`UPPER("DDB_EQUIPMENT_MST".large_class) IN ?`, upperAll(classes))
	}

	var rows []EquipmentCountRow
	err := query.Order(`"DDB_EQUIPMENT_MST".line_id ASC, "DDB_EQUIPMENT_MST".eqp_id ASC`).Scan(&rows).Error
	return rows, err
}

func upperAll(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.ToUpper(v)
	}
	return out
}
