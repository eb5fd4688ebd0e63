package repository

import (
	"openlab-reservation-backend/internal/database/models"

	"gorm.io/gorm"
)

// ReservationRepository handles database operations for equipment reservations
type ReservationRepository struct {
	db *gorm.DB
}

// NewReservationRepository creates a new reservation repository
func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

// Ensure ReservationRepository implements ReservationRepositoryInterface
var _ ReservationRepositoryInterface = (*ReservationRepository)(nil)

// List returns the reservation grid for the given filter, ordered by reserved
// date then equipment id.
//
// The site restriction joins the requester's directory row by personnel
// number with an outer join: a reservation whose emp_num no longer resolves
// to an employee stays visible on every site rather than silently vanishing.
func (r *ReservationRepository) List(filter ReservationFilter) ([]models.Reservation, error) {
	query := r.db.Model(&models.Reservation{})
	if len(filter.LineIDs) > 0 {
		query = query.Where(`UPPER("DDB_EQUIPMENT_RESV".line_id) IN ?`, upperAll(filter.LineIDs))
	}
	if len(filter.Classes) > 0 {
		query = query.Where(`UPPER("DDB_EQUIPMENT_RESV".large_class) IN ?`, upperAll(filter.Classes))
	}
	if filter.PurposeContains != "" {
		query = query.Where(`"DDB_EQUIPMENT_RESV".purpose LIKE ?`, "%"+filter.PurposeContains+"%")
	}
	if filter.Site != "" && filter.Site != models.SiteAll {
		query = query.
			Joins(`LEFT JOIN "MST_EMPLOYEE" emp ON emp.emp_no = "DDB_EQUIPMENT_RESV".emp_num`).
			Where("emp.site IS NULL OR UPPER(emp.site) = ?", filter.Site)
	}

	var reservations []models.Reservation
	err := query.
		Order(`"DDB_EQUIPMENT_RESV".reserved_date ASC, "DDB_EQUIPMENT_RESV".eqp_id ASC`).
		Find(&reservations).Error
	return reservations, err
}

// GetByID retrieves a reservation by primary key
func (r *ReservationRepository) GetByID(id uint) (*models.Reservation, error) {
	var reservation models.Reservation
	err := r.db.First(&reservation, id).Error
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}

// IssueNoExists reports whether a generated issue number is already taken
func (r *ReservationRepository) IssueNoExists(issueNo string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Reservation{}).
		Where("issue_no = ?", issueNo).
		Count(&count).Error
	return count > 0, err
}

// DistinctPurposes returns the sorted distinct non-empty purposes on record
func (r *ReservationRepository) DistinctPurposes() ([]string, error) {
	var purposes []string
	err := r.db.Model(&models.Reservation{}).
		Where("purpose <> ''").
		Distinct("purpose").
		Order("purpose ASC").
		Pluck("purpose", &purposes).Error
	return purposes, err
}

// CreateWithRecipients inserts the reservation and its pre-approval recipient
// rows in one transaction. Either both land or neither does.
func (r *ReservationRepository) CreateWithRecipients(reservation *models.Reservation, recipients []models.ApprovalNotification) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(reservation).Error; err != nil {
			return err
		}
		return replaceRecipients(tx, reservation.IssueNo, recipients)
	})
}

// UpdateWithRecipients saves the reservation and replaces its pre-approval
// recipient set in one transaction.
func (r *ReservationRepository) UpdateWithRecipients(reservation *models.Reservation, recipients []models.ApprovalNotification) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(reservation).Error; err != nil {
			return err
		}
		return replaceRecipients(tx, reservation.IssueNo, recipients)
	})
}

// DeleteWithNotifications removes the reservation and every notification row
// carrying its issue number, all sequences included, in one transaction.
func (r *ReservationRepository) DeleteWithNotifications(reservation *models.Reservation) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(reservation).Error; err != nil {
			return err
		}
		return tx.Where("issue_no = ?", reservation.IssueNo).
			Delete(&models.ApprovalNotification{}).Error
	})
}

// replaceRecipients swaps the pre-approval recipient set of one issue.
// Existing seq-0 rows go first so a replay of the same set stays idempotent.
func replaceRecipients(tx *gorm.DB, issueNo string, recipients []models.ApprovalNotification) error {
	err := tx.Where("issue_no = ? AND approval_seq = ?", issueNo, models.ApprovalSeqPreApproval).
		Delete(&models.ApprovalNotification{}).Error
	if err != nil {
		return err
	}
	if len(recipients) == 0 {
		return nil
	}
	return tx.Create(&recipients).Error
}
