package repository

import (
	"openlab-reservation-backend/internal/database/models"

	"gorm.io/gorm"
)

// NotificationRepository handles database operations for approval notifications
type NotificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// Ensure NotificationRepository implements NotificationRepositoryInterface
var _ NotificationRepositoryInterface = (*NotificationRepository)(nil)

// ListRecipients returns the stored recipients of one issue and sequence,
// joined against the directory for the live single_id and English name.
// Recipients whose user id no longer resolves to an employee are dropped.
func (r *NotificationRepository) ListRecipients(issueNo, approvalSeq string) ([]RecipientRow, error) {
	var rows []RecipientRow
	err := r.db.Model(&models.ApprovalNotification{}).
		Select(`"DDB_APPROVAL_NOTI".noti_user_id AS user_id,
			"DDB_APPROVAL_NOTI".noti_user_name AS user_name,
			"DDB_APPROVAL_NOTI".noti_user_dept_code AS dept_code,
			"DDB_APPROVAL_NOTI".noti_user_dept_name AS dept_name,
			"DDB_APPROVAL_NOTI".noti_single_mail_addr AS single_mail_addr,
			emp.single_id, emp.e_name`).
		Joins(`JOIN "MST_EMPLOYEE" emp ON emp.user_id = "DDB_APPROVAL_NOTI".noti_user_id`).
		Where(`"DDB_APPROVAL_NOTI".issue_no = ? AND "DDB_APPROVAL_NOTI".approval_seq = ?`, issueNo, approvalSeq).
		Order(`"DDB_APPROVAL_NOTI".noti_user_name ASC`).
		Scan(&rows).Error
	return rows, err
}

// ListRecipientUserIDs returns just the recipient user ids of one issue and
// sequence, ordered for stable output.
func (r *NotificationRepository) ListRecipientUserIDs(issueNo, approvalSeq string) ([]string, error) {
	var ids []string
	err := r.db.Model(&models.ApprovalNotification{}).
		Where("issue_no = ? AND approval_seq = ?", issueNo, approvalSeq).
		Order("noti_user_id ASC").
		Pluck("noti_user_id", &ids).Error
	return ids, err
}

// ListForIssueSeq returns the raw notification rows of one issue and sequence
func (r *NotificationRepository) ListForIssueSeq(issueNo, approvalSeq string) ([]models.ApprovalNotification, error) {
	var rows []models.ApprovalNotification
	err := r.db.Where("issue_no = ? AND approval_seq = ?", issueNo, approvalSeq).
		Order("noti_user_id ASC").
		Find(&rows).Error
	return rows, err
}

// ListByIssue returns every notification row of one issue, all sequences
func (r *NotificationRepository) ListByIssue(issueNo string) ([]models.ApprovalNotification, error) {
	var rows []models.ApprovalNotification
	err := r.db.Where("issue_no = ?", issueNo).
		Order("approval_seq ASC, noti_user_id ASC").
		Find(&rows).Error
	return rows, err
}

// InsertAll stores the given notification rows in one batch
func (r *NotificationRepository) InsertAll(rows []models.ApprovalNotification) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.Create(&rows).Error
}
