package repository

import (
	"openlab-reservation-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// EmployeeRepositoryInterface defines the interface for the employee repository
type EmployeeRepositoryInterface interface {
	GetAll() ([]models.Employee, error)
	GetBySite(site string) ([]models.Employee, error)
	GetByUserID(userID string) (*models.Employee, error)
	GetByEmpNo(empNo string) (*models.Employee, error)
	GetAdminCandidates(site string) ([]AdminCandidateRow, error)
}

// EquipmentRepositoryInterface defines the interface for the equipment repository
type EquipmentRepositoryInterface interface {
	List(lineIDs, classes, types []string) ([]models.Equipment, error)
	GetByID(id uint) (*models.Equipment, error)
	ExistsByEqpID(eqpID string) (bool, error)
	DistinctLines() ([]string, error)
	DistinctClasses(lineIDs []string) ([]string, error)
	ListWithReservationCounts(lineIDs, classes []string) ([]EquipmentCountRow, error)
}

// ReservationRepositoryInterface defines the interface for the reservation repository
type ReservationRepositoryInterface interface {
	List(filter ReservationFilter) ([]models.Reservation, error)
	GetByID(id uint) (*models.Reservation, error)
	IssueNoExists(issueNo string) (bool, error)
	DistinctPurposes() ([]string, error)
	CreateWithRecipients(reservation *models.Reservation, recipients []models.ApprovalNotification) error
	UpdateWithRecipients(reservation *models.Reservation, recipients []models.ApprovalNotification) error
	DeleteWithNotifications(reservation *models.Reservation) error
}

// NotificationRepositoryInterface defines the interface for the approval-notification repository
type NotificationRepositoryInterface interface {
	ListRecipients(issueNo, approvalSeq string) ([]RecipientRow, error)
	ListRecipientUserIDs(issueNo, approvalSeq string) ([]string, error)
	ListForIssueSeq(issueNo, approvalSeq string) ([]models.ApprovalNotification, error)
	ListByIssue(issueNo string) ([]models.ApprovalNotification, error)
	InsertAll(rows []models.ApprovalNotification) error
}

// EquipmentAuthRepositoryInterface defines the interface for the equipment-authorization repository
type EquipmentAuthRepositoryInterface interface {
	HasAuthority(site, eqpName, authType, empNo, singleID string) (bool, error)
	List(site, eqpName, authType string) ([]AuthRow, error)
	GetByTuple(site, eqpName, authType, empNo string) (*models.EquipmentAuth, error)
	Create(auth *models.EquipmentAuth) error
	GetByID(id uint) (*models.EquipmentAuth, error)
	Delete(id uint) error
}

// SearchHistoryRepositoryInterface defines the interface for the UI search-history repository
type SearchHistoryRepositoryInterface interface {
	Create(row *models.UISearchHistory) error
}

// DataAgentInterface runs raw lookup queries for the datainfo dispatch
// endpoint and returns them in the generic columns/rows wire shape.
type DataAgentInterface interface {
	Fill(query string, args ...interface{}) (*DataTable, error)
}
