package service

import (
	"openlab-reservation-backend/internal/database/models"
	"openlab-reservation-backend/internal/repository"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/service_mocks.go -package=mocks -exclude_interfaces=Mailer
//go:generate mockgen -destination=mailer_mock_test.go -package=service openlab-reservation-backend/internal/service Mailer

// ReservationServiceInterface defines the interface for reservation operations
type ReservationServiceInterface interface {
	ListReservations(req ReservationListRequest) ([]models.Reservation, error)
	GetReservation(id uint) (*ReservationResponse, error)
	CreateReservation(req *ReservationUpsertRequest) (*ReservationResponse, error)
	UpdateReservation(id uint, req *ReservationUpsertRequest) (*ReservationResponse, error)
	DeleteReservation(id uint) error
}

// AuthServiceInterface defines the interface for authorization operations
type AuthServiceInterface interface {
	CheckReception(req *CheckReceptionRequest) (bool, error)
	ListAuthorizations(site, eqpName, authType string) ([]repository.AuthRow, error)
	CreateAuthorization(req *AuthUpsertRequest) (*repository.AuthRow, error)
	DeleteAuthorization(id uint) error
}

// NotificationServiceInterface defines the interface for notification operations
type NotificationServiceInterface interface {
	ListReceivers(issueNo, approvalSeq string) ([]ReceiverResponse, error)
	ApplyNoticeTemplate(req *NoticeTemplateRequest) (int, error)
}

// EquipmentServiceInterface defines the interface for equipment catalog reads
type EquipmentServiceInterface interface {
	ListEquipments(lineID, largeClass, eqpType string) ([]models.Equipment, error)
	ListWithReservationCounts(lineID, largeClass string) ([]repository.EquipmentCountRow, error)
	GetLines() ([]string, error)
	GetClasses(lineID string) ([]string, error)
}

// EmployeeServiceInterface defines the interface for directory reads
type EmployeeServiceInterface interface {
	ListEmployees(site string) ([]models.Employee, error)
	ListAdminCandidates(site string) ([]AdminCandidateResponse, error)
}

// LookupServiceInterface defines the interface for the page-load aggregate
type LookupServiceInterface interface {
	GetLookups(site string) (*LookupResponse, error)
}

// DataInfoServiceInterface defines the interface for the datainfo dispatch
type DataInfoServiceInterface interface {
	Execute(req *DataInfoRequest) (*repository.DataTable, error)
}

// AuditServiceInterface defines the interface for UI audit writes
type AuditServiceInterface interface {
	SaveSearchHistory(req *SearchHistoryRequest) error
}

// Mailer dispatches reservation event mail. Implementations must be safe to
// call after the surrounding transaction has committed; failures are the
// caller's to swallow, never to propagate into the request.
type Mailer interface {
	SendReservationEvent(msg MailMessage) error
}
