package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"openlab-reservation-backend/internal/database/models"
	apperrors "openlab-reservation-backend/internal/errors"
	"openlab-reservation-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// ReceiverResponse is one notification recipient as shown in the receiver grid
type ReceiverResponse struct {
	UserID         string `json:"userId"`
	UserName       string `json:"userName"`
	DeptCode       string `json:"deptCode"`
	DeptName       string `json:"deptName"`
	SingleID       string `json:"singleId"`
	EName          string `json:"eName"`
	SingleMailAddr string `json:"singleMailAddr"`
}

// NoticeTemplateRequest copies the recipients of a NOTICE-* template issue
// onto a real issue. ReqAnalType selects the template; AppUserId names the
// approver to leave out; ReqUserId adds the requester.
type NoticeTemplateRequest struct {
	IssueNo     string `json:"issueNo" validate:"required"`
	ReqAnalType string `json:"reqAnalType"`
	ReqUserID   string `json:"reqUserId"`
	AppUserID   string `json:"appUserId"`
	Site        string `json:"site"`
}

// NotificationService handles the recipient grid and the template fan-out
type NotificationService struct {
	repo         repository.NotificationRepositoryInterface
	employeeRepo repository.EmployeeRepositoryInterface
	validator    *validator.Validate
	now          func() time.Time
}

// NewNotificationService creates a new notification service
func NewNotificationService(
	repo repository.NotificationRepositoryInterface,
	employeeRepo repository.EmployeeRepositoryInterface,
) *NotificationService {
	return &NotificationService{
		repo:         repo,
		employeeRepo: employeeRepo,
		validator:    validator.New(),
		now:          time.Now,
	}
}

// Ensure NotificationService implements NotificationServiceInterface
var _ NotificationServiceInterface = (*NotificationService)(nil)

// ListReceivers returns the distinct recipients of one issue and sequence.
// A blank sequence means the pre-approval slot.
func (s *NotificationService) ListReceivers(issueNo, approvalSeq string) ([]ReceiverResponse, error) {
	issueNo = strings.TrimSpace(issueNo)
	if issueNo == "" {
		return nil, apperrors.NewValidationError("issueNo", "issueNo is required")
	}
	approvalSeq = strings.TrimSpace(approvalSeq)
	if approvalSeq == "" {
		approvalSeq = models.ApprovalSeqPreApproval
	}

	rows, err := s.repo.ListRecipients(issueNo, approvalSeq)
	if err != nil {
		return nil, fmt.Errorf("failed to list receivers: %w", err)
	}

	seen := make(map[string]struct{}, len(rows))
	receivers := make([]ReceiverResponse, 0, len(rows))
	for _, row := range rows {
		key := strings.ToLower(row.UserID)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		receivers = append(receivers, ReceiverResponse{
			UserID:         row.UserID,
			UserName:       row.UserName,
			DeptCode:       row.DeptCode,
			DeptName:       row.DeptName,
			SingleID:       row.SingleID,
			EName:          row.EName,
			SingleMailAddr: row.SingleMailAddr,
		})
	}
	return receivers, nil
}

// ApplyNoticeTemplate appends the template's recipients plus the requester to
// an issue, skipping anyone already on it and the named approver. Returns how
// many rows were inserted.
func (s *NotificationService) ApplyNoticeTemplate(req *NoticeTemplateRequest) (int, error) {
	if err := s.validator.Struct(req); err != nil {
		return 0, apperrors.NewValidationError("", err.Error())
	}

	issueNo := strings.TrimSpace(req.IssueNo)
	reqAnalType := strings.TrimSpace(req.ReqAnalType)
	if reqAnalType == "" {
		reqAnalType = "-"
	}
	site := models.NormalizeSite(req.Site)

	templateIssueNo := "NOTICE--"
	if site == models.SiteHQ {
		templateIssueNo = "NOTICE-" + reqAnalType
	}

	templates, err := s.repo.ListForIssueSeq(templateIssueNo, models.ApprovalSeqPreApproval)
	if err != nil {
		return 0, fmt.Errorf("failed to load notice template: %w", err)
	}

	existing, err := s.repo.ListByIssue(issueNo)
	if err != nil {
		return 0, fmt.Errorf("failed to load existing notifications: %w", err)
	}
	onIssue := make(map[string]struct{}, len(existing))
	for _, n := range existing {
		onIssue[strings.ToLower(n.NotiUserID)] = struct{}{}
	}
	taken := func(userID string) bool {
		key := strings.ToLower(userID)
		if _, ok := onIssue[key]; ok {
			return true
		}
		onIssue[key] = struct{}{}
		return false
	}

	approver := strings.TrimSpace(req.AppUserID)
	stamp := s.now().UTC()
	var rows []models.ApprovalNotification
	for _, template := range templates {
		if approver != "" && strings.EqualFold(template.NotiUserID, approver) {
			continue
		}
		if taken(template.NotiUserID) {
			continue
		}
		rows = append(rows, models.ApprovalNotification{
			IssueNo:            issueNo,
			ApprovalSeq:        models.ApprovalSeqPreApproval,
			ApprovalReq:        "1",
			NotiUserID:         template.NotiUserID,
			NotiUserName:       template.NotiUserName,
			NotiUserDeptCode:   template.NotiUserDeptCode,
			NotiUserDeptName:   template.NotiUserDeptName,
			NotiSingleMailAddr: template.NotiSingleMailAddr,
			LastUpdateTime:     stamp,
		})
	}

	if requester := s.resolveRequester(req.ReqUserID); requester != nil && !taken(requester.UserID) {
		rows = append(rows, models.ApprovalNotification{
			IssueNo:            issueNo,
			ApprovalSeq:        models.ApprovalSeqPreApproval,
			ApprovalReq:        "1",
			NotiUserID:         requester.UserID,
			NotiUserName:       requester.HName,
			NotiUserDeptCode:   requester.DeptCode,
			NotiUserDeptName:   requester.DeptName,
			NotiSingleMailAddr: requester.SingleMailAddr,
			LastUpdateTime:     stamp,
		})
	}

	if err := s.repo.InsertAll(rows); err != nil {
		return 0, fmt.Errorf("failed to insert notifications: %w", err)
	}
	return len(rows), nil
}

// resolveRequester finds an employee by login id or personnel number
func (s *NotificationService) resolveRequester(key string) *models.Employee {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil
	}
	if employee, err := s.employeeRepo.GetByUserID(key); err == nil {
		return employee
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if employee, err := s.employeeRepo.GetByEmpNo(key); err == nil {
		return employee
	}
	return nil
}
