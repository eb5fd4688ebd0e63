package service

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"
	"time"

	"openlab-reservation-backend/internal/database/models"
	apperrors "openlab-reservation-backend/internal/errors"
	"openlab-reservation-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ReservationListRequest carries the parsed grid filters
type ReservationListRequest struct {
	LineIDs         []string
	Classes         []string
	PurposeContains string
	Site            string
}

// ReservationUpsertRequest is the payload for creating or updating a reservation
type ReservationUpsertRequest struct {
	EquipmentID     uint      `json:"equipmentId" validate:"required"`
	EmpName         string    `json:"empName" validate:"required"`
	EmpNum          string    `json:"empNum" validate:"required"`
	ReservedDate    time.Time `json:"reservedDate" validate:"required"`
	Purpose         string    `json:"purpose"`
	Status          string    `json:"status"`
	Site            string    `json:"site"`
	AuthType        string    `json:"authType"`
	SingleID        string    `json:"singleId"`
	ReceiverUserIDs []string  `json:"receiverUserIds"`
}

// ReservationResponse is a reservation plus its current recipient user ids
type ReservationResponse struct {
	ID              uint      `json:"id"`
	IssueNo         string    `json:"issueNo"`
	EquipmentID     uint      `json:"equipmentId"`
	EqpID           string    `json:"eqpId"`
	LineID          string    `json:"lineId"`
	LargeClass      string    `json:"largeClass"`
	EmpName         string    `json:"empName"`
	EmpNum          string    `json:"empNum"`
	ReservedDate    time.Time `json:"reservedDate"`
	Purpose         string    `json:"purpose"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
	ReceiverUserIDs []string  `json:"receiverUserIds"`
}

// ReservationService handles business logic for reservations: the issue
// number lifecycle, the HQ reception gate, the recipient replacement and the
// mail fan-out.
type ReservationService struct {
	repo             repository.ReservationRepositoryInterface
	equipmentRepo    repository.EquipmentRepositoryInterface
	authRepo         repository.EquipmentAuthRepositoryInterface
	employeeRepo     repository.EmployeeRepositoryInterface
	notificationRepo repository.NotificationRepositoryInterface
	mailer           Mailer
	validator        *validator.Validate

	// injectable for deterministic issue numbers in tests
	now        func() time.Time
	randSuffix func() int
}

// NewReservationService creates a new reservation service
func NewReservationService(
	repo repository.ReservationRepositoryInterface,
	equipmentRepo repository.EquipmentRepositoryInterface,
	authRepo repository.EquipmentAuthRepositoryInterface,
	employeeRepo repository.EmployeeRepositoryInterface,
	notificationRepo repository.NotificationRepositoryInterface,
	mailer Mailer,
) *ReservationService {
	return &ReservationService{
		repo:             repo,
		equipmentRepo:    equipmentRepo,
		authRepo:         authRepo,
		employeeRepo:     employeeRepo,
		notificationRepo: notificationRepo,
		mailer:           mailer,
		validator:        validator.New(),
		now:              time.Now,
		randSuffix:       func() int { return 100 + rand.IntN(899) },
	}
}

// Ensure ReservationService implements ReservationServiceInterface
var _ ReservationServiceInterface = (*ReservationService)(nil)

// ListReservations returns the filtered reservation grid
func (s *ReservationService) ListReservations(req ReservationListRequest) ([]models.Reservation, error) {
	filter := repository.ReservationFilter{
		LineIDs:         req.LineIDs,
		Classes:         req.Classes,
		PurposeContains: strings.TrimSpace(req.PurposeContains),
		Site:            req.Site,
	}
	if strings.EqualFold(filter.PurposeContains, models.SiteAll) {
		filter.PurposeContains = ""
	}

	reservations, err := s.repo.List(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	return reservations, nil
}

// GetReservation returns one reservation with its recipient user ids
func (s *ReservationService) GetReservation(id uint) (*ReservationResponse, error) {
	reservation, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrReservationNotFound
		}
		return nil, fmt.Errorf("failed to get reservation: %w", err)
	}

	receivers, err := s.notificationRepo.ListRecipientUserIDs(reservation.IssueNo, models.ApprovalSeqPreApproval)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipients: %w", err)
	}
	return toReservationResponse(reservation, receivers), nil
}

// CreateReservation validates the request, enforces the HQ reception gate,
// generates a fresh issue number, writes the reservation together with its
// recipient set and fires the CREATE mail event.
func (s *ReservationService) CreateReservation(req *ReservationUpsertRequest) (*ReservationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	equipment, err := s.resolveEquipment(req.EquipmentID)
	if err != nil {
		return nil, err
	}
	if err := s.checkReceptionGate(req, equipment); err != nil {
		return nil, err
	}

	issueNo, err := s.generateIssueNo()
	if err != nil {
		return nil, err
	}

	reservation := &models.Reservation{
		IssueNo:      issueNo,
		EquipmentID:  equipment.ID,
		EqpID:        equipment.EqpID,
		LineID:       equipment.LineID,
		LargeClass:   equipment.LargeClass,
		EmpName:      strings.TrimSpace(req.EmpName),
		EmpNum:       strings.TrimSpace(req.EmpNum),
		ReservedDate: req.ReservedDate.UTC(),
		Purpose:      strings.TrimSpace(req.Purpose),
		Status:       models.StatusWaiting,
		CreatedAt:    s.now().UTC(),
	}
	if status := strings.TrimSpace(req.Status); status != "" {
		reservation.Status = status
	}

	recipients, mails, err := s.buildRecipients(issueNo, req.ReceiverUserIDs, reservation.EmpNum)
	if err != nil {
		return nil, err
	}

	if err := s.repo.CreateWithRecipients(reservation, recipients); err != nil {
		return nil, fmt.Errorf("failed to create reservation: %w", err)
	}

	s.dispatchMail(MailMessage{
		IssueNo: issueNo,
		Action:  "CREATE",
		Subject: fmt.Sprintf("[OPENLAB 예약등록] %s", reservation.EqpID),
		To:      mails,
		Body: fmt.Sprintf("%s님이 %s에 %s 예약을 등록했습니다.",
			reservation.EmpName, reservation.ReservedDate.Format("2006-01-02 15:04"), reservation.EqpID),
	})

	return toReservationResponse(reservation, recipientUserIDs(recipients)), nil
}

// UpdateReservation edits an existing reservation in place. The issue number
// never changes; the recipient set is fully replaced.
func (s *ReservationService) UpdateReservation(id uint, req *ReservationUpsertRequest) (*ReservationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	reservation, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrReservationNotFound
		}
		return nil, fmt.Errorf("failed to get reservation: %w", err)
	}

	equipment, err := s.resolveEquipment(req.EquipmentID)
	if err != nil {
		return nil, err
	}
	if err := s.checkReceptionGate(req, equipment); err != nil {
		return nil, err
	}

	reservation.EquipmentID = equipment.ID
	reservation.EqpID = equipment.EqpID
	reservation.LineID = equipment.LineID
	reservation.LargeClass = equipment.LargeClass
	reservation.EmpName = strings.TrimSpace(req.EmpName)
	reservation.EmpNum = strings.TrimSpace(req.EmpNum)
	reservation.ReservedDate = req.ReservedDate.UTC()
	reservation.Purpose = strings.TrimSpace(req.Purpose)
	if status := strings.TrimSpace(req.Status); status != "" {
		reservation.Status = status
	}

	recipients, mails, err := s.buildRecipients(reservation.IssueNo, req.ReceiverUserIDs, reservation.EmpNum)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateWithRecipients(reservation, recipients); err != nil {
		return nil, fmt.Errorf("failed to update reservation: %w", err)
	}

	s.dispatchMail(MailMessage{
		IssueNo: reservation.IssueNo,
		Action:  "UPDATE",
		Subject: fmt.Sprintf("[OPENLAB 예약변경] %s", reservation.EqpID),
		To:      mails,
		Body: fmt.Sprintf("%s님 예약이 변경되었습니다. (%s)",
			reservation.EmpName, reservation.ReservedDate.Format("2006-01-02 15:04")),
	})

	return toReservationResponse(reservation, recipientUserIDs(recipients)), nil
}

// DeleteReservation removes a reservation and all of its notification rows,
// then fires the DELETE mail event to the addresses that were on record.
func (s *ReservationService) DeleteReservation(id uint) error {
	reservation, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrReservationNotFound
		}
		return fmt.Errorf("failed to get reservation: %w", err)
	}

	mails, err := s.departureMailTargets(reservation.IssueNo)
	if err != nil {
		return err
	}

	if err := s.repo.DeleteWithNotifications(reservation); err != nil {
		return fmt.Errorf("failed to delete reservation: %w", err)
	}

	s.dispatchMail(MailMessage{
		IssueNo: reservation.IssueNo,
		Action:  "DELETE",
		Subject: fmt.Sprintf("[OPENLAB 예약취소] %s", reservation.EqpID),
		To:      mails,
		Body:    fmt.Sprintf("%s님의 예약이 취소되었습니다.", reservation.EmpName),
	})

	return nil
}

func (s *ReservationService) resolveEquipment(id uint) (*models.Equipment, error) {
	equipment, err := s.equipmentRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewValidationError("equipmentId", "equipment does not exist")
		}
		return nil, fmt.Errorf("failed to get equipment: %w", err)
	}
	return equipment, nil
}

// checkReceptionGate rejects HQ writes without a matching authorization row.
// Other sites pass through unchecked.
func (s *ReservationService) checkReceptionGate(req *ReservationUpsertRequest, equipment *models.Equipment) error {
	site := models.NormalizeSite(req.Site)
	if site != models.SiteHQ {
		return nil
	}

	empNo := strings.ToUpper(strings.TrimSpace(req.EmpNum))
	singleID := strings.ToLower(strings.TrimSpace(req.SingleID))
	if empNo == "" || singleID == "" {
		return apperrors.ErrReceptionNotAuthorized
	}

	authType := string(models.ParseAuthType(req.AuthType))
	authorized, err := s.authRepo.HasAuthority(site, equipment.EqpID, authType, empNo, singleID)
	if err != nil {
		return fmt.Errorf("failed to check reception authority: %w", err)
	}
	if !authorized {
		return apperrors.ErrReceptionNotAuthorized
	}
	return nil
}

// buildRecipients resolves the desired recipient set for an issue: the
// caller's list plus the requester, deduplicated case-insensitively, each
// member snapshotted from the directory. Unresolvable user ids are dropped.
// Returns the rows to store and the sorted distinct mail addresses.
func (s *ReservationService) buildRecipients(issueNo string, receiverUserIDs []string, requesterEmpNo string) ([]models.ApprovalNotification, []string, error) {
	employees, err := s.employeeRepo.GetAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load employees: %w", err)
	}

	byUserID := make(map[string]models.Employee, len(employees))
	for _, e := range employees {
		byUserID[strings.ToLower(e.UserID)] = e
	}

	seen := make(map[string]struct{})
	var wanted []string
	add := func(userID string) {
		userID = strings.TrimSpace(userID)
		if userID == "" {
			return
		}
		key := strings.ToLower(userID)
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		wanted = append(wanted, userID)
	}

	for _, id := range receiverUserIDs {
		add(id)
	}
	for _, e := range employees {
		if strings.EqualFold(e.EmpNo, strings.TrimSpace(requesterEmpNo)) {
			add(e.UserID)
			break
		}
	}

	stamp := s.now().UTC()
	var rows []models.ApprovalNotification
	mailSet := make(map[string]string)
	for _, userID := range wanted {
		employee, ok := byUserID[strings.ToLower(userID)]
		if !ok {
			continue
		}
		rows = append(rows, models.ApprovalNotification{
			IssueNo:            issueNo,
			ApprovalSeq:        models.ApprovalSeqPreApproval,
			ApprovalReq:        "1",
			NotiUserID:         employee.UserID,
			NotiUserName:       employee.HName,
			NotiUserDeptCode:   employee.DeptCode,
			NotiUserDeptName:   employee.DeptName,
			NotiSingleMailAddr: employee.SingleMailAddr,
			LastUpdateTime:     stamp,
		})
		if mail := strings.TrimSpace(employee.SingleMailAddr); mail != "" {
			mailSet[strings.ToLower(mail)] = mail
		}
	}

	mails := make([]string, 0, len(mailSet))
	for _, mail := range mailSet {
		mails = append(mails, mail)
	}
	sort.Strings(mails)

	return rows, mails, nil
}

// departureMailTargets collects the distinct mail addresses currently on
// record for an issue, all sequences included.
func (s *ReservationService) departureMailTargets(issueNo string) ([]string, error) {
	notifications, err := s.notificationRepo.ListByIssue(issueNo)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	mailSet := make(map[string]string)
	for _, n := range notifications {
		if mail := strings.TrimSpace(n.NotiSingleMailAddr); mail != "" {
			mailSet[strings.ToLower(mail)] = mail
		}
	}
	mails := make([]string, 0, len(mailSet))
	for _, mail := range mailSet {
		mails = append(mails, mail)
	}
	sort.Strings(mails)
	return mails, nil
}

// generateIssueNo produces RESV-<UTC millisecond timestamp>-<3 digit suffix>
// and retries until the candidate is free. Collisions are only possible for
// two writes inside the same millisecond, so the loop terminates quickly.
func (s *ReservationService) generateIssueNo() (string, error) {
	for {
		now := s.now().UTC()
		candidate := fmt.Sprintf("RESV-%s%03d-%03d",
			now.Format("20060102150405"), now.Nanosecond()/int(time.Millisecond), s.randSuffix())

		exists, err := s.repo.IssueNoExists(candidate)
		if err != nil {
			return "", fmt.Errorf("failed to check issue number: %w", err)
		}
		if !exists {
			return candidate, nil
		}
	}
}

// dispatchMail is fire-and-forget: a dispatcher failure never fails the write
func (s *ReservationService) dispatchMail(msg MailMessage) {
	if s.mailer == nil {
		return
	}
	if err := s.mailer.SendReservationEvent(msg); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"issue_no": msg.IssueNo,
			"action":   msg.Action,
		}).Warn("Failed to dispatch reservation mail")
	}
}

func recipientUserIDs(rows []models.ApprovalNotification) []string {
	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.NotiUserID)
	}
	sort.Strings(ids)
	return ids
}

func toReservationResponse(r *models.Reservation, receiverUserIDs []string) *ReservationResponse {
	if receiverUserIDs == nil {
		receiverUserIDs = []string{}
	}
	return &ReservationResponse{
		ID:              r.ID,
		IssueNo:         r.IssueNo,
		EquipmentID:     r.EquipmentID,
		EqpID:           r.EqpID,
		LineID:          r.LineID,
		LargeClass:      r.LargeClass,
		EmpName:         r.EmpName,
		EmpNum:          r.EmpNum,
		ReservedDate:    r.ReservedDate,
		Purpose:         r.Purpose,
		Status:          r.Status,
		CreatedAt:       r.CreatedAt,
		ReceiverUserIDs: receiverUserIDs,
	}
}
