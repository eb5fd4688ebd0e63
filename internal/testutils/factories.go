package testutils

import (
	"time"

	"openlab-reservation-backend/internal/database/models"

	"gorm.io/gorm"
)

// NewEmployee builds a directory row with sensible defaults
func NewEmployee(userID, empNo, site string) *models.Employee {
	return &models.Employee{
		UserID:         userID,
		EmpNo:          empNo,
		HName:          "이름-" + userID,
		EName:          "NAME " + userID,
		DeptCode:       "CAS2",
		DeptName:       "CAS2 BOND",
		SingleID:       userID,
		SingleMailAddr: userID + "@samsung.com",
		Site:           site,
	}
}

// NewEquipment builds a catalog row
func NewEquipment(lineID, largeClass, eqpID string) *models.Equipment {
	return &models.Equipment{
		LineID:       lineID,
		LargeClass:   largeClass,
		EqpType:      "TEST_HANDLER",
		EqpID:        eqpID,
		EqpGroupName: eqpID + "-GRP",
	}
}

// NewReservation builds a reservation snapshotting the given equipment
func NewReservation(issueNo string, equipment *models.Equipment, empNum string, reservedDate time.Time) *models.Reservation {
	return &models.Reservation{
		IssueNo:      issueNo,
		EquipmentID:  equipment.ID,
		EqpID:        equipment.EqpID,
		LineID:       equipment.LineID,
		LargeClass:   equipment.LargeClass,
		EmpName:      "요청자-" + empNum,
		EmpNum:       empNum,
		ReservedDate: reservedDate.UTC(),
		Purpose:      "ESD 측정",
		Status:       models.StatusWaiting,
		CreatedAt:    time.Now().UTC(),
	}
}

// NewNotification builds a recipient row for the pre-approval slot
func NewNotification(issueNo string, employee *models.Employee) *models.ApprovalNotification {
	return &models.ApprovalNotification{
		IssueNo:            issueNo,
		ApprovalSeq:        models.ApprovalSeqPreApproval,
		ApprovalReq:        "1",
		NotiUserID:         employee.UserID,
		NotiUserName:       employee.HName,
		NotiUserDeptCode:   employee.DeptCode,
		NotiUserDeptName:   employee.DeptName,
		NotiSingleMailAddr: employee.SingleMailAddr,
		LastUpdateTime:     time.Now().UTC(),
	}
}

// MustCreate inserts the value or panics; test setup only
func MustCreate(db *gorm.DB, value interface{}) {
	if err := db.Create(value).Error; err != nil {
		panic(err)
	}
}
