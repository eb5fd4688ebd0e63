package seed

import (
	"fmt"
	"time"

	"openlab-reservation-backend/internal/database/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Run loads the development fixture set. Each table is seeded only when it is
// empty, so restarting the server against the same sqlite file is a no-op.
func Run(db *gorm.DB) error {
	if err := seedEmployees(db); err != nil {
		return fmt.Errorf("seed employees: %w", err)
	}
	if err := seedEquipments(db); err != nil {
		return fmt.Errorf("seed equipments: %w", err)
	}
	if err := seedAuthorizations(db); err != nil {
		return fmt.Errorf("seed authorizations: %w", err)
	}
	if err := seedReservations(db); err != nil {
		return fmt.Errorf("seed reservations: %w", err)
	}
	if err := seedNotifications(db); err != nil {
		return fmt.Errorf("seed notifications: %w", err)
	}

	logrus.Info("Development seed data is in place")
	return nil
}

func seedEmployees(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Employee{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	employees := []models.Employee{
		{UserID: "yyj1204", EmpNo: "YYJ1204", HName: "양윤정", EName: "YANG YOONJUNG", DeptCode: "CAS2", DeptName: "CAS2 BOND", SingleID: "yyj1204", SingleMailAddr: "yyj1204@samsung.com", Site: "HQ"},
		{UserID: "kcs0301", EmpNo: "KCS0301", HName: "김철수", EName: "KIM CHULSU", DeptCode: "CAS2", DeptName: "CAS2 BOND", SingleID: "kcs0301", SingleMailAddr: "kcs0301@samsung.com", Site: "HQ"},
		{UserID: "lyh0515", EmpNo: "LYH0515", HName: "이영희", EName: "LEE YOUNGHEE", DeptCode: "CTS6", DeptName: "CTS6 TEST", SingleID: "lyh0515", SingleMailAddr: "lyh0515@samsung.com", Site: "HQ"},
		{UserID: "pdh0922", EmpNo: "PDH0922", HName: "박도현", EName: "PARK DOHYUN", DeptCode: "CTS6", DeptName: "CTS6 TEST", SingleID: "pdh0922", SingleMailAddr: "pdh0922@samsung.com", Site: "HQ"},
		{UserID: "yda0101", EmpNo: "YDA0101", HName: "유다은", EName: "YU DAEUN", DeptCode: "YAS1", DeptName: "YAS1 MOLE", SingleID: "yda0101", SingleMailAddr: "yda0101@samsung.com", Site: "HQ"},
		{UserID: "hqadmin", EmpNo: "ADM0001", HName: "본사관리자", EName: "HQ ADMIN", DeptCode: "HQ", DeptName: "HQ YMS", SingleID: "hqadmin", SingleMailAddr: "hqadmin@samsung.com", Site: "HQ"},
	}
	return db.Create(&employees).Error
}

func seedEquipments(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Equipment{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	equipments := []models.Equipment{
		{LineID: "CAS2", LargeClass: "BOND", EqpType: "WAFER_CHIP_MOUNT", EqpID: "AWB07B2", EqpGroupName: "SDB-30WR"},
		{LineID: "CAS2", LargeClass: "BOND", EqpType: "DIE_ATTACH", EqpID: "CDA03A", EqpGroupName: "DA-800"},
		{LineID: "YAS1", LargeClass: "MOLE", EqpType: "MOLD", EqpID: "YMD02A", EqpGroupName: "MLP-800"},
		{LineID: "YAS1", LargeClass: "MOLE", EqpType: "LASER_MARK", EqpID: "YLM01B", EqpGroupName: "VJ-7510"},
		{LineID: "CTS6", LargeClass: "TEST", EqpType: "TEST_HANDLER", EqpID: "M810A", EqpGroupName: "M810"},
		{LineID: "CTS6", LargeClass: "TEST", EqpType: "TEST_HANDLER", EqpID: "M810B", EqpGroupName: "M810"},
	}
	return db.Create(&equipments).Error
}

func seedAuthorizations(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.EquipmentAuth{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	rows := []models.EquipmentAuth{
		{Site: "HQ", EqpName: "AWB07B2", AuthType: "RESV", EmpNo: "YYJ1204"},
		{Site: "HQ", EqpName: "CDA03A", AuthType: "RESV", EmpNo: "KCS0301"},
		{Site: "HQ", EqpName: "M810A", AuthType: "RESV", EmpNo: "LYH0515"},
		{Site: "HQ", EqpName: "M810B", AuthType: "RESV", EmpNo: "PDH0922"},
		{Site: "HQ", EqpName: "AWB07B2", AuthType: "ADMIN", EmpNo: "ADM0001"},
		{Site: "HQ", EqpName: "M810A", AuthType: "ADMIN", EmpNo: "ADM0001"},
		{Site: "FAB", EqpName: "AWB07B2", AuthType: "RESV", EmpNo: "YYJ1204"},
		{Site: "FAB", EqpName: "CDA03A", AuthType: "RESV", EmpNo: "KCS0301"},
		{Site: "FAB", EqpName: "M810A", AuthType: "RESV", EmpNo: "LYH0515"},
		{Site: "FAB", EqpName: "M810B", AuthType: "RESV", EmpNo: "PDH0922"},
	}
	return db.Create(&rows).Error
}

func seedReservations(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Reservation{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	var equipments []models.Equipment
	if err := db.Find(&equipments).Error; err != nil {
		return err
	}
	byEqpID := make(map[string]models.Equipment, len(equipments))
	for _, e := range equipments {
		byEqpID[e.EqpID] = e
	}

	reservations := []models.Reservation{
		fixtureReservation("RESV-20251204-001", byEqpID["AWB07B2"], "양윤정", "YYJ1204", "2025-12-04", "ESD 측정", models.StatusApproved),
		fixtureReservation("RESV-20251205-001", byEqpID["CDA03A"], "김철수", "KCS0301", "2025-12-05", "P-TURN 점검", models.StatusWaiting),
		fixtureReservation("RESV-20251206-001", byEqpID["M810A"], "이영희", "LYH0515", "2025-12-06", "핸들러 테스트", models.StatusWaiting),
		fixtureReservation("RESV-20251207-001", byEqpID["M810B"], "박도현", "PDH0922", "2025-12-07", "ESD 측정", models.StatusRejected),
	}
	return db.Create(&reservations).Error
}

// seedNotifications stores three purpose templates under NOTICE-* issue keys
// plus a pre-approval recipient set (requester and the HQ admin) for every
// seeded reservation.
func seedNotifications(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.ApprovalNotification{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	var employees []models.Employee
	if err := db.Find(&employees).Error; err != nil {
		return err
	}
	byEmpNo := make(map[string]models.Employee, len(employees))
	byUserID := make(map[string]models.Employee, len(employees))
	for _, e := range employees {
		byEmpNo[e.EmpNo] = e
		byUserID[e.UserID] = e
	}
	// The employee table may hold real data instead of the fixture set, in
	// which case there is no hqadmin to anchor the templates on. Skip rather
	// than fail the whole seed.
	admin, ok := byUserID["hqadmin"]
	if !ok {
		logrus.Warn("Notification seed skipped: hqadmin employee not found")
		return nil
	}

	var reservations []models.Reservation
	if err := db.Find(&reservations).Error; err != nil {
		return err
	}

	rows := []models.ApprovalNotification{
		fixtureNotification("NOTICE-ESD 측정", "0", admin),
		fixtureNotification("NOTICE-P-TURN", "0", admin),
		fixtureNotification("NOTICE--", "0", admin),
	}
	for _, r := range reservations {
		if requester, ok := byEmpNo[r.EmpNum]; ok {
			rows = append(rows, fixtureNotification(r.IssueNo, "1", requester))
		}
		rows = append(rows, fixtureNotification(r.IssueNo, "1", admin))
	}

	seen := make(map[string]struct{}, len(rows))
	deduped := rows[:0]
	for _, row := range rows {
		key := row.IssueNo + "|" + row.ApprovalSeq + "|" + row.NotiUserID
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		deduped = append(deduped, row)
	}

	return db.Create(&deduped).Error
}

func fixtureReservation(issueNo string, equipment models.Equipment, empName, empNum, reservedDate, purpose, status string) models.Reservation {
	day, _ := time.Parse("2006-01-02", reservedDate)
	return models.Reservation{
		IssueNo:      issueNo,
		EquipmentID:  equipment.ID,
		EqpID:        equipment.EqpID,
		LineID:       equipment.LineID,
		LargeClass:   equipment.LargeClass,
		EmpName:      empName,
		EmpNum:       empNum,
		ReservedDate: day.UTC(),
		Purpose:      purpose,
		Status:       status,
		CreatedAt:    time.Now().UTC(),
	}
}

func fixtureNotification(issueNo, approvalReq string, employee models.Employee) models.ApprovalNotification {
	return models.ApprovalNotification{
		IssueNo:            issueNo,
		ApprovalSeq:        models.ApprovalSeqPreApproval,
		ApprovalReq:        approvalReq,
		NotiUserID:         employee.UserID,
		NotiUserName:       employee.HName,
		NotiUserDeptCode:   employee.DeptCode,
		NotiUserDeptName:   employee.DeptName,
		NotiSingleMailAddr: employee.SingleMailAddr,
		LastUpdateTime:     time.Now().UTC(),
	}
}
