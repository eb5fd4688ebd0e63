package models

import "time"

// Reservation is a booking of one piece of equipment. The equipment's id,
// line and class are snapshotted onto the row at write time and are not kept
// in sync with the equipment master afterwards. IssueNo is generated once at
// creation and never changes.
type Reservation struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	IssueNo      string    `json:"issueNo" gorm:"column:issue_no;size:50;not null;uniqueIndex"`
	EquipmentID  uint      `json:"equipmentId" gorm:"not null"`
	EqpID        string    `json:"eqpId" gorm:"column:eqp_id;size:30;not null"`
	LineID       string    `json:"lineId" gorm:"column:line_id;size:20;not null;index:idx_resv_line_class_date,priority:1"`
	LargeClass   string    `json:"largeClass" gorm:"size:20;not null;index:idx_resv_line_class_date,priority:2"`
	EmpName      string    `json:"empName" gorm:"size:30;not null"`
	EmpNum       string    `json:"empNum" gorm:"size:20;not null"`
	ReservedDate time.Time `json:"reservedDate" gorm:"not null;index:idx_resv_line_class_date,priority:3"`
	Purpose      string    `json:"purpose" gorm:"size:200;not null"`
	Status       string    `json:"status" gorm:"size:20;not null;default:대기"`
	CreatedAt    time.Time `json:"createdAt"`

	Equipment *Equipment `json:"-" gorm:"foreignKey:EquipmentID"`
}

// TableName returns the table name for Reservation
func (Reservation) TableName() string {
	return "DDB_EQUIPMENT_RESV"
}
