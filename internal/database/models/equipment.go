package models

// Equipment is a bookable piece of analytical equipment, tagged with the
// production line it belongs to and its process class. Imported; read-only
// at runtime.
type Equipment struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	LineID       string `json:"lineId" gorm:"column:line_id;size:20;not null"`
	LargeClass   string `json:"largeClass" gorm:"size:20;not null"`
	EqpType      string `json:"eqpType" gorm:"size:50;not null"`
	EqpID        string `json:"eqpId" gorm:"column:eqp_id;size:30;not null;uniqueIndex"`
	EqpGroupName string `json:"eqpGroupName" gorm:"size:50;not null"`

	Reservations []Reservation `json:"-" gorm:"foreignKey:EquipmentID"`
}

// TableName returns the table name for Equipment
func (Equipment) TableName() string {
	return "DDB_EQUIPMENT_MST"
}
