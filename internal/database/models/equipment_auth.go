package models

// EquipmentAuth records that an employee may reserve (RESV) or administer
// (ADMIN) a piece of equipment at a site. All four key fields are stored
// normalized to upper case; rows are created and deleted, never updated.
type EquipmentAuth struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Site     string `json:"site" gorm:"size:20;not null;uniqueIndex:idx_auth_tuple,priority:1"`
	EqpName  string `json:"eqpName" gorm:"size:30;not null;uniqueIndex:idx_auth_tuple,priority:2"`
	AuthType string `json:"authType" gorm:"size:20;not null;uniqueIndex:idx_auth_tuple,priority:3"`
	EmpNo    string `json:"empNo" gorm:"column:emp_no;size:20;not null;uniqueIndex:idx_auth_tuple,priority:4"`
}

// TableName returns the table name for EquipmentAuth
func (EquipmentAuth) TableName() string {
	return "DDB_OPENLAB_AUTH"
}
