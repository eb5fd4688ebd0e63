package models

// Employee is a row in the personnel master table. The table is imported
// from the HR system and is read-only at runtime.
type Employee struct {
	ID             uint   `json:"id" gorm:"primaryKey"`
	UserID         string `json:"userId" gorm:"column:user_id;size:30;not null;uniqueIndex"`
	EmpNo          string `json:"empNo" gorm:"column:emp_no;size:20;not null;uniqueIndex"`
	HName          string `json:"hName" gorm:"column:h_name;size:50;not null"`
	EName          string `json:"eName" gorm:"column:e_name;size:50;not null"`
	DeptCode       string `json:"deptCode" gorm:"column:dept_code;size:20;not null"`
	DeptName       string `json:"deptName" gorm:"column:dept_name;size:50;not null"`
	SingleID       string `json:"singleId" gorm:"column:single_id;size:100;not null"`
	SingleMailAddr string `json:"singleMailAddr" gorm:"column:single_mail_addr;size:150;not null"`
	Site           string `json:"site" gorm:"size:20;not null;default:HQ"`
}

// TableName returns the table name for Employee
func (Employee) TableName() string {
	return "MST_EMPLOYEE"
}
