package repository

// ReservationFilter narrows the reservation grid. Slice fields are already
// split and deduplicated; empty slices mean "no filter". Site is normalized
// upper-case; "" or "ALL" disables the site restriction.
type ReservationFilter struct {
	LineIDs         []string
	Classes         []string
	PurposeContains string
	Site            string
}

// AdminCandidateRow is one employee joined against an ADMIN authorization row.
// An employee holding ADMIN on several pieces of equipment appears once per
// grant; callers deduplicate by personnel number.
type AdminCandidateRow struct {
	EmpNo    string `json:"empNo" gorm:"column:emp_no"`
	UserID   string `json:"userId" gorm:"column:user_id"`
	HName    string `json:"hName" gorm:"column:h_name"`
	DeptCode string `json:"deptCode" gorm:"column:dept_code"`
	DeptName string `json:"deptName" gorm:"column:dept_name"`
	SingleID string `json:"singleId" gorm:"column:single_id"`
}

// RecipientRow is one stored notification recipient joined back against the
// employee directory for the live credential columns.
type RecipientRow struct {
	UserID         string `json:"userId" gorm:"column:user_id"`
	UserName       string `json:"userName" gorm:"column:user_name"`
	DeptCode       string `json:"deptCode" gorm:"column:dept_code"`
	DeptName       string `json:"deptName" gorm:"column:dept_name"`
	SingleID       string `json:"singleId" gorm:"column:single_id"`
	EName          string `json:"eName" gorm:"column:e_name"`
	SingleMailAddr string `json:"singleMailAddr" gorm:"column:single_mail_addr"`
}

// AuthRow is one authorization row joined against the holder's directory entry.
type AuthRow struct {
	ID       uint   `json:"id" gorm:"column:id"`
	Site     string `json:"site" gorm:"column:site"`
	EqpName  string `json:"eqpName" gorm:"column:eqp_name"`
	AuthType string `json:"authType" gorm:"column:auth_type"`
	EmpNo    string `json:"empNo" gorm:"column:emp_no"`
	UserID   string `json:"userId" gorm:"column:user_id"`
	EmpName  string `json:"empName" gorm:"column:h_name"`
	SingleID string `json:"singleId" gorm:"column:single_id"`
	DeptCode string `json:"deptCode" gorm:"column:dept_code"`
	DeptName string `json:"deptName" gorm:"column:dept_name"`
}

// EquipmentCountRow is one equipment row with its reservation count.
type EquipmentCountRow struct {
	ID               uint   `json:"id" gorm:"column:id"`
	LineID           string `json:"lineId" gorm:"column:line_id"`
	LargeClass       string `json:"largeClass" gorm:"column:large_class"`
	EqpType          string `json:"eqpType" gorm:"column:eqp_type"`
	EqpID            string `json:"eqpId" gorm:"column:eqp_id"`
	EqpGroupName     string `json:"eqpGroupName" gorm:"column:eqp_group_name"`
	ReservationCount int64  `json:"reservationCount" gorm:"column:reservation_count"`
}

// DataTable is the generic columns/rows shape the datainfo dispatch endpoint
// answers with, regardless of which query produced it.
type DataTable struct {
	Columns []string         `json:"columns"`
	Rows    []map[string]any `json:"rows"`
}
