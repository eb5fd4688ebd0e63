package models

import "time"

// ApprovalNotification is one notification recipient of a reservation,
// keyed by the reservation's issue number and an approval-sequence slot
// (always "0", the pre-approval stage). Recipient name, department and mail
// address are snapshotted from the employee row at write time. The whole
// recipient set of an issue is replaced on every reservation upsert and
// removed when the reservation is deleted.
type ApprovalNotification struct {
	ID                 uint      `json:"id" gorm:"primaryKey"`
	IssueNo            string    `json:"issueNo" gorm:"column:issue_no;size:50;not null;uniqueIndex:idx_noti_tuple,priority:1"`
	ApprovalSeq        string    `json:"approvalSeq" gorm:"size:10;not null;default:0;uniqueIndex:idx_noti_tuple,priority:2"`
	ApprovalReq        string    `json:"approvalReq" gorm:"size:10;not null;default:1"`
	NotiUserID         string    `json:"notiUserId" gorm:"column:noti_user_id;size:30;not null;uniqueIndex:idx_noti_tuple,priority:3"`
	NotiUserName       string    `json:"notiUserName" gorm:"size:50;not null"`
	NotiUserDeptCode   string    `json:"notiUserDeptCode" gorm:"size:20;not null"`
	NotiUserDeptName   string    `json:"notiUserDeptName" gorm:"size:50;not null"`
	NotiSingleMailAddr string    `json:"notiSingleMailAddr" gorm:"size:150;not null"`
	LastUpdateTime     time.Time `json:"lastUpdateTime"`
}

// TableName returns the table name for ApprovalNotification
func (ApprovalNotification) TableName() string {
	return "DDB_APPROVAL_NOTI"
}
