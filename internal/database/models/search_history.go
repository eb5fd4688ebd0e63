package models

import "time"

// UISearchHistory is a fire-and-forget audit row of a user's filter state,
// posted by shared UI controls on search.
type UISearchHistory struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	AppID       string    `json:"appId" gorm:"column:app_id;size:100;not null"`
	ControlID   string    `json:"controlId" gorm:"column:control_id;size:100;not null"`
	UserID      string    `json:"userId" gorm:"column:user_id;size:30;not null"`
	SearchValue string    `json:"searchValue" gorm:"size:2000"`
	SearchTime  time.Time `json:"searchTime"`
}

// TableName returns the table name for UISearchHistory
func (UISearchHistory) TableName() string {
	return "TSP_YMS_UI_SEARCH_HISTORY"
}
