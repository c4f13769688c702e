package model

import "time"

// ErrorLog is the append-only failure sink. Writes to it are best effort.
type ErrorLog struct {
	ErrorLogId       string    `gorm:"primaryKey;size:64" json:"errorlogid"`
	TableName        string    `gorm:"size:64" json:"tableName"`
	Type             string    `gorm:"size:64" json:"type"` // operation name, e.g. addorder
	Error            string    `json:"error"`
	CreatedUserId    string    `gorm:"size:64" json:"createduserid"`
	CreatedTimestamp time.Time `json:"createdtimestamp"`
}
