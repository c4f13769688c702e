package utils

import (
	"fmt"
	"log"
	"time"

	"github.com/sampathraj01/Apsara-Cinemas-Backend/database"
	"github.com/sampathraj01/Apsara-Cinemas-Backend/model"
)

// LogError appends a row to the error sink. Best effort: if the sink itself
// is unavailable the failure is only printed, never propagated.
func LogError(tableName, operation string, opErr error, userId string) {
	if opErr == nil {
		return
	}
	if userId == "" {
		userId = "unknown"
	}

	entry := model.ErrorLog{
		ErrorLogId:       fmt.Sprintf("%d", time.Now().UnixNano()),
		TableName:        tableName,
		Type:             operation,
		Error:            opErr.Error(),
		CreatedUserId:    userId,
		CreatedTimestamp: time.Now(),
	}

	db := database.DB
	if db == nil {
		log.Printf("Error sink unavailable for %s/%s: %v", tableName, operation, opErr)
		return
	}
	if err := db.Create(&entry).Error; err != nil {
		log.Printf("Failed to log error for %s/%s: %v", tableName, operation, err)
	}
}
