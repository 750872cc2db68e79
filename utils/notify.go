package utils

import (
	"encoding/json"
	"log"

	"elms/models"
	"elms/store"

	"gorm.io/datatypes"
)

// Notify writes an in-app notification. Takes the store explicitly so it can
// participate in a surrounding transaction.
func Notify(s store.Store, userID uint, ntype, message string, meta map[string]interface{}) error {
	n := models.Notification{
		UserID:  userID,
		Type:    ntype,
		Message: message,
	}
	if len(meta) > 0 {
		raw, err := json.Marshal(meta)
		if err != nil {
			log.Printf("Error encoding notification metadata: %v", err)
		} else {
			n.Metadata = datatypes.JSON(raw)
		}
	}
	return s.CreateNotification(&n)
}
