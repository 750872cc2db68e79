package utils

import (
	"log"
	"time"

	"elms/config"
	"elms/models"

	"github.com/go-resty/resty/v2"
)

// SyncUserToExternal pushes a newly registered user to the configured
// external endpoint. Best effort: callers run it in a goroutine and the
// request carries its own timeout.
func SyncUserToExternal(user models.User) {
	url := config.AppConfig.ExternalSyncURL
	if url == "" {
		return
	}

	client := resty.New().SetTimeout(10 * time.Second)
	resp, err := client.R().
		SetFormData(map[string]string{
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		}).
		Post(url)
	if err != nil {
		log.Printf("Error syncing user to external service: %v", err)
		return
	}
	if resp.IsError() {
		log.Printf("External user sync failed (%d): %s", resp.StatusCode(), resp.String())
		return
	}
	log.Printf("User synced successfully to external server: %s", user.Email)
}
