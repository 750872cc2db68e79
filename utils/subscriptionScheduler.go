package utils

import (
	"log"
	"time"

	"elms/store"

	"github.com/robfig/cron/v3"
)

// InitializeSubscriptionScheduler sets up the subscription expiry scheduler
func InitializeSubscriptionScheduler() {
	log.Println("[SUBSCRIPTION-SCHEDULER] Initializing subscription scheduler...")

	c := cron.New()

	// Run daily at 9 AM to check expiring subscriptions
	c.AddFunc("0 9 * * *", func() {
		log.Println("[SUBSCRIPTION-SCHEDULER] Running daily subscription check...")
		ProcessExpiringSubscriptions()
		ExpireSubscriptions()
	})

	c.Start()
	log.Println("[SUBSCRIPTION-SCHEDULER] Subscription scheduler started - runs daily at 9 AM")
}

// ProcessExpiringSubscriptions sends reminder emails for subscriptions expiring in 2 days
func ProcessExpiringSubscriptions() {
	now := time.Now()
	twoDaysFromNow := now.AddDate(0, 0, 2)

	users, err := store.S.GetExpiringSubscribers(now, twoDaysFromNow)
	if err != nil {
		log.Printf("[SUBSCRIPTION-SCHEDULER] Error fetching expiring subscriptions: %v", err)
		return
	}

	log.Printf("[SUBSCRIPTION-SCHEDULER] Found %d subscriptions expiring soon", len(users))

	for _, user := range users {
		SendSubscriptionExpiryReminder(user.Email, user.Name, user.SubscriptionEndDate)

		user.ExpiryReminderSent = true
		if err := store.S.UpdateUser(&user); err != nil {
			log.Printf("[SUBSCRIPTION-SCHEDULER] Error marking reminder for user %d: %v", user.ID, err)
			continue
		}
		log.Printf("[SUBSCRIPTION-SCHEDULER] Sent expiry reminder to %s", user.Email)
	}
}

// ExpireSubscriptions deactivates subscriptions whose end date has passed
func ExpireSubscriptions() {
	expired, err := store.S.ExpireSubscriptions(time.Now())
	if err != nil {
		log.Printf("[SUBSCRIPTION-SCHEDULER] Error expiring subscriptions: %v", err)
		return
	}
	if expired > 0 {
		log.Printf("[SUBSCRIPTION-SCHEDULER] Expired %d subscriptions", expired)
	}
}
