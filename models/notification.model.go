package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Notification types
const (
	NotificationEnrollment   = "ENROLLMENT"
	NotificationCourse       = "COURSE"
	NotificationPayment      = "PAYMENT"
	NotificationSubscription = "SUBSCRIPTION"
	NotificationBlog         = "BLOG"
	NotificationSystem       = "SYSTEM"
)

// Notification is append-only apart from the IsRead toggle. Metadata carries
// entity references (courseId, paymentId, ...) for client deep-links.
type Notification struct {
	gorm.Model
	UserID   uint           `json:"userId" gorm:"index;not null"`
	Message  string         `json:"message" gorm:"not null"`
	Type     string         `json:"type" gorm:"type:varchar(30);default:'SYSTEM'"`
	IsRead   bool           `json:"isRead" gorm:"default:false"`
	Metadata datatypes.JSON `json:"metadata,omitempty"`
}
