package models

import (
	"time"

	"gorm.io/gorm"
)

// Role enum values
const (
	RoleStudent         = "STUDENT"
	RoleTrainer         = "TRAINER"
	RoleAdmin           = "ADMIN"
	RoleEnterprise      = "ENTERPRISE"
	RoleEnterpriseAdmin = "ENTERPRISE_ADMIN"
)

type User struct {
	gorm.Model
	ProfileImage        string     `json:"profileImage" gorm:"default:''"`
	Name                string     `json:"name" gorm:"default:''"`
	Email               string     `json:"email" gorm:"unique;not null"`
	Mobile              string     `json:"mobile" gorm:"default:''"`
	Role                string     `json:"role" gorm:"default:'STUDENT'"` // STUDENT, TRAINER, ADMIN, ENTERPRISE, ENTERPRISE_ADMIN
	Password            string     `json:"-" gorm:"not null"`
	Bio                 string     `json:"bio"`
	IsSubscribed        bool       `json:"isSubscribed" gorm:"default:false"`
	SubscriptionPlanID  *uint      `json:"subscriptionPlanId"`
	SubscriptionEndDate *time.Time `json:"subscriptionEndDate"`
	ExpiryReminderSent  bool       `json:"-" gorm:"default:false"`
	EnterpriseID        *uint      `json:"enterpriseId" gorm:"index"` // self reference to an ENTERPRISE user
	ResetToken          string     `json:"-" gorm:"index"`
	ResetTokenExpiry    *time.Time `json:"-"`
	LastLogin           *time.Time `json:"lastLogin"`
	IsDeleted           bool       `json:"-" gorm:"default:false"`
}
