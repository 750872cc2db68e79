package models

import "gorm.io/gorm"

// Plan codes
const (
	PlanMonthly = "MONTHLY"
	PlanYearly  = "YEARLY"
)

// Plan is the subscription catalog. Subscription payments reference a plan
// explicitly; the plan's duration drives the computed end date.
type Plan struct {
	gorm.Model
	Code         string `json:"code" gorm:"unique;not null"` // MONTHLY, YEARLY
	Name         string `json:"name" gorm:"not null"`
	Price        int64  `json:"price" gorm:"not null"` // cents
	DurationDays int    `json:"durationDays" gorm:"not null"`
	IsActive     bool   `json:"isActive" gorm:"default:true"`
}
