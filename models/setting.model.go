package models

import "gorm.io/gorm"

// Setting keys
const (
	SettingPlatformFeePercent = "platform_fee_percent"
)

type Setting struct {
	gorm.Model
	Key   string `json:"key" gorm:"unique;not null"`
	Value string `json:"value"`
}
