package models

import "gorm.io/gorm"

// Category is static reference data for the course taxonomy
type Category struct {
	gorm.Model
	Name string `json:"name" gorm:"unique;not null"`
	Slug string `json:"slug" gorm:"unique;not null"`
}
