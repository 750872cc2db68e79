package models

import "gorm.io/gorm"

// ApprovalRequest item types
const (
	ApprovalItemCourse  = "COURSE"
	ApprovalItemSession = "SESSION"
	ApprovalItemPost    = "POST"
)

// ApprovalRequest is the admin review record gating a submitted item.
type ApprovalRequest struct {
	gorm.Model
	Type        string `json:"type" gorm:"type:varchar(20);not null;index:idx_approval_item"` // COURSE, SESSION, POST
	ItemID      uint   `json:"itemId" gorm:"not null;index:idx_approval_item"`
	RequesterID uint   `json:"requesterId" gorm:"index;not null"`
	Status      string `json:"status" gorm:"type:varchar(20);default:'PENDING'"` // PENDING, APPROVED, REJECTED
	ReviewerID  *uint  `json:"reviewerId"`
	Notes       string `json:"notes"`
}
