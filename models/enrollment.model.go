package models

import "gorm.io/gorm"

// Enrollment registers a user for a session. At most one live row per
// (UserID, SessionID) pair; cancelled enrollments are soft deleted so the
// user can re-enroll.
type Enrollment struct {
	gorm.Model
	UserID    uint `json:"userId" gorm:"index;not null"`
	SessionID uint `json:"sessionId" gorm:"index;not null"`
	IsDeleted bool `json:"-" gorm:"default:false"`

	User    *User    `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Session *Session `json:"session,omitempty" gorm:"foreignKey:SessionID"`
}
