package models

import "gorm.io/gorm"

// CourseAccess grants a user access to a course, created when a COURSE
// payment is approved and removed when it is rejected or refunded.
type CourseAccess struct {
	gorm.Model
	UserID    uint `json:"userId" gorm:"index;not null"`
	CourseID  uint `json:"courseId" gorm:"index;not null"`
	PaymentID uint `json:"paymentId"`
}
