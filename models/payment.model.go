package models

import "gorm.io/gorm"

// PaymentType enum values
const (
	PaymentTypeSubscription = "SUBSCRIPTION"
	PaymentTypeCourse       = "COURSE"
	PaymentTypeSession      = "SESSION"
)

// PaymentStatus enum values
const (
	PaymentPending  = "PENDING"
	PaymentApproved = "APPROVED"
	PaymentRejected = "REJECTED"
	PaymentRefunded = "REFUNDED"
)

// Payment records a purchase attempt. Status transitions drive course access
// grants and subscription activation.
type Payment struct {
	gorm.Model
	UserID       uint   `json:"userId" gorm:"index;not null"`
	Reference    string `json:"reference" gorm:"index"` // uuid handed back to the client
	Amount       int64  `json:"amount" gorm:"not null"` // cents
	Type         string `json:"type" gorm:"type:varchar(20);not null"`                   // SUBSCRIPTION, COURSE, SESSION
	Status       string `json:"status" gorm:"type:varchar(20);default:'PENDING';index"` // PENDING, APPROVED, REJECTED, REFUNDED
	PlanID       *uint  `json:"planId"`
	CourseID     *uint  `json:"courseId"`
	SessionID    *uint  `json:"sessionId"`
	TrainerID    *uint  `json:"trainerId"`
	PlatformFee  int64  `json:"platformFee" gorm:"default:0"`
	TrainerShare int64  `json:"trainerShare" gorm:"default:0"`
	ReviewNotes  string `json:"reviewNotes"`
	IsDeleted    bool   `json:"-" gorm:"default:false"`

	User   *User   `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Plan   *Plan   `json:"plan,omitempty" gorm:"foreignKey:PlanID"`
	Course *Course `json:"course,omitempty" gorm:"foreignKey:CourseID"`
}
