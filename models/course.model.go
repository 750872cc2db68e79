package models

import "gorm.io/gorm"

// ApprovalStatus enum values (courses, payments use their own set)
const (
	ApprovalPending  = "PENDING"
	ApprovalApproved = "APPROVED"
	ApprovalRejected = "REJECTED"
)

// CourseLevel enum values
const (
	LevelBeginner     = "BEGINNER"
	LevelIntermediate = "INTERMEDIATE"
	LevelAdvanced     = "ADVANCED"
)

// Course is a purchasable/enrollable unit of instruction
type Course struct {
	gorm.Model
	Title          string `json:"title" gorm:"not null"`
	Description    string `json:"description"`
	Level          string `json:"level" gorm:"default:'BEGINNER'"` // BEGINNER, INTERMEDIATE, ADVANCED
	CategoryID     uint   `json:"categoryId" gorm:"index;not null"`
	TrainerID      uint   `json:"trainerId" gorm:"index;not null"`
	Duration       int64  `json:"duration" gorm:"default:0"` // duration in hours
	MaxStudents    int    `json:"maxStudents" gorm:"default:0"`
	ApprovalStatus string `json:"approvalStatus" gorm:"type:varchar(20);default:'PENDING'"` // PENDING, APPROVED, REJECTED
	Price          int64  `json:"price" gorm:"default:0"`                                   // price in cents, 0 = free
	ThumbnailURL   string `json:"thumbnailUrl"`
	IsDeleted      bool   `json:"-" gorm:"default:false"`

	Category *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Trainer  *User     `json:"trainer,omitempty" gorm:"foreignKey:TrainerID"`
}
