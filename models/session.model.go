package models

import (
	"time"

	"gorm.io/gorm"
)

// Session is a scheduled live occurrence of a course
type Session struct {
	gorm.Model
	CourseID        uint      `json:"courseId" gorm:"index;not null"`
	Date            time.Time `json:"date" gorm:"not null"`
	EndDate         time.Time `json:"endDate" gorm:"not null"`
	ZoomLink        string    `json:"zoomLink"`
	RecordingLink   string    `json:"recordingLink"`
	MaxParticipants int       `json:"maxParticipants" gorm:"default:0"` // 0 = bounded by course MaxStudents only
	IsDeleted       bool      `json:"-" gorm:"default:false"`

	Course *Course `json:"course,omitempty" gorm:"foreignKey:CourseID"`
}
