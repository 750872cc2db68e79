package models

import (
	"time"

	"gorm.io/gorm"
)

// EnterpriseCourseAccess grants an enterprise account access to a course.
// Admin assigned; bounds which courses the enterprise may hand to employees.
type EnterpriseCourseAccess struct {
	gorm.Model
	EnterpriseID uint `json:"enterpriseId" gorm:"index;not null"`
	CourseID     uint `json:"courseId" gorm:"index;not null"`
}

// EmployeeCourseAccess assigns one of the enterprise's courses to an employee.
type EmployeeCourseAccess struct {
	gorm.Model
	EmployeeID uint `json:"employeeId" gorm:"index;not null"`
	CourseID   uint `json:"courseId" gorm:"index;not null"`
	AssignedBy uint `json:"assignedBy"`
}

// EmployeeCourseProgress tracks completion of an assigned course.
type EmployeeCourseProgress struct {
	gorm.Model
	EmployeeID       uint    `json:"employeeId" gorm:"index;not null"`
	CourseID         uint    `json:"courseId" gorm:"index;not null"`
	Progress         float64 `json:"progress" gorm:"default:0"` // percent 0-100
	TimeSpentMinutes int     `json:"timeSpentMinutes" gorm:"default:0"`
}

// EmployeeSessionAttendance records attendance for a session.
type EmployeeSessionAttendance struct {
	gorm.Model
	EmployeeID uint       `json:"employeeId" gorm:"index;not null"`
	SessionID  uint       `json:"sessionId" gorm:"index;not null"`
	Attended   bool       `json:"attended" gorm:"default:false"`
	JoinedAt   *time.Time `json:"joinedAt"`
	LeftAt     *time.Time `json:"leftAt"`
}
