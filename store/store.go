package store

import (
	"errors"
	"time"

	"elms/models"
)

// ErrNotFound is returned by every implementation when a row is missing.
var ErrNotFound = errors.New("record not found")

// S is the store used by controllers. Set once at boot (or per test).
var S Store

// Use installs the active store implementation.
func Use(s Store) { S = s }

// CourseDetails attaches the derived enrollment count to a course. Category
// and Trainer come preloaded on the embedded course.
type CourseDetails struct {
	models.Course
	EnrollmentCount int64 `json:"enrollmentCount"`
}

// SessionDetails attaches the course and live enrollment count to a session.
type SessionDetails struct {
	models.Session
	EnrollmentCount int64 `json:"enrollmentCount"`
}

// CourseFilter narrows course listings. Zero values mean "any".
type CourseFilter struct {
	ApprovalStatus string
	CategoryID     uint
	TrainerID      uint
	Level          string
	Page           int
	Limit          int
}

// PaymentFilter narrows admin payment listings.
type PaymentFilter struct {
	Status string
	Type   string
	Page   int
	Limit  int
}

// AdminStats is the platform-wide dashboard rollup.
type AdminStats struct {
	TotalUsers       int64 `json:"totalUsers"`
	TotalTrainers    int64 `json:"totalTrainers"`
	TotalCourses     int64 `json:"totalCourses"`
	TotalSessions    int64 `json:"totalSessions"`
	TotalEnrollments int64 `json:"totalEnrollments"`
	PendingCourses   int64 `json:"pendingCourses"`
	PendingPayments  int64 `json:"pendingPayments"`
	TotalRevenue     int64 `json:"totalRevenue"` // cents, APPROVED payments
}

// TrainerStats is the per-trainer dashboard rollup.
type TrainerStats struct {
	TotalCourses     int64 `json:"totalCourses"`
	TotalSessions    int64 `json:"totalSessions"`
	TotalEnrollments int64 `json:"totalEnrollments"`
	TotalEarnings    int64 `json:"totalEarnings"` // cents, sum of TrainerShare over APPROVED payments
}

// MonthRevenue is one row of the monthly revenue rollup.
type MonthRevenue struct {
	Month   string `json:"month"` // YYYY-MM
	Revenue int64  `json:"revenue"`
}

// EmployeeStats aggregates one employee's training activity for the
// enterprise dashboard.
type EmployeeStats struct {
	EmployeeID       uint    `json:"employeeId"`
	Name             string  `json:"name"`
	Email            string  `json:"email"`
	AssignedCourses  int64   `json:"assignedCourses"`
	AvgProgress      float64 `json:"avgProgress"`
	AttendanceRate   float64 `json:"attendanceRate"` // percent of recorded sessions attended
	TimeSpentMinutes int64   `json:"timeSpentMinutes"`
}

// Store is the data-access contract. Two implementations exist (GORM and
// in-memory); both must behave identically for the same call sequence.
type Store interface {
	// Users
	GetUser(id uint) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByResetToken(token string) (*models.User, error)
	GetAllUsers(role string, page, limit int) ([]models.User, int64, error)
	GetEmployees(enterpriseID uint) ([]models.User, error)
	CreateUser(u *models.User) error
	UpdateUser(u *models.User) error
	DeleteUser(id uint) error // cascades owned courses, sessions, enrollments, grants

	// Categories
	GetCategory(id uint) (*models.Category, error)
	GetAllCategories() ([]models.Category, error)
	CreateCategory(cat *models.Category) error
	UpdateCategory(cat *models.Category) error
	DeleteCategory(id uint) error

	// Courses
	GetCourse(id uint) (*models.Course, error)
	GetCourseWithDetails(id uint) (*CourseDetails, error)
	GetAllCourses(f CourseFilter) ([]CourseDetails, int64, error)
	CreateCourse(course *models.Course) error
	UpdateCourse(course *models.Course) error
	DeleteCourse(id uint) error // cascades sessions and enrollments

	// Sessions
	GetSession(id uint) (*models.Session, error)
	GetSessionWithDetails(id uint) (*SessionDetails, error)
	GetSessionsByCourse(courseID uint) ([]SessionDetails, error)
	CreateSession(session *models.Session) error
	UpdateSession(session *models.Session) error
	DeleteSession(id uint) error
	// LockSession pins the session row for the rest of the surrounding
	// Transaction. Serializes the capacity check against concurrent enrolls.
	LockSession(id uint) error

	// Enrollments
	GetEnrollment(userID, sessionID uint) (*models.Enrollment, error)
	GetEnrollmentsByUser(userID uint, page, limit int) ([]models.Enrollment, int64, error)
	GetEnrollmentsBySession(sessionID uint) ([]models.Enrollment, error)
	CountEnrollmentsBySession(sessionID uint) (int64, error)
	CreateEnrollment(e *models.Enrollment) error
	DeleteEnrollment(userID, sessionID uint) error

	// Payments
	GetPayment(id uint) (*models.Payment, error)
	GetAllPayments(f PaymentFilter) ([]models.Payment, int64, error)
	GetPaymentsByUser(userID uint, page, limit int) ([]models.Payment, int64, error)
	CreatePayment(p *models.Payment) error
	UpdatePayment(p *models.Payment) error

	// Plans
	GetPlan(id uint) (*models.Plan, error)
	GetPlanByCode(code string) (*models.Plan, error)
	GetAllPlans() ([]models.Plan, error)
	CreatePlan(p *models.Plan) error

	// Course access grants
	HasCourseAccess(userID, courseID uint) (bool, error)
	CreateCourseAccess(a *models.CourseAccess) error
	DeleteCourseAccess(userID, courseID uint) error

	// Notifications
	CreateNotification(n *models.Notification) error
	GetNotification(id uint) (*models.Notification, error)
	GetNotificationsByUser(userID uint, page, limit int) ([]models.Notification, int64, error)
	CountUnreadNotifications(userID uint) (int64, error)
	MarkNotificationRead(id uint) error
	MarkAllNotificationsRead(userID uint) error

	// Approval requests
	GetApprovalRequest(id uint) (*models.ApprovalRequest, error)
	GetApprovalRequestByItem(itemType string, itemID uint) (*models.ApprovalRequest, error)
	GetAllApprovalRequests(status string, page, limit int) ([]models.ApprovalRequest, int64, error)
	CreateApprovalRequest(r *models.ApprovalRequest) error
	UpdateApprovalRequest(r *models.ApprovalRequest) error

	// Enterprise
	GetEnterpriseCourseAccess(enterpriseID uint) ([]models.EnterpriseCourseAccess, error)
	HasEnterpriseCourseAccess(enterpriseID, courseID uint) (bool, error)
	CreateEnterpriseCourseAccess(a *models.EnterpriseCourseAccess) error
	DeleteEnterpriseCourseAccess(enterpriseID, courseID uint) error
	GetEmployeeCourseAccess(employeeID uint) ([]models.EmployeeCourseAccess, error)
	HasEmployeeCourseAccess(employeeID, courseID uint) (bool, error)
	CreateEmployeeCourseAccess(a *models.EmployeeCourseAccess) error
	DeleteEmployeeCourseAccess(employeeID, courseID uint) error
	UpsertEmployeeCourseProgress(p *models.EmployeeCourseProgress) error
	GetEmployeeCourseProgress(employeeID uint) ([]models.EmployeeCourseProgress, error)
	UpsertEmployeeSessionAttendance(a *models.EmployeeSessionAttendance) error
	GetEnterpriseStats(enterpriseID uint) ([]EmployeeStats, error)

	// Blog
	GetBlogCategory(id uint) (*models.BlogCategory, error)
	GetAllBlogCategories() ([]models.BlogCategory, error)
	CreateBlogCategory(cat *models.BlogCategory) error
	UpdateBlogCategory(cat *models.BlogCategory) error
	DeleteBlogCategory(id uint) error
	GetBlogPost(id uint) (*models.BlogPost, error)
	GetAllBlogPosts(status string, categoryID, authorID uint, page, limit int) ([]models.BlogPost, int64, error)
	CreateBlogPost(p *models.BlogPost) error
	UpdateBlogPost(p *models.BlogPost) error
	DeleteBlogPost(id uint) error
	GetBlogComment(id uint) (*models.BlogComment, error)
	GetCommentsByPost(postID uint, approvedOnly bool) ([]models.BlogComment, error)
	CreateBlogComment(cm *models.BlogComment) error
	UpdateBlogComment(cm *models.BlogComment) error
	DeleteBlogComment(id uint) error

	// Settings
	GetSetting(key string) (*models.Setting, error)
	UpsertSetting(key, value string) error

	// Dashboards and scheduler queries
	GetAdminStats() (*AdminStats, error)
	GetMonthlyRevenue() ([]MonthRevenue, error)
	GetTrainerStats(trainerID uint) (*TrainerStats, error)
	GetExpiringSubscribers(from, to time.Time) ([]models.User, error)
	ExpireSubscriptions(now time.Time) (int64, error)

	// Transaction runs fn against a store whose writes commit atomically.
	// The GORM implementation opens a database transaction; the memory
	// implementation serializes on its mutex.
	Transaction(fn func(tx Store) error) error
}
