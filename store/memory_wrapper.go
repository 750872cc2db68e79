package store

import (
	"time"

	"elms/models"
)

// Mutex-holding delegations. memCore does the work; these keep every public
// call serialized without the core ever re-locking inside Transaction.

func (s *MemoryStore) GetUser(id uint) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.GetUser(id)
}

func (s *MemoryStore) GetUserByEmail(email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.GetUserByEmail(email)
}

func (s *MemoryStore) GetUserByResetToken(token string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.GetUserByResetToken(token)
}

func (s *MemoryStore) GetAllUsers(role string, page, limit int) ([]models.User, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.GetAllUsers(role, page, limit)
}

func (s *MemoryStore) GetEmployees(enterpriseID uint) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.GetEmployees(enterpriseID)
}

func (s *MemoryStore) CreateUser(u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.CreateUser(u)
}

func (s *MemoryStore) UpdateUser(u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.UpdateUser(u)
}

func (s *MemoryStore) DeleteUser(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.DeleteUser(id)
}

func (s *MemoryStore) GetCategory(id uint) (*models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.GetCategory(id)
}

func (s *MemoryStore) GetAllCategories() ([]models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.GetAllCategories()
}

func (s *MemoryStore) CreateCategory(cat *models.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.CreateCategory(cat)
}

func (s *MemoryStore) UpdateCategory(cat *models.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.UpdateCategory(cat)
}

func (s *MemoryStore) DeleteCategory(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.DeleteCategory(id)
}

func (s *MemoryStore) GetCourse(id uint) (*models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.GetCourse(id)
}

func (s *MemoryStore) GetCourseWithDetails(id uint) (*CourseDetails, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.GetCourseWithDetails(id)
}

func (s *MemoryStore) GetAllCourses(f CourseFilter) ([]CourseDetails, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.GetAllCourses(f)
}

func (s *MemoryStore) CreateCourse(course *models.Course) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.CreateCourse(course)
}

func (s *MemoryStore) UpdateCourse(course *models.Course) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.UpdateCourse(course)
}

func (s *MemoryStore) DeleteCourse(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.DeleteCourse(id)
}

func (s *MemoryStore) GetSession(id uint) (*models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.GetSession(id)
}

func (s *MemoryStore) GetSessionWithDetails(id uint) (*SessionDetails, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.GetSessionWithDetails(id)
}

func (s *MemoryStore) GetSessionsByCourse(courseID uint) ([]SessionDetails, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.GetSessionsByCourse(courseID)
}

func (s *MemoryStore) CreateSession(session *models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.CreateSession(session)
}

func (s *MemoryStore) UpdateSession(session *models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.UpdateSession(session)
}

func (s *MemoryStore) DeleteSession(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.DeleteSession(id)
}

func (s *MemoryStore) LockSession(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.LockSession(id)
}

func (s *MemoryStore) GetEnrollment(userID, sessionID uint) (*models.Enrollment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.GetEnrollment(userID, sessionID)
}

func (s *MemoryStore) GetEnrollmentsByUser(userID uint, page, limit int) ([]models.Enrollment, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.GetEnrollmentsByUser(userID, page, limit)
}

func (s *MemoryStore) GetEnrollmentsBySession(sessionID uint) ([]models.Enrollment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.GetEnrollmentsBySession(sessionID)
}

func (s *MemoryStore) CountEnrollmentsBySession(sessionID uint) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.CountEnrollmentsBySession(sessionID)
}

func (s *MemoryStore) CreateEnrollment(e *models.Enrollment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.CreateEnrollment(e)
}

func (s *MemoryStore) DeleteEnrollment(userID, sessionID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.DeleteEnrollment(userID, sessionID)
}

func (s *MemoryStore) GetPayment(id uint) (*models.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.GetPayment(id)
}

func (s *MemoryStore) GetAllPayments(f PaymentFilter) ([]models.Payment, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.GetAllPayments(f)
}

func (s *MemoryStore) GetPaymentsByUser(userID uint, page, limit int) ([]models.Payment, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.GetPaymentsByUser(userID, page, limit)
}

func (s *MemoryStore) CreatePayment(p *models.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.CreatePayment(p)
}

func (s *MemoryStore) UpdatePayment(p *models.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.UpdatePayment(p)
}

func (s *MemoryStore) GetPlan(id uint) (*models.Plan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.GetPlan(id)
}

func (s *MemoryStore) GetPlanByCode(code string) (*models.Plan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.GetPlanByCode(code)
}

func (s *MemoryStore) GetAllPlans() ([]models.Plan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.GetAllPlans()
}

func (s *MemoryStore) CreatePlan(p *models.Plan) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.CreatePlan(p)
}

func (s *MemoryStore) HasCourseAccess(userID, courseID uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.HasCourseAccess(userID, courseID)
}

func (s *MemoryStore) CreateCourseAccess(a *models.CourseAccess) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.CreateCourseAccess(a)
}

func (s *MemoryStore) DeleteCourseAccess(userID, courseID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.DeleteCourseAccess(userID, courseID)
}

func (s *MemoryStore) CreateNotification(n *models.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.CreateNotification(n)
}

func (s *MemoryStore) GetNotification(id uint) (*models.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.GetNotification(id)
}

func (s *MemoryStore) GetNotificationsByUser(userID uint, page, limit int) ([]models.Notification, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.GetNotificationsByUser(userID, page, limit)
}

func (s *MemoryStore) CountUnreadNotifications(userID uint) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.CountUnreadNotifications(userID)
}

func (s *MemoryStore) MarkNotificationRead(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.MarkNotificationRead(id)
}

func (s *MemoryStore) MarkAllNotificationsRead(userID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.MarkAllNotificationsRead(userID)
}

func (s *MemoryStore) GetApprovalRequest(id uint) (*models.ApprovalRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.GetApprovalRequest(id)
}

func (s *MemoryStore) GetApprovalRequestByItem(itemType string, itemID uint) (*models.ApprovalRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.GetApprovalRequestByItem(itemType, itemID)
}

func (s *MemoryStore) GetAllApprovalRequests(status string, page, limit int) ([]models.ApprovalRequest, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.GetAllApprovalRequests(status, page, limit)
}

func (s *MemoryStore) CreateApprovalRequest(r *models.ApprovalRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.CreateApprovalRequest(r)
}

func (s *MemoryStore) UpdateApprovalRequest(r *models.ApprovalRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.UpdateApprovalRequest(r)
}

func (s *MemoryStore) GetEnterpriseCourseAccess(enterpriseID uint) ([]models.EnterpriseCourseAccess, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.GetEnterpriseCourseAccess(enterpriseID)
}

func (s *MemoryStore) HasEnterpriseCourseAccess(enterpriseID, courseID uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.HasEnterpriseCourseAccess(enterpriseID, courseID)
}

func (s *MemoryStore) CreateEnterpriseCourseAccess(a *models.EnterpriseCourseAccess) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.CreateEnterpriseCourseAccess(a)
}

func (s *MemoryStore) DeleteEnterpriseCourseAccess(enterpriseID, courseID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.DeleteEnterpriseCourseAccess(enterpriseID, courseID)
}

func (s *MemoryStore) GetEmployeeCourseAccess(employeeID uint) ([]models.EmployeeCourseAccess, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.GetEmployeeCourseAccess(employeeID)
}

func (s *MemoryStore) HasEmployeeCourseAccess(employeeID, courseID uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.HasEmployeeCourseAccess(employeeID, courseID)
}

func (s *MemoryStore) CreateEmployeeCourseAccess(a *models.EmployeeCourseAccess) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.CreateEmployeeCourseAccess(a)
}

func (s *MemoryStore) DeleteEmployeeCourseAccess(employeeID, courseID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.DeleteEmployeeCourseAccess(employeeID, courseID)
}

func (s *MemoryStore) UpsertEmployeeCourseProgress(p *models.EmployeeCourseProgress) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.UpsertEmployeeCourseProgress(p)
}

func (s *MemoryStore) GetEmployeeCourseProgress(employeeID uint) ([]models.EmployeeCourseProgress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.GetEmployeeCourseProgress(employeeID)
}

func (s *MemoryStore) UpsertEmployeeSessionAttendance(a *models.EmployeeSessionAttendance) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.UpsertEmployeeSessionAttendance(a)
}

func (s *MemoryStore) GetEnterpriseStats(enterpriseID uint) ([]EmployeeStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.GetEnterpriseStats(enterpriseID)
}

func (s *MemoryStore) GetBlogCategory(id uint) (*models.BlogCategory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.GetBlogCategory(id)
}

func (s *MemoryStore) GetAllBlogCategories() ([]models.BlogCategory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.GetAllBlogCategories()
}

func (s *MemoryStore) CreateBlogCategory(cat *models.BlogCategory) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.CreateBlogCategory(cat)
}

func (s *MemoryStore) UpdateBlogCategory(cat *models.BlogCategory) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.UpdateBlogCategory(cat)
}

func (s *MemoryStore) DeleteBlogCategory(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.DeleteBlogCategory(id)
}

func (s *MemoryStore) GetBlogPost(id uint) (*models.BlogPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.GetBlogPost(id)
}

func (s *MemoryStore) GetAllBlogPosts(status string, categoryID, authorID uint, page, limit int) ([]models.BlogPost, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.GetAllBlogPosts(status, categoryID, authorID, page, limit)
}

func (s *MemoryStore) CreateBlogPost(p *models.BlogPost) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.CreateBlogPost(p)
}

func (s *MemoryStore) UpdateBlogPost(p *models.BlogPost) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.UpdateBlogPost(p)
}

func (s *MemoryStore) DeleteBlogPost(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.DeleteBlogPost(id)
}

func (s *MemoryStore) GetBlogComment(id uint) (*models.BlogComment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.GetBlogComment(id)
}

func (s *MemoryStore) GetCommentsByPost(postID uint, approvedOnly bool) ([]models.BlogComment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.GetCommentsByPost(postID, approvedOnly)
}

func (s *MemoryStore) CreateBlogComment(cm *models.BlogComment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.CreateBlogComment(cm)
}

func (s *MemoryStore) UpdateBlogComment(cm *models.BlogComment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.UpdateBlogComment(cm)
}

func (s *MemoryStore) DeleteBlogComment(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.DeleteBlogComment(id)
}

func (s *MemoryStore) GetSetting(key string) (*models.Setting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.GetSetting(key)
}

func (s *MemoryStore) UpsertSetting(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.UpsertSetting(key, value)
}

func (s *MemoryStore) GetAdminStats() (*AdminStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.GetAdminStats()
}

func (s *MemoryStore) GetMonthlyRevenue() ([]MonthRevenue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.GetMonthlyRevenue()
}

func (s *MemoryStore) GetTrainerStats(trainerID uint) (*TrainerStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.GetTrainerStats(trainerID)
}

func (s *MemoryStore) GetExpiringSubscribers(from, to time.Time) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.GetExpiringSubscribers(from, to)
}

func (s *MemoryStore) ExpireSubscriptions(now time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.ExpireSubscriptions(now)
}

func (s *MemoryStore) Transaction(fn func(tx Store) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&s.core)
}
