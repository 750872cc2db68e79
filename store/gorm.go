package store

import (
	"errors"
	"time"

	"elms/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore is the relational implementation of Store.
type GormStore struct {
	db *gorm.DB
}

var _ Store = (*GormStore)(nil)

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func wrapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func offsetOf(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	return (page - 1) * limit, limit
}

// --- Users ---

func (s *GormStore) GetUser(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.Where("id = ? AND is_deleted = ?", id, false).First(&user).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &user, nil
}

func (s *GormStore) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ? AND is_deleted = ?", email, false).First(&user).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &user, nil
}

func (s *GormStore) GetUserByResetToken(token string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("reset_token = ? AND is_deleted = ?", token, false).First(&user).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &user, nil
}

func (s *GormStore) GetAllUsers(role string, page, limit int) ([]models.User, int64, error) {
	offset, limit := offsetOf(page, limit)
	query := s.db.Model(&models.User{}).Where("is_deleted = ?", false)
	if role != "" {
		query = query.Where("role = ?", role)
	}

	var total int64
	query.Count(&total)

	var users []models.User
	if err := query.Offset(offset).Limit(limit).Order("created_at desc").Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (s *GormStore) GetEmployees(enterpriseID uint) ([]models.User, error) {
	var users []models.User
	if err := s.db.Where("enterprise_id = ? AND is_deleted = ?", enterpriseID, false).
		Order("created_at desc").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *GormStore) CreateUser(u *models.User) error {
	return s.db.Create(u).Error
}

func (s *GormStore) UpdateUser(u *models.User) error {
	return s.db.Save(u).Error
}

// DeleteUser soft deletes a user and cascades: a trainer's courses (with
// their sessions and enrollments), the user's own enrollments and grants.
func (s *GormStore) DeleteUser(id uint) error {
	return s.Transaction(func(tx Store) error {
		g := tx.(*GormStore)

		var courses []models.Course
		if err := g.db.Where("trainer_id = ? AND is_deleted = ?", id, false).Find(&courses).Error; err != nil {
			return err
		}
		for _, course := range courses {
			if err := tx.DeleteCourse(course.ID); err != nil {
				return err
			}
		}

		if err := g.db.Model(&models.Enrollment{}).Where("user_id = ?", id).
			Update("is_deleted", true).Error; err != nil {
			return err
		}
		if err := g.db.Where("user_id = ?", id).Delete(&models.CourseAccess{}).Error; err != nil {
			return err
		}
		if err := g.db.Where("employee_id = ?", id).Delete(&models.EmployeeCourseAccess{}).Error; err != nil {
			return err
		}

		return g.db.Model(&models.User{}).Where("id = ?", id).
			Update("is_deleted", true).Error
	})
}

// --- Categories ---

func (s *GormStore) GetCategory(id uint) (*models.Category, error) {
	var cat models.Category
	if err := s.db.First(&cat, id).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &cat, nil
}

func (s *GormStore) GetAllCategories() ([]models.Category, error) {
	var cats []models.Category
	if err := s.db.Order("name asc").Find(&cats).Error; err != nil {
		return nil, err
	}
	return cats, nil
}

func (s *GormStore) CreateCategory(cat *models.Category) error {
	return s.db.Create(cat).Error
}

func (s *GormStore) UpdateCategory(cat *models.Category) error {
	return s.db.Save(cat).Error
}

func (s *GormStore) DeleteCategory(id uint) error {
	return s.db.Delete(&models.Category{}, id).Error
}

// --- Courses ---

func (s *GormStore) GetCourse(id uint) (*models.Course, error) {
	var course models.Course
	if err := s.db.Where("id = ? AND is_deleted = ?", id, false).First(&course).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &course, nil
}

func (s *GormStore) GetCourseWithDetails(id uint) (*CourseDetails, error) {
	var course models.Course
	if err := s.db.Preload("Category").Preload("Trainer").
		Where("id = ? AND is_deleted = ?", id, false).First(&course).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	count, err := s.countCourseEnrollments(course.ID)
	if err != nil {
		return nil, err
	}
	return &CourseDetails{Course: course, EnrollmentCount: count}, nil
}

func (s *GormStore) countCourseEnrollments(courseID uint) (int64, error) {
	var count int64
	err := s.db.Model(&models.Enrollment{}).
		Joins("JOIN sessions ON sessions.id = enrollments.session_id").
		Where("sessions.course_id = ? AND enrollments.is_deleted = ?", courseID, false).
		Count(&count).Error
	return count, err
}

func (s *GormStore) GetAllCourses(f CourseFilter) ([]CourseDetails, int64, error) {
	offset, limit := offsetOf(f.Page, f.Limit)
	query := s.db.Model(&models.Course{}).Where("is_deleted = ?", false)
	if f.ApprovalStatus != "" {
		query = query.Where("approval_status = ?", f.ApprovalStatus)
	}
	if f.CategoryID != 0 {
		query = query.Where("category_id = ?", f.CategoryID)
	}
	if f.TrainerID != 0 {
		query = query.Where("trainer_id = ?", f.TrainerID)
	}
	if f.Level != "" {
		query = query.Where("level = ?", f.Level)
	}

	var total int64
	query.Count(&total)

	var courses []models.Course
	if err := query.Preload("Category").Preload("Trainer").
		Offset(offset).Limit(limit).Order("created_at desc").Find(&courses).Error; err != nil {
		return nil, 0, err
	}

	details := make([]CourseDetails, len(courses))
	for i, course := range courses {
		count, err := s.countCourseEnrollments(course.ID)
		if err != nil {
			return nil, 0, err
		}
		details[i] = CourseDetails{Course: course, EnrollmentCount: count}
	}
	return details, total, nil
}

func (s *GormStore) CreateCourse(course *models.Course) error {
	return s.db.Create(course).Error
}

func (s *GormStore) UpdateCourse(course *models.Course) error {
	return s.db.Save(course).Error
}

func (s *GormStore) DeleteCourse(id uint) error {
	var sessions []models.Session
	if err := s.db.Where("course_id = ? AND is_deleted = ?", id, false).Find(&sessions).Error; err != nil {
		return err
	}
	for _, session := range sessions {
		if err := s.db.Model(&models.Enrollment{}).Where("session_id = ?", session.ID).
			Update("is_deleted", true).Error; err != nil {
			return err
		}
	}
	if err := s.db.Model(&models.Session{}).Where("course_id = ?", id).
		Update("is_deleted", true).Error; err != nil {
		return err
	}
	return s.db.Model(&models.Course{}).Where("id = ?", id).
		Update("is_deleted", true).Error
}

// --- Sessions ---

func (s *GormStore) GetSession(id uint) (*models.Session, error) {
	var session models.Session
	if err := s.db.Where("id = ? AND is_deleted = ?", id, false).First(&session).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &session, nil
}

func (s *GormStore) GetSessionWithDetails(id uint) (*SessionDetails, error) {
	var session models.Session
	if err := s.db.Preload("Course").Preload("Course.Category").Preload("Course.Trainer").
		Where("id = ? AND is_deleted = ?", id, false).First(&session).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	count, err := s.CountEnrollmentsBySession(session.ID)
	if err != nil {
		return nil, err
	}
	return &SessionDetails{Session: session, EnrollmentCount: count}, nil
}

func (s *GormStore) GetSessionsByCourse(courseID uint) ([]SessionDetails, error) {
	var sessions []models.Session
	if err := s.db.Where("course_id = ? AND is_deleted = ?", courseID, false).
		Order("date asc").Find(&sessions).Error; err != nil {
		return nil, err
	}
	details := make([]SessionDetails, len(sessions))
	for i, session := range sessions {
		count, err := s.CountEnrollmentsBySession(session.ID)
		if err != nil {
			return nil, err
		}
		details[i] = SessionDetails{Session: session, EnrollmentCount: count}
	}
	return details, nil
}

func (s *GormStore) CreateSession(session *models.Session) error {
	return s.db.Create(session).Error
}

func (s *GormStore) UpdateSession(session *models.Session) error {
	return s.db.Save(session).Error
}

func (s *GormStore) DeleteSession(id uint) error {
	if err := s.db.Model(&models.Enrollment{}).Where("session_id = ?", id).
		Update("is_deleted", true).Error; err != nil {
		return err
	}
	return s.db.Model(&models.Session{}).Where("id = ?", id).
		Update("is_deleted", true).Error
}

// LockSession takes a row lock so a concurrent enroll on the same session
// blocks until the surrounding transaction commits.
func (s *GormStore) LockSession(id uint) error {
	var session models.Session
	err := s.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ? AND is_deleted = ?", id, false).First(&session).Error
	return wrapNotFound(err)
}

// --- Enrollments ---

func (s *GormStore) GetEnrollment(userID, sessionID uint) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	if err := s.db.Where("user_id = ? AND session_id = ? AND is_deleted = ?", userID, sessionID, false).
		First(&enrollment).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &enrollment, nil
}

func (s *GormStore) GetEnrollmentsByUser(userID uint, page, limit int) ([]models.Enrollment, int64, error) {
	offset, limit := offsetOf(page, limit)
	query := s.db.Model(&models.Enrollment{}).Where("user_id = ? AND is_deleted = ?", userID, false)

	var total int64
	query.Count(&total)

	var enrollments []models.Enrollment
	if err := query.Preload("Session").Preload("Session.Course").
		Offset(offset).Limit(limit).Order("created_at desc").Find(&enrollments).Error; err != nil {
		return nil, 0, err
	}
	return enrollments, total, nil
}

func (s *GormStore) GetEnrollmentsBySession(sessionID uint) ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	if err := s.db.Where("session_id = ? AND is_deleted = ?", sessionID, false).
		Preload("User").Order("created_at asc").Find(&enrollments).Error; err != nil {
		return nil, err
	}
	return enrollments, nil
}

func (s *GormStore) CountEnrollmentsBySession(sessionID uint) (int64, error) {
	var count int64
	err := s.db.Model(&models.Enrollment{}).
		Where("session_id = ? AND is_deleted = ?", sessionID, false).Count(&count).Error
	return count, err
}

func (s *GormStore) CreateEnrollment(e *models.Enrollment) error {
	return s.db.Create(e).Error
}

func (s *GormStore) DeleteEnrollment(userID, sessionID uint) error {
	result := s.db.Model(&models.Enrollment{}).
		Where("user_id = ? AND session_id = ? AND is_deleted = ?", userID, sessionID, false).
		Update("is_deleted", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// --- Payments ---

func (s *GormStore) GetPayment(id uint) (*models.Payment, error) {
	var payment models.Payment
	if err := s.db.Preload("User").Preload("Plan").Preload("Course").
		Where("id = ? AND is_deleted = ?", id, false).First(&payment).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &payment, nil
}

func (s *GormStore) GetAllPayments(f PaymentFilter) ([]models.Payment, int64, error) {
	offset, limit := offsetOf(f.Page, f.Limit)
	query := s.db.Model(&models.Payment{}).Where("is_deleted = ?", false)
	if f.Status != "" {
		query = query.Where("status = ?", f.Status)
	}
	if f.Type != "" {
		query = query.Where("type = ?", f.Type)
	}

	var total int64
	query.Count(&total)

	var payments []models.Payment
	if err := query.Preload("User").Preload("Plan").Preload("Course").
		Offset(offset).Limit(limit).Order("created_at desc").Find(&payments).Error; err != nil {
		return nil, 0, err
	}
	return payments, total, nil
}

func (s *GormStore) GetPaymentsByUser(userID uint, page, limit int) ([]models.Payment, int64, error) {
	offset, limit := offsetOf(page, limit)
	query := s.db.Model(&models.Payment{}).Where("user_id = ? AND is_deleted = ?", userID, false)

	var total int64
	query.Count(&total)

	var payments []models.Payment
	if err := query.Preload("Plan").Preload("Course").
		Offset(offset).Limit(limit).Order("created_at desc").Find(&payments).Error; err != nil {
		return nil, 0, err
	}
	return payments, total, nil
}

func (s *GormStore) CreatePayment(p *models.Payment) error {
	return s.db.Create(p).Error
}

func (s *GormStore) UpdatePayment(p *models.Payment) error {
	return s.db.Save(p).Error
}

// --- Plans ---

func (s *GormStore) GetPlan(id uint) (*models.Plan, error) {
	var plan models.Plan
	if err := s.db.First(&plan, id).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &plan, nil
}

func (s *GormStore) GetPlanByCode(code string) (*models.Plan, error) {
	var plan models.Plan
	if err := s.db.Where("code = ?", code).First(&plan).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &plan, nil
}

func (s *GormStore) GetAllPlans() ([]models.Plan, error) {
	var plans []models.Plan
	if err := s.db.Where("is_active = ?", true).Order("price asc").Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

func (s *GormStore) CreatePlan(p *models.Plan) error {
	return s.db.Create(p).Error
}

// --- Course access grants ---

func (s *GormStore) HasCourseAccess(userID, courseID uint) (bool, error) {
	var count int64
	err := s.db.Model(&models.CourseAccess{}).
		Where("user_id = ? AND course_id = ?", userID, courseID).Count(&count).Error
	return count > 0, err
}

func (s *GormStore) CreateCourseAccess(a *models.CourseAccess) error {
	return s.db.Create(a).Error
}

func (s *GormStore) DeleteCourseAccess(userID, courseID uint) error {
	return s.db.Where("user_id = ? AND course_id = ?", userID, courseID).
		Delete(&models.CourseAccess{}).Error
}

// --- Notifications ---

func (s *GormStore) CreateNotification(n *models.Notification) error {
	return s.db.Create(n).Error
}

func (s *GormStore) GetNotification(id uint) (*models.Notification, error) {
	var n models.Notification
	if err := s.db.First(&n, id).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &n, nil
}

func (s *GormStore) GetNotificationsByUser(userID uint, page, limit int) ([]models.Notification, int64, error) {
	offset, limit := offsetOf(page, limit)
	query := s.db.Model(&models.Notification{}).Where("user_id = ?", userID)

	var total int64
	query.Count(&total)

	var notifications []models.Notification
	if err := query.Offset(offset).Limit(limit).Order("created_at desc").
		Find(&notifications).Error; err != nil {
		return nil, 0, err
	}
	return notifications, total, nil
}

func (s *GormStore) CountUnreadNotifications(userID uint) (int64, error) {
	var count int64
	err := s.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).Count(&count).Error
	return count, err
}

func (s *GormStore) MarkNotificationRead(id uint) error {
	result := s.db.Model(&models.Notification{}).Where("id = ?", id).Update("is_read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) MarkAllNotificationsRead(userID uint) error {
	return s.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).Update("is_read", true).Error
}

// --- Approval requests ---

func (s *GormStore) GetApprovalRequest(id uint) (*models.ApprovalRequest, error) {
	var r models.ApprovalRequest
	if err := s.db.First(&r, id).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &r, nil
}

func (s *GormStore) GetApprovalRequestByItem(itemType string, itemID uint) (*models.ApprovalRequest, error) {
	var r models.ApprovalRequest
	if err := s.db.Where("type = ? AND item_id = ?", itemType, itemID).
		Order("created_at desc").First(&r).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &r, nil
}

func (s *GormStore) GetAllApprovalRequests(status string, page, limit int) ([]models.ApprovalRequest, int64, error) {
	offset, limit := offsetOf(page, limit)
	query := s.db.Model(&models.ApprovalRequest{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	query.Count(&total)

	var requests []models.ApprovalRequest
	if err := query.Offset(offset).Limit(limit).Order("created_at desc").
		Find(&requests).Error; err != nil {
		return nil, 0, err
	}
	return requests, total, nil
}

func (s *GormStore) CreateApprovalRequest(r *models.ApprovalRequest) error {
	return s.db.Create(r).Error
}

func (s *GormStore) UpdateApprovalRequest(r *models.ApprovalRequest) error {
	return s.db.Save(r).Error
}

// --- Enterprise ---

func (s *GormStore) GetEnterpriseCourseAccess(enterpriseID uint) ([]models.EnterpriseCourseAccess, error) {
	var grants []models.EnterpriseCourseAccess
	if err := s.db.Where("enterprise_id = ?", enterpriseID).Find(&grants).Error; err != nil {
		return nil, err
	}
	return grants, nil
}

func (s *GormStore) HasEnterpriseCourseAccess(enterpriseID, courseID uint) (bool, error) {
	var count int64
	err := s.db.Model(&models.EnterpriseCourseAccess{}).
		Where("enterprise_id = ? AND course_id = ?", enterpriseID, courseID).Count(&count).Error
	return count > 0, err
}

func (s *GormStore) CreateEnterpriseCourseAccess(a *models.EnterpriseCourseAccess) error {
	return s.db.Create(a).Error
}

func (s *GormStore) DeleteEnterpriseCourseAccess(enterpriseID, courseID uint) error {
	return s.db.Where("enterprise_id = ? AND course_id = ?", enterpriseID, courseID).
		Delete(&models.EnterpriseCourseAccess{}).Error
}

func (s *GormStore) GetEmployeeCourseAccess(employeeID uint) ([]models.EmployeeCourseAccess, error) {
	var grants []models.EmployeeCourseAccess
	if err := s.db.Where("employee_id = ?", employeeID).Find(&grants).Error; err != nil {
		return nil, err
	}
	return grants, nil
}

func (s *GormStore) HasEmployeeCourseAccess(employeeID, courseID uint) (bool, error) {
	var count int64
	err := s.db.Model(&models.EmployeeCourseAccess{}).
		Where("employee_id = ? AND course_id = ?", employeeID, courseID).Count(&count).Error
	return count > 0, err
}

func (s *GormStore) CreateEmployeeCourseAccess(a *models.EmployeeCourseAccess) error {
	return s.db.Create(a).Error
}

func (s *GormStore) DeleteEmployeeCourseAccess(employeeID, courseID uint) error {
	return s.db.Where("employee_id = ? AND course_id = ?", employeeID, courseID).
		Delete(&models.EmployeeCourseAccess{}).Error
}

func (s *GormStore) UpsertEmployeeCourseProgress(p *models.EmployeeCourseProgress) error {
	var existing models.EmployeeCourseProgress
	err := s.db.Where("employee_id = ? AND course_id = ?", p.EmployeeID, p.CourseID).
		First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return s.db.Create(p).Error
	}
	if err != nil {
		return err
	}
	existing.Progress = p.Progress
	existing.TimeSpentMinutes = p.TimeSpentMinutes
	*p = existing
	return s.db.Save(&existing).Error
}

func (s *GormStore) GetEmployeeCourseProgress(employeeID uint) ([]models.EmployeeCourseProgress, error) {
	var rows []models.EmployeeCourseProgress
	if err := s.db.Where("employee_id = ?", employeeID).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *GormStore) UpsertEmployeeSessionAttendance(a *models.EmployeeSessionAttendance) error {
	var existing models.EmployeeSessionAttendance
	err := s.db.Where("employee_id = ? AND session_id = ?", a.EmployeeID, a.SessionID).
		First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return s.db.Create(a).Error
	}
	if err != nil {
		return err
	}
	existing.Attended = a.Attended
	existing.JoinedAt = a.JoinedAt
	existing.LeftAt = a.LeftAt
	*a = existing
	return s.db.Save(&existing).Error
}

func (s *GormStore) GetEnterpriseStats(enterpriseID uint) ([]EmployeeStats, error) {
	employees, err := s.GetEmployees(enterpriseID)
	if err != nil {
		return nil, err
	}

	stats := make([]EmployeeStats, len(employees))
	for i, emp := range employees {
		row := EmployeeStats{EmployeeID: emp.ID, Name: emp.Name, Email: emp.Email}

		s.db.Model(&models.EmployeeCourseAccess{}).
			Where("employee_id = ?", emp.ID).Count(&row.AssignedCourses)

		s.db.Model(&models.EmployeeCourseProgress{}).
			Where("employee_id = ?", emp.ID).
			Select("COALESCE(AVG(progress), 0)").Scan(&row.AvgProgress)

		s.db.Model(&models.EmployeeCourseProgress{}).
			Where("employee_id = ?", emp.ID).
			Select("COALESCE(SUM(time_spent_minutes), 0)").Scan(&row.TimeSpentMinutes)

		var recorded, attended int64
		s.db.Model(&models.EmployeeSessionAttendance{}).
			Where("employee_id = ?", emp.ID).Count(&recorded)
		s.db.Model(&models.EmployeeSessionAttendance{}).
			Where("employee_id = ? AND attended = ?", emp.ID, true).Count(&attended)
		if recorded > 0 {
			row.AttendanceRate = float64(attended) / float64(recorded) * 100
		}

		stats[i] = row
	}
	return stats, nil
}

// --- Blog ---

func (s *GormStore) GetBlogCategory(id uint) (*models.BlogCategory, error) {
	var cat models.BlogCategory
	if err := s.db.First(&cat, id).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &cat, nil
}

func (s *GormStore) GetAllBlogCategories() ([]models.BlogCategory, error) {
	var cats []models.BlogCategory
	if err := s.db.Order("name asc").Find(&cats).Error; err != nil {
		return nil, err
	}
	return cats, nil
}

func (s *GormStore) CreateBlogCategory(cat *models.BlogCategory) error {
	return s.db.Create(cat).Error
}

func (s *GormStore) UpdateBlogCategory(cat *models.BlogCategory) error {
	return s.db.Save(cat).Error
}

func (s *GormStore) DeleteBlogCategory(id uint) error {
	return s.db.Delete(&models.BlogCategory{}, id).Error
}

func (s *GormStore) GetBlogPost(id uint) (*models.BlogPost, error) {
	var post models.BlogPost
	if err := s.db.Preload("Author").Preload("BlogCategory").
		Where("id = ? AND is_deleted = ?", id, false).First(&post).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &post, nil
}

func (s *GormStore) GetAllBlogPosts(status string, categoryID, authorID uint, page, limit int) ([]models.BlogPost, int64, error) {
	offset, limit := offsetOf(page, limit)
	query := s.db.Model(&models.BlogPost{}).Where("is_deleted = ?", false)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if categoryID != 0 {
		query = query.Where("blog_category_id = ?", categoryID)
	}
	if authorID != 0 {
		query = query.Where("author_id = ?", authorID)
	}

	var total int64
	query.Count(&total)

	var posts []models.BlogPost
	if err := query.Preload("Author").Preload("BlogCategory").
		Offset(offset).Limit(limit).Order("created_at desc").Find(&posts).Error; err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

func (s *GormStore) CreateBlogPost(p *models.BlogPost) error {
	return s.db.Create(p).Error
}

func (s *GormStore) UpdateBlogPost(p *models.BlogPost) error {
	return s.db.Save(p).Error
}

func (s *GormStore) DeleteBlogPost(id uint) error {
	if err := s.db.Model(&models.BlogComment{}).Where("post_id = ?", id).
		Update("is_deleted", true).Error; err != nil {
		return err
	}
	return s.db.Model(&models.BlogPost{}).Where("id = ?", id).
		Update("is_deleted", true).Error
}

func (s *GormStore) GetBlogComment(id uint) (*models.BlogComment, error) {
	var cm models.BlogComment
	if err := s.db.Where("id = ? AND is_deleted = ?", id, false).First(&cm).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &cm, nil
}

func (s *GormStore) GetCommentsByPost(postID uint, approvedOnly bool) ([]models.BlogComment, error) {
	query := s.db.Where("post_id = ? AND is_deleted = ?", postID, false)
	if approvedOnly {
		query = query.Where("is_approved = ?", true)
	}
	var comments []models.BlogComment
	if err := query.Preload("User").Order("created_at asc").Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (s *GormStore) CreateBlogComment(cm *models.BlogComment) error {
	return s.db.Create(cm).Error
}

func (s *GormStore) UpdateBlogComment(cm *models.BlogComment) error {
	return s.db.Save(cm).Error
}

func (s *GormStore) DeleteBlogComment(id uint) error {
	return s.db.Model(&models.BlogComment{}).Where("id = ?", id).
		Update("is_deleted", true).Error
}

// --- Settings ---

func (s *GormStore) GetSetting(key string) (*models.Setting, error) {
	var setting models.Setting
	if err := s.db.Where("key = ?", key).First(&setting).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &setting, nil
}

func (s *GormStore) UpsertSetting(key, value string) error {
	var setting models.Setting
	err := s.db.Where("key = ?", key).First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return s.db.Create(&models.Setting{Key: key, Value: value}).Error
	}
	if err != nil {
		return err
	}
	setting.Value = value
	return s.db.Save(&setting).Error
}

// --- Dashboards and scheduler queries ---

func (s *GormStore) GetAdminStats() (*AdminStats, error) {
	stats := &AdminStats{}
	s.db.Model(&models.User{}).Where("is_deleted = ?", false).Count(&stats.TotalUsers)
	s.db.Model(&models.User{}).Where("is_deleted = ? AND role = ?", false, models.RoleTrainer).Count(&stats.TotalTrainers)
	s.db.Model(&models.Course{}).Where("is_deleted = ?", false).Count(&stats.TotalCourses)
	s.db.Model(&models.Session{}).Where("is_deleted = ?", false).Count(&stats.TotalSessions)
	s.db.Model(&models.Enrollment{}).Where("is_deleted = ?", false).Count(&stats.TotalEnrollments)
	s.db.Model(&models.Course{}).Where("is_deleted = ? AND approval_status = ?", false, models.ApprovalPending).Count(&stats.PendingCourses)
	s.db.Model(&models.Payment{}).Where("is_deleted = ? AND status = ?", false, models.PaymentPending).Count(&stats.PendingPayments)

	err := s.db.Model(&models.Payment{}).
		Where("is_deleted = ? AND status = ?", false, models.PaymentApproved).
		Select("COALESCE(SUM(amount), 0)").Scan(&stats.TotalRevenue).Error
	return stats, err
}

// GetMonthlyRevenue rolls approved payments up by calendar month in Go to
// stay portable across the supported drivers.
func (s *GormStore) GetMonthlyRevenue() ([]MonthRevenue, error) {
	var payments []models.Payment
	if err := s.db.Where("is_deleted = ? AND status = ?", false, models.PaymentApproved).
		Find(&payments).Error; err != nil {
		return nil, err
	}
	return rollupMonthly(payments), nil
}

func (s *GormStore) GetTrainerStats(trainerID uint) (*TrainerStats, error) {
	stats := &TrainerStats{}
	s.db.Model(&models.Course{}).
		Where("is_deleted = ? AND trainer_id = ?", false, trainerID).Count(&stats.TotalCourses)
	s.db.Model(&models.Session{}).
		Joins("JOIN courses ON courses.id = sessions.course_id").
		Where("sessions.is_deleted = ? AND courses.trainer_id = ?", false, trainerID).
		Count(&stats.TotalSessions)
	s.db.Model(&models.Enrollment{}).
		Joins("JOIN sessions ON sessions.id = enrollments.session_id").
		Joins("JOIN courses ON courses.id = sessions.course_id").
		Where("enrollments.is_deleted = ? AND courses.trainer_id = ?", false, trainerID).
		Count(&stats.TotalEnrollments)

	err := s.db.Model(&models.Payment{}).
		Where("is_deleted = ? AND status = ? AND trainer_id = ?", false, models.PaymentApproved, trainerID).
		Select("COALESCE(SUM(trainer_share), 0)").Scan(&stats.TotalEarnings).Error
	return stats, err
}

func (s *GormStore) GetExpiringSubscribers(from, to time.Time) ([]models.User, error) {
	var users []models.User
	err := s.db.Where(
		"is_deleted = ? AND is_subscribed = ? AND expiry_reminder_sent = ? AND subscription_end_date BETWEEN ? AND ?",
		false, true, false, from, to).Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (s *GormStore) ExpireSubscriptions(now time.Time) (int64, error) {
	result := s.db.Model(&models.User{}).
		Where("is_deleted = ? AND is_subscribed = ? AND subscription_end_date < ?", false, true, now).
		Updates(map[string]interface{}{"is_subscribed": false, "expiry_reminder_sent": false})
	return result.RowsAffected, result.Error
}

// --- Transaction ---

func (s *GormStore) Transaction(fn func(tx Store) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx})
	})
}
