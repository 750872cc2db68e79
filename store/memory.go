package store

import (
	"sort"
	"sync"
	"time"

	"elms/models"

	"gorm.io/gorm"
)

// MemoryStore is the in-memory implementation of Store, used for tests and
// as a fallback when no database is configured. All state lives behind one
// mutex; Transaction holds it for the whole callback, which is what closes
// the enroll capacity race here.
type MemoryStore struct {
	mu   sync.Mutex
	core memCore
}

var (
	_ Store = (*MemoryStore)(nil)
	_ Store = (*memCore)(nil)
)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{core: memCore{
		users:          make(map[uint]models.User),
		categories:     make(map[uint]models.Category),
		courses:        make(map[uint]models.Course),
		sessions:       make(map[uint]models.Session),
		enrollments:    make(map[uint]models.Enrollment),
		payments:       make(map[uint]models.Payment),
		plans:          make(map[uint]models.Plan),
		courseAccess:   make(map[uint]models.CourseAccess),
		notifications:  make(map[uint]models.Notification),
		approvals:      make(map[uint]models.ApprovalRequest),
		entAccess:      make(map[uint]models.EnterpriseCourseAccess),
		empAccess:      make(map[uint]models.EmployeeCourseAccess),
		empProgress:    make(map[uint]models.EmployeeCourseProgress),
		empAttendance:  make(map[uint]models.EmployeeSessionAttendance),
		blogCategories: make(map[uint]models.BlogCategory),
		blogPosts:      make(map[uint]models.BlogPost),
		blogComments:   make(map[uint]models.BlogComment),
		settings:       make(map[string]models.Setting),
	}}
}

// memCore holds the tables and implements Store without locking. MemoryStore
// wraps every call with the mutex; Transaction hands the core to the callback
// while the lock is held.
type memCore struct {
	seq            uint
	users          map[uint]models.User
	categories     map[uint]models.Category
	courses        map[uint]models.Course
	sessions       map[uint]models.Session
	enrollments    map[uint]models.Enrollment
	payments       map[uint]models.Payment
	plans          map[uint]models.Plan
	courseAccess   map[uint]models.CourseAccess
	notifications  map[uint]models.Notification
	approvals      map[uint]models.ApprovalRequest
	entAccess      map[uint]models.EnterpriseCourseAccess
	empAccess      map[uint]models.EmployeeCourseAccess
	empProgress    map[uint]models.EmployeeCourseProgress
	empAttendance  map[uint]models.EmployeeSessionAttendance
	blogCategories map[uint]models.BlogCategory
	blogPosts      map[uint]models.BlogPost
	blogComments   map[uint]models.BlogComment
	settings       map[string]models.Setting
}

func (c *memCore) nextID() uint {
	c.seq++
	return c.seq
}

func stamp(m *gorm.Model, id uint) {
	now := time.Now()
	m.ID = id
	m.CreatedAt = now
	m.UpdatedAt = now
}

// pageOf slices [start,end) out of n items for the given page/limit,
// matching the offset math of the relational implementation.
func pageOf(n, page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	start := (page - 1) * limit
	if start > n {
		start = n
	}
	end := start + limit
	if end > n {
		end = n
	}
	return start, end
}

// --- Users ---

func (c *memCore) GetUser(id uint) (*models.User, error) {
	u, ok := c.users[id]
	if !ok || u.IsDeleted {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (c *memCore) GetUserByEmail(email string) (*models.User, error) {
	for _, u := range c.users {
		if u.Email == email && !u.IsDeleted {
			user := u
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

func (c *memCore) GetUserByResetToken(token string) (*models.User, error) {
	if token == "" {
		return nil, ErrNotFound
	}
	for _, u := range c.users {
		if u.ResetToken == token && !u.IsDeleted {
			user := u
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

func (c *memCore) GetAllUsers(role string, page, limit int) ([]models.User, int64, error) {
	var all []models.User
	for _, u := range c.users {
		if u.IsDeleted {
			continue
		}
		if role != "" && u.Role != role {
			continue
		}
		all = append(all, u)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })
	total := int64(len(all))
	start, end := pageOf(len(all), page, limit)
	return all[start:end], total, nil
}

func (c *memCore) GetEmployees(enterpriseID uint) ([]models.User, error) {
	var employees []models.User
	for _, u := range c.users {
		if u.IsDeleted || u.EnterpriseID == nil || *u.EnterpriseID != enterpriseID {
			continue
		}
		employees = append(employees, u)
	}
	sort.Slice(employees, func(i, j int) bool { return employees[i].ID > employees[j].ID })
	return employees, nil
}

func (c *memCore) CreateUser(u *models.User) error {
	stamp(&u.Model, c.nextID())
	c.users[u.ID] = *u
	return nil
}

func (c *memCore) UpdateUser(u *models.User) error {
	u.UpdatedAt = time.Now()
	c.users[u.ID] = *u
	return nil
}

func (c *memCore) DeleteUser(id uint) error {
	for _, course := range c.courses {
		if course.TrainerID == id && !course.IsDeleted {
			if err := c.DeleteCourse(course.ID); err != nil {
				return err
			}
		}
	}
	for eid, e := range c.enrollments {
		if e.UserID == id {
			e.IsDeleted = true
			c.enrollments[eid] = e
		}
	}
	for aid, a := range c.courseAccess {
		if a.UserID == id {
			delete(c.courseAccess, aid)
		}
	}
	for aid, a := range c.empAccess {
		if a.EmployeeID == id {
			delete(c.empAccess, aid)
		}
	}
	u, ok := c.users[id]
	if !ok {
		return ErrNotFound
	}
	u.IsDeleted = true
	c.users[id] = u
	return nil
}

// --- Categories ---

func (c *memCore) GetCategory(id uint) (*models.Category, error) {
	cat, ok := c.categories[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &cat, nil
}

func (c *memCore) GetAllCategories() ([]models.Category, error) {
	var cats []models.Category
	for _, cat := range c.categories {
		cats = append(cats, cat)
	}
	sort.Slice(cats, func(i, j int) bool { return cats[i].Name < cats[j].Name })
	return cats, nil
}

func (c *memCore) CreateCategory(cat *models.Category) error {
	stamp(&cat.Model, c.nextID())
	c.categories[cat.ID] = *cat
	return nil
}

func (c *memCore) UpdateCategory(cat *models.Category) error {
	cat.UpdatedAt = time.Now()
	c.categories[cat.ID] = *cat
	return nil
}

func (c *memCore) DeleteCategory(id uint) error {
	delete(c.categories, id)
	return nil
}

// --- Courses ---

func (c *memCore) GetCourse(id uint) (*models.Course, error) {
	course, ok := c.courses[id]
	if !ok || course.IsDeleted {
		return nil, ErrNotFound
	}
	return &course, nil
}

func (c *memCore) attachCourseRelations(course *models.Course) {
	if cat, ok := c.categories[course.CategoryID]; ok {
		catCopy := cat
		course.Category = &catCopy
	}
	if trainer, ok := c.users[course.TrainerID]; ok {
		trainerCopy := trainer
		trainerCopy.Password = ""
		course.Trainer = &trainerCopy
	}
}

func (c *memCore) countCourseEnrollments(courseID uint) int64 {
	var count int64
	for _, e := range c.enrollments {
		if e.IsDeleted {
			continue
		}
		session, ok := c.sessions[e.SessionID]
		if ok && session.CourseID == courseID {
			count++
		}
	}
	return count
}

func (c *memCore) GetCourseWithDetails(id uint) (*CourseDetails, error) {
	course, err := c.GetCourse(id)
	if err != nil {
		return nil, err
	}
	c.attachCourseRelations(course)
	return &CourseDetails{Course: *course, EnrollmentCount: c.countCourseEnrollments(id)}, nil
}

func (c *memCore) GetAllCourses(f CourseFilter) ([]CourseDetails, int64, error) {
	var all []models.Course
	for _, course := range c.courses {
		if course.IsDeleted {
			continue
		}
		if f.ApprovalStatus != "" && course.ApprovalStatus != f.ApprovalStatus {
			continue
		}
		if f.CategoryID != 0 && course.CategoryID != f.CategoryID {
			continue
		}
		if f.TrainerID != 0 && course.TrainerID != f.TrainerID {
			continue
		}
		if f.Level != "" && course.Level != f.Level {
			continue
		}
		all = append(all, course)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })
	total := int64(len(all))
	start, end := pageOf(len(all), f.Page, f.Limit)

	details := make([]CourseDetails, 0, end-start)
	for _, course := range all[start:end] {
		c.attachCourseRelations(&course)
		details = append(details, CourseDetails{
			Course:          course,
			EnrollmentCount: c.countCourseEnrollments(course.ID),
		})
	}
	return details, total, nil
}

func (c *memCore) CreateCourse(course *models.Course) error {
	stamp(&course.Model, c.nextID())
	stored := *course
	stored.Category = nil
	stored.Trainer = nil
	c.courses[course.ID] = stored
	return nil
}

func (c *memCore) UpdateCourse(course *models.Course) error {
	course.UpdatedAt = time.Now()
	stored := *course
	stored.Category = nil
	stored.Trainer = nil
	c.courses[course.ID] = stored
	return nil
}

func (c *memCore) DeleteCourse(id uint) error {
	for sid, session := range c.sessions {
		if session.CourseID != id {
			continue
		}
		for eid, e := range c.enrollments {
			if e.SessionID == sid {
				e.IsDeleted = true
				c.enrollments[eid] = e
			}
		}
		session.IsDeleted = true
		c.sessions[sid] = session
	}
	course, ok := c.courses[id]
	if !ok {
		return ErrNotFound
	}
	course.IsDeleted = true
	c.courses[id] = course
	return nil
}

// --- Sessions ---

func (c *memCore) GetSession(id uint) (*models.Session, error) {
	session, ok := c.sessions[id]
	if !ok || session.IsDeleted {
		return nil, ErrNotFound
	}
	return &session, nil
}

func (c *memCore) GetSessionWithDetails(id uint) (*SessionDetails, error) {
	session, err := c.GetSession(id)
	if err != nil {
		return nil, err
	}
	if course, ok := c.courses[session.CourseID]; ok {
		c.attachCourseRelations(&course)
		session.Course = &course
	}
	count, _ := c.CountEnrollmentsBySession(id)
	return &SessionDetails{Session: *session, EnrollmentCount: count}, nil
}

func (c *memCore) GetSessionsByCourse(courseID uint) ([]SessionDetails, error) {
	var sessions []models.Session
	for _, session := range c.sessions {
		if session.IsDeleted || session.CourseID != courseID {
			continue
		}
		sessions = append(sessions, session)
	}
	sort.Slice(sessions, func(i, j int) bool { return sessions[i].Date.Before(sessions[j].Date) })

	details := make([]SessionDetails, len(sessions))
	for i, session := range sessions {
		count, _ := c.CountEnrollmentsBySession(session.ID)
		details[i] = SessionDetails{Session: session, EnrollmentCount: count}
	}
	return details, nil
}

func (c *memCore) CreateSession(session *models.Session) error {
	stamp(&session.Model, c.nextID())
	stored := *session
	stored.Course = nil
	c.sessions[session.ID] = stored
	return nil
}

func (c *memCore) UpdateSession(session *models.Session) error {
	session.UpdatedAt = time.Now()
	stored := *session
	stored.Course = nil
	c.sessions[session.ID] = stored
	return nil
}

func (c *memCore) DeleteSession(id uint) error {
	for eid, e := range c.enrollments {
		if e.SessionID == id {
			e.IsDeleted = true
			c.enrollments[eid] = e
		}
	}
	session, ok := c.sessions[id]
	if !ok {
		return ErrNotFound
	}
	session.IsDeleted = true
	c.sessions[id] = session
	return nil
}

// LockSession is a membership check here; the Transaction mutex already
// serializes everything.
func (c *memCore) LockSession(id uint) error {
	_, err := c.GetSession(id)
	return err
}

// --- Enrollments ---

func (c *memCore) GetEnrollment(userID, sessionID uint) (*models.Enrollment, error) {
	for _, e := range c.enrollments {
		if e.UserID == userID && e.SessionID == sessionID && !e.IsDeleted {
			enrollment := e
			return &enrollment, nil
		}
	}
	return nil, ErrNotFound
}

func (c *memCore) GetEnrollmentsByUser(userID uint, page, limit int) ([]models.Enrollment, int64, error) {
	var all []models.Enrollment
	for _, e := range c.enrollments {
		if e.UserID == userID && !e.IsDeleted {
			all = append(all, e)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })
	total := int64(len(all))
	start, end := pageOf(len(all), page, limit)

	paged := all[start:end]
	for i := range paged {
		if session, ok := c.sessions[paged[i].SessionID]; ok {
			if course, ok := c.courses[session.CourseID]; ok {
				session.Course = &course
			}
			paged[i].Session = &session
		}
	}
	return paged, total, nil
}

func (c *memCore) GetEnrollmentsBySession(sessionID uint) ([]models.Enrollment, error) {
	var all []models.Enrollment
	for _, e := range c.enrollments {
		if e.SessionID == sessionID && !e.IsDeleted {
			all = append(all, e)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	for i := range all {
		if u, ok := c.users[all[i].UserID]; ok {
			u.Password = ""
			all[i].User = &u
		}
	}
	return all, nil
}

func (c *memCore) CountEnrollmentsBySession(sessionID uint) (int64, error) {
	var count int64
	for _, e := range c.enrollments {
		if e.SessionID == sessionID && !e.IsDeleted {
			count++
		}
	}
	return count, nil
}

func (c *memCore) CreateEnrollment(e *models.Enrollment) error {
	stamp(&e.Model, c.nextID())
	stored := *e
	stored.User = nil
	stored.Session = nil
	c.enrollments[e.ID] = stored
	return nil
}

func (c *memCore) DeleteEnrollment(userID, sessionID uint) error {
	for id, e := range c.enrollments {
		if e.UserID == userID && e.SessionID == sessionID && !e.IsDeleted {
			e.IsDeleted = true
			c.enrollments[id] = e
			return nil
		}
	}
	return ErrNotFound
}

// --- Payments ---

func (c *memCore) attachPaymentRelations(p *models.Payment) {
	if u, ok := c.users[p.UserID]; ok {
		u.Password = ""
		p.User = &u
	}
	if p.PlanID != nil {
		if plan, ok := c.plans[*p.PlanID]; ok {
			p.Plan = &plan
		}
	}
	if p.CourseID != nil {
		if course, ok := c.courses[*p.CourseID]; ok {
			p.Course = &course
		}
	}
}

func (c *memCore) GetPayment(id uint) (*models.Payment, error) {
	p, ok := c.payments[id]
	if !ok || p.IsDeleted {
		return nil, ErrNotFound
	}
	c.attachPaymentRelations(&p)
	return &p, nil
}

func (c *memCore) GetAllPayments(f PaymentFilter) ([]models.Payment, int64, error) {
	var all []models.Payment
	for _, p := range c.payments {
		if p.IsDeleted {
			continue
		}
		if f.Status != "" && p.Status != f.Status {
			continue
		}
		if f.Type != "" && p.Type != f.Type {
			continue
		}
		all = append(all, p)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })
	total := int64(len(all))
	start, end := pageOf(len(all), f.Page, f.Limit)
	paged := all[start:end]
	for i := range paged {
		c.attachPaymentRelations(&paged[i])
	}
	return paged, total, nil
}

func (c *memCore) GetPaymentsByUser(userID uint, page, limit int) ([]models.Payment, int64, error) {
	var all []models.Payment
	for _, p := range c.payments {
		if p.UserID == userID && !p.IsDeleted {
			all = append(all, p)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })
	total := int64(len(all))
	start, end := pageOf(len(all), page, limit)
	paged := all[start:end]
	for i := range paged {
		c.attachPaymentRelations(&paged[i])
	}
	return paged, total, nil
}

func (c *memCore) CreatePayment(p *models.Payment) error {
	stamp(&p.Model, c.nextID())
	stored := *p
	stored.User = nil
	stored.Plan = nil
	stored.Course = nil
	c.payments[p.ID] = stored
	return nil
}

func (c *memCore) UpdatePayment(p *models.Payment) error {
	p.UpdatedAt = time.Now()
	stored := *p
	stored.User = nil
	stored.Plan = nil
	stored.Course = nil
	c.payments[p.ID] = stored
	return nil
}

// --- Plans ---

func (c *memCore) GetPlan(id uint) (*models.Plan, error) {
	plan, ok := c.plans[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &plan, nil
}

func (c *memCore) GetPlanByCode(code string) (*models.Plan, error) {
	for _, plan := range c.plans {
		if plan.Code == code {
			p := plan
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

func (c *memCore) GetAllPlans() ([]models.Plan, error) {
	var plans []models.Plan
	for _, plan := range c.plans {
		if plan.IsActive {
			plans = append(plans, plan)
		}
	}
	sort.Slice(plans, func(i, j int) bool { return plans[i].Price < plans[j].Price })
	return plans, nil
}

func (c *memCore) CreatePlan(p *models.Plan) error {
	stamp(&p.Model, c.nextID())
	c.plans[p.ID] = *p
	return nil
}

// --- Course access grants ---

func (c *memCore) HasCourseAccess(userID, courseID uint) (bool, error) {
	for _, a := range c.courseAccess {
		if a.UserID == userID && a.CourseID == courseID {
			return true, nil
		}
	}
	return false, nil
}

func (c *memCore) CreateCourseAccess(a *models.CourseAccess) error {
	stamp(&a.Model, c.nextID())
	c.courseAccess[a.ID] = *a
	return nil
}

func (c *memCore) DeleteCourseAccess(userID, courseID uint) error {
	for id, a := range c.courseAccess {
		if a.UserID == userID && a.CourseID == courseID {
			delete(c.courseAccess, id)
		}
	}
	return nil
}

// --- Notifications ---

func (c *memCore) CreateNotification(n *models.Notification) error {
	stamp(&n.Model, c.nextID())
	c.notifications[n.ID] = *n
	return nil
}

func (c *memCore) GetNotification(id uint) (*models.Notification, error) {
	n, ok := c.notifications[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &n, nil
}

func (c *memCore) GetNotificationsByUser(userID uint, page, limit int) ([]models.Notification, int64, error) {
	var all []models.Notification
	for _, n := range c.notifications {
		if n.UserID == userID {
			all = append(all, n)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })
	total := int64(len(all))
	start, end := pageOf(len(all), page, limit)
	return all[start:end], total, nil
}

func (c *memCore) CountUnreadNotifications(userID uint) (int64, error) {
	var count int64
	for _, n := range c.notifications {
		if n.UserID == userID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (c *memCore) MarkNotificationRead(id uint) error {
	n, ok := c.notifications[id]
	if !ok {
		return ErrNotFound
	}
	n.IsRead = true
	n.UpdatedAt = time.Now()
	c.notifications[id] = n
	return nil
}

func (c *memCore) MarkAllNotificationsRead(userID uint) error {
	for id, n := range c.notifications {
		if n.UserID == userID && !n.IsRead {
			n.IsRead = true
			n.UpdatedAt = time.Now()
			c.notifications[id] = n
		}
	}
	return nil
}

// --- Approval requests ---

func (c *memCore) GetApprovalRequest(id uint) (*models.ApprovalRequest, error) {
	r, ok := c.approvals[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &r, nil
}

func (c *memCore) GetApprovalRequestByItem(itemType string, itemID uint) (*models.ApprovalRequest, error) {
	var latest *models.ApprovalRequest
	for _, r := range c.approvals {
		if r.Type == itemType && r.ItemID == itemID {
			req := r
			if latest == nil || req.ID > latest.ID {
				latest = &req
			}
		}
	}
	if latest == nil {
		return nil, ErrNotFound
	}
	return latest, nil
}

func (c *memCore) GetAllApprovalRequests(status string, page, limit int) ([]models.ApprovalRequest, int64, error) {
	var all []models.ApprovalRequest
	for _, r := range c.approvals {
		if status != "" && r.Status != status {
			continue
		}
		all = append(all, r)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })
	total := int64(len(all))
	start, end := pageOf(len(all), page, limit)
	return all[start:end], total, nil
}

func (c *memCore) CreateApprovalRequest(r *models.ApprovalRequest) error {
	stamp(&r.Model, c.nextID())
	c.approvals[r.ID] = *r
	return nil
}

func (c *memCore) UpdateApprovalRequest(r *models.ApprovalRequest) error {
	r.UpdatedAt = time.Now()
	c.approvals[r.ID] = *r
	return nil
}

// --- Enterprise ---

func (c *memCore) GetEnterpriseCourseAccess(enterpriseID uint) ([]models.EnterpriseCourseAccess, error) {
	var grants []models.EnterpriseCourseAccess
	for _, a := range c.entAccess {
		if a.EnterpriseID == enterpriseID {
			grants = append(grants, a)
		}
	}
	sort.Slice(grants, func(i, j int) bool { return grants[i].ID < grants[j].ID })
	return grants, nil
}

func (c *memCore) HasEnterpriseCourseAccess(enterpriseID, courseID uint) (bool, error) {
	for _, a := range c.entAccess {
		if a.EnterpriseID == enterpriseID && a.CourseID == courseID {
			return true, nil
		}
	}
	return false, nil
}

func (c *memCore) CreateEnterpriseCourseAccess(a *models.EnterpriseCourseAccess) error {
	stamp(&a.Model, c.nextID())
	c.entAccess[a.ID] = *a
	return nil
}

func (c *memCore) DeleteEnterpriseCourseAccess(enterpriseID, courseID uint) error {
	for id, a := range c.entAccess {
		if a.EnterpriseID == enterpriseID && a.CourseID == courseID {
			delete(c.entAccess, id)
		}
	}
	return nil
}

func (c *memCore) GetEmployeeCourseAccess(employeeID uint) ([]models.EmployeeCourseAccess, error) {
	var grants []models.EmployeeCourseAccess
	for _, a := range c.empAccess {
		if a.EmployeeID == employeeID {
			grants = append(grants, a)
		}
	}
	sort.Slice(grants, func(i, j int) bool { return grants[i].ID < grants[j].ID })
	return grants, nil
}

func (c *memCore) HasEmployeeCourseAccess(employeeID, courseID uint) (bool, error) {
	for _, a := range c.empAccess {
		if a.EmployeeID == employeeID && a.CourseID == courseID {
			return true, nil
		}
	}
	return false, nil
}

func (c *memCore) CreateEmployeeCourseAccess(a *models.EmployeeCourseAccess) error {
	stamp(&a.Model, c.nextID())
	c.empAccess[a.ID] = *a
	return nil
}

func (c *memCore) DeleteEmployeeCourseAccess(employeeID, courseID uint) error {
	for id, a := range c.empAccess {
		if a.EmployeeID == employeeID && a.CourseID == courseID {
			delete(c.empAccess, id)
		}
	}
	return nil
}

func (c *memCore) UpsertEmployeeCourseProgress(p *models.EmployeeCourseProgress) error {
	for id, existing := range c.empProgress {
		if existing.EmployeeID == p.EmployeeID && existing.CourseID == p.CourseID {
			existing.Progress = p.Progress
			existing.TimeSpentMinutes = p.TimeSpentMinutes
			existing.UpdatedAt = time.Now()
			c.empProgress[id] = existing
			*p = existing
			return nil
		}
	}
	stamp(&p.Model, c.nextID())
	c.empProgress[p.ID] = *p
	return nil
}

func (c *memCore) GetEmployeeCourseProgress(employeeID uint) ([]models.EmployeeCourseProgress, error) {
	var rows []models.EmployeeCourseProgress
	for _, p := range c.empProgress {
		if p.EmployeeID == employeeID {
			rows = append(rows, p)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].ID < rows[j].ID })
	return rows, nil
}

func (c *memCore) UpsertEmployeeSessionAttendance(a *models.EmployeeSessionAttendance) error {
	for id, existing := range c.empAttendance {
		if existing.EmployeeID == a.EmployeeID && existing.SessionID == a.SessionID {
			existing.Attended = a.Attended
			existing.JoinedAt = a.JoinedAt
			existing.LeftAt = a.LeftAt
			existing.UpdatedAt = time.Now()
			c.empAttendance[id] = existing
			*a = existing
			return nil
		}
	}
	stamp(&a.Model, c.nextID())
	c.empAttendance[a.ID] = *a
	return nil
}

func (c *memCore) GetEnterpriseStats(enterpriseID uint) ([]EmployeeStats, error) {
	employees, err := c.GetEmployees(enterpriseID)
	if err != nil {
		return nil, err
	}

	stats := make([]EmployeeStats, len(employees))
	for i, emp := range employees {
		row := EmployeeStats{EmployeeID: emp.ID, Name: emp.Name, Email: emp.Email}

		for _, a := range c.empAccess {
			if a.EmployeeID == emp.ID {
				row.AssignedCourses++
			}
		}

		var progressSum float64
		var progressRows int64
		for _, p := range c.empProgress {
			if p.EmployeeID == emp.ID {
				progressSum += p.Progress
				progressRows++
				row.TimeSpentMinutes += int64(p.TimeSpentMinutes)
			}
		}
		if progressRows > 0 {
			row.AvgProgress = progressSum / float64(progressRows)
		}

		var recorded, attended int64
		for _, a := range c.empAttendance {
			if a.EmployeeID == emp.ID {
				recorded++
				if a.Attended {
					attended++
				}
			}
		}
		if recorded > 0 {
			row.AttendanceRate = float64(attended) / float64(recorded) * 100
		}

		stats[i] = row
	}
	return stats, nil
}

// --- Blog ---

func (c *memCore) GetBlogCategory(id uint) (*models.BlogCategory, error) {
	cat, ok := c.blogCategories[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &cat, nil
}

func (c *memCore) GetAllBlogCategories() ([]models.BlogCategory, error) {
	var cats []models.BlogCategory
	for _, cat := range c.blogCategories {
		cats = append(cats, cat)
	}
	sort.Slice(cats, func(i, j int) bool { return cats[i].Name < cats[j].Name })
	return cats, nil
}

func (c *memCore) CreateBlogCategory(cat *models.BlogCategory) error {
	stamp(&cat.Model, c.nextID())
	c.blogCategories[cat.ID] = *cat
	return nil
}

func (c *memCore) UpdateBlogCategory(cat *models.BlogCategory) error {
	cat.UpdatedAt = time.Now()
	c.blogCategories[cat.ID] = *cat
	return nil
}

func (c *memCore) DeleteBlogCategory(id uint) error {
	delete(c.blogCategories, id)
	return nil
}

func (c *memCore) attachPostRelations(post *models.BlogPost) {
	if u, ok := c.users[post.AuthorID]; ok {
		u.Password = ""
		post.Author = &u
	}
	if post.BlogCategoryID != nil {
		if cat, ok := c.blogCategories[*post.BlogCategoryID]; ok {
			post.BlogCategory = &cat
		}
	}
}

func (c *memCore) GetBlogPost(id uint) (*models.BlogPost, error) {
	post, ok := c.blogPosts[id]
	if !ok || post.IsDeleted {
		return nil, ErrNotFound
	}
	c.attachPostRelations(&post)
	return &post, nil
}

func (c *memCore) GetAllBlogPosts(status string, categoryID, authorID uint, page, limit int) ([]models.BlogPost, int64, error) {
	var all []models.BlogPost
	for _, post := range c.blogPosts {
		if post.IsDeleted {
			continue
		}
		if status != "" && post.Status != status {
			continue
		}
		if categoryID != 0 && (post.BlogCategoryID == nil || *post.BlogCategoryID != categoryID) {
			continue
		}
		if authorID != 0 && post.AuthorID != authorID {
			continue
		}
		all = append(all, post)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })
	total := int64(len(all))
	start, end := pageOf(len(all), page, limit)
	paged := all[start:end]
	for i := range paged {
		c.attachPostRelations(&paged[i])
	}
	return paged, total, nil
}

func (c *memCore) CreateBlogPost(p *models.BlogPost) error {
	stamp(&p.Model, c.nextID())
	stored := *p
	stored.Author = nil
	stored.BlogCategory = nil
	c.blogPosts[p.ID] = stored
	return nil
}

func (c *memCore) UpdateBlogPost(p *models.BlogPost) error {
	p.UpdatedAt = time.Now()
	stored := *p
	stored.Author = nil
	stored.BlogCategory = nil
	c.blogPosts[p.ID] = stored
	return nil
}

func (c *memCore) DeleteBlogPost(id uint) error {
	for cid, cm := range c.blogComments {
		if cm.PostID == id {
			cm.IsDeleted = true
			c.blogComments[cid] = cm
		}
	}
	post, ok := c.blogPosts[id]
	if !ok {
		return ErrNotFound
	}
	post.IsDeleted = true
	c.blogPosts[id] = post
	return nil
}

func (c *memCore) GetBlogComment(id uint) (*models.BlogComment, error) {
	cm, ok := c.blogComments[id]
	if !ok || cm.IsDeleted {
		return nil, ErrNotFound
	}
	return &cm, nil
}

func (c *memCore) GetCommentsByPost(postID uint, approvedOnly bool) ([]models.BlogComment, error) {
	var comments []models.BlogComment
	for _, cm := range c.blogComments {
		if cm.IsDeleted || cm.PostID != postID {
			continue
		}
		if approvedOnly && !cm.IsApproved {
			continue
		}
		comments = append(comments, cm)
	}
	sort.Slice(comments, func(i, j int) bool { return comments[i].ID < comments[j].ID })
	for i := range comments {
		if u, ok := c.users[comments[i].UserID]; ok {
			u.Password = ""
			comments[i].User = &u
		}
	}
	return comments, nil
}

func (c *memCore) CreateBlogComment(cm *models.BlogComment) error {
	stamp(&cm.Model, c.nextID())
	stored := *cm
	stored.User = nil
	c.blogComments[cm.ID] = stored
	return nil
}

func (c *memCore) UpdateBlogComment(cm *models.BlogComment) error {
	cm.UpdatedAt = time.Now()
	stored := *cm
	stored.User = nil
	c.blogComments[cm.ID] = stored
	return nil
}

func (c *memCore) DeleteBlogComment(id uint) error {
	cm, ok := c.blogComments[id]
	if !ok {
		return ErrNotFound
	}
	cm.IsDeleted = true
	c.blogComments[id] = cm
	return nil
}

// --- Settings ---

func (c *memCore) GetSetting(key string) (*models.Setting, error) {
	setting, ok := c.settings[key]
	if !ok {
		return nil, ErrNotFound
	}
	return &setting, nil
}

func (c *memCore) UpsertSetting(key, value string) error {
	setting, ok := c.settings[key]
	if !ok {
		setting = models.Setting{Key: key}
		stamp(&setting.Model, c.nextID())
	}
	setting.Value = value
	setting.UpdatedAt = time.Now()
	c.settings[key] = setting
	return nil
}

// --- Dashboards and scheduler queries ---

func (c *memCore) GetAdminStats() (*AdminStats, error) {
	stats := &AdminStats{}
	for _, u := range c.users {
		if u.IsDeleted {
			continue
		}
		stats.TotalUsers++
		if u.Role == models.RoleTrainer {
			stats.TotalTrainers++
		}
	}
	for _, course := range c.courses {
		if course.IsDeleted {
			continue
		}
		stats.TotalCourses++
		if course.ApprovalStatus == models.ApprovalPending {
			stats.PendingCourses++
		}
	}
	for _, session := range c.sessions {
		if !session.IsDeleted {
			stats.TotalSessions++
		}
	}
	for _, e := range c.enrollments {
		if !e.IsDeleted {
			stats.TotalEnrollments++
		}
	}
	for _, p := range c.payments {
		if p.IsDeleted {
			continue
		}
		if p.Status == models.PaymentPending {
			stats.PendingPayments++
		}
		if p.Status == models.PaymentApproved {
			stats.TotalRevenue += p.Amount
		}
	}
	return stats, nil
}

func (c *memCore) GetMonthlyRevenue() ([]MonthRevenue, error) {
	var approved []models.Payment
	for _, p := range c.payments {
		if !p.IsDeleted && p.Status == models.PaymentApproved {
			approved = append(approved, p)
		}
	}
	return rollupMonthly(approved), nil
}

func (c *memCore) GetTrainerStats(trainerID uint) (*TrainerStats, error) {
	stats := &TrainerStats{}
	ownCourses := make(map[uint]bool)
	for _, course := range c.courses {
		if !course.IsDeleted && course.TrainerID == trainerID {
			stats.TotalCourses++
			ownCourses[course.ID] = true
		}
	}
	ownSessions := make(map[uint]bool)
	for _, session := range c.sessions {
		if !session.IsDeleted && ownCourses[session.CourseID] {
			stats.TotalSessions++
			ownSessions[session.ID] = true
		}
	}
	for _, e := range c.enrollments {
		if !e.IsDeleted && ownSessions[e.SessionID] {
			stats.TotalEnrollments++
		}
	}
	for _, p := range c.payments {
		if !p.IsDeleted && p.Status == models.PaymentApproved &&
			p.TrainerID != nil && *p.TrainerID == trainerID {
			stats.TotalEarnings += p.TrainerShare
		}
	}
	return stats, nil
}

func (c *memCore) GetExpiringSubscribers(from, to time.Time) ([]models.User, error) {
	var users []models.User
	for _, u := range c.users {
		if u.IsDeleted || !u.IsSubscribed || u.ExpiryReminderSent || u.SubscriptionEndDate == nil {
			continue
		}
		if u.SubscriptionEndDate.After(from) && u.SubscriptionEndDate.Before(to) {
			users = append(users, u)
		}
	}
	return users, nil
}

func (c *memCore) ExpireSubscriptions(now time.Time) (int64, error) {
	var expired int64
	for id, u := range c.users {
		if u.IsDeleted || !u.IsSubscribed || u.SubscriptionEndDate == nil {
			continue
		}
		if u.SubscriptionEndDate.Before(now) {
			u.IsSubscribed = false
			u.ExpiryReminderSent = false
			c.users[id] = u
			expired++
		}
	}
	return expired, nil
}

// Transaction on the core is a plain invocation; the wrapper holds the lock.
func (c *memCore) Transaction(fn func(tx Store) error) error {
	return fn(c)
}
