package enterpriseController

import (
	"log"

	"elms/config"
	"elms/middleware"
	"elms/models"
	"elms/store"
	"elms/utils"
	enterpriseValidators "elms/validators/enterprise"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// enterpriseIDOf resolves which enterprise account the session user manages.
// ENTERPRISE users manage themselves; ENTERPRISE_ADMIN users manage the
// enterprise they are linked to.
func enterpriseIDOf(user *models.User) (uint, bool) {
	switch user.Role {
	case models.RoleEnterprise:
		return user.ID, true
	case models.RoleEnterpriseAdmin:
		if user.EnterpriseID != nil {
			return *user.EnterpriseID, true
		}
	}
	return 0, false
}

// employeeOf loads an employee and checks it belongs to the enterprise.
func employeeOf(enterpriseID, employeeID uint) (*models.User, error) {
	employee, err := store.S.GetUser(employeeID)
	if err != nil {
		return nil, err
	}
	if employee.EnterpriseID == nil || *employee.EnterpriseID != enterpriseID {
		return nil, store.ErrNotFound
	}
	return employee, nil
}

// CreateEmployee provisions a student account tied to the enterprise.
func CreateEmployee(c *fiber.Ctx) error {
	reqData := c.Locals("createEmployeeData").(*enterpriseValidators.CreateEmployeeRequest)

	user, err := middleware.CurrentUser(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	enterpriseID, ok := enterpriseIDOf(user)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
	}

	if _, err := store.S.GetUserByEmail(reqData.Email); err == nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Email is already registered!", nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	employee := models.User{
		Name:         reqData.Name,
		Email:        reqData.Email,
		Role:         models.RoleStudent,
		Password:     string(hashedPassword),
		EnterpriseID: &enterpriseID,
	}

	if err := store.S.CreateUser(&employee); err != nil {
		log.Printf("Error creating employee: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create employee!", nil)
	}

	utils.SendWelcomeEmail(employee.Email, employee.Name)

	employee.Password = ""
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Employee created successfully.", employee)
}

func ListEmployees(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	enterpriseID, ok := enterpriseIDOf(user)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
	}

	employees, err := store.S.GetEmployees(enterpriseID)
	if err != nil {
		log.Printf("Error fetching employees: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch employees!", nil)
	}

	for i := range employees {
		employees[i].Password = ""
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Employees fetched successfully.", employees)
}

func RemoveEmployee(c *fiber.Ctx) error {
	employeeID := uint(c.Locals("employeeID").(int))

	user, err := middleware.CurrentUser(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	enterpriseID, ok := enterpriseIDOf(user)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
	}

	if _, err := employeeOf(enterpriseID, employeeID); err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Employee not found!", nil)
	}

	if err := store.S.DeleteUser(employeeID); err != nil {
		log.Printf("Error removing employee: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to remove employee!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Employee removed successfully.", nil)
}

// AssignCourse hands one of the enterprise's licensed courses to an
// employee. Assigning the same course twice is a no-op.
func AssignCourse(c *fiber.Ctx) error {
	employeeID := uint(c.Locals("employeeID").(int))
	reqData := c.Locals("courseAssignmentData").(*enterpriseValidators.CourseAssignmentRequest)

	user, err := middleware.CurrentUser(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	enterpriseID, ok := enterpriseIDOf(user)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
	}

	if _, err := employeeOf(enterpriseID, employeeID); err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Employee not found!", nil)
	}

	licensed, err := store.S.HasEnterpriseCourseAccess(enterpriseID, reqData.CourseID)
	if err != nil {
		log.Printf("Error checking enterprise course access: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to assign course!", nil)
	}
	if !licensed {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "This course is not licensed to your enterprise!", nil)
	}

	assigned, err := store.S.HasEmployeeCourseAccess(employeeID, reqData.CourseID)
	if err != nil {
		log.Printf("Error checking employee course access: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to assign course!", nil)
	}
	if assigned {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Course is already assigned.", nil)
	}

	access := models.EmployeeCourseAccess{
		EmployeeID: employeeID,
		CourseID:   reqData.CourseID,
		AssignedBy: user.ID,
	}
	if err := store.S.CreateEmployeeCourseAccess(&access); err != nil {
		log.Printf("Error assigning course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to assign course!", nil)
	}

	if course, err := store.S.GetCourse(reqData.CourseID); err == nil {
		if err := utils.Notify(store.S, employeeID, models.NotificationCourse,
			"You were assigned the course \""+course.Title+"\".",
			map[string]interface{}{"courseId": course.ID}); err != nil {
			log.Printf("Error creating notification: %v", err)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course assigned successfully.", access)
}

func UnassignCourse(c *fiber.Ctx) error {
	employeeID := uint(c.Locals("employeeID").(int))
	reqData := c.Locals("courseAssignmentData").(*enterpriseValidators.CourseAssignmentRequest)

	user, err := middleware.CurrentUser(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	enterpriseID, ok := enterpriseIDOf(user)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
	}

	if _, err := employeeOf(enterpriseID, employeeID); err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Employee not found!", nil)
	}

	if err := store.S.DeleteEmployeeCourseAccess(employeeID, reqData.CourseID); err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Assignment not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course unassigned successfully.", nil)
}

// RecordProgress upserts an employee's completion on an assigned course.
func RecordProgress(c *fiber.Ctx) error {
	employeeID := uint(c.Locals("employeeID").(int))
	reqData := c.Locals("progressData").(*enterpriseValidators.ProgressRequest)

	user, err := middleware.CurrentUser(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	enterpriseID, ok := enterpriseIDOf(user)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
	}

	if _, err := employeeOf(enterpriseID, employeeID); err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Employee not found!", nil)
	}

	assigned, err := store.S.HasEmployeeCourseAccess(employeeID, reqData.CourseID)
	if err != nil || !assigned {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "This course is not assigned to the employee!", nil)
	}

	progress := models.EmployeeCourseProgress{
		EmployeeID:       employeeID,
		CourseID:         reqData.CourseID,
		Progress:         reqData.Progress,
		TimeSpentMinutes: reqData.TimeSpentMinutes,
	}
	if err := store.S.UpsertEmployeeCourseProgress(&progress); err != nil {
		log.Printf("Error recording progress: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress recorded successfully.", progress)
}

// RecordAttendance upserts an employee's attendance for a session.
func RecordAttendance(c *fiber.Ctx) error {
	employeeID := uint(c.Locals("employeeID").(int))
	reqData := c.Locals("attendanceData").(*enterpriseValidators.AttendanceRequest)

	user, err := middleware.CurrentUser(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	enterpriseID, ok := enterpriseIDOf(user)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
	}

	if _, err := employeeOf(enterpriseID, employeeID); err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Employee not found!", nil)
	}

	if _, err := store.S.GetSession(reqData.SessionID); err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Session not found!", nil)
	}

	attendance := models.EmployeeSessionAttendance{
		EmployeeID: employeeID,
		SessionID:  reqData.SessionID,
		Attended:   reqData.Attended,
		JoinedAt:   reqData.JoinedAt,
		LeftAt:     reqData.LeftAt,
	}
	if err := store.S.UpsertEmployeeSessionAttendance(&attendance); err != nil {
		log.Printf("Error recording attendance: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record attendance!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Attendance recorded successfully.", attendance)
}

// Dashboard aggregates per-employee training activity for the enterprise.
func Dashboard(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	enterpriseID, ok := enterpriseIDOf(user)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
	}

	stats, err := store.S.GetEnterpriseStats(enterpriseID)
	if err != nil {
		log.Printf("Error building enterprise dashboard: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to build dashboard!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched successfully.", stats)
}

// ListLicensedCourses shows which courses the enterprise may assign.
func ListLicensedCourses(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	enterpriseID, ok := enterpriseIDOf(user)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
	}

	grants, err := store.S.GetEnterpriseCourseAccess(enterpriseID)
	if err != nil {
		log.Printf("Error fetching licensed courses: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch licensed courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Licensed courses fetched successfully.", grants)
}

// AdminGrantCourse licenses a course to an enterprise account.
func AdminGrantCourse(c *fiber.Ctx) error {
	enterpriseID := uint(c.Locals("enterpriseID").(int))
	reqData := c.Locals("courseAssignmentData").(*enterpriseValidators.CourseAssignmentRequest)

	enterprise, err := store.S.GetUser(enterpriseID)
	if err != nil || enterprise.Role != models.RoleEnterprise {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enterprise not found!", nil)
	}

	if _, err := store.S.GetCourse(reqData.CourseID); err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	licensed, err := store.S.HasEnterpriseCourseAccess(enterpriseID, reqData.CourseID)
	if err != nil {
		log.Printf("Error checking enterprise course access: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to grant course!", nil)
	}
	if licensed {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Course is already licensed.", nil)
	}

	access := models.EnterpriseCourseAccess{
		EnterpriseID: enterpriseID,
		CourseID:     reqData.CourseID,
	}
	if err := store.S.CreateEnterpriseCourseAccess(&access); err != nil {
		log.Printf("Error granting course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to grant course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course licensed successfully.", access)
}

// AdminRevokeCourse withdraws a course license from an enterprise account.
func AdminRevokeCourse(c *fiber.Ctx) error {
	enterpriseID := uint(c.Locals("enterpriseID").(int))
	reqData := c.Locals("courseAssignmentData").(*enterpriseValidators.CourseAssignmentRequest)

	if err := store.S.DeleteEnterpriseCourseAccess(enterpriseID, reqData.CourseID); err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "License not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course license revoked successfully.", nil)
}
