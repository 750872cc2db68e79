package store

import (
	"testing"
	"time"

	"elms/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedTrainerWithCourse(t *testing.T, s *MemoryStore) (*models.User, *models.Course, *models.Session) {
	t.Helper()

	trainer := &models.User{Name: "Asha Rao", Email: "asha@example.com", Role: models.RoleTrainer, Password: "x"}
	require.NoError(t, s.CreateUser(trainer))

	category := &models.Category{Name: "Programming", Slug: "programming"}
	require.NoError(t, s.CreateCategory(category))

	course := &models.Course{
		Title:          "Go Fundamentals",
		CategoryID:     category.ID,
		TrainerID:      trainer.ID,
		MaxStudents:    2,
		Price:          4999,
		ApprovalStatus: models.ApprovalApproved,
	}
	require.NoError(t, s.CreateCourse(course))

	session := &models.Session{
		CourseID: course.ID,
		Date:     time.Now().Add(24 * time.Hour),
		EndDate:  time.Now().Add(26 * time.Hour),
	}
	require.NoError(t, s.CreateSession(session))

	return trainer, course, session
}

func TestUserLifecycle(t *testing.T) {
	s := NewMemoryStore()

	user := &models.User{Name: "Lee", Email: "lee@example.com", Password: "x"}
	require.NoError(t, s.CreateUser(user))
	require.NotZero(t, user.ID)

	got, err := s.GetUser(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "lee@example.com", got.Email)

	got.Name = "Lee Chen"
	require.NoError(t, s.UpdateUser(got))

	byEmail, err := s.GetUserByEmail("lee@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Lee Chen", byEmail.Name)

	require.NoError(t, s.DeleteUser(user.ID))
	_, err = s.GetUser(user.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.GetUserByEmail("lee@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteUserCascadesOwnedCourses(t *testing.T) {
	s := NewMemoryStore()
	trainer, course, session := seedTrainerWithCourse(t, s)

	student := &models.User{Name: "Ola", Email: "ola@example.com", Password: "x"}
	require.NoError(t, s.CreateUser(student))
	require.NoError(t, s.CreateEnrollment(&models.Enrollment{UserID: student.ID, SessionID: session.ID}))

	require.NoError(t, s.DeleteUser(trainer.ID))

	_, err := s.GetCourse(course.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.GetSession(session.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	count, err := s.CountEnrollmentsBySession(session.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestEnrollmentLifecycle(t *testing.T) {
	s := NewMemoryStore()
	_, _, session := seedTrainerWithCourse(t, s)

	student := &models.User{Name: "Ola", Email: "ola@example.com", Password: "x"}
	require.NoError(t, s.CreateUser(student))

	require.NoError(t, s.CreateEnrollment(&models.Enrollment{UserID: student.ID, SessionID: session.ID}))

	_, err := s.GetEnrollment(student.ID, session.ID)
	require.NoError(t, err)

	count, err := s.CountEnrollmentsBySession(session.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	require.NoError(t, s.DeleteEnrollment(student.ID, session.ID))
	_, err = s.GetEnrollment(student.ID, session.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	count, err = s.CountEnrollmentsBySession(session.ID)
	require.NoError(t, err)
	assert.Zero(t, count)

	// Cancelled enrollments don't block re-enrolling
	require.NoError(t, s.CreateEnrollment(&models.Enrollment{UserID: student.ID, SessionID: session.ID}))
	count, err = s.CountEnrollmentsBySession(session.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	assert.ErrorIs(t, s.DeleteEnrollment(student.ID, 9999), ErrNotFound)
}

func TestCourseFilters(t *testing.T) {
	s := NewMemoryStore()
	trainer, course, _ := seedTrainerWithCourse(t, s)

	pending := &models.Course{
		Title:          "Advanced Go",
		CategoryID:     course.CategoryID,
		TrainerID:      trainer.ID,
		MaxStudents:    10,
		ApprovalStatus: models.ApprovalPending,
	}
	require.NoError(t, s.CreateCourse(pending))

	approved, total, err := s.GetAllCourses(CourseFilter{ApprovalStatus: models.ApprovalApproved, Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, approved, 1)
	assert.Equal(t, course.ID, approved[0].ID)

	all, total, err := s.GetAllCourses(CourseFilter{TrainerID: trainer.ID, Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, all, 2)

	details, err := s.GetCourseWithDetails(course.ID)
	require.NoError(t, err)
	require.NotNil(t, details.Category)
	require.NotNil(t, details.Trainer)
	assert.Empty(t, details.Trainer.Password)
}

func TestCourseAccessGrants(t *testing.T) {
	s := NewMemoryStore()
	_, course, _ := seedTrainerWithCourse(t, s)

	student := &models.User{Name: "Ola", Email: "ola@example.com", Password: "x"}
	require.NoError(t, s.CreateUser(student))

	has, err := s.HasCourseAccess(student.ID, course.ID)
	require.NoError(t, err)
	assert.False(t, has)

	require.NoError(t, s.CreateCourseAccess(&models.CourseAccess{UserID: student.ID, CourseID: course.ID}))
	has, err = s.HasCourseAccess(student.ID, course.ID)
	require.NoError(t, err)
	assert.True(t, has)

	require.NoError(t, s.DeleteCourseAccess(student.ID, course.ID))
	has, err = s.HasCourseAccess(student.ID, course.ID)
	require.NoError(t, err)
	assert.False(t, has)
}

func TestSettingsUpsert(t *testing.T) {
	s := NewMemoryStore()

	_, err := s.GetSetting(models.SettingPlatformFeePercent)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.UpsertSetting(models.SettingPlatformFeePercent, "20"))
	setting, err := s.GetSetting(models.SettingPlatformFeePercent)
	require.NoError(t, err)
	assert.Equal(t, "20", setting.Value)

	require.NoError(t, s.UpsertSetting(models.SettingPlatformFeePercent, "25"))
	setting, err = s.GetSetting(models.SettingPlatformFeePercent)
	require.NoError(t, err)
	assert.Equal(t, "25", setting.Value)
}

func TestDashboards(t *testing.T) {
	s := NewMemoryStore()
	trainer, course, session := seedTrainerWithCourse(t, s)

	student := &models.User{Name: "Ola", Email: "ola@example.com", Password: "x"}
	require.NoError(t, s.CreateUser(student))
	require.NoError(t, s.CreateEnrollment(&models.Enrollment{UserID: student.ID, SessionID: session.ID}))

	payment := &models.Payment{
		UserID:       student.ID,
		Amount:       4999,
		Type:         models.PaymentTypeCourse,
		Status:       models.PaymentApproved,
		CourseID:     &course.ID,
		TrainerID:    &trainer.ID,
		PlatformFee:  999,
		TrainerShare: 4000,
	}
	require.NoError(t, s.CreatePayment(payment))

	stats, err := s.GetAdminStats()
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalUsers)
	assert.Equal(t, int64(1), stats.TotalTrainers)
	assert.Equal(t, int64(1), stats.TotalCourses)
	assert.Equal(t, int64(1), stats.TotalEnrollments)
	assert.Equal(t, int64(4999), stats.TotalRevenue)

	trainerStats, err := s.GetTrainerStats(trainer.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), trainerStats.TotalCourses)
	assert.Equal(t, int64(1), trainerStats.TotalSessions)
	assert.Equal(t, int64(1), trainerStats.TotalEnrollments)
	assert.Equal(t, int64(4000), trainerStats.TotalEarnings)

	revenue, err := s.GetMonthlyRevenue()
	require.NoError(t, err)
	require.Len(t, revenue, 1)
	assert.Equal(t, time.Now().Format("2006-01"), revenue[0].Month)
	assert.Equal(t, int64(4999), revenue[0].Revenue)
}

func TestSubscriptionExpiry(t *testing.T) {
	s := NewMemoryStore()

	soon := time.Now().Add(24 * time.Hour)
	expiring := &models.User{Name: "Sam", Email: "sam@example.com", Password: "x",
		IsSubscribed: true, SubscriptionEndDate: &soon}
	require.NoError(t, s.CreateUser(expiring))

	past := time.Now().Add(-24 * time.Hour)
	lapsed := &models.User{Name: "Kim", Email: "kim@example.com", Password: "x",
		IsSubscribed: true, SubscriptionEndDate: &past}
	require.NoError(t, s.CreateUser(lapsed))

	reminders, err := s.GetExpiringSubscribers(time.Now(), time.Now().Add(48*time.Hour))
	require.NoError(t, err)
	require.Len(t, reminders, 1)
	assert.Equal(t, "sam@example.com", reminders[0].Email)

	expired, err := s.ExpireSubscriptions(time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(1), expired)

	got, err := s.GetUser(lapsed.ID)
	require.NoError(t, err)
	assert.False(t, got.IsSubscribed)

	got, err = s.GetUser(expiring.ID)
	require.NoError(t, err)
	assert.True(t, got.IsSubscribed)
}

func TestTransactionSerializesWrites(t *testing.T) {
	s := NewMemoryStore()
	_, _, session := seedTrainerWithCourse(t, s)

	student := &models.User{Name: "Ola", Email: "ola@example.com", Password: "x"}
	require.NoError(t, s.CreateUser(student))

	err := s.Transaction(func(tx Store) error {
		if err := tx.LockSession(session.ID); err != nil {
			return err
		}
		return tx.CreateEnrollment(&models.Enrollment{UserID: student.ID, SessionID: session.ID})
	})
	require.NoError(t, err)

	count, err := s.CountEnrollmentsBySession(session.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestNotifications(t *testing.T) {
	s := NewMemoryStore()

	user := &models.User{Name: "Ola", Email: "ola@example.com", Password: "x"}
	require.NoError(t, s.CreateUser(user))

	require.NoError(t, s.CreateNotification(&models.Notification{UserID: user.ID, Message: "first", Type: models.NotificationSystem}))
	require.NoError(t, s.CreateNotification(&models.Notification{UserID: user.ID, Message: "second", Type: models.NotificationSystem}))

	unread, err := s.CountUnreadNotifications(user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), unread)

	items, total, err := s.GetNotificationsByUser(user.ID, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, items, 2)
	assert.Equal(t, "second", items[0].Message) // newest first

	require.NoError(t, s.MarkNotificationRead(items[0].ID))
	unread, err = s.CountUnreadNotifications(user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), unread)

	require.NoError(t, s.MarkAllNotificationsRead(user.ID))
	unread, err = s.CountUnreadNotifications(user.ID)
	require.NoError(t, err)
	assert.Zero(t, unread)
}
