package paymentController

import (
	"errors"
	"log"
	"time"

	"elms/middleware"
	"elms/models"
	"elms/store"
	"elms/utils"
	paymentValidators "elms/validators/payment"

	"github.com/gofiber/fiber/v2"
)

// allowedTransitions maps the current payment status to the statuses an
// admin may move it to. APPROVED payments can still be walked back.
var allowedTransitions = map[string][]string{
	models.PaymentPending:  {models.PaymentApproved, models.PaymentRejected},
	models.PaymentApproved: {models.PaymentRejected, models.PaymentRefunded},
}

func transitionAllowed(from, to string) bool {
	for _, s := range allowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// CreatePayment records a purchase attempt as PENDING. The amount always
// comes from the referenced plan or course, never from the client.
func CreatePayment(c *fiber.Ctx) error {
	reqData := c.Locals("createPaymentData").(*paymentValidators.CreatePaymentRequest)

	user, err := middleware.CurrentUser(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	payment := models.Payment{
		UserID:    user.ID,
		Reference: utils.GenerateToken(),
		Type:      reqData.Type,
		Status:    models.PaymentPending,
	}

	switch reqData.Type {
	case models.PaymentTypeSubscription:
		plan, err := store.S.GetPlan(reqData.PlanID)
		if err != nil || !plan.IsActive {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Plan not found!", nil)
		}
		payment.PlanID = &plan.ID
		payment.Amount = plan.Price

	case models.PaymentTypeCourse:
		course, err := store.S.GetCourse(reqData.CourseID)
		if err != nil || course.ApprovalStatus != models.ApprovalApproved {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
		if course.Price == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "This course is free and cannot be purchased!", nil)
		}
		payment.CourseID = &course.ID
		payment.TrainerID = &course.TrainerID
		payment.Amount = course.Price
		payment.PlatformFee, payment.TrainerShare = utils.SplitPayment(course.Price)

	case models.PaymentTypeSession:
		session, err := store.S.GetSession(reqData.SessionID)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Session not found!", nil)
		}
		course, err := store.S.GetCourse(session.CourseID)
		if err != nil || course.ApprovalStatus != models.ApprovalApproved {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
		if course.Price == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "This course is free and cannot be purchased!", nil)
		}
		payment.SessionID = &session.ID
		payment.CourseID = &course.ID
		payment.TrainerID = &course.TrainerID
		payment.Amount = course.Price
		payment.PlatformFee, payment.TrainerShare = utils.SplitPayment(course.Price)
	}

	if err := store.S.CreatePayment(&payment); err != nil {
		log.Printf("Error creating payment: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create payment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Payment created successfully.", payment)
}

// MyPayments lists the session user's payment history.
func MyPayments(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)

	user, err := middleware.CurrentUser(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	payments, total, err := store.S.GetPaymentsByUser(user.ID, page, limit)
	if err != nil {
		log.Printf("Error fetching payments: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch payments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payments fetched successfully.", fiber.Map{
		"items": payments,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// AdminListPayments lists payments filterable by ?status= and ?type=.
func AdminListPayments(c *fiber.Ctx) error {
	filter := store.PaymentFilter{
		Status: c.Query("status"),
		Type:   c.Query("type"),
		Page:   c.QueryInt("page", 1),
		Limit:  c.QueryInt("limit", 10),
	}

	payments, total, err := store.S.GetAllPayments(filter)
	if err != nil {
		log.Printf("Error fetching payments: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch payments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payments fetched successfully.", fiber.Map{
		"items": payments,
		"pagination": fiber.Map{
			"total": total,
			"page":  filter.Page,
			"limit": filter.Limit,
		},
	})
}

// UpdateStatus applies an admin review decision. The payment row, its side
// effects (course access grant, subscription activation) and the user
// notification all commit in one transaction; walking an APPROVED payment
// back undoes its side effects the same way.
func UpdateStatus(c *fiber.Ctx) error {
	paymentID := uint(c.Locals("paymentID").(int))
	reqData := c.Locals("updateStatusData").(*paymentValidators.UpdateStatusRequest)

	payment, err := store.S.GetPayment(paymentID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Payment not found!", nil)
	}

	if !transitionAllowed(payment.Status, reqData.Status) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false,
			"Cannot move a "+payment.Status+" payment to "+reqData.Status+"!", nil)
	}

	previousStatus := payment.Status

	txErr := store.S.Transaction(func(tx store.Store) error {
		payment.Status = reqData.Status
		payment.ReviewNotes = reqData.Notes
		if err := tx.UpdatePayment(payment); err != nil {
			return err
		}

		if reqData.Status == models.PaymentApproved {
			if err := applyApproval(tx, payment); err != nil {
				return err
			}
		}
		if previousStatus == models.PaymentApproved {
			if err := revokeApproval(tx, payment); err != nil {
				return err
			}
		}

		return utils.Notify(tx, payment.UserID, models.NotificationPayment,
			"Your "+payment.Type+" payment was "+reqData.Status+".",
			map[string]interface{}{"paymentId": payment.ID})
	})
	if txErr != nil {
		log.Printf("Error updating payment status: %v", txErr)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update payment!", nil)
	}

	notifyByEmail(payment, reqData.Status)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment "+reqData.Status+" successfully.", payment)
}

// applyApproval grants whatever the payment was buying. The course access
// grant is idempotent so re-approving after a rejection cannot duplicate it.
func applyApproval(tx store.Store, payment *models.Payment) error {
	switch payment.Type {
	case models.PaymentTypeCourse, models.PaymentTypeSession:
		if payment.CourseID == nil {
			return nil
		}
		hasAccess, err := tx.HasCourseAccess(payment.UserID, *payment.CourseID)
		if err != nil {
			return err
		}
		if !hasAccess {
			return tx.CreateCourseAccess(&models.CourseAccess{
				UserID:    payment.UserID,
				CourseID:  *payment.CourseID,
				PaymentID: payment.ID,
			})
		}
		return nil

	case models.PaymentTypeSubscription:
		if payment.PlanID == nil {
			return nil
		}
		plan, err := tx.GetPlan(*payment.PlanID)
		if err != nil {
			return err
		}
		user, err := tx.GetUser(payment.UserID)
		if err != nil {
			return err
		}
		endDate := time.Now().AddDate(0, 0, plan.DurationDays)
		user.IsSubscribed = true
		user.SubscriptionPlanID = &plan.ID
		user.SubscriptionEndDate = &endDate
		user.ExpiryReminderSent = false
		return tx.UpdateUser(user)
	}
	return nil
}

// revokeApproval undoes what applyApproval granted.
func revokeApproval(tx store.Store, payment *models.Payment) error {
	switch payment.Type {
	case models.PaymentTypeCourse, models.PaymentTypeSession:
		if payment.CourseID == nil {
			return nil
		}
		if err := tx.DeleteCourseAccess(payment.UserID, *payment.CourseID); err != nil && !errors.Is(err, store.ErrNotFound) {
			return err
		}
		return nil

	case models.PaymentTypeSubscription:
		user, err := tx.GetUser(payment.UserID)
		if err != nil {
			return err
		}
		user.IsSubscribed = false
		user.SubscriptionPlanID = nil
		user.SubscriptionEndDate = nil
		user.ExpiryReminderSent = false
		return tx.UpdateUser(user)
	}
	return nil
}

func notifyByEmail(payment *models.Payment, status string) {
	user, err := store.S.GetUser(payment.UserID)
	if err != nil {
		return
	}

	if payment.Type == models.PaymentTypeSubscription && status == models.PaymentApproved {
		if payment.PlanID != nil {
			if plan, err := store.S.GetPlan(*payment.PlanID); err == nil && user.SubscriptionEndDate != nil {
				utils.SendSubscriptionEmail(user.Email, user.Name, plan.Name, *user.SubscriptionEndDate)
				return
			}
		}
	}

	description := payment.Type + " payment " + payment.Reference
	utils.SendPaymentStatusEmail(user.Email, user.Name, description, status)
}

// ListPlans is the public subscription catalogue.
func ListPlans(c *fiber.Ctx) error {
	plans, err := store.S.GetAllPlans()
	if err != nil {
		log.Printf("Error fetching plans: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch plans!", nil)
	}

	active := make([]models.Plan, 0, len(plans))
	for _, p := range plans {
		if p.IsActive {
			active = append(active, p)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Plans fetched successfully.", active)
}
