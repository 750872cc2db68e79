package adminController

import (
	"log"
	"strconv"

	"elms/middleware"
	"elms/models"
	"elms/store"
	"elms/utils"

	"github.com/gofiber/fiber/v2"
)

// Dashboard is the platform-wide rollup: user, course, session and
// enrollment counts plus pending work and total revenue.
func Dashboard(c *fiber.Ctx) error {
	stats, err := store.S.GetAdminStats()
	if err != nil {
		log.Printf("Error building admin dashboard: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to build dashboard!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched successfully.", stats)
}

// MonthlyRevenue returns approved payment totals bucketed by month.
func MonthlyRevenue(c *fiber.Ctx) error {
	revenue, err := store.S.GetMonthlyRevenue()
	if err != nil {
		log.Printf("Error building monthly revenue: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to build revenue report!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Monthly revenue fetched successfully.", revenue)
}

// ListApprovalRequests shows the review queue, filterable by ?status=.
func ListApprovalRequests(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	status := c.Query("status")

	requests, total, err := store.S.GetAllApprovalRequests(status, page, limit)
	if err != nil {
		log.Printf("Error fetching approval requests: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch approval requests!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Approval requests fetched successfully.", fiber.Map{
		"items": requests,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// GetPlatformFee returns the current revenue split setting.
func GetPlatformFee(c *fiber.Ctx) error {
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Platform fee fetched successfully.", fiber.Map{
		"platformFeePercent": utils.PlatformFeePercent(),
	})
}

// UpdatePlatformFee changes the platform's cut of course and session sales.
func UpdatePlatformFee(c *fiber.Ctx) error {
	reqData := new(struct {
		PlatformFeePercent *int64 `json:"platformFeePercent"`
	})
	if err := c.BodyParser(reqData); err != nil || reqData.PlatformFeePercent == nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Platform fee percent is required!", nil)
	}
	percent := *reqData.PlatformFeePercent
	if percent < 0 || percent > 100 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Platform fee percent must be between 0 and 100!", nil)
	}

	if err := store.S.UpsertSetting(models.SettingPlatformFeePercent, strconv.FormatInt(percent, 10)); err != nil {
		log.Printf("Error updating platform fee: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update platform fee!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Platform fee updated successfully.", fiber.Map{
		"platformFeePercent": percent,
	})
}
