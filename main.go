package main

import (
	"log"

	"elms/config"
	"elms/database"
	adminRoutes "elms/routers/adminRoutes"
	authRoutes "elms/routers/authRoutes"
	blogRoutes "elms/routers/blogRoutes"
	courseRoutes "elms/routers/courseRoutes"
	enrollmentRoutes "elms/routers/enrollmentRoutes"
	enterpriseRoutes "elms/routers/enterpriseRoutes"
	notificationRoutes "elms/routers/notificationRoutes"
	paymentRoutes "elms/routers/paymentRoutes"
	sessionRoutes "elms/routers/sessionRoutes"
	userRoutes "elms/routers/userRoutes"
	"elms/store"
	"elms/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()
	store.Use(store.NewGormStore(database.Database.Db))

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve static files from the public folder
	app.Static("/", "./public")

	authRoutes.SetupAuthRoutes(app)
	userRoutes.SetupUserRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	sessionRoutes.SetupSessionRoutes(app)
	enrollmentRoutes.SetupEnrollmentRoutes(app)
	paymentRoutes.SetupPaymentRoutes(app)
	notificationRoutes.SetupNotificationRoutes(app)
	enterpriseRoutes.SetupEnterpriseRoutes(app)
	blogRoutes.SetupBlogRoutes(app)
	adminRoutes.SetupAdminRoutes(app)

	utils.InitializeSubscriptionScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
