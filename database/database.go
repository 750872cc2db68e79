package database

import (
	"fmt"
	"log"

	"elms/config"
	"elms/models"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// DbInstance struct holds the database connection instance
type DbInstance struct {
	Db *gorm.DB
}

// Database is the global database instance
var Database DbInstance

// ConnectDb establishes a connection using the configured driver
func ConnectDb() {
	cfg := config.AppConfig

	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
		dialector = mysql.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(cfg.DBName)
	default:
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			cfg.DBHost, cfg.DBUser, cfg.DBPass, cfg.DBName, cfg.DBPort)
		dialector = postgres.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database (%s): %v", cfg.DBDriver, err)
	}

	// Set up connection pooling
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	runMigrations(db)
	seedDefaults(db)

	Database = DbInstance{Db: db}
}

// runMigrations performs database migrations
func runMigrations(db *gorm.DB) {
	log.Println("Running Migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Course{},
		&models.Session{},
		&models.Enrollment{},
		&models.Payment{},
		&models.Plan{},
		&models.CourseAccess{},
		&models.Notification{},
		&models.ApprovalRequest{},
		&models.EnterpriseCourseAccess{},
		&models.EmployeeCourseAccess{},
		&models.EmployeeCourseProgress{},
		&models.EmployeeSessionAttendance{},
		&models.BlogCategory{},
		&models.BlogPost{},
		&models.BlogComment{},
		&models.Setting{},
	)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Migrations completed successfully.")
}

// seedDefaults inserts the subscription plan catalog and platform settings
// on first boot. Existing rows are left alone.
func seedDefaults(db *gorm.DB) {
	plans := []models.Plan{
		{Code: models.PlanMonthly, Name: "Monthly", Price: config.AppConfig.MonthlyPlanPrice, DurationDays: 30, IsActive: true},
		{Code: models.PlanYearly, Name: "Yearly", Price: config.AppConfig.YearlyPlanPrice, DurationDays: 365, IsActive: true},
	}
	for _, plan := range plans {
		var existing models.Plan
		if err := db.Where("code = ?", plan.Code).First(&existing).Error; err == nil {
			continue
		}
		if err := db.Create(&plan).Error; err != nil {
			log.Printf("Error seeding plan %s: %v", plan.Code, err)
		}
	}

	var setting models.Setting
	if err := db.Where("key = ?", models.SettingPlatformFeePercent).First(&setting).Error; err != nil {
		if err := db.Create(&models.Setting{Key: models.SettingPlatformFeePercent, Value: "20"}).Error; err != nil {
			log.Printf("Error seeding platform fee setting: %v", err)
		}
	}
}
