package database

import (
	"fmt"
	"log"
	"streeskill/config"
	"streeskill/models"
	communityModels "streeskill/models/community"
	courseModels "streeskill/models/course"
	marketplaceModels "streeskill/models/marketplace"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// DbInstance struct holds the database connection instance
type DbInstance struct {
	Db *gorm.DB
}

// Database is the global database instance
var Database DbInstance

// ConnectDb establishes a connection to MySQL
func ConnectDb() {
	dsn := fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		config.AppConfig.DBUser,
		config.AppConfig.DBPassword,
		config.AppConfig.DBHost,
		config.AppConfig.DBPort,
		config.AppConfig.DBName,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to MySQL: %v", err)
	}

	// Set up connection pooling
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	// Run database migrations
	RunMigrations(db)

	// Save database instance globally
	Database = DbInstance{Db: db}
}

// RunMigrations performs database migrations
func RunMigrations(db *gorm.DB) {
	log.Println("Running Migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&models.UserPreference{},
		&models.UserStats{},
		&models.UserProgress{},
		&models.Notification{},
		&models.AnalyticsEvent{},
		&courseModels.Course{},
		&courseModels.Reel{},
		&communityModels.CommunityPost{},
		&communityModels.PostReply{},
		&communityModels.PostVote{},
		&marketplaceModels.Product{},
		&marketplaceModels.Order{},
	)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Migrations completed successfully.")
}
