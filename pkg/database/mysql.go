package database

import (
	"fmt"
	"log"

	"codedex_backend/internal/config"
	"codedex_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DBName,
		cfg.Database.Charset,
		cfg.Database.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if !shouldMigrate(cfg.Server.Mode, cfg.ForceMigrate) {
		log.Println("Skipping database migration (release mode, run with -migrate to force)")
		return db, nil
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.UserXP{},
		&model.Course{},
		&model.Chapter{},
		&model.Exercise{},
		&model.UserProgress{},
		&model.Setting{},
		&model.StaticPage{},
	)
	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	// Seed the settings the admin UI expects to exist.
	var count int64
	db.Model(&model.Setting{}).Count(&count)
	if count == 0 {
		defaults := map[string]string{
			"siteName":          "Codedex",
			"siteLogoUrl":       "",
			"maintenanceMode":   "false",
			"contactEmail":      "",
			"defaultCourseSlug": "python",
		}
		for k, v := range defaults {
			db.Create(&model.Setting{Key: k, Value: v})
		}
	}

	return db, nil
}

// Migrations run automatically outside release mode; release deployments opt
// in with the -migrate flag.
func shouldMigrate(mode string, force bool) bool {
	return mode != "release" || force
}
