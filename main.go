// @title Codedex Backend API
// @version 1.0
// @description Backend server for the Codedex learning platform: course catalog, cookie sessions, exercise progress and XP, and the admin CMS.

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"codedex_backend/internal/app"
	"codedex_backend/internal/config"
	"codedex_backend/pkg/configwatcher"
	"codedex_backend/pkg/logger"
	"flag"
	"log"
)

func main() {
	migrateOnly := flag.Bool("migrate-only", false, "run database migrations and exit")
	migrate := flag.Bool("migrate", false, "force database migrations on startup, even in release mode")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cfg.ForceMigrate = *migrate || *migrateOnly

	logger.InitLogger(cfg.Server.Mode)
	defer logger.Log.Sync()

	application := app.NewApp(cfg)

	if *migrateOnly {
		log.Println("Database migration finished, exiting")
		return
	}

	// Hot-reload the config on changes. Rotating jwt.secret this way is how
	// outstanding sessions get revoked.
	go configwatcher.WatchConfig("configs/config.yaml", application.ReloadConfig)

	application.Run()
}
