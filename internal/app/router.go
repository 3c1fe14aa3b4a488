package app

import (
	"codedex_backend/docs"
	"codedex_backend/internal/config"
	"codedex_backend/internal/middleware"
	"codedex_backend/internal/model"
	"codedex_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c, cfg)

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		authGroup.GET("/profile", c.auth.Profile)
		authGroup.POST("/user/update-profile", c.auth.UpdateProfile)
		authGroup.POST("/progress/update", c.progress.UpdateProgress)
	}

	a.registerAdminRoutes(router, c, repos, cfg)
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)

		api.POST("/register", c.auth.Register)
		api.POST("/login", c.auth.Login)
		api.POST("/logout", c.auth.Logout)
		api.GET("/auth/session", c.auth.Session)

		api.GET("/courses", c.catalog.ListCourses)
		// Optional auth: logged-in visitors get their completion state merged in.
		api.GET("/courses/:slug", middleware.TryAuthMiddleware(cfg), c.catalog.GetCourse)
		api.GET("/pages/:slug", c.catalog.GetStaticPage)
	}
}

func (a *App) registerAdminRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	// Promotion is secret-guarded rather than session-guarded so the first
	// admin can be bootstrapped on an empty database.
	router.POST("/api/admin/promote", c.adminUser.Promote)

	admin := router.Group("/api/admin")
	admin.Use(
		middleware.AuthMiddleware(cfg),
		middleware.RoleMiddleware(repos.user, cfg, model.RoleAdmin),
	)
	{
		admin.POST("/courses", c.adminCourse.CreateCourse)
		admin.GET("/courses", c.adminCourse.ListCourses)
		admin.GET("/courses/:courseId", c.adminCourse.GetCourse)
		admin.PUT("/courses/:courseId", c.adminCourse.UpdateCourse)
		admin.DELETE("/courses/:courseId", c.adminCourse.DeleteCourse)
		admin.POST("/uploads/course-image", c.adminCourse.UploadCourseImage)

		admin.POST("/courses/:courseId/chapters", c.adminChapter.CreateChapter)
		admin.GET("/courses/:courseId/chapters", c.adminChapter.ListChapters)
		admin.PUT("/chapters/:chapterId", c.adminChapter.UpdateChapter)
		admin.DELETE("/chapters/:chapterId", c.adminChapter.DeleteChapter)

		admin.POST("/chapters/:chapterId/exercises", c.adminExercise.CreateExercise)
		admin.GET("/chapters/:chapterId/exercises", c.adminExercise.ListExercises)
		admin.PUT("/exercises/:exerciseId", c.adminExercise.UpdateExercise)
		admin.DELETE("/exercises/:exerciseId", c.adminExercise.DeleteExercise)

		admin.GET("/users", c.adminUser.ListUsers)
		admin.PUT("/users/:userId/role", c.adminUser.UpdateUserRole)
		admin.DELETE("/users/:userId", c.adminUser.DeleteUser)

		admin.GET("/settings", c.adminSettings.GetSettings)
		admin.PUT("/settings", c.adminSettings.UpdateSettings)

		admin.GET("/pages", c.adminPage.ListPages)
		admin.POST("/pages", c.adminPage.CreatePage)
		admin.PUT("/pages/:slug", c.adminPage.UpdatePage)
		admin.DELETE("/pages/:slug", c.adminPage.DeletePage)

		admin.GET("/stats", c.adminStats.GetStats)
	}
}
