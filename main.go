// @title CRM Reporting API
// @version 1.0
// @description CRM Dashboard Reporting and Insights API
// @host localhost:8081
// @BasePath /api/v1
// @schemes http
package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Venus2Mice/crm-ad-dash-sub001/config"
	"github.com/Venus2Mice/crm-ad-dash-sub001/controllers/cms/activity_controller"
	"github.com/Venus2Mice/crm-ad-dash-sub001/controllers/cms/dashboard_controller"
	"github.com/Venus2Mice/crm-ad-dash-sub001/controllers/cms/insights_controller"
	"github.com/Venus2Mice/crm-ad-dash-sub001/controllers/cms/report_controller"
	"github.com/Venus2Mice/crm-ad-dash-sub001/controllers/cms/task_controller"
	"github.com/Venus2Mice/crm-ad-dash-sub001/routes/cms_routes"
	"github.com/Venus2Mice/crm-ad-dash-sub001/services"
	"github.com/Venus2Mice/crm-ad-dash-sub001/store"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Redis connection (optional; rate limiting degrades open without it)
	config.ConnectRedis()

	// Entity store with demo data
	entityStore := store.NewStore()
	store.Seed(entityStore)
	log.Println("✅ Entity store seeded")

	// Wire controllers
	dashboard_controller.Init(entityStore)
	report_controller.Init(entityStore)
	activity_controller.Init(entityStore)
	task_controller.Init(entityStore)
	insights_controller.Init(entityStore, services.NewGeminiClient())

	// Configure CORS for all content types including CSV/PDF downloads
	corsCfg := cors.Config{
		AllowOrigins:     config.AllowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-CSRF-Token", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
		ExposeHeaders:    []string{"Content-Disposition", "Content-Length"},
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	// Register API routes
	api := router.Group("/api/v1")

	cms_routes.SetupDashboardRoutes(api)
	cms_routes.SetupReportRoutes(api)
	cms_routes.SetupActivityRoutes(api)
	cms_routes.SetupTaskRoutes(api)
	cms_routes.SetupInsightsRoutes(api)
	log.Println("✅ Reporting routes registered")

	fmt.Printf("🚀 Server is running on http://localhost:%s\n", config.Port())
	router.Run(":" + config.Port())
}
