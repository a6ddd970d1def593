package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"predictive-maintenance-backend/config"
	"predictive-maintenance-backend/internal/mw"
	"predictive-maintenance-backend/internal/service"
)

// NewRouter creates and configures the gin router. Every route delegates to
// the service layer; no business rules live here. Parameterized routes like
// /machines/:id/sensor-history are registered alongside /machines/:id — gin's
// route tree matches the most specific pattern first.
func NewRouter(svc *service.Service, cfg *config.Config, log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	handler := NewHandler(svc, log)

	rateLimiter := mw.RateLimiter(rate.Limit(cfg.Server.RateLimitPerSec), cfg.Server.RateLimitBurst)

	cacheTTL := time.Duration(cfg.Server.CacheTTLSeconds) * time.Second
	cacheStore := cache.New(cacheTTL, 2*cacheTTL)
	caching := mw.Cache(cacheStore, cacheTTL)

	api := r.Group("/api")
	api.Use(rateLimiter)
	{
		api.POST("/auth/login", handler.Login)

		api.GET("/dashboard/stats", caching, handler.GetDashboardStats)
		api.GET("/dashboard/failure-trend", caching, handler.GetFailureTrend)

		api.GET("/machines", handler.GetMachines)
		api.POST("/machines", handler.CreateMachine)
		api.GET("/machines/:id", handler.GetMachine)
		api.PUT("/machines/:id", handler.UpdateMachine)
		api.DELETE("/machines/:id", handler.DeleteMachine)
		api.GET("/machines/:id/sensor-history", handler.GetMachineSensorHistory)

		api.GET("/work-orders", handler.GetWorkOrders)
		api.POST("/work-orders", handler.CreateWorkOrder)
		api.GET("/work-orders/:id", handler.GetWorkOrder)
		api.PUT("/work-orders/:id", handler.UpdateWorkOrder)
		api.DELETE("/work-orders/:id", handler.DeleteWorkOrder)
		api.POST("/work-orders/:id/notes", handler.AddWorkOrderNote)

		api.GET("/alerts", handler.GetAlerts)
		api.PUT("/alerts/:id/acknowledge", handler.AcknowledgeAlert)
		api.DELETE("/alerts/:id", handler.DeleteAlert)

		api.GET("/users", handler.GetUsers)
		api.POST("/users", handler.CreateUser)
		api.GET("/users/:id", handler.GetUser)
		api.PUT("/users/:id", handler.UpdateUser)
		api.DELETE("/users/:id", handler.DeleteUser)
		api.PUT("/users/:id/avatar", handler.UpdateAvatar)

		api.GET("/company", handler.GetCompanySettings)
		api.PUT("/company", handler.UpdateCompanySettings)

		api.GET("/notifications", handler.GetNotifications)
		api.PUT("/notifications/read-all", handler.MarkAllNotificationsRead)
		api.PUT("/notifications/:id/read", handler.MarkNotificationRead)

		api.GET("/reports/summary", caching, handler.GetReportSummary)
		api.POST("/reports/export", handler.ExportPDF)
		api.GET("/calendar", handler.GetMaintenanceCalendar)

		api.GET("/access-requests", handler.GetAccessRequests)
		api.POST("/access-requests", handler.CreateAccessRequest)
		api.PUT("/access-requests/:id", handler.ReviewAccessRequest)

		api.GET("/asset-types", handler.GetAssetTypes)
		api.POST("/asset-types", handler.CreateAssetType)
		api.PUT("/asset-types/:id", handler.UpdateAssetType)
		api.DELETE("/asset-types/:id", handler.DeleteAssetType)

		api.GET("/sensor-thresholds", handler.GetSensorThresholds)
		api.POST("/sensor-thresholds", handler.CreateSensorThreshold)
		api.PUT("/sensor-thresholds/:id", handler.UpdateSensorThreshold)
		api.DELETE("/sensor-thresholds/:id", handler.DeleteSensorThreshold)

		api.GET("/ai/model", handler.GetAIModelInfo)
		api.POST("/ai/model/train", handler.TrainAIModel)
	}

	return r
}
