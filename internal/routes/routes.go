package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/mechhub/portal/internal/audit"
	"github.com/mechhub/portal/internal/config"
	"github.com/mechhub/portal/internal/handlers"
	"github.com/mechhub/portal/internal/middleware"
	"github.com/mechhub/portal/internal/search"
	"github.com/mechhub/portal/internal/session"
	"github.com/mechhub/portal/internal/upstream"
)

func RegisterRoutes(r *gin.Engine, cfg *config.Config, store session.Store) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	publicClient := upstream.NewPublicClient(cfg)
	searchRegistry := search.NewRegistry(publicClient, cfg.SearchDebounce)
	auditDispatcher := audit.NewDispatcher()

	// ======================================================
	// HANDLERS
	// ======================================================
	wizardHandler := handlers.NewWizardHandler(cfg, store)
	searchHandler := handlers.NewSearchHandler(cfg, searchRegistry)
	profileHandler := handlers.NewProfileHandler(cfg)
	pushHandler := handlers.NewPushHandler(cfg, store)

	bookingHandler := handlers.NewAdminBookingHandler(cfg, auditDispatcher)
	mechanicHandler := handlers.NewAdminMechanicHandler(cfg, auditDispatcher)
	customerHandler := handlers.NewAdminCustomerHandler(cfg, auditDispatcher)
	serviceHandler := handlers.NewAdminServiceHandler(cfg, auditDispatcher)
	sparePartHandler := handlers.NewAdminSparePartHandler(cfg, auditDispatcher)
	notificationHandler := handlers.NewAdminNotificationHandler(cfg)
	analyticsHandler := handlers.NewAdminAnalyticsHandler(cfg)

	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC — SEARCH + LOCATION
		// ------------------------------
		api.GET("/search", searchHandler.Query)
		api.GET("/search/results", searchHandler.Results)
		api.POST("/search/location", searchHandler.Location)
		api.POST("/search/bounds", searchHandler.Bounds)
		api.GET("/push/vapid-key", pushHandler.VAPIDKey)

		// ------------------------------
		// AUTHENTICATED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.SessionMiddleware())
		{
			// ------------------------------
			// BOOKING WIZARD
			// ------------------------------
			secured.POST("/wizard", wizardHandler.Start)
			secured.GET("/wizard/:id", wizardHandler.State)
			secured.POST("/wizard/:id/car", wizardHandler.SelectCar)
			secured.POST("/wizard/:id/cars", wizardHandler.AddCar)
			secured.POST("/wizard/:id/services", wizardHandler.ToggleService)
			secured.POST("/wizard/:id/details", wizardHandler.Details)
			secured.POST("/wizard/:id/schedule", wizardHandler.Schedule)
			secured.POST("/wizard/:id/next", wizardHandler.Next)
			secured.POST("/wizard/:id/back", wizardHandler.Back)
			secured.POST("/wizard/:id/submit", wizardHandler.Submit)

			// ------------------------------
			// CUSTOMER PROFILE
			// ------------------------------
			secured.GET("/profile/cars", profileHandler.ListCars)
			secured.POST("/profile/cars", profileHandler.CreateCar)
			secured.PUT("/profile/cars/:id", profileHandler.UpdateCar)
			secured.DELETE("/profile/cars/:id", profileHandler.DeleteCar)
			secured.GET("/profile/history", profileHandler.History)

			// ------------------------------
			// PUSH REGISTRATION
			// ------------------------------
			secured.POST("/push/register", pushHandler.Register)
			secured.POST("/push/logout", pushHandler.Logout)

			// ------------------------------
			// ADMIN DASHBOARDS
			// ------------------------------
			admin := secured.Group("/admin")
			admin.Use(middleware.RequireAdmin())
			{
				admin.GET("/bookings", bookingHandler.List)
				admin.POST("/bookings", bookingHandler.Create)
				admin.PUT("/bookings/:id/status", bookingHandler.UpdateStatus)
				admin.PUT("/bookings/:id/reassign", bookingHandler.Reassign)
				admin.DELETE("/bookings/:id", bookingHandler.Delete)

				admin.GET("/mechanics", mechanicHandler.List)
				admin.POST("/mechanics", mechanicHandler.Create)
				admin.PUT("/mechanics/:id", mechanicHandler.Update)
				admin.DELETE("/mechanics/:id", mechanicHandler.Delete)

				admin.GET("/customers", customerHandler.List)
				admin.POST("/customers", customerHandler.Create)
				admin.PUT("/customers/:id", customerHandler.Update)
				admin.DELETE("/customers/:id", customerHandler.Delete)

				admin.GET("/services", serviceHandler.List)
				admin.POST("/services", serviceHandler.Create)
				admin.PUT("/services/:id", serviceHandler.Update)
				admin.DELETE("/services/:id", serviceHandler.Delete)

				admin.GET("/spare-parts", sparePartHandler.List)
				admin.PUT("/spare-parts/:id/status", sparePartHandler.UpdateStatus)

				admin.GET("/notifications", notificationHandler.List)
				admin.PUT("/notifications/:id/read", notificationHandler.MarkRead)
				admin.DELETE("/notifications/:id", notificationHandler.Delete)

				admin.GET("/analytics", analyticsHandler.Dashboard)
			}
		}
	}
}
