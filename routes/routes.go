package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"quickdrop/handlers"
	"quickdrop/utils"
)

// RegisterCatalogRoutes registers the static reference data endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/catalog")
	{
		api.GET("", hb.GetCatalogHandler)
		api.GET("/policies", hb.GetPoliciesHandler)
	}
}

// RegisterDraftRoutes sets up the endpoints for the booking draft funnel.
func RegisterDraftRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/drafts")
	{
		api.POST("", hb.CreateDraftHandler)
		api.GET("/:sessionID", hb.GetDraftHandler)
		api.PUT("/:sessionID/service-type", hb.SetServiceTypeHandler)
		api.PUT("/:sessionID/package", hb.SelectPackageHandler)
		api.PUT("/:sessionID/add-ons/:addOnID", hb.ToggleAddOnHandler)
		api.POST("/:sessionID/items", hb.AddItemHandler)
		api.PATCH("/:sessionID/items/:itemID", hb.UpdateItemHandler)
		api.DELETE("/:sessionID/items/:itemID", hb.RemoveItemHandler)
		api.PATCH("/:sessionID/details", hb.SetDetailsHandler)
		api.POST("/:sessionID/reset", hb.ResetDraftHandler)
		api.DELETE("/:sessionID", hb.DiscardDraftHandler)
	}
}

// RegisterCheckoutRoutes sets up the payment endpoints.
func RegisterCheckoutRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/checkout")
	{
		api.POST("/:sessionID", hb.CheckoutHandler)
		api.POST("/:sessionID/confirm-offline", hb.ConfirmOfflineHandler)
	}
	r.POST("/api/bookings/:bookingID/resend-notifications", hb.ResendNotificationsHandler)
}

// RegisterPODRoutes sets up the proof-of-delivery protocol endpoints.
func RegisterPODRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/pod")
	{
		api.POST("/:bookingID/in-transit", hb.MarkInTransitHandler)
		api.POST("/:bookingID/driver-complete", hb.DriverCompleteHandler)
		api.POST("/:bookingID/customer-decision", hb.CustomerDecisionHandler)
		api.GET("/:bookingID", hb.GetPODHandler)
	}
}

// RegisterTrackingRoutes sets up the public tracking endpoint.
func RegisterTrackingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/track/:bookingID", hb.TrackBookingHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":       "ok",
			"message":      "Hi, I'm QuickDrop",
			"dependencies": utils.GetHealthStatus(),
		})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterCatalogRoutes(r, hb)
	RegisterDraftRoutes(r, hb)
	RegisterCheckoutRoutes(r, hb)
	RegisterPODRoutes(r, hb)
	RegisterTrackingRoutes(r, hb)
}
