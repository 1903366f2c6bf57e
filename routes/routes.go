package routes

import (
	"github.com/dawit-alemu/tripstay/controllers"
	"github.com/dawit-alemu/tripstay/middleware"
	"github.com/dawit-alemu/tripstay/utils"
	"github.com/gin-gonic/gin"
)

// SetupRouter initializes and returns the Gin router with all routes
func SetupRouter() *gin.Engine {
	router := gin.New()

	router.Use(utils.LoggerMiddleware())
	router.Use(utils.CORSMiddleware())
	router.Use(utils.RecoveryMiddleware())
	router.Use(utils.RequestIDMiddleware())

	api := router.Group("/v1")
	{
		// Auth
		api.POST("/register", controllers.RegisterUser)
		api.POST("/login", controllers.LoginUser)

		// Listings: public read, authenticated write
		api.GET("/listings", controllers.GetListings)
		api.GET("/listings/:id", controllers.GetListingDetails)
		api.GET("/listings/:id/reviews", controllers.GetListingReviews)

		// Reviews: public read
		api.GET("/reviews", controllers.GetReviews)
		api.GET("/reviews/:id", controllers.GetReview)

		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.POST("/listings", controllers.CreateListing)
			protected.PUT("/listings/:id", controllers.UpdateListing)
			protected.PATCH("/listings/:id", controllers.UpdateListing)
			protected.DELETE("/listings/:id", controllers.DeleteListing)
			protected.POST("/listings/:id/reviews", controllers.AddListingReview)

			protected.POST("/reviews", controllers.CreateReview)
			protected.PUT("/reviews/:id", controllers.UpdateReview)
			protected.PATCH("/reviews/:id", controllers.UpdateReview)
			protected.DELETE("/reviews/:id", controllers.DeleteReview)

			protected.GET("/bookings", controllers.ListBookings)
			protected.POST("/bookings", controllers.CreateBooking)
			protected.GET("/bookings/:id", controllers.GetBooking)
			protected.PUT("/bookings/:id", controllers.UpdateBooking)
			protected.PATCH("/bookings/:id", controllers.UpdateBooking)
			protected.DELETE("/bookings/:id", controllers.CancelBooking)
			protected.GET("/bookings/:id/receipt", controllers.DownloadBookingReceipt)

			protected.POST("/payments/initiate/:booking_id", controllers.InitiatePayment)
			protected.GET("/payments/verify/:booking_id", controllers.VerifyPayment)
		}

		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
		{
			admin.GET("/reports/bookings", controllers.GetBookingsReport)
			admin.GET("/reports/bookings/export", controllers.DownloadBookingsReportExcel)
		}
	}

	return router
}
