package main

import (
	"log"

	"github.com/dawit-alemu/tripstay/config"
	"github.com/dawit-alemu/tripstay/controllers"
	"github.com/dawit-alemu/tripstay/gateway"
	"github.com/dawit-alemu/tripstay/payments"
	"github.com/dawit-alemu/tripstay/routes"
	"github.com/dawit-alemu/tripstay/utils"
)

func main() {
	// Initialize logger
	if err := utils.InitLogger(); err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}

	// Load environment variables
	cfg, err := config.LoadConfig()
	if err != nil {
		utils.LogError("Error loading config: %v", err)
		log.Fatal("Error loading config:", err)
	}

	// Initialize database
	config.InitDB()

	// Wire the payment coordinator with the live Chapa client
	chapa := gateway.NewChapaClient(cfg.ChapaBaseURL, cfg.ChapaSecretKey)
	mailer := utils.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom)
	controllers.PaymentCoordinator = payments.NewCoordinator(config.DB, chapa, cfg, mailer)

	// Set up router (middleware is registered inside, ahead of the routes)
	router := routes.SetupRouter()

	port := cfg.Port
	if port == "" {
		port = utils.DefaultPort
	}

	utils.LogInfo("Server starting on port %s", port)
	if err := router.Run(":" + port); err != nil {
		utils.LogError("Error starting server: %v", err)
		log.Fatal("Error starting server:", err)
	}
}
