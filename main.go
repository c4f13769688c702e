package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/sampathraj01/Apsara-Cinemas-Backend/config"
	"github.com/sampathraj01/Apsara-Cinemas-Backend/database"
	"github.com/sampathraj01/Apsara-Cinemas-Backend/helper"
	"github.com/sampathraj01/Apsara-Cinemas-Backend/router"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:5173/",
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		MaxAge:           600,
	}))

	database.ConnectDB()

	helper.StartInvoiceReconciler()
	helper.StartSalesReportScheduler()

	router.SetupRoutes(app)

	// Stop the schedulers and drain the listener on SIGINT/SIGTERM.
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		helper.StopInvoiceReconciler()
		helper.StopSalesReportScheduler()
		app.Shutdown()
	}()

	port := config.ConfigDefault("PORT", "8002")
	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}
}
