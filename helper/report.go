package helper

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/sampathraj01/Apsara-Cinemas-Backend/config"
	"github.com/sampathraj01/Apsara-Cinemas-Backend/constants"
	"github.com/sampathraj01/Apsara-Cinemas-Backend/database"
	"github.com/sampathraj01/Apsara-Cinemas-Backend/model"
	"github.com/sampathraj01/Apsara-Cinemas-Backend/utils"

	"github.com/go-co-op/gocron/v2"
	"github.com/gosimple/slug"
)

var reportScheduler gocron.Scheduler

func SendDailySalesReport() {
	log.Println("[CRON] SendDailySalesReport triggered")

	loc := utils.VenueLocation()
	now := time.Now().In(loc)
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	var orders []model.Order
	if err := database.DB.Preload("Items").
		Where("payment_status = ? AND created_time >= ? AND created_time < ?",
			constants.PAYMENT_SUCCESS, dayStart, dayStart.Add(24*time.Hour)).
		Order("created_time asc").
		Find(&orders).Error; err != nil {
		log.Printf("Sales report scan failed: %v", err)
		utils.LogError("orders", "dailyreport", err, "")
		return
	}

	revenue := 0.0
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Write([]string{"orderNo", "orderid", "name", "seatNo", "amount", "time"})
	for _, order := range orders {
		revenue += order.Amount
		w.Write([]string{
			order.OrderNo,
			order.OrderId,
			order.CustomerName,
			order.SeatNo,
			strconv.FormatFloat(order.Amount, 'f', 2, 64),
			order.OrderTime,
		})
	}
	w.Flush()

	date := now.Format("02-01-2006")
	body := fmt.Sprintf(
		`<html><body style="font-family:Arial,sans-serif"><h2 style="color:#CB202D">Apsara Theatre - Daily Sales</h2><p>Date: %s</p><p>Paid orders: <b>%d</b></p><p>Revenue: <b>₹ %s</b></p></body></html>`,
		date, len(orders), utils.FormatCurrency(revenue))

	to := config.Config("REPORT_TO")
	if to == "" {
		log.Println("REPORT_TO not configured, skipping sales report mail")
		return
	}

	attachment := slug.Make("apsara sales "+date) + ".csv"
	if err := utils.SendSalesReportEmail(to, "Daily sales - "+date, body, attachment, buf.Bytes()); err != nil {
		log.Printf("Failed to send sales report: %v", err)
		utils.LogError("orders", "dailyreport", err, "")
		return
	}

	log.Printf("Sales report sent: %d orders, ₹%s", len(orders), utils.FormatCurrency(revenue))
}

func StartSalesReportScheduler() {
	s, err := gocron.NewScheduler(
		gocron.WithLocation(utils.VenueLocation()),
	)
	if err != nil {
		log.Printf("Failed to create sales report scheduler: %v", err)
		return
	}

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(23, 55, 0),
			),
		),
		gocron.NewTask(SendDailySalesReport),
	)
	if err != nil {
		log.Printf("Failed to schedule sales report: %v", err)
		return
	}

	s.Start()
	reportScheduler = s
	log.Println("Sales report scheduler started (daily 23:55)")
}

func StopSalesReportScheduler() {
	if reportScheduler != nil {
		reportScheduler.Shutdown()
	}
}
