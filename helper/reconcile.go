package helper

import (
	"context"
	"fmt"
	"log"

	"github.com/sampathraj01/Apsara-Cinemas-Backend/constants"
	"github.com/sampathraj01/Apsara-Cinemas-Backend/database"
	"github.com/sampathraj01/Apsara-Cinemas-Backend/model"
	"github.com/sampathraj01/Apsara-Cinemas-Backend/utils"

	"github.com/robfig/cron/v3"
)

var reconcileCron *cron.Cron

func StartInvoiceReconciler() {
	reconcileCron = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	_, err := reconcileCron.AddFunc("*/5 * * * *", ReconcileInvoices)
	if err != nil {
		log.Printf("Failed to start invoice reconciler: %v", err)
		return
	}

	reconcileCron.Start()
	log.Println("Invoice reconciler started (every 5 minutes)")
}

func StopInvoiceReconciler() {
	if reconcileCron != nil {
		reconcileCron.Stop()
		log.Println("Invoice reconciler stopped")
	}
}

// ReconcileInvoices sweeps paid orders whose invoice link never landed and
// retries the compose → upload → link sequence from the stored line items.
// Paid orders with no stored items are a partial write from checkout; they
// are flagged to the error sink for manual follow-up instead of retried.
func ReconcileInvoices() {
	db := database.DB

	var orders []model.Order
	if err := db.Preload("Items").
		Where("payment_status = ? AND (invoice_url IS NULL OR invoice_url = '')", constants.PAYMENT_SUCCESS).
		Find(&orders).Error; err != nil {
		log.Printf("Invoice reconciler scan failed: %v", err)
		return
	}

	for _, order := range orders {
		if len(order.Items) == 0 {
			utils.LogError("orders", "reconcile",
				fmt.Errorf("%s: order %s (#%s) paid but has no line items", constants.PARTIAL_ORDER_WRITE, order.OrderId, order.OrderNo), "")
			continue
		}

		doc := BuildInvoiceDocument(order, order.Items)
		rendered, err := RenderInvoice(doc)
		if err != nil {
			log.Printf("Reconciler failed to render invoice for order %s: %v", order.OrderId, err)
			utils.LogError("orders", "reconcile", err, "")
			continue
		}

		key := fmt.Sprintf("invoices/%s-%s", order.OrderId, order.OrderNo)
		url, err := UploadInvoice(context.Background(), rendered, key)
		if err != nil {
			log.Printf("Reconciler failed to upload invoice for order %s: %v", order.OrderId, err)
			utils.LogError("orders", "reconcile", err, "")
			continue
		}

		if err := db.Model(&model.Order{}).Where("order_id = ?", order.OrderId).
			Update("invoice_url", url).Error; err != nil {
			log.Printf("Reconciler failed to link invoice for order %s: %v", order.OrderId, err)
			utils.LogError("orders", "reconcile", err, "")
			continue
		}

		log.Printf("Reconciled invoice for order %s (#%s)", order.OrderId, order.OrderNo)
	}
}
