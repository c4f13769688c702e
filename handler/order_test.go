package handler

import (
	"errors"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/sampathraj01/Apsara-Cinemas-Backend/model"
)

func TestBuildOrderItems(t *testing.T) {
	now := time.Now()
	items := buildOrderItems("ord-1", []model.OrderItemInput{
		{ProductId: "p1", Name: "Popcorn Bucket", Qty: 2, Price: 125},
		{ProductId: "p2", Name: "Masala Tea", Qty: 1, Price: 40},
	}, now)

	if len(items) != 2 {
		t.Fatalf("len(items) = %d, want 2", len(items))
	}
	for i, item := range items {
		if item.OrderRefId != "ord-1" {
			t.Errorf("items[%d].OrderRefId = %q", i, item.OrderRefId)
		}
		if !strings.HasPrefix(item.OrderItemId, "ord-1-"+item.ProductId+"-") {
			t.Errorf("items[%d].OrderItemId = %q", i, item.OrderItemId)
		}
		if !item.CreatedTime.Equal(now) {
			t.Errorf("items[%d].CreatedTime = %v", i, item.CreatedTime)
		}
	}
	if items[0].Total != 250 || items[1].Total != 40 {
		t.Errorf("totals = %v, %v", items[0].Total, items[1].Total)
	}
}

func TestWriteOrderItemsAllSucceed(t *testing.T) {
	items := buildOrderItems("ord-1", []model.OrderItemInput{
		{ProductId: "p1", Name: "Popcorn Bucket", Qty: 1, Price: 125},
		{ProductId: "p2", Name: "Masala Tea", Qty: 2, Price: 40},
	}, time.Now())

	var mu sync.Mutex
	var inserted []string
	failed := writeOrderItems(items, func(item *model.OrderItem) error {
		mu.Lock()
		defer mu.Unlock()
		inserted = append(inserted, item.ProductId)
		return nil
	})

	if len(failed) != 0 {
		t.Errorf("failed = %v, want none", failed)
	}
	if len(inserted) != 2 {
		t.Errorf("inserted %d items, want 2", len(inserted))
	}
}

// A failed line-item insert must not stop the others, and every product that
// did not make it has to be reported so the handler can surface the partial
// write.
func TestWriteOrderItemsReportsFailedProducts(t *testing.T) {
	items := buildOrderItems("ord-1", []model.OrderItemInput{
		{ProductId: "p1", Name: "Popcorn Bucket", Qty: 1, Price: 125},
		{ProductId: "p2", Name: "Masala Tea", Qty: 2, Price: 40},
		{ProductId: "p3", Name: "Samosa", Qty: 3, Price: 25},
	}, time.Now())

	var mu sync.Mutex
	attempted := 0
	failed := writeOrderItems(items, func(item *model.OrderItem) error {
		mu.Lock()
		attempted++
		mu.Unlock()
		if item.ProductId == "p2" {
			return errors.New("insert failed")
		}
		return nil
	})

	if attempted != 3 {
		t.Errorf("attempted %d inserts, want 3", attempted)
	}
	if len(failed) != 1 || failed[0] != "p2" {
		t.Errorf("failed = %v, want [p2]", failed)
	}
}

func TestWriteOrderItemsCollectsEveryFailure(t *testing.T) {
	items := buildOrderItems("ord-1", []model.OrderItemInput{
		{ProductId: "p1", Name: "Popcorn Bucket", Qty: 1, Price: 125},
		{ProductId: "p2", Name: "Masala Tea", Qty: 2, Price: 40},
	}, time.Now())

	failed := writeOrderItems(items, func(item *model.OrderItem) error {
		return errors.New("insert failed")
	})

	sort.Strings(failed)
	if len(failed) != 2 || failed[0] != "p1" || failed[1] != "p2" {
		t.Errorf("failed = %v, want [p1 p2]", failed)
	}
}
