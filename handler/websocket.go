package handler

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"sync"

	"github.com/sampathraj01/Apsara-Cinemas-Backend/database"
	"github.com/sampathraj01/Apsara-Cinemas-Backend/model"

	"github.com/gofiber/contrib/websocket"
	"github.com/redis/go-redis/v9"
)

const printChannel = "orders:print"

// printFeedClient is the part of *websocket.Conn the feed needs. Tests
// register fakes through it.
type printFeedClient interface {
	WriteMessage(messageType int, data []byte) error
	Close() error
}

var (
	redisClient = redis.NewClient(&redis.Options{Addr: redisAddr()})

	printClients  = make(map[printFeedClient]bool)
	mu            sync.Mutex
	subscribeOnce sync.Once
)

func redisAddr() string {
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		return addr
	}
	return "localhost:6379"
}

// PrintFeedWebsocket streams newly paid orders to the counter printer app.
// On connect the current print queue is sent once, then every payment
// success published on the Redis channel is fanned out live.
func PrintFeedWebsocket(c *websocket.Conn) {
	startPrintFeedSubscriber()

	defer func() {
		mu.Lock()
		delete(printClients, c)
		mu.Unlock()
		c.Close()
	}()

	mu.Lock()
	printClients[c] = true
	mu.Unlock()

	if queue, err := pendingPrintOrders(database.DB); err == nil {
		c.WriteJSON(queue)
	} else {
		log.Printf("Failed to send initial print queue: %v", err)
	}

	// Hold the connection open until the client goes away. Delivery happens
	// on the shared subscriber goroutine.
	for {
		if _, _, err := c.ReadMessage(); err != nil {
			return
		}
	}
}

// startPrintFeedSubscriber runs one Redis subscription for the whole process,
// no matter how many printer clients connect. Each published job reaches
// every client exactly once.
func startPrintFeedSubscriber() {
	subscribeOnce.Do(func() {
		pubsub := redisClient.Subscribe(context.Background(), printChannel)
		go func() {
			for msg := range pubsub.Channel() {
				broadcastPrintJob([]byte(msg.Payload))
			}
		}()
	})
}

// broadcastPrintJob writes one payload to every registered client, dropping
// clients whose connection is gone.
func broadcastPrintJob(payload []byte) {
	mu.Lock()
	defer mu.Unlock()

	for client := range printClients {
		if err := client.WriteMessage(websocket.TextMessage, payload); err != nil {
			client.Close()
			delete(printClients, client)
		}
	}
}

// PublishPrintJob pushes a paid order onto the print feed. Best effort.
func PublishPrintJob(order model.Order, items []model.OrderItem) {
	payload, err := json.Marshal(map[string]interface{}{
		"orderid": order.OrderId,
		"orderNo": order.OrderNo,
		"name":    order.CustomerName,
		"seatNo":  order.SeatNo,
		"amount":  order.Amount,
		"items":   items,
	})
	if err != nil {
		log.Printf("Failed to build print job payload for order %s: %v", order.OrderId, err)
		return
	}

	if err := redisClient.Publish(context.Background(), printChannel, payload).Err(); err != nil {
		log.Printf("Failed to publish print job for order %s: %v", order.OrderId, err)
	}
}
