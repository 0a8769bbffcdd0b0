package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"

	"store_manager/config"
	"store_manager/database"
	"store_manager/model"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

var (
	redisClient = redis.NewClient(&redis.Options{
		Addr: config.ConfigDefault("REDIS_ADDR", "localhost:6379"),
	})

	rooms   = make(map[string]map[*websocket.Conn]bool)
	roomsMu sync.Mutex
)

const (
	EventNewOrder         = "order:new"
	EventOrderUpdated     = "order:updated"
	EventOrderAssigned    = "order:assigned"
	EventOrderCancelled   = "order:cancelled"
	EventDeliveryLocation = "delivery:location"
)

func storeChannel(storeId uint) string {
	return fmt.Sprintf("store:%d", storeId)
}

func orderChannel(publicCode string) string {
	return "order:" + publicCode
}

func publishEvent(channel, event string, data any) {
	payload, err := json.Marshal(fiber.Map{"event": event, "data": data})
	if err != nil {
		return
	}
	redisClient.Publish(context.Background(), channel, payload)
}

// emitOrderEvent fans an order event out to the store dashboard room and to
// the public tracking room for that order.
func emitOrderEvent(event string, order model.Order) {
	publishEvent(storeChannel(order.StoreID), event, order)
	publishEvent(orderChannel(order.PublicCode), event, order)
}

func joinRoom(room string, c *websocket.Conn) {
	roomsMu.Lock()
	if rooms[room] == nil {
		rooms[room] = make(map[*websocket.Conn]bool)
	}
	rooms[room][c] = true
	roomsMu.Unlock()
}

func leaveRoom(room string, c *websocket.Conn) {
	roomsMu.Lock()
	if rooms[room] != nil {
		delete(rooms[room], c)
		if len(rooms[room]) == 0 {
			delete(rooms, room)
		}
	}
	roomsMu.Unlock()
}

// forwardChannel copies Redis messages for one room onto the socket until the
// subscription is closed.
func forwardChannel(pubsub *redis.PubSub, c *websocket.Conn) {
	for msg := range pubsub.Channel() {
		if err := c.WriteMessage(websocket.TextMessage, []byte(msg.Payload)); err != nil {
			return
		}
	}
}

// StoreWebsocket streams order events for one store to staff dashboards.
// Couriers push their position through the same socket; it is rebroadcast to
// the store room and to the order's public tracking room.
func StoreWebsocket(c *websocket.Conn) {
	storeId64, err := strconv.ParseUint(c.Params("storeId"), 10, 32)
	if err != nil {
		c.Close()
		return
	}
	storeId := uint(storeId64)
	room := storeChannel(storeId)

	joinRoom(room, c)
	pubsub := redisClient.Subscribe(context.Background(), room)
	defer func() {
		pubsub.Close()
		leaveRoom(room, c)
		c.Close()
	}()

	go forwardChannel(pubsub, c)

	type locationMessage struct {
		Event     string  `json:"event"`
		OrderCode string  `json:"orderCode"`
		Lat       float64 `json:"lat"`
		Lng       float64 `json:"lng"`
	}

	for {
		_, raw, err := c.ReadMessage()
		if err != nil {
			return
		}

		var msg locationMessage
		if err := json.Unmarshal(raw, &msg); err != nil || msg.Event != EventDeliveryLocation {
			continue
		}

		var order model.Order
		if err := database.DB.
			Where("public_code = ? AND store_id = ?", msg.OrderCode, storeId).
			First(&order).Error; err != nil {
			continue
		}

		location := fiber.Map{"orderCode": order.PublicCode, "lat": msg.Lat, "lng": msg.Lng}
		publishEvent(storeChannel(storeId), EventDeliveryLocation, location)
		publishEvent(orderChannel(order.PublicCode), EventDeliveryLocation, location)
	}
}

// TrackWebsocket is the public customer-facing socket: knowing the unguessable
// public code is the only credential required.
func TrackWebsocket(c *websocket.Conn) {
	code := c.Params("code")

	var order model.Order
	if err := database.DB.Where("public_code = ?", code).First(&order).Error; err != nil {
		c.Close()
		return
	}

	room := orderChannel(order.PublicCode)
	joinRoom(room, c)
	pubsub := redisClient.Subscribe(context.Background(), room)
	defer func() {
		pubsub.Close()
		leaveRoom(room, c)
		c.Close()
	}()

	// Send current state once on connect.
	c.WriteJSON(fiber.Map{"event": EventOrderUpdated, "data": order})

	go forwardChannel(pubsub, c)

	// Customers only listen; drain until disconnect.
	for {
		if _, _, err := c.ReadMessage(); err != nil {
			return
		}
	}
}
