package routes

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Adjust this for production
	},
}

// Connected admin dashboards with mutex for thread safety
var notifyClients = make(map[*websocket.Conn]bool)
var notifyCh = make(chan []byte, 100) // Buffered channel to prevent blocking
var notifyMu = &sync.Mutex{}

// notifyAdmins pushes an event to every connected admin dashboard. Dropped
// when the buffer is full rather than blocking the request.
func notifyAdmins(event string, data interface{}) {
	payload, err := json.Marshal(fiber.Map{"event": event, "data": data})
	if err != nil {
		log.Println("Notify marshal error:", err)
		return
	}
	select {
	case notifyCh <- payload:
	default:
		log.Println("Notify channel full, dropping event:", event)
	}
}

func runNotifyHub() {
	for message := range notifyCh {
		notifyMu.Lock()
		for client := range notifyClients {
			err := client.WriteMessage(websocket.TextMessage, message)
			if err != nil {
				log.Printf("WebSocket write error: %v", err)
				client.Close()
				delete(notifyClients, client)
			}
		}
		notifyMu.Unlock()
	}
}

func notifyHandler() fiber.Handler {
	return adaptor.HTTPHandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("Error upgrading:", err)
			return
		}
		defer conn.Close()

		notifyMu.Lock()
		notifyClients[conn] = true
		notifyMu.Unlock()
		log.Println("Admin dashboard connected:", conn.RemoteAddr())

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
					log.Printf("WebSocket read error: %v", err)
				}
				notifyMu.Lock()
				delete(notifyClients, conn)
				notifyMu.Unlock()
				log.Println("Admin dashboard disconnected:", conn.RemoteAddr())
				break
			}
		}
	})
}
