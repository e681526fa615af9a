package ws

import (
	"context"
	"sync"

	"tekfix_jobboard/internal/logger"
	"tekfix_jobboard/internal/services/dto"
)

// WebSocketManager рассылает события вакансий всем подключенным клиентам
type WebSocketManager struct {
	clients    map[*Client]struct{}
	register   chan *Client
	unregister chan *Client
	broadcast  chan dto.JobEvent
	done       chan struct{}
	mu         sync.RWMutex
}

func NewWebSocketManager() *WebSocketManager {
	return &WebSocketManager{
		clients:    make(map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan dto.JobEvent, 64),
		done:       make(chan struct{}),
	}
}

// Run обслуживает регистрацию и рассылку до отмены ctx
func (manager *WebSocketManager) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			close(manager.done)
			manager.closeAll()
			return

		case client := <-manager.register:
			manager.mu.Lock()
			manager.clients[client] = struct{}{}
			total := len(manager.clients)
			manager.mu.Unlock()
			logger.Debug("WS client registered", "client_id", client.ID, "total", total)

		case client := <-manager.unregister:
			manager.remove(client)

		case event := <-manager.broadcast:
			manager.broadcastEvent(event)
		}
	}
}

// Register подключает клиента; false, если менеджер уже остановлен
func (manager *WebSocketManager) Register(client *Client) bool {
	select {
	case manager.register <- client:
		return true
	case <-manager.done:
		return false
	}
}

func (manager *WebSocketManager) Unregister(client *Client) {
	select {
	case manager.unregister <- client:
	case <-manager.done:
	}
}

// PublishJobEvent не блокирует сервис: при переполненной очереди событие теряется
func (manager *WebSocketManager) PublishJobEvent(event dto.JobEvent) {
	if manager == nil {
		return
	}
	select {
	case manager.broadcast <- event:
	default:
		logger.Warn("WS broadcast queue is full, event dropped", "type", event.Type, "job_id", event.JobID)
	}
}

func (manager *WebSocketManager) broadcastEvent(event dto.JobEvent) {
	manager.mu.RLock()
	var slow []*Client
	for client := range manager.clients {
		select {
		case client.Send <- event:
		default:
			slow = append(slow, client)
		}
	}
	manager.mu.RUnlock()

	// Канал заполнен, клиент отключается
	for _, client := range slow {
		logger.Warn("WS client disconnected due to full send channel", "client_id", client.ID)
		manager.remove(client)
	}
}

func (manager *WebSocketManager) remove(client *Client) {
	manager.mu.Lock()
	defer manager.mu.Unlock()

	if _, ok := manager.clients[client]; ok {
		close(client.Send)
		delete(manager.clients, client)
		logger.Debug("WS client unregistered", "client_id", client.ID, "total", len(manager.clients))
	}
}

func (manager *WebSocketManager) closeAll() {
	manager.mu.Lock()
	defer manager.mu.Unlock()

	for client := range manager.clients {
		close(client.Send)
		delete(manager.clients, client)
	}
}

// GetClientCount возвращает количество подключенных клиентов
func (manager *WebSocketManager) GetClientCount() int {
	manager.mu.RLock()
	defer manager.mu.RUnlock()
	return len(manager.clients)
}
