package network

import (
	"sync"

	"github.com/Peritract/meld/internal/domain"
	"github.com/Peritract/meld/pkg/api"
	"github.com/Peritract/meld/pkg/logger"
	"github.com/sirupsen/logrus"
)

const subscriberBuffer = 100

// Broadcaster занимается только рассылкой сообщений подписчикам
type Broadcaster struct {
	mu sync.RWMutex
	// Мапа: EntityID -> Личный канал
	subscribers map[domain.EntityID]chan api.ServerResponse
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subscribers: make(map[domain.EntityID]chan api.ServerResponse),
	}
}

// Register создает личный канал для сущности (игрока или автопилота).
// Старый канал той же сущности закрывается: побеждает последнее подключение.
func (b *Broadcaster) Register(entityID domain.EntityID) chan api.ServerResponse {
	b.mu.Lock()
	defer b.mu.Unlock()

	if old, ok := b.subscribers[entityID]; ok {
		close(old)
	}

	ch := make(chan api.ServerResponse, subscriberBuffer)
	b.subscribers[entityID] = ch
	return ch
}

// Unregister удаляет подписчика, если канал все еще его
func (b *Broadcaster) Unregister(entityID domain.EntityID, ch chan api.ServerResponse) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if cur, ok := b.subscribers[entityID]; ok && cur == ch {
		close(cur)
		delete(b.subscribers, entityID)
	}
}

// SendTo отправляет сообщение конкретному ID (Unicast)
func (b *Broadcaster) SendTo(entityID domain.EntityID, msg api.ServerResponse) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if ch, ok := b.subscribers[entityID]; ok {
		select {
		case ch <- msg:
		default:
			logger.Log.WithFields(logrus.Fields{
				"component": "hub",
				"entity_id": entityID,
				"type":      msg.Type,
			}).Warn("Subscriber channel full, message dropped")
		}
	}
}

// Broadcast отправляет всем (зрители)
func (b *Broadcaster) Broadcast(msg api.ServerResponse) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, ch := range b.subscribers {
		select {
		case ch <- msg:
		default:
		}
	}
}

// HasSubscriber проверяет, управляется ли сущность кем-то
func (b *Broadcaster) HasSubscriber(entityID domain.EntityID) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.subscribers[entityID]
	return ok
}

// SubscriberCount возвращает количество активных подписчиков.
func (b *Broadcaster) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}
