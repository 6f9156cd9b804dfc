package world

import (
	"github.com/Peritract/meld/internal/domain"
	"github.com/Peritract/meld/pkg/logger"
	"github.com/sirupsen/logrus"
)

// DefaultLogLimit - сколько сообщений хранится в журнале
const DefaultLogLimit = 200

// MessageLog - журнал зоны. Подряд идущие одинаковые сообщения склеиваются.
type MessageLog struct {
	area    uint16
	limit   int
	entries []domain.Message
	// pending - сообщения с момента последнего Drain (для рассылки клиентам)
	pending []domain.Message
}

func NewMessageLog(area uint16, limit int) *MessageLog {
	if limit <= 0 {
		limit = DefaultLogLimit
	}
	return &MessageLog{area: area, limit: limit}
}

// SetLimit меняет размер журнала; лишние старые записи отбрасываются
func (l *MessageLog) SetLimit(limit int) {
	if limit <= 0 {
		limit = DefaultLogLimit
	}
	l.limit = limit
	if len(l.entries) > limit {
		l.entries = l.entries[len(l.entries)-limit:]
	}
}

// Post реализует domain.MessageSink
func (l *MessageLog) Post(msg domain.Message) {
	if msg.Count <= 0 {
		msg.Count = 1
	}

	logger.Log.WithFields(logrus.Fields{
		"area":      l.area,
		"component": "game_log",
		"log_type":  msg.Category.String(),
	}).Info(msg.Text)

	l.entries = merge(l.entries, msg)
	if len(l.entries) > l.limit {
		l.entries = l.entries[len(l.entries)-l.limit:]
	}
	l.pending = merge(l.pending, msg)
}

func merge(list []domain.Message, msg domain.Message) []domain.Message {
	if n := len(list); n > 0 {
		last := &list[n-1]
		if last.Text == msg.Text && last.Category == msg.Category {
			last.Count += msg.Count
			return list
		}
	}
	return append(list, msg)
}

// Messages - копия журнала
func (l *MessageLog) Messages() []domain.Message {
	out := make([]domain.Message, len(l.entries))
	copy(out, l.entries)
	return out
}

// Drain отдает накопленные с прошлого раза сообщения
func (l *MessageLog) Drain() []domain.Message {
	out := l.pending
	l.pending = nil
	return out
}

// Load заменяет журнал сохраненными записями, без повторного логирования
func (l *MessageLog) Load(entries []domain.Message) {
	l.entries = append([]domain.Message(nil), entries...)
	if len(l.entries) > l.limit {
		l.entries = l.entries[len(l.entries)-l.limit:]
	}
	l.pending = nil
}
