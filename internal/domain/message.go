package domain

import (
	"fmt"
	"strings"
)

// Category - тип нарративного сообщения
type Category uint8

const (
	CategoryWorld Category = iota
	CategoryCombat
	CategoryAlert
	CategoryItem
	CategoryDeath
	CategorySystem
)

var categoryNames = map[Category]string{
	CategoryWorld:  "WORLD",
	CategoryCombat: "COMBAT",
	CategoryAlert:  "ALERT",
	CategoryItem:   "ITEM",
	CategoryDeath:  "DEATH",
	CategorySystem: "SYSTEM",
}

func (c Category) String() string {
	if s, ok := categoryNames[c]; ok {
		return s
	}
	return "WORLD"
}

// Message - запись для журнала. Count > 1 означает склеенные дубликаты.
type Message struct {
	Text     string   `json:"text"`
	Category Category `json:"category"`
	Count    int      `json:"count"`
}

// NewMessage собирает сообщение с заглавной буквы
func NewMessage(cat Category, format string, args ...any) Message {
	return Message{Text: Capitalize(fmt.Sprintf(format, args...)), Category: cat, Count: 1}
}

// FullText возвращает текст с пометкой о повторах
func (m Message) FullText() string {
	if m.Count > 1 {
		return fmt.Sprintf("%s (x%d)", m.Text, m.Count)
	}
	return m.Text
}

// MessageSink - получатель нарративных событий. Ядро не знает, как они показываются.
type MessageSink interface {
	Post(msg Message)
}

// Capitalize поднимает первую букву
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
