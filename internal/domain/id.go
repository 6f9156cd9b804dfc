package domain

import (
	"fmt"
	"strconv"
)

// EntityID - упакованный идентификатор (Kind + Area + Index)
type EntityID uint64

// ObjectKind - чем является объект с этим ID
type ObjectKind uint8

const (
	KindUnknown ObjectKind = iota
	KindCreature
	KindItem
	KindFeature
)

// Конфигурация битов
const (
	bitsIndex = 40
	bitsArea  = 16
	bitsKind  = 8

	shiftArea = bitsIndex
	shiftKind = bitsIndex + bitsArea

	maskIndex = (1 << bitsIndex) - 1
	maskArea  = (1 << bitsArea) - 1
	maskKind  = (1 << bitsKind) - 1
)

// PackEntityID создает ID из компонентов
func PackEntityID(kind ObjectKind, area uint16, index uint64) EntityID {
	id := index & maskIndex
	id |= (uint64(area) & maskArea) << shiftArea
	id |= (uint64(kind) & maskKind) << shiftKind
	return EntityID(id)
}

func (id EntityID) Kind() ObjectKind {
	return ObjectKind((id >> shiftKind) & maskKind)
}

func (id EntityID) Area() uint16 {
	return uint16((id >> shiftArea) & maskArea)
}

func (id EntityID) Index() uint64 {
	return uint64(id & maskIndex)
}

// MarshalJSON сериализует ID в строку, так как JS теряет точность для больших int64
func (id EntityID) MarshalJSON() ([]byte, error) {
	s := strconv.FormatUint(uint64(id), 10)
	return []byte(`"` + s + `"`), nil
}

// UnmarshalJSON парсит строку или число из JSON
func (id *EntityID) UnmarshalJSON(data []byte) error {
	if len(data) > 1 && data[0] == '"' && data[len(data)-1] == '"' {
		data = data[1 : len(data)-1]
	}
	val, err := ParseEntityID(string(data))
	if err != nil {
		return err
	}
	*id = val
	return nil
}

// ParseEntityID разбирает десятичное представление ID
func ParseEntityID(s string) (EntityID, error) {
	val, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid entity id %q: %w", s, err)
	}
	return EntityID(val), nil
}

// String для логов: [Kind:Area:Idx]
func (id EntityID) String() string {
	return fmt.Sprintf("[%d:%d:%d]", id.Kind(), id.Area(), id.Index())
}

// IDAllocator выдает последовательные ID внутри одной зоны.
// Последовательность детерминирована, что важно для реплеев.
type IDAllocator struct {
	Area uint16 `json:"area"`
	Next uint64 `json:"next"`
}

// Allocate возвращает следующий свободный ID указанного вида
func (a *IDAllocator) Allocate(kind ObjectKind) EntityID {
	a.Next++
	return PackEntityID(kind, a.Area, a.Next)
}

// Key - десятичная запись ID, как в JSON
func (id EntityID) Key() string {
	return strconv.FormatUint(uint64(id), 10)
}
