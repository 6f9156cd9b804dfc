package api

import (
	"encoding/json"
)

// Типы ответов сервера
const (
	ResponseUpdate   = "UPDATE"
	ResponseMode     = "MODE"
	ResponseGameOver = "GAME_OVER"
	ResponseError    = "ERROR"
)

// --- СЕРВЕР -> КЛИЕНТ ---

// ServerResponse это корневой объект, который сервер отправляет клиенту.
// UPDATE - полный снимок видимого мира после раунда.
// MODE - клиент должен открыть меню/выбор (ход не потрачен).
type ServerResponse struct {
	// Type тип сообщения: UPDATE, MODE, GAME_OVER, ERROR
	Type string `json:"type"`

	// Round номер завершенного раунда
	Round int `json:"round"`

	// MyEntityID ID сущности, которой управляет данный клиент.
	MyEntityID string `json:"myEntityId,omitempty"`

	// Grid метаданные о размере всей карты.
	Grid *GridMeta `json:"grid,omitempty"`

	// Map срез всех видимых и/или исследованных тайлов.
	Map []TileView `json:"map,omitempty"`

	// Entities срез всех видимых существ.
	Entities []EntityView `json:"entities,omitempty"`

	// Items предметы на полу в поле зрения
	Items []ItemView `json:"items,omitempty"`

	// Features объекты мира в поле зрения (лужи, источники)
	Features []FeatureView `json:"features,omitempty"`

	// Player подробности о собственном теле
	Player *PlayerView `json:"player,omitempty"`

	// Mode запрос на переключение режима интерфейса
	Mode *ModeView `json:"mode,omitempty"`

	// Logs срез новых сообщений, сгенерированных с прошлого раунда.
	Logs []LogEntry `json:"logs,omitempty"`

	// Error текст ошибки для ERROR
	Error string `json:"error,omitempty"`
}

// GridMeta содержит общие размеры карты.
type GridMeta struct {
	Width  int `json:"w"`
	Height int `json:"h"`
}

// TileView это DTO для одного тайла карты.
type TileView struct {
	X int `json:"x"`
	Y int `json:"y"`

	Symbol string `json:"symbol"`
	Color  string `json:"color"`

	IsWall bool `json:"isWall"`

	// IsVisible true, если тайл находится в текущем поле зрения.
	IsVisible bool `json:"isVisible"`

	// IsExplored true, если тайл когда-либо был увиден ("туман войны").
	IsExplored bool `json:"isExplored"`
}

// PosView - координаты клетки
type PosView struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// EntityView это DTO для существа.
type EntityView struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Faction string  `json:"faction"`
	Symbol  string  `json:"symbol"`
	Color   string  `json:"color"`
	Pos     PosView `json:"pos"`

	// Stats характеристики; у чужих существ только здоровье
	Stats *StatsView `json:"stats,omitempty"`
}

// StatsView это DTO для характеристик тела.
type StatsView struct {
	HP          int  `json:"hp"`
	MaxHP       int  `json:"maxHp"`
	Strength    int  `json:"strength,omitempty"`
	Defence     int  `json:"defence,omitempty"`
	Speed       int  `json:"speed,omitempty"`
	Instability int  `json:"instability,omitempty"`
	IsDead      bool `json:"isDead"`
}

// PartView - часть тела в слоте
type PartView struct {
	Slot        string `json:"slot"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// AbilityView - способность и ее перезарядка
type AbilityView struct {
	Key   string `json:"key"`
	Name  string `json:"name"`
	Kind  string `json:"kind"`
	Range int    `json:"range,omitempty"`
	Delay int    `json:"delay"`
}

// ConditionView - активное состояние
type ConditionView struct {
	Name      string `json:"name"`
	Remaining int    `json:"remaining"`
}

// PlayerView - то, что игрок знает о себе
type PlayerView struct {
	Parts      []PartView      `json:"parts"`
	Affinities map[string]int  `json:"affinities,omitempty"`
	Abilities  []AbilityView   `json:"abilities,omitempty"`
	Conditions []ConditionView `json:"conditions,omitempty"`
	Inventory  *InventoryView  `json:"inventory,omitempty"`
	Equipment  *EquipmentView  `json:"equipment,omitempty"`
}

// LogEntry представляет одну запись в игровом логе.
type LogEntry struct {
	Text  string `json:"text"`
	Type  string `json:"type"` // WORLD, COMBAT, ALERT, ITEM, DEATH, SYSTEM
	Count int    `json:"count,omitempty"`
}

// ItemView представляет предмет для клиента
type ItemView struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Symbol      string   `json:"symbol"`
	Color       string   `json:"color"`
	Category    string   `json:"category"`
	Pos         *PosView `json:"pos,omitempty"`
	Damage      int      `json:"damage,omitempty"`
	Defence     int      `json:"defence,omitempty"`
	Uses        int      `json:"uses,omitempty"`
}

// FeatureView - объект мира
type FeatureView struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Pos          PosView `json:"pos"`
	Interactable bool    `json:"interactable"`
}

// InventoryView представляет инвентарь для клиента
type InventoryView struct {
	Items    []ItemView `json:"items"`
	MaxSlots int        `json:"maxSlots"`
}

// EquipmentView представляет экипированные предметы
type EquipmentView struct {
	Weapon *ItemView `json:"weapon,omitempty"`
	Armour *ItemView `json:"armour,omitempty"`
}

// ModeView - в какой режим перейти и с какими вариантами
type ModeView struct {
	Action  string     `json:"action"`
	Items   []ItemView `json:"items,omitempty"`
	Target  *PosView   `json:"target,omitempty"`
	History []LogEntry `json:"history,omitempty"`
}

// --- КЛИЕНТ -> СЕРВЕР ---

// ClientCommand это корневой объект для всех сообщений от клиента к серверу.
type ClientCommand struct {
	// Token ID сущности. Обязателен только для первого сообщения (LOGIN).
	Token string `json:"token,omitempty"`

	// Action название действия (SURGE, WAIT, PICKUP, FIRE ...)
	Action string `json:"action"`

	// Payload JSON-объект с данными для действия. Его структура зависит от Action.
	Payload json.RawMessage `json:"payload,omitempty"`
}

// --- Payloads ---

// DirectionPayload используется для SURGE и MOVE.
type DirectionPayload struct {
	Dx int `json:"dx"`
	Dy int `json:"dy"`
}

// EntityPayload используется для ATTACK.
type EntityPayload struct {
	TargetID string `json:"targetId"`
}

// PositionPayload используется для INTERACT и LOOK.
type PositionPayload struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// ItemPayload используется для действий с предметами (PICKUP, DROP, USE, EQUIP, UNEQUIP).
// Пустой itemId в PICKUP означает "то, что лежит под ногами".
type ItemPayload struct {
	ItemID string `json:"itemId"`
}

// ThrowPayload используется для THROW.
type ThrowPayload struct {
	ItemID string `json:"itemId"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
}

// AbilityPayload используется для FIRE, EVOKE и ACTIVATE.
type AbilityPayload struct {
	Ability string `json:"ability"`
	X       int    `json:"x"`
	Y       int    `json:"y"`
}
