package domain

import "strings"

// ActionType - Внутренний числовой идентификатор действия
type ActionType uint8

const (
	ActionUnknown ActionType = iota
	ActionSurge
	ActionMove
	ActionAttack
	ActionWait
	ActionPickUp
	ActionDrop
	ActionUse
	ActionEquip
	ActionUnequip
	ActionThrow
	ActionFire
	ActionEvoke
	ActionInteract
	ActionActivate
	ActionOpenMenu
	ActionOpenInventory
	ActionLook
	ActionViewLog
)

// Маппинг для конвертации JSON -> Domain
var actionStringToCmd = map[string]ActionType{
	"SURGE":          ActionSurge,
	"MOVE":           ActionMove,
	"ATTACK":         ActionAttack,
	"WAIT":           ActionWait,
	"PICKUP":         ActionPickUp,
	"DROP":           ActionDrop,
	"USE":            ActionUse,
	"EQUIP":          ActionEquip,
	"UNEQUIP":        ActionUnequip,
	"THROW":          ActionThrow,
	"FIRE":           ActionFire,
	"EVOKE":          ActionEvoke,
	"INTERACT":       ActionInteract,
	"ACTIVATE":       ActionActivate,
	"OPEN_MENU":      ActionOpenMenu,
	"OPEN_INVENTORY": ActionOpenInventory,
	"LOOK":           ActionLook,
	"VIEW_LOG":       ActionViewLog,
}

// Маппинг для логов Domain -> String
var actionCmdToString = func() map[ActionType]string {
	m := make(map[ActionType]string, len(actionStringToCmd))
	for s, a := range actionStringToCmd {
		m[a] = s
	}
	return m
}()

// ParseAction конвертирует строку из JSON в ActionType
func ParseAction(s string) ActionType {
	upper := strings.ToUpper(s)
	if val, ok := actionStringToCmd[upper]; ok {
		return val
	}
	return ActionUnknown
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (a ActionType) String() string {
	if val, ok := actionCmdToString[a]; ok {
		return val
	}
	return "UNKNOWN"
}

// Action - намерение сущности на один ход.
// Final() == true означает, что действие занимает весь ход.
type Action interface {
	Type() ActionType
	Final() bool
}

// Surge - направленный порыв игрока. Превращается в Move или Attack
// только после осмотра целевой клетки.
type Surge struct{ Dx, Dy int }

type Move struct{ Dx, Dy int }

type Attack struct{ Target EntityID }

type Wait struct{}

// PickUp с нулевым Item означает "подобрать то, что лежит под ногами"
type PickUp struct{ Item EntityID }

type Drop struct{ Item EntityID }

type Use struct{ Item EntityID }

type Equip struct{ Item EntityID }

type Unequip struct{ Item EntityID }

type Throw struct {
	Item   EntityID
	Target Position
}

// Fire - выстрел способностью с боеприпасом
type Fire struct {
	Ability string
	Target  Position
}

// Evoke - заклинание, применяемое прямо к клетке
type Evoke struct {
	Ability string
	Target  Position
}

type Interact struct{ Target Position }

// Activate - способность без цели (на себя)
type Activate struct{ Ability string }

type OpenMenu struct{}

type OpenInventory struct{}

type Look struct{ Target Position }

type ViewLog struct{}

func (Surge) Type() ActionType         { return ActionSurge }
func (Move) Type() ActionType          { return ActionMove }
func (Attack) Type() ActionType        { return ActionAttack }
func (Wait) Type() ActionType          { return ActionWait }
func (PickUp) Type() ActionType        { return ActionPickUp }
func (Drop) Type() ActionType          { return ActionDrop }
func (Use) Type() ActionType           { return ActionUse }
func (Equip) Type() ActionType         { return ActionEquip }
func (Unequip) Type() ActionType       { return ActionUnequip }
func (Throw) Type() ActionType         { return ActionThrow }
func (Fire) Type() ActionType          { return ActionFire }
func (Evoke) Type() ActionType         { return ActionEvoke }
func (Interact) Type() ActionType      { return ActionInteract }
func (Activate) Type() ActionType      { return ActionActivate }
func (OpenMenu) Type() ActionType      { return ActionOpenMenu }
func (OpenInventory) Type() ActionType { return ActionOpenInventory }
func (Look) Type() ActionType          { return ActionLook }
func (ViewLog) Type() ActionType       { return ActionViewLog }

// Surge сам по себе ход не заканчивает: его нужно интерпретировать
func (Surge) Final() bool         { return false }
func (Move) Final() bool          { return true }
func (Attack) Final() bool        { return true }
func (Wait) Final() bool          { return true }
func (PickUp) Final() bool        { return true }
func (Drop) Final() bool          { return true }
func (Use) Final() bool           { return true }
func (Equip) Final() bool         { return true }
func (Unequip) Final() bool       { return true }
func (Throw) Final() bool         { return true }
func (Fire) Final() bool          { return true }
func (Evoke) Final() bool         { return true }
func (Interact) Final() bool      { return true }
func (Activate) Final() bool      { return true }
func (OpenMenu) Final() bool      { return false }
func (OpenInventory) Final() bool { return false }
func (Look) Final() bool          { return false }
func (ViewLog) Final() bool       { return false }
