package engine

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Peritract/meld/internal/domain"
	"github.com/Peritract/meld/pkg/api"
)

var ErrUnknownAction = errors.New("unknown action")

type decoder func(raw json.RawMessage) (domain.Action, error)

// withPayload берет на себя Unmarshal и Validate, как и в хендлерах
func withPayload[T any](build func(p T) (domain.Action, error)) decoder {
	return func(raw json.RawMessage) (domain.Action, error) {
		var payload T

		// 1. Распаковка JSON
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, &payload); err != nil {
				return nil, fmt.Errorf("invalid payload format: %w", err)
			}
		}

		// 2. Автоматическая валидация
		if v, ok := any(payload).(api.Validator); ok {
			if err := v.Validate(); err != nil {
				return nil, fmt.Errorf("validation failed: %w", err)
			}
		}

		// 3. Сборка действия
		return build(payload)
	}
}

func noPayload(a domain.Action) decoder {
	return func(json.RawMessage) (domain.Action, error) { return a, nil }
}

func itemID(s string) (domain.EntityID, error) {
	if s == "" {
		return 0, nil
	}
	return domain.ParseEntityID(s)
}

func at(x, y int) domain.Position { return domain.Position{X: x, Y: y} }

func itemAction(wrap func(domain.EntityID) domain.Action) decoder {
	return withPayload(func(p api.ItemPayload) (domain.Action, error) {
		id, err := itemID(p.ItemID)
		if err != nil {
			return nil, err
		}
		if id == 0 {
			return nil, errors.New("itemId is required")
		}
		return wrap(id), nil
	})
}

var decoders = map[domain.ActionType]decoder{
	domain.ActionSurge: withPayload(func(p api.DirectionPayload) (domain.Action, error) {
		return domain.Surge{Dx: p.Dx, Dy: p.Dy}, nil
	}),
	domain.ActionMove: withPayload(func(p api.DirectionPayload) (domain.Action, error) {
		return domain.Move{Dx: p.Dx, Dy: p.Dy}, nil
	}),
	domain.ActionAttack: withPayload(func(p api.EntityPayload) (domain.Action, error) {
		id, err := domain.ParseEntityID(p.TargetID)
		if err != nil {
			return nil, err
		}
		return domain.Attack{Target: id}, nil
	}),
	domain.ActionWait: noPayload(domain.Wait{}),
	domain.ActionPickUp: withPayload(func(p api.ItemPayload) (domain.Action, error) {
		id, err := itemID(p.ItemID)
		if err != nil {
			return nil, err
		}
		return domain.PickUp{Item: id}, nil
	}),
	domain.ActionDrop:    itemAction(func(id domain.EntityID) domain.Action { return domain.Drop{Item: id} }),
	domain.ActionUse:     itemAction(func(id domain.EntityID) domain.Action { return domain.Use{Item: id} }),
	domain.ActionEquip:   itemAction(func(id domain.EntityID) domain.Action { return domain.Equip{Item: id} }),
	domain.ActionUnequip: itemAction(func(id domain.EntityID) domain.Action { return domain.Unequip{Item: id} }),
	domain.ActionThrow: withPayload(func(p api.ThrowPayload) (domain.Action, error) {
		id, err := domain.ParseEntityID(p.ItemID)
		if err != nil {
			return nil, err
		}
		return domain.Throw{Item: id, Target: at(p.X, p.Y)}, nil
	}),
	domain.ActionFire: withPayload(func(p api.AbilityPayload) (domain.Action, error) {
		return domain.Fire{Ability: p.Ability, Target: at(p.X, p.Y)}, nil
	}),
	domain.ActionEvoke: withPayload(func(p api.AbilityPayload) (domain.Action, error) {
		return domain.Evoke{Ability: p.Ability, Target: at(p.X, p.Y)}, nil
	}),
	domain.ActionActivate: withPayload(func(p api.AbilityPayload) (domain.Action, error) {
		return domain.Activate{Ability: p.Ability}, nil
	}),
	domain.ActionInteract: withPayload(func(p api.PositionPayload) (domain.Action, error) {
		return domain.Interact{Target: at(p.X, p.Y)}, nil
	}),
	domain.ActionLook: withPayload(func(p api.PositionPayload) (domain.Action, error) {
		return domain.Look{Target: at(p.X, p.Y)}, nil
	}),
	domain.ActionOpenMenu:      noPayload(domain.OpenMenu{}),
	domain.ActionOpenInventory: noPayload(domain.OpenInventory{}),
	domain.ActionViewLog:       noPayload(domain.ViewLog{}),
}

// DecodeCommand переводит команду клиента в действие
func DecodeCommand(cmd api.ClientCommand) (domain.Action, error) {
	t := domain.ParseAction(cmd.Action)
	return DecodeAction(t, cmd.Payload)
}

// DecodeAction - то же по типу и сырому payload (используется реплеем)
func DecodeAction(t domain.ActionType, raw json.RawMessage) (domain.Action, error) {
	d, ok := decoders[t]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAction, t)
	}
	return d(raw)
}

// EncodeAction - обратное преобразование: тип и payload
func EncodeAction(a domain.Action) (domain.ActionType, json.RawMessage, error) {
	var payload any
	switch act := a.(type) {
	case domain.Surge:
		payload = api.DirectionPayload{Dx: act.Dx, Dy: act.Dy}
	case domain.Move:
		payload = api.DirectionPayload{Dx: act.Dx, Dy: act.Dy}
	case domain.Attack:
		payload = api.EntityPayload{TargetID: act.Target.Key()}
	case domain.PickUp:
		p := api.ItemPayload{}
		if act.Item != 0 {
			p.ItemID = act.Item.Key()
		}
		payload = p
	case domain.Drop:
		payload = api.ItemPayload{ItemID: act.Item.Key()}
	case domain.Use:
		payload = api.ItemPayload{ItemID: act.Item.Key()}
	case domain.Equip:
		payload = api.ItemPayload{ItemID: act.Item.Key()}
	case domain.Unequip:
		payload = api.ItemPayload{ItemID: act.Item.Key()}
	case domain.Throw:
		payload = api.ThrowPayload{ItemID: act.Item.Key(), X: act.Target.X, Y: act.Target.Y}
	case domain.Fire:
		payload = api.AbilityPayload{Ability: act.Ability, X: act.Target.X, Y: act.Target.Y}
	case domain.Evoke:
		payload = api.AbilityPayload{Ability: act.Ability, X: act.Target.X, Y: act.Target.Y}
	case domain.Activate:
		payload = api.AbilityPayload{Ability: act.Ability}
	case domain.Interact:
		payload = api.PositionPayload{X: act.Target.X, Y: act.Target.Y}
	case domain.Look:
		payload = api.PositionPayload{X: act.Target.X, Y: act.Target.Y}
	case domain.Wait, domain.OpenMenu, domain.OpenInventory, domain.ViewLog:
		return a.Type(), nil, nil
	default:
		return domain.ActionUnknown, nil, fmt.Errorf("%w: %T", ErrUnknownAction, a)
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return domain.ActionUnknown, nil, fmt.Errorf("encode %s: %w", a.Type(), err)
	}
	return a.Type(), raw, nil
}
